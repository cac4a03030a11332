// Package demo runs the fixed sequence that the nestdemo binary prints:
// a greeting, add(1, 10), a second greeting, then the two component sums.
package demo

import (
	"fmt"
	"io"

	"github.com/mark3labs/nestdemo/internal/component"
	"github.com/mark3labs/nestdemo/internal/lib"
	"github.com/mark3labs/nestdemo/internal/logger"
	"github.com/mark3labs/nestdemo/internal/tool/calc"
	"github.com/mark3labs/nestdemo/internal/tool/common"
)

// Inputs used by Run and Capture.
const (
	AddA int32 = 1
	AddB int32 = 10
	X    int32 = 1
	Y    int32 = 2
	Z    int32 = 3
)

// Snapshot is the structured form of one run.
type Snapshot struct {
	Greeting      string             `yaml:"greeting"`
	Add           int32              `yaml:"add"`
	GreetingWorld string             `yaml:"greeting_world"`
	MyClass       component.MyClass  `yaml:"my_class"`
	MyClassSum    int32              `yaml:"my_class_sum"`
	SubClass      component.SubClass `yaml:"sub_class"`
	SubClassSum   int32              `yaml:"sub_class_sum"`
}

// Capture builds the Snapshot of the demo without writing anything.
func Capture() Snapshot {
	mc := component.NewMyClass(X, Y)
	sc := component.NewSubClass(X, Y, Z)
	return Snapshot{
		Greeting:      lib.Greeting,
		Add:           calc.Add(AddA, AddB),
		GreetingWorld: common.HelloWorldText,
		MyClass:       mc,
		MyClassSum:    mc.Sum(),
		SubClass:      sc,
		SubClassSum:   sc.Sum(),
	}
}

// Run writes the demo lines to w in order. The only error is w's.
func Run(w io.Writer) error {
	logger.Debug("demo: hello")
	if err := lib.Hello(w); err != nil {
		return fmt.Errorf("writing greeting: %w", err)
	}

	sum := calc.Add(AddA, AddB)
	logger.Debug("demo: add(%d, %d) = %d", AddA, AddB, sum)
	if _, err := fmt.Fprintln(w, sum); err != nil {
		return fmt.Errorf("writing add result: %w", err)
	}

	logger.Debug("demo: hello world")
	if err := common.HelloWorld(w); err != nil {
		return fmt.Errorf("writing hello world: %w", err)
	}

	mc := component.NewMyClass(X, Y)
	logger.Debug("demo: %+v sum = %d", mc, mc.Sum())
	if _, err := fmt.Fprintln(w, mc.Sum()); err != nil {
		return fmt.Errorf("writing MyClass sum: %w", err)
	}

	sc := component.NewSubClass(X, Y, Z)
	logger.Debug("demo: %+v sum = %d", sc, sc.Sum())
	if _, err := fmt.Fprintln(w, sc.Sum()); err != nil {
		return fmt.Errorf("writing SubClass sum: %w", err)
	}

	return nil
}
