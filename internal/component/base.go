// Package component holds the two value types the demo prints sums of.
package component

// MyClass is a pair of integers.
// The zero value is the defaulted construction (0, 0).
type MyClass struct {
	X int32 `yaml:"x"`
	Y int32 `yaml:"y"`
}

// NewMyClass returns a MyClass holding x and y.
func NewMyClass(x, y int32) MyClass {
	return MyClass{X: x, Y: y}
}

// Sum returns X + Y. Overflow wraps.
func (m MyClass) Sum() int32 {
	return m.X + m.Y
}
