package common

import (
	"fmt"
	"io"
)

// HelloWorldText is the line written by HelloWorld.
const HelloWorldText = "Hello, World!"

// HelloWorld writes HelloWorldText on its own line.
func HelloWorld(w io.Writer) error {
	_, err := fmt.Fprintln(w, HelloWorldText)
	return err
}
