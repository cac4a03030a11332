package lib

import (
	"fmt"
	"io"
)

// Greeting is the line written by Hello.
const Greeting = "Hello!"

// Hello writes Greeting on its own line.
func Hello(w io.Writer) error {
	_, err := fmt.Fprintln(w, Greeting)
	return err
}
