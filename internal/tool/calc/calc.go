// Package calc holds small arithmetic helpers.
package calc

// Add returns a + b. Overflow wraps like any int32 addition.
func Add(a, b int32) int32 {
	return a + b
}
