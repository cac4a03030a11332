package main

import (
	"fmt"
	"strconv"
)

// parseInt32 parses a base-10 argument into an int32.
func parseInt32(name, s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return int32(n), nil
}

// parseInt32s parses args positionally, naming each by names[i].
func parseInt32s(names []string, args []string) ([]int32, error) {
	out := make([]int32, len(args))
	for i, arg := range args {
		n, err := parseInt32(names[i], arg)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
