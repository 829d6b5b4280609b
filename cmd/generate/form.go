package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"frogjump-go/pkg/uniform"
)

// promptRequest asks for the sample count, the maximum and the minimum until
// they form a valid request. It gives up only when the input ends.
func promptRequest(in io.Reader, out io.Writer) (uniform.Request, error) {
	sc := bufio.NewScanner(in)
	ask := func(label string) (string, error) {
		fmt.Fprintf(out, "%s: ", label)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return strings.TrimSpace(sc.Text()), nil
	}

	for {
		count, err := ask("Number of samples")
		if err != nil {
			return uniform.Request{}, err
		}
		max, err := ask("Maximum value")
		if err != nil {
			return uniform.Request{}, err
		}
		min, err := ask("Minimum value")
		if err != nil {
			return uniform.Request{}, err
		}

		req, err := uniform.ParseRequest(count, max, min)
		switch {
		case err == nil:
			return req, nil
		case errors.Is(err, uniform.ErrInvalidRange):
			fmt.Fprintln(out, "Error: the minimum must be less than the maximum.")
		case errors.Is(err, uniform.ErrInvalidInput):
			fmt.Fprintln(out, "Error: please enter valid numeric values.")
		default:
			return uniform.Request{}, err
		}
	}
}
