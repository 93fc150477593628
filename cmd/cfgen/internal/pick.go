package internal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goplus/cfgen/pkgs/toolchain"
)

var errNoSelection = errors.New("no toolchain selected")

// pickToolchain lists tcs on w and reads a choice from r, by number or by
// name. Invalid answers are asked again until r is exhausted.
func pickToolchain(r io.Reader, w io.Writer, tcs []toolchain.Descriptor) (toolchain.Descriptor, error) {
	if len(tcs) == 0 {
		return toolchain.Descriptor{}, errNoSelection
	}
	fmt.Fprintln(w, "Available toolchains:")
	for i, tc := range tcs {
		fmt.Fprintf(w, "%3d. %s\n", i+1, tc.Name)
		if tc.Description != "" {
			fmt.Fprintf(w, "     %s\n", tc.Description)
		}
	}

	sc := bufio.NewScanner(r)
	for {
		fmt.Fprintf(w, "Select a toolchain [1-%d]: ", len(tcs))
		if !sc.Scan() {
			fmt.Fprintln(w)
			if err := sc.Err(); err != nil {
				return toolchain.Descriptor{}, err
			}
			return toolchain.Descriptor{}, errNoSelection
		}
		if tc, ok := selectToolchain(strings.TrimSpace(sc.Text()), tcs); ok {
			return tc, nil
		}
		fmt.Fprintln(w, "Invalid choice.")
	}
}

func selectToolchain(answer string, tcs []toolchain.Descriptor) (toolchain.Descriptor, bool) {
	if n, err := strconv.Atoi(answer); err == nil {
		if n < 1 || n > len(tcs) {
			return toolchain.Descriptor{}, false
		}
		return tcs[n-1], true
	}
	for _, tc := range tcs {
		if tc.Name == answer {
			return tc, true
		}
	}
	return toolchain.Descriptor{}, false
}
