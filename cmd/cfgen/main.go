package main

import (
	"os"

	"github.com/goplus/cfgen/cmd/cfgen/internal"
)

func main() {
	os.Exit(internal.Execute())
}
