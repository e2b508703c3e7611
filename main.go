package main

import (
	"os"

	"github.com/ezerfernandes/mdcombine/internal/cmd"
)

func main() {
	cmd.Execute(os.Args[1:], os.Stdout, os.Stderr)
}
