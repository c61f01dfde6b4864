package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	switch len(args) {
	case 1:
		return runREPL()
	case 2:
		switch args[1] {
		case "help", "-h", "--help":
			printUsage()
			return nil
		}
		return runFile(args[1])
	default:
		return usageError()
	}
}

func usageError() error {
	printUsage()
	return errors.New("invalid arguments")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s [script]\n", prog)
	fmt.Fprintln(os.Stderr, "With no arguments, starts an interactive prompt.")
}
