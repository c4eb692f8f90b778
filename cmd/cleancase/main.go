package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/preprocess"
)

// cleancase normalizes a case packet the same way the server does before
// prompting: boilerplate lines stripped, blank runs collapsed. Reads a file
// argument or stdin, writes to stdout.
func main() {
	var (
		raw []byte
		err error
	)

	switch len(os.Args) {
	case 1:
		raw, err = io.ReadAll(os.Stdin)
	case 2:
		raw, err = os.ReadFile(os.Args[1])
	default:
		fmt.Fprintln(os.Stderr, "Usage: cleancase [file]")
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("failed to read input: %v", err)
	}

	fmt.Println(preprocess.Normalize(string(raw), preprocess.DefaultPolicy()))
}
