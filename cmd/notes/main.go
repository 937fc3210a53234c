package main

import (
	"fmt"
	"os"
)

func main() {
	err := rootCmd.Execute()
	if cerr := closeSession(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
