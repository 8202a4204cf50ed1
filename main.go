package main

import (
	"fmt"
	"os"

	"github.com/AnyUserName/uwimg-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "uwimg: %v\n", err)
		os.Exit(1)
	}
}
