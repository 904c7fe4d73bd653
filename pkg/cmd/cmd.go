package cmd

import (
	"flag"
	"fmt"
	"os"
)

// DieWithUsage is a utility that assumes usage of the flag library. It prints
// a usage line, the flag arguments, and then exits.
func DieWithUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s\n", os.Args[0])
	flag.PrintDefaults()
	os.Exit(1)
}

// CheckStringArg dies with usage and msg when s is empty.
func CheckStringArg(s string, msg string) {
	if s == "" {
		fmt.Fprintf(os.Stderr, "%s\n", msg)
		DieWithUsage()
	}
}

// CheckErrArg dies with usage when a flag value failed validation.
func CheckErrArg(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		DieWithUsage()
	}
}
