package main

import (
	"os"

	"github.com/AphelionMax/Resume-Job-Description-Matching/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
