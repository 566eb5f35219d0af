package main

import (
	"os"

	"github.com/JC-LL/clite/cmd/clite/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
