package main

import (
	"os"

	"github.com/elevesuaedicao-rgb/eleve-knowledge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
