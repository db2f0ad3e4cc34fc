package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/reoring/gonmea/cmd/gonmea/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, cmd.ErrLinesFailed) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "gonmea: %v\n", err)
		os.Exit(2)
	}
}
