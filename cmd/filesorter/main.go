package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"filesorter/internal/services"
)

func main() {
	// A missing .env is the common case.
	_ = godotenv.Load()

	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(services.ExitCode(err))
	}
}
