package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ebrowse/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Cancel the browser on interrupt or termination
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := cli.New().Run(ctx, os.Args); err != nil {
		exitErr := &cli.ExitError{}
		if errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "%s\n", exitErr.Error())
			return exitErr.Code
		}
		fmt.Fprintf(os.Stderr, "Unexpected error: %v\n", err)
		return cli.ExitGeneralError
	}

	return cli.ExitSuccess
}
