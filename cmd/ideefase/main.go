package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/ideefase/internal/cli"
	"github.com/alexanderramin/ideefase/internal/config"
	"github.com/alexanderramin/ideefase/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogEvaluations {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Evaluate:        service.NewEvaluationService(cfg.Rules(), observer),
		Clipboard:       cli.NewSystemClipboard(),
		Observer:        observer,
		DefaultDeadline: cfg.Deadline,
		ToastDuration:   cfg.ToastDuration,
	}

	// Detect interactive terminal for the assistant.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
