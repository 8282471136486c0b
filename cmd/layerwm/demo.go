package main

import (
	"fmt"
	"os"

	"github.com/1broseidon/layerwm/internal/config"
	"github.com/1broseidon/layerwm/internal/tui"
)

func runDemo(args []string) int {
	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(os.Stdout, "Usage: layerwm demo")
		fmt.Fprintln(os.Stdout, "")
		fmt.Fprintln(os.Stdout, "Run the interactive demo: drive a live layer stack from the keyboard")
		fmt.Fprintln(os.Stdout, "and watch the layout update.")
		return 0
	}
	if len(args) > 0 {
		fmt.Fprintln(os.Stderr, "demo takes no arguments")
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	p, err := tui.NewProgram(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "demo error: %v\n", err)
		return 1
	}
	return 0
}
