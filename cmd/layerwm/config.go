package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/layerwm/internal/config"
)

func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: layerwm config <command>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  validate   Validate the configuration file")
	fmt.Fprintln(w, "  print      Print the effective configuration as YAML")
	fmt.Fprintln(w, "  init       Write a default configuration file")
}

func runConfig(args []string) int {
	if len(args) == 0 {
		printConfigUsage(os.Stderr)
		return 2
	}

	switch args[0] {
	case "validate":
		return runConfigValidate()
	case "print":
		return runConfigPrint()
	case "init":
		return runConfigInit()
	case "help", "-h", "--help":
		printConfigUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n\n", args[0])
		printConfigUsage(os.Stderr)
		return 2
	}
}

func runConfigValidate() int {
	path, err := config.DefaultConfigPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if _, err := config.Load(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("%s: OK\n", path)
	return 0
}

func runConfigPrint() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	os.Stdout.Write(data)
	return 0
}

func runConfigInit() int {
	path, err := config.DefaultConfigPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "%s already exists\n", path)
		return 1
	}
	if err := config.DefaultConfig().Save(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("Wrote %s\n", path)
	return 0
}
