package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "preview":
		os.Exit(runPreview(os.Args[2:]))
	case "demo":
		os.Exit(runDemo(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: layerwm <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  preview             Print an ASCII preview of a layout")
	fmt.Fprintln(w, "  demo                Run the interactive layout demo")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate the configuration file")
	fmt.Fprintln(w, "  config print        Print the effective configuration")
	fmt.Fprintln(w, "  config init         Write a default configuration file")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start the MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'layerwm <command> --help' for command-specific options.")
}
