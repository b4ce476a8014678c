// Package main provides the overlay CLI, a tool for trying placement
// scenarios against both positioning engines.
//
// It is a development aid. The positioning API is the overlay package
// itself, configured in memory; nothing in it reads files or depends on
// this command.
//
// Usage:
//
//	overlay place <scenario.toml...>   Place overlays and print the result
//	overlay export <scenario.toml>     Print a scenario's positions as Go code
//	overlay version                    Print version information
//
// Examples:
//
//	overlay place menu.toml                 Place with the scenario's engine
//	overlay place --engine anchor menu.toml Force the anchor engine
//	overlay place --rtl menu.toml           Force right-to-left
//	overlay place -v a.toml b.toml          Verbose output, several scenarios
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
