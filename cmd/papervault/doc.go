// Package main hosts the papervault CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into
// repository operations: ingesting files as bundles, listing and inspecting
// the inbox, archiving or deleting reviewed bundles, running the intake
// watcher, and configuration scaffolding. It centralizes configuration
// resolution and structured logging setup so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
