// Package application provides dependency wiring for the resolver tool.
// It layers the configured input sources, resolves the typed inputs record,
// and renders it to stdout and the step output file, keeping the main
// package focused on CLI parsing.
package application
