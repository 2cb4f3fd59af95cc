// Package main provides the entry point for the doclift CLI.
//
// Doclift extracts heading outlines from PDF documents by analyzing
// font usage across the page layout. It runs either as a one-shot
// batch command or as an HTTP service with an async job pipeline.
//
// Usage:
//
//	doclift extract --input ./docs --output ./outlines
//	doclift serve
//
// See --help for all available options.
package main

// main is the entry point for doclift.
func main() {
	Execute()
}
