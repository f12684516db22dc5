package main

// Exit codes for the readpaper CLI.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing config, invalid paths)
	ExitNotFound    = 3 // Identifier or bibliography not found
)
