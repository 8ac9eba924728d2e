package main

// Exit codes returned by the CLI.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (fetch failure, runtime failure)
	ExitConfigError = 2 // Configuration error (missing token, bad paths)
	ExitDataError   = 3 // Data error (incomplete document, identifier clash)
)
