// Package commands defines the houses CLI.
//
// Commands
//
//   - count        Run both agents over the input and print the house count
//   - fingerprint  Print a digest of the parsed move sequence
//
// Running houses with no subcommand behaves like count.
//
// # Implementation
//
// The root command builds the app context from the persistent flags before
// any subcommand runs. Errors (unreadable input, unrecognized characters) are
// returned to cobra, which prints them; main then exits non-zero.
package commands
