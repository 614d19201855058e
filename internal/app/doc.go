// Package app wires the input store, the move parser and the visit tracker
// for the CLI.
//
// Commands build an App from Config and call Deliver or Fingerprint; all
// failures come back as errors for the command layer to report.
package app
