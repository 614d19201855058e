// Package crypto provides short, stable digests for display.
//
// Fingerprint hashes a move sequence's canonical text with BLAKE2b-256 and
// truncates it, so two inputs that parse to the same moves share a
// fingerprint regardless of surrounding whitespace or line endings.
package crypto
