// Package pipeline streams input reads through a Simulator, drops reads
// whose simulated sequence came out empty, resizes quality strings, and
// calls a visit callback in input order.
//
// The only contract to implement is Simulator (SimulateRead).
// This keeps the pipeline swappable and testable.
package pipeline
