// Package engine turns one input read into one simulated read. It never
// imports app, writers, cli, or pipeline; keep it domain-only.
//
// Two modes exist. Plain copies a reference window of the read's length.
// ErrorModeled additionally runs the window through an error profile.
package engine
