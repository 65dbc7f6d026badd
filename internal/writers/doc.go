// Package writers turns simulated reads into serialized records.
//
// Formats register themselves in init() blocks; callers resolve a format
// by name with Lookup and never switch on format strings themselves.
package writers
