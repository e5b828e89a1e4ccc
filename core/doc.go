// Package core defines the shared types used across the prism logging
// library.
//
// It provides the Severity type and the ShouldEmit gate that every sink
// evaluates independently, the Record type that represents one rendered
// log event, and the timestamp formatter with its custom-pattern tokens
// and timer override.
//
// The gate fails closed: None on either side, or any value outside the
// known range, suppresses emission rather than raising an error.
package core
