// Package kernel provides core domain primitives shared across the warehouse
// domain model.
//
// Its single primitive is UUID, a value object for entity identifiers with
// validation and comparison behavior. The zero value is invalid; identifiers
// must be created through one of the constructor functions. UUID is immutable
// and safe for concurrent use.
package kernel
