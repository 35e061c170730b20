// Package gen builds small deterministic graph topologies (path, cycle,
// complete, star, wheel, grid) over any vertex type via an IDFunc mapping
// zero-based indices to vertex identifiers.
//
// Every generator inserts vertices in ascending index order and emits
// edges in a fixed order, so two invocations with the same arguments
// produce structurally identical graphs with identical enumeration order.
// Each edge carries the single weight passed by the caller; callers
// needing varied weights mutate the result afterwards.
package gen
