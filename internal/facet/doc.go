// Package facet provides the lookup tables the builders aggregate into.
//
// Index maps a facet value to every reference record registered under it,
// in registration order. ChunkIndex maps a facet value to the distinct
// chunk numbers it appears in. Both preserve key insertion order when
// serialized, so identical input always produces identical JSON.
package facet
