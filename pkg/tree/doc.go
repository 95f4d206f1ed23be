// Package tree defines the surface tree rendering hosts consume: nodes with
// a component type, ordered props, and value-embedded children, wrapped in a
// Surface root. The wire codec is deterministic; prop keys serialize in the
// order they were set (component declaration order when built through the
// component builders) and the same tree always produces identical bytes.
package tree
