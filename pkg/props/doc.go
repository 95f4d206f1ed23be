// Package props defines the closed value vocabulary carried by surface nodes:
// the prop value variants (string, number, bool, nil, color, action, lambda,
// list, record), the shared sizing and styling types (Dimension, Edges,
// Alignment, BorderStyle, ShadowStyle), and the literal coercion rules applied
// at the component boundary. Serialization of every variant is deterministic;
// records sort their keys and colors write r, g, b, a in fixed order so the
// same value always produces the same bytes.
package props
