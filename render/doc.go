// Package render draws embeddings for people and exports them for tools.
//
// A Panel is one titled scatter of an N×d coordinate matrix; only the first
// two columns are drawn (a single column is drawn against y = 0). Points are
// colored by row index, so neighbouring samples share a hue and the shape of
// the unrolled manifold is visible at a glance.
//
// Two Renderers are provided:
//
//   - Terminal lays panels side by side as bordered character scatters,
//     styled with lipgloss. Color is emitted only when the destination
//     writer is a color-capable terminal.
//   - CSV writes one record per point: panel title, row index, coordinates.
package render
