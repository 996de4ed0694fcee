// Package archive persists embedding runs in a SQLite database so that
// comparisons can be listed and re-rendered later.
//
// Every run gets a random UUID. Coordinates and eigenvalues are stored as
// little-endian float64 blobs next to the run's parameters and statistics.
// A Store wraps a single connection and is not safe for concurrent use.
package archive
