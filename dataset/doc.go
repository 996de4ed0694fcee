// Package dataset feeds point sets into the Isomap pipeline.
//
// It covers three concerns:
//
//   - Loading: the Loader interface with CSVLoader and JSONLoader, plus
//     LoadFile, which picks a loader by file extension and applies the
//     orientation options (WithSamplesAsColumns, WithAutoOrient).
//   - Subsampling: Subsample draws n distinct points with an explicit seed
//     and reports which input rows were kept.
//   - Synthesis: SwissRoll generates the classic rolled-up sheet used to
//     demonstrate geodesic unrolling.
//
// All randomness flows from an explicit int64 seed; seed 0 selects a fixed
// default, so the same call always yields the same data.
package dataset
