// Package diversity implements the windowed entropy reduction engine: it
// turns a time series of quantized raster slices into per-pixel diversity
// maps.
//
// Three reduction axes are supported. ReduceSpatial scores each pixel of
// one slice against its square neighborhood, ReduceTemporal scores each
// pixel against its own history across the full time axis, and Reduce3D
// pools the neighborhood across every time step into a single sample set
// per pixel. Out-of-range spatial indices are reflected across the edge
// pixel, so border windows are always full-size; the time axis is never
// padded.
//
// Measures are a closed variant over Shannon, Renyi(alpha) and Rao's
// quadratic entropy, selected by value and dispatched exactly once per
// reduction. A window holding a single distinct value scores 0 under
// every measure.
//
// Complexity per output map, for an HxW slice, T time steps, window side
// s and k distinct values per window:
//   - ReduceSpatial: O(H*W*s^2) sample extractions
//   - ReduceTemporal: O(H*W*T)
//   - Reduce3D: O(H*W*T*s^2)
//   - RaoQuadratic adds O(k^2) pairwise work per cell
//
// All reducers are pure: the input grid is only read, the returned map is
// freshly allocated, and identical inputs produce bitwise-identical
// outputs regardless of internal parallelism.
//
// Errors: ErrInvalidMeasure, ErrUndefinedParameter, ErrWindowSize and
// ErrTemporalDepth, plus the validation errors of package grid. All are
// detected before any cell is scored; a failed call returns no partial
// map.
package diversity
