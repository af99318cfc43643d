// Package either provides the typed two-alternative companion to the
// dynamic engine: Left, conventionally the error or secondary case, or
// Right. Match requires both branches, so consuming code accounts for
// both alternatives at compile time.
//
// Either implements sum.Valued, so match.Match and match.Do work on it
// directly; Type exposes the canonical Left/Right schema for code that
// mixes the typed and dynamic worlds.
//
// Key operations:
// - Left/Right: construct
// - IsLeft/IsRight, GetLeft/GetRight: inspect
// - Match: exhaustive two-branch dispatch
// - Map/MapLeft/FlatMap: transform without unpacking
// - From: convert a dynamic Left/Right value back to a typed Either
package either
