// Package maybe provides the typed optional companion to the dynamic
// engine: Just a value, or Nothing. Where the engine checks kinds at
// run time, Maybe's two required Match branches make the compiler do
// the exhaustiveness checking.
//
// Maybe implements sum.Valued, so match.Match and match.Do work on it
// directly; Type exposes the canonical Just/Nothing schema for code
// that mixes the typed and dynamic worlds.
//
// Key operations:
// - Just/Nothing: construct
// - IsJust/IsNothing, Get, OrElse: inspect
// - Match: exhaustive two-branch dispatch
// - Map/FlatMap: transform without unpacking
// - From: convert a dynamic Just/Nothing value back to a typed Maybe
package maybe
