// Package match implements case dispatch over sum values: consume an
// instance by supplying one handler per possible kind, optionally plus
// a default, and exactly the handler for the instance's actual kind
// runs. An exact-kind handler always wins over the default; the default
// only fires for kinds the case set does not cover.
//
// Dispatch works on anything implementing sum.Valued, so engine
// instances and the typed companions (maybe, either) share one entry
// point. A match with neither an exact case nor a default fails loudly
// with *sum.UnhandledKindError instead of doing nothing.
//
// Key operations:
// - Match/MustMatch: dispatch to a result of type R
// - Do: dispatch for side effects only
// - Cases.On/Otherwise: register cases fluently instead of by literal
// - Exhaustive: verify a case set covers a whole schema
// - Nullary/Unary/Binary/Ternary: adapt typed functions to handlers
package match
