// Package engine is the stateful facade over the stepwise MST algorithms.
//
// An Engine owns the current Graph, the chosen algorithm, the Prim start
// vertex and the active prim_kruskal.Stepper. Callers drive it with Step
// (one edge at a time) or RunToCompletion (auto-run paced by a rate
// limiter) and read it through observers or an immutable Snapshot.
//
// Lifecycle:
//
//   - Load parses matrix text. On failure the previous Graph and Stepper
//     are kept and the error is remembered for LastError. On success the
//     Graph is replaced, the start vertex clamped to the new node range and
//     a fresh Stepper built.
//   - Reset, SetAlgorithm and SetStartVertex always discard the Stepper and
//     build a new one; nothing is shared between the old and the new run.
//
// Concurrency: every method takes the Engine's mutex, so observers never
// see a half-applied step. While RunToCompletion is active, manual Step and
// a second RunToCompletion fail with ErrBusy.
package engine
