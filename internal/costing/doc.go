// Package costing implements the deterministic cost-benefit engine.
//
// Given a financial configuration, the task breakdown of a process and a set of
// automation options, the Engine computes per-robot effective costs, multi-year
// cumulative cost projections and a final recommendation. The engine is a pure
// function of its inputs: it holds no mutable state and performs no I/O.
package costing
