// Package core defines the shared contracts of lvlsearch: the generic
// search-tree Node, the Problem, Heuristic and Frontier interfaces, the
// PriorityFunc strategy type, and the Result value returned by the engine.
//
// All types are parametric in two type parameters:
//
//	S — the domain state. Must be comparable: value equality and map-key
//	    hashing are the only capabilities the engine requires of a state.
//	A — the action label attached to a transition. Opaque to the engine,
//	    used only for reporting in Result.Actions.
//
// The engine (package engine) is the only component with control flow;
// everything here is pure data and capability declarations, so that a
// user can write one domain (states, successors, goal test) and reuse
// the identical search loop across every algorithm, or write one new
// strategy and reuse it across every domain.
package core
