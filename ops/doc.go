// Package ops implements the move-operator catalogue (spec §4.6): every
// operator exposes the same Move contract (Gain/IsValid/Apply/
// UpdateCandidates) and is constructed by a Try* function that evaluates a
// single candidate instance against a solutionstate.State, returning
// ok=false if the candidate is infeasible.
//
// Every Try* function validates and prices a move the same way: it builds
// the complete post-move job sequence for each touched route and checks it
// wholesale with routeFeasible, then prices it by comparing the touched
// routes' cached RouteEval against a from-scratch sequenceEval of the new
// sequence. This trades the cleverness of a true incremental delta for an
// exact, inspectable-by-construction answer, consistent with the same
// choice made in solutionstate's gain tables and costdelta's primitives.
package ops
