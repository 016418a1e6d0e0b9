// Package construct implements the regret-based insertion construction
// heuristic (spec §4.5): the Basic regime (sort vehicles once, fill each
// in turn using a regret table against later vehicles) and the Dynamic
// regime (recompute, at every step, which vehicle is currently closest to
// the largest number of unassigned units).
//
// Both regimes build on costdelta for insertion pricing and twroute for
// capacity/time-window feasibility, and return a populated
// solutionstate.State with whatever jobs could not be placed left in
// State.Unassigned.
package construct
