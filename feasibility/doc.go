// Package feasibility answers one narrow question cheaply: given a batch of
// ruined jobs and a set of candidate vehicles, could those jobs even in
// principle be repacked onto those vehicles, ignoring cost, time windows,
// and everything else that makes insertion expensive to evaluate exactly?
//
// It is a bipartite capacity oracle — source -> job -> vehicle -> sink, unit
// job supply, one edge per skill-compatible (job, vehicle) pair, and a
// vehicle -> sink edge capped at that vehicle's remaining task slack — built
// and solved fresh for every query via Dinic's blocking-flow max-flow
// algorithm. The local-search driver's ruin-and-recreate escape loop uses it
// as a pre-check before spending a regret-insertion pass: if the max flow is
// below the number of ruined jobs, no insertion ordering can possibly place
// them all, and the pass is skipped for that round.
//
// The oracle is deliberately conservative: a batch it reports feasible may
// still fail regret-insertion once time windows and exact capacity are
// checked. It can never be wrong the other direction — if it reports
// infeasible, no insertion pass would have succeeded either.
package feasibility
