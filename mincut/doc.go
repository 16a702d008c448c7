// Package mincut implements Karger's randomized contraction algorithm
// for the global minimum cut of an undirected weighted multigraph.
//
// Each trial clones the input graph and repeatedly picks an edge with
// probability proportional to its weight, collapsing one endpoint into
// the other, until two non-isolated vertices remain; the weight still
// connecting them is the value of one cut. The best value over all
// trials is returned. Because core.Collapse merges parallel edges by
// weight accumulation and discards exactly the folded self-loop weight,
// the surviving weight is precisely the number of original edges
// crossing the induced partition.
//
// A single trial finds the minimum cut with probability ≥ 2/(n·(n-1));
// the default trial count of n² pushes the overall failure probability
// below e⁻². Inputs whose non-isolated vertices are disconnected have a
// cut of zero, detected up front with a BFS reachability sweep.
//
// Complexity: O(trials · V · E) time, O(V + E) memory per trial.
//
// Options:
//
//   - WithTrials(n)   fixed number of contraction trials (default n²).
//   - WithRand(r)     deterministic source of randomness.
//   - WithContext(ctx) cancellation between trials.
//
// Errors:
//
//   - ErrGraphNil         if g is nil.
//   - ErrDirected         if g is directed (the cut is undefined here).
//   - ErrTooSmall         if fewer than two vertices carry edges.
//   - ErrOptionViolation  for invalid option values.
package mincut
