// Package compare runs every searchbench strategy on the same inputs and
// ranks the outcomes by cost.
//
// The strategies run independently in a fixed order: BFS, UCS, Greedy
// Best-First Search, IDDFS. A strategy that fails (for instance greedy search
// hitting a label without estimate) records its error in Outcome.Err; the
// others still run. Ranking.Sort orders outcomes by ascending cost and keeps
// the run order among equal costs. Failed outcomes rank as +Inf, after
// outcomes that simply found no path.
//
// Usage
//
//	ranking, err := compare.Run(ctx, g, h, "Arad", "Bucharest")
//	if err != nil {
//	    // nil graph or heuristic
//	}
//	for _, o := range ranking.Sort() {
//	    fmt.Println(o.Name, o.Result.Path, o.Result.Cost)
//	}
package compare
