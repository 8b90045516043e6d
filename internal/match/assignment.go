package match

type edgeKey struct {
	a int64
	b int64
}

// buildMatrix constructs the padded square cost matrix for one component.
//
// Layout for nA real A rows and nB real B columns, size = nA + nB:
//
//	real A x real B   edge cost where a candidate edge exists, else the
//	                  sentinel (both nodes sit in the same component but
//	                  only through intermediaries)
//	real A x dummy    unmatched penalty (explicit non-match)
//	dummy  x real B   unmatched penalty
//	dummy  x dummy    zero, so padding stays cost-neutral
//
// Every row and column has at least one finite sub-sentinel cell, so a full
// assignment always exists, degenerate all-A or all-B components included.
func buildMatrix(comp component, cfg Config) ([][]float64, map[edgeKey]Edge) {
	nA, nB := len(comp.aIDs), len(comp.bIDs)
	size := nA + nB

	index := make(map[edgeKey]Edge, len(comp.edges))
	for _, e := range comp.edges {
		index[edgeKey{e.AID, e.BID}] = e
	}

	cost := make([][]float64, size)
	for i := range cost {
		row := make([]float64, size)
		cost[i] = row
		for j := range row {
			switch {
			case i < nA && j < nB:
				if e, ok := index[edgeKey{comp.aIDs[i], comp.bIDs[j]}]; ok {
					row[j] = e.Cost
				} else {
					row[j] = cfg.SentinelCost
				}
			case i >= nA && j >= nB:
				row[j] = 0
			default:
				row[j] = cfg.UnmatchedPenalty
			}
		}
	}
	return cost, index
}
