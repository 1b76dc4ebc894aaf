package lattice

// passageOffsets are the unit steps used when walking carved passages.
var passageOffsets = [4][2]int{{0, -1}, {0, 1}, {1, 0}, {-1, 0}}

// Reachable returns every open cell connected to start through open cells
// at lattice distance 1, in BFS order. A closed start yields nil.
//
// Time:   O(W·H).
// Memory: O(W·H) for seen flags and output.
func (g *Grid) Reachable(start int) []int {
	if start < 0 || start >= len(g.cells) || !g.cells[start].Open {
		return nil
	}
	seen := make([]bool, len(g.cells))
	seen[start] = true
	queue := []int{start}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		uc, ur := g.Coordinate(u)
		for _, d := range passageOffsets {
			vc, vr := uc+d[0], ur+d[1]
			if !g.InBounds(vc, vr) {
				continue
			}
			v := g.Index(vc, vr)
			if seen[v] || !g.cells[v].Open {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}
	return queue
}

// SameParity reports whether idx shares the (col,row) parity of ref, i.e.
// whether both are rooms of the same maze.
func (g *Grid) SameParity(idx, ref int) bool {
	ic, ir := g.Coordinate(idx)
	rc, rr := g.Coordinate(ref)
	return (ic-rc)%2 == 0 && (ir-rr)%2 == 0
}
