package solution

// UpdateColor recolors u to newColor and restores every invariant the state
// promises: totalConflicts, u's own adjCounts-derived conflict membership,
// and every neighbor's adjCounts entry and conflict membership.
//
// Complexity: O(deg(u)).
func (s *State) UpdateColor(u, newColor int) {
	oldColor := s.colors[u]
	if oldColor == newColor {
		return
	}

	s.totalConflicts += s.adjCounts[u][newColor] - s.adjCounts[u][oldColor]
	s.colors[u] = newColor
	if s.adjCounts[u][newColor] > 0 {
		s.addConflicting(u)
	} else {
		s.removeConflicting(u)
	}

	for _, v := range s.adj[u] {
		s.adjCounts[v][oldColor]--
		if s.colors[v] == oldColor && s.adjCounts[v][oldColor] == 0 {
			s.removeConflicting(v)
		}
		s.adjCounts[v][newColor]++
		if s.colors[v] == newColor {
			s.addConflicting(v)
		}
	}
}
