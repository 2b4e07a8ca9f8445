package core

import "sort"

// NeighborIDs returns the unique, sorted vertex IDs adjacent to id.
// Complexity: O(d log d) where d is the degree of id.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	_, ok := g.vertices[id]
	g.muVert.RUnlock()
	if !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	nbrs := g.adjacencyList[id]
	ids := make([]string, 0, len(nbrs))
	for v := range nbrs {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id string) (int, error) {
	ids, err := g.NeighborIDs(id)
	if err != nil {
		return 0, err
	}

	return len(ids), nil
}
