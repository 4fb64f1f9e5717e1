// Copyright 2024 The h3go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package h3go

// cellsToEdgeNonNormalized encodes the edge between the two cells in
// non-normalized form.
func cellsToEdgeNonNormalized(cell1, cell2 H3Index) (H3Index, error) {
	// Determine the IJK direction from the origin to the destination
	direction := directionForNeighbor(cell1, cell2)

	// The direction will be invalid if the cells are not neighbors
	if direction == INVALID_DIGIT {
		return H3_NULL, ErrNotNeighbors
	}

	// Create the edge index for the neighbor direction
	output := cell1
	output.setMode(H3_EDGE_MODE)
	output.setReservedBits(int(direction))

	return output, nil
}

// edgeAsDirectedEdge allows for operations on an edge index as if it
// were a directed edge from the edge owner to the neighboring cell.
func edgeAsDirectedEdge(edge H3Index) H3Index {
	// Do not make indexes that are not edges look "valid".
	if edge.getMode() == H3_EDGE_MODE {
		edge.setMode(H3_DIRECTEDEDGE_MODE)
	}
	return edge
}

// normalizeEdge normalizes an undirected edge.
//
// The normalization convention is that the owner of an edge is the cell
// with the numerically lower index.
func normalizeEdge(edge H3Index) (H3Index, error) {
	origin, destination, err := EdgeToCells(edge)
	if err != nil {
		return H3_NULL, err
	}
	if destination < origin {
		// The edge is not in normalized form already. Since there is
		// only one other representation of this edge, we can be assured
		// that reencoding with that representation will be normalized.
		return cellsToEdgeNonNormalized(destination, origin)
	}
	// The edge is already in normalized form.
	return edge, nil
}

// CellsToEdge returns an undirected edge index based on the two provided
// neighboring cells.
func CellsToEdge(cell1, cell2 H3Index) (H3Index, error) {
	nonNormalizedEdge, err := cellsToEdgeNonNormalized(cell1, cell2)
	if err != nil {
		return H3_NULL, err
	}
	return normalizeEdge(nonNormalizedEdge)
}

// IsValidEdge determines if the provided H3Index is a valid (undirected)
// edge index.
func IsValidEdge(edge H3Index) bool {
	if edge.getMode() != H3_EDGE_MODE {
		return false
	}
	neighborDirection := Direction(edge.getReservedBits())
	if neighborDirection <= CENTER_DIGIT || neighborDirection >= Direction(NUM_DIGITS) {
		return false
	}

	// We also rely on the first returned cell being the "owning" cell.
	origin, destination, err := EdgeToCells(edge)
	if err != nil {
		return false
	}
	if IsPentagon(origin) && neighborDirection == K_AXES_DIGIT {
		// Deleted direction from a pentagon
		return false
	}
	if destination < origin {
		// Not normalized
		return false
	}

	return IsValidCell(origin)
}

// EdgeToCells returns the cell pair for the given undirected edge. The
// first cell returned is always the "owning" cell of the edge.
func EdgeToCells(edge H3Index) (owner, peer H3Index, err error) {
	// Note: this function will accept directed edges as well, but report
	// undirected edge errors.
	directedEdge := edgeAsDirectedEdge(edge)
	owner, peer, err = DirectedEdgeToCells(directedEdge)
	if err != nil {
		return H3_NULL, H3_NULL, wrapDirectedEdgeError(err)
	}
	return owner, peer, nil
}

// CellToEdges provides all of the undirected edges of the given cell.
// The result always has 6 entries; for a pentagon the first entry (the
// deleted K direction) is H3_NULL.
func CellToEdges(origin H3Index) ([6]H3Index, error) {
	// Determine if the origin is a pentagon and special treatment
	// needed.
	isPent := IsPentagon(origin)

	var edges [6]H3Index
	for i := 0; i < 6; i++ {
		if isPent && i == 0 {
			edges[i] = H3_NULL
		} else {
			edge := origin
			edge.setMode(H3_EDGE_MODE)
			edge.setReservedBits(i + 1)
			normalized, err := normalizeEdge(edge)
			if err != nil {
				return edges, err
			}
			edges[i] = normalized
		}
	}
	return edges, nil
}

// EdgeToBoundary provides the coordinates defining the undirected edge.
func EdgeToBoundary(edge H3Index) (CellBoundary, error) {
	// Note: this function will accept directed edges as well, but report
	// undirected edge errors.
	directedEdge := edgeAsDirectedEdge(edge)
	cb, err := DirectedEdgeToBoundary(directedEdge)
	if err != nil {
		return CellBoundary{}, wrapDirectedEdgeError(err)
	}
	return cb, nil
}

// DirectedEdgeToEdge provides the undirected edge for a given directed
// edge.
func DirectedEdgeToEdge(edge H3Index) (H3Index, error) {
	edge.setMode(H3_EDGE_MODE)
	return normalizeEdge(edge)
}
