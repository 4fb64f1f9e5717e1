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

// AreNeighborCells returns whether or not the provided cells are
// neighbors.
func AreNeighborCells(origin, destination H3Index) (bool, error) {
	// Make sure they're cell indexes
	if origin.getMode() != H3_CELL_MODE || destination.getMode() != H3_CELL_MODE {
		return false, ErrCellInvalid
	}

	// Cells cannot be neighbors with themselves
	if origin == destination {
		return false, nil
	}

	// Only cells in the same resolution can be neighbors
	if origin.getResolution() != destination.getResolution() {
		return false, ErrResMismatch
	}

	// Cells that share the same parent are very likely to be neighbors.
	// Child 0 is neighbor with all of its parent's 'offspring', the
	// other children are neighbors with 3 of the 7 children. So a simple
	// comparison of origin and destination parents and then a lookup
	// table of the children is a cheap way to possibly determine they
	// are neighbors.
	parentRes := origin.getResolution() - 1
	if parentRes > 0 {
		originParent, _ := CellToParent(origin, parentRes)
		destinationParent, _ := CellToParent(destination, parentRes)
		if originParent == destinationParent {
			originResDigit := origin.getIndexDigit(parentRes + 1)
			destinationResDigit := destination.getIndexDigit(parentRes + 1)
			if originResDigit == CENTER_DIGIT || destinationResDigit == CENTER_DIGIT {
				return true, nil
			}
			if originResDigit >= INVALID_DIGIT {
				// Prevent indexing off the end of the array below
				return false, ErrCellInvalid
			}
			if (originResDigit == K_AXES_DIGIT || destinationResDigit == K_AXES_DIGIT) &&
				IsPentagon(originParent) {
				// If these are invalid cells, fail rather than
				// incorrectly reporting neighbors. For pentagon cells
				// that are actually neighbors across the deleted
				// subsequence, they will fail the optimized check below,
				// but they will be accepted by the gridDisk check below
				// that.
				return false, ErrCellInvalid
			}
			// These sets are the relevant neighbors in the clockwise and
			// counter-clockwise directions
			neighborSetClockwise := [...]Direction{
				CENTER_DIGIT, JK_AXES_DIGIT, IJ_AXES_DIGIT, J_AXES_DIGIT,
				IK_AXES_DIGIT, K_AXES_DIGIT, I_AXES_DIGIT}
			neighborSetCounterclockwise := [...]Direction{
				CENTER_DIGIT, IK_AXES_DIGIT, JK_AXES_DIGIT, K_AXES_DIGIT,
				IJ_AXES_DIGIT, I_AXES_DIGIT, J_AXES_DIGIT}
			if neighborSetClockwise[originResDigit] == destinationResDigit ||
				neighborSetCounterclockwise[originResDigit] == destinationResDigit {
				return true, nil
			}
		}
	}

	// Otherwise, we have to determine the neighbor relationship the
	// "hard" way.
	neighborRing, err := GridDisk(origin, 1)
	if err != nil {
		return false, err
	}
	for _, neighbor := range neighborRing {
		if neighbor == destination {
			return true, nil
		}
	}

	// Made it here, they definitely aren't neighbors
	return false, nil
}

// CellsToDirectedEdge returns a directed edge index based on the
// provided origin and destination cells.
func CellsToDirectedEdge(origin, destination H3Index) (H3Index, error) {
	// Determine the IJK direction from the origin to the destination
	direction := directionForNeighbor(origin, destination)

	// The direction will be invalid if the cells are not neighbors
	if direction == INVALID_DIGIT {
		return H3_NULL, ErrNotNeighbors
	}

	// Create the edge index for the neighbor direction
	output := origin
	output.setMode(H3_DIRECTEDEDGE_MODE)
	output.setReservedBits(int(direction))

	return output, nil
}

// GetDirectedEdgeOrigin returns the origin cell from the given directed
// edge.
func GetDirectedEdgeOrigin(edge H3Index) (H3Index, error) {
	if edge.getMode() != H3_DIRECTEDEDGE_MODE {
		return H3_NULL, ErrDirEdgeInvalid
	}
	origin := edge
	origin.setMode(H3_CELL_MODE)
	origin.setReservedBits(0)
	return origin, nil
}

// GetDirectedEdgeDestination returns the destination cell from the given
// directed edge.
func GetDirectedEdgeDestination(edge H3Index) (H3Index, error) {
	direction := Direction(edge.getReservedBits())
	rotations := 0
	// Note: This call is also checking for H3_DIRECTEDEDGE_MODE
	origin, err := GetDirectedEdgeOrigin(edge)
	if err != nil {
		return H3_NULL, err
	}
	return h3NeighborRotations(origin, direction, &rotations)
}

// IsValidDirectedEdge determines if the provided H3Index is a valid
// directed edge index.
func IsValidDirectedEdge(edge H3Index) bool {
	neighborDirection := Direction(edge.getReservedBits())
	if neighborDirection <= CENTER_DIGIT || neighborDirection >= Direction(NUM_DIGITS) {
		return false
	}

	// Note: This call is also checking for H3_DIRECTEDEDGE_MODE
	origin, err := GetDirectedEdgeOrigin(edge)
	if err != nil {
		return false
	}
	if IsPentagon(origin) && neighborDirection == K_AXES_DIGIT {
		return false
	}

	return IsValidCell(origin)
}

// DirectedEdgeToCells returns the origin, destination pair of cells for
// the given directed edge.
func DirectedEdgeToCells(edge H3Index) (origin, destination H3Index, err error) {
	origin, err = GetDirectedEdgeOrigin(edge)
	if err != nil {
		return H3_NULL, H3_NULL, err
	}
	destination, err = GetDirectedEdgeDestination(edge)
	if err != nil {
		return H3_NULL, H3_NULL, err
	}
	return origin, destination, nil
}

// ReverseDirectedEdge produces the directed edge from the destination of
// the given edge to its origin.
func ReverseDirectedEdge(edge H3Index) (H3Index, error) {
	origin, destination, err := DirectedEdgeToCells(edge)
	if err != nil {
		return H3_NULL, err
	}
	return CellsToDirectedEdge(destination, origin)
}

// OriginToDirectedEdges provides all of the directed edges from the
// given origin cell. The result always has 6 entries; for a pentagon the
// first entry (the deleted K direction) is H3_NULL.
func OriginToDirectedEdges(origin H3Index) [6]H3Index {
	// Determine if the origin is a pentagon and special treatment
	// needed.
	isPent := IsPentagon(origin)

	// This is actually quite simple. Just modify the bits of the origin
	// slightly for each direction, except the 'k' direction in
	// pentagons, which is zeroed.
	var edges [6]H3Index
	for i := 0; i < 6; i++ {
		if isPent && i == 0 {
			edges[i] = H3_NULL
		} else {
			edges[i] = origin
			edges[i].setMode(H3_DIRECTEDEDGE_MODE)
			edges[i].setReservedBits(i + 1)
		}
	}
	return edges
}

// DirectedEdgeToBoundary provides the coordinates defining the directed
// edge. Note that while there are always 2 topological vertexes per
// edge, the resulting edge boundary may have an additional distortion
// vertex if it crosses an edge of the icosahedron.
func DirectedEdgeToBoundary(edge H3Index) (CellBoundary, error) {
	// Get the origin and neighbor direction from the edge
	direction := Direction(edge.getReservedBits())
	origin, err := GetDirectedEdgeOrigin(edge)
	if err != nil {
		return CellBoundary{}, err
	}

	// Get the start vertex for the edge
	startVertex := vertexNumForDirection(origin, direction)
	if startVertex == INVALID_VERTEX_NUM {
		// This is not actually an edge (i.e. no valid direction), so
		// return no vertices.
		return CellBoundary{}, ErrDirEdgeInvalid
	}

	// Get the geo boundary for the appropriate vertexes of the origin.
	var fijk FaceIJK
	if err := _h3ToFaceIjk(origin, &fijk); err != nil {
		return CellBoundary{}, err
	}
	res := origin.getResolution()

	var cb CellBoundary
	if IsPentagon(origin) {
		_faceIjkPentToCellBoundary(&fijk, res, startVertex, 2, &cb)
	} else {
		_faceIjkToCellBoundary(&fijk, res, startVertex, 2, &cb)
	}
	return cb, nil
}
