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

// MAX_BASE_CELL_FACES is the maximum number of faces a base cell's
// children may appear on. No base cell crosses more than 5 faces.
const MAX_BASE_CELL_FACES = 5

// INVALID_VERTEX_NUM is an invalid vertex number.
const INVALID_VERTEX_NUM = -1

// faceRotation pairs a face with the number of ccw 60 degree rotations
// relative to a base cell's home face.
type faceRotation struct {
	face     int
	ccwRot60 int
}

// baseCellVertexRotations is the base cell vertex rotation table.
//
// For each base cell, gives the required CCW rotations to rotate the
// vertexes on a given face to the orientation of the base cell's home
// face.
var baseCellVertexRotations = [NUM_BASE_CELLS][MAX_BASE_CELL_FACES]faceRotation{
	{{0, 5}, {1, 0}, {2, 1}, {0, 0}, {0, 0}},            // base cell 0
	{{1, 5}, {2, 0}, {0, 0}, {0, 0}, {0, 0}},            // base cell 1
	{{0, 5}, {1, 0}, {2, 1}, {6, 3}, {0, 0}},            // base cell 2
	{{1, 5}, {2, 0}, {3, 1}, {0, 0}, {0, 0}},            // base cell 3
	{{4, 5}, {0, 0}, {2, 3}, {1, 2}, {3, 4}},            // base cell 4
	{{0, 5}, {1, 0}, {0, 0}, {0, 0}, {0, 0}},            // base cell 5
	{{1, 0}, {2, 1}, {6, 3}, {0, 0}, {0, 0}},            // base cell 6
	{{1, 5}, {2, 0}, {3, 1}, {7, 3}, {0, 0}},            // base cell 7
	{{0, 0}, {1, 1}, {4, 5}, {0, 0}, {0, 0}},            // base cell 8
	{{1, 5}, {2, 0}, {7, 3}, {0, 0}, {0, 0}},            // base cell 9
	{{0, 5}, {1, 0}, {6, 3}, {0, 0}, {0, 0}},            // base cell 10
	{{1, 0}, {6, 3}, {0, 0}, {0, 0}, {0, 0}},            // base cell 11
	{{2, 5}, {3, 0}, {4, 1}, {0, 0}, {0, 0}},            // base cell 12
	{{2, 5}, {3, 0}, {0, 0}, {0, 0}, {0, 0}},            // base cell 13
	{{1, 0}, {6, 3}, {11, 0}, {2, 1}, {7, 4}},           // base cell 14
	{{0, 1}, {3, 5}, {4, 0}, {0, 0}, {0, 0}},            // base cell 15
	{{0, 0}, {1, 1}, {4, 5}, {5, 3}, {0, 0}},            // base cell 16
	{{1, 3}, {6, 0}, {11, 3}, {0, 0}, {0, 0}},           // base cell 17
	{{0, 0}, {1, 1}, {5, 3}, {0, 0}, {0, 0}},            // base cell 18
	{{2, 0}, {7, 3}, {0, 0}, {0, 0}, {0, 0}},            // base cell 19
	{{2, 3}, {7, 0}, {11, 3}, {0, 0}, {0, 0}},           // base cell 20
	{{2, 0}, {3, 1}, {7, 3}, {0, 0}, {0, 0}},            // base cell 21
	{{0, 0}, {4, 5}, {0, 0}, {0, 0}, {0, 0}},            // base cell 22
	{{1, 3}, {6, 0}, {10, 3}, {0, 0}, {0, 0}},           // base cell 23
	{{10, 0}, {1, 1}, {6, 4}, {0, 0}, {5, 3}},           // base cell 24
	{{1, 3}, {6, 0}, {10, 3}, {11, 3}, {0, 0}},          // base cell 25
	{{2, 5}, {3, 0}, {4, 1}, {8, 3}, {0, 0}},            // base cell 26
	{{6, 3}, {7, 3}, {11, 0}, {0, 0}, {0, 0}},           // base cell 27
	{{3, 5}, {4, 0}, {0, 0}, {0, 0}, {0, 0}},            // base cell 28
	{{2, 5}, {3, 0}, {8, 3}, {0, 0}, {0, 0}},            // base cell 29
	{{0, 0}, {5, 3}, {0, 0}, {0, 0}, {0, 0}},            // base cell 30
	{{0, 1}, {3, 5}, {4, 0}, {9, 3}, {0, 0}},            // base cell 31
	{{0, 3}, {5, 0}, {10, 3}, {0, 0}, {0, 0}},           // base cell 32
	{{0, 0}, {4, 5}, {5, 3}, {0, 0}, {0, 0}},            // base cell 33
	{{2, 3}, {7, 0}, {12, 3}, {0, 0}, {0, 0}},           // base cell 34
	{{6, 3}, {11, 0}, {0, 0}, {0, 0}, {0, 0}},           // base cell 35
	{{2, 3}, {7, 0}, {11, 3}, {12, 3}, {0, 0}},          // base cell 36
	{{5, 3}, {6, 3}, {10, 0}, {0, 0}, {0, 0}},           // base cell 37
	{{12, 0}, {3, 1}, {8, 4}, {2, 0}, {7, 3}},           // base cell 38
	{{6, 0}, {10, 3}, {0, 0}, {0, 0}, {0, 0}},           // base cell 39
	{{7, 0}, {11, 3}, {0, 0}, {0, 0}, {0, 0}},           // base cell 40
	{{0, 1}, {4, 0}, {9, 3}, {0, 0}, {0, 0}},            // base cell 41
	{{3, 0}, {4, 1}, {8, 3}, {0, 0}, {0, 0}},            // base cell 42
	{{3, 0}, {8, 3}, {0, 0}, {0, 0}, {0, 0}},            // base cell 43
	{{3, 5}, {4, 0}, {9, 3}, {0, 0}, {0, 0}},            // base cell 44
	{{6, 0}, {10, 3}, {11, 3}, {0, 0}, {0, 0}},          // base cell 45
	{{6, 3}, {7, 3}, {11, 0}, {16, 3}, {0, 0}},          // base cell 46
	{{3, 3}, {8, 0}, {12, 3}, {0, 0}, {0, 0}},           // base cell 47
	{{0, 3}, {5, 0}, {14, 3}, {0, 0}, {0, 0}},           // base cell 48
	{{4, 0}, {9, 3}, {14, 0}, {0, 1}, {5, 4}},           // base cell 49
	{{0, 3}, {5, 0}, {10, 3}, {14, 3}, {0, 0}},          // base cell 50
	{{7, 3}, {8, 3}, {12, 0}, {0, 0}, {0, 0}},           // base cell 51
	{{5, 3}, {10, 0}, {0, 0}, {0, 0}, {0, 0}},           // base cell 52
	{{4, 0}, {9, 3}, {0, 0}, {0, 0}, {0, 0}},            // base cell 53
	{{7, 3}, {12, 0}, {0, 0}, {0, 0}, {0, 0}},           // base cell 54
	{{7, 0}, {11, 3}, {12, 3}, {0, 0}, {0, 0}},          // base cell 55
	{{6, 3}, {11, 0}, {16, 3}, {0, 0}, {0, 0}},          // base cell 56
	{{5, 1}, {6, 3}, {10, 0}, {15, 3}, {0, 0}},          // base cell 57
	{{4, 1}, {9, 4}, {3, 0}, {8, 3}, {13, 0}},           // base cell 58
	{{6, 3}, {10, 0}, {15, 3}, {0, 0}, {0, 0}},          // base cell 59
	{{7, 3}, {11, 0}, {16, 3}, {0, 0}, {0, 0}},          // base cell 60
	{{4, 3}, {9, 0}, {14, 3}, {0, 0}, {0, 0}},           // base cell 61
	{{3, 3}, {8, 0}, {13, 3}, {0, 0}, {0, 0}},           // base cell 62
	{{16, 0}, {11, 3}, {6, 0}, {15, 1}, {10, 4}},        // base cell 63
	{{3, 3}, {8, 0}, {12, 3}, {13, 3}, {0, 0}},          // base cell 64
	{{4, 3}, {9, 0}, {13, 3}, {0, 0}, {0, 0}},           // base cell 65
	{{5, 3}, {9, 3}, {14, 0}, {0, 0}, {0, 0}},           // base cell 66
	{{5, 0}, {14, 3}, {0, 0}, {0, 0}, {0, 0}},           // base cell 67
	{{11, 3}, {16, 0}, {0, 0}, {0, 0}, {0, 0}},          // base cell 68
	{{8, 0}, {12, 3}, {0, 0}, {0, 0}, {0, 0}},           // base cell 69
	{{5, 0}, {10, 3}, {14, 3}, {0, 0}, {0, 0}},          // base cell 70
	{{7, 3}, {8, 3}, {12, 0}, {17, 3}, {0, 0}},          // base cell 71
	{{16, 1}, {11, 4}, {17, 0}, {12, 3}, {7, 0}},        // base cell 72
	{{7, 3}, {12, 0}, {17, 3}, {0, 0}, {0, 0}},          // base cell 73
	{{5, 3}, {10, 0}, {15, 3}, {0, 0}, {0, 0}},          // base cell 74
	{{4, 3}, {9, 0}, {13, 3}, {14, 3}, {0, 0}},          // base cell 75
	{{8, 3}, {9, 3}, {13, 0}, {0, 0}, {0, 0}},           // base cell 76
	{{11, 3}, {15, 1}, {16, 0}, {0, 0}, {0, 0}},         // base cell 77
	{{10, 3}, {15, 0}, {0, 0}, {0, 0}, {0, 0}},          // base cell 78
	{{10, 3}, {15, 0}, {16, 5}, {0, 0}, {0, 0}},         // base cell 79
	{{11, 3}, {16, 0}, {17, 5}, {0, 0}, {0, 0}},         // base cell 80
	{{9, 3}, {14, 0}, {0, 0}, {0, 0}, {0, 0}},           // base cell 81
	{{8, 3}, {13, 0}, {0, 0}, {0, 0}, {0, 0}},           // base cell 82
	{{10, 3}, {5, 0}, {19, 1}, {14, 4}, {15, 0}},        // base cell 83
	{{8, 0}, {12, 3}, {13, 3}, {0, 0}, {0, 0}},          // base cell 84
	{{5, 3}, {9, 3}, {14, 0}, {19, 3}, {0, 0}},          // base cell 85
	{{9, 0}, {13, 3}, {0, 0}, {0, 0}, {0, 0}},           // base cell 86
	{{5, 3}, {14, 0}, {19, 3}, {0, 0}, {0, 0}},          // base cell 87
	{{12, 3}, {16, 1}, {17, 0}, {0, 0}, {0, 0}},         // base cell 88
	{{8, 3}, {12, 0}, {17, 3}, {0, 0}, {0, 0}},          // base cell 89
	{{11, 3}, {15, 1}, {16, 0}, {17, 5}, {0, 0}},        // base cell 90
	{{12, 3}, {17, 0}, {0, 0}, {0, 0}, {0, 0}},          // base cell 91
	{{10, 3}, {15, 0}, {19, 1}, {0, 0}, {0, 0}},         // base cell 92
	{{15, 1}, {16, 0}, {0, 0}, {0, 0}, {0, 0}},          // base cell 93
	{{9, 0}, {13, 3}, {14, 3}, {0, 0}, {0, 0}},          // base cell 94
	{{10, 3}, {15, 0}, {16, 5}, {19, 1}, {0, 0}},        // base cell 95
	{{8, 3}, {9, 3}, {13, 0}, {18, 3}, {0, 0}},          // base cell 96
	{{13, 3}, {8, 0}, {17, 1}, {12, 4}, {18, 0}},        // base cell 97
	{{8, 3}, {13, 0}, {18, 3}, {0, 0}, {0, 0}},          // base cell 98
	{{16, 1}, {17, 0}, {0, 0}, {0, 0}, {0, 0}},          // base cell 99
	{{14, 3}, {15, 5}, {19, 0}, {0, 0}, {0, 0}},         // base cell 100
	{{9, 3}, {14, 0}, {19, 3}, {0, 0}, {0, 0}},          // base cell 101
	{{14, 3}, {19, 0}, {0, 0}, {0, 0}, {0, 0}},          // base cell 102
	{{12, 3}, {17, 0}, {18, 5}, {0, 0}, {0, 0}},         // base cell 103
	{{9, 3}, {13, 0}, {18, 3}, {0, 0}, {0, 0}},          // base cell 104
	{{12, 3}, {16, 1}, {17, 0}, {18, 5}, {0, 0}},        // base cell 105
	{{15, 1}, {16, 0}, {17, 5}, {0, 0}, {0, 0}},         // base cell 106
	{{18, 1}, {13, 4}, {19, 0}, {14, 3}, {9, 0}},        // base cell 107
	{{15, 0}, {19, 1}, {0, 0}, {0, 0}, {0, 0}},          // base cell 108
	{{15, 0}, {16, 5}, {19, 1}, {0, 0}, {0, 0}},         // base cell 109
	{{13, 3}, {18, 0}, {0, 0}, {0, 0}, {0, 0}},          // base cell 110
	{{13, 3}, {17, 1}, {18, 0}, {0, 0}, {0, 0}},         // base cell 111
	{{14, 3}, {18, 1}, {19, 0}, {0, 0}, {0, 0}},         // base cell 112
	{{16, 1}, {17, 0}, {18, 5}, {0, 0}, {0, 0}},         // base cell 113
	{{14, 3}, {15, 5}, {18, 1}, {19, 0}, {0, 0}},        // base cell 114
	{{13, 3}, {18, 0}, {19, 5}, {0, 0}, {0, 0}},         // base cell 115
	{{17, 1}, {18, 0}, {0, 0}, {0, 0}, {0, 0}},          // base cell 116
	{{15, 5}, {19, 0}, {17, 3}, {18, 2}, {16, 4}},       // base cell 117
	{{15, 5}, {18, 1}, {19, 0}, {0, 0}, {0, 0}},         // base cell 118
	{{13, 3}, {17, 1}, {18, 0}, {19, 5}, {0, 0}},        // base cell 119
	{{18, 1}, {19, 0}, {0, 0}, {0, 0}, {0, 0}},          // base cell 120
	{{17, 1}, {18, 0}, {19, 5}, {0, 0}, {0, 0}},         // base cell 121
}

// vertexRotations gets the number of CCW rotations of the cell's vertex
// numbers compared to the directional layout of its neighbors, or -1 if
// the base cell was not found on the cell's face.
func vertexRotations(cell H3Index) int {
	// Get the face and other info for the origin
	var fijk FaceIJK
	if err := _h3ToFaceIjk(cell, &fijk); err != nil {
		return -1
	}
	baseCell := cell.getBaseCell()
	cellLeadingDigit := _h3LeadingNonZeroDigit(cell)
	mayCrossDeletedSubsequence := _isBaseCellPentagon(baseCell) &&
		cellLeadingDigit == JK_AXES_DIGIT

	var baseFijk FaceIJK
	_baseCellToFaceIjk(baseCell, &baseFijk)
	hasPentCwRot := mayCrossDeletedSubsequence && fijk.face != baseFijk.face
	for i := 0; i < MAX_BASE_CELL_FACES; i++ {
		rot := baseCellVertexRotations[baseCell][i]
		if rot.face == fijk.face {
			ccwRot60 := rot.ccwRot60
			if hasPentCwRot {
				if ccwRot60 == 0 {
					return 5
				}
				return ccwRot60 - 1
			}
			return ccwRot60
		}
	}
	// Failure case, should not be reachable
	return -1
}

// directionToVertexHex gives hexagon direction to vertex number
// relationships (same face). Note that we don't use direction 0
// (center).
var directionToVertexHex = [NUM_HEX_VERTS + 1]int{-1, 3, 1, 2, 5, 4, 0}

// directionToVertexPent gives pentagon direction to vertex number
// relationships (same face). Note that we don't use directions 0
// (center) or 1 (deleted K axis).
var directionToVertexPent = [NUM_PENT_VERTS + 2]int{-1, -1, 1, 2, 4, 3, 0}

// vertexNumToDirectionHex gives hexagon vertex number to direction
// relationships (same face).
var vertexNumToDirectionHex = [NUM_HEX_VERTS]Direction{
	IJ_AXES_DIGIT, J_AXES_DIGIT, JK_AXES_DIGIT,
	K_AXES_DIGIT, IK_AXES_DIGIT, I_AXES_DIGIT,
}

// vertexNumToDirectionPent gives pentagon vertex number to direction
// relationships (same face).
var vertexNumToDirectionPent = [NUM_PENT_VERTS]Direction{
	IJ_AXES_DIGIT, J_AXES_DIGIT, JK_AXES_DIGIT,
	IK_AXES_DIGIT, I_AXES_DIGIT,
}

// revNeighborDirectionsHex is the reverse direction from the neighbor in
// each direction, given as an index into DIRECTIONS to facilitate
// rotation.
var revNeighborDirectionsHex = [NUM_DIGITS]int{
	int(INVALID_DIGIT), 5, 3, 4, 1, 0, 2,
}

// vertexNumForDirection gets the first vertex number for a given
// direction. The neighbor in this direction is located between this
// vertex number and the next number in sequence. Returns
// INVALID_VERTEX_NUM on failure.
func vertexNumForDirection(origin H3Index, direction Direction) int {
	// Determine the vertex number for the direction. If the origin and
	// the base cell are on the same face, we can use the constant
	// relationships above; if they are on different faces, we need to
	// apply a rotation.
	rotations := vertexRotations(origin)
	if rotations < 0 {
		return INVALID_VERTEX_NUM
	}
	if IsPentagon(origin) {
		v := directionToVertexPent[direction]
		if v < 0 {
			return INVALID_VERTEX_NUM
		}
		return (v + NUM_PENT_VERTS - rotations) % NUM_PENT_VERTS
	}
	v := directionToVertexHex[direction]
	if v < 0 {
		return INVALID_VERTEX_NUM
	}
	return (v + NUM_HEX_VERTS - rotations) % NUM_HEX_VERTS
}

// directionForVertexNum gets the direction for a given vertex number.
// This returns the direction for the neighbor between the given vertex
// number and the next number in sequence.
func directionForVertexNum(origin H3Index, vertexNum int) Direction {
	// Determine the vertex rotations for this cell
	rotations := vertexRotations(origin)
	if rotations < 0 {
		return INVALID_DIGIT
	}

	// Find the appropriate direction, rotating CW if necessary
	if IsPentagon(origin) {
		return vertexNumToDirectionPent[(vertexNum+rotations)%NUM_PENT_VERTS]
	}
	return vertexNumToDirectionHex[(vertexNum+rotations)%NUM_HEX_VERTS]
}

// CellToVertex returns a single vertex for a given cell as an H3 index.
//
// Each topological vertex is owned by exactly one of the cells meeting
// at it; by convention the owner is the cell with the lowest numerical
// index.
func CellToVertex(cell H3Index, vertexNum int) (H3Index, error) {
	cellIsPentagon := IsPentagon(cell)
	cellNumVerts := NUM_HEX_VERTS
	if cellIsPentagon {
		cellNumVerts = NUM_PENT_VERTS
	}
	res := cell.getResolution()

	// Check for invalid vertexes
	if vertexNum < 0 || vertexNum > cellNumVerts-1 {
		return H3_NULL, ErrDomain
	}

	// Default the owner and vertex number to the input cell
	owner := cell
	ownerVertexNum := vertexNum

	// Determine the owner, looking at the three cells that share the
	// vertex. By convention, the owner is the cell with the lowest
	// numerical index.

	// If the cell is the center child of its parent, it will always have
	// the lowest index of any neighbor, so we can skip determining the
	// owner
	if res == 0 || cell.getIndexDigit(res) != CENTER_DIGIT {
		// Get the left neighbor of the vertex, with its rotations
		left := directionForVertexNum(cell, vertexNum)
		if left == INVALID_DIGIT {
			return H3_NULL, ErrFailed
		}
		lRotations := 0
		leftNeighbor, err := h3NeighborRotations(cell, left, &lRotations)
		if err != nil {
			return H3_NULL, err
		}
		// Set to owner if lowest index
		if leftNeighbor < owner {
			owner = leftNeighbor
		}

		// Get the right neighbor of the vertex, with its rotations.
		// Note that vertex - 1 is the right side, as vertex numbers are
		// CCW.
		right := directionForVertexNum(cell, (vertexNum-1+cellNumVerts)%cellNumVerts)
		if right == INVALID_DIGIT {
			return H3_NULL, ErrFailed
		}
		rRotations := 0
		rightNeighbor, err := h3NeighborRotations(cell, right, &rRotations)
		if err != nil {
			return H3_NULL, err
		}
		// Set to owner if lowest index
		if rightNeighbor < owner {
			owner = rightNeighbor
			var dir Direction
			if IsPentagon(owner) {
				dir = directionForNeighbor(owner, cell)
			} else {
				dir = DIRECTIONS[(revNeighborDirectionsHex[right]+rRotations)%NUM_HEX_VERTS]
			}
			ownerVertexNum = vertexNumForDirection(owner, dir)
		}

		// Determine the vertex number for the left neighbor
		if owner == leftNeighbor {
			ownerIsPentagon := IsPentagon(owner)
			var dir Direction
			if ownerIsPentagon {
				dir = directionForNeighbor(owner, cell)
			} else {
				dir = DIRECTIONS[(revNeighborDirectionsHex[left]+lRotations)%NUM_HEX_VERTS]
			}

			// For the left neighbor, we need the second vertex of the
			// edge, which may involve looping around the vertex nums
			ownerVertexNum = vertexNumForDirection(owner, dir) + 1
			if ownerVertexNum == NUM_HEX_VERTS ||
				(ownerIsPentagon && ownerVertexNum == NUM_PENT_VERTS) {
				ownerVertexNum = 0
			}
		}
	}

	// Create the vertex index
	vertex := owner
	vertex.setMode(H3_VERTEX_MODE)
	vertex.setReservedBits(ownerVertexNum)

	return vertex, nil
}

// CellToVertexes returns all vertexes for the given cell. The result
// always has 6 entries; for a pentagon the final slot is H3_NULL.
func CellToVertexes(cell H3Index) ([6]H3Index, error) {
	var vertexes [6]H3Index
	cellNumVerts := NUM_HEX_VERTS
	if IsPentagon(cell) {
		cellNumVerts = NUM_PENT_VERTS
	}
	for i := 0; i < cellNumVerts; i++ {
		vertex, err := CellToVertex(cell, i)
		if err != nil {
			return vertexes, err
		}
		vertexes[i] = vertex
	}
	if cellNumVerts == NUM_PENT_VERTS {
		vertexes[5] = H3_NULL
	}
	return vertexes, nil
}

// VertexToLatLng returns the geocoordinates of a vertex.
func VertexToLatLng(vertex H3Index) (LatLng, error) {
	// Get the vertex number and owner from the vertex
	vertexNum := vertex.getReservedBits()
	owner := vertex
	owner.setMode(H3_CELL_MODE)
	owner.setReservedBits(0)
	if !IsValidCell(owner) {
		return LatLng{}, ErrCellInvalid
	}

	// Get the single vertex from the boundary
	var fijk FaceIJK
	if err := _h3ToFaceIjk(owner, &fijk); err != nil {
		return LatLng{}, err
	}
	res := owner.getResolution()

	var boundary CellBoundary
	if IsPentagon(owner) {
		_faceIjkPentToCellBoundary(&fijk, res, vertexNum, 1, &boundary)
	} else {
		_faceIjkToCellBoundary(&fijk, res, vertexNum, 1, &boundary)
	}

	return boundary.Verts[0], nil
}

// IsValidVertex determines if the given H3 index is a valid vertex
// index.
func IsValidVertex(vertex H3Index) bool {
	if vertex.getMode() != H3_VERTEX_MODE {
		return false
	}

	vertexNum := vertex.getReservedBits()
	owner := vertex
	owner.setMode(H3_CELL_MODE)
	owner.setReservedBits(0)
	if !IsValidCell(owner) {
		return false
	}

	// The easiest way to ensure that the owner + vertex number is valid,
	// and that the vertex is canonical, is to recreate and compare.
	canonical, err := CellToVertex(owner, vertexNum)
	if err != nil {
		return false
	}
	return vertex == canonical
}
