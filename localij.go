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

// PENTAGON_ROTATIONS is origin leading digit -> index leading digit ->
// rotations 60 cw. Either being 1 (K axis) is invalid. No good default
// at 0.
var PENTAGON_ROTATIONS = [7][7]int{
	{0, -1, 0, 0, 0, 0, 0},       // 0
	{-1, -1, -1, -1, -1, -1, -1}, // 1
	{0, -1, 0, 0, 0, 1, 0},       // 2
	{0, -1, 0, 0, 1, 1, 0},       // 3
	{0, -1, 0, 5, 0, 0, 0},       // 4
	{0, -1, 5, 5, 0, 0, 0},       // 5
	{0, -1, 0, 0, 0, 0, 0},       // 6
}

// PENTAGON_ROTATIONS_REVERSE is reverse base cell direction -> leading
// index digit -> rotations 60 ccw. For reversing the rotation introduced
// in PENTAGON_ROTATIONS when the origin is on a pentagon (regardless of
// the base cell of the index.)
var PENTAGON_ROTATIONS_REVERSE = [7][7]int{
	{0, 0, 0, 0, 0, 0, 0},        // 0
	{-1, -1, -1, -1, -1, -1, -1}, // 1
	{0, 1, 0, 0, 0, 0, 0},        // 2
	{0, 1, 0, 0, 0, 1, 0},        // 3
	{0, 5, 0, 0, 0, 0, 0},        // 4
	{0, 5, 0, 5, 0, 0, 0},        // 5
	{0, 0, 0, 0, 0, 0, 0},        // 6
}

// PENTAGON_ROTATIONS_REVERSE_NONPOLAR is reverse base cell direction ->
// leading index digit -> rotations 60 ccw. For reversing the rotation
// introduced in PENTAGON_ROTATIONS when the index is on a pentagon and
// the origin is not.
var PENTAGON_ROTATIONS_REVERSE_NONPOLAR = [7][7]int{
	{0, 0, 0, 0, 0, 0, 0},        // 0
	{-1, -1, -1, -1, -1, -1, -1}, // 1
	{0, 1, 0, 0, 0, 0, 0},        // 2
	{0, 1, 0, 0, 0, 1, 0},        // 3
	{0, 5, 0, 0, 0, 0, 0},        // 4
	{0, 1, 0, 5, 1, 1, 0},        // 5
	{0, 0, 0, 0, 0, 0, 0},        // 6
}

// PENTAGON_ROTATIONS_REVERSE_POLAR is reverse base cell direction ->
// leading index digit -> rotations 60 ccw. For reversing the rotation
// introduced in PENTAGON_ROTATIONS when the index is on a polar pentagon
// and the origin is not.
var PENTAGON_ROTATIONS_REVERSE_POLAR = [7][7]int{
	{0, 0, 0, 0, 0, 0, 0},        // 0
	{-1, -1, -1, -1, -1, -1, -1}, // 1
	{0, 1, 1, 1, 1, 1, 1},        // 2
	{0, 1, 0, 0, 0, 1, 0},        // 3
	{0, 1, 0, 0, 1, 1, 1},        // 4
	{0, 1, 0, 5, 1, 1, 0},        // 5
	{0, 1, 1, 0, 1, 1, 1},        // 6
}

// FAILED_DIRECTIONS are the prohibited directions when unfolding a
// pentagon.
//
// Indexed by two directions, both relative to the pentagon base cell.
// The first is the direction of the origin index and the second is the
// direction of the index to unfold. Direction refers to the direction
// from base cell to base cell if the indexes are on different base
// cells, or the leading digit if within the pentagon base cell.
//
// Currently, any unfolding across more than one icosahedron face is not
// permitted.
var FAILED_DIRECTIONS = [7][7]bool{
	{false, false, false, false, false, false, false}, // 0
	{false, false, false, false, false, false, false}, // 1
	{false, false, false, false, true, true, false},   // 2
	{false, false, false, false, true, false, true},   // 3
	{false, false, true, true, false, false, false},   // 4
	{false, false, true, false, false, false, true},   // 5
	{false, false, false, true, false, true, false},   // 6
}

// cellToLocalIjk produces ijk+ coordinates for an index anchored by an
// origin.
//
// The coordinate space used by this function may have deleted regions or
// warping due to pentagonal distortion.
//
// Coordinates are only comparable if they come from the same origin
// index.
//
// Failure may occur if the index is too far away from the origin or if
// the index is on the other side of a pentagon.
func cellToLocalIjk(origin, h3 H3Index, out *CoordIJK) error {
	res := origin.getResolution()

	if res != h3.getResolution() {
		return ErrResMismatch
	}

	originBaseCell := origin.getBaseCell()
	baseCell := h3.getBaseCell()

	if originBaseCell < 0 || originBaseCell >= NUM_BASE_CELLS {
		return ErrCellInvalid
	}
	if baseCell < 0 || baseCell >= NUM_BASE_CELLS {
		return ErrCellInvalid
	}

	// Direction from origin base cell to index base cell
	dir := CENTER_DIGIT
	revDir := CENTER_DIGIT
	if originBaseCell != baseCell {
		dir = _getBaseCellDirection(originBaseCell, baseCell)
		if dir == INVALID_DIGIT {
			// Base cells are not neighbors, can't unfold.
			return ErrFailed
		}
		revDir = _getBaseCellDirection(baseCell, originBaseCell)
	}

	originOnPent := _isBaseCellPentagon(originBaseCell)
	indexOnPent := _isBaseCellPentagon(baseCell)

	var indexFijk FaceIJK
	if dir != CENTER_DIGIT {
		// Rotate index into the orientation of the origin base cell.
		// cw because we are undoing the rotation into that base cell.
		baseCellRotations := baseCellNeighbor60CCWRots[originBaseCell][dir]
		if indexOnPent {
			for i := 0; i < baseCellRotations; i++ {
				h3 = _h3RotatePent60cw(h3)

				revDir = _rotate60cw(revDir)
				if revDir == K_AXES_DIGIT {
					revDir = _rotate60cw(revDir)
				}
			}
		} else {
			for i := 0; i < baseCellRotations; i++ {
				h3 = _h3Rotate60cw(h3)

				revDir = _rotate60cw(revDir)
			}
		}
	}
	// Face is unused. This produces coordinates in base cell coordinate
	// space.
	_h3ToFaceIjkWithInitializedFijk(h3, &indexFijk)

	if dir != CENTER_DIGIT {
		pentagonRotations := 0
		directionRotations := 0

		if originOnPent {
			originLeadingDigit := _h3LeadingNonZeroDigit(origin)

			if originLeadingDigit == INVALID_DIGIT {
				return ErrCellInvalid
			}
			if FAILED_DIRECTIONS[originLeadingDigit][dir] {
				// This case may be unfolding the pentagon incorrectly;
				// fail rather than guess.
				return ErrFailed
			}

			directionRotations = PENTAGON_ROTATIONS[originLeadingDigit][dir]
			pentagonRotations = directionRotations
		} else if indexOnPent {
			indexLeadingDigit := _h3LeadingNonZeroDigit(h3)

			if indexLeadingDigit == INVALID_DIGIT {
				return ErrCellInvalid
			}
			if FAILED_DIRECTIONS[indexLeadingDigit][revDir] {
				// This case may be unfolding the pentagon incorrectly;
				// fail rather than guess.
				return ErrFailed
			}

			pentagonRotations = PENTAGON_ROTATIONS[revDir][indexLeadingDigit]
		}

		if pentagonRotations < 0 || directionRotations < 0 {
			// This occurs when an invalid K axis digit is present
			return ErrCellInvalid
		}

		for i := 0; i < pentagonRotations; i++ {
			_ijkRotate60cw(&indexFijk.coord)
		}

		var offset CoordIJK
		_neighbor(&offset, dir)
		// Scale offset based on resolution
		for r := res - 1; r >= 0; r-- {
			if isResolutionClassIII(r + 1) {
				// rotate ccw
				_downAp7(&offset)
			} else {
				// rotate cw
				_downAp7r(&offset)
			}
		}

		for i := 0; i < directionRotations; i++ {
			_ijkRotate60cw(&offset)
		}

		// Perform necessary translation
		_ijkAdd(&indexFijk.coord, &offset, &indexFijk.coord)
		_ijkNormalize(&indexFijk.coord)
	} else if originOnPent && indexOnPent {
		// If the origin and index are on pentagon, and we checked that
		// the base cells are the same or neighboring, then they must be
		// the same base cell.
		originLeadingDigit := _h3LeadingNonZeroDigit(origin)
		indexLeadingDigit := _h3LeadingNonZeroDigit(h3)

		if originLeadingDigit == INVALID_DIGIT || indexLeadingDigit == INVALID_DIGIT {
			return ErrCellInvalid
		}
		if FAILED_DIRECTIONS[originLeadingDigit][indexLeadingDigit] {
			// This case may be unfolding the pentagon incorrectly; fail
			// rather than guess.
			return ErrFailed
		}

		withinPentagonRotations := PENTAGON_ROTATIONS[originLeadingDigit][indexLeadingDigit]
		if withinPentagonRotations < 0 {
			return ErrCellInvalid
		}

		for i := 0; i < withinPentagonRotations; i++ {
			_ijkRotate60cw(&indexFijk.coord)
		}
	}

	*out = indexFijk.coord
	return nil
}

// localIjkToCell produces an index for ijk+ coordinates anchored by an
// origin.
//
// The coordinate space used by this function may have deleted regions or
// warping due to pentagonal distortion.
//
// Failure may occur if the coordinates are too far away from the origin
// or if the index is on the other side of a pentagon.
func localIjkToCell(origin H3Index, ijk *CoordIJK, out *H3Index) error {
	res := origin.getResolution()
	originBaseCell := origin.getBaseCell()
	if originBaseCell < 0 || originBaseCell >= NUM_BASE_CELLS {
		return ErrCellInvalid
	}
	originOnPent := _isBaseCellPentagon(originBaseCell)

	// This logic is very similar to faceIjkToH3
	// initialize the index
	*out = H3_INIT
	out.setMode(H3_CELL_MODE)
	out.setResolution(res)

	// check for res 0/base cell
	if res == 0 {
		if ijk.i > 1 || ijk.j > 1 || ijk.k > 1 {
			// out of range input
			return ErrFailed
		}

		dir := _unitIjkToDigit(ijk)
		newBaseCell := _getBaseCellNeighbor(originBaseCell, dir)
		if newBaseCell == INVALID_BASE_CELL {
			// Moving in an invalid direction off a pentagon.
			return ErrFailed
		}
		out.setBaseCell(newBaseCell)
		return nil
	}

	// we need to find the correct base cell offset (if any) for this H3
	// index; start with the passed in base cell and resolution res ijk
	// coordinates in that base cell's coordinate system
	ijkCopy := *ijk

	// build the H3Index from finest res up
	// adjust r for the fact that the res 0 base cell offsets the
	// indexing digits
	for r := res - 1; r >= 0; r-- {
		lastIJK := ijkCopy
		var lastCenter CoordIJK
		if isResolutionClassIII(r + 1) {
			// rotate ccw
			_upAp7(&ijkCopy)
			lastCenter = ijkCopy
			_downAp7(&lastCenter)
		} else {
			// rotate cw
			_upAp7r(&ijkCopy)
			lastCenter = ijkCopy
			_downAp7r(&lastCenter)
		}

		var diff CoordIJK
		_ijkSub(&lastIJK, &lastCenter, &diff)
		_ijkNormalize(&diff)

		out.setIndexDigit(r+1, _unitIjkToDigit(&diff))
	}

	// ijkCopy should now hold the IJK of the base cell in the coordinate
	// system of the current base cell

	if ijkCopy.i > 1 || ijkCopy.j > 1 || ijkCopy.k > 1 {
		// out of range input
		return ErrFailed
	}

	// lookup the correct base cell
	dir := _unitIjkToDigit(&ijkCopy)
	baseCell := _getBaseCellNeighbor(originBaseCell, dir)
	// If baseCell is invalid, it must be because the origin base cell is
	// a pentagon, and because pentagon base cells do not border each
	// other, baseCell must not be a pentagon.
	indexOnPent := baseCell != INVALID_BASE_CELL && _isBaseCellPentagon(baseCell)

	if dir != CENTER_DIGIT {
		// If the index is in a warped direction, we need to unwarp the
		// base cell direction. There may be further need to rotate the
		// index digits.
		pentagonRotations := 0
		if originOnPent {
			originLeadingDigit := _h3LeadingNonZeroDigit(origin)
			if originLeadingDigit == INVALID_DIGIT {
				return ErrCellInvalid
			}
			pentagonRotations = PENTAGON_ROTATIONS_REVERSE[originLeadingDigit][dir]
			if pentagonRotations < 0 {
				return ErrCellInvalid
			}
			for i := 0; i < pentagonRotations; i++ {
				dir = _rotate60ccw(dir)
			}
			// The pentagon rotations are being chosen so that dir is not
			// the deleted direction. If it still happens, it means we're
			// moving into a deleted subsequence, so there is no index
			// here.
			if dir == K_AXES_DIGIT {
				return ErrPentagon
			}
			baseCell = _getBaseCellNeighbor(originBaseCell, dir)

			// indexOnPent does not need to be checked again since no
			// pentagon base cells border each other.
		}

		// Now we can determine the relation between the origin and
		// target base cell.
		baseCellRotations := baseCellNeighbor60CCWRots[originBaseCell][dir]

		// Adjust for pentagon warping within the base cell. The base
		// cell should be in the right location, so now we need to rotate
		// the index back. We might not need to check for errors since we
		// would just be double mapping.
		if indexOnPent {
			revDir := _getBaseCellDirection(baseCell, originBaseCell)

			// Adjust for the different coordinate space in the two base
			// cells. This is done first because we need to do the
			// pentagon rotations based on the leading digit in the
			// pentagon's coordinate system.
			for i := 0; i < baseCellRotations; i++ {
				*out = _h3Rotate60ccw(*out)
			}

			indexLeadingDigit := _h3LeadingNonZeroDigit(*out)
			if indexLeadingDigit == INVALID_DIGIT {
				return ErrCellInvalid
			}
			if _isBaseCellPolarPentagon(baseCell) {
				pentagonRotations = PENTAGON_ROTATIONS_REVERSE_POLAR[revDir][indexLeadingDigit]
			} else {
				pentagonRotations = PENTAGON_ROTATIONS_REVERSE_NONPOLAR[revDir][indexLeadingDigit]
			}
			// For this to occur, revDir would need to be 1. Since revDir
			// is from the index base cell (which is a pentagon) towards
			// the origin, this should never be the case.
			if pentagonRotations < 0 {
				return ErrCellInvalid
			}

			for i := 0; i < pentagonRotations; i++ {
				*out = _h3RotatePent60ccw(*out)
			}
		} else {
			if pentagonRotations < 0 {
				return ErrCellInvalid
			}
			for i := 0; i < pentagonRotations; i++ {
				*out = _h3Rotate60ccw(*out)
			}

			// Adjust for the different coordinate space in the two base
			// cells.
			for i := 0; i < baseCellRotations; i++ {
				*out = _h3Rotate60ccw(*out)
			}
		}
	} else if originOnPent && indexOnPent {
		originLeadingDigit := _h3LeadingNonZeroDigit(origin)
		indexLeadingDigit := _h3LeadingNonZeroDigit(*out)

		if originLeadingDigit == INVALID_DIGIT || indexLeadingDigit == INVALID_DIGIT {
			return ErrCellInvalid
		}
		withinPentagonRotations := PENTAGON_ROTATIONS_REVERSE[originLeadingDigit][indexLeadingDigit]
		if withinPentagonRotations < 0 {
			// This occurs when an invalid K axis digit is present
			return ErrCellInvalid
		}

		for i := 0; i < withinPentagonRotations; i++ {
			*out = _h3Rotate60ccw(*out)
		}
	}

	if indexOnPent {
		// There are cases in cellToLocalIjk which are failed but not
		// accounted for here - instead just fail if the recovered index
		// is invalid.
		if _h3LeadingNonZeroDigit(*out) == K_AXES_DIGIT {
			return ErrPentagon
		}
	}

	out.setBaseCell(baseCell)
	return nil
}

// CellToLocalIj produces local ij coordinates for an index anchored by
// an origin.
//
// The coordinate space used by this function may have deleted regions or
// warping due to pentagonal distortion. Coordinates are only comparable
// if they come from the same origin index.
//
// Failure may occur if the index is too far away from the origin or if
// the index is on the other side of a pentagon.
//
// mode is reserved and must be 0.
func CellToLocalIj(origin, h3 H3Index, mode uint32) (CoordIJ, error) {
	if mode != 0 {
		return CoordIJ{}, ErrOptionInvalid
	}
	var ijk CoordIJK
	if err := cellToLocalIjk(origin, h3, &ijk); err != nil {
		return CoordIJ{}, err
	}

	var out CoordIJ
	ijkToIj(&ijk, &out)

	return out, nil
}

// LocalIjToCell produces an index for local ij coordinates anchored by
// an origin.
//
// The coordinate space used by this function may have deleted regions or
// warping due to pentagonal distortion.
//
// Failure may occur if the coordinates are too far away from the origin
// or if the index is on the other side of a pentagon.
//
// mode is reserved and must be 0.
func LocalIjToCell(origin H3Index, ij *CoordIJ, mode uint32) (H3Index, error) {
	if mode != 0 {
		return H3_NULL, ErrOptionInvalid
	}
	var ijk CoordIJK
	if err := ijToIjk(ij, &ijk); err != nil {
		return H3_NULL, err
	}

	var out H3Index
	if err := localIjkToCell(origin, &ijk, &out); err != nil {
		return H3_NULL, err
	}
	return out, nil
}

// GridDistance produces the grid distance between the two indexes.
//
// This function may fail to find the distance between two indexes, for
// example if they are very far apart. It may also fail when finding
// distances for indexes on opposite sides of a pentagon.
func GridDistance(origin, h3 H3Index) (int64, error) {
	var originIjk, h3Ijk CoordIJK
	if err := cellToLocalIjk(origin, origin, &originIjk); err != nil {
		return 0, err
	}
	if err := cellToLocalIjk(origin, h3, &h3Ijk); err != nil {
		return 0, err
	}

	return int64(ijkDistance(&originIjk, &h3Ijk)), nil
}

// GridPathCellsSize returns the number of indexes in a line from the
// start index to the end index.
func GridPathCellsSize(start, end H3Index) (int64, error) {
	distance, err := GridDistance(start, end)
	if err != nil {
		return 0, err
	}
	return distance + 1, nil
}

// GridPathCells returns the line of indexes between two indexes
// (inclusive).
//
// This function may fail to find the line between two indexes, for
// example if they are very far apart. It may also fail when finding
// distances for indexes on opposite sides of a pentagon.
//
// Notes:
//
//   - The specific output of this function should not be considered
//     stable across library versions. The only guarantees are that the
//     line length will be gridDistance(start, end) + 1 and that every
//     index in the line will be a neighbor of the preceding index.
//   - Lines are drawn in grid space, and may not correspond exactly to
//     either Cartesian lines or great arcs.
func GridPathCells(start, end H3Index) ([]H3Index, error) {
	distance, err := GridDistance(start, end)
	if err != nil {
		return nil, err
	}

	// Get IJK coords for the start and end. We've already confirmed that
	// these can be calculated with the distance check above.
	var startIjk, endIjk CoordIJK
	if err := cellToLocalIjk(start, start, &startIjk); err != nil {
		return nil, err
	}
	if err := cellToLocalIjk(start, end, &endIjk); err != nil {
		return nil, err
	}

	// Convert IJK to cube coordinates suitable for linear interpolation
	ijkToCube(&startIjk)
	ijkToCube(&endIjk)

	var iStep, jStep, kStep float64
	if distance > 0 {
		iStep = float64(endIjk.i-startIjk.i) / float64(distance)
		jStep = float64(endIjk.j-startIjk.j) / float64(distance)
		kStep = float64(endIjk.k-startIjk.k) / float64(distance)
	}

	out := make([]H3Index, 0, distance+1)
	currentIjk := startIjk
	for n := int64(0); n <= distance; n++ {
		cubeRound(
			float64(startIjk.i)+iStep*float64(n),
			float64(startIjk.j)+jStep*float64(n),
			float64(startIjk.k)+kStep*float64(n),
			&currentIjk)
		// Convert cube -> ijk -> h3 index
		cubeToIjk(&currentIjk)
		var cell H3Index
		if err := localIjkToCell(start, &currentIjk, &cell); err != nil {
			// Expected to be unreachable since cells between start and
			// end have valid local IJK coordinates.
			return nil, err
		}
		out = append(out, cell)
	}

	return out, nil
}
