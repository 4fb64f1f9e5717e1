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

/*
 * DIRECTIONS are the directions used for traversing a hexagonal ring
 * counterclockwise around {1, 0, 0}
 *
 *      _
 *    _/ \_
 *   / \5/ \
 *   \0/ \4/
 *   / \_/ \
 *   \1/ \3/
 *     \2/
 */
var DIRECTIONS = [6]Direction{
	J_AXES_DIGIT, JK_AXES_DIGIT, K_AXES_DIGIT,
	IK_AXES_DIGIT, I_AXES_DIGIT, IJ_AXES_DIGIT,
}

// NEXT_RING_DIRECTION is the direction used for traversing to the next
// outward hexagonal ring.
const NEXT_RING_DIRECTION = I_AXES_DIGIT

// NEW_DIGIT_II gives the new digit when traversing along class II grids.
//
// Current digit -> direction -> new digit.
var NEW_DIGIT_II = [7][7]Direction{
	{CENTER_DIGIT, K_AXES_DIGIT, J_AXES_DIGIT, JK_AXES_DIGIT, I_AXES_DIGIT,
		IK_AXES_DIGIT, IJ_AXES_DIGIT},
	{K_AXES_DIGIT, I_AXES_DIGIT, JK_AXES_DIGIT, IJ_AXES_DIGIT, IK_AXES_DIGIT,
		J_AXES_DIGIT, CENTER_DIGIT},
	{J_AXES_DIGIT, JK_AXES_DIGIT, K_AXES_DIGIT, I_AXES_DIGIT, IJ_AXES_DIGIT,
		CENTER_DIGIT, IK_AXES_DIGIT},
	{JK_AXES_DIGIT, IJ_AXES_DIGIT, I_AXES_DIGIT, IK_AXES_DIGIT, CENTER_DIGIT,
		K_AXES_DIGIT, J_AXES_DIGIT},
	{I_AXES_DIGIT, IK_AXES_DIGIT, IJ_AXES_DIGIT, CENTER_DIGIT, J_AXES_DIGIT,
		JK_AXES_DIGIT, K_AXES_DIGIT},
	{IK_AXES_DIGIT, J_AXES_DIGIT, CENTER_DIGIT, K_AXES_DIGIT, JK_AXES_DIGIT,
		IJ_AXES_DIGIT, I_AXES_DIGIT},
	{IJ_AXES_DIGIT, CENTER_DIGIT, IK_AXES_DIGIT, J_AXES_DIGIT, K_AXES_DIGIT,
		I_AXES_DIGIT, JK_AXES_DIGIT},
}

// NEW_ADJUSTMENT_II gives the new traversal direction when traversing
// along class II grids.
//
// Current digit -> direction -> new ap7 move (at coarser level).
var NEW_ADJUSTMENT_II = [7][7]Direction{
	{CENTER_DIGIT, CENTER_DIGIT, CENTER_DIGIT, CENTER_DIGIT, CENTER_DIGIT,
		CENTER_DIGIT, CENTER_DIGIT},
	{CENTER_DIGIT, K_AXES_DIGIT, CENTER_DIGIT, K_AXES_DIGIT, CENTER_DIGIT,
		IK_AXES_DIGIT, CENTER_DIGIT},
	{CENTER_DIGIT, CENTER_DIGIT, J_AXES_DIGIT, JK_AXES_DIGIT, CENTER_DIGIT,
		CENTER_DIGIT, J_AXES_DIGIT},
	{CENTER_DIGIT, K_AXES_DIGIT, JK_AXES_DIGIT, JK_AXES_DIGIT, CENTER_DIGIT,
		CENTER_DIGIT, CENTER_DIGIT},
	{CENTER_DIGIT, CENTER_DIGIT, CENTER_DIGIT, CENTER_DIGIT, I_AXES_DIGIT,
		I_AXES_DIGIT, IJ_AXES_DIGIT},
	{CENTER_DIGIT, IK_AXES_DIGIT, CENTER_DIGIT, CENTER_DIGIT, I_AXES_DIGIT,
		IK_AXES_DIGIT, CENTER_DIGIT},
	{CENTER_DIGIT, CENTER_DIGIT, J_AXES_DIGIT, CENTER_DIGIT, IJ_AXES_DIGIT,
		CENTER_DIGIT, IJ_AXES_DIGIT},
}

// NEW_DIGIT_III gives the new digit when traversing along class III
// grids.
//
// Current digit -> direction -> new digit.
var NEW_DIGIT_III = [7][7]Direction{
	{CENTER_DIGIT, K_AXES_DIGIT, J_AXES_DIGIT, JK_AXES_DIGIT, I_AXES_DIGIT,
		IK_AXES_DIGIT, IJ_AXES_DIGIT},
	{K_AXES_DIGIT, J_AXES_DIGIT, JK_AXES_DIGIT, I_AXES_DIGIT, IK_AXES_DIGIT,
		IJ_AXES_DIGIT, CENTER_DIGIT},
	{J_AXES_DIGIT, JK_AXES_DIGIT, I_AXES_DIGIT, IK_AXES_DIGIT, IJ_AXES_DIGIT,
		CENTER_DIGIT, K_AXES_DIGIT},
	{JK_AXES_DIGIT, I_AXES_DIGIT, IK_AXES_DIGIT, IJ_AXES_DIGIT, CENTER_DIGIT,
		K_AXES_DIGIT, J_AXES_DIGIT},
	{I_AXES_DIGIT, IK_AXES_DIGIT, IJ_AXES_DIGIT, CENTER_DIGIT, K_AXES_DIGIT,
		J_AXES_DIGIT, JK_AXES_DIGIT},
	{IK_AXES_DIGIT, IJ_AXES_DIGIT, CENTER_DIGIT, K_AXES_DIGIT, J_AXES_DIGIT,
		JK_AXES_DIGIT, I_AXES_DIGIT},
	{IJ_AXES_DIGIT, CENTER_DIGIT, K_AXES_DIGIT, J_AXES_DIGIT, JK_AXES_DIGIT,
		I_AXES_DIGIT, IK_AXES_DIGIT},
}

// NEW_ADJUSTMENT_III gives the new traversal direction when traversing
// along class III grids.
//
// Current digit -> direction -> new ap7 move (at coarser level).
var NEW_ADJUSTMENT_III = [7][7]Direction{
	{CENTER_DIGIT, CENTER_DIGIT, CENTER_DIGIT, CENTER_DIGIT, CENTER_DIGIT,
		CENTER_DIGIT, CENTER_DIGIT},
	{CENTER_DIGIT, K_AXES_DIGIT, CENTER_DIGIT, JK_AXES_DIGIT, CENTER_DIGIT,
		K_AXES_DIGIT, CENTER_DIGIT},
	{CENTER_DIGIT, CENTER_DIGIT, J_AXES_DIGIT, J_AXES_DIGIT, CENTER_DIGIT,
		CENTER_DIGIT, IJ_AXES_DIGIT},
	{CENTER_DIGIT, JK_AXES_DIGIT, J_AXES_DIGIT, JK_AXES_DIGIT, CENTER_DIGIT,
		CENTER_DIGIT, CENTER_DIGIT},
	{CENTER_DIGIT, CENTER_DIGIT, CENTER_DIGIT, CENTER_DIGIT, I_AXES_DIGIT,
		IK_AXES_DIGIT, I_AXES_DIGIT},
	{CENTER_DIGIT, K_AXES_DIGIT, CENTER_DIGIT, CENTER_DIGIT, IK_AXES_DIGIT,
		IK_AXES_DIGIT, CENTER_DIGIT},
	{CENTER_DIGIT, CENTER_DIGIT, IJ_AXES_DIGIT, CENTER_DIGIT, I_AXES_DIGIT,
		CENTER_DIGIT, IJ_AXES_DIGIT},
}

// MaxGridDiskSize returns the maximum number of cells that result from
// the gridDisk algorithm with the given k. Formula source and proof:
// https://oeis.org/A003215
func MaxGridDiskSize(k int) (int64, error) {
	if k < 0 {
		return 0, ErrDomain
	}
	return 3*int64(k)*(int64(k)+1) + 1, nil
}

// h3NeighborRotations returns the hexagon index neighboring the origin,
// in the direction dir.
//
// rotations is the number of ccw rotations to perform to reorient the
// translation vector; it will be modified to the new number of rotations
// to perform with respect to the center of the new cell.
func h3NeighborRotations(origin H3Index, dir Direction, rotations *int) (H3Index, error) {
	current := origin

	if dir < CENTER_DIGIT || dir >= INVALID_DIGIT {
		return H3_NULL, ErrFailed
	}
	// Ensure that rotations is modulo'd by 6 before any possible
	// addition, to protect against signed integer overflow.
	*rotations = *rotations % 6
	for i := 0; i < *rotations; i++ {
		dir = _rotate60ccw(dir)
	}

	newRotations := 0
	oldBaseCell := current.getBaseCell()
	if oldBaseCell < 0 || oldBaseCell >= NUM_BASE_CELLS {
		return H3_NULL, ErrCellInvalid
	}
	oldLeadingDigit := _h3LeadingNonZeroDigit(current)

	// Adjust the indexing digits and, if needed, the base cell.
	r := current.getResolution() - 1
	for {
		if r == -1 {
			current.setBaseCell(baseCellNeighbors[oldBaseCell][dir])
			newRotations = baseCellNeighbor60CCWRots[oldBaseCell][dir]

			if current.getBaseCell() == INVALID_BASE_CELL {
				// Adjust for the deleted k vertex at the base cell
				// level. This edge actually borders a different neighbor.
				current.setBaseCell(baseCellNeighbors[oldBaseCell][IK_AXES_DIGIT])
				newRotations = baseCellNeighbor60CCWRots[oldBaseCell][IK_AXES_DIGIT]

				// perform the adjustment for the k-subsequence we're
				// skipping over.
				current = _h3Rotate60ccw(current)
				*rotations = *rotations + 1
			}

			break
		}

		oldDigit := current.getIndexDigit(r + 1)
		var nextDir Direction
		if oldDigit == INVALID_DIGIT {
			// Only possible on invalid input
			return H3_NULL, ErrCellInvalid
		} else if isResolutionClassIII(r + 1) {
			current.setIndexDigit(r+1, NEW_DIGIT_II[oldDigit][dir])
			nextDir = NEW_ADJUSTMENT_II[oldDigit][dir]
		} else {
			current.setIndexDigit(r+1, NEW_DIGIT_III[oldDigit][dir])
			nextDir = NEW_ADJUSTMENT_III[oldDigit][dir]
		}

		if nextDir != CENTER_DIGIT {
			dir = nextDir
			r--
		} else {
			// No more adjustment to perform
			break
		}
	}

	newBaseCell := current.getBaseCell()
	if _isBaseCellPentagon(newBaseCell) {
		alreadyAdjustedKSubsequence := false

		// force rotation out of missing k-axes sub-sequence
		if _h3LeadingNonZeroDigit(current) == K_AXES_DIGIT {
			if oldBaseCell != newBaseCell {
				// in this case, we traversed into the deleted k
				// subsequence of a pentagon base cell. We need to rotate
				// out of that case depending on how we got here.
				// check for a cw/ccw offset face; default is ccw
				if _baseCellIsCwOffset(newBaseCell, baseCellData[oldBaseCell].homeFijk.face) {
					current = _h3Rotate60cw(current)
				} else {
					current = _h3Rotate60ccw(current)
				}
				alreadyAdjustedKSubsequence = true
			} else {
				// In this case, we traversed into the deleted k
				// subsequence from within the same pentagon base cell.
				switch oldLeadingDigit {
				case CENTER_DIGIT:
					// Undefined: the k direction is deleted from here
					return H3_NULL, ErrPentagon
				case JK_AXES_DIGIT:
					// Rotate out of the deleted k subsequence.
					// We also need an additional change to the direction
					// we're moving in.
					current = _h3Rotate60ccw(current)
					*rotations = *rotations + 1
				case IK_AXES_DIGIT:
					// Rotate out of the deleted k subsequence.
					// We also need an additional change to the direction
					// we're moving in.
					current = _h3Rotate60cw(current)
					*rotations = *rotations + 5
				default:
					// Should never occur
					return H3_NULL, ErrFailed
				}
			}
		}

		for i := 0; i < newRotations; i++ {
			current = _h3RotatePent60ccw(current)
		}

		// Account for differing orientation of the base cells (this edge
		// might not follow properties of some other edges.)
		if oldBaseCell != newBaseCell {
			if _isBaseCellPolarPentagon(newBaseCell) {
				// 'polar' base cells behave differently because they
				// have all i neighbors.
				if oldBaseCell != 118 && oldBaseCell != 8 &&
					_h3LeadingNonZeroDigit(current) != JK_AXES_DIGIT {
					*rotations = *rotations + 1
				}
			} else if _h3LeadingNonZeroDigit(current) == IK_AXES_DIGIT &&
				!alreadyAdjustedKSubsequence {
				// account for distortion introduced to the 5 neighbor by
				// the deleted k subsequence.
				*rotations = *rotations + 1
			}
		}
	} else {
		for i := 0; i < newRotations; i++ {
			current = _h3Rotate60ccw(current)
		}
	}

	*rotations = (*rotations + newRotations) % 6

	return current, nil
}

// directionForNeighbor returns the direction from the origin to a given
// neighboring cell, or INVALID_DIGIT if the cells are not neighbors.
func directionForNeighbor(origin, destination H3Index) Direction {
	isPent := IsPentagon(origin)
	// Checks each neighbor, in order, to determine which direction the
	// destination neighbor is located. Skips CENTER and the deleted K
	// direction for pentagons.
	start := K_AXES_DIGIT
	if isPent {
		start = J_AXES_DIGIT
	}
	for direction := start; direction < Direction(NUM_DIGITS); direction++ {
		rotations := 0
		neighbor, err := h3NeighborRotations(origin, direction, &rotations)
		if err == nil && neighbor == destination {
			return direction
		}
	}
	return INVALID_DIGIT
}

// GridDiskDistancesUnsafe produces cells within k grid distance of the
// origin, along with their distances, using the fast spiral algorithm.
//
// Output order is the origin, then ring 1 counter-clockwise starting
// from the K-axes neighbor, then ring 2, and so on. Returns ErrPentagon
// if a pentagon is encountered, in which case the output is incomplete.
func GridDiskDistancesUnsafe(origin H3Index, k int) ([]H3Index, []int, error) {
	if k < 0 {
		return nil, nil, ErrDomain
	}

	idx := origin

	// 0 ring is just the origin
	out := []H3Index{idx}
	distances := []int{0}

	if IsPentagon(idx) {
		// Pentagon was encountered; bail out as user doesn't want this.
		return out, distances, ErrPentagon
	}

	ring := 1
	direction := 0
	i := 0
	rotations := 0

	// Each ring is entered on its JK side and walked starting in the IK
	// direction, so that ring 1 begins at the K-axes neighbor.
	ringEntry := _rotate60ccw(_rotate60ccw(_rotate60ccw(NEXT_RING_DIRECTION)))

	for ring <= k {
		if direction == 0 && i == 0 {
			// Not putting in the output set as it will be done later, at
			// the end of this ring.
			var err error
			idx, err = h3NeighborRotations(idx, ringEntry, &rotations)
			if err != nil {
				// Should not be possible because `origin` would have to
				// be a pentagon
				return out, distances, err
			}

			if IsPentagon(idx) {
				return out, distances, ErrPentagon
			}
		}

		var err error
		idx, err = h3NeighborRotations(idx, DIRECTIONS[(direction+3)%6], &rotations)
		if err != nil {
			return out, distances, err
		}
		out = append(out, idx)
		distances = append(distances, ring)

		i++
		// Check if end of this side of the k-ring
		if i == ring {
			i = 0
			direction++
			// Check if end of this ring.
			if direction == 6 {
				direction = 0
				ring++
			}
		}

		if IsPentagon(idx) {
			// Pentagon was encountered; bail out as user doesn't want this.
			return out, distances, ErrPentagon
		}
	}
	return out, distances, nil
}

// GridDiskUnsafe produces cells within k grid distance of the origin
// using the fast spiral algorithm; see GridDiskDistancesUnsafe.
func GridDiskUnsafe(origin H3Index, k int) ([]H3Index, error) {
	out, _, err := GridDiskDistancesUnsafe(origin, k)
	return out, err
}

// GridRingUnsafe returns the "hollow" ring of cells at exactly grid
// distance k from the origin. In particular, k=0 returns just the
// origin.
//
// Returns ErrPentagon if a pentagon is encountered, in which case the
// output is incomplete. Failure cases may be fixed by using the slower
// GridDiskDistances and filtering by distance.
func GridRingUnsafe(origin H3Index, k int) ([]H3Index, error) {
	if k < 0 {
		return nil, ErrDomain
	}

	// Short-circuit on 'identity' ring
	if k == 0 {
		return []H3Index{origin}, nil
	}

	rotations := 0
	// Number of 60 degree ccw rotations to perform on the direction
	// (based on which faces have been crossed.)

	if IsPentagon(origin) {
		// Pentagon was encountered; bail out as user doesn't want this.
		return nil, ErrPentagon
	}

	idx := origin
	for ring := 0; ring < k; ring++ {
		var err error
		idx, err = h3NeighborRotations(idx, NEXT_RING_DIRECTION, &rotations)
		if err != nil {
			return nil, err
		}

		if IsPentagon(idx) {
			return nil, ErrPentagon
		}
	}

	lastIndex := idx
	out := []H3Index{idx}

	for direction := 0; direction < 6; direction++ {
		for pos := 0; pos < k; pos++ {
			var err error
			idx, err = h3NeighborRotations(idx, DIRECTIONS[direction], &rotations)
			if err != nil {
				return nil, err
			}

			// Skip the very last index, it was already added. We do
			// however need to traverse to it because of the pentagonal
			// distortion check, below.
			if pos != k-1 || direction != 5 {
				out = append(out, idx)

				if IsPentagon(idx) {
					return nil, ErrPentagon
				}
			}
		}
	}

	// Check that this matches the expected lastIndex, if it doesn't,
	// it indicates pentagonal distortion occurred and we should report
	// failure.
	if lastIndex != idx {
		return nil, ErrPentagon
	}
	return out, nil
}

// _gridDiskDistancesInternal is the recursive part of the safe gridDisk
// algorithm, using the output arrays as a hash set keyed by cell index.
func _gridDiskDistancesInternal(origin H3Index, k int, out []H3Index, distances []int, maxIdx int64, curK int) error {
	// Put origin in the output array. out is used as a hash set.
	off := int64(origin % H3Index(maxIdx))
	for out[off] != 0 && out[off] != origin {
		off = (off + 1) % maxIdx
	}

	// We either got a free slot in the hash set or hit a duplicate. We
	// might need to process the duplicate anyways because we got here on
	// a longer path before.
	if out[off] == origin && distances[off] <= curK {
		return nil
	}

	out[off] = origin
	distances[off] = curK

	// Base case: reached a cell k away from the origin.
	if curK >= k {
		return nil
	}

	// Recurse to all neighbors in no particular order.
	for i := 0; i < 6; i++ {
		rotations := 0
		nextNeighbor, err := h3NeighborRotations(origin, DIRECTIONS[i], &rotations)
		if err != ErrPentagon {
			// ErrPentagon is an expected case when trying to traverse
			// off of pentagons.
			if err != nil {
				return err
			}
			if err := _gridDiskDistancesInternal(nextNeighbor, k, out, distances, maxIdx, curK+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// GridDiskDistancesSafe produces cells within k grid distance of the
// origin, along with their distances, using the pentagon-safe breadth
// first search. The output order is the deterministic hash set order of
// the algorithm, not sorted by distance.
func GridDiskDistancesSafe(origin H3Index, k int) ([]H3Index, []int, error) {
	maxIdx, err := MaxGridDiskSize(k)
	if err != nil {
		return nil, nil, err
	}
	scratch := make([]H3Index, maxIdx)
	scratchDist := make([]int, maxIdx)
	if err := _gridDiskDistancesInternal(origin, k, scratch, scratchDist, maxIdx, 0); err != nil {
		return nil, nil, err
	}

	// compact out the empty hash slots
	out := make([]H3Index, 0, maxIdx)
	distances := make([]int, 0, maxIdx)
	for i, h := range scratch {
		if h != H3_NULL {
			out = append(out, h)
			distances = append(distances, scratchDist[i])
		}
	}
	return out, distances, nil
}

// GridDiskDistances produces all cells within k grid distance of the
// origin, along with their grid distances.
//
// The fast spiral algorithm is tried first; if pentagonal distortion is
// encountered the pentagon-safe variant is used instead.
func GridDiskDistances(origin H3Index, k int) ([]H3Index, []int, error) {
	// Optimistically try the faster algorithm first
	out, distances, err := GridDiskDistancesUnsafe(origin, k)
	if err == nil {
		return out, distances, nil
	}
	if err != ErrPentagon {
		return nil, nil, err
	}
	// Fast algo failed, fall back to the slower, correct algo. The
	// contents produced so far are untrustworthy and are discarded.
	return GridDiskDistancesSafe(origin, k)
}

// GridDisk produces all cells within k grid distance of the origin.
//
// When no pentagon is reachable the output order is the origin, then
// ring 1 counter-clockwise starting from the K-axes neighbor, then ring
// 2, and so on.
func GridDisk(origin H3Index, k int) ([]H3Index, error) {
	out, _, err := GridDiskDistances(origin, k)
	return out, err
}
