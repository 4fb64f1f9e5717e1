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

// CellToParent produces the parent index for a given cell at the
// specified coarser resolution.
func CellToParent(h H3Index, parentRes int) (H3Index, error) {
	childRes := h.getResolution()
	if parentRes < 0 || parentRes > MAX_H3_RES {
		return H3_NULL, ErrResDomain
	} else if parentRes > childRes {
		return H3_NULL, ErrResMismatch
	} else if parentRes == childRes {
		return h, nil
	}
	parentH := h
	parentH.setResolution(parentRes)
	for i := parentRes + 1; i <= childRes; i++ {
		parentH.setIndexDigit(i, INVALID_DIGIT)
	}
	return parentH, nil
}

// _hasChildAtRes determines whether one resolution is a valid child
// resolution for a cell. Each resolution is considered a valid child
// resolution of itself.
func _hasChildAtRes(h H3Index, childRes int) bool {
	parentRes := h.getResolution()
	if childRes < parentRes || childRes > MAX_H3_RES {
		return false
	}
	return true
}

// CellToChildrenSize returns the exact number of children for a cell at
// a given child resolution, handling hexagons and pentagons correctly.
func CellToChildrenSize(h H3Index, childRes int) (int64, error) {
	if !_hasChildAtRes(h, childRes) {
		return 0, ErrResDomain
	}

	n := int64(childRes - h.getResolution())

	if IsPentagon(h) {
		return 1 + 5*(_ipow(7, n)-1)/6, nil
	}
	return _ipow(7, n), nil
}

// makeDirectChild takes an index and immediately returns the immediate
// child index based on the specified cell number. Bit operations only,
// could generate invalid indexes if not careful (deleted cell under a
// pentagon).
func makeDirectChild(h H3Index, cellNumber int) H3Index {
	childRes := h.getResolution() + 1
	childH := h
	childH.setResolution(childRes)
	childH.setIndexDigit(childRes, Direction(cellNumber))
	return childH
}

// CellToChildren returns all of the children of the given cell at the
// specified resolution, in the deterministic order of the children
// iterator (center child first, then digit order, skipping the deleted
// pentagon subsequence).
func CellToChildren(h H3Index, childRes int) ([]H3Index, error) {
	size, err := CellToChildrenSize(h, childRes)
	if err != nil {
		return nil, err
	}
	children := make([]H3Index, 0, size)
	for it := NewIterCellsChildren(h, childRes); it.H != H3_NULL; it.Step() {
		children = append(children, it.H)
	}
	return children, nil
}

// _zeroIndexDigits zeroes out index digits from start to end, inclusive.
// No-op if start > end.
func _zeroIndexDigits(h H3Index, start, end int) H3Index {
	if start > end {
		return h
	}

	var m uint64

	m = ^m
	m <<= H3_PER_DIGIT_OFFSET * (end - start + 1)
	m = ^m
	m <<= H3_PER_DIGIT_OFFSET * (MAX_H3_RES - end)
	m = ^m

	return h & H3Index(m)
}

// CellToCenterChild produces the center child index for a given cell at
// the specified resolution.
func CellToCenterChild(h H3Index, childRes int) (H3Index, error) {
	if !_hasChildAtRes(h, childRes) {
		return H3_NULL, ErrResDomain
	}

	h = _zeroIndexDigits(h, h.getResolution()+1, childRes)
	h.setResolution(childRes)
	return h, nil
}

// CompactCells takes a set of cells all at the same resolution and
// compresses them by pruning full child branches to the parent level.
// This is also done for all parents recursively to get the minimum
// number of addresses that perfectly cover the defined space.
func CompactCells(cellSet []H3Index) ([]H3Index, error) {
	numCells := int64(len(cellSet))
	if numCells == 0 {
		return nil, nil
	}
	res := cellSet[0].getResolution()
	for _, c := range cellSet {
		if c != H3_NULL && c.getResolution() != res {
			return nil, ErrResMismatch
		}
	}
	if res == 0 {
		// No compaction possible, just copy the set to the output
		out := make([]H3Index, numCells)
		copy(out, cellSet)
		return out, nil
	}

	remainingCells := make([]H3Index, numCells)
	copy(remainingCells, cellSet)
	hashSetArray := make([]H3Index, numCells)
	compactedSet := make([]H3Index, 0, numCells)

	numRemainingCells := numCells
	for numRemainingCells > 0 {
		res = remainingCells[0].getResolution()
		parentRes := res - 1

		// If parentRes is less than zero, we've compacted all the way up
		// to the base cells. Time to process the remaining cells.
		if parentRes >= 0 {
			// Put the parents of the cells into the temp array via a
			// hashing mechanism, and use the reserved bits to track how
			// many times a parent is duplicated.
			for i := int64(0); i < numRemainingCells; i++ {
				currIndex := remainingCells[i]
				if currIndex == 0 {
					continue
				}
				// If the reserved bits were set by the caller, the
				// algorithm below may misbehave because it expects to
				// have set the reserved bits itself.
				if currIndex.getReservedBits() != 0 {
					return nil, ErrCellInvalid
				}

				parent, err := CellToParent(currIndex, parentRes)
				if err != nil {
					return nil, err
				}
				// Modulus hash the parent into the temp array
				loc := int64(parent % H3Index(numRemainingCells))
				loopCount := int64(0)
				for hashSetArray[loc] != 0 {
					if loopCount > numRemainingCells {
						// This case should not be possible because at
						// most one index is placed into hashSetArray per
						// numRemainingCells.
						return nil, ErrFailed
					}
					tempIndex := hashSetArray[loc] & H3Index(H3_RESERVED_MASK_NEGATIVE)
					if tempIndex == parent {
						count := hashSetArray[loc].getReservedBits() + 1
						limitCount := 7
						if IsPentagon(tempIndex) {
							limitCount--
						}
						// One is added to count for this check to match
						// one being added to count later in this function
						// when checking for all children being present.
						if count+1 > limitCount {
							// Only possible on duplicate input
							return nil, ErrDuplicateInput
						}
						parent.setReservedBits(count)
						hashSetArray[loc] = H3_NULL
					} else {
						loc = (loc + 1) % numRemainingCells
					}
					loopCount++
				}
				hashSetArray[loc] = parent
			}
		}

		// Determine which parent cells have a complete set of children
		// and put them in the compactableCells array.
		compactableCount := int64(0)
		maxCompactableCount := numRemainingCells / 6 // somehow all pentagons; conservative
		if maxCompactableCount == 0 {
			compactedSet = append(compactedSet, remainingCells[:numRemainingCells]...)
			break
		}
		compactableCells := make([]H3Index, maxCompactableCount)
		for i := int64(0); i < numRemainingCells; i++ {
			if hashSetArray[i] == 0 {
				continue
			}
			count := hashSetArray[i].getReservedBits() + 1
			// Include the deleted direction for pentagons as implicitly
			// "there"
			if IsPentagon(hashSetArray[i] & H3Index(H3_RESERVED_MASK_NEGATIVE)) {
				// We need this later on, no need to recalculate
				hashSetArray[i].setReservedBits(count)
				// Increment count after setting the reserved bits, since
				// count is already incremented above, so it will be the
				// expected value for a complete hexagon.
				count++
			}
			if count == 7 {
				// Bingo! Full set!
				compactableCells[compactableCount] =
					hashSetArray[i] & H3Index(H3_RESERVED_MASK_NEGATIVE)
				compactableCount++
			}
		}
		// Uncompactable cells are immediately copied into the output
		for i := int64(0); i < numRemainingCells; i++ {
			currIndex := remainingCells[i]
			if currIndex == H3_NULL {
				continue
			}
			isUncompactable := true
			// Resolution 0 cells are always uncompactable, and trying to
			// take the res -1 parent of a cell is invalid.
			if parentRes >= 0 {
				parent, err := CellToParent(currIndex, parentRes)
				if err != nil {
					return nil, err
				}
				// Modulus hash the parent into the temp array to
				// determine if this index was included in the
				// compactableCells array.
				loc := int64(parent % H3Index(numRemainingCells))
				loopCount := int64(0)
				for {
					if loopCount > numRemainingCells {
						// This case should not be possible because at
						// most one index is placed into hashSetArray per
						// input cell.
						return nil, ErrFailed
					}
					tempIndex := hashSetArray[loc] & H3Index(H3_RESERVED_MASK_NEGATIVE)
					if tempIndex == parent {
						count := hashSetArray[loc].getReservedBits() + 1
						if count == 7 {
							isUncompactable = false
						}
						break
					}
					loc = (loc + 1) % numRemainingCells
					loopCount++
				}
			}
			if isUncompactable {
				compactedSet = append(compactedSet, currIndex)
			}
		}
		// Set up for the next loop
		for i := range hashSetArray {
			hashSetArray[i] = 0
		}
		copy(remainingCells, compactableCells[:compactableCount])
		numRemainingCells = compactableCount
	}
	return compactedSet, nil
}

// UncompactCellsSize takes a compacted set of cells and returns the
// exact size of the uncompacted set at the given resolution.
func UncompactCellsSize(compactedSet []H3Index, res int) (int64, error) {
	var numOut int64
	for _, c := range compactedSet {
		if c == H3_NULL {
			continue
		}

		childrenSize, err := CellToChildrenSize(c, res)
		if err != nil {
			// The parent res does not contain the target res.
			return 0, ErrResMismatch
		}
		numOut += childrenSize
	}
	return numOut, nil
}

// UncompactCells takes a compressed set of cells and expands back to the
// original set of cells at the given resolution.
//
// Skips elements that are H3_NULL (i.e., 0).
func UncompactCells(compactedSet []H3Index, res int) ([]H3Index, error) {
	size, err := UncompactCellsSize(compactedSet, res)
	if err != nil {
		return nil, err
	}

	out := make([]H3Index, 0, size)
	for _, c := range compactedSet {
		if c == H3_NULL {
			continue
		}
		if !_hasChildAtRes(c, res) {
			return nil, ErrResMismatch
		}

		for it := NewIterCellsChildren(c, res); it.H != H3_NULL; it.Step() {
			out = append(out, it.H)
		}
	}
	return out, nil
}

// validateChildPos validates a child position in the context of a given
// parent.
func validateChildPos(childPos int64, parent H3Index, childRes int) error {
	maxChildCount, err := CellToChildrenSize(parent, childRes)
	if err != nil {
		return err
	}
	if childPos < 0 || childPos >= maxChildCount {
		return ErrDomain
	}
	return nil
}

// CellToChildPos returns the position of the cell within an ordered list
// of all children of the cell's parent at the specified resolution.
func CellToChildPos(child H3Index, parentRes int) (int64, error) {
	childRes := child.getResolution()
	// Get the parent at res. This will catch any resolution errors.
	originalParent, err := CellToParent(child, parentRes)
	if err != nil {
		return 0, err
	}

	// Note that these variables are reassigned within the loop.
	parent := originalParent
	parentIsPentagon := IsPentagon(parent)

	// Walk up the resolution digits, incrementing the position
	var out int64
	if parentIsPentagon {
		// Pentagon logic. Pentagon parents skip the 1 digit, so the
		// offsets are different from hexagons.
		for res := childRes; res > parentRes; res-- {
			parent, err = CellToParent(child, res-1)
			if err != nil {
				return 0, err
			}

			parentIsPentagon = IsPentagon(parent)
			rawDigit := child.getIndexDigit(res)
			// Validate the digit before proceeding
			if rawDigit == INVALID_DIGIT ||
				(parentIsPentagon && rawDigit == K_AXES_DIGIT) {
				return 0, ErrCellInvalid
			}
			digit := int64(rawDigit)
			if parentIsPentagon && rawDigit > 0 {
				digit--
			}
			if digit != int64(CENTER_DIGIT) {
				hexChildCount := _ipow(7, int64(childRes-res))
				// The offset for the 0-digit slot depends on whether the
				// current index is the child of a pentagon. If so, the
				// offset is based on the count of pentagon children,
				// otherwise, hexagon children.
				if parentIsPentagon {
					out += 1 + (5*(hexChildCount-1))/6
				} else {
					out += hexChildCount
				}
				// the other hexagon children
				out += (digit - 1) * hexChildCount
			}
		}
	} else {
		// Hexagon logic. Offsets are simple powers of 7.
		for res := childRes; res > parentRes; res-- {
			digit := child.getIndexDigit(res)
			if digit == INVALID_DIGIT {
				return 0, ErrCellInvalid
			}
			out += int64(digit) * _ipow(7, int64(childRes-res))
		}
	}

	if err := validateChildPos(out, originalParent, childRes); err != nil {
		// This is the result of an internal error, so return a generic
		// failure instead of the validation error.
		return 0, ErrFailed
	}

	return out, nil
}

// ChildPosToCell returns the child cell at a given position within an
// ordered list of all children of parent at the specified resolution.
func ChildPosToCell(childPos int64, parent H3Index, childRes int) (H3Index, error) {
	// Validate resolution
	if childRes < 0 || childRes > MAX_H3_RES {
		return H3_NULL, ErrResDomain
	}
	// Validate parent resolution
	parentRes := parent.getResolution()
	if childRes < parentRes {
		return H3_NULL, ErrResMismatch
	}
	// Validate child pos
	if err := validateChildPos(childPos, parent, childRes); err != nil {
		return H3_NULL, err
	}

	resOffset := childRes - parentRes

	child := parent
	idx := childPos

	child.setResolution(childRes)

	if IsPentagon(parent) {
		// Pentagon tile logic. Pentagon tiles skip the 1 digit, so the
		// offsets are different.
		inPent := true
		for res := 1; res <= resOffset; res++ {
			resWidth := _ipow(7, int64(resOffset-res))
			if inPent {
				// While we are inside a parent pentagon, we need to check
				// if this cell is a pentagon, and if not, we need to
				// offset its digit to account for the skipped direction.
				pentWidth := 1 + (5*(resWidth-1))/6
				if idx < pentWidth {
					child.setIndexDigit(parentRes+res, 0)
				} else {
					idx -= pentWidth
					inPent = false
					child.setIndexDigit(parentRes+res, Direction(idx/resWidth+2))
					idx %= resWidth
				}
			} else {
				// We're no longer inside a pentagon, continue as for hex
				child.setIndexDigit(parentRes+res, Direction(idx/resWidth))
				idx %= resWidth
			}
		}
	} else {
		// Hexagon tile logic. Offsets are simple powers of 7.
		for res := 1; res <= resOffset; res++ {
			resWidth := _ipow(7, int64(resOffset-res))
			child.setIndexDigit(parentRes+res, Direction(idx/resWidth))
			idx %= resWidth
		}
	}

	return child, nil
}
