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

// IterCellsChildren is the state of an iterator over all children of a
// given cell at a given resolution.
//
// Constructed with NewIterCellsChildren; advanced with Step. Once H is
// H3_NULL the iteration is exhausted and Step is a no-op.
type IterCellsChildren struct {
	H H3Index

	parentRes int
	skipDigit int
}

func _nullChildIter() IterCellsChildren {
	return IterCellsChildren{H: H3_NULL, parentRes: -1, skipDigit: -1}
}

// _getResDigit gets the digit at resolution res.
func (it *IterCellsChildren) _getResDigit(res int) Direction {
	return it.H.getIndexDigit(res)
}

// _incrementResDigit increments the digit (0--7) at location res,
// carrying into coarser digits via the index's bit layout.
func (it *IterCellsChildren) _incrementResDigit(res int) {
	val := H3Index(1)
	val <<= 3 * (15 - res)
	it.H += val
}

// _iterInitParent initializes the iterator without argument validation.
// A null or out-of-range input produces an exhausted iterator.
func _iterInitParent(h H3Index, childRes int, it *IterCellsChildren) {
	it.parentRes = h.getResolution()

	if h == H3_NULL || childRes < it.parentRes || childRes > MAX_H3_RES {
		*it = _nullChildIter()
		return
	}

	it.H = _zeroIndexDigits(h, it.parentRes+1, childRes)
	it.H.setResolution(childRes)

	if IsPentagon(it.H) {
		// The skip digit skips `1` for pentagons.
		// The skip digit moves to the left as we count up from the
		// child resolution to the parent resolution.
		it.skipDigit = childRes
	} else {
		// if not a pentagon, we can ignore the skip digit logic
		it.skipDigit = -1
	}
}

// NewIterCellsChildren creates an iterator over the children of cell h
// at resolution childRes, in digit order starting with the center child.
func NewIterCellsChildren(h H3Index, childRes int) IterCellsChildren {
	var it IterCellsChildren
	_iterInitParent(h, childRes, &it)
	return it
}

// Step advances the iterator to the next child cell. When the iteration
// is exhausted, H is set to H3_NULL.
func (it *IterCellsChildren) Step() {
	// once H == H3_NULL, the iterator returns an infinite sequence of
	// H3_NULL
	if it.H == H3_NULL {
		return
	}

	childRes := it.H.getResolution()

	it._incrementResDigit(childRes)

	for i := childRes; i >= it.parentRes; i-- {
		if i == it.parentRes {
			// if we're modifying the parent resolution digit, we're done
			it.H = H3_NULL
			return
		}

		// All children of a pentagon have the property that the first
		// nonzero digit between the parent and child resolutions is not
		// 1 (i.e., we never see a sequence like 00001), so skip the `1`
		// in this digit.
		if i == it.skipDigit && it._getResDigit(i) == PENTAGON_SKIPPED_DIGIT {
			it._incrementResDigit(i)
			it.skipDigit--
			return
		}

		if it._getResDigit(i) == INVALID_DIGIT {
			// zeros out digit i and increments digit i-1 by 1
			it._incrementResDigit(i)
		} else {
			break
		}
	}
}
