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

import (
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// H3Index is a 64-bit identifier for a cell, directed edge, undirected
// edge, or vertex in the grid system, discriminated by its mode field.
type H3Index uint64

// Constants for bitwise manipulation of H3Index's.
const (
	// The number of bits in an H3 index.
	H3_NUM_BITS = 64

	// The bit offset of the max resolution digit in an H3 index.
	H3_MAX_OFFSET = 63

	// The bit offset of the mode in an H3 index.
	H3_MODE_OFFSET = 59

	// The bit offset of the base cell in an H3 index.
	H3_BC_OFFSET = 45

	// The bit offset of the resolution in an H3 index.
	H3_RES_OFFSET = 52

	// The bit offset of the reserved bits in an H3 index.
	H3_RESERVED_OFFSET = 56

	// The number of bits in a single H3 resolution digit.
	H3_PER_DIGIT_OFFSET = 3

	// 1 in the highest bit, 0's everywhere else.
	H3_HIGH_BIT_MASK = uint64(1) << H3_MAX_OFFSET

	// 0 in the highest bit, 1's everywhere else.
	H3_HIGH_BIT_MASK_NEGATIVE = ^H3_HIGH_BIT_MASK

	// 1's in the 4 mode bits, 0's everywhere else.
	H3_MODE_MASK = uint64(15) << H3_MODE_OFFSET

	// 0's in the 4 mode bits, 1's everywhere else.
	H3_MODE_MASK_NEGATIVE = ^H3_MODE_MASK

	// 1's in the 7 base cell bits, 0's everywhere else.
	H3_BC_MASK = uint64(127) << H3_BC_OFFSET

	// 0's in the 7 base cell bits, 1's everywhere else.
	H3_BC_MASK_NEGATIVE = ^H3_BC_MASK

	// 1's in the 4 resolution bits, 0's everywhere else.
	H3_RES_MASK = uint64(15) << H3_RES_OFFSET

	// 0's in the 4 resolution bits, 1's everywhere else.
	H3_RES_MASK_NEGATIVE = ^H3_RES_MASK

	// 1's in the 3 reserved bits, 0's everywhere else.
	H3_RESERVED_MASK = uint64(7) << H3_RESERVED_OFFSET

	// 0's in the 3 reserved bits, 1's everywhere else.
	H3_RESERVED_MASK_NEGATIVE = ^H3_RESERVED_MASK

	// 1's in the 3 bits of the res 15 digit, 0's everywhere else.
	H3_DIGIT_MASK = uint64(7)
)

// H3_INIT is an H3 index with mode 0, res 0, base cell 0, and 7 for all
// index digits. Typically used to initialize the creation of an H3 cell
// index, which expects all direction digits to be 7 beyond the cell's
// resolution.
const H3_INIT = H3Index(35184372088831)

// H3_NULL is the invalid index, used to indicate an error from
// latLngToCell and related functions or missing data in arrays of
// indexes. Analogous to NaN in floating point.
const H3_NULL = H3Index(0)

// getHighBit gets the highest bit of the H3 index.
func (h H3Index) getHighBit() int {
	return int((uint64(h) & H3_HIGH_BIT_MASK) >> H3_MAX_OFFSET)
}

// setHighBit sets the highest bit of the index to v.
func (h *H3Index) setHighBit(v int) {
	*h = H3Index((uint64(*h) & H3_HIGH_BIT_MASK_NEGATIVE) | (uint64(v) << H3_MAX_OFFSET))
}

// getMode gets the integer mode of the index.
func (h H3Index) getMode() int {
	return int((uint64(h) & H3_MODE_MASK) >> H3_MODE_OFFSET)
}

// setMode sets the integer mode of the index to v.
func (h *H3Index) setMode(v int) {
	*h = H3Index((uint64(*h) & H3_MODE_MASK_NEGATIVE) | (uint64(v) << H3_MODE_OFFSET))
}

// getBaseCell gets the integer base cell of the index.
func (h H3Index) getBaseCell() int {
	return int((uint64(h) & H3_BC_MASK) >> H3_BC_OFFSET)
}

// setBaseCell sets the integer base cell of the index to bc.
func (h *H3Index) setBaseCell(bc int) {
	*h = H3Index((uint64(*h) & H3_BC_MASK_NEGATIVE) | (uint64(bc) << H3_BC_OFFSET))
}

// getResolution gets the integer resolution of the index.
func (h H3Index) getResolution() int {
	return int((uint64(h) & H3_RES_MASK) >> H3_RES_OFFSET)
}

// setResolution sets the integer resolution of the index.
func (h *H3Index) setResolution(res int) {
	*h = H3Index((uint64(*h) & H3_RES_MASK_NEGATIVE) | (uint64(res) << H3_RES_OFFSET))
}

// getReservedBits gets a value in the reserved space. Should always be
// zero for valid cell indexes.
func (h H3Index) getReservedBits() int {
	return int((uint64(h) & H3_RESERVED_MASK) >> H3_RESERVED_OFFSET)
}

// setReservedBits sets a value in the reserved space. Setting to
// non-zero may produce invalid cell indexes.
func (h *H3Index) setReservedBits(v int) {
	*h = H3Index((uint64(*h) & H3_RESERVED_MASK_NEGATIVE) | (uint64(v) << H3_RESERVED_OFFSET))
}

// getIndexDigit gets the resolution res integer digit (0-7) of the
// index.
func (h H3Index) getIndexDigit(res int) Direction {
	resDigit := (MAX_H3_RES - res) * H3_PER_DIGIT_OFFSET

	return Direction((uint64(h) >> resDigit) & H3_DIGIT_MASK)
}

// setIndexDigit sets the resolution res digit of the index to the
// integer digit (0-7).
func (h *H3Index) setIndexDigit(res int, digit Direction) {
	resDigit := (MAX_H3_RES - res) * H3_PER_DIGIT_OFFSET

	*h = H3Index((uint64(*h) & ^(H3_DIGIT_MASK << resDigit)) |
		(uint64(digit) << resDigit))
}

// GetResolution returns the resolution of an index.
func GetResolution(h H3Index) int { return h.getResolution() }

// GetBaseCellNumber returns the base cell number of an index.
//
// Note: works on edge and vertex indexes as well, returning the base
// cell of the origin cell.
func GetBaseCellNumber(h H3Index) int { return h.getBaseCell() }

// GetIndexDigit returns the indexing digit at position res, which starts
// with 1 for resolution 1, up to and including resolution 15.
//
// res may exceed the actual resolution of the index, in which case the
// digit stored in the index is returned; for valid cell indexes this
// will be 7.
func GetIndexDigit(h H3Index, res int) (int, error) {
	if res < 1 || res > MAX_H3_RES {
		return 0, ErrResDomain
	}
	return int(h.getIndexDigit(res)), nil
}

// IsResClassIII takes a cell index and determines if it is in a Class
// III resolution (rotated versus the icosahedron and subject to shape
// distortion adding extra points on icosahedron edges, making them not
// true hexagons).
func IsResClassIII(h H3Index) bool { return h.getResolution()%2 == 1 }

// isResolutionClassIII returns whether or not a resolution is a Class
// III grid. Odd resolutions are Class III and even resolutions are
// Class II.
func isResolutionClassIII(res int) bool { return res%2 == 1 }

// IsPentagon takes an index and determines if it represents a pentagonal
// cell.
func IsPentagon(h H3Index) bool {
	return _isBaseCellPentagon(h.getBaseCell()) &&
		_h3LeadingNonZeroDigit(h) == CENTER_DIGIT
}

// setH3Index initializes an H3 cell index to the given resolution and
// base cell, with all of the index digits set to initDigit.
func setH3Index(hp *H3Index, res, baseCell int, initDigit Direction) {
	h := H3_INIT
	h.setMode(H3_CELL_MODE)
	h.setResolution(res)
	h.setBaseCell(baseCell)
	for r := 1; r <= res; r++ {
		h.setIndexDigit(r, initDigit)
	}
	*hp = h
}

// ConstructCell creates a cell from its components (resolution, base
// cell, child digits). Only valid H3 cells can be constructed.
//
// digits must have length of at least res; it may be nil for res 0.
func ConstructCell(res, baseCellNumber int, digits []int) (H3Index, error) {
	if res < 0 || res > MAX_H3_RES {
		return H3_NULL, ErrResDomain
	}
	if baseCellNumber < 0 || baseCellNumber >= NUM_BASE_CELLS {
		return H3_NULL, ErrDomain
	}
	if len(digits) < res {
		return H3_NULL, ErrDomain
	}

	h := H3_INIT
	h.setMode(H3_CELL_MODE)
	h.setResolution(res)
	h.setBaseCell(baseCellNumber)

	isPentagon := _isBaseCellPentagon(baseCellNumber)

	for r := 1; r <= res; r++ {
		d := digits[r-1]
		if d < int(CENTER_DIGIT) || d >= int(INVALID_DIGIT) {
			return H3_NULL, ErrDomain
		}
		if isPentagon {
			// check for deleted subsequences of pentagons
			switch Direction(d) {
			case CENTER_DIGIT:
				// still a pentagon
			case K_AXES_DIGIT:
				return H3_NULL, ErrCellInvalid
			default:
				isPentagon = false
			}
		}
		h.setIndexDigit(r, Direction(d))
	}

	return h, nil
}

// StringToH3 converts a string representation of an index into an
// H3Index. Parsing is case-insensitive and accepts any hex string of at
// most 16 digits.
func StringToH3(str string) (H3Index, error) {
	if len(str) == 0 || len(str) > 16 {
		return H3_NULL, ErrFailed
	}
	v, err := strconv.ParseUint(strings.ToLower(str), 16, 64)
	if err != nil {
		return H3_NULL, ErrFailed
	}
	return H3Index(v), nil
}

// H3ToString converts an index into its string representation: lowercase
// hexadecimal, no prefix, no padding.
func H3ToString(h H3Index) string {
	return strconv.FormatUint(uint64(h), 16)
}

/*
The top 8 bits of any cell should be a specific constant:

- The 1 high bit should be `0`
- The 4 mode bits should be `0001` (H3_CELL_MODE)
- The 3 reserved bits should be `000`

In total, the top 8 bits should be `0_0001_000`.
*/
func _hasGoodTopBits(h H3Index) bool {
	return (uint64(h) >> (64 - 8)) == 0b00001000
}

/*
_hasAny7UptoRes checks that no digit from 1 to res is 7 (INVALID_DIGIT).

MHI = 0b100100100100100100100100100100100100100100100;
MLO = MHI >> 2;

|  d  | d & MHI |  ~d | ~d - MLO | d & MHI & (~d - MLO) |  result |
|-----|---------|-----|----------|----------------------|---------|
| 000 |     000 |     |          |                  000 | OK      |
| 001 |     000 |     |          |                  000 | OK      |
| 010 |     000 |     |          |                  000 | OK      |
| 011 |     000 |     |          |                  000 | OK      |
| 100 |     100 | 011 | 010      |                  000 | OK      |
| 101 |     100 | 010 | 001      |                  000 | OK      |
| 110 |     100 | 001 | 000      |                  000 | OK      |
| 111 |     100 | 000 | 111*     |                  100 | invalid |

  *: carry happened

A carry from lower bits may misidentify a lower digit as a 7, but the
lowest 7 is always identified correctly, which is all that matters here.
*/
func _hasAny7UptoRes(h H3Index, res int) bool {
	const MHI = uint64(0b100100100100100100100100100100100100100100100)
	const MLO = MHI >> 2

	shift := 3 * (15 - res)
	v := uint64(h) >> shift << shift
	v = v & MHI & (^v - MLO)

	return v != 0
}

// _hasAll7AfterRes checks that all unused digits after res are set to 7
// (INVALID_DIGIT).
func _hasAll7AfterRes(h H3Index, res int) bool {
	// res check is needed because we can't shift by 64
	if res < 15 {
		shift := 19 + 3*res

		v := ^uint64(h)
		v <<= shift
		v >>= shift

		return v == 0
	}
	return true
}

// _firstOneIndex returns the index of the first nonzero bit of a
// nonzero H3Index.
func _firstOneIndex(h H3Index) int {
	return bits.Len64(uint64(h)) - 1
}

/*
_hasDeletedSubsequence is one final validation just for cells whose base
cell (res 0) is a pentagon.

Pentagon cells start with a sequence of 0's (CENTER_DIGIT's). The first
nonzero digit can't be a 1 (i.e., "deleted subsequence", or
K_AXES_DIGIT).

We can check that (in the lower 45 = 15*3 bits) the position of the
first 1 bit isn't divisible by 3.
*/
func _hasDeletedSubsequence(h H3Index, baseCell int) bool {
	if _isBaseCellPentagon(baseCell) {
		v := uint64(h) << 19 >> 19

		if v == 0 {
			return false // all zeros: res 15 pentagon
		}
		return _firstOneIndex(H3Index(v))%3 == 0
	}
	return false
}

// IsValidCell returns whether or not an H3 index is a valid cell
// (hexagon or pentagon).
func IsValidCell(h H3Index) bool {
	if !_hasGoodTopBits(h) {
		return false
	}

	// No need to check resolution; any 4 bits give a valid resolution.
	res := h.getResolution()

	// Get base cell number and check that it is valid.
	bc := h.getBaseCell()
	if bc >= NUM_BASE_CELLS {
		return false
	}

	if _hasAny7UptoRes(h, res) {
		return false
	}
	if !_hasAll7AfterRes(h, res) {
		return false
	}
	if _hasDeletedSubsequence(h, bc) {
		return false
	}

	return true
}

// IsValidIndex returns whether or not an H3 index is valid for any mode
// (cell, directed edge, undirected edge, or vertex).
func IsValidIndex(h H3Index) bool {
	return IsValidCell(h) || IsValidDirectedEdge(h) || IsValidEdge(h) ||
		IsValidVertex(h)
}

// _h3LeadingNonZeroDigit returns the highest resolution non-zero digit
// in an H3Index.
func _h3LeadingNonZeroDigit(h H3Index) Direction {
	for r := 1; r <= h.getResolution(); r++ {
		if digit := h.getIndexDigit(r); digit != CENTER_DIGIT {
			return digit
		}
	}

	// if we're here it's all 0's
	return CENTER_DIGIT
}

// _h3RotatePent60ccw rotates an H3Index 60 degrees counter-clockwise
// about a pentagonal center.
func _h3RotatePent60ccw(h H3Index) H3Index {
	// rotate in place; skips any leading 1 digits (k-axis)

	foundFirstNonZeroDigit := false
	for r, res := 1, h.getResolution(); r <= res; r++ {
		// rotate this digit
		h.setIndexDigit(r, _rotate60ccw(h.getIndexDigit(r)))

		// look for the first non-zero digit so we can adjust for the
		// deleted k-axes sequence if necessary
		if !foundFirstNonZeroDigit && h.getIndexDigit(r) != 0 {
			foundFirstNonZeroDigit = true

			// adjust for deleted k-axes sequence
			if _h3LeadingNonZeroDigit(h) == K_AXES_DIGIT {
				h = _h3Rotate60ccw(h)
			}
		}
	}
	return h
}

// _h3RotatePent60cw rotates an H3Index 60 degrees clockwise about a
// pentagonal center.
func _h3RotatePent60cw(h H3Index) H3Index {
	// rotate in place; skips any leading 1 digits (k-axis)

	foundFirstNonZeroDigit := false
	for r, res := 1, h.getResolution(); r <= res; r++ {
		// rotate this digit
		h.setIndexDigit(r, _rotate60cw(h.getIndexDigit(r)))

		// look for the first non-zero digit so we can adjust for the
		// deleted k-axes sequence if necessary
		if !foundFirstNonZeroDigit && h.getIndexDigit(r) != 0 {
			foundFirstNonZeroDigit = true

			// adjust for deleted k-axes sequence
			if _h3LeadingNonZeroDigit(h) == K_AXES_DIGIT {
				h = _h3Rotate60cw(h)
			}
		}
	}
	return h
}

// _h3Rotate60ccw rotates an H3Index 60 degrees counter-clockwise.
func _h3Rotate60ccw(h H3Index) H3Index {
	for r, res := 1, h.getResolution(); r <= res; r++ {
		h.setIndexDigit(r, _rotate60ccw(h.getIndexDigit(r)))
	}

	return h
}

// _h3Rotate60cw rotates an H3Index 60 degrees clockwise.
func _h3Rotate60cw(h H3Index) H3Index {
	for r, res := 1, h.getResolution(); r <= res; r++ {
		h.setIndexDigit(r, _rotate60cw(h.getIndexDigit(r)))
	}

	return h
}

// _faceIjkToH3 converts a FaceIJK address to the corresponding H3Index.
// Returns H3_NULL on failure.
func _faceIjkToH3(fijk *FaceIJK, res int) H3Index {
	// initialize the index
	h := H3_INIT
	h.setMode(H3_CELL_MODE)
	h.setResolution(res)

	// check for res 0/base cell
	if res == 0 {
		if fijk.coord.i > MAX_FACE_COORD || fijk.coord.j > MAX_FACE_COORD ||
			fijk.coord.k > MAX_FACE_COORD {
			// out of range input
			return H3_NULL
		}

		h.setBaseCell(_faceIjkToBaseCell(fijk))
		return h
	}

	// we need to find the correct base cell FaceIJK for this H3 index;
	// start with the passed in face and resolution res ijk coordinates
	// in that face's coordinate system
	fijkBC := *fijk

	// build the H3Index from finest res up
	// adjust r for the fact that the res 0 base cell offsets the indexing
	// digits
	ijk := &fijkBC.coord
	for r := res - 1; r >= 0; r-- {
		lastIJK := *ijk
		var lastCenter CoordIJK
		if isResolutionClassIII(r + 1) {
			// rotate ccw
			_upAp7(ijk)
			lastCenter = *ijk
			_downAp7(&lastCenter)
		} else {
			// rotate cw
			_upAp7r(ijk)
			lastCenter = *ijk
			_downAp7r(&lastCenter)
		}

		var diff CoordIJK
		_ijkSub(&lastIJK, &lastCenter, &diff)
		_ijkNormalize(&diff)

		h.setIndexDigit(r+1, _unitIjkToDigit(&diff))
	}

	// fijkBC should now hold the IJK of the base cell in the coordinate
	// system of the current face

	if fijkBC.coord.i > MAX_FACE_COORD || fijkBC.coord.j > MAX_FACE_COORD ||
		fijkBC.coord.k > MAX_FACE_COORD {
		// out of range input
		return H3_NULL
	}

	// lookup the correct base cell
	baseCell := _faceIjkToBaseCell(&fijkBC)
	h.setBaseCell(baseCell)

	// rotate if necessary to get canonical base cell orientation
	// for this base cell
	numRots := _faceIjkToBaseCellCCWrot60(&fijkBC)
	if _isBaseCellPentagon(baseCell) {
		// force rotation out of missing k-axes sub-sequence
		if _h3LeadingNonZeroDigit(h) == K_AXES_DIGIT {
			// check for a cw/ccw offset face; default is ccw
			if _baseCellIsCwOffset(baseCell, fijkBC.face) {
				h = _h3Rotate60cw(h)
			} else {
				h = _h3Rotate60ccw(h)
			}
		}

		for i := 0; i < numRots; i++ {
			h = _h3RotatePent60ccw(h)
		}
	} else {
		for i := 0; i < numRots; i++ {
			h = _h3Rotate60ccw(h)
		}
	}

	return h
}

// LatLngToCell encodes a coordinate on the sphere to the H3 index of the
// containing cell at the specified resolution.
func LatLngToCell(g *LatLng, res int) (H3Index, error) {
	if res < 0 || res > MAX_H3_RES {
		return H3_NULL, ErrResDomain
	}
	if math.IsNaN(g.Lat) || math.IsInf(g.Lat, 0) ||
		math.IsNaN(g.Lng) || math.IsInf(g.Lng, 0) {
		return H3_NULL, ErrLatLngDomain
	}

	var fijk FaceIJK
	_geoToFaceIjk(g, res, &fijk)
	out := _faceIjkToH3(&fijk, res)
	if out == H3_NULL {
		return H3_NULL, ErrFailed
	}
	return out, nil
}

// _h3ToFaceIjkWithInitializedFijk converts an H3Index to the FaceIJK
// address on a specified icosahedral face, with fijk initialized with
// the desired face and normalized base cell coordinates.
//
// Returns true if the possibility of overage exists, otherwise false.
func _h3ToFaceIjkWithInitializedFijk(h H3Index, fijk *FaceIJK) bool {
	ijk := &fijk.coord
	res := h.getResolution()

	// center base cell hierarchy is entirely on this face
	possibleOverage := true
	if !_isBaseCellPentagon(h.getBaseCell()) &&
		(res == 0 || (ijk.i == 0 && ijk.j == 0 && ijk.k == 0)) {
		possibleOverage = false
	}

	for r := 1; r <= res; r++ {
		if isResolutionClassIII(r) {
			// Class III == rotate ccw
			_downAp7(ijk)
		} else {
			// Class II == rotate cw
			_downAp7r(ijk)
		}

		_neighbor(ijk, h.getIndexDigit(r))
	}

	return possibleOverage
}

// _h3ToFaceIjk converts an H3Index to a FaceIJK address.
func _h3ToFaceIjk(h H3Index, fijk *FaceIJK) error {
	baseCell := h.getBaseCell()
	if baseCell < 0 || baseCell >= NUM_BASE_CELLS {
		// to prevent reading uninitialized memory, zero the output
		fijk.face = 0
		fijk.coord = CoordIJK{}
		return ErrCellInvalid
	}
	// adjust for the pentagonal missing sequence; all of sub-sequence 5
	// needs to be adjusted (and some of sub-sequence 4 below)
	if _isBaseCellPentagon(baseCell) && _h3LeadingNonZeroDigit(h) == IK_AXES_DIGIT {
		h = _h3Rotate60cw(h)
	}

	// start with the "home" face and ijk+ coordinates for the base cell
	*fijk = baseCellData[baseCell].homeFijk
	if !_h3ToFaceIjkWithInitializedFijk(h, fijk) {
		return nil // no overage is possible; h lies on this face
	}

	// if we're here we have the potential for an "overage"; i.e., it is
	// possible that the cell lies on an adjacent face

	origIJK := fijk.coord

	// if we're in Class III, drop into the next finer Class II grid
	res := h.getResolution()
	if isResolutionClassIII(res) {
		// Class III
		_downAp7r(&fijk.coord)
		res++
	}

	// adjust for overage if needed
	// a pentagon base cell with a leading 4 digit requires special
	// handling
	pentLeading4 := _isBaseCellPentagon(baseCell) && _h3LeadingNonZeroDigit(h) == I_AXES_DIGIT
	if _adjustOverageClassII(fijk, res, pentLeading4, false) != NO_OVERAGE {
		// if the base cell is a pentagon we have the potential for
		// secondary overages
		if _isBaseCellPentagon(baseCell) {
			for _adjustOverageClassII(fijk, res, false, false) != NO_OVERAGE {
			}
		}

		if res != h.getResolution() {
			_upAp7r(&fijk.coord)
		}
	} else if res != h.getResolution() {
		fijk.coord = origIJK
	}
	return nil
}

// CellToLatLng determines the spherical coordinates of the center point
// of a cell.
func CellToLatLng(h H3Index) (LatLng, error) {
	var fijk FaceIJK
	if err := _h3ToFaceIjk(h, &fijk); err != nil {
		return LatLng{}, err
	}
	var g LatLng
	_faceIjkToGeo(&fijk, h.getResolution(), &g)
	return g, nil
}

// CellToBoundary determines the cell boundary in spherical coordinates
// for a cell.
func CellToBoundary(h H3Index) (CellBoundary, error) {
	var fijk FaceIJK
	if err := _h3ToFaceIjk(h, &fijk); err != nil {
		return CellBoundary{}, err
	}
	var cb CellBoundary
	if IsPentagon(h) {
		_faceIjkPentToCellBoundary(&fijk, h.getResolution(), 0, NUM_PENT_VERTS, &cb)
	} else {
		_faceIjkToCellBoundary(&fijk, h.getResolution(), 0, NUM_HEX_VERTS, &cb)
	}
	return cb, nil
}

// MaxFaceCount returns the maximum number of icosahedron faces the given
// cell may intersect.
func MaxFaceCount(h H3Index) int {
	// a pentagon always intersects 5 faces, a hexagon never intersects
	// more than 2 (but may only intersect 1)
	if IsPentagon(h) {
		return 5
	}
	return 2
}

// GetIcosahedronFaces finds all icosahedron faces intersected by the
// given cell, represented as integers from 0-19.
func GetIcosahedronFaces(h H3Index) ([]int, error) {
	res := h.getResolution()
	isPent := IsPentagon(h)

	// We can't use the vertex-based approach here for class II
	// pentagons, because all their vertices are on the icosahedron
	// edges. Their direct child pentagons cross the same faces, so use
	// those instead.
	if isPent && !isResolutionClassIII(res) {
		// This would not work for res 15, but it is only run on Class II
		// pentagons, so it is never invoked for a res 15 index.
		childPentagon := makeDirectChild(h, 0)
		return GetIcosahedronFaces(childPentagon)
	}

	// convert to FaceIJK
	var fijk FaceIJK
	if err := _h3ToFaceIjk(h, &fijk); err != nil {
		return nil, err
	}

	// Get all vertices as FaceIJK addresses. For simplicity, always
	// initialize the array with 6 verts, ignoring the last one for
	// pentagons.
	var fijkVerts [NUM_HEX_VERTS]FaceIJK
	var vertexCount int

	if isPent {
		vertexCount = NUM_PENT_VERTS
		_faceIjkPentToVerts(&fijk, &res, fijkVerts[:])
	} else {
		vertexCount = NUM_HEX_VERTS
		_faceIjkToVerts(&fijk, &res, fijkVerts[:])
	}

	// We may not use all of the slots in the output array, so fill with
	// invalid values to indicate unused slots.
	faceCount := MaxFaceCount(h)
	out := make([]int, faceCount)
	for i := range out {
		out[i] = INVALID_FACE
	}

	// add each vertex face, using the output array as a hash set
	for i := 0; i < vertexCount; i++ {
		vert := &fijkVerts[i]

		// Adjust overage, determining whether this vertex is on another
		// face
		if isPent {
			_adjustPentVertOverage(vert, res)
		} else {
			_adjustOverageClassII(vert, res, false, true)
		}

		// Save the face to the output array
		face := vert.face
		pos := 0
		// Find the first empty output position, or the first position
		// matching the current face
		for out[pos] != INVALID_FACE && out[pos] != face {
			pos++
			if pos >= faceCount {
				// Mismatch between the heuristic used in MaxFaceCount and
				// the calculation here - indicates an invalid index.
				return nil, ErrFailed
			}
		}
		out[pos] = face
	}

	// compact out the unused slots
	faces := out[:0]
	for _, face := range out {
		if face != INVALID_FACE {
			faces = append(faces, face)
		}
	}
	return faces, nil
}
