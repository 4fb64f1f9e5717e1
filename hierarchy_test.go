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
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellToParent(t *testing.T) {
	cell := H3Index(0x8a2a1072b59ffff)

	parent, err := CellToParent(cell, 9)
	require.NoError(t, err)
	assert.True(t, IsValidCell(parent))
	assert.Equal(t, 9, GetResolution(parent))

	// a cell is its own parent at its own resolution
	same, err := CellToParent(cell, 10)
	require.NoError(t, err)
	assert.Equal(t, cell, same)

	_, err = CellToParent(cell, 11)
	assert.ErrorIs(t, err, ErrResMismatch)
	_, err = CellToParent(cell, -1)
	assert.ErrorIs(t, err, ErrResDomain)
}

func TestCellToChildrenContainsCell(t *testing.T) {
	cell := H3Index(0x8a2a1072b59ffff)

	parent, err := CellToParent(cell, 9)
	require.NoError(t, err)

	children, err := CellToChildren(parent, 10)
	require.NoError(t, err)
	require.Len(t, children, 7)

	count := 0
	for _, child := range children {
		assert.True(t, IsValidCell(child))
		if child == cell {
			count++
		}
		back, err := CellToParent(child, 9)
		require.NoError(t, err)
		assert.Equal(t, parent, back)
	}
	assert.Equal(t, 1, count)
}

func TestCellToChildrenPentagon(t *testing.T) {
	var pent H3Index
	setH3Index(&pent, 1, 4, CENTER_DIGIT)
	require.True(t, IsPentagon(pent))

	size, err := CellToChildrenSize(pent, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(6), size)

	children, err := CellToChildren(pent, 2)
	require.NoError(t, err)
	require.Len(t, children, 6)

	// the center child is the pentagon; no child has a K leading digit
	assert.True(t, IsPentagon(children[0]))
	for _, child := range children {
		assert.True(t, IsValidCell(child))
	}

	size, err = CellToChildrenSize(pent, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1+5*(49-1)/6), size)
}

func TestCellToCenterChild(t *testing.T) {
	cell := H3Index(0x8a2a1072b59ffff)

	child, err := CellToCenterChild(cell, 12)
	require.NoError(t, err)
	assert.True(t, IsValidCell(child))
	assert.Equal(t, 12, GetResolution(child))

	// the center child round-trips to the original parent
	back, err := CellToParent(child, 10)
	require.NoError(t, err)
	assert.Equal(t, cell, back)

	// center child digits are all 0
	for r := 11; r <= 12; r++ {
		d, err := GetIndexDigit(child, r)
		require.NoError(t, err)
		assert.Equal(t, 0, d)
	}

	_, err = CellToCenterChild(cell, 9)
	assert.ErrorIs(t, err, ErrResDomain)
}

var compactTestSet = []H3Index{
	0x8a2a1072b587fff, 0x8a2a1072b5b7fff, 0x8a2a1072b597fff,
	0x8a2a1072b59ffff, 0x8a2a1072b58ffff, 0x8a2a1072b5affff,
	0x8a2a1072b5a7fff, 0x8a2a1070c96ffff, 0x8a2a1072b4b7fff,
	0x8a2a1072b4a7fff,
}

func TestCompactCells(t *testing.T) {
	compacted, err := CompactCells(compactTestSet)
	require.NoError(t, err)
	require.Len(t, compacted, 4)

	// seven of the cells collapse into their res 9 parent
	parent, err := CellToParent(compactTestSet[3], 9)
	require.NoError(t, err)
	assert.Contains(t, compacted, parent)
	assert.Contains(t, compacted, H3Index(0x8a2a1070c96ffff))
	assert.Contains(t, compacted, H3Index(0x8a2a1072b4b7fff))
	assert.Contains(t, compacted, H3Index(0x8a2a1072b4a7fff))

	// no two compacted cells are in an ancestor/descendant relationship
	for _, a := range compacted {
		for _, b := range compacted {
			if a == b {
				continue
			}
			if GetResolution(a) < GetResolution(b) {
				bParent, err := CellToParent(b, GetResolution(a))
				require.NoError(t, err)
				assert.NotEqual(t, a, bParent)
			}
		}
	}
}

func TestCompactUncompactRoundTrip(t *testing.T) {
	compacted, err := CompactCells(compactTestSet)
	require.NoError(t, err)

	uncompacted, err := UncompactCells(compacted, 10)
	require.NoError(t, err)
	require.Len(t, uncompacted, len(compactTestSet))

	want := make([]H3Index, len(compactTestSet))
	copy(want, compactTestSet)
	got := make([]H3Index, len(uncompacted))
	copy(got, uncompacted)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	assert.Equal(t, want, got)
}

func TestCompactCellsErrors(t *testing.T) {
	// a child appearing again on top of a complete sibling set pushes
	// the per-parent count past 7 and is rejected
	parent9, err := CellToParent(compactTestSet[0], 9)
	require.NoError(t, err)
	siblings, err := CellToChildren(parent9, 10)
	require.NoError(t, err)
	dup := append(siblings, siblings[0])
	_, err = CompactCells(dup)
	assert.ErrorIs(t, err, ErrDuplicateInput)

	// mixed resolutions are rejected
	parent, err := CellToParent(compactTestSet[0], 9)
	require.NoError(t, err)
	_, err = CompactCells([]H3Index{compactTestSet[0], parent})
	assert.ErrorIs(t, err, ErrResMismatch)

	// empty input is an empty output
	out, err := CompactCells(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCompactCellsAllChildren(t *testing.T) {
	// compacting all children of a cell yields the cell itself
	parent := H3Index(0x892a1072b5bffff)
	children, err := CellToChildren(parent, 12)
	require.NoError(t, err)

	compacted, err := CompactCells(children)
	require.NoError(t, err)
	require.Len(t, compacted, 1)
	assert.Equal(t, parent, compacted[0])
}

func TestUncompactCellsSize(t *testing.T) {
	size, err := UncompactCellsSize([]H3Index{0x8a2a1072b59ffff}, 12)
	require.NoError(t, err)
	assert.Equal(t, int64(49), size)

	_, err = UncompactCellsSize([]H3Index{0x8a2a1072b59ffff}, 9)
	assert.ErrorIs(t, err, ErrResMismatch)
}

func TestChildPosRoundTrip(t *testing.T) {
	cells := []H3Index{
		0x8a2a1072b59ffff, // hexagon
	}
	var pent H3Index
	setH3Index(&pent, 4, 14, CENTER_DIGIT)
	pentChild, err := CellToChildren(pent, 6)
	require.NoError(t, err)
	cells = append(cells, pentChild[len(pentChild)-1])

	for _, cell := range cells {
		res := GetResolution(cell)
		for parentRes := res - 3; parentRes <= res; parentRes++ {
			if parentRes < 0 {
				continue
			}
			pos, err := CellToChildPos(cell, parentRes)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, pos, int64(0))

			parent, err := CellToParent(cell, parentRes)
			require.NoError(t, err)

			back, err := ChildPosToCell(pos, parent, res)
			require.NoError(t, err)
			assert.Equal(t, cell, back)
		}
	}
}

func TestChildPosExhaustive(t *testing.T) {
	// every child of a pentagon maps to a unique, increasing position
	var pent H3Index
	setH3Index(&pent, 2, 38, CENTER_DIGIT)
	children, err := CellToChildren(pent, 4)
	require.NoError(t, err)

	for i, child := range children {
		pos, err := CellToChildPos(child, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(i), pos)
	}
}

func TestChildrenIterator(t *testing.T) {
	cell := H3Index(0x8a2a1072b59ffff)

	var collected []H3Index
	for it := NewIterCellsChildren(cell, 12); it.H != H3_NULL; it.Step() {
		collected = append(collected, it.H)
	}
	assert.Len(t, collected, 49)

	// iterating to the cell's own resolution yields just the cell
	it := NewIterCellsChildren(cell, 10)
	assert.Equal(t, cell, it.H)
	it.Step()
	assert.Equal(t, H3_NULL, it.H)

	// a null iterator stays exhausted
	it = NewIterCellsChildren(cell, 9)
	assert.Equal(t, H3_NULL, it.H)
	it.Step()
	assert.Equal(t, H3_NULL, it.H)
}
