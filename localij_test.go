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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridDistanceSanFrancisco(t *testing.T) {
	origin, err := StringToH3("8f2830828052d25")
	require.NoError(t, err)
	destination, err := StringToH3("8f283082a30e623")
	require.NoError(t, err)

	dist, err := GridDistance(origin, destination)
	require.NoError(t, err)
	assert.Equal(t, int64(2340), dist)

	// symmetric
	back, err := GridDistance(destination, origin)
	require.NoError(t, err)
	assert.Equal(t, dist, back)
}

func TestGridDistanceIdentityAndNeighbors(t *testing.T) {
	origin := H3Index(0x8a2a1072b59ffff)

	dist, err := GridDistance(origin, origin)
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist)

	ring, err := GridRingUnsafe(origin, 1)
	require.NoError(t, err)
	for _, neighbor := range ring {
		dist, err := GridDistance(origin, neighbor)
		require.NoError(t, err)
		assert.Equal(t, int64(1), dist)
	}
}

func TestGridDistanceResMismatch(t *testing.T) {
	a := H3Index(0x8a2a1072b59ffff)
	b, err := CellToParent(a, 9)
	require.NoError(t, err)
	_, err = GridDistance(a, b)
	assert.ErrorIs(t, err, ErrResMismatch)
}

func TestCellToLocalIjRoundTrip(t *testing.T) {
	origin := H3Index(0x8a2a1072b59ffff)

	disk, err := GridDisk(origin, 3)
	require.NoError(t, err)

	for _, cell := range disk {
		ij, err := CellToLocalIj(origin, cell, 0)
		require.NoError(t, err)

		back, err := LocalIjToCell(origin, &ij, 0)
		require.NoError(t, err)
		assert.Equal(t, cell, back, "cell %s", H3ToString(cell))
	}
}

func TestCellToLocalIjOrigin(t *testing.T) {
	origin := H3Index(0x8a2a1072b59ffff)

	ij, err := CellToLocalIj(origin, origin, 0)
	require.NoError(t, err)

	back, err := LocalIjToCell(origin, &ij, 0)
	require.NoError(t, err)
	assert.Equal(t, origin, back)
}

func TestLocalIjInvalidMode(t *testing.T) {
	origin := H3Index(0x8a2a1072b59ffff)

	_, err := CellToLocalIj(origin, origin, 1)
	assert.ErrorIs(t, err, ErrOptionInvalid)

	ij := CoordIJ{0, 0}
	_, err = LocalIjToCell(origin, &ij, 42)
	assert.ErrorIs(t, err, ErrOptionInvalid)
}

func TestGridPathCells(t *testing.T) {
	start, err := StringToH3("8f2830828052d25")
	require.NoError(t, err)
	end, err := StringToH3("8f283082a30e623")
	require.NoError(t, err)

	size, err := GridPathCellsSize(start, end)
	require.NoError(t, err)
	assert.Equal(t, int64(2341), size)

	path, err := GridPathCells(start, end)
	require.NoError(t, err)
	require.Len(t, path, int(size))

	assert.Equal(t, start, path[0])
	assert.Equal(t, end, path[len(path)-1])

	// every cell in the line is a neighbor of the preceding cell
	for i := 1; i < len(path); i++ {
		dist, err := GridDistance(path[i-1], path[i])
		require.NoError(t, err)
		assert.Equal(t, int64(1), dist, "step %d", i)
	}
}

func TestGridPathCellsDegenerate(t *testing.T) {
	origin := H3Index(0x8a2a1072b59ffff)
	path, err := GridPathCells(origin, origin)
	require.NoError(t, err)
	assert.Equal(t, []H3Index{origin}, path)
}
