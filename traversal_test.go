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

func TestMaxGridDiskSize(t *testing.T) {
	size, err := MaxGridDiskSize(0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), size)

	size, err = MaxGridDiskSize(1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), size)

	size, err = MaxGridDiskSize(2)
	require.NoError(t, err)
	assert.Equal(t, int64(19), size)

	_, err = MaxGridDiskSize(-1)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestGridDiskIdentity(t *testing.T) {
	origin := H3Index(0x8a2a1072b59ffff)
	disk, err := GridDisk(origin, 0)
	require.NoError(t, err)
	assert.Equal(t, []H3Index{origin}, disk)
}

func TestGridDiskK2(t *testing.T) {
	origin := H3Index(0x8a2a1072b59ffff)
	disk, err := GridDisk(origin, 2)
	require.NoError(t, err)
	require.Len(t, disk, 19)

	seen := make(map[H3Index]bool)
	for _, cell := range disk {
		assert.True(t, IsValidCell(cell))
		assert.False(t, seen[cell], "duplicate cell %s", H3ToString(cell))
		seen[cell] = true
	}

	// spiral order: origin first, then ring by ring
	assert.Equal(t, origin, disk[0])
	for i, cell := range disk {
		dist, err := GridDistance(origin, cell)
		require.NoError(t, err)
		switch {
		case i == 0:
			assert.Equal(t, int64(0), dist)
		case i <= 6:
			assert.Equal(t, int64(1), dist)
		default:
			assert.Equal(t, int64(2), dist)
		}
	}
}

func TestGridDiskPentagon(t *testing.T) {
	var pent H3Index
	setH3Index(&pent, 2, 4, CENTER_DIGIT)
	require.True(t, IsPentagon(pent))

	// the unsafe variant refuses pentagons
	_, err := GridDiskUnsafe(pent, 1)
	assert.ErrorIs(t, err, ErrPentagon)

	// the safe variant handles them; a pentagon has 5 neighbors
	disk, err := GridDisk(pent, 1)
	require.NoError(t, err)
	assert.Len(t, disk, 6)

	seen := make(map[H3Index]bool)
	for _, cell := range disk {
		assert.True(t, IsValidCell(cell))
		seen[cell] = true
	}
	assert.Len(t, seen, 6)
}

func TestGridDiskNearPentagon(t *testing.T) {
	var pent H3Index
	setH3Index(&pent, 3, 49, CENTER_DIGIT)
	neighbors, err := GridDisk(pent, 1)
	require.NoError(t, err)

	// a disk around a pentagon neighbor must fall back to the safe
	// algorithm and still produce distinct valid cells
	origin := neighbors[1]
	disk, err := GridDisk(origin, 2)
	require.NoError(t, err)

	seen := make(map[H3Index]bool)
	for _, cell := range disk {
		assert.True(t, IsValidCell(cell))
		seen[cell] = true
	}
	assert.Len(t, seen, len(disk))
	assert.Contains(t, disk, origin)
}

func TestGridDiskDistances(t *testing.T) {
	origin := H3Index(0x8a2a1072b59ffff)
	cells, distances, err := GridDiskDistances(origin, 2)
	require.NoError(t, err)
	require.Len(t, cells, 19)
	require.Len(t, distances, 19)

	for i, cell := range cells {
		dist, err := GridDistance(origin, cell)
		require.NoError(t, err)
		assert.Equal(t, dist, int64(distances[i]))
	}
}

func TestGridRingUnsafe(t *testing.T) {
	origin := H3Index(0x8a2a1072b59ffff)

	ring, err := GridRingUnsafe(origin, 0)
	require.NoError(t, err)
	assert.Equal(t, []H3Index{origin}, ring)

	for k := 1; k <= 3; k++ {
		ring, err := GridRingUnsafe(origin, k)
		require.NoError(t, err)
		require.Len(t, ring, 6*k, "k %d", k)
		for _, cell := range ring {
			dist, err := GridDistance(origin, cell)
			require.NoError(t, err)
			assert.Equal(t, int64(k), dist)
		}
	}

	var pent H3Index
	setH3Index(&pent, 2, 117, CENTER_DIGIT)
	_, err = GridRingUnsafe(pent, 1)
	assert.ErrorIs(t, err, ErrPentagon)
}

func TestGridDiskRingConsistency(t *testing.T) {
	origin := H3Index(0x8a2a1072b59ffff)

	disk, err := GridDisk(origin, 2)
	require.NoError(t, err)
	ring, err := GridRingUnsafe(origin, 2)
	require.NoError(t, err)

	// the outermost ring is exactly the disk minus the inner disk
	inner, err := GridDisk(origin, 1)
	require.NoError(t, err)

	innerSet := make(map[H3Index]bool)
	for _, cell := range inner {
		innerSet[cell] = true
	}
	outer := make(map[H3Index]bool)
	for _, cell := range disk {
		if !innerSet[cell] {
			outer[cell] = true
		}
	}
	require.Len(t, ring, len(outer))
	for _, cell := range ring {
		assert.True(t, outer[cell])
	}
}

func TestNeighborRotationsAllDirections(t *testing.T) {
	origin := H3Index(0x8a2a1072b59ffff)

	seen := make(map[H3Index]bool)
	for dir := K_AXES_DIGIT; dir < Direction(NUM_DIGITS); dir++ {
		rotations := 0
		neighbor, err := h3NeighborRotations(origin, dir, &rotations)
		require.NoError(t, err)
		assert.True(t, IsValidCell(neighbor))
		assert.NotEqual(t, origin, neighbor)
		seen[neighbor] = true

		dist, err := GridDistance(origin, neighbor)
		require.NoError(t, err)
		assert.Equal(t, int64(1), dist)
	}
	assert.Len(t, seen, 6)
}
