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

func TestCellsToDirectedEdge(t *testing.T) {
	origin := H3Index(0x8a2a1072b59ffff)
	destination := H3Index(0x8a2a1072b597fff)

	edge, err := CellsToDirectedEdge(origin, destination)
	require.NoError(t, err)
	assert.Equal(t, H3Index(0x16a2a1072b59ffff), edge)
	assert.True(t, IsValidDirectedEdge(edge))

	// round trip
	gotOrigin, gotDestination, err := DirectedEdgeToCells(edge)
	require.NoError(t, err)
	assert.Equal(t, origin, gotOrigin)
	assert.Equal(t, destination, gotDestination)
}

func TestCellsToDirectedEdgeNotNeighbors(t *testing.T) {
	origin := H3Index(0x8a2a1072b59ffff)
	notNeighbor := H3Index(0x8a2a1072a24ffff)

	_, err := CellsToDirectedEdge(origin, notNeighbor)
	assert.ErrorIs(t, err, ErrNotNeighbors)
}

func TestDirectedEdgeBoundary(t *testing.T) {
	edge := H3Index(0x16a2a1072b59ffff)

	cb, err := DirectedEdgeToBoundary(edge)
	require.NoError(t, err)
	require.GreaterOrEqual(t, cb.NumVerts, 2)
	require.LessOrEqual(t, cb.NumVerts, 3)

	var want0, want1 LatLng
	setGeoDegs(&want0, 40.690059, -74.044152)
	setGeoDegs(&want1, 40.689908, -74.045062)

	assert.InDelta(t, want0.Lat, cb.Verts[0].Lat, 1e-5)
	assert.InDelta(t, want0.Lng, cb.Verts[0].Lng, 1e-5)
	last := cb.NumVerts - 1
	assert.InDelta(t, want1.Lat, cb.Verts[last].Lat, 1e-5)
	assert.InDelta(t, want1.Lng, cb.Verts[last].Lng, 1e-5)
}

func TestOriginToDirectedEdges(t *testing.T) {
	origin := H3Index(0x8a2a1072b59ffff)
	edges := OriginToDirectedEdges(origin)

	ring, err := GridRingUnsafe(origin, 1)
	require.NoError(t, err)
	neighborSet := make(map[H3Index]bool)
	for _, n := range ring {
		neighborSet[n] = true
	}

	for _, edge := range edges {
		require.True(t, IsValidDirectedEdge(edge))

		gotOrigin, err := GetDirectedEdgeOrigin(edge)
		require.NoError(t, err)
		assert.Equal(t, origin, gotOrigin)

		destination, err := GetDirectedEdgeDestination(edge)
		require.NoError(t, err)
		assert.True(t, neighborSet[destination])
	}
}

func TestOriginToDirectedEdgesPentagon(t *testing.T) {
	var pent H3Index
	setH3Index(&pent, 4, 58, CENTER_DIGIT)
	edges := OriginToDirectedEdges(pent)

	assert.Equal(t, H3_NULL, edges[0])
	for _, edge := range edges[1:] {
		assert.True(t, IsValidDirectedEdge(edge))
	}
}

func TestReverseDirectedEdge(t *testing.T) {
	edge := H3Index(0x16a2a1072b59ffff)

	reversed, err := ReverseDirectedEdge(edge)
	require.NoError(t, err)
	require.True(t, IsValidDirectedEdge(reversed))

	o1, d1, err := DirectedEdgeToCells(edge)
	require.NoError(t, err)
	o2, d2, err := DirectedEdgeToCells(reversed)
	require.NoError(t, err)
	assert.Equal(t, o1, d2)
	assert.Equal(t, d1, o2)
}

func TestIsValidDirectedEdge(t *testing.T) {
	cell := H3Index(0x8a2a1072b59ffff)

	// a plain cell is not an edge
	assert.False(t, IsValidDirectedEdge(cell))

	// direction 0 is not a valid edge direction
	edge := cell
	edge.setMode(H3_DIRECTEDEDGE_MODE)
	assert.False(t, IsValidDirectedEdge(edge))

	edge.setReservedBits(1)
	assert.True(t, IsValidDirectedEdge(edge))

	edge.setReservedBits(7)
	assert.False(t, IsValidDirectedEdge(edge))

	// the K direction off a pentagon is deleted
	var pent H3Index
	setH3Index(&pent, 4, 97, CENTER_DIGIT)
	pentEdge := pent
	pentEdge.setMode(H3_DIRECTEDEDGE_MODE)
	pentEdge.setReservedBits(int(K_AXES_DIGIT))
	assert.False(t, IsValidDirectedEdge(pentEdge))
}

func TestAreNeighborCells(t *testing.T) {
	origin := H3Index(0x8a2a1072b59ffff)

	ring, err := GridRingUnsafe(origin, 1)
	require.NoError(t, err)
	for _, neighbor := range ring {
		ok, err := AreNeighborCells(origin, neighbor)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	// a cell is not its own neighbor
	ok, err := AreNeighborCells(origin, origin)
	require.NoError(t, err)
	assert.False(t, ok)

	// cells two steps apart are not neighbors
	ring2, err := GridRingUnsafe(origin, 2)
	require.NoError(t, err)
	ok, err = AreNeighborCells(origin, ring2[0])
	require.NoError(t, err)
	assert.False(t, ok)

	// resolution mismatch is an error
	parent, err := CellToParent(origin, 9)
	require.NoError(t, err)
	_, err = AreNeighborCells(origin, parent)
	assert.ErrorIs(t, err, ErrResMismatch)
}

func TestEdgeLength(t *testing.T) {
	origin := H3Index(0x8a2a1072b59ffff)
	edges := OriginToDirectedEdges(origin)

	avg, err := GetHexagonEdgeLengthAvgKm(10)
	require.NoError(t, err)

	for _, edge := range edges {
		lengthKm, err := EdgeLengthKm(edge)
		require.NoError(t, err)
		// exact edge lengths are within a factor of two of the average
		assert.Greater(t, lengthKm, avg/2)
		assert.Less(t, lengthKm, avg*2)

		lengthRads, err := EdgeLengthRads(edge)
		require.NoError(t, err)
		assert.InDelta(t, lengthKm, lengthRads*EARTH_RADIUS_KM, 1e-9)
	}
}
