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

func TestCellToBoundaryHexClassII(t *testing.T) {
	// class II hexagons have exactly 6 vertices
	cell := H3Index(0x8a2a1072b59ffff)
	require.False(t, IsResClassIII(cell))

	cb, err := CellToBoundary(cell)
	require.NoError(t, err)
	assert.Equal(t, NUM_HEX_VERTS, cb.NumVerts)
}

func TestCellToBoundaryPentClassII(t *testing.T) {
	// class II pentagons have exactly 5 vertices
	var pent H3Index
	setH3Index(&pent, 2, 4, CENTER_DIGIT)

	cb, err := CellToBoundary(pent)
	require.NoError(t, err)
	assert.Equal(t, NUM_PENT_VERTS, cb.NumVerts)
}

func TestCellToBoundaryPentClassIII(t *testing.T) {
	// class III pentagon edges all cross icosahedron edges, adding five
	// distortion vertices
	var pent H3Index
	setH3Index(&pent, 3, 117, CENTER_DIGIT)

	cb, err := CellToBoundary(pent)
	require.NoError(t, err)
	assert.Equal(t, 10, cb.NumVerts)
}

func TestCellToBoundaryVertexCountRange(t *testing.T) {
	var g LatLng
	setGeoDegs(&g, 40.689167, -74.044444)

	for res := 0; res <= MAX_H3_RES; res++ {
		cell, err := LatLngToCell(&g, res)
		require.NoError(t, err)

		cb, err := CellToBoundary(cell)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, cb.NumVerts, NUM_PENT_VERTS, "res %d", res)
		assert.LessOrEqual(t, cb.NumVerts, MAX_CELL_BNDRY_VERTS, "res %d", res)
	}
}

func TestBoundaryEdgeLengths(t *testing.T) {
	var g LatLng
	setGeoDegs(&g, 40.689167, -74.044444)

	for res := 0; res <= 6; res++ {
		cell, err := LatLngToCell(&g, res)
		require.NoError(t, err)

		cb, err := CellToBoundary(cell)
		require.NoError(t, err)

		// consecutive boundary vertices differ by less than the max edge
		// length at this resolution, plus a small tolerance
		for i := 0; i < cb.NumVerts; i++ {
			j := (i + 1) % cb.NumVerts
			dist := GreatCircleDistanceRads(&cb.Verts[i], &cb.Verts[j])
			assert.Less(t, dist, maxEdgeLengthRads[res]*1.0001, "res %d vert %d", res, i)
		}
	}
}

func TestBoundaryContainsCenter(t *testing.T) {
	// the cell center is inside the polygon formed by the boundary
	var g LatLng
	setGeoDegs(&g, 37.7752702151959, -122.418307270836)

	for res := 2; res <= 12; res += 2 {
		cell, err := LatLngToCell(&g, res)
		require.NoError(t, err)

		center, err := CellToLatLng(cell)
		require.NoError(t, err)
		cb, err := CellToBoundary(cell)
		require.NoError(t, err)

		loop := make(GeoLoop, cb.NumVerts)
		copy(loop, cb.Verts[:cb.NumVerts])
		poly := &GeoPolygon{GeoLoop: loop}
		geodesic, err := NewGeodesicPolygon(poly)
		require.NoError(t, err)
		assert.True(t, geodesic.ContainsLatLng(&center), "res %d", res)
	}
}

func TestCellArea(t *testing.T) {
	var g LatLng
	setGeoDegs(&g, 40.689167, -74.044444)

	for res := 0; res <= 10; res++ {
		cell, err := LatLngToCell(&g, res)
		require.NoError(t, err)

		areaKm2, err := CellAreaKm2(cell)
		require.NoError(t, err)
		avg, err := GetHexagonAreaAvgKm2(res)
		require.NoError(t, err)

		// the exact area is within a factor of two of the average
		assert.Greater(t, areaKm2, avg/2, "res %d", res)
		assert.Less(t, areaKm2, avg*2, "res %d", res)

		areaRads2, err := CellAreaRads2(cell)
		require.NoError(t, err)
		assert.InDelta(t, areaKm2, areaRads2*EARTH_RADIUS_KM*EARTH_RADIUS_KM, areaKm2*1e-9)
	}
}
