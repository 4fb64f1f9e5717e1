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

func TestCellsToMultiPolygonEmpty(t *testing.T) {
	mpoly, err := CellsToMultiPolygon(nil)
	require.NoError(t, err)
	assert.Empty(t, mpoly.Polygons)
}

func TestCellsToMultiPolygonSingleCell(t *testing.T) {
	cell := H3Index(0x8a2a1072b59ffff)

	mpoly, err := CellsToMultiPolygon([]H3Index{cell})
	require.NoError(t, err)
	require.Len(t, mpoly.Polygons, 1)

	poly := mpoly.Polygons[0]
	assert.Empty(t, poly.Holes)
	// class II cell: one vertex per edge
	require.Len(t, poly.GeoLoop, 6)

	// the loop matches the cell boundary vertices
	cb, err := CellToBoundary(cell)
	require.NoError(t, err)
	for _, vert := range poly.GeoLoop {
		found := false
		for i := 0; i < cb.NumVerts; i++ {
			if geoAlmostEqualThreshold(&vert, &cb.Verts[i], EPSILON_RAD*10) {
				found = true
				break
			}
		}
		assert.True(t, found)
	}
}

func TestCellsToMultiPolygonSinglePentagon(t *testing.T) {
	var pent H3Index
	setH3Index(&pent, 2, 72, CENTER_DIGIT)

	mpoly, err := CellsToMultiPolygon([]H3Index{pent})
	require.NoError(t, err)
	require.Len(t, mpoly.Polygons, 1)
	assert.Len(t, mpoly.Polygons[0].GeoLoop, 5)
	assert.Empty(t, mpoly.Polygons[0].Holes)
}

func TestCellsToMultiPolygonContiguous(t *testing.T) {
	// two neighboring cells form a single 10-vertex loop
	a := H3Index(0x8a2a1072b59ffff)
	b := H3Index(0x8a2a1072b597fff)

	mpoly, err := CellsToMultiPolygon([]H3Index{a, b})
	require.NoError(t, err)
	require.Len(t, mpoly.Polygons, 1)
	assert.Len(t, mpoly.Polygons[0].GeoLoop, 10)
	assert.Empty(t, mpoly.Polygons[0].Holes)
}

func TestCellsToMultiPolygonNonContiguous(t *testing.T) {
	// two disjoint cells form two polygons
	a := H3Index(0x8a2a1072b59ffff)
	b := H3Index(0x8a2a1072a24ffff)

	mpoly, err := CellsToMultiPolygon([]H3Index{a, b})
	require.NoError(t, err)
	require.Len(t, mpoly.Polygons, 2)
	for _, poly := range mpoly.Polygons {
		assert.Len(t, poly.GeoLoop, 6)
		assert.Empty(t, poly.Holes)
	}
}

func TestCellsToMultiPolygonDisk(t *testing.T) {
	origin := H3Index(0x8a2a1072b59ffff)
	disk, err := GridDisk(origin, 1)
	require.NoError(t, err)

	mpoly, err := CellsToMultiPolygon(disk)
	require.NoError(t, err)
	require.Len(t, mpoly.Polygons, 1)

	// the perimeter of a 7-cell disk is 18 edges
	assert.Len(t, mpoly.Polygons[0].GeoLoop, 18)
	assert.Empty(t, mpoly.Polygons[0].Holes)
}

func TestCellsToMultiPolygonDonut(t *testing.T) {
	origin := H3Index(0x8a2a1072b59ffff)
	ring, err := GridRingUnsafe(origin, 1)
	require.NoError(t, err)

	mpoly, err := CellsToMultiPolygon(ring)
	require.NoError(t, err)
	require.Len(t, mpoly.Polygons, 1)

	poly := mpoly.Polygons[0]
	require.Len(t, poly.Holes, 1)
	// outer loop is the 18-edge perimeter, the hole is the missing
	// center cell
	assert.Len(t, poly.GeoLoop, 18)
	assert.Len(t, poly.Holes[0], 6)

	// the hole lies within the outer loop
	outer, err := NewGeodesicPolygon(&GeoPolygon{GeoLoop: poly.GeoLoop})
	require.NoError(t, err)
	center, err := CellToLatLng(origin)
	require.NoError(t, err)
	assert.True(t, outer.ContainsLatLng(&center))
}

func TestCellsToMultiPolygonOrdering(t *testing.T) {
	// a 7-cell disk and a single far-away cell: the disk polygon,
	// having the larger outer loop, comes first
	origin := H3Index(0x8a2a1072b59ffff)
	disk, err := GridDisk(origin, 1)
	require.NoError(t, err)
	cells := append([]H3Index{0x8a2a1072a24ffff}, disk...)

	mpoly, err := CellsToMultiPolygon(cells)
	require.NoError(t, err)
	require.Len(t, mpoly.Polygons, 2)
	assert.Len(t, mpoly.Polygons[0].GeoLoop, 18)
	assert.Len(t, mpoly.Polygons[1].GeoLoop, 6)
}

func TestCellsToMultiPolygonClassIII(t *testing.T) {
	// class III cells have distortion vertices on icosahedron-crossing
	// edges; a single cell yields at least its 6 topological vertices
	var g LatLng
	setGeoDegs(&g, 40.689167, -74.044444)
	cell, err := LatLngToCell(&g, 9)
	require.NoError(t, err)

	mpoly, err := CellsToMultiPolygon([]H3Index{cell})
	require.NoError(t, err)
	require.Len(t, mpoly.Polygons, 1)
	assert.GreaterOrEqual(t, len(mpoly.Polygons[0].GeoLoop), 6)
}

func TestCellsToMultiPolygonValidation(t *testing.T) {
	a := H3Index(0x8a2a1072b59ffff)

	// duplicates are rejected
	_, err := CellsToMultiPolygon([]H3Index{a, a})
	assert.ErrorIs(t, err, ErrDuplicateInput)

	// mixed resolutions are rejected
	parent, err := CellToParent(a, 9)
	require.NoError(t, err)
	_, err = CellsToMultiPolygon([]H3Index{a, parent})
	assert.ErrorIs(t, err, ErrResMismatch)

	// invalid cells are rejected
	_, err = CellsToMultiPolygon([]H3Index{H3_NULL})
	assert.ErrorIs(t, err, ErrCellInvalid)
}
