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

// a fence around a neighborhood in San Francisco
var sfGeoLoop = GeoLoop{
	{0.659966917655, -2.1364398519396},
	{0.6595011102219, -2.1359434279405},
	{0.6583348114025, -2.1354884206045},
	{0.6581220034068, -2.1382437718946},
	{0.6594479998527, -2.1384597563896},
	{0.6599990002976, -2.1376771158464},
}

// a hole within sfGeoLoop
var sfHoleGeoLoop = GeoLoop{
	{0.6595072188743, -2.1371053983433},
	{0.6591482046471, -2.1373141048153},
	{0.6592295020837, -2.1365222838402},
}

func TestPolygonToCellsSanFrancisco(t *testing.T) {
	polygon := &GeoPolygon{GeoLoop: sfGeoLoop}

	cells, err := PolygonToCells(polygon, 9)
	require.NoError(t, err)
	require.NotEmpty(t, cells)

	geodesic, err := NewGeodesicPolygon(polygon)
	require.NoError(t, err)

	seen := make(map[H3Index]bool)
	for _, cell := range cells {
		require.True(t, IsValidCell(cell))
		assert.Equal(t, 9, GetResolution(cell))
		assert.False(t, seen[cell], "duplicate cell %s", H3ToString(cell))
		seen[cell] = true

		// every returned cell has its center inside the polygon
		center, err := CellToLatLng(cell)
		require.NoError(t, err)
		assert.True(t, geodesic.ContainsLatLng(&center))
	}

	// the total covered area is close to the polygon area
	assert.Greater(t, len(cells), 1000)
	assert.Less(t, len(cells), 1500)

	// a point well inside the fence maps to a covered cell
	inside := LatLng{0.659, -2.137}
	if geodesic.ContainsLatLng(&inside) {
		cell, err := LatLngToCell(&inside, 9)
		require.NoError(t, err)
		assert.True(t, seen[cell])
	}
}

func TestPolygonToCellsWithHole(t *testing.T) {
	noHole := &GeoPolygon{GeoLoop: sfGeoLoop}
	withHole := &GeoPolygon{GeoLoop: sfGeoLoop, Holes: []GeoLoop{sfHoleGeoLoop}}

	cellsNoHole, err := PolygonToCells(noHole, 9)
	require.NoError(t, err)
	cellsWithHole, err := PolygonToCells(withHole, 9)
	require.NoError(t, err)

	assert.Less(t, len(cellsWithHole), len(cellsNoHole))

	// no covered cell center falls inside the hole
	holePoly := &GeoPolygon{GeoLoop: sfHoleGeoLoop}
	holeGeodesic, err := NewGeodesicPolygon(holePoly)
	require.NoError(t, err)
	for _, cell := range cellsWithHole {
		center, err := CellToLatLng(cell)
		require.NoError(t, err)
		assert.False(t, holeGeodesic.ContainsLatLng(&center))
	}
}

func TestPolygonToCellsAcrossResolutions(t *testing.T) {
	polygon := &GeoPolygon{GeoLoop: sfGeoLoop}

	prevCount := 0
	for res := 7; res <= 10; res++ {
		cells, err := PolygonToCells(polygon, res)
		require.NoError(t, err)
		// each finer resolution covers the area with more cells
		assert.Greater(t, len(cells), prevCount, "res %d", res)
		prevCount = len(cells)
	}
}

func TestPolygonToCellsCompact(t *testing.T) {
	polygon := &GeoPolygon{GeoLoop: sfGeoLoop}

	compact, err := PolygonToCellsCompact(polygon, 9)
	require.NoError(t, err)
	require.NotEmpty(t, compact)

	coarser := 0
	for _, cell := range compact {
		require.True(t, IsValidCell(cell))
		assert.LessOrEqual(t, GetResolution(cell), 9)
		if GetResolution(cell) < 9 {
			coarser++
		}
	}
	// the compact covering uses at least some coarser cells
	assert.Greater(t, coarser, 0)

	// expanding the compact covering agrees with the direct covering
	full, err := PolygonToCells(polygon, 9)
	require.NoError(t, err)

	expanded := make(map[H3Index]bool)
	for _, cell := range compact {
		children, err := CellToChildren(cell, 9)
		require.NoError(t, err)
		for _, child := range children {
			expanded[child] = true
		}
	}
	require.Len(t, expanded, len(full))
	for _, cell := range full {
		assert.True(t, expanded[cell])
	}
}

func TestPolygonToCellsErrors(t *testing.T) {
	polygon := &GeoPolygon{GeoLoop: sfGeoLoop}

	_, err := PolygonToCells(polygon, -1)
	assert.ErrorIs(t, err, ErrResDomain)
	_, err = PolygonToCells(polygon, 16)
	assert.ErrorIs(t, err, ErrResDomain)

	iter := NewIterCellsPolygonCompact(polygon, 9, 1)
	assert.ErrorIs(t, iter.Error, ErrOptionInvalid)
	assert.Equal(t, H3_NULL, iter.Cell)

	_, err = PolygonToCells(&GeoPolygon{}, 9)
	assert.Error(t, err)
}

func TestPolygonToCellsEmptyIntersection(t *testing.T) {
	// a tiny polygon in the middle of the ocean at a coarse resolution
	// yields cells only when a center falls inside; at res 0 it yields
	// nothing or a single cell
	tiny := &GeoPolygon{GeoLoop: GeoLoop{
		{0.001, -0.5},
		{0.0012, -0.5002},
		{0.0008, -0.5004},
	}}
	cells, err := PolygonToCells(tiny, 0)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(cells), 1)
}

func TestCellToBBoxContainsChildren(t *testing.T) {
	cell := H3Index(0x8a2a1072b59ffff)

	var bbox BBox
	require.NoError(t, cellToBBox(cell, &bbox, true))

	children, err := CellToChildren(cell, 12)
	require.NoError(t, err)
	for _, child := range children {
		center, err := CellToLatLng(child)
		require.NoError(t, err)
		assert.True(t, bboxContains(&bbox, &center), "child %s", H3ToString(child))
	}
}

func TestPolarCellBBoxes(t *testing.T) {
	for res := 0; res <= MAX_H3_RES; res++ {
		northPole := LatLng{M_PI_2, 0}
		cell, err := LatLngToCell(&northPole, res)
		require.NoError(t, err)
		assert.Equal(t, northPoleCells[res], cell, "res %d", res)

		var bbox BBox
		require.NoError(t, cellToBBox(cell, &bbox, true))
		assert.Equal(t, M_PI_2, bbox.north)
		assert.Equal(t, M_PI, bbox.east)
		assert.Equal(t, -M_PI, bbox.west)

		southPole := LatLng{-M_PI_2, 0}
		cell, err = LatLngToCell(&southPole, res)
		require.NoError(t, err)
		assert.Equal(t, southPoleCells[res], cell, "res %d", res)
	}
}
