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

func squarePolygon() *GeoPolygon {
	return &GeoPolygon{GeoLoop: GeoLoop{
		{-0.1, -0.1},
		{-0.1, 0.1},
		{0.1, 0.1},
		{0.1, -0.1},
	}}
}

func TestGeodesicPolygonContainsPoint(t *testing.T) {
	geodesic, err := NewGeodesicPolygon(squarePolygon())
	require.NoError(t, err)

	inside := LatLng{0, 0}
	assert.True(t, geodesic.ContainsLatLng(&inside))

	nearEdge := LatLng{0.099, 0.0}
	assert.True(t, geodesic.ContainsLatLng(&nearEdge))

	outside := LatLng{0.5, 0.5}
	assert.False(t, geodesic.ContainsLatLng(&outside))

	antipode := LatLng{0, M_PI - 0.001}
	assert.False(t, geodesic.ContainsLatLng(&antipode))
}

func TestGeodesicPolygonHoles(t *testing.T) {
	polygon := squarePolygon()
	polygon.Holes = []GeoLoop{{
		{-0.02, -0.02},
		{-0.02, 0.02},
		{0.02, 0.02},
		{0.02, -0.02},
	}}

	geodesic, err := NewGeodesicPolygon(polygon)
	require.NoError(t, err)

	inHole := LatLng{0, 0}
	assert.False(t, geodesic.ContainsLatLng(&inHole))

	inShell := LatLng{0.05, 0.05}
	assert.True(t, geodesic.ContainsLatLng(&inShell))
}

func TestGeodesicPolygonErrors(t *testing.T) {
	_, err := NewGeodesicPolygon(nil)
	assert.ErrorIs(t, err, ErrDomain)

	_, err = NewGeodesicPolygon(&GeoPolygon{})
	assert.ErrorIs(t, err, ErrDomain)

	_, err = NewGeodesicPolygon(&GeoPolygon{
		GeoLoop: squarePolygon().GeoLoop,
		Holes:   []GeoLoop{{}},
	})
	assert.ErrorIs(t, err, ErrDomain)
}

func TestGeodesicEdgesCross(t *testing.T) {
	// two arcs crossing at the origin point
	var a1, a2, b1, b2 Vec3d
	p := LatLng{-0.1, 0}
	_geoToVec3d(&p, &a1)
	p = LatLng{0.1, 0}
	_geoToVec3d(&p, &a2)
	p = LatLng{0, -0.1}
	_geoToVec3d(&p, &b1)
	p = LatLng{0, 0.1}
	_geoToVec3d(&p, &b2)

	normalB := _vec3Cross(&b1, &b2)
	assert.True(t, _geodesicEdgesCross(&a1, &a2, &b1, &b2, &normalB))

	// disjoint arcs do not cross
	p = LatLng{0.5, 0.5}
	_geoToVec3d(&p, &a1)
	p = LatLng{0.6, 0.5}
	_geoToVec3d(&p, &a2)
	assert.False(t, _geodesicEdgesCross(&a1, &a2, &b1, &b2, &normalB))
}

func TestGeodesicBoundaryIntersects(t *testing.T) {
	geodesic, err := NewGeodesicPolygon(squarePolygon())
	require.NoError(t, err)

	// a cell boundary straddling the polygon edge intersects
	straddling := GeodesicCellBoundary{numVerts: 4}
	for i, c := range []LatLng{
		{0.05, 0.05}, {0.05, 0.15}, {0.15, 0.15}, {0.15, 0.05},
	} {
		_geoToVec3d(&c, &straddling.verts[i])
	}

	// a cell boundary well inside does not
	contained := GeodesicCellBoundary{numVerts: 4}
	for i, c := range []LatLng{
		{-0.01, -0.01}, {-0.01, 0.01}, {0.01, 0.01}, {0.01, -0.01},
	} {
		_geoToVec3d(&c, &contained.verts[i])
	}

	// a permissive cap covering the whole sphere
	scap := SphereCap{center: Vec3d{1, 0, 0}, cosRadius: -1}

	assert.True(t, geodesic.BoundaryIntersects(&straddling, &scap))
	assert.False(t, geodesic.BoundaryIntersects(&contained, &scap))
}

func TestGeodesicCapIntersects(t *testing.T) {
	geodesic, err := NewGeodesicPolygon(squarePolygon())
	require.NoError(t, err)

	// a cap around the polygon center overlaps
	var center Vec3d
	origin := LatLng{0, 0}
	_geoToVec3d(&origin, &center)
	near := SphereCap{center: center, cosRadius: 0.99}
	assert.True(t, geodesic.CapIntersects(&near))

	// a cap on the far side of the sphere does not
	var farCenter Vec3d
	antipode := LatLng{0, M_PI}
	_geoToVec3d(&antipode, &farCenter)
	far := SphereCap{center: farCenter, cosRadius: 0.999}
	assert.False(t, geodesic.CapIntersects(&far))
}

func TestAABBArcExtrema(t *testing.T) {
	// an equatorial arc through lng 0 bulges out to x = 1, beyond the x
	// range of its endpoints
	var a, b Vec3d
	p := LatLng{0, -M_PI_2 + 0.2}
	_geoToVec3d(&p, &a)
	p = LatLng{0, M_PI_2 - 0.2}
	_geoToVec3d(&p, &b)

	var box AABB
	aabbEmptyInverted(&box)
	aabbUpdateWithVec3d(&box, &a)
	aabbUpdateWithVec3d(&box, &b)
	withoutExtrema := box.max.x

	cross := _vec3Cross(&a, &b)
	aabbUpdateWithArcExtrema(&box, &a, &b, &cross)
	assert.Greater(t, box.max.x, withoutExtrema)
	assert.InDelta(t, 1.0, box.max.x, 1e-12)
}
