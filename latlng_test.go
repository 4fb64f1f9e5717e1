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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDegsRadsRoundTrip(t *testing.T) {
	for _, degs := range []float64{-180, -74.044444, 0, 40.689167, 90, 180} {
		assert.InDelta(t, degs, RadsToDegs(DegsToRads(degs)), 1e-12)
	}
	assert.InDelta(t, M_PI, DegsToRads(180), 1e-12)
}

func TestGreatCircleDistanceSanity(t *testing.T) {
	// distance between the centers of two cells 2340 grid steps apart
	a, err := StringToH3("8f2830828052d25")
	require.NoError(t, err)
	b, err := StringToH3("8f283082a30e623")
	require.NoError(t, err)

	centerA, err := CellToLatLng(a)
	require.NoError(t, err)
	centerB, err := CellToLatLng(b)
	require.NoError(t, err)

	distKm := GreatCircleDistanceKm(&centerA, &centerB)
	assert.InDelta(t, 2.256853, distKm, 1e-4)

	distM := GreatCircleDistanceM(&centerA, &centerB)
	assert.InDelta(t, distKm*1000, distM, 1e-7)

	// identity and symmetry
	assert.Equal(t, 0.0, GreatCircleDistanceRads(&centerA, &centerA))
	assert.InDelta(t, GreatCircleDistanceRads(&centerA, &centerB),
		GreatCircleDistanceRads(&centerB, &centerA), 1e-15)
}

func TestConstrainLng(t *testing.T) {
	assert.InDelta(t, 0.0, constrainLng(M_2PI), 1e-15)
	assert.InDelta(t, -M_PI+0.1, constrainLng(M_PI+0.1), 1e-12)
	assert.Equal(t, 1.0, constrainLng(1.0))
}

func TestPosAngleRads(t *testing.T) {
	assert.InDelta(t, M_PI, _posAngleRads(-M_PI), 1e-15)
	assert.Equal(t, 1.0, _posAngleRads(1.0))
	assert.InDelta(t, 0.5, _posAngleRads(M_2PI+0.5), 1e-12)
}

func TestGeoAzimuthDistance(t *testing.T) {
	var p1 LatLng
	setGeoDegs(&p1, 10, 20)

	// walking a distance along an azimuth and measuring back agrees
	for _, az := range []float64{0.0, 0.8, 2.0, 4.5} {
		var p2 LatLng
		_geoAzDistanceRads(&p1, az, 0.05, &p2)
		assert.InDelta(t, 0.05, GreatCircleDistanceRads(&p1, &p2), 1e-9)
	}

	// zero distance returns the same point
	var same LatLng
	_geoAzDistanceRads(&p1, 1.0, 0, &same)
	assert.Equal(t, p1, same)
}

func TestTriangleArea(t *testing.T) {
	// an octant of the sphere has area pi/2
	a := LatLng{0, 0}
	b := LatLng{0, M_PI_2}
	c := LatLng{M_PI_2, 0}
	assert.InDelta(t, M_PI_2, triangleArea(&a, &b, &c), 1e-9)
}

func TestGeoLoopArea(t *testing.T) {
	// CCW octant loop: area pi/2
	ccw := GeoLoop{{0, 0}, {0, M_PI_2}, {M_PI_2, 0}}
	assert.InDelta(t, M_PI_2, geoLoopAreaRads2(ccw), 1e-9)

	// the reversed loop encloses the complement
	cw := GeoLoop{{M_PI_2, 0}, {0, M_PI_2}, {0, 0}}
	assert.InDelta(t, 4*M_PI-M_PI_2, geoLoopAreaRads2(cw), 1e-9)
}

func TestGetNumCells(t *testing.T) {
	count, err := GetNumCells(0)
	require.NoError(t, err)
	assert.Equal(t, int64(122), count)

	count, err = GetNumCells(1)
	require.NoError(t, err)
	assert.Equal(t, int64(842), count)

	count, err = GetNumCells(15)
	require.NoError(t, err)
	assert.Equal(t, int64(569707381193162), count)

	_, err = GetNumCells(-1)
	assert.ErrorIs(t, err, ErrResDomain)
}

func TestMetricTablesMonotonic(t *testing.T) {
	for res := 1; res <= MAX_H3_RES; res++ {
		coarser, err := GetHexagonAreaAvgKm2(res - 1)
		require.NoError(t, err)
		finer, err := GetHexagonAreaAvgKm2(res)
		require.NoError(t, err)
		assert.Greater(t, coarser, finer)

		coarserLen, err := GetHexagonEdgeLengthAvgM(res - 1)
		require.NoError(t, err)
		finerLen, err := GetHexagonEdgeLengthAvgM(res)
		require.NoError(t, err)
		assert.Greater(t, coarserLen, finerLen)
	}
}

func TestGeoAlmostEqual(t *testing.T) {
	a := LatLng{1, 2}
	b := LatLng{1 + EPSILON_RAD/2, 2}
	assert.True(t, geoAlmostEqual(&a, &b))

	c := LatLng{1 + math.Pi/4, 2}
	assert.False(t, geoAlmostEqual(&a, &c))
}
