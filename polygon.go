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

import "math"

// GeoLoop is a loop of geographic coordinates. A closed loop is implied;
// the first vertex is not repeated at the end.
type GeoLoop []LatLng

// GeoPolygon is an outer loop with zero or more hole loops. Loop
// orientation is not prescribed; all spatial predicates are
// orientation-independent.
type GeoPolygon struct {
	GeoLoop GeoLoop
	Holes   []GeoLoop
}

// GeoMultiPolygon is a set of polygons.
type GeoMultiPolygon struct {
	Polygons []GeoPolygon
}

// _signedTriangleAreaRads2 computes the signed spherical excess of the
// triangle with the given unit-vector vertices, positive for
// counter-clockwise winding.
//
// tan(E/2) = a . (b x c) / (1 + a.b + b.c + c.a)
func _signedTriangleAreaRads2(a, b, c *Vec3d) float64 {
	bc := _vec3Cross(b, c)
	num := _vec3Dot(a, &bc)
	den := 1 + _vec3Dot(a, b) + _vec3Dot(b, c) + _vec3Dot(c, a)
	return 2 * math.Atan2(num, den)
}

// geoLoopAreaRads2 computes the area in radians^2 of the region enclosed
// on the left of travel of the loop, in [0, 4*pi). A counter-clockwise
// loop yields the area it bounds; a clockwise loop yields the
// complementary area.
func geoLoopAreaRads2(loop GeoLoop) float64 {
	if len(loop) < 3 {
		return 0
	}

	verts := make([]Vec3d, len(loop))
	for i := range loop {
		_geoToVec3d(&loop[i], &verts[i])
	}

	// fan triangulation from the first vertex
	area := 0.0
	for i := 1; i < len(verts)-1; i++ {
		area += _signedTriangleAreaRads2(&verts[0], &verts[i], &verts[i+1])
	}

	if area < 0 {
		area += 4 * M_PI
	}
	return area
}
