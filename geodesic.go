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

// AABB is an axis-aligned bounding box in 3D cartesian space,
// conservatively enclosing a region of the unit sphere.
type AABB struct {
	min Vec3d
	max Vec3d
}

// SphereCap is a spherical cap described by its center direction and the
// cosine of its angular radius.
type SphereCap struct {
	center    Vec3d
	cosRadius float64
}

// GeodesicEdge is one edge of a geodesic loop, anchored at vert, with
// the precomputed cross and dot products of its endpoints and a
// conservative bounding box of the arc.
type GeodesicEdge struct {
	vert      Vec3d
	edgeCross Vec3d
	edgeDot   float64
	aabb      AABB
}

// GeodesicLoop is a loop of unit vectors with precomputed edge data and
// the normalized centroid of its vertices.
type GeodesicLoop struct {
	edges    []GeodesicEdge
	centroid Vec3d
}

// GeodesicPolygon is an opaque handle for a polygon converted to 3D
// unit-vector form, supporting repeated spatial predicate queries.
// Lifecycle is create, query many times, discard.
type GeodesicPolygon struct {
	geoloop GeodesicLoop
	holes   []GeodesicLoop
	aabb    AABB
}

// GeodesicCellBoundary is a cell boundary converted to unit vectors for
// intersection queries.
type GeodesicCellBoundary struct {
	numVerts int
	verts    [MAX_CELL_BNDRY_VERTS]Vec3d
}

func aabbEmptyInverted(box *AABB) {
	box.min = Vec3d{math.MaxFloat64, math.MaxFloat64, math.MaxFloat64}
	box.max = Vec3d{-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64}
}

func aabbUpdateWithVec3d(box *AABB, v *Vec3d) {
	box.min.x = math.Min(box.min.x, v.x)
	box.min.y = math.Min(box.min.y, v.y)
	box.min.z = math.Min(box.min.z, v.z)
	box.max.x = math.Max(box.max.x, v.x)
	box.max.y = math.Max(box.max.y, v.y)
	box.max.z = math.Max(box.max.z, v.z)
}

// _arcContainsPoint reports whether the unit vector w lies on the minor
// arc from a to b, whose great-circle normal is n.
func _arcContainsPoint(a, b, n, w *Vec3d) bool {
	c1 := _vec3Cross(a, w)
	c2 := _vec3Cross(w, b)
	return _vec3Dot(&c1, n) >= 0 && _vec3Dot(&c2, n) >= 0
}

// aabbUpdateWithArcExtrema expands the box with the axis extrema of the
// great-circle arc from v1 to v2. The extremum along each cardinal axis
// is the projection of that axis onto the arc's great-circle plane; it
// only contributes when it falls within the arc segment.
func aabbUpdateWithArcExtrema(box *AABB, v1, v2, cross *Vec3d) {
	n := *cross
	if _vec3MagSq(&n) < EPSILON*EPSILON {
		return
	}
	_vec3Normalize(&n)

	axes := [3]Vec3d{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for i := range axes {
		u := &axes[i]
		d := _vec3Dot(u, &n)
		p := Vec3d{u.x - d*n.x, u.y - d*n.y, u.z - d*n.z}
		if _vec3MagSq(&p) < EPSILON*EPSILON {
			continue
		}
		_vec3Normalize(&p)
		neg := Vec3d{-p.x, -p.y, -p.z}
		if _arcContainsPoint(v1, v2, cross, &p) {
			aabbUpdateWithVec3d(box, &p)
		}
		if _arcContainsPoint(v1, v2, cross, &neg) {
			aabbUpdateWithVec3d(box, &neg)
		}
	}
}

// _geodesicEdgesCross determines whether two geodesic edges intersect on
// the unit sphere.
//
// The test classifies edge endpoints against each other's great-circle
// planes to cull obvious misses, handles near-parallel arcs with a 1-D
// projection fallback, and otherwise checks that the great-circle
// intersection lies between both segments.
func _geodesicEdgesCross(a1, a2, b1, b2, normalB *Vec3d) bool {
	normalA := _vec3Cross(a1, a2)

	b1Side := _vec3Dot(&normalA, b1)
	b2Side := _vec3Dot(&normalA, b2)
	a1Side := _vec3Dot(normalB, a1)
	a2Side := _vec3Dot(normalB, a2)

	if (b1Side*b2Side > 0) || (a1Side*a2Side > 0) {
		return false
	}

	intersectionLine := _vec3Cross(&normalA, normalB)

	if _vec3MagSq(&intersectionLine) < EPSILON*EPSILON {
		refDir := Vec3d{a2.x - a1.x, a2.y - a1.y, a2.z - a1.z}
		if _vec3MagSq(&refDir) < EPSILON*EPSILON {
			return false
		}

		projA1 := _vec3Dot(a1, &refDir)
		projA2 := _vec3Dot(a2, &refDir)
		projB1 := _vec3Dot(b1, &refDir)
		projB2 := _vec3Dot(b2, &refDir)

		if projA1 > projA2 {
			projA1, projA2 = projA2, projA1
		}
		if projB1 > projB2 {
			projB1, projB2 = projB2, projB1
		}

		return (projA1 <= projB2) && (projB1 <= projA2)
	}

	midASum := Vec3d{a1.x + a2.x, a1.y + a2.y, a1.z + a2.z}
	midBSum := Vec3d{b1.x + b2.x, b1.y + b2.y, b1.z + b2.z}

	if _vec3MagSq(&midASum) < EPSILON*EPSILON ||
		_vec3MagSq(&midBSum) < EPSILON*EPSILON {
		return true
	}

	dotA := _vec3Dot(&intersectionLine, &midASum)
	dotB := _vec3Dot(&intersectionLine, &midBSum)

	return dotA*dotB >= -EPSILON
}

// _geodesicLoopContainsPoint tests whether a point lies inside a
// geodesic loop using spherical winding.
//
// The algorithm walks the loop once, accumulating the signed angle
// subtended by consecutive vertices as seen from the query point. When
// the total winding exceeds pi in magnitude the point is inside;
// otherwise it is outside.
func _geodesicLoopContainsPoint(loop *GeodesicLoop, pointVec *Vec3d) bool {
	// Early rejection: if the point is clearly on the opposite
	// hemisphere from the polygon's centroid, it cannot be inside. This
	// optimization assumes the polygon does not span more than a
	// hemisphere. A small negative threshold avoids rejecting points
	// near the hemisphere boundary due to floating-point imprecision.
	if _vec3Dot(&loop.centroid, pointVec) < -1e-10 {
		return false
	}

	totalAngle := 0.0
	dotPV1 := _vec3Dot(pointVec, &loop.edges[0].vert)

	for i := 0; i < len(loop.edges); i++ {
		vert2 := &loop.edges[(i+1)%len(loop.edges)].vert
		dotPV2 := _vec3Dot(pointVec, vert2)

		y := _vec3Dot(pointVec, &loop.edges[i].edgeCross)
		x := loop.edges[i].edgeDot - dotPV1*dotPV2

		totalAngle += math.Atan2(y, x)

		dotPV1 = dotPV2
	}

	return math.Abs(totalAngle) > M_PI
}

// _geodesicSphereCapOverlapsAABB quickly rejects a sphere cap and AABB
// that cannot intersect. Returns false ONLY when intersection is
// definitively impossible.
func _geodesicSphereCapOverlapsAABB(scap *SphereCap, aabb *AABB) bool {
	// Cos comparisons require more accuracy - use a bigger epsilon
	const epsilon = 1e-8

	// 1. Far point test - checks if the farthest AABB corner falls
	// outside the cap
	var farPoint Vec3d
	if scap.center.x >= 0 {
		farPoint.x = aabb.max.x
	} else {
		farPoint.x = aabb.min.x
	}
	if scap.center.y >= 0 {
		farPoint.y = aabb.max.y
	} else {
		farPoint.y = aabb.min.y
	}
	if scap.center.z >= 0 {
		farPoint.z = aabb.max.z
	} else {
		farPoint.z = aabb.min.z
	}

	farDot := _vec3Dot(&farPoint, &scap.center)
	if farDot < scap.cosRadius-epsilon {
		return false
	}

	// 2. Near origin test - checks if the closest AABB point is outside
	// the unit sphere
	nearOrigin := Vec3d{
		x: math.Max(aabb.min.x, math.Min(aabb.max.x, 0.0)),
		y: math.Max(aabb.min.y, math.Min(aabb.max.y, 0.0)),
		z: math.Max(aabb.min.z, math.Min(aabb.max.z, 0.0)),
	}

	distSq := _vec3Dot(&nearOrigin, &nearOrigin)
	return distSq <= 1.0+epsilon
}

func _geodesicLoopToAABB(loop *GeodesicLoop, out *AABB) {
	aabbEmptyInverted(out)

	for i := range loop.edges {
		aabbUpdateWithVec3d(out, &loop.edges[i].vert)

		aabbUpdateWithArcExtrema(out, &loop.edges[i].vert,
			&loop.edges[(i+1)%len(loop.edges)].vert,
			&loop.edges[i].edgeCross)
	}

	// Probe cardinal axes and expand the box if needed
	testVecs := [6]Vec3d{
		{1, 0, 0}, {-1, 0, 0}, {0, 1, 0},
		{0, -1, 0}, {0, 0, 1}, {0, 0, -1},
	}
	for i := range testVecs {
		if _geodesicLoopContainsPoint(loop, &testVecs[i]) {
			aabbUpdateWithVec3d(out, &testVecs[i])
		}
	}
}

func _geodesicLoopFromGeo(loop GeoLoop, out *GeodesicLoop) error {
	if len(loop) == 0 {
		return ErrDomain
	}

	n := len(loop)
	edges := make([]GeodesicEdge, n)

	out.edges = edges
	out.centroid = Vec3d{}

	for i := 0; i < n; i++ {
		_geoToVec3d(&loop[i], &edges[i].vert)
	}

	for i := 0; i < n; i++ {
		v1 := &edges[i].vert
		v2 := &edges[(i+1)%n].vert

		out.centroid.x += v1.x
		out.centroid.y += v1.y
		out.centroid.z += v1.z

		edges[i].edgeCross = _vec3Cross(v1, v2)
		edges[i].edgeDot = _vec3Dot(v1, v2)

		box := &edges[i].aabb
		aabbEmptyInverted(box)
		aabbUpdateWithVec3d(box, v1)
		aabbUpdateWithVec3d(box, v2)
		aabbUpdateWithArcExtrema(box, v1, v2, &edges[i].edgeCross)
	}

	// Normalize the centroid to a unit vector. If the vertices nearly
	// cancel out (e.g. a near-hemispheric polygon), the centroid stays
	// near zero and the hemisphere early-exit in
	// _geodesicLoopContainsPoint becomes a no-op, falling through to the
	// full winding-number algorithm.
	_vec3Normalize(&out.centroid)

	return nil
}

// NewGeodesicPolygon converts a polygon to 3D unit-vector form with
// precomputed per-edge data, suitable for repeated spatial predicate
// queries.
func NewGeodesicPolygon(polygon *GeoPolygon) (*GeodesicPolygon, error) {
	if polygon == nil || len(polygon.GeoLoop) == 0 {
		return nil, ErrDomain
	}

	result := &GeodesicPolygon{}

	if err := _geodesicLoopFromGeo(polygon.GeoLoop, &result.geoloop); err != nil {
		return nil, err
	}

	if len(polygon.Holes) > 0 {
		result.holes = make([]GeodesicLoop, len(polygon.Holes))
		for i, hole := range polygon.Holes {
			if len(hole) == 0 {
				return nil, ErrDomain
			}
			if err := _geodesicLoopFromGeo(hole, &result.holes[i]); err != nil {
				return nil, err
			}
		}
	}

	_geodesicLoopToAABB(&result.geoloop, &result.aabb)

	return result, nil
}

// CapIntersects reports whether the polygon's bounding box may intersect
// the given spherical cap. A false result is definitive; a true result
// is conservative.
func (p *GeodesicPolygon) CapIntersects(scap *SphereCap) bool {
	if p == nil || scap == nil {
		return false
	}

	return _geodesicSphereCapOverlapsAABB(scap, &p.aabb)
}

// BoundaryIntersects checks whether the polygon boundary intersects a
// cell boundary.
//
// For each polygon loop (outer shell and holes) arcs whose bounding
// boxes do not overlap the query cap are pruned. Remaining arcs are
// tested pairwise against the cell boundary segments.
func (p *GeodesicPolygon) BoundaryIntersects(boundary *GeodesicCellBoundary, scap *SphereCap) bool {
	if p == nil || boundary == nil || scap == nil {
		return false
	}

	loopCount := 1 + len(p.holes)

	for loopIdx := 0; loopIdx < loopCount; loopIdx++ {
		loop := &p.geoloop
		if loopIdx > 0 {
			loop = &p.holes[loopIdx-1]
		}

		for i := range loop.edges {
			if !_geodesicSphereCapOverlapsAABB(scap, &loop.edges[i].aabb) {
				continue
			}

			nextI := (i + 1) % len(loop.edges)
			for j := 0; j < boundary.numVerts; j++ {
				nextJ := (j + 1) % boundary.numVerts
				if _geodesicEdgesCross(
					&boundary.verts[j], &boundary.verts[nextJ],
					&loop.edges[i].vert, &loop.edges[nextI].vert,
					&loop.edges[i].edgeCross) {
					return true
				}
			}
		}
	}

	return false
}

// ContainsPoint evaluates whether a 3D unit vector lies inside the
// polygon, holes excluded.
//
// The outer loop is tested for containment first; if it fails the point
// is rejected immediately. When the point is inside the shell it must
// additionally not land inside any hole loop.
func (p *GeodesicPolygon) ContainsPoint(point *Vec3d) bool {
	if p == nil || point == nil {
		return false
	}

	if !_geodesicLoopContainsPoint(&p.geoloop, point) {
		return false
	}

	for i := range p.holes {
		if _geodesicLoopContainsPoint(&p.holes[i], point) {
			return false
		}
	}

	return true
}

// ContainsLatLng evaluates whether a geographic coordinate lies inside
// the polygon, holes excluded.
func (p *GeodesicPolygon) ContainsLatLng(coord *LatLng) bool {
	var v Vec3d
	_geoToVec3d(coord, &v)
	return p.ContainsPoint(&v)
}
