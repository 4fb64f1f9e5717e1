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

import "sort"

// After rough search, 10 seems to minimize compute time for large sets.
const hashTableMultiplier = 10

// nilArc marks an empty hash bucket or unset arc link.
const nilArc = int32(-1)

// arc is one directed cell edge in the arc set. Arcs live in a single
// contiguous slice; prev/next and the union-find parent are indexes into
// that slice.
type arc struct {
	id H3Index

	isVisited bool
	isRemoved bool

	// doubly-arced list of edges in the loop
	next int32
	prev int32

	// union-find forest for connected-component tracking
	// https://en.wikipedia.org/wiki/Disjoint-set_data_structure
	parent int32
	rank   int64
}

// arcSet is a flat arena of arcs plus open-addressed hash buckets keyed
// by directed-edge index.
type arcSet struct {
	arcs []arc

	// hash buckets for fast edge/arc lookup; nilArc marks empty
	buckets []int32
}

type sortableLoop struct {
	root H3Index
	area float64

	loop GeoLoop
}

type sortablePoly struct {
	outerArea float64
	poly      GeoPolygon
}

func validateCellSet(cells []H3Index) error {
	// Check that all cells are valid and have the same resolution
	res := GetResolution(cells[0])
	for _, c := range cells {
		if !IsValidCell(c) {
			return ErrCellInvalid
		}
		if GetResolution(c) != res {
			return ErrResMismatch
		}
	}

	// Check for duplicate cells by sorting a copy and looking for
	// adjacent duplicates
	if len(cells) >= 2 {
		cellsCopy := make([]H3Index, len(cells))
		copy(cellsCopy, cells)
		sort.Slice(cellsCopy, func(i, j int) bool {
			return cellsCopy[i] < cellsCopy[j]
		})
		for i := 1; i < len(cellsCopy); i++ {
			if cellsCopy[i] == cellsCopy[i-1] {
				return ErrDuplicateInput
			}
		}
	}

	return nil
}

// hashEdge hashes a directed edge index to a bucket index.
//
// Uses a mixing function based on SplitMix64 to ensure good distribution
// of hash values.
//
// Reference: Steele et al., "Fast splittable pseudorandom number
// generators" OOPSLA 2014. https://doi.org/10.1145/2660193.2660195
func hashEdge(x H3Index, n uint64) uint64 {
	v := uint64(x)
	v ^= v >> 30
	v *= 0xbf58476d1ce4e5b9
	v ^= v >> 27
	v *= 0x94d049bb133111eb
	v ^= v >> 31

	return v % n
}

func getNumEdges(cells []H3Index) int64 {
	numEdges := 6 * int64(len(cells))

	for _, c := range cells {
		if IsPentagon(c) {
			numEdges--
		}
	}
	return numEdges
}

// idxh and idxp reorder the output of OriginToDirectedEdges so that
// prev/next point to neighboring edges that share a vertex. Edges and
// vertexes follow the right-hand rule as a result.
var idxh = [6]int32{0, 4, 3, 5, 1, 2}
var idxp = [5]int32{0, 1, 3, 2, 4}

// cellToEdgeArcs fills in the edge arcs for a single cell at arcs[base:]:
//
//   - sets prev/next arcs in the arced loop, in CCW order
//   - sets parent and rank for union-find
//   - returns the number of edges written
func cellToEdgeArcs(h H3Index, arcs []arc, base int32) int32 {
	allEdges := OriginToDirectedEdges(h)

	var numEdges int32
	var idx []int32
	var edges []H3Index

	// the first directed edge of a pentagon is H3_NULL
	if allEdges[0] == H3_NULL {
		numEdges = 5
		idx = idxp[:]
		edges = allEdges[1:]
	} else {
		numEdges = 6
		idx = idxh[:]
		edges = allEdges[:]
	}

	for i := int32(0); i < numEdges; i++ {
		// arcs stay in the same order as the output of
		// OriginToDirectedEdges
		arcs[base+i].id = edges[i]
		arcs[base+i].isRemoved = false
		arcs[base+i].isVisited = false

		// initialize the union-find datastructure
		arcs[base+i].parent = base
		arcs[base+i].rank = 1

		// connect so prev/next point to neighboring edges that share a
		// vertex
		cur := idx[i]
		prev := idx[(i-1+numEdges)%numEdges]
		next := idx[(i+1)%numEdges]
		arcs[base+cur].prev = base + prev
		arcs[base+cur].next = base + next
	}

	return numEdges
}

func createArcSet(cells []H3Index) arcSet {
	numArcs := getNumEdges(cells)
	numBuckets := numArcs * hashTableMultiplier

	aset := arcSet{
		arcs:    make([]arc, numArcs),
		buckets: make([]int32, numBuckets),
	}
	for i := range aset.buckets {
		aset.buckets[i] = nilArc
	}

	var j int32
	for _, c := range cells {
		j += cellToEdgeArcs(c, aset.arcs, j)
	}

	for i := range aset.arcs {
		// hash edge to initial bucket
		b := hashEdge(aset.arcs[i].id, uint64(numBuckets))

		// linear probe to find the next open bucket, wrapping around if
		// needed
		for aset.buckets[b] != nilArc {
			b = (b + 1) % uint64(numBuckets)
		}
		aset.buckets[b] = int32(i)
	}

	return aset
}

// findArc looks up the arc with the given directed-edge index, returning
// nilArc if not present.
func (aset *arcSet) findArc(e H3Index) int32 {
	b := hashEdge(e, uint64(len(aset.buckets)))

	for aset.buckets[b] != nilArc && aset.arcs[aset.buckets[b]].id != e {
		b = (b + 1) % uint64(len(aset.buckets))
	}

	return aset.buckets[b]
}

// getRoot finds the union-find root of an arc, compressing paths along
// the way.
func (aset *arcSet) getRoot(a int32) int32 {
	root := a
	for aset.arcs[root].parent != root {
		root = aset.arcs[root].parent
	}
	// path compression
	for aset.arcs[a].parent != root {
		next := aset.arcs[a].parent
		aset.arcs[a].parent = root
		a = next
	}
	return root
}

func (aset *arcSet) unionArcs(a, b int32) {
	a = aset.getRoot(a)
	b = aset.getRoot(b)

	if aset.arcs[a].rank < aset.arcs[b].rank {
		// swap so `a` has the bigger rank
		a, b = b, a
	}

	if a != b {
		// `a` has the bigger rank
		aset.arcs[a].rank += aset.arcs[b].rank
		aset.arcs[b].parent = a
	}
}

// cancelArcPairs cancels out pairs of opposite directed edges in the arc
// set, marking them as removed. The doubly-arced loop list is updated to
// maintain valid loops, and the connected components of the edge pairs
// are merged; each connected component denotes a separate polygon (outer
// loop and holes).
func (aset *arcSet) cancelArcPairs() error {
	for i := range aset.arcs {
		a := int32(i)

		if aset.arcs[a].isRemoved {
			continue
		}

		reversedEdge, err := ReverseDirectedEdge(aset.arcs[a].id)
		if err != nil {
			return err
		}
		b := aset.findArc(reversedEdge)

		if b == nilArc {
			continue
		}

		// Two loops overlap at edge a, and its reversed edge b. Remove
		// the two edges, and merge the loops to maintain valid loops.
		// The two loops might be the same loop.

		// mark both as removed
		aset.arcs[a].isRemoved = true
		aset.arcs[b].isRemoved = true

		// stitch together the loops at the removal site
		aNext := aset.arcs[a].next
		aPrev := aset.arcs[a].prev
		bNext := aset.arcs[b].next
		bPrev := aset.arcs[b].prev
		aset.arcs[aNext].prev = bPrev
		aset.arcs[aPrev].next = bNext
		aset.arcs[bNext].prev = aPrev
		aset.arcs[bPrev].next = aNext

		// update parent to merge into a single connected component
		aset.unionArcs(a, b)
	}
	return nil
}

func (aset *arcSet) resetVisited() {
	for i := range aset.arcs {
		aset.arcs[i].isVisited = false
	}
}

func (aset *arcSet) countLoops() int {
	aset.resetVisited()
	numLoops := 0

	for i := range aset.arcs {
		a := int32(i)
		if !aset.arcs[a].isVisited && !aset.arcs[a].isRemoved {
			numLoops++
			start := aset.arcs[a].id

			for {
				aset.arcs[a].isVisited = true
				a = aset.arcs[a].next
				if aset.arcs[a].id == start {
					break
				}
			}
		}
	}

	return numLoops
}

// createSortableLoop extracts the vertex polyline and area of the loop
// containing the given arc, marking its arcs as visited. All but the
// last vertex of each arc's edge boundary are taken to avoid duplicating
// shared endpoints.
func (aset *arcSet) createSortableLoop(start int32) (sortableLoop, error) {
	var verts GeoLoop

	a := start
	startID := aset.arcs[start].id
	for {
		gb, err := DirectedEdgeToBoundary(aset.arcs[a].id)
		if err != nil {
			return sortableLoop{}, err
		}

		for i := 0; i < gb.NumVerts-1; i++ {
			verts = append(verts, gb.Verts[i])
		}
		aset.arcs[a].isVisited = true
		a = aset.arcs[a].next
		if aset.arcs[a].id == startID {
			break
		}
	}

	sloop := sortableLoop{
		root: aset.arcs[aset.getRoot(start)].id,
		loop: verts,
	}
	sloop.area = geoLoopAreaRads2(sloop.loop)

	return sloop, nil
}

func (aset *arcSet) createSortableLoops() ([]sortableLoop, error) {
	numLoops := aset.countLoops()
	aset.resetVisited()

	sloops := make([]sortableLoop, 0, numLoops)
	for i := range aset.arcs {
		if !aset.arcs[i].isVisited && !aset.arcs[i].isRemoved {
			sloop, err := aset.createSortableLoop(int32(i))
			if err != nil {
				return nil, err
			}
			sloops = append(sloops, sloop)
		}
	}

	// The sort makes all loops of a polygon (outer loop and holes)
	// contiguous in memory, with the outer loop first: a hole loop
	// encloses the complement of the hole on its left, which is always
	// larger than the region the outer loop encloses.
	sort.SliceStable(sloops, func(i, j int) bool {
		if sloops[i].root != sloops[j].root {
			return sloops[i].root < sloops[j].root
		}
		return sloops[i].area < sloops[j].area
	})

	return sloops, nil
}

func countPolys(sloops []sortableLoop) int {
	numPolys := 0

	cur := H3_NULL
	for i := range sloops {
		if sloops[i].root != cur {
			numPolys++
			cur = sloops[i].root
		}
	}

	return numPolys
}

func createSortablePoly(sloops []sortableLoop) sortablePoly {
	poly := GeoPolygon{
		GeoLoop: sloops[0].loop,
	}
	if len(sloops) > 1 {
		poly.Holes = make([]GeoLoop, len(sloops)-1)
		for k := range poly.Holes {
			poly.Holes[k] = sloops[k+1].loop
		}
	}

	return sortablePoly{
		outerArea: sloops[0].area,
		poly:      poly,
	}
}

// createGlobeMultiPolygon returns the multipolygon covering the entire
// globe: a single polygon whose outer loop is empty.
func createGlobeMultiPolygon() GeoMultiPolygon {
	return GeoMultiPolygon{Polygons: []GeoPolygon{{}}}
}

func createMultiPolygon(sloops []sortableLoop) GeoMultiPolygon {
	if len(sloops) == 0 {
		// every arc cancelled: the cells cover the whole sphere
		return createGlobeMultiPolygon()
	}

	numPolys := countPolys(sloops)
	spolys := make([]sortablePoly, 0, numPolys)

	// i is the index of the first loop in a polygon (the outer loop);
	// j is one past the last loop in that polygon (the last hole + 1)
	i := 0
	for j := 0; j <= len(sloops); j++ {
		if j == len(sloops) || sloops[i].root != sloops[j].root {
			// We've reached the end of the loops in the polygon, so now
			// construct a polygon from that run of loops.
			spolys = append(spolys, createSortablePoly(sloops[i:j]))
			i = j
		}
	}

	// Sort polygons by area of the outer loop, decreasing
	sort.SliceStable(spolys, func(a, b int) bool {
		return spolys[a].outerArea > spolys[b].outerArea
	})

	mpoly := GeoMultiPolygon{
		Polygons: make([]GeoPolygon, len(spolys)),
	}
	for k := range spolys {
		mpoly.Polygons[k] = spolys[k].poly
	}

	return mpoly
}

// CellsToMultiPolygon creates a GeoMultiPolygon describing the outline
// or outlines of a set of cells. The cells must be valid, at the same
// resolution, and distinct.
//
// Polygons follow the right hand rule, with the outer loop oriented
// counter-clockwise and the inner loops oriented clockwise. Polygons in
// the result are ordered by decreasing area of the outer loop.
//
// Note that for polygons with multiple loops (one outer loop + at least
// one hole), *any* loop can serve as the outer loop and still produce
// the *same* valid polygon. The convention used is to choose as the
// outer loop the one bounding the largest region: a polygon for the land
// within a state with a large lake has the state's boundary as the outer
// loop, instead of the lake's boundary.
func CellsToMultiPolygon(cells []H3Index) (GeoMultiPolygon, error) {
	if len(cells) == 0 {
		return GeoMultiPolygon{}, nil
	}

	if err := validateCellSet(cells); err != nil {
		return GeoMultiPolygon{}, err
	}

	// The arc set initializes with separate doubly-linked loops for each
	// cell, each in their own connected component
	aset := createArcSet(cells)

	// Cancel out pairs of edges, updating the doubly-linked loops and
	// merging their connected components
	if err := aset.cancelArcPairs(); err != nil {
		return GeoMultiPolygon{}, err
	}

	/*
		Extract all loops and sort them by:
		  1) their connected component, and then by
		  2) the loop area.
		This makes the loops for each polygon contiguous in memory, and
		within each polygon the sorting makes the loop bounding the
		largest region come first, which is what we take to be the outer
		loop.
	*/
	sloops, err := aset.createSortableLoops()
	if err != nil {
		return GeoMultiPolygon{}, err
	}

	// Extract polygons, since loops are contiguous in memory.
	// Polygons are sorted by outer loop area, decreasing.
	return createMultiPolygon(sloops), nil
}
