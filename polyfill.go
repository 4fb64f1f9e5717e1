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

// CHILD_SCALE_FACTOR is the factor by which to scale a cell bounding box
// to include all children. This was determined empirically by finding
// the smallest factor that passed exhaustive tests.
const CHILD_SCALE_FACTOR = 1.4

// maxEdgeLengthRads is the max cell edge length, in radians, for each
// resolution. This was computed by taking the max exact edge length for
// cells at the center of each base cell at that resolution.
var maxEdgeLengthRads = [MAX_H3_RES + 1]float64{
	0.21577206265130, 0.08308767068495, 0.03148970436439, 0.01190662871439,
	0.00450053330908, 0.00170105523619, 0.00064293917678, 0.00024300820659,
	0.00009184847087, 0.00003471545901, 0.00001312121017, 0.00000495935129,
	0.00000187445860, 0.00000070847876, 0.00000026777980, 0.00000010121125,
}

// northPoleCells are the cells that contain the north pole, by res.
var northPoleCells = [MAX_H3_RES + 1]H3Index{
	0x8001fffffffffff, 0x81033ffffffffff, 0x820327fffffffff, 0x830326fffffffff,
	0x8403263ffffffff, 0x85032623fffffff, 0x860326237ffffff, 0x870326233ffffff,
	0x880326233bfffff, 0x890326233abffff, 0x8a0326233ab7fff, 0x8b0326233ab0fff,
	0x8c0326233ab03ff, 0x8d0326233ab03bf, 0x8e0326233ab039f, 0x8f0326233ab0399,
}

// southPoleCells are the cells that contain the south pole, by res.
var southPoleCells = [MAX_H3_RES + 1]H3Index{
	0x80f3fffffffffff, 0x81f2bffffffffff, 0x82f297fffffffff, 0x83f293fffffffff,
	0x84f2939ffffffff, 0x85f29383fffffff, 0x86f29380fffffff, 0x87f29380effffff,
	0x88f29380e1fffff, 0x89f29380e0fffff, 0x8af29380e0d7fff, 0x8bf29380e0d0fff,
	0x8cf29380e0d0dff, 0x8df29380e0d0cff, 0x8ef29380e0d0cc7, 0x8ff29380e0d0cc4,
}

// cellToBBox returns the bounding box of a cell. If coverChildren is
// true, the bbox is guaranteed to contain the cell's children at any
// finer resolution. No guarantee is provided as to the level of
// accuracy, and the bounding box may have a significant margin of error.
func cellToBBox(cell H3Index, out *BBox, coverChildren bool) error {
	res := cell.getResolution()

	if res == 0 {
		boundary, err := CellToBoundary(cell)
		if err != nil {
			return err
		}
		loop := make(GeoLoop, boundary.NumVerts)
		copy(loop, boundary.Verts[:boundary.NumVerts])
		bboxFromGeoLoop(loop, out)
	} else {
		center, err := CellToLatLng(cell)
		if err != nil {
			return err
		}
		lngRatio := 1 / math.Cos(center.Lat)
		out.north = center.Lat + maxEdgeLengthRads[res]
		out.south = center.Lat - maxEdgeLengthRads[res]
		out.east = center.Lng + maxEdgeLengthRads[res]*lngRatio
		out.west = center.Lng - maxEdgeLengthRads[res]*lngRatio
	}

	// Buffer the bounding box to cover children. Called even if no
	// buffering is required in order to normalize the bbox to lat/lng
	// bounds.
	if coverChildren {
		scaleBBox(out, CHILD_SCALE_FACTOR)
	} else {
		scaleBBox(out, 1.25)
	}

	// Cell that contains the north pole
	if cell == northPoleCells[res] {
		out.north = M_PI_2
	}

	// Cell that contains the south pole
	if cell == southPoleCells[res] {
		out.south = -M_PI_2
	}

	// If we contain a pole, expand the longitude to include the full
	// domain, effectively making the bbox a circle around the pole.
	if out.north == M_PI_2 || out.south == -M_PI_2 {
		out.east = M_PI
		out.west = -M_PI
	}

	return nil
}

// getBaseCellIndex returns the res 0 cell index for a base cell number,
// or H3_NULL if out of bounds.
func getBaseCellIndex(baseCellNum int) H3Index {
	if baseCellNum < 0 || baseCellNum >= NUM_BASE_CELLS {
		return H3_NULL
	}
	var baseCell H3Index
	setH3Index(&baseCell, 0, baseCellNum, 0)
	return baseCell
}

// nextCell finds, given a cell, the next cell in the sequence of all
// cells to check in the polygon-to-cells iteration.
func nextCell(cell H3Index) H3Index {
	res := cell.getResolution()
	for {
		// If this is a base cell, set to next base cell (or H3_NULL if
		// done)
		if res == 0 {
			return getBaseCellIndex(cell.getBaseCell() + 1)
		}

		// Faster cellToParent when we know the resolution is valid and
		// we're only moving up one level
		parent := cell
		parent.setResolution(res - 1)
		parent.setIndexDigit(res, INVALID_DIGIT)

		// If not the last sibling of parent, return the next sibling
		digit := cell.getIndexDigit(res)
		if digit < INVALID_DIGIT-1 {
			step := Direction(1)
			if IsPentagon(parent) && digit == CENTER_DIGIT {
				// Skip missing pentagon child
				step = 2
			}
			cell.setIndexDigit(res, digit+step)
			return cell
		}
		// Move up to the parent for the next loop iteration
		res--
		cell = parent
	}
}

// capFromBBox builds a conservative spherical cap covering the given
// lat/lng bounding box. The radius carries a margin so that arcs
// bulging beyond the box corners stay within the cap.
func capFromBBox(bbox *BBox, scap *SphereCap) {
	var center LatLng
	bboxCenter(bbox, &center)
	_geoToVec3d(&center, &scap.center)

	corners := [4]LatLng{
		{bbox.north, bbox.east},
		{bbox.north, bbox.west},
		{bbox.south, bbox.west},
		{bbox.south, bbox.east},
	}
	maxDist := 0.0
	for i := range corners {
		d := GreatCircleDistanceRads(&center, &corners[i])
		if d > maxDist {
			maxDist = d
		}
	}
	radius := maxDist*1.5 + EPSILON_RAD
	if radius > M_PI {
		radius = M_PI
	}
	scap.cosRadius = math.Cos(radius)
}

// pointInsidePolygon takes a given polygon with hole bounding boxes and
// a point and returns whether the point is inside, using the spherical
// winding predicate.
func pointInsidePolygon(geodesic *GeodesicPolygon, bboxes []BBox, coord *LatLng) bool {
	// fail fast if we're outside the bounding box
	if !bboxContains(&bboxes[0], coord) {
		return false
	}
	return geodesic.ContainsLatLng(coord)
}

// cellBoundaryInsidePolygon returns whether a cell boundary is
// completely contained by a polygon: one boundary vertex must be inside
// and the boundary must not cross any loop of the polygon.
func cellBoundaryInsidePolygon(geodesic *GeodesicPolygon, bboxes []BBox, boundary *CellBoundary, boundaryBBox *BBox) bool {
	// Check if the first point is inside the polygon
	if !pointInsidePolygon(geodesic, bboxes, &boundary.Verts[0]) {
		return false
	}

	// Check for line intersections between the boundary and any polygon
	// loop
	var geoBoundary GeodesicCellBoundary
	geoBoundary.numVerts = boundary.NumVerts
	for i := 0; i < boundary.NumVerts; i++ {
		_geoToVec3d(&boundary.Verts[i], &geoBoundary.verts[i])
	}
	var scap SphereCap
	capFromBBox(boundaryBBox, &scap)

	return !geodesic.BoundaryIntersects(&geoBoundary, &scap)
}

// IterCellsPolygonCompact is the state of an iterator over the compact
// cells contained in a polygon.
//
// Initialization of this iterator may fail, in which case the Error
// field is set and all iteration returns H3_NULL. It is the
// responsibility of the caller to check Error after initialization.
type IterCellsPolygonCompact struct {
	Cell  H3Index
	Error error

	polygon  *GeoPolygon
	geodesic *GeodesicPolygon
	res      int
	flags    uint32
	bboxes   []BBox
	started  bool
}

func (it *IterCellsPolygonCompact) _error(err error) {
	it.Destroy()
	it.Error = err
}

// NewIterCellsPolygonCompact initializes an iterator over the sequence
// of compact cells within the target polygon. flags is reserved and must
// be 0.
//
// At any point in the iteration the output value can be accessed through
// the Cell field; the first value is available once initialized.
func NewIterCellsPolygonCompact(polygon *GeoPolygon, res int, flags uint32) IterCellsPolygonCompact {
	iter := IterCellsPolygonCompact{
		// The first valid cell will be set in Step
		Cell:    getBaseCellIndex(0),
		polygon: polygon,
		res:     res,
		flags:   flags,
	}

	if polygon == nil {
		iter._error(ErrDomain)
		return iter
	}

	if res < 0 || res > MAX_H3_RES {
		iter._error(ErrResDomain)
		return iter
	}

	if flags != 0 {
		iter._error(ErrOptionInvalid)
		return iter
	}

	// Initialize bounding boxes for the polygon and any holes
	iter.bboxes = make([]BBox, len(polygon.Holes)+1)
	bboxesFromGeoPolygon(polygon, iter.bboxes)

	// Build the unit-vector form of the polygon used by the containment
	// predicates
	geodesic, err := NewGeodesicPolygon(polygon)
	if err != nil {
		iter._error(err)
		return iter
	}
	iter.geodesic = geodesic

	// Start the iterator by taking the first step. This is necessary to
	// have a valid value after initialization.
	iter.Step()

	return iter
}

// Step increments the polyfill iterator, running the polygon-to-cells
// algorithm.
//
// Briefly, the algorithm checks every cell in the global grid
// hierarchically, starting with the base cells. Cells coarser than the
// target resolution are checked for complete child inclusion using a
// bounding box guaranteed to contain all children.
//
//   - If the bounding box is contained by the polygon, output is set to
//     the cell
//   - If the bounding box intersects, recurse into the first child
//   - Otherwise, continue with the next cell in sequence
//
// For cells at the target resolution, the cell center is tested against
// the polygon with the spherical winding predicate.
func (it *IterCellsPolygonCompact) Step() {
	cell := it.Cell

	// once the cell is H3_NULL, the iterator returns an infinite
	// sequence of H3_NULL
	if cell == H3_NULL {
		return
	}

	// For the first step, we need to evaluate the current cell; after
	// that, we should start with the next cell.
	if it.started {
		cell = nextCell(cell)
	} else {
		it.started = true
	}

	for cell != H3_NULL {
		cellRes := cell.getResolution()

		// Target res: do a fine-grained check
		if cellRes == it.res {
			// Check if the cell center is inside the polygon
			center, err := CellToLatLng(cell)
			if err != nil {
				it._error(err)
				return
			}
			if pointInsidePolygon(it.geodesic, it.bboxes, &center) {
				// Set to next output
				it.Cell = cell
				return
			}
		}

		// Coarser cell: check the bounding box
		if cellRes < it.res {
			// Get a bounding box for all of the cell's children
			var bbox BBox
			if err := cellToBBox(cell, &bbox, true); err != nil {
				it._error(err)
				return
			}
			if bboxOverlapsBBox(&it.bboxes[0], &bbox) {
				// Quick check for possible containment
				if bboxContainsBBox(&it.bboxes[0], &bbox) {
					// Convert bbox to cell boundary, CCW vertex order
					bboxBoundary := CellBoundary{
						NumVerts: 4,
						Verts: [MAX_CELL_BNDRY_VERTS]LatLng{
							{bbox.north, bbox.east},
							{bbox.north, bbox.west},
							{bbox.south, bbox.west},
							{bbox.south, bbox.east},
						},
					}
					// Do a fine-grained, more expensive check on the
					// polygon
					if cellBoundaryInsidePolygon(it.geodesic, it.bboxes, &bboxBoundary, &bbox) {
						// Bounding box is fully contained, so all
						// children are included. Set to next output.
						it.Cell = cell
						return
					}
				}
				// Otherwise, the intersecting bbox means we need to test
				// all children, starting with the first child
				child, err := CellToCenterChild(cell, cellRes+1)
				if err != nil {
					it._error(err)
					return
				}
				// Restart the loop with the child cell
				cell = child
				continue
			}
		}

		// Find the next cell in the sequence of all cells and continue
		cell = nextCell(cell)
	}
	// If we make it out of the loop, we're done
	it.Destroy()
}

// Destroy releases the iterator state. Iterators destroyed in this
// manner are safe to use but will always return H3_NULL.
func (it *IterCellsPolygonCompact) Destroy() {
	it.Cell = H3_NULL
	it.Error = nil
	it.polygon = nil
	it.geodesic = nil
	it.res = -1
	it.flags = 0
	it.bboxes = nil
}

// IterCellsPolygon is the state of an iterator over all cells at a fixed
// resolution contained in a polygon.
type IterCellsPolygon struct {
	Cell  H3Index
	Error error

	cellIter  IterCellsPolygonCompact
	childIter IterCellsChildren
}

// NewIterCellsPolygon initializes an iterator over the sequence of cells
// within the target polygon at the given resolution. flags is reserved
// and must be 0.
func NewIterCellsPolygon(polygon *GeoPolygon, res int, flags uint32) IterCellsPolygon {
	// Create the sub-iterator for compact cells
	cellIter := NewIterCellsPolygonCompact(polygon, res, flags)
	// Create the sub-iterator for children
	childIter := NewIterCellsChildren(cellIter.Cell, res)

	return IterCellsPolygon{
		Cell:      childIter.H,
		Error:     cellIter.Error,
		cellIter:  cellIter,
		childIter: childIter,
	}
}

// Step increments the polyfill iterator, outputting the latest cell at
// the desired resolution.
func (it *IterCellsPolygon) Step() {
	if it.Cell == H3_NULL {
		return
	}

	// See if there are more children to output
	it.childIter.Step()
	if it.childIter.H != H3_NULL {
		it.Cell = it.childIter.H
		return
	}

	// Otherwise, increment the polyfill iterator
	it.cellIter.Step()
	if it.cellIter.Cell != H3_NULL {
		_iterInitParent(it.cellIter.Cell, it.cellIter.res, &it.childIter)
		it.Cell = it.childIter.H
		return
	}

	// All done, set to null and report errors if any
	it.Cell = H3_NULL
	it.Error = it.cellIter.Error
}

// Destroy releases the iterator state. Iterators destroyed in this
// manner are safe to use but will always return H3_NULL.
func (it *IterCellsPolygon) Destroy() {
	it.cellIter.Destroy()
	_iterInitParent(H3_NULL, 0, &it.childIter)
	it.Cell = H3_NULL
	it.Error = nil
}

// PolygonToCells fills the given polygon with the cells at the given
// resolution whose centers are contained by it. Containment is
// determined on the sphere with the geodesic winding predicate.
//
// Output order is the deterministic hierarchical descent order of the
// algorithm.
func PolygonToCells(polygon *GeoPolygon, res int) ([]H3Index, error) {
	var out []H3Index
	iter := NewIterCellsPolygon(polygon, res, 0)
	for ; iter.Cell != H3_NULL; iter.Step() {
		out = append(out, iter.Cell)
	}
	if iter.Error != nil {
		return nil, iter.Error
	}
	return out, nil
}

// PolygonToCellsCompact fills the given polygon with a compact
// (mixed-resolution) covering whose finest cells are at the given
// resolution.
func PolygonToCellsCompact(polygon *GeoPolygon, res int) ([]H3Index, error) {
	var out []H3Index
	iter := NewIterCellsPolygonCompact(polygon, res, 0)
	for ; iter.Cell != H3_NULL; iter.Step() {
		out = append(out, iter.Cell)
	}
	if iter.Error != nil {
		return nil, iter.Error
	}
	return out, nil
}
