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

// MAX_CELL_BNDRY_VERTS is the maximum number of cell boundary vertices.
// Worst case is a pentagon: 5 original verts + 5 edge crossings.
const MAX_CELL_BNDRY_VERTS = 10

// CellBoundary is a cell boundary in latitude/longitude, with vertices
// in CCW order.
type CellBoundary struct {
	NumVerts int
	Verts    [MAX_CELL_BNDRY_VERTS]LatLng
}
