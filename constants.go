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

// Package h3go implements a hexagonal hierarchical geospatial indexing
// system on a spherical icosahedron. Any point on the sphere can be
// encoded as a 64-bit cell index at one of 16 resolutions; the package
// provides projection, hierarchy, grid traversal, edge and vertex
// indexing, and polygon conversion over those cells.
//
// All package-level tables are immutable after load; every operation is
// reentrant and safe for concurrent use on disjoint inputs.
package h3go

import "math"

const (
	// pi
	M_PI = math.Pi

	// pi / 2.0
	M_PI_2 = math.Pi / 2.0

	// 2.0 * pi
	M_2PI = 2.0 * math.Pi

	// pi / 180
	M_PI_180 = math.Pi / 180
	// 180 / pi
	M_180_PI = 180 / math.Pi

	// threshold epsilon
	EPSILON = 0.0000000000000001

	// sqrt(3) / 2.0
	M_SQRT3_2 = 0.8660254037844386467637231707529361834714
	// sin(60')
	M_SIN60 = M_SQRT3_2

	// square root of 7
	M_SQRT7 = 2.6457513110645905905016157536392604257102

	// rotation angle between Class II and Class III resolution axes
	// (asin(sqrt(3.0 / 28.0)))
	M_AP7_ROT_RADS = 0.333473172251832115336090755351601070065900389

	// sin(M_AP7_ROT_RADS)
	M_SIN_AP7_ROT = 0.3273268353539885718950318

	// cos(M_AP7_ROT_RADS)
	M_COS_AP7_ROT = 0.9449111825230680680167902

	// earth radius in kilometers using WGS84 authalic radius
	EARTH_RADIUS_KM = 6371.007180918475

	// scaling factor from hex2d resolution 0 unit length (or distance
	// between adjacent cell center points on the plane) to gnomonic unit
	// length.
	RES0_U_GNOMONIC = 0.38196601125010500003

	// max H3 resolution; H3 version 1 has 16 resolutions, numbered 0
	// through 15
	MAX_H3_RES = 15

	// The number of faces on an icosahedron
	NUM_ICOSA_FACES = 20
	// The number of H3 base cells
	NUM_BASE_CELLS = 122
	// The number of vertices in a hexagon
	NUM_HEX_VERTS = 6
	// The number of vertices in a pentagon
	NUM_PENT_VERTS = 5
	// The number of pentagons per resolution
	NUM_PENTAGONS = 12
)

// H3 index modes
const (
	H3_CELL_MODE         = 1
	H3_DIRECTEDEDGE_MODE = 2
	H3_EDGE_MODE         = 3
	H3_VERTEX_MODE       = 4
)
