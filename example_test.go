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

package h3go_test

import (
	"fmt"

	"github.com/spatialkit/h3go"
)

func ExampleLatLngToCell() {
	g := h3go.LatLng{
		Lat: h3go.DegsToRads(40.689167),
		Lng: h3go.DegsToRads(-74.044444),
	}

	cell, err := h3go.LatLngToCell(&g, 10)
	if err != nil {
		panic(err)
	}
	fmt.Println(h3go.H3ToString(cell))
	// Output: 8a2a1072b59ffff
}

func ExampleCellToParent() {
	cell, _ := h3go.StringToH3("8a2a1072b59ffff")

	parent, err := h3go.CellToParent(cell, 9)
	if err != nil {
		panic(err)
	}
	fmt.Println(h3go.H3ToString(parent))
	// Output: 892a1072b5bffff
}

func ExampleGridDisk() {
	origin, _ := h3go.StringToH3("8a2a1072b59ffff")

	disk, err := h3go.GridDisk(origin, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(disk))
	// Output: 7
}

func ExampleGridDistance() {
	origin, _ := h3go.StringToH3("8f2830828052d25")
	destination, _ := h3go.StringToH3("8f283082a30e623")

	dist, err := h3go.GridDistance(origin, destination)
	if err != nil {
		panic(err)
	}
	fmt.Println(dist)
	// Output: 2340
}

func ExamplePolygonToCells() {
	fence := h3go.GeoPolygon{GeoLoop: h3go.GeoLoop{
		{Lat: 0.659966917655, Lng: -2.1364398519396},
		{Lat: 0.6595011102219, Lng: -2.1359434279405},
		{Lat: 0.6583348114025, Lng: -2.1354884206045},
		{Lat: 0.6581220034068, Lng: -2.1382437718946},
		{Lat: 0.6594479998527, Lng: -2.1384597563896},
		{Lat: 0.6599990002976, Lng: -2.1376771158464},
	}}

	cells, err := h3go.PolygonToCells(&fence, 7)
	if err != nil {
		panic(err)
	}
	for _, cell := range cells {
		fmt.Println(h3go.H3ToString(cell))
	}
}
