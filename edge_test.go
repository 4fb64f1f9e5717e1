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

func TestCellsToEdgeNormalization(t *testing.T) {
	a := H3Index(0x8a2a1072b59ffff)
	b := H3Index(0x8a2a1072b597fff)

	edgeAB, err := CellsToEdge(a, b)
	require.NoError(t, err)
	edgeBA, err := CellsToEdge(b, a)
	require.NoError(t, err)

	// the same undirected edge regardless of argument order
	assert.Equal(t, edgeAB, edgeBA)
	assert.True(t, IsValidEdge(edgeAB))

	// the owner is the numerically smaller cell
	owner, peer, err := EdgeToCells(edgeAB)
	require.NoError(t, err)
	assert.Less(t, uint64(owner), uint64(peer))
	assert.ElementsMatch(t, []H3Index{a, b}, []H3Index{owner, peer})
}

func TestCellsToEdgeNotNeighbors(t *testing.T) {
	a := H3Index(0x8a2a1072b59ffff)
	far := H3Index(0x8a2a1072a24ffff)
	_, err := CellsToEdge(a, far)
	assert.ErrorIs(t, err, ErrNotNeighbors)
}

func TestCellToEdges(t *testing.T) {
	origin := H3Index(0x8a2a1072b59ffff)

	edges, err := CellToEdges(origin)
	require.NoError(t, err)

	seen := make(map[H3Index]bool)
	for _, edge := range edges {
		require.True(t, IsValidEdge(edge))
		assert.False(t, seen[edge])
		seen[edge] = true

		owner, peer, err := EdgeToCells(edge)
		require.NoError(t, err)
		assert.True(t, owner == origin || peer == origin)
	}
}

func TestCellToEdgesPentagon(t *testing.T) {
	var pent H3Index
	setH3Index(&pent, 3, 83, CENTER_DIGIT)

	edges, err := CellToEdges(pent)
	require.NoError(t, err)
	assert.Equal(t, H3_NULL, edges[0])
	for _, edge := range edges[1:] {
		assert.True(t, IsValidEdge(edge))
	}
}

func TestDirectedEdgeToEdge(t *testing.T) {
	a := H3Index(0x8a2a1072b59ffff)
	b := H3Index(0x8a2a1072b597fff)

	directed, err := CellsToDirectedEdge(a, b)
	require.NoError(t, err)
	reversed, err := ReverseDirectedEdge(directed)
	require.NoError(t, err)

	e1, err := DirectedEdgeToEdge(directed)
	require.NoError(t, err)
	e2, err := DirectedEdgeToEdge(reversed)
	require.NoError(t, err)

	// both directions normalize to the same undirected edge
	assert.Equal(t, e1, e2)
	assert.True(t, IsValidEdge(e1))
}

func TestEdgeToBoundary(t *testing.T) {
	a := H3Index(0x8a2a1072b59ffff)
	b := H3Index(0x8a2a1072b597fff)

	edge, err := CellsToEdge(a, b)
	require.NoError(t, err)

	cb, err := EdgeToBoundary(edge)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, cb.NumVerts, 2)
	assert.LessOrEqual(t, cb.NumVerts, 3)
}

func TestIsValidEdgeModes(t *testing.T) {
	a := H3Index(0x8a2a1072b59ffff)
	b := H3Index(0x8a2a1072b597fff)

	directed, err := CellsToDirectedEdge(a, b)
	require.NoError(t, err)

	// a directed edge is not an undirected edge
	assert.False(t, IsValidEdge(directed))
	assert.False(t, IsValidEdge(a))
	assert.False(t, IsValidEdge(H3_NULL))
}
