/*
 * geometric_test.go, part of gosketch.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chem

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

const tol = 1e-9

func TestRotationAboutMidpoint(Te *testing.T) {
	G := NewGraph()
	a := G.AddVertex(Vertex{Pos: r2.Vec{X: 0, Y: 0}})
	b := G.AddVertex(Vertex{Pos: r2.Vec{X: 50, Y: 0}})
	G.ApplyRotation(r2.Vec{X: 25, Y: 0}, math.Pi)
	va, _ := G.Vertex(a)
	vb, _ := G.Vertex(b)
	require.InDelta(Te, 50, va.Pos.X, tol)
	require.InDelta(Te, 0, va.Pos.Y, tol)
	require.InDelta(Te, 0, vb.Pos.X, tol)
	require.InDelta(Te, 0, vb.Pos.Y, tol)
}

func TestRotateQuarterTurn(Te *testing.T) {
	p := Rotate(r2.Vec{X: 2, Y: 1}, r2.Vec{X: 1, Y: 1}, math.Pi/2)
	require.InDelta(Te, 1, p.X, tol)
	require.InDelta(Te, 2, p.Y, tol)
}

func TestBoundingRect(Te *testing.T) {
	G := NewGraph()
	_, ok := G.BoundingRect()
	require.False(Te, ok)
	G.AddVertex(Vertex{Pos: r2.Vec{X: 3, Y: -1}})
	G.AddVertex(Vertex{Pos: r2.Vec{X: -2, Y: 4}})
	G.AddVertex(Vertex{Pos: r2.Vec{X: 0, Y: 0}})
	box, ok := G.BoundingRect()
	require.True(Te, ok)
	require.Equal(Te, r2.Vec{X: -2, Y: -1}, box.Min)
	require.Equal(Te, r2.Vec{X: 3, Y: 4}, box.Max)
	c, _ := G.Center()
	require.InDelta(Te, 0.5, c.X, tol)
	require.InDelta(Te, 1.5, c.Y, tol)
}

func TestRotateVerticesIsAtomic(Te *testing.T) {
	G := NewGraph()
	a := G.AddVertex(Vertex{Pos: r2.Vec{X: 1}})
	err := G.RotateVertices([]VertexID{a, 7}, r2.Vec{}, 1)
	require.Error(Te, err)
	v, _ := G.Vertex(a)
	require.Equal(Te, r2.Vec{X: 1}, v.Pos)
}
