/*
 * geometric.go, part of gosketch.
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

	"gonum.org/v1/gonum/spatial/r2"
)

//Deg2Rad converts degrees to radians.
func Deg2Rad(f float64) float64 {
	return f * math.Pi / 180
}

//Rad2Deg converts radians to degrees.
func Rad2Deg(f float64) float64 {
	return f * 180 / math.Pi
}

//Rotate returns p rotated by angle radians about pivot.
func Rotate(p, pivot r2.Vec, angle float64) r2.Vec {
	sin, cos := math.Sincos(angle)
	d := r2.Sub(p, pivot)
	return r2.Vec{
		X: pivot.X + d.X*cos - d.Y*sin,
		Y: pivot.Y + d.X*sin + d.Y*cos,
	}
}

//BoundingRect returns the smallest axis-aligned rectangle that contains all the atoms.
//It returns false for an empty graph.
func (G *Graph) BoundingRect() (r2.Box, bool) {
	if G.Len() == 0 {
		return r2.Box{}, false
	}
	first := G.vertices[G.vorder[0]].v.Pos
	box := r2.Box{Min: first, Max: first}
	for _, id := range G.vorder[1:] {
		p := G.vertices[id].v.Pos
		box.Min.X = math.Min(box.Min.X, p.X)
		box.Min.Y = math.Min(box.Min.Y, p.Y)
		box.Max.X = math.Max(box.Max.X, p.X)
		box.Max.Y = math.Max(box.Max.Y, p.Y)
	}
	return box, true
}

//Center returns the center of the bounding rectangle, and false for an empty graph.
func (G *Graph) Center() (r2.Vec, bool) {
	box, ok := G.BoundingRect()
	if !ok {
		return r2.Vec{}, false
	}
	return r2.Scale(0.5, r2.Add(box.Min, box.Max)), true
}

//ApplyRotation rotates every atom by angle radians about pivot.
//The topology is not changed.
func (G *Graph) ApplyRotation(pivot r2.Vec, angle float64) {
	for _, id := range G.vorder {
		G.vertices[id].v.Pos = Rotate(G.vertices[id].v.Pos, pivot, angle)
	}
}

//RotateVertices rotates only the given atoms. Nothing is changed if
//one of them doesn't exist.
func (G *Graph) RotateVertices(ids []VertexID, pivot r2.Vec, angle float64) error {
	for _, id := range ids {
		if !G.live(id) {
			return newError(ErrInvalidReference, "RotateVertices", "atom %d doesn't exist", id)
		}
	}
	for _, id := range ids {
		G.vertices[id].v.Pos = Rotate(G.vertices[id].v.Pos, pivot, angle)
	}
	return nil
}

//Translate displaces every atom by delta.
func (G *Graph) Translate(delta r2.Vec) {
	for _, id := range G.vorder {
		G.vertices[id].v.Pos = r2.Add(G.vertices[id].v.Pos, delta)
	}
}

//Midpoint returns the middle point of the bond.
func (G *Graph) Midpoint(id EdgeID) (r2.Vec, bool) {
	e, ok := G.Edge(id)
	if !ok {
		return r2.Vec{}, false
	}
	return r2.Scale(0.5, r2.Add(G.vertices[e.V1].v.Pos, G.vertices[e.V2].v.Pos)), true
}
