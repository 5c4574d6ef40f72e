/*
 * interfaces.go, part of gosketch.
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

// Atomer is the read-only view of a molecular graph that the derived
// computations (hydrogens, formula, weight) need.
type Atomer interface {
	//Vertex returns a copy of the vertex with the given id, and false if there is none.
	Vertex(id VertexID) (Vertex, bool)

	//Vertices returns the vertex ids in insertion order.
	Vertices() []VertexID

	//Incident returns the ids of the edges touching the vertex, in insertion order.
	Incident(id VertexID) []EdgeID

	//Edge returns a copy of the edge with the given id, and false if there is none.
	Edge(id EdgeID) (Edge, bool)

	Len() int
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
// All the errors in the library also unwrap to a sentinel, so they can be checked with errors.Is.
type Error interface {
	Error() string
	Decorate(string) []string //Adds the name of a function in the calling stack (plus optional info, as "FunctionName: Extra info"). An empty string just returns the current decoration.
}
