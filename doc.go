/*
 * doc.go, part of gosketch.
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

/*Package chem is the main package of the goSketch library. It provides the molecular
graph that a 2D structure editor works on: atoms (vertices) with planar coordinates,
bonds (edges) typed with the MDL connection table codes, adjacency queries, and the
geometric transformations the editor needs (bounding rectangle, rotation, translation).


	**goSketch Capabilities**


    Keeps a molecular graph in an arena of vertices and edges. Identifiers are stable
	for the lifetime of the graph, and the insertion order (which gives the atom and
	bond numbering in files) is preserved, even across removals and restorations.

    Records everything a removal took out of the graph, so the removal can be undone
	exactly (same ids, same order).

    Computes implicit hydrogens from a standard organic valence table, molecular
	formulas in Hill order and molecular weights.

    Rotates and translates the whole graph or a subset of its atoms.

    Reads and writes MDL Molfile and SDF files (package molfile) and SMILES
	strings (package smiles).

    Encapsulates every edit of the graph in an undoable action (package action),
	with coalescing of continuous gestures such as drags into a single undo step.

    Exposes the graph through the gonum graph interfaces (package chemgraph), so
	the gonum algorithms can be used on it.

    Keeps one document per explicit session object (package document), which
	loads and saves through the converters and keeps derived values up to date.

*/
package chem
