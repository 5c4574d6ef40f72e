/*
 * bonds.go, part of gosketch.
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

import "fmt"

//BondType is the bond type code of the MDL connection table. The numeric
//values are the ones written in the bond block of a Molfile and must not change.
type BondType int

const (
	Single           BondType = 1
	Double           BondType = 2
	Triple           BondType = 3
	Aromatic         BondType = 4
	SingleOrDouble   BondType = 5
	SingleOrAromatic BondType = 6
	DoubleOrAromatic BondType = 7
	AnyBond          BondType = 8
)

var bondTypeNames = map[BondType]string{
	Single:           "single",
	Double:           "double",
	Triple:           "triple",
	Aromatic:         "aromatic",
	SingleOrDouble:   "single-or-double",
	SingleOrAromatic: "single-or-aromatic",
	DoubleOrAromatic: "double-or-aromatic",
	AnyBond:          "any",
}

//Valid returns true if B is one of the codes defined by the connection table.
func (B BondType) Valid() bool {
	_, ok := bondTypeNames[B]
	return ok
}

func (B BondType) String() string {
	if n, ok := bondTypeNames[B]; ok {
		return n
	}
	return fmt.Sprintf("BondType(%d)", int(B))
}

//Order returns the number of electron pairs the bond contributes to
//the valence of each of its atoms. Aromatic bonds count 1.5, query
//bonds count as their lowest alternative.
func (B BondType) Order() float64 {
	switch B {
	case Double:
		return 2
	case Triple:
		return 3
	case Aromatic, DoubleOrAromatic:
		return 1.5
	default:
		return 1
	}
}

//Query returns true for the bond types that stand for more than one kind of bond.
func (B BondType) Query() bool {
	return B >= SingleOrDouble
}

//StereoType is the stereo code of the MDL bond block. 2, 3 and 5 are not used
//by the format for single bonds, so they are not defined here either.
type StereoType int

const (
	StereoNone   StereoType = 0
	StereoUp     StereoType = 1
	StereoEither StereoType = 4
	StereoDown   StereoType = 6
)

//Valid returns true if S is one of the codes defined by the connection table.
func (S StereoType) Valid() bool {
	switch S {
	case StereoNone, StereoUp, StereoEither, StereoDown:
		return true
	}
	return false
}

func (S StereoType) String() string {
	switch S {
	case StereoNone:
		return "none"
	case StereoUp:
		return "up"
	case StereoEither:
		return "either"
	case StereoDown:
		return "down"
	}
	return fmt.Sprintf("StereoType(%d)", int(S))
}

//EdgeID identifies a bond for the lifetime of the graph.
type EdgeID int64

//Edge is a bond between two different atoms. For stereo bonds, V1 is the
//narrow end of the wedge.
type Edge struct {
	ID     EdgeID
	V1, V2 VertexID
	Type   BondType
	Stereo StereoType
}

//Has returns true if v is one of the endpoints of the bond.
func (E Edge) Has(v VertexID) bool {
	return E.V1 == v || E.V2 == v
}

//Cross returns the atom at the other end of the bond, starting from origin.
func (E Edge) Cross(origin VertexID) VertexID {
	if origin == E.V1 {
		return E.V2
	}
	if origin == E.V2 {
		return E.V1
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!") //a programming error, so a panic is warranted.
}

//Joins returns true if the bond connects a and b, in any direction.
func (E Edge) Joins(a, b VertexID) bool {
	return (E.V1 == a && E.V2 == b) || (E.V1 == b && E.V2 == a)
}
