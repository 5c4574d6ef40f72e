/*
 * hydrogens.go, part of gosketch.
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

import "math"

//adjustValence shifts a default valence by the formal charge. Elements of groups
//15 to 17 gain a bond per positive charge (NH4+, H3O+), those of group 13 per
//negative charge (BH4-), and carbon-like atoms lose one either way (carbocations, carbanions).
func adjustValence(v, charge, group int) int {
	switch group {
	case 13:
		return v - charge
	case 14:
		if charge < 0 {
			return v + charge
		}
		return v - charge
	case 15, 16, 17:
		return v + charge
	case 1:
		return v - abs(charge)
	}
	return v
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

//BondOrderSum returns the sum of the orders of the bonds of the atom, rounded up,
//and whether any of them is aromatic.
func BondOrderSum(G Atomer, id VertexID) (int, bool) {
	var sum float64
	aromatic := false
	for _, eid := range G.Incident(id) {
		e, _ := G.Edge(eid)
		sum += e.Type.Order()
		if e.Type == Aromatic {
			aromatic = true
		}
	}
	return int(math.Ceil(sum - 1e-9)), aromatic
}

//ImplicitHydrogens returns the number of hydrogens the atom would carry given its
//element, charge and bonds, ignoring any explicit override. The smallest default
//valence that accommodates the bonds is used. Aromatic atoms never climb to a
//higher valence state (so thiophene's sulfur gets no hydrogen).
//Returns 0 for elements without default valences and for missing atoms.
func ImplicitHydrogens(G Atomer, id VertexID) int {
	v, ok := G.Vertex(id)
	if !ok {
		return 0
	}
	e, ok := elements[v.Symbol()]
	if !ok || e.valences == nil {
		return 0
	}
	used, aromatic := BondOrderSum(G, id)
	for i, val := range e.valences {
		val = adjustValence(val, v.Charge, e.group)
		if val >= used {
			return val - used
		}
		if aromatic && i == 0 {
			return 0
		}
	}
	return 0
}

//TotalHydrogens returns the explicit hydrogen count of the atom if it has one,
//and the implicit count otherwise. Hydrogens drawn as atoms are not included.
func TotalHydrogens(G Atomer, id VertexID) int {
	v, ok := G.Vertex(id)
	if !ok {
		return 0
	}
	if v.HCount != nil {
		return *v.HCount
	}
	return ImplicitHydrogens(G, id)
}
