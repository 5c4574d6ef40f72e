/*
 * formula.go, part of gosketch.
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
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

//Composition returns the number of atoms of each element in the graph,
//including the implicit and explicit hydrogens.
func Composition(G Atomer) map[string]int {
	ret := make(map[string]int)
	for _, id := range G.Vertices() {
		v, _ := G.Vertex(id)
		ret[v.Symbol()]++
		if h := TotalHydrogens(G, id); h > 0 {
			ret["H"] += h
		}
	}
	return ret
}

//Formula returns the molecular formula in Hill order: carbon first, hydrogen
//second, everything else alphabetically. Without carbon, everything is alphabetical.
func Formula(G Atomer) string {
	comp := Composition(G)
	syms := make([]string, 0, len(comp))
	for s := range comp {
		syms = append(syms, s)
	}
	_, carbon := comp["C"]
	sort.Slice(syms, func(i, j int) bool {
		if carbon {
			ri, rj := hillRank(syms[i]), hillRank(syms[j])
			if ri != rj {
				return ri < rj
			}
		}
		return syms[i] < syms[j]
	})
	var b strings.Builder
	for _, s := range syms {
		b.WriteString(s)
		if comp[s] > 1 {
			b.WriteString(strconv.Itoa(comp[s]))
		}
	}
	return b.String()
}

func hillRank(s string) int {
	switch s {
	case "C":
		return 0
	case "H":
		return 1
	}
	return 2
}

//MolecularWeight returns the molecular weight of the graph, in g/mol.
//Atoms with an isotope override count with their mass number.
//It returns an error if there is an atom with an unknown element.
func MolecularWeight(G Atomer) (float64, error) {
	hmass, _ := Mass("H")
	masses := make([]float64, 0, G.Len())
	for _, id := range G.Vertices() {
		v, _ := G.Vertex(id)
		m, ok := Mass(v.Symbol())
		if !ok {
			return 0, newError(ErrUnknownElement, "MolecularWeight", "atom %d: %q", id, v.Symbol())
		}
		if v.Isotope != nil {
			m = float64(*v.Isotope)
		}
		masses = append(masses, m, float64(TotalHydrogens(G, id))*hmass)
	}
	return floats.Sum(masses), nil
}
