/*
 * atomicdata.go, part of gosketch.
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

type element struct {
	mass     float64 //standard atomic weight, IUPAC 2021 abridged
	group    int     //0 for the elements where it doesn't matter (no implicit hydrogens)
	valences []int   //default valences, ascending. nil means no implicit hydrogens
	aromatic bool    //can be written as an aromatic (lowercase) SMILES atom
}

//A map with the data needed for each element.
//Only the elements in the SMILES organic subset (plus a few of their
//heavier relatives) get implicit hydrogens.
var elements = map[string]element{
	"H":  {1.008, 1, []int{1}, false},
	"He": {4.0026, 0, nil, false},
	"Li": {6.94, 0, nil, false},
	"Be": {9.0122, 0, nil, false},
	"B":  {10.81, 13, []int{3}, true},
	"C":  {12.011, 14, []int{4}, true},
	"N":  {14.007, 15, []int{3, 5}, true},
	"O":  {15.999, 16, []int{2}, true},
	"F":  {18.998, 17, []int{1}, false},
	"Ne": {20.180, 0, nil, false},
	"Na": {22.990, 0, nil, false},
	"Mg": {24.305, 0, nil, false},
	"Al": {26.982, 0, nil, false},
	"Si": {28.085, 14, []int{4}, false},
	"P":  {30.974, 15, []int{3, 5}, true},
	"S":  {32.06, 16, []int{2, 4, 6}, true},
	"Cl": {35.45, 17, []int{1}, false},
	"Ar": {39.948, 0, nil, false},
	"K":  {39.098, 0, nil, false},
	"Ca": {40.078, 0, nil, false},
	"Sc": {44.956, 0, nil, false},
	"Ti": {47.867, 0, nil, false},
	"V":  {50.942, 0, nil, false},
	"Cr": {51.996, 0, nil, false},
	"Mn": {54.938, 0, nil, false},
	"Fe": {55.845, 0, nil, false},
	"Co": {58.933, 0, nil, false},
	"Ni": {58.693, 0, nil, false},
	"Cu": {63.546, 0, nil, false},
	"Zn": {65.38, 0, nil, false},
	"Ga": {69.723, 0, nil, false},
	"Ge": {72.630, 14, []int{4}, false},
	"As": {74.922, 15, []int{3, 5}, true},
	"Se": {78.971, 16, []int{2, 4, 6}, true},
	"Br": {79.904, 17, []int{1}, false},
	"Kr": {83.798, 0, nil, false},
	"Rb": {85.468, 0, nil, false},
	"Sr": {87.62, 0, nil, false},
	"Y":  {88.906, 0, nil, false},
	"Zr": {91.224, 0, nil, false},
	"Nb": {92.906, 0, nil, false},
	"Mo": {95.95, 0, nil, false},
	"Tc": {98, 0, nil, false},
	"Ru": {101.07, 0, nil, false},
	"Rh": {102.91, 0, nil, false},
	"Pd": {106.42, 0, nil, false},
	"Ag": {107.87, 0, nil, false},
	"Cd": {112.41, 0, nil, false},
	"In": {114.82, 0, nil, false},
	"Sn": {118.71, 0, nil, false},
	"Sb": {121.76, 0, nil, false},
	"Te": {127.60, 16, []int{2, 4, 6}, true},
	"I":  {126.90, 17, []int{1}, false},
	"Xe": {131.29, 0, nil, false},
	"Cs": {132.91, 0, nil, false},
	"Ba": {137.33, 0, nil, false},
	"La": {138.91, 0, nil, false},
	"Ce": {140.12, 0, nil, false},
	"Gd": {157.25, 0, nil, false},
	"Hf": {178.49, 0, nil, false},
	"Ta": {180.95, 0, nil, false},
	"W":  {183.84, 0, nil, false},
	"Re": {186.21, 0, nil, false},
	"Os": {190.23, 0, nil, false},
	"Ir": {192.22, 0, nil, false},
	"Pt": {195.08, 0, nil, false},
	"Au": {196.97, 0, nil, false},
	"Hg": {200.59, 0, nil, false},
	"Tl": {204.38, 0, nil, false},
	"Pb": {207.2, 0, nil, false},
	"Bi": {208.98, 0, nil, false},
	"U":  {238.03, 0, nil, false},
}

//IsElement returns true if symbol is an element symbol known to the library.
func IsElement(symbol string) bool {
	_, ok := elements[symbol]
	return ok
}

//Mass returns the standard atomic weight of the element, and false if
//the element is not known.
func Mass(symbol string) (float64, bool) {
	e, ok := elements[symbol]
	return e.mass, ok
}

//Valences returns the default valences of the element in ascending order,
//or nil if the element gets no implicit hydrogens.
func Valences(symbol string) []int {
	v := elements[symbol].valences
	if v == nil {
		return nil
	}
	ret := make([]int, len(v))
	copy(ret, v)
	return ret
}

//CanBeAromatic returns true if the element can be written as an aromatic atom in SMILES.
func CanBeAromatic(symbol string) bool {
	return elements[symbol].aromatic
}
