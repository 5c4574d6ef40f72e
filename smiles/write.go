/*
 * write.go, part of gosketch.
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

package smiles

import (
	"fmt"
	"strings"

	chem "github.com/rmera/gosketch"
	"github.com/rmera/gosketch/chemgraph"
)

//MaxRingLabel is the largest ring closure label SMILES can express.
const MaxRingLabel = 99

//writer holds the state of one serialization. The spanning tree of each
//fragment is found first, so the ring closures are known before any
//atom is written.
type writer struct {
	g        *chem.Graph
	arom     map[chem.VertexID]bool
	visited  map[chem.VertexID]bool
	ring     map[chem.EdgeID]bool
	children map[chem.VertexID][]chem.Edge
	opens    map[chem.VertexID][]chem.Edge
	closes   map[chem.VertexID][]chem.Edge
	labels   map[chem.EdgeID]int
	inuse    [MaxRingLabel + 1]bool
	b        strings.Builder
}

//Write returns a SMILES string for g. Each fragment starts at its atom that
//was added first, and fragments are separated by dots. The output is valid,
//but not canonical: the same molecule drawn in a different order gives a
//different string. Query bonds can't be written.
func Write(g *chem.Graph) (string, error) {
	w := &writer{
		g:        g,
		arom:     make(map[chem.VertexID]bool),
		visited:  make(map[chem.VertexID]bool),
		ring:     make(map[chem.EdgeID]bool),
		children: make(map[chem.VertexID][]chem.Edge),
		opens:    make(map[chem.VertexID][]chem.Edge),
		closes:   make(map[chem.VertexID][]chem.Edge),
		labels:   make(map[chem.EdgeID]int),
	}
	for _, eid := range g.Edges() {
		e, _ := g.Edge(eid)
		if e.Type.Query() {
			return "", newError(chem.ErrInvalidValue, "Write", "query bond %d (%s) has no SMILES symbol", eid, e.Type)
		}
		if e.Type == chem.Aromatic {
			for _, v := range []chem.VertexID{e.V1, e.V2} {
				if a, _ := g.Vertex(v); chem.CanBeAromatic(a.Symbol()) {
					w.arom[v] = true
				}
			}
		}
	}
	for i, frag := range chemgraph.Fragments(g) {
		if i > 0 {
			w.b.WriteString(".")
		}
		w.tree(frag[0], -1)
		if err := w.emit(frag[0]); err != nil {
			return "", chem.ErrDecorate(err, "Write")
		}
	}
	return w.b.String(), nil
}

//tree walks the fragment depth first, splitting the bonds into the spanning
//tree and the ring closures.
func (w *writer) tree(v chem.VertexID, parent chem.EdgeID) {
	w.visited[v] = true
	for _, eid := range w.g.Incident(v) {
		if eid == parent || w.ring[eid] {
			continue
		}
		e, _ := w.g.Edge(eid)
		u := e.Cross(v)
		if !w.visited[u] {
			w.children[v] = append(w.children[v], e)
			w.tree(u, eid)
			continue
		}
		//u was visited before v, so its token is written first.
		w.ring[eid] = true
		w.opens[u] = append(w.opens[u], e)
		w.closes[v] = append(w.closes[v], e)
	}
}

func (w *writer) emit(v chem.VertexID) error {
	if err := w.atom(v); err != nil {
		return err
	}
	for _, e := range w.closes[v] {
		w.b.WriteString(label(w.labels[e.ID]))
	}
	//new labels are taken before the closed ones are freed, so no
	//label is closed and opened again on the same atom.
	for _, e := range w.opens[v] {
		l := w.alloc()
		if l < 0 {
			return newError(chem.ErrInvalidValue, "emit", "more than %d rings open at once", MaxRingLabel)
		}
		w.labels[e.ID] = l
		w.b.WriteString(w.bond(e))
		w.b.WriteString(label(l))
	}
	for _, e := range w.closes[v] {
		w.inuse[w.labels[e.ID]] = false
	}
	kids := w.children[v]
	for i, e := range kids {
		last := i == len(kids)-1
		if !last {
			w.b.WriteString("(")
		}
		w.b.WriteString(w.bond(e))
		if err := w.emit(e.Cross(v)); err != nil {
			return err
		}
		if !last {
			w.b.WriteString(")")
		}
	}
	return nil
}

//alloc returns the lowest free ring label, or -1.
func (w *writer) alloc() int {
	for l := 1; l <= MaxRingLabel; l++ {
		if !w.inuse[l] {
			w.inuse[l] = true
			return l
		}
	}
	return -1
}

func label(l int) string {
	if l < 10 {
		return fmt.Sprintf("%d", l)
	}
	return fmt.Sprintf("%%%02d", l)
}

//bond returns the symbol for e. Query bonds were rejected earlier.
func (w *writer) bond(e chem.Edge) string {
	both := w.arom[e.V1] && w.arom[e.V2]
	switch e.Type {
	case chem.Double:
		return "="
	case chem.Triple:
		return "#"
	case chem.Aromatic:
		if both {
			return ""
		}
		return ":"
	default:
		if both {
			return "-"
		}
		return ""
	}
}

func (w *writer) atom(id chem.VertexID) error {
	v, _ := w.g.Vertex(id)
	sym := v.Symbol()
	if !chem.IsElement(sym) {
		return newError(chem.ErrUnknownElement, "atom", "atom %d: %q", id, sym)
	}
	arom := w.arom[id]
	text := sym
	if arom {
		text = strings.ToLower(sym)
	}
	bracket := v.HCount != nil || v.Charge != 0 || v.Isotope != nil || !organic[sym] || (arom && !aromaticOrganic[sym])
	if !bracket {
		w.b.WriteString(text)
		return nil
	}
	w.b.WriteString("[")
	if v.Isotope != nil {
		fmt.Fprintf(&w.b, "%d", *v.Isotope)
	}
	w.b.WriteString(text)
	switch h := chem.TotalHydrogens(w.g, id); {
	case h == 1:
		w.b.WriteString("H")
	case h > 1:
		fmt.Fprintf(&w.b, "H%d", h)
	}
	switch {
	case v.Charge == 1:
		w.b.WriteString("+")
	case v.Charge == -1:
		w.b.WriteString("-")
	case v.Charge > 1:
		fmt.Fprintf(&w.b, "+%d", v.Charge)
	case v.Charge < -1:
		fmt.Fprintf(&w.b, "-%d", -v.Charge)
	}
	w.b.WriteString("]")
	return nil
}
