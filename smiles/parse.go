/*
 * parse.go, part of gosketch.
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

//Package smiles reads and writes SMILES strings.
//
//Aromaticity is kept in the bonds: lowercase atoms are read as their element,
//and bonds between two of them as chem.Aromatic. Chirality marks, atom classes
//and the / and \ double bond marks are accepted but not kept.
package smiles

import (
	"math"
	"strings"
	"unicode"

	chem "github.com/rmera/gosketch"
	"gonum.org/v1/gonum/spatial/r2"
)

//LayoutBondLength is the bond length of the zigzag in which parsed atoms are placed.
//SMILES carries no coordinates.
const LayoutBondLength = 1.5

//organic is the subset of elements that can be written without brackets.
var organic = map[string]bool{"B": true, "C": true, "N": true, "O": true, "P": true, "S": true, "F": true, "Cl": true, "Br": true, "I": true}

//aromaticOrganic can be written lowercase without brackets.
var aromaticOrganic = map[string]bool{"B": true, "C": true, "N": true, "O": true, "P": true, "S": true}

var bondSymbols = map[byte]chem.BondType{
	'-':  chem.Single,
	'=':  chem.Double,
	'#':  chem.Triple,
	':':  chem.Aromatic,
	'/':  chem.Single,
	'\\': chem.Single,
}

type ringOpen struct {
	v    chem.VertexID
	bond chem.BondType
	at   int
}

type parser struct {
	s      string
	base   int //offset of s in the original text
	i      int
	g      *chem.Graph
	cur    chem.VertexID
	arom   map[chem.VertexID]bool
	bond   chem.BondType //0 if none is pending
	bondAt int
	stack  []chem.VertexID
	opens  []int //offsets of the '(' in stack
	branch bool  //a '(' was just read
	dotAt  int
	rings  map[int]ringOpen
}

func (p *parser) errorf(at int, format string, args ...interface{}) error {
	return malformed(p.base+at, "Parse", format, args...)
}

//Parse reads the first SMILES string in text. Anything after the first
//blank, usually a name, is ignored. Atoms are laid out in a zigzag, in
//the order they appear in the string.
func Parse(text string) (*chem.Graph, error) {
	start := strings.IndexFunc(text, func(r rune) bool { return !unicode.IsSpace(r) })
	if start < 0 {
		return nil, malformed(0, "Parse", "no SMILES string")
	}
	s := text[start:]
	if end := strings.IndexFunc(s, unicode.IsSpace); end >= 0 {
		s = s[:end]
	}
	p := &parser{s: s, base: start, g: chem.NewGraph(), cur: -1, arom: make(map[chem.VertexID]bool), rings: make(map[int]ringOpen)}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.g, nil
}

func (p *parser) parse() error {
	for p.i < len(p.s) {
		c := p.s[p.i]
		var err error
		switch {
		case c == '(':
			if p.cur < 0 {
				return p.errorf(p.i, "branch without a preceding atom")
			}
			if p.bond != 0 {
				return p.errorf(p.bondAt, "bond before a branch")
			}
			p.stack = append(p.stack, p.cur)
			p.opens = append(p.opens, p.i)
			p.branch = true
			p.i++
		case c == ')':
			if len(p.stack) == 0 {
				return p.errorf(p.i, "unmatched ')'")
			}
			if p.branch {
				return p.errorf(p.i, "empty branch")
			}
			if p.bond != 0 {
				return p.errorf(p.bondAt, "bond without a second atom")
			}
			p.cur = p.stack[len(p.stack)-1]
			p.stack = p.stack[:len(p.stack)-1]
			p.opens = p.opens[:len(p.opens)-1]
			p.i++
		case c == '.':
			if p.cur < 0 || p.branch {
				return p.errorf(p.i, "empty fragment")
			}
			if p.bond != 0 {
				return p.errorf(p.bondAt, "bond without a second atom")
			}
			p.cur, p.dotAt = -1, p.i
			p.i++
		case bondSymbols[c] != 0:
			if p.cur < 0 {
				return p.errorf(p.i, "bond without a preceding atom")
			}
			if p.bond != 0 {
				return p.errorf(p.i, "two bonds in a row")
			}
			p.bond, p.bondAt = bondSymbols[c], p.i
			p.i++
		case c == '%' || (c >= '0' && c <= '9'):
			err = p.ring()
		case c == '[':
			err = p.bracket()
		default:
			err = p.organicAtom()
		}
		if err != nil {
			return err
		}
	}
	switch {
	case p.bond != 0:
		return p.errorf(p.bondAt, "bond without a second atom")
	case len(p.stack) > 0:
		return p.errorf(p.opens[len(p.opens)-1], "unclosed branch")
	case len(p.rings) > 0:
		first := len(p.s)
		for _, r := range p.rings {
			first = min(first, r.at)
		}
		return p.errorf(first, "unclosed ring")
	case p.g.Len() == 0:
		return p.errorf(0, "no atoms")
	case p.cur < 0:
		return p.errorf(p.dotAt, "empty fragment")
	}
	return nil
}

//addAtom adds v, bonded to the current atom if there is one.
func (p *parser) addAtom(v chem.Vertex, aromatic bool) {
	n := p.g.Len()
	v.Pos = r2.Vec{X: float64(n) * LayoutBondLength * math.Cos(math.Pi/6)}
	if n%2 == 1 {
		v.Pos.Y = LayoutBondLength / 2
	}
	id := p.g.AddVertex(v)
	if p.cur >= 0 {
		bt := p.bond
		if bt == 0 {
			bt = p.defaultBond(p.cur, aromatic)
		}
		p.g.AddEdge(p.cur, id, bt) //a new atom can't fail here.
	}
	p.arom[id] = aromatic
	p.cur = id
	p.bond = 0
	p.branch = false
}

//defaultBond is the bond implied when none is written: aromatic between two aromatic atoms.
func (p *parser) defaultBond(a chem.VertexID, aromatic bool) chem.BondType {
	if p.arom[a] && aromatic {
		return chem.Aromatic
	}
	return chem.Single
}

func (p *parser) organicAtom() error {
	s := p.s[p.i:]
	for _, two := range []string{"Cl", "Br"} {
		if strings.HasPrefix(s, two) {
			p.addAtom(chem.Vertex{Element: two}, false)
			p.i += 2
			return nil
		}
	}
	c := string(s[0])
	switch {
	case organic[c]:
		p.addAtom(chem.Vertex{Element: element(c)}, false)
	case aromaticOrganic[strings.ToUpper(c)] && c != strings.ToUpper(c):
		p.addAtom(chem.Vertex{Element: element(strings.ToUpper(c))}, true)
	default:
		return p.errorf(p.i, "unexpected character %q", s[0])
	}
	p.i++
	return nil
}

//element returns the symbol as it is kept in a Vertex, where carbon is the empty string.
func element(sym string) string {
	if sym == "C" {
		return ""
	}
	return sym
}

func (p *parser) ring() error {
	at := p.i
	if p.cur < 0 {
		return p.errorf(at, "ring bond without a preceding atom")
	}
	var label int
	if p.s[p.i] == '%' {
		if p.i+2 >= len(p.s) || !isDigit(p.s[p.i+1]) || !isDigit(p.s[p.i+2]) {
			return p.errorf(at, "'%%' must be followed by two digits")
		}
		label = int(p.s[p.i+1]-'0')*10 + int(p.s[p.i+2]-'0')
		p.i += 3
	} else {
		label = int(p.s[p.i] - '0')
		p.i++
	}
	o, ok := p.rings[label]
	if !ok {
		p.rings[label] = ringOpen{v: p.cur, bond: p.bond, at: at}
		p.bond = 0
		return nil
	}
	bt := o.bond
	if p.bond != 0 {
		if bt != 0 && bt != p.bond {
			return p.errorf(at, "ring bond %d closed with a different bond type", label)
		}
		bt = p.bond
	}
	if bt == 0 {
		bt = p.defaultBond(o.v, p.arom[p.cur])
	}
	if _, err := p.g.AddEdge(o.v, p.cur, bt); err != nil {
		return p.errorf(at, "ring bond %d: %s", label, err.Error())
	}
	delete(p.rings, label)
	p.bond = 0
	return nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

//number reads an unsigned integer. It returns -1 if there are no digits.
func (p *parser) number() int {
	n := -1
	for p.i < len(p.s) && isDigit(p.s[p.i]) {
		if n < 0 {
			n = 0
		}
		n = n*10 + int(p.s[p.i]-'0')
		p.i++
	}
	return n
}

func (p *parser) peek() byte {
	if p.i < len(p.s) {
		return p.s[p.i]
	}
	return 0
}

//bracket reads [isotope symbol chirality hcount charge class].
func (p *parser) bracket() error {
	at := p.i
	p.i++
	var v chem.Vertex
	if iso := p.number(); iso >= 0 {
		if iso == 0 {
			return p.errorf(at, "mass number 0")
		}
		v.Isotope = chem.IntPtr(iso)
	}
	sym, aromatic, ok := p.symbol()
	if !ok {
		return p.errorf(p.i, "unknown element in bracket atom")
	}
	v.Element = element(sym)
	if p.peek() == '@' {
		p.i++
		if p.peek() == '@' {
			p.i++
		} else if p.i+1 < len(p.s) && unicode.IsUpper(rune(p.s[p.i])) && unicode.IsUpper(rune(p.s[p.i+1])) {
			p.i += 2
			if p.number() < 0 {
				return p.errorf(p.i, "chirality class without a number")
			}
		}
	}
	h := 0
	if p.peek() == 'H' {
		p.i++
		if h = p.number(); h < 0 {
			h = 1
		}
	}
	v.HCount = chem.IntPtr(h)
	if c := p.peek(); c == '+' || c == '-' {
		sign := 1
		if c == '-' {
			sign = -1
		}
		p.i++
		n := p.number()
		if n < 0 {
			n = 1
			for p.peek() == c {
				n++
				p.i++
			}
		}
		v.Charge = sign * n
	}
	if p.peek() == ':' {
		p.i++
		if p.number() < 0 {
			return p.errorf(p.i, "atom class without a number")
		}
	}
	if p.peek() != ']' {
		return p.errorf(at, "unclosed or invalid bracket atom")
	}
	p.i++
	p.addAtom(v, aromatic)
	return nil
}

//symbol reads the element of a bracket atom.
func (p *parser) symbol() (string, bool, bool) {
	s := p.s[p.i:]
	if s == "" {
		return "", false, false
	}
	if unicode.IsUpper(rune(s[0])) {
		if len(s) > 1 && unicode.IsLower(rune(s[1])) && chem.IsElement(s[:2]) {
			p.i += 2
			return s[:2], false, true
		}
		if chem.IsElement(s[:1]) {
			p.i++
			return s[:1], false, true
		}
		return "", false, false
	}
	for _, ar := range []string{"se", "as", "te"} {
		if strings.HasPrefix(s, ar) {
			p.i += 2
			return strings.ToUpper(ar[:1]) + ar[1:], true, true
		}
	}
	if up := strings.ToUpper(s[:1]); aromaticOrganic[up] && s[:1] != up {
		p.i++
		return up, true, true
	}
	return "", false, false
}
