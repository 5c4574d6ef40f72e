/*
 * molfile.go, part of gosketch.
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

//Package molfile reads and writes MDL V2000 molfiles and SD files.
//
//The bond type and stereo codes of the format are the numeric values of
//chem.BondType and chem.StereoType, so they go through unchanged.
//The z coordinate is written as 0 and ignored when reading.
package molfile

import (
	"math"
	"strconv"
	"strings"

	chem "github.com/rmera/gosketch"
	"gonum.org/v1/gonum/spatial/r2"
)

//MaxCount is the largest number of atoms, or of bonds, a V2000 counts line can hold.
const MaxCount = 999

//DataItem is one "> <name>" entry of an SD file record.
type DataItem struct {
	Name  string
	Value string
}

//Record is a molecule together with the header lines of its molfile and,
//in an SD file, its data items.
type Record struct {
	Graph   *chem.Graph
	Name    string
	Comment string
	Data    []DataItem
}

//Get returns the value of the first data item with the given name.
func (R *Record) Get(name string) (string, bool) {
	for _, d := range R.Data {
		if d.Name == name {
			return d.Value, true
		}
	}
	return "", false
}

//charge codes of the atom block, indexed by code. Code 4 is a doublet radical,
//which we read as neutral.
var codeCharges = [8]int{0, 3, 2, 1, 0, -1, -2, -3}

//Parse reads the first molecule in text.
func Parse(text string) (*chem.Graph, error) {
	r, err := ParseRecord(text)
	if err != nil {
		return nil, chem.ErrDecorate(err, "Parse")
	}
	return r.Graph, nil
}

//ParseRecord reads the first molecule in text, with its header and data items.
func ParseRecord(text string) (*Record, error) {
	lines := splitLines(text)
	end := len(lines)
	for i, l := range lines {
		if isTerminator(l) {
			end = i
			break
		}
	}
	r, err := parseRecord(lines[:end], 1)
	if err != nil {
		return nil, chem.ErrDecorate(err, "ParseRecord")
	}
	return r, nil
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	//a final newline doesn't start a new line.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func isTerminator(l string) bool {
	return strings.TrimRight(l, " \t") == "$$$$"
}

//parseRecord reads a connection table plus whatever data items follow it.
//first is the line number of lines[0].
func parseRecord(lines []string, first int) (*Record, error) {
	r, rest, err := parseCTab(lines, first)
	if err != nil {
		return nil, err
	}
	r.Data = parseData(lines[rest:])
	return r, nil
}

//field returns the trimmed columns [from, to) of line, or as much of them as the line has.
func field(line string, from, to int) string {
	if from >= len(line) {
		return ""
	}
	if to > len(line) {
		to = len(line)
	}
	return strings.TrimSpace(line[from:to])
}

//intField is like field, but parses an integer. Blank fields are 0.
func intField(line string, from, to int) (int, error) {
	s := field(line, from, to)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func parseCTab(lines []string, first int) (*Record, int, error) {
	if len(lines) < 4 {
		return nil, 0, malformed(first+len(lines), "parseCTab", "header and counts line need 4 lines, got %d", len(lines))
	}
	r := &Record{Name: strings.TrimRight(lines[0], " "), Comment: strings.TrimRight(lines[2], " ")}
	counts := lines[3]
	if strings.Contains(counts, "V3000") {
		return nil, 0, malformed(first+3, "parseCTab", "V3000 connection tables are not supported")
	}
	if len(counts) < 6 {
		return nil, 0, malformed(first+3, "parseCTab", "counts line too short: %q", counts)
	}
	na, err := intField(counts, 0, 3)
	if err != nil || na < 0 {
		return nil, 0, malformed(first+3, "parseCTab", "bad atom count %q", counts[0:3])
	}
	nb, err := intField(counts, 3, 6)
	if err != nil || nb < 0 {
		return nil, 0, malformed(first+3, "parseCTab", "bad bond count %q", counts[3:6])
	}
	if len(lines) < 4+na+nb {
		return nil, 0, malformed(first+len(lines), "parseCTab", "truncated file: %d atoms and %d bonds declared", na, nb)
	}
	g := chem.NewGraph()
	ids := make([]chem.VertexID, na)
	for i := 0; i < na; i++ {
		n := 4 + i
		v, err := parseAtom(lines[n], first+n)
		if err != nil {
			return nil, 0, err
		}
		ids[i] = g.AddVertex(v)
	}
	for i := 0; i < nb; i++ {
		n := 4 + na + i
		if err := parseBond(g, ids, lines[n], first+n); err != nil {
			return nil, 0, err
		}
	}
	rest, err := parseProperties(g, ids, lines, 4+na+nb, first)
	if err != nil {
		return nil, 0, err
	}
	r.Graph = g
	return r, rest, nil
}

//parseAtom reads an atom block line:
//xxxxx.xxxxyyyyy.yyyyzzzzz.zzzz aaaddcccssshhh...
func parseAtom(line string, lineno int) (chem.Vertex, error) {
	var v chem.Vertex
	if len(line) < 34 {
		return v, malformed(lineno, "parseAtom", "atom line too short: %q", line)
	}
	x, err := strconv.ParseFloat(field(line, 0, 10), 64)
	if err != nil {
		return v, malformed(lineno, "parseAtom", "bad x coordinate %q", line[0:10])
	}
	y, err := strconv.ParseFloat(field(line, 10, 20), 64)
	if err != nil {
		return v, malformed(lineno, "parseAtom", "bad y coordinate %q", line[10:20])
	}
	if _, err := strconv.ParseFloat(field(line, 20, 30), 64); err != nil {
		return v, malformed(lineno, "parseAtom", "bad z coordinate %q", line[20:30])
	}
	v.Pos = r2.Vec{X: x, Y: y}
	sym := field(line, 31, 34)
	if sym == "" {
		return v, malformed(lineno, "parseAtom", "missing element symbol")
	}
	if sym != "C" {
		v.Element = sym
	}
	diff, err := intField(line, 34, 36)
	if err != nil {
		return v, malformed(lineno, "parseAtom", "bad mass difference %q", field(line, 34, 36))
	}
	if m, ok := chem.Mass(sym); ok && diff != 0 {
		v.Isotope = chem.IntPtr(int(math.Round(m)) + diff)
	}
	code, err := intField(line, 36, 39)
	if err != nil || code < 0 || code >= len(codeCharges) {
		return v, malformed(lineno, "parseAtom", "bad charge code %q", field(line, 36, 39))
	}
	v.Charge = codeCharges[code]
	h, err := intField(line, 42, 45)
	if err != nil || h < 0 {
		return v, malformed(lineno, "parseAtom", "bad hydrogen count %q", field(line, 42, 45))
	}
	if h > 0 {
		v.HCount = chem.IntPtr(h - 1)
	}
	return v, nil
}

//parseBond reads a bond block line: 111222tttsss...
func parseBond(g *chem.Graph, ids []chem.VertexID, line string, lineno int) error {
	if len(line) < 9 {
		return malformed(lineno, "parseBond", "bond line too short: %q", line)
	}
	var f [4]int
	for i := range f {
		n, err := intField(line, 3*i, 3*i+3)
		if err != nil {
			return malformed(lineno, "parseBond", "bad field %d: %q", i+1, field(line, 3*i, 3*i+3))
		}
		f[i] = n
	}
	for _, a := range f[:2] {
		if a < 1 || a > len(ids) {
			return malformed(lineno, "parseBond", "atom index %d out of range [1, %d]", a, len(ids))
		}
	}
	bt := chem.BondType(f[2])
	if !bt.Valid() {
		return malformed(lineno, "parseBond", "unknown bond type %d", f[2])
	}
	st := chem.StereoType(f[3])
	if f[3] == 3 {
		st = chem.StereoEither //"cis or trans" on double bonds
	}
	if !st.Valid() {
		return malformed(lineno, "parseBond", "unknown stereo code %d", f[3])
	}
	id, err := g.AddEdge(ids[f[0]-1], ids[f[1]-1], bt)
	if err != nil {
		return malformed(lineno, "parseBond", "%s", err.Error())
	}
	g.SetStereo(id, st)
	return nil
}

//parseProperties reads the property block, starting at lines[from], and returns the index
//of the first line after it. A missing "M  END" is tolerated.
func parseProperties(g *chem.Graph, ids []chem.VertexID, lines []string, from, first int) (int, error) {
	chgseen := false
	for i := from; i < len(lines); i++ {
		l := lines[i]
		switch {
		case strings.HasPrefix(l, "M  END"):
			return i + 1, nil
		case strings.HasPrefix(l, ">"):
			return i, nil
		case strings.HasPrefix(l, "M  CHG"):
			pairs, err := propertyPairs(l, len(ids), first+i)
			if err != nil {
				return 0, err
			}
			if !chgseen {
				//the first CHG line overrides every charge in the atom block.
				for _, id := range ids {
					g.SetCharge(id, 0)
				}
				chgseen = true
			}
			for _, p := range pairs {
				g.SetCharge(ids[p[0]-1], p[1])
			}
		case strings.HasPrefix(l, "M  ISO"):
			pairs, err := propertyPairs(l, len(ids), first+i)
			if err != nil {
				return 0, err
			}
			for _, p := range pairs {
				if p[1] <= 0 {
					return 0, malformed(first+i, "parseProperties", "mass number %d", p[1])
				}
				g.SetIsotope(ids[p[0]-1], chem.IntPtr(p[1]))
			}
		}
	}
	return len(lines), nil
}

//propertyPairs parses "M  XXXnn8 aaa vvv ..." lines.
func propertyPairs(l string, natoms, lineno int) ([][2]int, error) {
	n, err := intField(l, 6, 9)
	if err != nil || n < 1 || n > 8 {
		return nil, malformed(lineno, "propertyPairs", "bad entry count %q", field(l, 6, 9))
	}
	fields := strings.Fields(l[min(9, len(l)):])
	if len(fields) != 2*n {
		return nil, malformed(lineno, "propertyPairs", "%d entries declared, %d values found", n, len(fields))
	}
	ret := make([][2]int, n)
	for i := range ret {
		a, err1 := strconv.Atoi(fields[2*i])
		v, err2 := strconv.Atoi(fields[2*i+1])
		if err1 != nil || err2 != nil {
			return nil, malformed(lineno, "propertyPairs", "bad entry %q %q", fields[2*i], fields[2*i+1])
		}
		if a < 1 || a > natoms {
			return nil, malformed(lineno, "propertyPairs", "atom index %d out of range [1, %d]", a, natoms)
		}
		ret[i] = [2]int{a, v}
	}
	return ret, nil
}

//parseData reads SD data items. Lines that are not part of one are skipped.
func parseData(lines []string) []DataItem {
	var ret []DataItem
	for i := 0; i < len(lines); i++ {
		l := lines[i]
		if !strings.HasPrefix(l, ">") {
			continue
		}
		d := DataItem{}
		if a, b := strings.Index(l, "<"), strings.LastIndex(l, ">"); a >= 0 && b > a {
			d.Name = l[a+1 : b]
		}
		var val []string
		for i++; i < len(lines) && strings.TrimSpace(lines[i]) != ""; i++ {
			val = append(val, lines[i])
		}
		d.Value = strings.Join(val, "\n")
		ret = append(ret, d)
	}
	return ret
}

//ParseSDF reads every record of an SD file. Line numbers in errors refer to the whole text.
func ParseSDF(text string) ([]*Record, error) {
	lines := splitLines(text)
	var ret []*Record
	start := 0
	for i := 0; i <= len(lines); i++ {
		if i < len(lines) && !isTerminator(lines[i]) {
			continue
		}
		block := lines[start:i]
		if !blank(block) {
			r, err := parseRecord(block, start+1)
			if err != nil {
				return nil, chem.ErrDecorate(err, "ParseSDF")
			}
			ret = append(ret, r)
		}
		start = i + 1
	}
	return ret, nil
}

func blank(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return false
		}
	}
	return true
}
