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

package molfile

import (
	"fmt"
	"io"
	"strings"
	"time"

	chem "github.com/rmera/gosketch"
)

//DefaultProgram goes in the header of the files we write.
const DefaultProgram = "gosketch"

//Options controls the output.
type Options struct {
	Name     string //first header line, used by Write only.
	Program  string //at most 8 characters, longer names are cut.
	Decimals int    //decimals of the coordinates, 1 to 4. 0 means 4.
	Date     time.Time
}

func (o Options) program() string {
	if o.Program == "" {
		return DefaultProgram
	}
	return o.Program
}

func (o Options) decimals() int {
	if o.Decimals < 1 || o.Decimals > 4 {
		return 4
	}
	return o.Decimals
}

func (o Options) date() time.Time {
	if o.Date.IsZero() {
		return time.Now()
	}
	return o.Date
}

//Write returns g as a molfile.
func Write(g *chem.Graph, opts Options) (string, error) {
	var b strings.Builder
	if err := WriteRecord(&b, &Record{Graph: g, Name: opts.Name}, opts); err != nil {
		return "", chem.ErrDecorate(err, "Write")
	}
	return b.String(), nil
}

//WriteRecord writes the molfile of r, up to and including its "M  END" line.
//Data items are only written by WriteSDF.
func WriteRecord(out io.Writer, r *Record, opts Options) error {
	text, err := ctab(r, opts)
	if err != nil {
		return chem.ErrDecorate(err, "WriteRecord")
	}
	_, err = io.WriteString(out, text)
	return err
}

//WriteSDF writes the records as an SD file.
func WriteSDF(out io.Writer, recs []*Record, opts Options) error {
	for i, r := range recs {
		text, err := ctab(r, opts)
		if err != nil {
			return chem.ErrDecorate(err, fmt.Sprintf("WriteSDF: record %d", i+1))
		}
		var b strings.Builder
		b.WriteString(text)
		for _, d := range r.Data {
			fmt.Fprintf(&b, "> <%s>\n", d.Name)
			if d.Value != "" {
				b.WriteString(d.Value)
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
		b.WriteString("$$$$\n")
		if _, err := io.WriteString(out, b.String()); err != nil {
			return err
		}
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i]
	}
	return s
}

func ctab(r *Record, o Options) (string, error) {
	g := r.Graph
	if g == nil {
		g = chem.NewGraph()
	}
	if g.Len() > MaxCount || g.NumEdges() > MaxCount {
		return "", &Error{message: fmt.Sprintf("%d atoms, %d bonds", g.Len(), g.NumEdges()), kind: ErrTooLarge, deco: []string{"ctab"}}
	}
	d := o.decimals()
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", firstLine(r.Name))
	fmt.Fprintf(&b, "  %-8.8s%10s2D\n", o.program(), o.date().Format("0102061504"))
	fmt.Fprintf(&b, "%s\n", firstLine(r.Comment))
	fmt.Fprintf(&b, "%3d%3d  0  0  0  0  0  0  0  0999 V2000\n", g.Len(), g.NumEdges())
	var chg, iso [][2]int
	for i, id := range g.Vertices() {
		v, _ := g.Vertex(id)
		sym := v.Symbol()
		if len(sym) > 3 {
			return "", &Error{message: fmt.Sprintf("atom %d: symbol %q longer than 3 characters", i+1, sym), kind: chem.ErrInvalidValue, deco: []string{"ctab"}}
		}
		coords := fmt.Sprintf("%10.*f%10.*f%10.*f", d, v.Pos.X, d, v.Pos.Y, d, 0.0)
		if len(coords) != 30 {
			return "", &Error{message: fmt.Sprintf("atom %d: coordinates %v don't fit the atom block", i+1, v.Pos), kind: chem.ErrInvalidValue, deco: []string{"ctab"}}
		}
		code := 0
		if v.Charge != 0 {
			chg = append(chg, [2]int{i + 1, v.Charge})
			if v.Charge >= -3 && v.Charge <= 3 {
				code = 4 - v.Charge
			}
		}
		if v.Isotope != nil {
			iso = append(iso, [2]int{i + 1, *v.Isotope})
		}
		h := 0
		if v.HCount != nil {
			h = *v.HCount + 1
		}
		fmt.Fprintf(&b, "%s %-3s%2d%3d%3d%3d  0  0  0  0  0  0  0  0\n", coords, sym, 0, code, 0, h)
	}
	for _, eid := range g.Edges() {
		e, _ := g.Edge(eid)
		fmt.Fprintf(&b, "%3d%3d%3d%3d  0  0  0\n", g.Index(e.V1)+1, g.Index(e.V2)+1, int(e.Type), int(e.Stereo))
	}
	properties(&b, "CHG", chg)
	properties(&b, "ISO", iso)
	b.WriteString("M  END\n")
	return b.String(), nil
}

//properties writes "M  XXX" lines, 8 entries per line.
func properties(b *strings.Builder, tag string, pairs [][2]int) {
	for len(pairs) > 0 {
		n := min(8, len(pairs))
		fmt.Fprintf(b, "M  %s%3d", tag, n)
		for _, p := range pairs[:n] {
			fmt.Fprintf(b, "%4d%4d", p[0], p[1])
		}
		b.WriteString("\n")
		pairs = pairs[n:]
	}
}
