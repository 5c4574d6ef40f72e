/*
 * molfile_test.go, part of gosketch.
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
	"errors"
	"strings"
	"testing"
	"time"

	chem "github.com/rmera/gosketch"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

var when = time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)

//sameGraph compares two graphs atom by atom and bond by bond, in order.
func sameGraph(Te *testing.T, a, b *chem.Graph) {
	Te.Helper()
	require.Equal(Te, a.Len(), b.Len())
	require.Equal(Te, a.NumEdges(), b.NumEdges())
	for i := 0; i < a.Len(); i++ {
		va, vb := a.VertexAt(i), b.VertexAt(i)
		require.Equal(Te, va.Symbol(), vb.Symbol(), "atom %d", i+1)
		require.InDelta(Te, va.Pos.X, vb.Pos.X, 1e-6)
		require.InDelta(Te, va.Pos.Y, vb.Pos.Y, 1e-6)
		require.Equal(Te, va.Charge, vb.Charge, "atom %d", i+1)
		require.Equal(Te, va.HCount, vb.HCount, "atom %d", i+1)
		require.Equal(Te, va.Isotope, vb.Isotope, "atom %d", i+1)
	}
	for i := 0; i < a.NumEdges(); i++ {
		ea, eb := a.EdgeAt(i), b.EdgeAt(i)
		require.Equal(Te, a.Index(ea.V1), b.Index(eb.V1))
		require.Equal(Te, a.Index(ea.V2), b.Index(eb.V2))
		require.Equal(Te, ea.Type, eb.Type)
		require.Equal(Te, ea.Stereo, eb.Stereo)
	}
}

func sample(Te *testing.T) *chem.Graph {
	g := chem.NewGraph()
	c := g.AddVertex(chem.Vertex{Pos: r2.Vec{X: -1.2990, Y: 0.75}})
	n := g.AddVertex(chem.Vertex{Element: "N", Charge: 1, Pos: r2.Vec{X: 0, Y: 1.5}})
	o := g.AddVertex(chem.Vertex{Element: "O", Charge: -1, Pos: r2.Vec{X: 1.299, Y: 0.75}})
	d := g.AddVertex(chem.Vertex{Element: "H", Isotope: chem.IntPtr(2), Pos: r2.Vec{X: 0, Y: 3}})
	fe := g.AddVertex(chem.Vertex{Element: "Fe", Charge: 4, HCount: chem.IntPtr(0), Pos: r2.Vec{X: 12.5, Y: -7.125}})
	for _, b := range []struct {
		a, b chem.VertexID
		t    chem.BondType
		s    chem.StereoType
	}{
		{c, n, chem.Single, chem.StereoUp},
		{n, o, chem.Double, chem.StereoNone},
		{n, d, chem.Single, chem.StereoDown},
		{o, fe, chem.AnyBond, chem.StereoEither},
	} {
		id, err := g.AddEdge(b.a, b.b, b.t)
		require.NoError(Te, err)
		require.NoError(Te, g.SetStereo(id, b.s))
	}
	return g
}

func TestRoundTrip(Te *testing.T) {
	g := sample(Te)
	text, err := Write(g, Options{Name: "zwitterion", Date: when})
	require.NoError(Te, err)
	lines := strings.Split(text, "\n")
	require.Equal(Te, "zwitterion", lines[0])
	require.Equal(Te, "  gosketch0314261509"+"2D", lines[1])
	require.Equal(Te, "  5  4  0  0  0  0  0  0  0  0999 V2000", lines[3])
	require.Equal(Te, "   -1.2990    0.7500    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0", lines[4])
	require.Equal(Te, "    0.0000    1.5000    0.0000 N   0  3  0  0  0  0  0  0  0  0  0  0", lines[5])
	require.Equal(Te, "   12.5000   -7.1250    0.0000 Fe  0  0  0  1  0  0  0  0  0  0  0  0", lines[8])
	require.Equal(Te, "  1  2  1  1  0  0  0", lines[9])
	require.Equal(Te, "  3  5  8  4  0  0  0", lines[12])
	require.Equal(Te, "M  CHG  3   2   1   3  -1   5   4", lines[13])
	require.Equal(Te, "M  ISO  1   4   2", lines[14])
	require.Equal(Te, "M  END", lines[15])
	back, err := Parse(text)
	require.NoError(Te, err)
	sameGraph(Te, g, back)
}

func TestBondCodes(Te *testing.T) {
	text := `

  hand made
  2  1  0  0  0  0  0  0  0  0999 V2000
    0.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0
    1.5000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0
  1  2  6  4  0  0  0
M  END
`
	g, err := Parse(text)
	require.NoError(Te, err)
	e := g.EdgeAt(0)
	require.Equal(Te, chem.SingleOrAromatic, e.Type)
	require.Equal(Te, chem.StereoEither, e.Stereo)
	require.Equal(Te, "", g.VertexAt(0).Element)
	out, err := Write(g, Options{})
	require.NoError(Te, err)
	require.Contains(Te, out, "\n  1  2  6  4  0  0  0\n")
}

func TestAtomBlockCharges(Te *testing.T) {
	text := `ammonium


  1  0  0  0  0  0  0  0  0  0999 V2000
    0.0000    0.0000    0.0000 N   1  3  0  0  0  0  0  0  0  0  0  0
M  END
`
	g, err := Parse(text)
	require.NoError(Te, err)
	v := g.VertexAt(0)
	require.Equal(Te, 1, v.Charge)
	require.Equal(Te, 15, *v.Isotope)
}

func TestErrors(Te *testing.T) {
	header := "x\n\n\n"
	atom := "    0.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0\n"
	cases := []struct {
		name string
		text string
		line int
	}{
		{"empty", "", 1},
		{"counts", header + "  a  0\n", 4},
		{"truncated", header + "  2  0  0  0  0  0  0  0  0  0999 V2000\n" + atom, 6},
		{"coordinate", header + "  1  0  0  0  0  0  0  0  0  0999 V2000\n" + "    0.0x00" + atom[10:], 5},
		{"charge", header + "  1  0  0  0  0  0  0  0  0  0999 V2000\n" + atom[:36] + "  9" + atom[39:], 5},
		{"index", header + "  1  1  0  0  0  0  0  0  0  0999 V2000\n" + atom + "  1  2  1  0\n", 6},
		{"type", header + "  2  1  0  0  0  0  0  0  0  0999 V2000\n" + atom + atom + "  1  2  9  0\n", 7},
		{"stereo", header + "  2  1  0  0  0  0  0  0  0  0999 V2000\n" + atom + atom + "  1  2  1  5\n", 7},
		{"duplicate", header + "  2  2  0  0  0  0  0  0  0  0999 V2000\n" + atom + atom + "  1  2  1  0\n  2  1  1  0\n", 8},
		{"property", header + "  1  0  0  0  0  0  0  0  0  0999 V2000\n" + atom + "M  CHG  2   1   1\n", 6},
		{"v3000", header + "  0  0  0     0  0            999 V3000\n", 4},
	}
	for _, c := range cases {
		_, err := Parse(c.text)
		require.Error(Te, err, c.name)
		require.True(Te, errors.Is(err, ErrMalformed), c.name)
		var merr *Error
		require.True(Te, errors.As(err, &merr), c.name)
		require.Equal(Te, c.line, merr.Line, c.name)
		require.Contains(Te, err.Error(), "line", c.name)
	}
}

func TestTooLarge(Te *testing.T) {
	g := chem.NewGraph()
	for i := 0; i < MaxCount+1; i++ {
		g.AddVertex(chem.Vertex{Pos: r2.Vec{X: float64(i)}})
	}
	_, err := Write(g, Options{})
	require.True(Te, errors.Is(err, ErrTooLarge))
}

func TestDecimals(Te *testing.T) {
	g := chem.NewGraph()
	g.AddVertex(chem.Vertex{Pos: r2.Vec{X: 1.23456, Y: -2}})
	text, err := Write(g, Options{Decimals: 2, Program: "averylongname"})
	require.NoError(Te, err)
	lines := strings.Split(text, "\n")
	require.True(Te, strings.HasPrefix(lines[1], "  averylon"))
	require.True(Te, strings.HasPrefix(lines[4], "      1.23     -2.00      0.00 C "))
}

func TestSDF(Te *testing.T) {
	recs := []*Record{
		{Graph: sample(Te), Name: "first", Data: []DataItem{{Name: "ID", Value: "17"}, {Name: "NOTE", Value: "two\nlines"}}},
		{Graph: chem.NewGraph(), Name: "empty"},
	}
	var b strings.Builder
	require.NoError(Te, WriteSDF(&b, recs, Options{Date: when}))
	require.Equal(Te, 2, strings.Count(b.String(), "$$$$\n"))
	back, err := ParseSDF(b.String())
	require.NoError(Te, err)
	require.Len(Te, back, 2)
	require.Equal(Te, "first", back[0].Name)
	sameGraph(Te, recs[0].Graph, back[0].Graph)
	id, ok := back[0].Get("ID")
	require.True(Te, ok)
	require.Equal(Te, "17", id)
	note, _ := back[0].Get("NOTE")
	require.Equal(Te, "two\nlines", note)
	require.Equal(Te, 0, back[1].Graph.Len())

	first, err := ParseRecord(b.String())
	require.NoError(Te, err)
	require.Equal(Te, "first", first.Name)

	//line numbers in an SD file count from the start of the file.
	bad := strings.Replace(b.String(), "empty\n", "empty\n\n\n  1  0\n", 1)
	_, err = ParseSDF(bad)
	var merr *Error
	require.True(Te, errors.As(err, &merr))
	require.Greater(Te, merr.Line, 20)
}
