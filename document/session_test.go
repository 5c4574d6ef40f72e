/*
 * session_test.go, part of gosketch.
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

package document

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	chem "github.com/rmera/gosketch"
	"github.com/rmera/gosketch/action"
	"github.com/rmera/gosketch/config"
	"github.com/rmera/gosketch/molfile"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gonum.org/v1/gonum/spatial/r2"
)

func session(Te *testing.T, cfg *config.Config) *Session {
	S, err := New(cfg, zaptest.NewLogger(Te))
	require.NoError(Te, err)
	return S
}

func TestFormatFromPath(Te *testing.T) {
	for path, want := range map[string]Format{
		"benzene.mol":         Molfile,
		"dir/lib.SDF.gz":      SDF,
		"ethanol.smi.zst":     SMILES,
		"/tmp/x.y/glucose.sd": SDF,
	} {
		f, err := FormatFromPath(path)
		require.NoError(Te, err, path)
		require.Equal(Te, want, f, path)
	}
	for _, path := range []string{"protein.pdb", "noext", "x.gz"} {
		_, err := FormatFromPath(path)
		require.True(Te, errors.Is(err, ErrUnknownFormat), path)
	}
}

func TestImportSummary(Te *testing.T) {
	S := session(Te, nil)
	require.Equal(Te, Summary{}, S.Summary())
	var got []Summary
	S.OnSummary(func(s Summary) { got = append(got, s) })
	require.NoError(Te, S.Import(SMILES, "CCO ethanol\n"))
	require.Equal(Te, "ethanol", S.Name())
	require.False(Te, S.Modified())
	sum := S.Summary()
	require.Equal(Te, "C2H6O", sum.Formula)
	require.InDelta(Te, 46.07, sum.Weight, 0.01)
	require.Equal(Te, 3, sum.Atoms)
	require.Equal(Te, 2, sum.Bonds)
	require.Equal(Te, 1, sum.Fragments)
	require.Zero(Te, sum.Rings)
	require.Len(Te, got, 1)
	require.False(Te, S.Engine().CanUndo())

	//a failed import leaves everything as it was
	err := S.Import(SMILES, "C1CC")
	require.Error(Te, err)
	require.Equal(Te, sum, S.Summary())
	require.Equal(Te, 3, S.Graph().Len())
}

func TestEditing(Te *testing.T) {
	S := session(Te, nil)
	calls := 0
	S.OnSummary(func(Summary) { calls++ })
	require.NoError(Te, S.Commit(&action.AddVertex{}))
	a, err := S.Extend(0, "", chem.Single)
	require.NoError(Te, err)
	b, err := S.Extend(0, "", chem.Single)
	require.NoError(Te, err)
	c, err := S.Extend(0, "O", chem.Double)
	require.NoError(Te, err)
	require.True(Te, S.Modified())
	require.Equal(Te, 4, calls)
	require.Equal(Te, "C3H6O", S.Summary().Formula)

	g := S.Graph()
	center := g.VertexAt(0).Pos
	bond := func(id chem.VertexID) r2.Vec {
		v, _ := g.Vertex(id)
		return r2.Sub(v.Pos, center)
	}
	for _, id := range []chem.VertexID{a.ID(), b.ID(), c.ID()} {
		require.InDelta(Te, 1.5, r2.Norm(bond(id)), 1e-9)
	}
	require.InDelta(Te, -0.5, r2.Dot(r2.Unit(bond(a.ID())), r2.Unit(bond(b.ID()))), 1e-9)
	require.InDelta(Te, -1.0, bond(c.ID()).Y/1.5, 1e-9) //opposite to the other two

	ok, err := S.Undo()
	require.NoError(Te, err)
	require.True(Te, ok)
	require.Equal(Te, "C3H8", S.Summary().Formula)
	ok, err = S.Redo()
	require.NoError(Te, err)
	require.True(Te, ok)
	require.Equal(Te, "C3H6O", S.Summary().Formula)

	_, err = S.Extend(42, "N", chem.Single)
	require.True(Te, errors.Is(err, chem.ErrInvalidReference))
}

func TestSymmetrize(Te *testing.T) {
	S := session(Te, nil)
	require.NoError(Te, S.Import(SMILES, "CF"))
	sym, err := S.SymmetrizeAtom(0, 3)
	require.NoError(Te, err)
	require.Len(Te, sym.Added(), 2)
	require.Equal(Te, "CHF3", S.Summary().Formula)
	_, err = S.SymmetrizeAtom(0, 1)
	require.Error(Te, err)
	ok, _ := S.Undo()
	require.True(Te, ok)
	require.Equal(Te, 2, S.Summary().Atoms)

	require.NoError(Te, S.Import(SMILES, "CC"))
	_, err = S.SymmetrizeBond(0, 2)
	require.NoError(Te, err)
	require.Equal(Te, 2, S.Summary().Atoms)
}

func TestHistoryLimit(Te *testing.T) {
	cfg := config.Default()
	cfg.HistoryLimit = 2
	S := session(Te, cfg)
	for i := 0; i < 4; i++ {
		require.NoError(Te, S.Commit(&action.AddVertex{}))
	}
	require.Len(Te, S.Engine().History(), 2)

	cfg = config.Default()
	cfg.CoordinateDecimals = 9
	_, err := New(cfg, nil)
	require.True(Te, errors.Is(err, config.ErrInvalid))
}

func TestLoadSave(Te *testing.T) {
	dir := Te.TempDir()
	S := session(Te, nil)
	require.NoError(Te, S.Import(SMILES, "OC(=O)c1ccccc1 benzoic acid"))
	want := S.Summary()
	for _, name := range []string{"benzoic.mol", "benzoic.sdf.gz", "benzoic.smi.zst"} {
		path := filepath.Join(dir, name)
		require.NoError(Te, S.Save(path), name)
		require.False(Te, S.Modified())
		require.Equal(Te, path, S.Path())

		T := session(Te, nil)
		require.NoError(Te, T.Load(path), name)
		require.Equal(Te, want.Formula, T.Summary().Formula, name)
		require.Equal(Te, want.Bonds, T.Summary().Bonds, name)
		require.Equal(Te, want.Rings, T.Summary().Rings, name)
		require.Equal(Te, "benzoic acid", T.Name(), name)
	}
	err := S.Save(filepath.Join(dir, "benzoic.pdb"))
	require.True(Te, errors.Is(err, ErrUnknownFormat))

	T := session(Te, nil)
	require.NoError(Te, T.Load(filepath.Join(dir, "benzoic.mol")))
	T.SetName("")
	require.NoError(Te, T.Save(filepath.Join(dir, "renamed.mol")))
	require.Equal(Te, "renamed", T.Name())
}

func TestSDFImport(Te *testing.T) {
	var recs []*molfile.Record
	for _, s := range []string{"CCO", "[Na+].[Cl-]"} {
		S := session(Te, nil)
		require.NoError(Te, S.Import(SMILES, s))
		recs = append(recs, &molfile.Record{Graph: S.Graph(), Name: s})
	}
	recs[0].Data = []molfile.DataItem{{Name: "ID", Value: "E1"}}
	var b strings.Builder
	require.NoError(Te, molfile.WriteSDF(&b, recs, molfile.Options{}))

	S := session(Te, nil)
	require.NoError(Te, S.Import(SDF, b.String()))
	require.Equal(Te, 3, S.Summary().Fragments)
	require.Equal(Te, 5, S.Summary().Atoms)
	require.Equal(Te, "CCO", S.Name())
	out, err := S.Export(SDF)
	require.NoError(Te, err)
	require.Contains(Te, out, "> <ID>\nE1\n")
	require.True(Te, strings.HasSuffix(out, "$$$$\n"))
}
