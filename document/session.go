/*
 * session.go, part of gosketch.
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

//Package document ties together the pieces needed to edit one molecule file:
//the graph, its undo history, the file converters and the values derived from
//the structure, which are recomputed after every change.
package document

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	chem "github.com/rmera/gosketch"
	"github.com/rmera/gosketch/action"
	"github.com/rmera/gosketch/chemgraph"
	"github.com/rmera/gosketch/config"
	"github.com/rmera/gosketch/molfile"
	"github.com/rmera/gosketch/smiles"
	"github.com/rmera/gosketch/store"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"
)

//Summary contains the values derived from the structure.
type Summary struct {
	Formula   string
	Weight    float64 //0 if some atom has an unknown element
	Atoms     int
	Bonds     int
	Fragments int
	Rings     int
}

//Summarize computes the summary of g.
func Summarize(g *chem.Graph) Summary {
	w, err := chem.MolecularWeight(g)
	if err != nil {
		w = 0
	}
	return Summary{
		Formula:   chem.Formula(g),
		Weight:    w,
		Atoms:     g.Len(),
		Bonds:     g.NumEdges(),
		Fragments: len(chemgraph.Fragments(g)),
		Rings:     len(chemgraph.Rings(g)),
	}
}

//Session is one open document. It is not safe for concurrent use.
type Session struct {
	ID uuid.UUID

	cfg       *config.Config
	log       *zap.Logger
	engine    *action.Engine
	summary   Summary
	listeners []func(Summary)
	modified  bool

	//from the last file read, written back on save.
	path    string
	name    string
	comment string
	data    []molfile.DataItem
}

//New returns a session with an empty graph. A nil cfg means the default
//configuration, and a nil logger discards everything.
func New(cfg *config.Config, log *zap.Logger) (*Session, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, chem.ErrDecorate(err, "document.New")
	}
	if log == nil {
		log = zap.NewNop()
	}
	S := &Session{ID: uuid.New(), cfg: cfg}
	S.log = log.With(zap.String("session", S.ID.String()))
	S.engine = action.NewEngine(nil, action.WithHistoryLimit(cfg.HistoryLimit), action.WithLogger(S.log))
	S.engine.OnChange(S.changed)
	S.summary = Summarize(S.engine.Graph())
	return S, nil
}

//Engine returns the undo engine of the session.
func (S *Session) Engine() *action.Engine { return S.engine }

//Graph returns the structure being edited. Changes must go through Commit.
func (S *Session) Graph() *chem.Graph { return S.engine.Graph() }

//Config returns the configuration of the session.
func (S *Session) Config() *config.Config { return S.cfg }

//Path returns the file last loaded or saved, or "".
func (S *Session) Path() string { return S.path }

//Name returns the name of the molecule, from the file or set with SetName.
func (S *Session) Name() string { return S.name }

//SetName sets the name written in the Molfile header and after the SMILES string.
func (S *Session) SetName(name string) { S.name = name }

//Modified returns true if there were changes since the last load or save.
func (S *Session) Modified() bool { return S.modified }

//Summary returns the values derived from the current structure.
func (S *Session) Summary() Summary { return S.summary }

//OnSummary registers a function called with the new summary after every change.
func (S *Session) OnSummary(f func(Summary)) {
	S.listeners = append(S.listeners, f)
}

func (S *Session) changed(g *chem.Graph, ev action.Event) {
	S.modified = true
	S.refresh()
}

func (S *Session) refresh() {
	S.summary = Summarize(S.engine.Graph())
	for _, f := range S.listeners {
		f(S.summary)
	}
}

//Commit applies a through the engine.
func (S *Session) Commit(a action.Action) error {
	return chem.ErrDecorate(S.engine.Commit(a), "Session.Commit")
}

//Undo reverts the last change. It returns false if there was nothing to undo.
func (S *Session) Undo() (bool, error) {
	ok, err := S.engine.Undo()
	return ok, chem.ErrDecorate(err, "Session.Undo")
}

//Redo reapplies the last undone change. It returns false if there was nothing to redo.
func (S *Session) Redo() (bool, error) {
	ok, err := S.engine.Redo()
	return ok, chem.ErrDecorate(err, "Session.Redo")
}

//Extend adds an atom of the given element bonded to from, one bond length away.
//The new bond points away from the other neighbors of from: at 120 degrees from
//a single neighbor, or opposite to the average direction of several.
func (S *Session) Extend(from chem.VertexID, element string, bt chem.BondType) (*action.AddChain, error) {
	g := S.Graph()
	v, ok := g.Vertex(from)
	if !ok {
		return nil, &Error{message: fmt.Sprintf("atom %d doesn't exist", from), kind: chem.ErrInvalidReference, deco: []string{"Session.Extend"}}
	}
	dir := S.direction(v)
	a := &action.AddChain{
		From:   from,
		Vertex: chem.Vertex{Element: element, Pos: r2.Add(v.Pos, r2.Scale(S.cfg.BondLength, dir))},
		Type:   bt,
	}
	if err := S.Commit(a); err != nil {
		return nil, chem.ErrDecorate(err, "Session.Extend")
	}
	return a, nil
}

//direction returns the unit vector along which a new bond from v is drawn.
func (S *Session) direction(v chem.Vertex) r2.Vec {
	g := S.Graph()
	neigh := g.Neighbors(v.ID)
	switch len(neigh) {
	case 0:
		return r2.Vec{X: math.Cos(math.Pi / 6), Y: math.Sin(math.Pi / 6)}
	case 1:
		n, _ := g.Vertex(neigh[0])
		d := r2.Sub(n.Pos, v.Pos)
		if r2.Norm(d) == 0 {
			return r2.Vec{X: 1}
		}
		return chem.Rotate(r2.Unit(d), r2.Vec{}, 2*math.Pi/3)
	}
	var sum r2.Vec
	for _, id := range neigh {
		n, _ := g.Vertex(id)
		if d := r2.Sub(n.Pos, v.Pos); r2.Norm(d) > 0 {
			sum = r2.Add(sum, r2.Unit(d))
		}
	}
	if r2.Norm(sum) < 1e-6 {
		return r2.Vec{X: 1}
	}
	return r2.Scale(-1, r2.Unit(sum))
}

//SymmetrizeAtom makes the molecule containing the atom fold-fold symmetric about it.
func (S *Session) SymmetrizeAtom(v chem.VertexID, fold int) (*action.Symmetrize, error) {
	a := &action.Symmetrize{Vertex: v, Fold: fold, Tolerance: S.cfg.MergeTolerance}
	if err := S.Commit(a); err != nil {
		return nil, chem.ErrDecorate(err, "Session.SymmetrizeAtom")
	}
	return a, nil
}

//SymmetrizeBond makes the molecule containing the bond fold-fold symmetric about its midpoint.
func (S *Session) SymmetrizeBond(e chem.EdgeID, fold int) (*action.Symmetrize, error) {
	a := &action.Symmetrize{Bond: e, OnBond: true, Fold: fold, Tolerance: S.cfg.MergeTolerance}
	if err := S.Commit(a); err != nil {
		return nil, chem.ErrDecorate(err, "Session.SymmetrizeBond")
	}
	return a, nil
}

//Import replaces the structure with the one in text. The history is cleared,
//as loading a document can't be undone. On error the session is unchanged.
func (S *Session) Import(f Format, text string) error {
	var g *chem.Graph
	name, comment := "", ""
	var data []molfile.DataItem
	switch f {
	case Molfile:
		r, err := molfile.ParseRecord(text)
		if err != nil {
			return chem.ErrDecorate(err, "Session.Import")
		}
		g, name, comment, data = r.Graph, r.Name, r.Comment, r.Data
	case SDF:
		recs, err := molfile.ParseSDF(text)
		if err != nil {
			return chem.ErrDecorate(err, "Session.Import")
		}
		g = chem.NewGraph()
		for i, r := range recs {
			if i == 0 {
				name, comment, data = r.Name, r.Comment, r.Data
			}
			appendGraph(g, r.Graph)
		}
	case SMILES:
		var err error
		if g, err = smiles.Parse(text); err != nil {
			return chem.ErrDecorate(err, "Session.Import")
		}
		name = smilesName(text)
	default:
		return &Error{message: f.String(), kind: ErrUnknownFormat, deco: []string{"Session.Import"}}
	}
	S.engine.Reset(g)
	S.name, S.comment, S.data = name, comment, data
	S.modified = false
	S.refresh()
	return nil
}

//Export returns the structure in the given format.
func (S *Session) Export(f Format) (string, error) {
	g := S.Graph()
	opts := molfile.Options{Name: S.name, Program: S.cfg.ProgramName, Decimals: S.cfg.CoordinateDecimals}
	switch f {
	case Molfile:
		out, err := molfile.Write(g, opts)
		return out, chem.ErrDecorate(err, "Session.Export")
	case SDF:
		var b strings.Builder
		rec := &molfile.Record{Graph: g, Name: S.name, Comment: S.comment, Data: S.data}
		if err := molfile.WriteSDF(&b, []*molfile.Record{rec}, opts); err != nil {
			return "", chem.ErrDecorate(err, "Session.Export")
		}
		return b.String(), nil
	case SMILES:
		out, err := smiles.Write(g)
		if err != nil {
			return "", chem.ErrDecorate(err, "Session.Export")
		}
		if S.name != "" {
			out += " " + S.name
		}
		return out + "\n", nil
	}
	return "", &Error{message: f.String(), kind: ErrUnknownFormat, deco: []string{"Session.Export"}}
}

//Load reads the file at path, choosing the converter from its extension.
func (S *Session) Load(path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return chem.ErrDecorate(err, "Session.Load")
	}
	text, err := store.ReadText(path)
	if err != nil {
		return chem.ErrDecorate(err, "Session.Load")
	}
	if err := S.Import(f, text); err != nil {
		S.log.Warn("load failed", zap.String("path", path), zap.Stringer("format", f), zap.Error(err))
		return chem.ErrDecorate(err, "Session.Load")
	}
	S.path = path
	if S.name == "" {
		S.name = baseName(path)
	}
	S.log.Info("loaded", zap.String("path", path), zap.Stringer("format", f),
		zap.Int("atoms", S.summary.Atoms), zap.Int("bonds", S.summary.Bonds))
	return nil
}

//Save writes the structure to path, in the format its extension names.
func (S *Session) Save(path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return chem.ErrDecorate(err, "Session.Save")
	}
	if S.name == "" {
		S.name = baseName(path)
	}
	text, err := S.Export(f)
	if err != nil {
		return chem.ErrDecorate(err, "Session.Save")
	}
	if err := store.WriteText(path, text); err != nil {
		return chem.ErrDecorate(err, "Session.Save")
	}
	S.path = path
	S.modified = false
	S.log.Info("saved", zap.String("path", path), zap.Stringer("format", f),
		zap.Int("atoms", S.summary.Atoms), zap.Int("bonds", S.summary.Bonds))
	return nil
}

//baseName returns the file name without directory or extensions, "benzene" for "a/benzene.mol.gz".
func baseName(path string) string {
	b := filepath.Base(store.TrimCompression(path))
	return strings.TrimSuffix(b, filepath.Ext(b))
}

//smilesName returns what follows the SMILES string on its line.
func smilesName(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return ""
	}
	return strings.Join(fields[1:], " ")
}

//appendGraph adds copies of the atoms and bonds of src to dst.
func appendGraph(dst, src *chem.Graph) {
	ids := make(map[chem.VertexID]chem.VertexID, src.Len())
	for _, id := range src.Vertices() {
		v, _ := src.Vertex(id)
		ids[id] = dst.AddVertex(v)
	}
	for _, eid := range src.Edges() {
		e, _ := src.Edge(eid)
		//the endpoints are new atoms, so this can't fail.
		n, _ := dst.AddEdge(ids[e.V1], ids[e.V2], e.Type)
		dst.SetStereo(n, e.Stereo)
	}
}
