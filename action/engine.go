/*
 * engine.go, part of gosketch.
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

//Package action implements the edit history of a molecular drawing.
//Every change to a chem.Graph made while editing is an Action, which the
//Engine applies, records, and can roll back and apply again.
package action

import (
	chem "github.com/rmera/gosketch"
	"go.uber.org/zap"
)

//Direction tells which engine operation produced an application of an action.
type Direction int

const (
	Do Direction = iota
	Update
	Undo
	Redo
)

func (D Direction) String() string {
	switch D {
	case Do:
		return "DO"
	case Update:
		return "UPDATE"
	case Undo:
		return "UNDO"
	case Redo:
		return "REDO"
	}
	return "UNKNOWN"
}

//Entry is an element of the history. Direction is the last operation that
//touched it.
type Entry struct {
	Action    Action
	Direction Direction
}

//Event is passed to the listeners after each change.
type Event struct {
	Direction Direction
	Action    Action
}

//Listener is called synchronously after every commit, undo and redo, when
//the graph is already in its new state.
type Listener func(g *chem.Graph, ev Event)

//Engine keeps the undo and redo stacks of one graph.
//It is not safe for concurrent use.
type Engine struct {
	graph     *chem.Graph
	undo      []*Entry
	redo      []*Entry
	limit     int
	listeners []Listener
	log       *zap.Logger
}

//Option configures an Engine.
type Option func(*Engine)

//WithHistoryLimit keeps at most n entries in the undo stack, dropping the
//oldest ones. 0 (the default) means no limit.
func WithHistoryLimit(n int) Option {
	return func(E *Engine) {
		if n > 0 {
			E.limit = n
		}
	}
}

//WithLogger sets the logger. The default one discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(E *Engine) {
		if l != nil {
			E.log = l
		}
	}
}

//NewEngine returns an engine editing g. A nil g means a new, empty graph.
func NewEngine(g *chem.Graph, opts ...Option) *Engine {
	if g == nil {
		g = chem.NewGraph()
	}
	E := &Engine{graph: g, log: zap.NewNop()}
	for _, o := range opts {
		o(E)
	}
	return E
}

//Graph returns the graph being edited. It must not be modified other than
//through the engine.
func (E *Engine) Graph() *chem.Graph {
	return E.graph
}

//Reset replaces the graph and clears the history. It is meant for loading a file,
//which is not undoable.
func (E *Engine) Reset(g *chem.Graph) {
	if g == nil {
		g = chem.NewGraph()
	}
	E.graph = g
	E.Clear()
}

//Clear empties both stacks.
func (E *Engine) Clear() {
	E.undo = nil
	E.redo = nil
}

//OnChange registers a listener.
func (E *Engine) OnChange(l Listener) {
	E.listeners = append(E.listeners, l)
}

func (E *Engine) notify(d Direction, a Action) {
	for _, l := range E.listeners {
		l(E.graph, Event{Direction: d, Action: a})
	}
}

//Commit applies a and records it. If a can be merged with the last entry
//of the history (a continuation of the same drag, for instance) it is, and
//a single Undo will revert both. Committing clears the redo stack.
//If a can't be applied, an error is returned and the graph is left as it was.
func (E *Engine) Commit(a Action) error {
	name, do, _, err := steps(a)
	if err != nil {
		return err
	}
	if err := do(E.graph); err != nil {
		E.log.Debug("action rejected", zap.String("action", name), zap.Error(err))
		return chem.ErrDecorate(err, "Commit")
	}
	E.redo = nil
	if n := len(E.undo); n > 0 && merge(E.undo[n-1].Action, a) {
		E.undo[n-1].Direction = Update
		E.log.Debug("action merged", zap.String("action", name))
		E.notify(Update, E.undo[n-1].Action)
		return nil
	}
	E.undo = append(E.undo, &Entry{Action: a, Direction: Do})
	if E.limit > 0 && len(E.undo) > E.limit {
		drop := len(E.undo) - E.limit
		E.undo = append(E.undo[:0:0], E.undo[drop:]...)
		E.log.Debug("history trimmed", zap.Int("dropped", drop))
	}
	E.log.Debug("action committed", zap.String("action", name), zap.Int("history", len(E.undo)))
	E.notify(Do, a)
	return nil
}

//Undo rolls back the last entry of the history and moves it to the redo stack.
//It returns false, and does nothing, if there is nothing to undo.
func (E *Engine) Undo() (bool, error) {
	if len(E.undo) == 0 {
		E.log.Info("nothing to undo")
		return false, nil
	}
	top := E.undo[len(E.undo)-1]
	name, _, back, err := steps(top.Action)
	if err != nil {
		return false, err
	}
	if err := back(E.graph); err != nil {
		return false, chem.ErrDecorate(err, "Undo")
	}
	E.undo = E.undo[:len(E.undo)-1]
	top.Direction = Undo
	E.redo = append(E.redo, top)
	E.log.Debug("action undone", zap.String("action", name))
	E.notify(Undo, top.Action)
	return true, nil
}

//Redo applies again the last undone entry. Unlike Commit, it leaves the rest
//of the redo stack alone. It returns false if there is nothing to redo.
func (E *Engine) Redo() (bool, error) {
	if len(E.redo) == 0 {
		E.log.Info("nothing to redo")
		return false, nil
	}
	top := E.redo[len(E.redo)-1]
	name, do, _, err := steps(top.Action)
	if err != nil {
		return false, err
	}
	if err := do(E.graph); err != nil {
		return false, chem.ErrDecorate(err, "Redo")
	}
	E.redo = E.redo[:len(E.redo)-1]
	top.Direction = Redo
	E.undo = append(E.undo, top)
	E.log.Debug("action redone", zap.String("action", name))
	E.notify(Redo, top.Action)
	return true, nil
}

//CanUndo returns true if there is something to undo.
func (E *Engine) CanUndo() bool { return len(E.undo) > 0 }

//CanRedo returns true if there is something to redo.
func (E *Engine) CanRedo() bool { return len(E.redo) > 0 }

//History returns a copy of the undo stack, oldest entry first.
func (E *Engine) History() []Entry {
	ret := make([]Entry, len(E.undo))
	for i, e := range E.undo {
		ret[i] = *e
	}
	return ret
}

type step func(*chem.Graph) error

//steps is the one place where the action variants are told apart.
func steps(a Action) (string, step, step, error) {
	switch a := a.(type) {
	case *AddVertex:
		return "AddVertex", a.apply, a.rollback, nil
	case *AddBond:
		return "AddBond", a.apply, a.rollback, nil
	case *AddChain:
		return "AddChain", a.apply, a.rollback, nil
	case *MoveVertices:
		return "MoveVertices", a.apply, a.rollback, nil
	case *RotateVertices:
		return "RotateVertices", a.apply, a.rollback, nil
	case *SetElement:
		return "SetElement", a.apply, a.rollback, nil
	case *SetCharge:
		return "SetCharge", a.apply, a.rollback, nil
	case *SetHCount:
		return "SetHCount", a.apply, a.rollback, nil
	case *SetIsotope:
		return "SetIsotope", a.apply, a.rollback, nil
	case *SetBondType:
		return "SetBondType", a.apply, a.rollback, nil
	case *SetStereo:
		return "SetStereo", a.apply, a.rollback, nil
	case *DeleteSubgraph:
		return "DeleteSubgraph", a.apply, a.rollback, nil
	case *Symmetrize:
		return "Symmetrize", a.apply, a.rollback, nil
	case *Batch:
		return "Batch", a.apply, a.rollback, nil
	}
	return "", nil, nil, newError(ErrUnknownAction, "steps", "%T", a)
}

func apply(g *chem.Graph, a Action) error {
	_, do, _, err := steps(a)
	if err != nil {
		return err
	}
	return do(g)
}

func rollback(g *chem.Graph, a Action) error {
	_, _, back, err := steps(a)
	if err != nil {
		return err
	}
	return back(g)
}

//merge folds next, already applied, into top, if both are continuations
//of the same gesture.
func merge(top, next Action) bool {
	switch t := top.(type) {
	case *MoveVertices:
		if n, ok := next.(*MoveVertices); ok {
			return t.update(n)
		}
	case *RotateVertices:
		if n, ok := next.(*RotateVertices); ok {
			return t.update(n)
		}
	}
	return false
}
