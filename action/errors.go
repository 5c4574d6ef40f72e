/*
 * errors.go, part of gosketch.
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

package action

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	//ErrInconsistent means the graph was changed behind the engine's back,
	//so an action can no longer be reversed.
	ErrInconsistent = errors.New("graph doesn't match the edit history")
)

//Error is the error type of the package. It fulfills chem.Error and
//unwraps to its kind, which can be one of the sentinels here or one
//of the chem ones.
type Error struct {
	message string
	kind    error
	deco    []string
}

func newError(kind error, caller, format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...), kind: kind, deco: []string{caller}}
}

func (err *Error) Error() string {
	return fmt.Sprintf("action: %s: %s", err.kind, err.message)
}

func (err *Error) Unwrap() error { return err.kind }

//Decorate Adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
