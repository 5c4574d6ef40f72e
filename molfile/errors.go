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

package molfile

import (
	"errors"
	"fmt"
)

var (
	//ErrMalformed is the kind of every error caused by bad input.
	ErrMalformed = errors.New("malformed molfile")
	//ErrTooLarge means the graph doesn't fit in the V2000 counts line.
	ErrTooLarge = errors.New("too many atoms or bonds for a V2000 molfile")
)

//Error is the error type of the package. It fulfills chem.Error.
type Error struct {
	Line    int //1-based line of the input where the problem was found, 0 if none.
	message string
	kind    error
	deco    []string
}

func malformed(line int, caller, format string, args ...interface{}) *Error {
	return &Error{Line: line, message: fmt.Sprintf(format, args...), kind: ErrMalformed, deco: []string{caller}}
}

func (err *Error) Error() string {
	if err.Line > 0 {
		return fmt.Sprintf("molfile: line %d: %s: %s", err.Line, err.kind, err.message)
	}
	return fmt.Sprintf("molfile: %s: %s", err.kind, err.message)
}

func (err *Error) Unwrap() error { return err.kind }

//Decorate adds dec to the decoration slice of the error and returns the result.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
