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

package smiles

import (
	"errors"
	"fmt"
)

//ErrMalformed is the kind of the errors caused by an invalid SMILES string.
var ErrMalformed = errors.New("malformed SMILES")

//Error is the error type of the package. It fulfills chem.Error.
type Error struct {
	Offset  int //byte offset in the input where the problem was found. -1 for write errors.
	message string
	kind    error
	deco    []string
}

func malformed(offset int, caller, format string, args ...interface{}) *Error {
	return &Error{Offset: offset, message: fmt.Sprintf(format, args...), kind: ErrMalformed, deco: []string{caller}}
}

func newError(kind error, caller, format string, args ...interface{}) *Error {
	return &Error{Offset: -1, message: fmt.Sprintf(format, args...), kind: kind, deco: []string{caller}}
}

func (err *Error) Error() string {
	if err.Offset >= 0 {
		return fmt.Sprintf("smiles: offset %d: %s: %s", err.Offset, err.kind, err.message)
	}
	return fmt.Sprintf("smiles: %s: %s", err.kind, err.message)
}

func (err *Error) Unwrap() error { return err.kind }

//Decorate adds dec to the decoration slice of the error and returns the result.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
