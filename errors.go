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

package chem

import (
	"errors"
	"fmt"
	"strings"
)

// Structural violations of the graph. These are always errors in the calling code.
var (
	ErrInvalidReference = errors.New("invalid reference")
	ErrDuplicateEdge    = errors.New("duplicate edge")
	ErrSelfLoop         = errors.New("bond endpoints must be different atoms")
	ErrInvalidValue     = errors.New("invalid value")
	ErrUnknownElement   = errors.New("unknown element")
)

//CError is the error type returned by the graph model. It unwraps to one of
//the sentinels above.
type CError struct {
	msg  string
	kind error
	deco []string
}

func newError(kind error, caller, format string, args ...interface{}) *CError {
	return &CError{msg: fmt.Sprintf(format, args...), kind: kind, deco: []string{caller}}
}

//Error returns a string with an error message.
func (err *CError) Error() string {
	return fmt.Sprintf("%s: %s", err.kind, err.msg)
}

//Unwrap returns the sentinel for the kind of the error.
func (err *CError) Unwrap() error { return err.kind }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Trace returns the decoration as a readable call chain, innermost first.
func (err *CError) Trace() string {
	return strings.Join(err.deco, " <- ")
}

//ErrDecorate is a helper function that asserts that the error
//implements chem.Error and decorates the error with the caller's name before returning it.
//if used with a non-chem.Error error, it will just return the error.
func ErrDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
