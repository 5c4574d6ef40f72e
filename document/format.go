/*
 * format.go, part of gosketch.
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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rmera/gosketch/store"
)

//ErrUnknownFormat is returned for files whose extension names no supported format.
var ErrUnknownFormat = errors.New("unknown file format")

//Format is a file format the session can read and write.
type Format int

const (
	Molfile Format = iota + 1
	SDF
	SMILES
)

func (F Format) String() string {
	switch F {
	case Molfile:
		return "molfile"
	case SDF:
		return "sdf"
	case SMILES:
		return "smiles"
	}
	return fmt.Sprintf("Format(%d)", int(F))
}

var extensions = map[string]Format{
	".mol": Molfile,
	".sdf": SDF,
	".sd":  SDF,
	".smi": SMILES,
}

//FormatFromPath returns the format of a file from its extension. A compression
//extension is skipped, so "x.sdf.gz" is an SDF file.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(store.TrimCompression(path)))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return 0, &Error{message: fmt.Sprintf("extension %q", ext), path: path, kind: ErrUnknownFormat, deco: []string{"FormatFromPath"}}
}

//Error is the error type of the package. It fulfills chem.Error.
type Error struct {
	message string
	path    string
	kind    error
	deco    []string
}

func (err *Error) Error() string {
	if err.path == "" {
		return fmt.Sprintf("document: %s: %s", err.kind, err.message)
	}
	return fmt.Sprintf("document: %s: %s: %s", err.path, err.kind, err.message)
}

func (err *Error) Unwrap() error { return err.kind }

//Decorate adds dec to the decoration slice of the error and returns the result.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
