/*
 * store.go, part of gosketch.
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

//Package store reads and writes the text of molecule files. Files ending in
//.zst or .gz are transparently decompressed when read and compressed when written.
package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//Error is the error type of the package. It fulfills chem.Error.
type Error struct {
	message  string
	filename string
	deco     []string
	err      error
}

func newError(err error, filename, caller, message string) *Error {
	return &Error{message: message, filename: filename, deco: []string{caller}, err: err}
}

func (err *Error) Error() string {
	if err.err != nil {
		return fmt.Sprintf("store: file %s: %s: %v", err.filename, err.message, err.err)
	}
	return fmt.Sprintf("store: file %s: %s", err.filename, err.message)
}

//Unwrap returns the underlying I/O error, so errors.Is(err, fs.ErrNotExist) works.
func (err *Error) Unwrap() error { return err.err }

//FileName returns the file that caused the error.
func (err *Error) FileName() string { return err.filename }

//Decorate adds dec to the decoration slice of the error and returns the result.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Compression is the compression applied to a file.
type Compression int

const (
	None Compression = iota
	Gzip
	Zstd
)

//CompressionFromPath tells the compression of a file from its extension.
func CompressionFromPath(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return Gzip
	case ".zst":
		return Zstd
	}
	return None
}

//TrimCompression removes the compression extension, if any, so
//"benzene.mol.gz" becomes "benzene.mol".
func TrimCompression(path string) string {
	if CompressionFromPath(path) == None {
		return path
	}
	return strings.TrimSuffix(path, filepath.Ext(path))
}

//zstd.Decoder has a Close method that returns nothing.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

func newReader(c Compression, r io.Reader) (io.ReadCloser, error) {
	switch c {
	case Gzip:
		return gzip.NewReader(r)
	case Zstd:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{d}, nil
	}
	return io.NopCloser(r), nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func newWriter(c Compression, w io.Writer) (io.WriteCloser, error) {
	switch c {
	case Gzip:
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	case Zstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	return nopWriteCloser{w}, nil
}

//ReadText returns the whole content of the file, decompressed if needed.
func ReadText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", newError(err, path, "ReadText", "can't open")
	}
	defer f.Close()
	r, err := newReader(CompressionFromPath(path), f)
	if err != nil {
		return "", newError(err, path, "ReadText", "can't decompress")
	}
	defer r.Close()
	b, err := io.ReadAll(r)
	if err != nil {
		return "", newError(err, path, "ReadText", "can't read")
	}
	return string(b), nil
}

//WriteText writes text to the file, compressed if the name asks for it. The file
//is written under a temporary name and renamed at the end, so a failed write
//doesn't destroy a previous version.
func WriteText(path, text string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return newError(err, path, "WriteText", "can't create")
	}
	defer os.Remove(tmp.Name()) //a no-op after the rename.
	w, err := newWriter(CompressionFromPath(path), tmp)
	if err != nil {
		tmp.Close()
		return newError(err, path, "WriteText", "can't compress")
	}
	if _, err := io.WriteString(w, text); err != nil {
		w.Close()
		tmp.Close()
		return newError(err, path, "WriteText", "can't write")
	}
	if err := w.Close(); err != nil {
		tmp.Close()
		return newError(err, path, "WriteText", "can't finish compression")
	}
	if err := tmp.Close(); err != nil {
		return newError(err, path, "WriteText", "can't close")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return newError(err, path, "WriteText", "can't rename the temporary file")
	}
	return nil
}
