/*
 * files.go, part of goVTF.
 *
 * Copyright 2026 The goVTF authors
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

package vtf

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

type compression int

const (
	plain compression = iota
	zstdCompressed
	gzipCompressed
)

// compressionFor picks the compression from the extension of name.
func compressionFor(name string) compression {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		return zstdCompressed
	case ".gz":
		return gzipCompressed
	}
	return plain
}

// fileWriter writes to a file, through a compressor if the file name asks for one.
// Appending to a compressed file adds a new stream, which the readers
// concatenate.
type fileWriter struct {
	f *os.File
	c io.WriteCloser //nil for plain files
}

func (w *fileWriter) Write(p []byte) (int, error) {
	if w.c != nil {
		return w.c.Write(p)
	}
	return w.f.Write(p)
}

// Close closes the compressor, if any, and the file. The first error is returned.
func (w *fileWriter) Close() error {
	var err error
	if w.c != nil {
		err = w.c.Close()
	}
	if ferr := w.f.Close(); err == nil {
		err = ferr
	}
	return err
}

func openWrite(name string, flag int) (*fileWriter, error) {
	f, err := os.OpenFile(name, flag, 0o644)
	if err != nil {
		return nil, err
	}
	w := &fileWriter{f: f}
	switch compressionFor(name) {
	case zstdCompressed:
		w.c, err = zstd.NewWriter(f)
	case gzipCompressed:
		w.c = gzip.NewWriter(f)
	}
	if err != nil {
		f.Close()
		return nil, err
	}
	return w, nil
}

// create opens name for writing, truncating it.
func create(name string) (*fileWriter, error) {
	return openWrite(name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY)
}

// readAll returns the whole, decompressed, content of the file name.
func readAll(name string) ([]byte, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	switch compressionFor(name) {
	case zstdCompressed:
		d, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer d.Close()
		return io.ReadAll(d)
	case gzipCompressed:
		g, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer g.Close()
		return io.ReadAll(g)
	}
	return io.ReadAll(f)
}
