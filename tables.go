/*
 * tables.go, part of gomess.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package mess

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//zstdCloser makes a *zstd.Decoder satisfy io.ReadCloser.
type zstdCloser struct {
	*zstd.Decoder
}

//Close releases the decoder. It can not be used after this call
func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//OpenTable opens a possibly compressed text file. The compression is deduced from
//the file extension: .zst is zstandard, .gz is gzip, anything else is plain text.
//The returned function closes both the decompressor and the file.
func OpenTable(name string) (io.Reader, func() error, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, WrapError(err, ConfigError, "OpenTable", "can't open "+name)
	}
	var r io.ReadCloser
	buf := bufio.NewReader(f)
	switch strings.ToLower(name[strings.LastIndex(name, ".")+1:]) {
	case "zst", "zstd":
		var d *zstd.Decoder
		d, err = zstd.NewReader(buf)
		r = zstdCloser{d}
	case "gz":
		r, err = gzip.NewReader(buf)
	default:
		r = io.NopCloser(buf)
	}
	if err != nil {
		f.Close()
		return nil, nil, WrapError(err, ConfigError, "OpenTable", "can't decompress "+name)
	}
	closer := func() error {
		r.Close()
		return f.Close()
	}
	return r, closer, nil
}

//ReadTable reads a table of numbers with at least cols columns from a, possibly
//compressed, file. Empty lines and lines starting with # are ignored, as are extra columns.
//The table is returned by columns.
func ReadTable(name string, cols int) ([][]float64, error) {
	r, closer, err := OpenTable(name)
	if err != nil {
		return nil, ErrDecorate(err, "ReadTable")
	}
	defer closer()
	ret, err := ParseTable(r, cols)
	if err != nil {
		return nil, ErrDecorate(err, "ReadTable "+name)
	}
	return ret, nil
}

//ParseTable reads a table of numbers with at least cols columns from r.
func ParseTable(r io.Reader, cols int) ([][]float64, error) {
	ret := make([][]float64, cols)
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		l := strings.TrimSpace(s.Text())
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		fields := strings.Fields(l)
		if len(fields) < cols {
			return nil, NewConfigError("ParseTable", "line %d: %d columns needed, %d found", line, cols, len(fields))
		}
		for i := 0; i < cols; i++ {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, WrapError(err, ConfigError, "ParseTable", "line "+strconv.Itoa(line))
			}
			ret[i] = append(ret[i], v)
		}
	}
	if err := s.Err(); err != nil {
		return nil, WrapError(err, ConfigError, "ParseTable", "reading table")
	}
	return ret, nil
}
