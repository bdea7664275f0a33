/*
 * store.go, part of gomess.
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

//Package store keeps computed state grids in an SQLite database, so that expensive
//species (MultiRotor cores, large RRHO convolutions) can be computed once and read back
//later, for instance by a read species.
package store

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"sync"

	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite"

	"github.com/rmera/gomess"
)

//Grid is a tabulated state-counting function. Values are numbers or densities of
//states, according to Mode, at the absolute energies Energies.
type Grid struct {
	Name     string
	Mode     mess.Mode
	Energies []float64
	Values   []float64
}

//Store is a grid cache backed by an SQLite file. It is safe for concurrent use.
type Store struct {
	path string
	mu   sync.RWMutex
	db   *sql.DB
}

//Open opens, creating it if needed, the database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, mess.NewConfigError("store.Open", "database path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, mess.WrapError(err, mess.ConfigError, "store.Open", "can't open "+path)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, mess.WrapError(err, mess.ConfigError, "store.Open", "can't open "+path)
	}
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS grids (
			name TEXT PRIMARY KEY,
			mode INTEGER NOT NULL,
			size INTEGER NOT NULL,
			payload BLOB NOT NULL
		)`)
	if err != nil {
		_ = db.Close()
		return nil, mess.WrapError(err, mess.ConfigError, "store.Open", "can't create the grid table")
	}
	return &Store{path: path, db: db}, nil
}

//Save stores g under g.Name, replacing any previous grid with that name.
func (s *Store) Save(ctx context.Context, g *Grid) error {
	if len(g.Energies) != len(g.Values) {
		return mess.NewConfigError("Store.Save", "grid %s: %d energies and %d values", g.Name, len(g.Energies), len(g.Values))
	}
	db, err := s.getDB()
	if err != nil {
		return err
	}
	payload, err := encode(g.Energies, g.Values)
	if err != nil {
		return mess.ErrDecorate(err, "Store.Save")
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO grids (name, mode, size, payload)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			mode = excluded.mode,
			size = excluded.size,
			payload = excluded.payload
	`, g.Name, int(g.Mode), len(g.Energies), payload)
	if err != nil {
		return mess.WrapError(err, mess.ComputeError, "Store.Save", "can't save grid "+g.Name)
	}
	return nil
}

//Load returns the grid stored under name. ok is false if there is no such grid.
func (s *Store) Load(ctx context.Context, name string) (g *Grid, ok bool, err error) {
	db, err := s.getDB()
	if err != nil {
		return nil, false, err
	}
	var (
		mode, size int
		payload    []byte
	)
	err = db.QueryRowContext(ctx, `SELECT mode, size, payload FROM grids WHERE name = ?`, name).Scan(&mode, &size, &payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, mess.WrapError(err, mess.ComputeError, "Store.Load", "can't load grid "+name)
	}
	e, v, err := decode(payload, size)
	if err != nil {
		return nil, false, mess.ErrDecorate(err, "Store.Load "+name)
	}
	m := mess.Mode(mode)
	if !m.Valid() {
		return nil, false, mess.NewConfigError("Store.Load", "grid %s has an invalid mode %d", name, mode)
	}
	return &Grid{Name: name, Mode: m, Energies: e, Values: v}, true, nil
}

//List returns the names of all the stored grids, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT name FROM grids ORDER BY name`)
	if err != nil {
		return nil, mess.WrapError(err, mess.ComputeError, "Store.List", "query failed")
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, mess.WrapError(err, mess.ComputeError, "Store.List", "query failed")
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return nil, mess.WrapError(err, mess.ComputeError, "Store.List", "query failed")
	}
	return names, nil
}

//Close closes the database. Closing twice is not an error.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, mess.NewConfigError("Store", "database %s is closed", s.path)
	}
	return s.db, nil
}

//encode packs both columns as little-endian float64s and compresses them.
func encode(e, v []float64) ([]byte, error) {
	raw := make([]byte, 16*len(e))
	for i := range e {
		binary.LittleEndian.PutUint64(raw[16*i:], math.Float64bits(e[i]))
		binary.LittleEndian.PutUint64(raw[16*i+8:], math.Float64bits(v[i]))
	}
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	if err != nil {
		return nil, mess.WrapError(err, mess.ComputeError, "encode", "zstd writer")
	}
	if _, err := w.Write(raw); err != nil {
		w.Close()
		return nil, mess.WrapError(err, mess.ComputeError, "encode", "zstd write")
	}
	if err := w.Close(); err != nil {
		return nil, mess.WrapError(err, mess.ComputeError, "encode", "zstd close")
	}
	return buf.Bytes(), nil
}

func decode(payload []byte, size int) ([]float64, []float64, error) {
	r, err := zstd.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, nil, mess.WrapError(err, mess.ComputeError, "decode", "zstd reader")
	}
	defer r.Close()
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, mess.WrapError(err, mess.ComputeError, "decode", "corrupted payload")
	}
	if len(raw) != 16*size {
		return nil, nil, mess.NewComputeError("decode", "payload has %d bytes, expected %d", len(raw), 16*size)
	}
	e := make([]float64, size)
	v := make([]float64, size)
	for i := 0; i < size; i++ {
		e[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[16*i:]))
		v[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[16*i+8:]))
	}
	return e, v, nil
}
