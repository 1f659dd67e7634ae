// Package recordfile implements a small delimited-record table backed by a
// single CSV file with a fixed header line. It is the persistence primitive
// for the catalog's user, list and bookmark tables: whole-file reads,
// appends, and atomic filtered rewrites, guarded by a per-table lock.
package recordfile

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

var (
	// ErrCorrupted means the backing file is missing its header or contains
	// a data line whose field count does not match the header.
	ErrCorrupted = errors.New("record file corrupted")

	// ErrUnsafeValue means a field value contains a carriage return or
	// newline, which would break the one-record-per-line invariant.
	ErrUnsafeValue = errors.New("field value contains line break")
)

// Record maps field names to string values. Every record in a table carries
// exactly the table's fields.
type Record map[string]string

// Table is a delimited-record table. All operations are safe for concurrent
// use; check-then-write sequences go through Insert and Filter, which hold
// the write lock across the whole sequence.
type Table struct {
	mu     sync.RWMutex
	path   string
	fields []string
}

// Open opens the table at path with the given header fields, creating the
// file with a header-only body when it does not exist. An existing file must
// start with exactly the expected header.
func Open(path string, fields []string) (*Table, error) {
	if len(fields) == 0 {
		return nil, errors.New("recordfile: no fields given")
	}
	t := &Table{path: path, fields: append([]string(nil), fields...)}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.Wrap(err, "recordfile: create data dir")
		}
		if err := t.writeAll(nil); err != nil {
			return nil, err
		}
		return t, nil
	}

	// Validate the header up front so a mismatched file fails at open time
	// rather than on first use.
	if _, err := t.load(); err != nil {
		return nil, err
	}
	return t, nil
}

// Fields returns the table's header fields.
func (t *Table) Fields() []string {
	return append([]string(nil), t.fields...)
}

// Path returns the location of the backing file.
func (t *Table) Path() string {
	return t.path
}

// LoadAll returns every record in file order.
func (t *Table) LoadAll() ([]Record, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.load()
}

// Append writes one record to the end of the file without touching prior
// content. It does not enforce any uniqueness; use Insert for that.
func (t *Table) Append(rec Record) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.append(rec)
}

// Insert appends rec after check passes against the current contents. The
// write lock is held across the read, the check, and the append, so two
// concurrent Inserts cannot both pass a uniqueness check.
func (t *Table) Insert(rec Record, check func([]Record) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if check != nil {
		recs, err := t.load()
		if err != nil {
			return err
		}
		if err := check(recs); err != nil {
			return err
		}
	}
	return t.append(rec)
}

// Rewrite atomically replaces the file body with a header line followed by
// the given records, in the order given.
func (t *Table) Rewrite(recs []Record) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.writeAll(recs)
}

// Filter rewrites the table keeping only records for which keep returns
// true, preserving file order. This is the table's delete primitive.
func (t *Table) Filter(keep func(Record) bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	recs, err := t.load()
	if err != nil {
		return err
	}
	kept := recs[:0]
	for _, r := range recs {
		if keep(r) {
			kept = append(kept, r)
		}
	}
	return t.writeAll(kept)
}

func (t *Table) load() ([]Record, error) {
	f, err := os.Open(t.path)
	if err != nil {
		return nil, errors.Wrap(err, "recordfile: open")
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		// csv.Reader reports a field-count mismatch against the first line,
		// which is exactly the header invariant.
		return nil, errors.Wrapf(ErrCorrupted, "%s: %v", t.path, err)
	}
	if len(rows) == 0 {
		return nil, errors.Wrapf(ErrCorrupted, "%s: missing header", t.path)
	}
	if !equalFields(rows[0], t.fields) {
		return nil, errors.Wrapf(ErrCorrupted, "%s: header %v, want %v", t.path, rows[0], t.fields)
	}

	recs := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(t.fields))
		for i, name := range t.fields {
			rec[name] = row[i]
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func (t *Table) append(rec Record) error {
	row, err := t.row(rec)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(t.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrap(err, "recordfile: open for append")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(row); err != nil {
		return errors.Wrap(err, "recordfile: append")
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrap(err, "recordfile: append")
	}
	if err := f.Sync(); err != nil {
		return errors.Wrap(err, "recordfile: sync")
	}
	return nil
}

// writeAll writes a fresh file to a temp sibling and renames it over the
// original, so readers see either the old body or the new one.
func (t *Table) writeAll(recs []Record) error {
	rows := make([][]string, 0, len(recs)+1)
	rows = append(rows, t.fields)
	for _, rec := range recs {
		row, err := t.row(rec)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	dir := filepath.Dir(t.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(t.path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "recordfile: create temp")
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.WriteAll(rows); err != nil {
		tmp.Close()
		return errors.Wrap(err, "recordfile: write")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrap(err, "recordfile: sync temp")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "recordfile: close temp")
	}
	if err := os.Rename(tmp.Name(), t.path); err != nil {
		return errors.Wrap(err, "recordfile: rename temp")
	}
	return nil
}

// row flattens rec into header order. Values may contain the delimiter or
// quotes (the CSV layer quotes them); line breaks are rejected.
func (t *Table) row(rec Record) ([]string, error) {
	row := make([]string, len(t.fields))
	for i, name := range t.fields {
		v := rec[name]
		if strings.ContainsAny(v, "\r\n") {
			return nil, errors.Wrapf(ErrUnsafeValue, "field %q", name)
		}
		row[i] = v
	}
	return row, nil
}

func equalFields(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
