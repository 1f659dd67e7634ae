package catalog

import (
	"errors"
	"sort"

	"smj-server/internal/recordfile"
)

var listFields = []string{"list", "name"}

// Lists is the list-membership table. A list exists iff at least one row
// carries its name; creating a list inserts a placeholder row with an empty
// item name, so an empty list is distinguishable from a nonexistent one.
type Lists struct {
	t *recordfile.Table
}

// OpenLists opens the list-membership table at path, creating it when
// absent.
func OpenLists(path string) (*Lists, error) {
	t, err := recordfile.Open(path, listFields)
	if err != nil {
		return nil, err
	}
	return &Lists{t: t}, nil
}

// Names returns the distinct list names, sorted.
func (l *Lists) Names() ([]string, error) {
	recs, err := l.t.LoadAll()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	names := []string{}
	for _, r := range recs {
		if name := r["list"]; !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Items returns the item names of a list in insertion order, skipping the
// placeholder row. A nonexistent list yields an empty slice.
func (l *Lists) Items(list string) ([]string, error) {
	recs, err := l.t.LoadAll()
	if err != nil {
		return nil, err
	}
	items := []string{}
	for _, r := range recs {
		if r["list"] == list && r["name"] != "" {
			items = append(items, r["name"])
		}
	}
	return items, nil
}

// Create makes an empty list by inserting its placeholder row. Returns
// ErrListExists when any row already carries the name, ErrMissingFields on
// an empty name.
func (l *Lists) Create(list string) error {
	if list == "" {
		return ErrMissingFields
	}
	rec := recordfile.Record{"list": list, "name": ""}
	return l.t.Insert(rec, func(recs []recordfile.Record) error {
		for _, r := range recs {
			if r["list"] == list {
				return ErrListExists
			}
		}
		return nil
	})
}

// Delete removes every row of the list, placeholder included. Deleting a
// nonexistent list is a no-op.
func (l *Lists) Delete(list string) error {
	return l.t.Filter(func(r recordfile.Record) bool {
		return r["list"] != list
	})
}

// AddItem adds an item to a list. Adding an item that is already present is
// a no-op; adding to a list that was never created brings the list into
// existence.
func (l *Lists) AddItem(list, name string) error {
	if list == "" || name == "" {
		return ErrMissingFields
	}
	rec := recordfile.Record{"list": list, "name": name}
	err := l.t.Insert(rec, func(recs []recordfile.Record) error {
		for _, r := range recs {
			if r["list"] == list && r["name"] == name {
				return errDuplicateItem
			}
		}
		return nil
	})
	if err == errDuplicateItem {
		return nil
	}
	return err
}

// RemoveItem deletes the matching membership row, leaving other rows (and
// their order) untouched.
func (l *Lists) RemoveItem(list, name string) error {
	return l.t.Filter(func(r recordfile.Record) bool {
		return !(r["list"] == list && r["name"] == name)
	})
}

// errDuplicateItem is internal to AddItem's idempotence; it never escapes.
var errDuplicateItem = errors.New("duplicate list item")
