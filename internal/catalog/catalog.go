// Package catalog holds the authoritative table of official law names
// and identifiers used as ground truth for disambiguation. The catalog
// is read-only once loaded and safely shared.
package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Entry is one official catalog row.
type Entry struct {
	DocID  string `json:"doc_id"`
	Nombre string `json:"nombre"`
}

// Catalog is the loaded, immutable catalog with id and name lookup.
type Catalog struct {
	entries []Entry
	byID    map[string]Entry
	byName  map[string]Entry
}

// New builds a catalog from entries. Names are indexed in their
// hash-normalized form, so lookups tolerate accent and article
// variations of the same official name.
func New(entries []Entry) *Catalog {
	byID := make(map[string]Entry, len(entries))
	byName := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byID[e.DocID] = e
		byName[NormalizeForHash(e.Nombre)] = e
	}
	return &Catalog{entries: entries, byID: byID, byName: byName}
}

// LoadCSV reads a catalog table with at least doc_id and nombre
// columns. Extra columns are ignored. A row with a name but no doc_id
// gets one derived from the name hash.
func LoadCSV(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("catalog %s is empty", path)
	}

	idCol, nameCol := -1, -1
	for i, h := range records[0] {
		switch strings.TrimSpace(strings.ToLower(h)) {
		case "doc_id":
			idCol = i
		case "nombre":
			nameCol = i
		}
	}
	if idCol < 0 || nameCol < 0 {
		return nil, fmt.Errorf("catalog %s: missing doc_id or nombre column", path)
	}

	var entries []Entry
	for _, rec := range records[1:] {
		if idCol >= len(rec) || nameCol >= len(rec) {
			continue
		}
		id := strings.TrimSpace(rec[idCol])
		name := strings.TrimSpace(rec[nameCol])
		if name == "" {
			continue
		}
		if id == "" {
			id = DocumentHash(name)
		}
		entries = append(entries, Entry{DocID: id, Nombre: name})
	}
	return New(entries), nil
}

// Entries returns the catalog rows in load order.
func (c *Catalog) Entries() []Entry { return c.entries }

// Len returns the number of catalog rows.
func (c *Catalog) Len() int { return len(c.entries) }

// Lookup returns the entry for a doc_id, if it exists.
func (c *Catalog) Lookup(docID string) (Entry, bool) {
	e, ok := c.byID[docID]
	return e, ok
}

// LookupName returns the entry whose official name matches nombre,
// compared on the hash-normalized form.
func (c *Catalog) LookupName(nombre string) (Entry, bool) {
	e, ok := c.byName[NormalizeForHash(nombre)]
	return e, ok
}

// ForPrompt renders the catalog as the enumerated choice list sent to
// the oracle, one "- name (ID: id)" line per entry.
func (c *Catalog) ForPrompt() string {
	var b strings.Builder
	for _, e := range c.entries {
		fmt.Fprintf(&b, "- %s (ID: %s)\n", e.Nombre, e.DocID)
	}
	return strings.TrimRight(b.String(), "\n")
}
