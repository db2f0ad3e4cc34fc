// Package catalog maps sentence formatters to their field grammars.
//
// A Catalog is built once and is read-only afterwards, so a single value can
// be shared by any number of concurrent parse calls. The reference catalog
// (Default) is compiled from an embedded YAML document; additional
// definitions can be loaded with LoadYAML and layered with With.
package catalog

import (
	"fmt"
	"sort"

	gonmea "github.com/reoring/gonmea"
	"github.com/reoring/gonmea/dsl"
)

// Entry is one sentence definition.
type Entry struct {
	Grammar     *dsl.SentenceGrammar
	Description string
}

// Catalog is an immutable formatter -> grammar mapping.
type Catalog struct {
	entries map[string]Entry
}

var _ gonmea.Catalog = (*Catalog)(nil)

// New builds a catalog. Two entries for the same formatter are an error.
func New(entries ...Entry) (*Catalog, error) {
	c := &Catalog{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if e.Grammar == nil {
			return nil, fmt.Errorf("catalog: nil grammar")
		}
		f := e.Grammar.Formatter()
		if _, dup := c.entries[f]; dup {
			return nil, fmt.Errorf("catalog: duplicate formatter %q", f)
		}
		c.entries[f] = e
	}
	return c, nil
}

// MustNew is New that panics on error.
func MustNew(entries ...Entry) *Catalog {
	c, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return c
}

// Of builds a catalog from bare grammars.
func Of(grammars ...*dsl.SentenceGrammar) (*Catalog, error) {
	entries := make([]Entry, len(grammars))
	for i, g := range grammars {
		entries[i] = Entry{Grammar: g}
	}
	return New(entries...)
}

// With returns a new catalog holding c's entries overlaid by entries.
// Entries for a formatter already present replace it; c is left untouched.
func (c *Catalog) With(entries ...Entry) (*Catalog, error) {
	extra, err := New(entries...)
	if err != nil {
		return nil, err
	}
	out := &Catalog{entries: make(map[string]Entry, len(c.entries)+len(extra.entries))}
	for f, e := range c.entries {
		out.entries[f] = e
	}
	for f, e := range extra.entries {
		out.entries[f] = e
	}
	return out, nil
}

// Lookup implements gonmea.Catalog.
func (c *Catalog) Lookup(formatter string) (gonmea.Grammar, bool) {
	e, ok := c.entries[formatter]
	if !ok {
		return nil, false
	}
	return e.Grammar, true
}

// Entry returns the definition registered for formatter.
func (c *Catalog) Entry(formatter string) (Entry, bool) {
	e, ok := c.entries[formatter]
	return e, ok
}

// Formatters lists the registered formatters in ascending order.
func (c *Catalog) Formatters() []string {
	out := make([]string, 0, len(c.entries))
	for f := range c.entries {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Len reports the number of registered formatters.
func (c *Catalog) Len() int { return len(c.entries) }
