// Package keywords aggregates autosuggest completions for seed keywords into
// categorized result sets and serializes them for display and export.
package keywords

import (
	"bytes"
	"encoding/csv"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/amal-alexander/autocomplete-keyword-engine/internal/modifier"
)

// Row is one categorized suggestion: the seed that produced it, the modifier
// group whose query returned it, and the suggestion text.
type Row struct {
	Seed       string
	Group      modifier.Group
	Suggestion string
}

// ResultSet is the full, run-scoped collection of categorized suggestions.
// It is rebuilt from scratch on every run and never merged with prior state.
type ResultSet struct {
	ID      uuid.UUID
	Market  string
	Seeds   []string
	Rows    []Row
	Created time.Time
}

// WriteCSV serializes every row as seed,category,suggestion with a header
// row. Output depends only on the rows, so repeated calls on the same
// ResultSet are byte-identical.
func (rs *ResultSet) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"seed", "category", "suggestion"}); err != nil {
		return err
	}
	for _, r := range rs.Rows {
		if err := cw.Write([]string{r.Seed, string(r.Group), r.Suggestion}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSV returns the CSV serialization as a byte slice.
func (rs *ResultSet) CSV() ([]byte, error) {
	var buf bytes.Buffer
	if err := rs.WriteCSV(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GroupRows is one display category with its rows.
type GroupRows struct {
	Group modifier.Group
	Rows  []Row
}

// ByGroup projects the rows into fixed category order for display. Every
// group appears, including empty ones. Pure; the ResultSet is not modified.
func (rs *ResultSet) ByGroup() []GroupRows {
	order := modifier.Order()
	grouped := make([]GroupRows, len(order))
	index := make(map[modifier.Group]int, len(order))
	for i, g := range order {
		grouped[i] = GroupRows{Group: g}
		index[g] = i
	}
	for _, r := range rs.Rows {
		if i, ok := index[r.Group]; ok {
			grouped[i].Rows = append(grouped[i].Rows, r)
		}
	}
	return grouped
}
