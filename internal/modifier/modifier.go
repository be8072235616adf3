// Package modifier defines the fixed modifier groups that seed keywords are
// crossed with, and how each group's tokens combine with a seed to form
// autosuggest queries.
package modifier

// Group identifies a modifier category.
type Group string

const (
	Questions    Group = "Questions"
	Prepositions Group = "Prepositions"
	Comparisons  Group = "Comparisons"
	Bare         Group = "Bare"
)

// Placement controls where a token sits relative to the seed in a query.
type Placement int

const (
	// Prefix places the token before the seed ("what laptop").
	Prefix Placement = iota
	// Suffix places the token after the seed ("laptop for").
	Suffix
	// Both issues the suffix form first, then the prefix form, per token.
	Both
)

// Spec is one modifier group: its ordered tokens and their placement.
type Spec struct {
	Group     Group
	Tokens    []string
	Placement Placement
}

// Table is the ordered list of modifier groups a run iterates over.
type Table []Spec

// Queries returns the autosuggest query strings for a seed under this spec,
// in token order. A spec with no tokens yields the bare seed.
func (s Spec) Queries(seed string) []string {
	if len(s.Tokens) == 0 {
		return []string{seed}
	}
	queries := make([]string, 0, len(s.Tokens)*2)
	for _, tok := range s.Tokens {
		switch s.Placement {
		case Prefix:
			queries = append(queries, tok+" "+seed)
		case Suffix:
			queries = append(queries, seed+" "+tok)
		case Both:
			queries = append(queries, seed+" "+tok, tok+" "+seed)
		}
	}
	return queries
}

// Order is the fixed group iteration and display order.
func Order() []Group {
	return []Group{Questions, Prepositions, Comparisons, Bare}
}

// Default returns the built-in modifier table.
func Default() Table {
	return Table{
		{
			Group:     Questions,
			Tokens:    []string{"what", "why", "how", "where", "when", "who", "which", "can", "will", "are"},
			Placement: Prefix,
		},
		{
			Group:     Prepositions,
			Tokens:    []string{"for", "with", "without", "to", "near", "in", "on", "about", "versus", "vs"},
			Placement: Both,
		},
		{
			Group:     Comparisons,
			Tokens:    []string{"vs", "versus", "alternative", "alternatives", "compare", "comparison", "like"},
			Placement: Both,
		},
		{
			Group: Bare,
		},
	}
}
