// Package filtering implements the search filters that prune a report tree down to the entries a user
// asked for. A filter is a small AST: scoped terms (test/suite/case names, tags, regular expressions),
// free-text search, grouped OR alternatives, and AND-by-juxtaposition within a term list.
package filtering

// Kind discriminates the filter node variants.
type Kind string

const (
	// KindFreeText matches a node if any of its whitespace/comma separated tokens matches a name
	// substring or a tag exactly.
	KindFreeText Kind = "free-text"

	// KindRegexp matches a node if any name in its name/type index matches the regular expression.
	KindRegexp Kind = "regexp"

	// KindTag matches a node if every one of its terms is present in the node's flattened tag index.
	KindTag Kind = "tag"

	// KindTest, KindSuite and KindCase are name filters scoped to the multitest, testsuite and testcase
	// category respectively.
	KindTest  Kind = "test"
	KindSuite Kind = "suite"
	KindCase  Kind = "case"

	// KindOR matches a node if any of its alternative filter lists fully matches.
	KindOR Kind = "OR"
)

// Node is one term of a compiled filter expression. Exactly one of the payload fields is meaningful,
// depending on Kind: Text for free-text and regexp terms, Terms for tag and scoped name terms, and
// Alternatives for OR groups. Unknown kinds are treated as always matching.
type Node struct {
	Kind         Kind     `json:"type"`
	Text         string   `json:"text,omitempty"`
	Terms        []string `json:"terms,omitempty"`
	Alternatives [][]Node `json:"alternatives,omitempty"`
}
