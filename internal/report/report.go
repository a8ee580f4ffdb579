// Package report holds the in-memory representation of a test report tree together with the transformations
// that operate on it: tag merging, index propagation, split-payload reassembly and parts merging.
//
// A report is a strictly tree-shaped document: testplan -> multitest -> testsuite -> (parametrization ->)
// testcase -> assertions. All transformations re-derive their output from a full tree snapshot; there is no
// incremental update path.
package report

import (
	"encoding/json"
	"sort"

	"github.com/testplan-tools/treport/internal/errors"
)

// Category is the kind of a report node. The set is closed on the producer side, but consumers have to
// tolerate unknown values (treated as group nodes).
type Category string

const (
	CategoryTestplan        Category = "testplan"
	CategoryMultitest       Category = "multitest"
	CategoryTestSuite       Category = "testsuite"
	CategoryParametrization Category = "parametrization"
	CategoryTestCase        Category = "testcase"
	CategorySynthesized     Category = "synthesized"
)

// Mergeable reports whether nodes of this category can be recombined from "part" shards.
func (c Category) Mergeable() bool {
	return c == CategoryMultitest || c == CategoryTestSuite || c == CategoryParametrization
}

// Report node types as emitted by the producer. TestCaseReport entries hold assertions, everything else
// holds child reports.
const (
	TypeTestGroupReport = "TestGroupReport"
	TypeTestCaseReport  = "TestCaseReport"
)

// Status is the outcome of a report node.
type Status string

const (
	StatusPassed Status = "passed"
	StatusFailed Status = "failed"
	StatusError  Status = "error"
	StatusXPass  Status = "xpass"
	StatusXFail  Status = "xfail"
	StatusUnset  Status = ""
)

// CountsAsPass reports whether a testcase with this status counts towards the passed bucket of a CaseCount.
func (s Status) CountsAsPass() bool {
	return s == StatusPassed || s == StatusXPass
}

// CountsAsFail reports whether a testcase with this status counts towards the failed bucket of a CaseCount.
// Note that "error" counts as neither pass nor fail here.
func (s Status) CountsAsFail() bool {
	return s == StatusFailed || s == StatusXFail
}

// severity ranks statuses for merge purposes: error > failed > everything else.
func (s Status) severity() int {
	switch s {
	case StatusError:
		return 2
	case StatusFailed:
		return 1
	default:
		return 0
	}
}

// MergeStatus returns the higher-severity status of the two.
func MergeStatus(a, b Status) Status {
	if b.severity() > a.severity() {
		return b
	}
	return a
}

// Counter is the producer-side aggregate of descendant testcase outcomes.
type Counter struct {
	Passed int `json:"passed"`
	Failed int `json:"failed"`
	Total  int `json:"total"`
	Error  int `json:"error"`
}

// Add returns the field-wise sum of the two counters.
func (c Counter) Add(other Counter) Counter {
	return Counter{
		Passed: c.Passed + other.Passed,
		Failed: c.Failed + other.Failed,
		Total:  c.Total + other.Total,
		Error:  c.Error + other.Error,
	}
}

// CaseCount is the pass/fail aggregate computed by index propagation. It deliberately differs from Counter:
// testcases with an "error" status are counted in neither bucket.
type CaseCount struct {
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// Add returns the field-wise sum of the two case counts.
func (c CaseCount) Add(other CaseCount) CaseCount {
	return CaseCount{Passed: c.Passed + other.Passed, Failed: c.Failed + other.Failed}
}

// Part identifies a node as shard `Index` out of `Total` logical siblings. It serializes as a two-element
// JSON array, mirroring the producer's representation.
type Part struct {
	Index int
	Total int
}

// MarshalJSON serializes the part as `[index, total]`.
func (p Part) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal([2]int{p.Index, p.Total})
	return b, errors.WithStack(err)
}

// parsePart reads a `[index, total]` tuple. Malformed tuples are treated as "no part information" rather
// than an error, so that unmergeable shards fall back to pass-through behavior.
func parsePart(raw json.RawMessage) *Part {
	if len(raw) == 0 {
		return nil
	}

	var tuple []int
	if err := json.Unmarshal(raw, &tuple); err != nil || len(tuple) != 2 {
		return nil
	}

	return &Part{Index: tuple[0], Total: tuple[1]}
}

// AssertionEntry is a single logged check or message inside a testcase. Assertion bodies are opaque to this
// package: they are carried through merges verbatim, never interpreted.
type AssertionEntry struct {
	json.RawMessage
}

// Kind extracts the assertion's "type" discriminator (Equal, TableMatch, Log, ...) for display purposes.
// Returns an empty string if the body has no such field.
func (e AssertionEntry) Kind() string {
	var probe struct {
		Type string `json:"type"`
	}

	if err := json.Unmarshal(e.RawMessage, &probe); err != nil {
		return ""
	}

	return probe.Type
}

// NameType is a (name, category) pair identifying a node for name-based search. Using a struct key instead
// of a delimited string avoids collisions with names that contain the delimiter.
type NameType struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

// NameTypeIndex is a set of NameType pairs covering a node's full ancestor + descendant chain.
type NameTypeIndex map[NameType]struct{}

// NewNameTypeIndex returns an index holding the given pairs.
func NewNameTypeIndex(pairs ...NameType) NameTypeIndex {
	index := make(NameTypeIndex, len(pairs))
	for _, pair := range pairs {
		index[pair] = struct{}{}
	}
	return index
}

// Has reports whether the pair is part of the index.
func (idx NameTypeIndex) Has(pair NameType) bool {
	_, ok := idx[pair]
	return ok
}

// Add inserts a pair into the index.
func (idx NameTypeIndex) Add(pair NameType) {
	idx[pair] = struct{}{}
}

// Merge inserts all pairs of `other` into the index.
func (idx NameTypeIndex) Merge(other NameTypeIndex) {
	for pair := range other {
		idx[pair] = struct{}{}
	}
}

// Copy returns an independent copy of the index.
func (idx NameTypeIndex) Copy() NameTypeIndex {
	duplicate := make(NameTypeIndex, len(idx))
	for pair := range idx {
		duplicate[pair] = struct{}{}
	}
	return duplicate
}

// Sorted returns the pairs in a deterministic order.
func (idx NameTypeIndex) Sorted() []NameType {
	pairs := make([]NameType, 0, len(idx))
	for pair := range idx {
		pairs = append(pairs, pair)
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Name != pairs[j].Name {
			return pairs[i].Name < pairs[j].Name
		}
		return pairs[i].Category < pairs[j].Category
	})

	return pairs
}

// MarshalJSON serializes the index as a sorted array of pairs.
func (idx NameTypeIndex) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(idx.Sorted())
	return b, errors.WithStack(err)
}

// UnmarshalJSON reads an array of pairs back into a set.
func (idx *NameTypeIndex) UnmarshalJSON(b []byte) error {
	var pairs []NameType
	if err := json.Unmarshal(b, &pairs); err != nil {
		return errors.WithStack(err)
	}

	*idx = NewNameTypeIndex(pairs...)
	return nil
}

// Node is the single recursive entity underlying the whole report tree. Group nodes (testplan, multitest,
// testsuite, parametrization) carry child nodes in Entries; testcase nodes carry their assertions in
// Assertions instead.
type Node struct {
	UID            string
	Name           string
	DefinitionName string
	Category       Category
	Type           string
	Status         Status
	Part           *Part
	Tags           TagMap
	Counter        Counter

	Entries    []*Node
	Assertions []AssertionEntry

	// Computed by PropagateIndices; absent on raw input.
	TagsIndex     TagMap
	NameTypeIndex NameTypeIndex
	CaseCount     CaseCount

	// Parts-merge bookkeeping.
	AllPartUIDs        []string
	SourceMultitestUID string
}

// IsLeaf reports whether the node is a testcase, i.e. holds assertions rather than child reports.
func (n *Node) IsLeaf() bool {
	return n.Category == CategoryTestCase || n.Type == TypeTestCaseReport
}

// NameTypePair returns the (name, category) pair identifying this node in a NameTypeIndex.
func (n *Node) NameTypePair() NameType {
	return NameType{Name: n.Name, Category: n.Category}
}

// ShallowCopy returns a copy of the node that shares child nodes, assertions and tag maps with the
// original. Callers that intend to modify nested state must Clone instead.
func (n *Node) ShallowCopy() *Node {
	duplicate := *n
	return &duplicate
}

// Clone returns a deep copy of the node and all of its descendants. Assertion bodies are shared: they are
// immutable as far as this package is concerned.
func (n *Node) Clone() *Node {
	duplicate := *n

	if n.Part != nil {
		part := *n.Part
		duplicate.Part = &part
	}
	duplicate.Tags = n.Tags.Copy()
	duplicate.TagsIndex = n.TagsIndex.Copy()
	if n.NameTypeIndex != nil {
		duplicate.NameTypeIndex = n.NameTypeIndex.Copy()
	}
	if n.AllPartUIDs != nil {
		duplicate.AllPartUIDs = append([]string(nil), n.AllPartUIDs...)
	}
	if n.Assertions != nil {
		duplicate.Assertions = append([]AssertionEntry(nil), n.Assertions...)
	}
	if n.Entries != nil {
		duplicate.Entries = make([]*Node, len(n.Entries))
		for i, child := range n.Entries {
			duplicate.Entries[i] = child.Clone()
		}
	}

	return &duplicate
}

// nodeJSON is the wire representation of a Node. The `entries` field is polymorphic: child reports for
// group nodes, assertion bodies for testcases.
type nodeJSON struct {
	UID                string          `json:"uid,omitempty"`
	Name               string          `json:"name"`
	DefinitionName     string          `json:"definition_name,omitempty"`
	Category           Category        `json:"category,omitempty"`
	Type               string          `json:"type,omitempty"`
	Status             Status          `json:"status,omitempty"`
	Part               json.RawMessage `json:"part,omitempty"`
	Tags               TagMap          `json:"tags,omitempty"`
	Counter            *Counter        `json:"counter,omitempty"`
	Entries            []json.RawMessage `json:"entries"`
	TagsIndex          TagMap          `json:"tags_index,omitempty"`
	NameTypeIndex      NameTypeIndex   `json:"name_type_index,omitempty"`
	CaseCount          *CaseCount      `json:"case_count,omitempty"`
	AllPartUIDs        []string        `json:"_allPartUids,omitempty"`
	SourceMultitestUID string          `json:"_sourceMultitestUid,omitempty"`
}

// UnmarshalJSON decodes a node from its wire representation. Missing optional fields become their zero
// values; malformed part tuples are dropped rather than rejected.
func (n *Node) UnmarshalJSON(b []byte) error {
	var wire nodeJSON
	if err := json.Unmarshal(b, &wire); err != nil {
		return errors.WithStack(err)
	}

	node := Node{
		UID:                wire.UID,
		Name:               wire.Name,
		DefinitionName:     wire.DefinitionName,
		Category:           wire.Category,
		Type:               wire.Type,
		Status:             wire.Status,
		Part:               parsePart(wire.Part),
		Tags:               wire.Tags,
		TagsIndex:          wire.TagsIndex,
		NameTypeIndex:      wire.NameTypeIndex,
		AllPartUIDs:        wire.AllPartUIDs,
		SourceMultitestUID: wire.SourceMultitestUID,
	}
	if wire.Counter != nil {
		node.Counter = *wire.Counter
	}
	if wire.CaseCount != nil {
		node.CaseCount = *wire.CaseCount
	}

	if node.IsLeaf() {
		node.Assertions = make([]AssertionEntry, len(wire.Entries))
		for i, raw := range wire.Entries {
			node.Assertions[i] = AssertionEntry{RawMessage: raw}
		}
	} else {
		node.Entries = make([]*Node, 0, len(wire.Entries))
		for _, raw := range wire.Entries {
			child := new(Node)
			if err := json.Unmarshal(raw, child); err != nil {
				return errors.WithStack(err)
			}
			node.Entries = append(node.Entries, child)
		}
	}

	*n = node
	return nil
}

// MarshalJSON encodes the node back into its wire representation.
func (n Node) MarshalJSON() ([]byte, error) {
	wire := nodeJSON{
		UID:                n.UID,
		Name:               n.Name,
		DefinitionName:     n.DefinitionName,
		Category:           n.Category,
		Type:               n.Type,
		Status:             n.Status,
		Tags:               n.Tags,
		TagsIndex:          n.TagsIndex,
		NameTypeIndex:      n.NameTypeIndex,
		AllPartUIDs:        n.AllPartUIDs,
		SourceMultitestUID: n.SourceMultitestUID,
	}

	if n.Part != nil {
		part, err := json.Marshal(*n.Part)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		wire.Part = part
	}

	if n.Counter != (Counter{}) {
		counter := n.Counter
		wire.Counter = &counter
	}

	if n.CaseCount != (CaseCount{}) {
		caseCount := n.CaseCount
		wire.CaseCount = &caseCount
	}

	if n.IsLeaf() {
		wire.Entries = make([]json.RawMessage, len(n.Assertions))
		for i, assertion := range n.Assertions {
			wire.Entries[i] = assertion.RawMessage
		}
	} else {
		wire.Entries = make([]json.RawMessage, len(n.Entries))
		for i, child := range n.Entries {
			raw, err := json.Marshal(child)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			wire.Entries[i] = raw
		}
	}

	b, err := json.Marshal(wire)
	return b, errors.WithStack(err)
}
