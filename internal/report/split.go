package report

// MergeSplitReport reassembles a report that was delivered as separate payloads: the main report (metadata
// only, empty entries), a structural skeleton (the full tree with every testcase's assertions stripped)
// and a lookup of assertion bodies keyed by testcase uid.
//
// A testcase whose uid has no entry in the lookup receives an empty assertion list. None of the inputs are
// modified; the result is a fresh tree.
func MergeSplitReport(main *Node, assertionsByUID map[string][]AssertionEntry, skeleton []*Node) *Node {
	full := main.ShallowCopy()

	full.Entries = make([]*Node, len(skeleton))
	for i, child := range skeleton {
		full.Entries[i] = populateAssertions(child, assertionsByUID)
	}

	return full
}

// populateAssertions deep-copies a skeleton subtree, filling in testcase assertions from the lookup.
func populateAssertions(node *Node, assertionsByUID map[string][]AssertionEntry) *Node {
	populated := node.Clone()
	fillAssertions(populated, assertionsByUID)
	return populated
}

func fillAssertions(node *Node, assertionsByUID map[string][]AssertionEntry) {
	if node.IsLeaf() {
		assertions := assertionsByUID[node.UID]
		node.Assertions = make([]AssertionEntry, len(assertions))
		copy(node.Assertions, assertions)
		return
	}

	for _, child := range node.Entries {
		fillAssertions(child, assertionsByUID)
	}
}
