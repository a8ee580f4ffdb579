package report

// parentIndices is the accumulated context a parent hands down to its child entries during propagation.
type parentIndices struct {
	tags     TagMap
	nameType NameTypeIndex
}

// PropagateIndices decorates every node of the tree with the metadata the filter evaluator relies on:
//
//   - Tags: the node's own tags merged with the full ancestor chain's tags.
//   - TagsIndex: the transitive closure of tags across ancestors AND descendants.
//   - NameTypeIndex: the set of (name, category) pairs covering self, ancestors and descendants.
//   - CaseCount: pass/fail aggregate of descendant testcases. Testcases with an "error" status are counted
//     in neither bucket; only Counter tracks errors.
//
// This is a destructive, one-shot operation: it mutates the given tree in place and returns it. Callers
// hand over ownership of the pre-propagation tree and must not read it through old references afterwards.
func PropagateIndices(root *Node) *Node {
	// The root is wrapped in a one-element list so that it receives the same decoration as any other
	// level of the tree.
	propagateEntries([]*Node{root}, parentIndices{
		tags:     TagMap{},
		nameType: NameTypeIndex{},
	})

	return root
}

// propagateEntries decorates a list of sibling entries given their parent's accumulated context and
// returns the entries' folded tags, name/type pairs and case counts for the parent to absorb.
func propagateEntries(entries []*Node, parent parentIndices) (TagMap, NameTypeIndex, CaseCount) {
	foldedTags := TagMap{}
	foldedNameType := NameTypeIndex{}
	foldedCaseCount := CaseCount{}

	for _, entry := range entries {
		nameTypeIndex := parent.nameType.Copy()
		nameTypeIndex.Add(entry.NameTypePair())

		// Ancestor tags are merged down into the child's own tags. An entry without tags of its own
		// passes the parent's tag context through unchanged.
		tagContext := parent.tags
		if entry.Tags != nil {
			entry.Tags = MergeTags(entry.Tags, parent.tags)
			tagContext = entry.Tags
		}

		var caseCount CaseCount
		var descendantTags TagMap

		if entry.IsLeaf() {
			if entry.Status.CountsAsPass() {
				caseCount.Passed++
			}
			if entry.Status.CountsAsFail() {
				caseCount.Failed++
			}
		} else {
			// Unknown categories are treated as group nodes and recursed into.
			descTags, descNameType, descCaseCount := propagateEntries(entry.Entries, parentIndices{
				tags:     tagContext,
				nameType: nameTypeIndex,
			})

			descendantTags = descTags
			nameTypeIndex.Merge(descNameType)
			caseCount = descCaseCount
		}

		entry.TagsIndex = MergeTags(descendantTags, tagContext)
		entry.NameTypeIndex = nameTypeIndex
		entry.CaseCount = caseCount

		foldedTags = MergeTags(foldedTags, entry.TagsIndex)
		foldedNameType.Merge(entry.NameTypeIndex)
		foldedCaseCount = foldedCaseCount.Add(caseCount)
	}

	return foldedTags, foldedNameType, foldedCaseCount
}
