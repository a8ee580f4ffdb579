package report

import "fmt"

// MergeParts recombines a report whose multitests were executed as shards ("parts") into one logical tree.
// Shards sharing a definition name are collapsed into a single node: counters are summed, statuses merged
// by severity, tags unioned and child lists recursively unioned by identity. The input tree is not
// modified; the result is a fresh tree.
//
// Entries that carry no part information, carry a malformed part tuple, or lack a definition name pass
// through unmodified (aside from deep-copying). Synthesized bookkeeping entries are dropped entirely.
func MergeParts(root *Node) *Node {
	merged := root.ShallowCopy()
	merged.Entries = mergePartSiblings(root.Entries)
	return merged
}

// partGroup collects the shards of one logical entity in their original relative order.
type partGroup struct {
	shards []*Node
}

// mergePartSiblings merges the multitest-level sibling list. The merged result of a shard group is placed
// at the position of the group's first occurrence; everything else keeps its original position.
func mergePartSiblings(entries []*Node) []*Node {
	groups := make(map[string]*partGroup)
	output := make([]*Node, 0, len(entries))
	slots := make(map[string]int)

	for _, entry := range entries {
		if entry.Category == CategorySynthesized {
			continue
		}

		if entry.Part == nil || entry.DefinitionName == "" || !entry.Category.Mergeable() {
			output = append(output, entry.Clone())
			continue
		}

		group, ok := groups[entry.DefinitionName]
		if !ok {
			group = &partGroup{}
			groups[entry.DefinitionName] = group
			slots[entry.DefinitionName] = len(output)
			output = append(output, nil) // placeholder, filled in below
		}
		group.shards = append(group.shards, entry)
	}

	for definitionName, group := range groups {
		output[slots[definitionName]] = mergeShardGroup(definitionName, group.shards)
	}

	return output
}

// mergeShardGroup collapses the shards of one logical multitest into a single node.
func mergeShardGroup(definitionName string, shards []*Node) *Node {
	first := shards[0]

	merged := &Node{
		UID:                first.UID,
		Name:               fmt.Sprintf("%s [Merged]", definitionName),
		DefinitionName:     definitionName,
		Category:           first.Category,
		Type:               first.Type,
		Status:             first.Status,
		SourceMultitestUID: first.UID,
	}

	for _, shard := range shards {
		merged.AllPartUIDs = append(merged.AllPartUIDs, shard.UID)
		merged.Counter = merged.Counter.Add(shard.Counter)
		merged.Status = MergeStatus(merged.Status, shard.Status)
		merged.Tags = MergeTags(merged.Tags, shard.Tags)
	}

	// At the multitest level each shard is its own assertion-payload source.
	merged.Entries = mergeShardChildren(shards, shards)
	return merged
}

// childKey identifies a mergeable child across shards: same category, same logical name.
type childKey struct {
	category Category
	name     string
}

// mergeKeyName returns a child's logical name for merge purposes. Sharded children carry a definition
// name; unsharded ones are matched by their display name.
func mergeKeyName(child *Node) string {
	if child.DefinitionName != "" {
		return child.DefinitionName
	}
	return child.Name
}

// mergeShardChildren unions the child lists of a shard group. Mergeable children (testsuites and
// parametrizations) sharing a key are recursively collapsed; testcases are never merged across shards and
// are concatenated in shard order instead. Output order is first-seen order across shards. `sources[i]` is
// the multitest-level shard that contributed `shards[i]`, used to stamp SourceMultitestUID on every node.
func mergeShardChildren(shards []*Node, sources []*Node) []*Node {
	type childGroup struct {
		children []*Node
		sources  []*Node
	}

	groups := make(map[childKey]*childGroup)
	order := make([]childKey, 0)
	occurrence := 0

	for i, shard := range shards {
		source := sources[i]

		for _, child := range shard.Entries {
			if child.Category == CategorySynthesized {
				continue
			}

			if child.IsLeaf() || !child.Category.Mergeable() {
				// Not mergeable across shards. A synthetic key keeps every occurrence distinct while
				// preserving first-seen ordering alongside merged groups.
				occurrence++
				key := childKey{category: child.Category, name: fmt.Sprintf("\x00%d\x00%s", occurrence, child.UID)}
				groups[key] = &childGroup{children: []*Node{child}, sources: []*Node{source}}
				order = append(order, key)
				continue
			}

			key := childKey{category: child.Category, name: mergeKeyName(child)}
			group, ok := groups[key]
			if !ok {
				group = &childGroup{}
				groups[key] = group
				order = append(order, key)
			}
			group.children = append(group.children, child)
			group.sources = append(group.sources, source)
		}
	}

	output := make([]*Node, 0, len(order))
	for _, key := range order {
		group := groups[key]

		if len(group.children) == 1 {
			output = append(output, stampSource(group.children[0].Clone(), group.sources[0].UID))
			continue
		}

		output = append(output, mergeChildGroup(group.children, group.sources))
	}

	return output
}

// mergeChildGroup collapses same-key children drawn from multiple shards into one node, applying the same
// merge rule as the multitest level: counters summed, status by severity, tags unioned, part cleared and
// all contributing uids recorded.
func mergeChildGroup(children []*Node, sources []*Node) *Node {
	first := children[0]

	merged := &Node{
		UID:                first.UID,
		Name:               first.Name,
		DefinitionName:     first.DefinitionName,
		Category:           first.Category,
		Type:               first.Type,
		Status:             first.Status,
		SourceMultitestUID: sources[0].UID,
	}

	for _, child := range children {
		merged.AllPartUIDs = append(merged.AllPartUIDs, child.UID)
		merged.Counter = merged.Counter.Add(child.Counter)
		merged.Status = MergeStatus(merged.Status, child.Status)
		merged.Tags = MergeTags(merged.Tags, child.Tags)
	}

	merged.Entries = mergeShardChildren(children, sources)
	return merged
}

// stampSource records the originating multitest shard on a pass-through subtree. Assertion payloads of
// split reports are keyed by the shard's uid, so every descendant needs to know where it came from.
func stampSource(node *Node, sourceUID string) *Node {
	node.SourceMultitestUID = sourceUID

	for _, child := range node.Entries {
		stampSource(child, sourceUID)
	}

	return node
}
