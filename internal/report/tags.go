package report

import (
	"fmt"
	"sort"
	"strings"
)

// SimpleTagName is the reserved key under which bare ("simple") tags are stored.
const SimpleTagName = "simple"

// TagMap maps a tag name to its set of values. Value lists behave as sets: duplicates are removed on merge,
// with first-seen order preserved for determinism.
type TagMap map[string][]string

// Copy returns an independent copy of the tag map.
func (t TagMap) Copy() TagMap {
	if t == nil {
		return nil
	}

	duplicate := make(TagMap, len(t))
	for name, values := range t {
		duplicate[name] = append([]string(nil), values...)
	}
	return duplicate
}

// Names returns the tag names in sorted order.
func (t TagMap) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Flatten returns all tags as lower-cased tokens: simple tags as their bare value, named tags as
// "name=value". This is the representation the tag filter matches against.
func (t TagMap) Flatten() []string {
	flattened := make([]string, 0, len(t))

	for _, name := range t.Names() {
		for _, value := range t[name] {
			if name == SimpleTagName {
				flattened = append(flattened, strings.ToLower(value))
			} else {
				flattened = append(flattened, strings.ToLower(fmt.Sprintf("%s=%s", name, value)))
			}
		}
	}

	return flattened
}

// MergeTags returns the union of the two tag maps: for every name present in either input, the merged map
// holds the de-duplicated union of values. Value order is first-seen order, values of `a` before values of
// `b`. Neither input is modified; nil inputs are treated as empty.
func MergeTags(a, b TagMap) TagMap {
	merged := make(TagMap, len(a)+len(b))

	appendValues := func(name string, values []string) {
		existing := merged[name]
		for _, value := range values {
			duplicate := false
			for _, seen := range existing {
				if seen == value {
					duplicate = true
					break
				}
			}
			if !duplicate {
				existing = append(existing, value)
			}
		}
		merged[name] = existing
	}

	for name, values := range a {
		appendValues(name, values)
	}
	for name, values := range b {
		appendValues(name, values)
	}

	return merged
}
