package filtering

import (
	"regexp"
	"strings"

	"github.com/testplan-tools/treport/internal/errors"
	"github.com/testplan-tools/treport/internal/report"
)

// matcher is a compiled per-node predicate.
type matcher func(*report.Node) bool

// freeTextTokenPattern splits a free-text search on spaces and commas.
var freeTextTokenPattern = regexp.MustCompile(`[^, ]+`)

// FilterEntries evaluates a filter list over a forest of report entries and returns the pruned forest.
// Filters in the list are AND-combined. An entry is kept if it matches all filters and, unless it is a
// testcase, at least one of its children survives the same filters; this preserves the structurally
// necessary ancestors of every match. Testcase entries are leaves: their assertions are passed through
// unfiltered.
//
// The input forest is not modified; kept group nodes are shallow copies pointing at freshly filtered child
// lists. An empty filter list returns an equivalent copy of the input.
//
// A malformed filter term (currently only: a regular expression that does not compile) is reported as a
// FilterError.
func FilterEntries(entries []*report.Node, filters []Node) ([]*report.Node, error) {
	matchers, err := compileAll(filters)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return filterLevel(entries, matchers), nil
}

func compileAll(filters []Node) ([]matcher, error) {
	matchers := make([]matcher, 0, len(filters))

	for _, filter := range filters {
		m, err := compile(filter)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}

	return matchers, nil
}

func compile(filter Node) (matcher, error) {
	switch filter.Kind {
	case KindFreeText:
		return compileFreeText(filter.Text), nil
	case KindRegexp:
		return compileRegexp(filter.Text)
	case KindTag:
		return compileTag(filter.Terms), nil
	case KindTest:
		return compileScopedName(report.CategoryMultitest, filter.Terms), nil
	case KindSuite:
		return compileScopedName(report.CategoryTestSuite, filter.Terms), nil
	case KindCase:
		return compileScopedName(report.CategoryTestCase, filter.Terms), nil
	case KindOR:
		return compileOR(filter.Alternatives)
	default:
		// Unknown filter kinds are permissive rather than an error.
		return func(*report.Node) bool { return true }, nil
	}
}

// compileFreeText matches if ANY token matches: tokens are OR-combined, unlike the AND-combination of
// separate filter terms.
func compileFreeText(text string) matcher {
	tokens := freeTextTokenPattern.FindAllString(strings.ToLower(text), -1)

	return func(node *report.Node) bool {
		for _, token := range tokens {
			if nameContains(node.NameTypeIndex, token) || tagEquals(node.TagsIndex, token) {
				return true
			}
		}
		return false
	}
}

// nameContains reports whether any name in the index contains the token as a case-insensitive substring.
func nameContains(index report.NameTypeIndex, token string) bool {
	for pair := range index {
		if strings.Contains(strings.ToLower(pair.Name), token) {
			return true
		}
	}
	return false
}

// tagEquals reports whether the token exactly equals a simple tag value, a tag name, or a
// "name=value" composite from the tag index, case-insensitively.
func tagEquals(tags report.TagMap, token string) bool {
	for name, values := range tags {
		loweredName := strings.ToLower(name)
		if loweredName == token {
			return true
		}

		for _, value := range values {
			loweredValue := strings.ToLower(value)
			if name == report.SimpleTagName && loweredValue == token {
				return true
			}
			if loweredName+"="+loweredValue == token {
				return true
			}
		}
	}
	return false
}

func compileRegexp(pattern string) (matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.NewFilterError("invalid regular expression %q: %s", pattern, err)
	}

	return func(node *report.Node) bool {
		for pair := range node.NameTypeIndex {
			if re.MatchString(pair.Name) {
				return true
			}
		}
		return false
	}, nil
}

// compileTag requires EVERY term to be present in the flattened tag index: exact membership, not
// substring matching.
func compileTag(terms []string) matcher {
	required := make([]string, len(terms))
	for i, term := range terms {
		required[i] = strings.ToLower(term)
	}

	return func(node *report.Node) bool {
		flattened := make(map[string]struct{})
		for _, tag := range node.TagsIndex.Flatten() {
			flattened[tag] = struct{}{}
		}

		for _, term := range required {
			if _, ok := flattened[term]; !ok {
				return false
			}
		}
		return true
	}
}

// compileScopedName matches if the index holds at least one name of the bound category containing ALL of
// the search substrings, case-insensitively.
func compileScopedName(category report.Category, terms []string) matcher {
	lowered := make([]string, len(terms))
	for i, term := range terms {
		lowered[i] = strings.ToLower(term)
	}

	return func(node *report.Node) bool {
		for pair := range node.NameTypeIndex {
			if pair.Category != category {
				continue
			}

			name := strings.ToLower(pair.Name)
			containsAll := true
			for _, term := range lowered {
				if !strings.Contains(name, term) {
					containsAll = false
					break
				}
			}

			if containsAll {
				return true
			}
		}
		return false
	}
}

func compileOR(alternatives [][]Node) (matcher, error) {
	compiled := make([][]matcher, 0, len(alternatives))
	for _, alternative := range alternatives {
		matchers, err := compileAll(alternative)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, matchers)
	}

	return func(node *report.Node) bool {
		for _, matchers := range compiled {
			if matchesAll(node, matchers) {
				return true
			}
		}
		return false
	}, nil
}

func matchesAll(node *report.Node, matchers []matcher) bool {
	for _, m := range matchers {
		if !m(node) {
			return false
		}
	}
	return true
}

// filterLevel prunes one sibling list. Matching testcases stop the recursion; matching group nodes are
// kept only if children survive beneath them.
func filterLevel(entries []*report.Node, matchers []matcher) []*report.Node {
	kept := make([]*report.Node, 0, len(entries))

	for _, entry := range entries {
		if !matchesAll(entry, matchers) {
			continue
		}

		if isFilterLeaf(entry) {
			kept = append(kept, entry.ShallowCopy())
			continue
		}

		children := filterLevel(entry.Entries, matchers)
		if len(children) == 0 {
			continue
		}

		duplicate := entry.ShallowCopy()
		duplicate.Entries = children
		kept = append(kept, duplicate)
	}

	return kept
}

// isFilterLeaf reports whether filtering stops at this node. Testcases always stop; nodes of an unknown
// category without child entries are treated as leaves rather than being dropped.
func isFilterLeaf(node *report.Node) bool {
	if node.IsLeaf() {
		return true
	}

	switch node.Category {
	case report.CategoryTestplan, report.CategoryMultitest, report.CategoryTestSuite,
		report.CategoryParametrization, report.CategorySynthesized:
		return false
	default:
		return len(node.Entries) == 0
	}
}
