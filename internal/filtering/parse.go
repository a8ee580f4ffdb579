package filtering

import "strings"

// Parse compiles a search string into a filter list. The grammar is the one users type into the report
// search box:
//
//	primary beta            free text (tokens OR-combined within the term)
//	mt:primary test:api     multitest name filter ("mt" and "test" are aliases)
//	s:alpha suite:alpha     testsuite name filter
//	c:test_3 case:test_3    testcase name filter
//	tag:server tag:color=blue   tag filter, exact membership
//	re:^test_[0-9]+$        regular expression over names
//	tag:server OR tag:cache grouped alternatives
//
// Juxtaposed terms are AND-combined; the uppercase keyword OR splits the expression into alternatives of
// which any one has to match. Scoped terms accept comma-separated lists (`c:foo,bar` requires both
// substrings in one testcase name).
//
// Parsing itself cannot fail: invalid regular expressions surface as a FilterError when the filter is
// evaluated, not here.
func Parse(query string) []Node {
	groups := splitAlternatives(strings.Fields(query))

	if len(groups) == 1 {
		return parseGroup(groups[0])
	}

	alternatives := make([][]Node, 0, len(groups))
	for _, group := range groups {
		alternatives = append(alternatives, parseGroup(group))
	}

	return []Node{{Kind: KindOR, Alternatives: alternatives}}
}

// splitAlternatives splits a token stream on the OR keyword. Without any OR, the result is a single group.
func splitAlternatives(tokens []string) [][]string {
	groups := make([][]string, 0, 1)
	current := make([]string, 0, len(tokens))

	for _, token := range tokens {
		if token == "OR" {
			groups = append(groups, current)
			current = make([]string, 0, len(tokens))
			continue
		}
		current = append(current, token)
	}

	return append(groups, current)
}

func parseGroup(tokens []string) []Node {
	filters := make([]Node, 0, len(tokens))
	freeText := make([]string, 0)

	for _, token := range tokens {
		scope, value, ok := strings.Cut(token, ":")
		if !ok || value == "" {
			freeText = append(freeText, token)
			continue
		}

		switch strings.ToLower(scope) {
		case "mt", "test":
			filters = append(filters, Node{Kind: KindTest, Terms: strings.Split(value, ",")})
		case "s", "suite":
			filters = append(filters, Node{Kind: KindSuite, Terms: strings.Split(value, ",")})
		case "c", "case":
			filters = append(filters, Node{Kind: KindCase, Terms: strings.Split(value, ",")})
		case "tag":
			filters = append(filters, Node{Kind: KindTag, Terms: strings.Split(value, ",")})
		case "re", "regex", "regexp":
			filters = append(filters, Node{Kind: KindRegexp, Text: value})
		default:
			// Unrecognized scopes are plain words as far as the search is concerned.
			freeText = append(freeText, token)
		}
	}

	if len(freeText) > 0 {
		filters = append(filters, Node{Kind: KindFreeText, Text: strings.Join(freeText, " ")})
	}

	return filters
}
