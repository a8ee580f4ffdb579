package reporting

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/testplan-tools/treport/internal/errors"
	"github.com/testplan-tools/treport/internal/report"
)

// summaryStatusOrder fixes the order in which non-passing sections appear in the text summary.
// Statuses outside this list are appended alphabetically.
var summaryStatusOrder = []report.Status{
	report.StatusFailed,
	report.StatusError,
	report.StatusXFail,
	report.StatusUnset,
}

type summaryCase struct {
	path   string
	status report.Status
}

// WriteTextSummary writes a plain-text summary of a report tree. Testcases that did not pass are
// listed under one section per status, with their full breadcrumb path. Trees decorated with indices
// additionally get a tag inventory.
func WriteTextSummary(w io.Writer, root *report.Node) error {
	out := new(strings.Builder)

	title := root.Name
	if title == "" {
		title = "Test Report"
	}
	fmt.Fprintf(out, "%s\n%s\n", title, strings.Repeat("=", len([]rune(title))))

	cases := collectCases(root.Entries, nil)
	if len(cases) == 0 {
		fmt.Fprint(out, "\nNo testcases found.\n")
		_, err := w.Write([]byte(out.String()))
		return errors.WithStack(err)
	}

	passed := 0
	grouped := make(map[report.Status][]summaryCase)
	for _, c := range cases {
		if c.status.CountsAsPass() {
			passed++
			continue
		}
		grouped[c.status] = append(grouped[c.status], c)
	}

	sections := make([]report.Status, 0, len(grouped))
	for _, status := range summaryStatusOrder {
		if len(grouped[status]) > 0 {
			sections = append(sections, status)
		}
	}
	extra := make([]string, 0)
	for status := range grouped {
		if !knownSummaryStatus(status) {
			extra = append(extra, string(status))
		}
	}
	sort.Strings(extra)
	for _, status := range extra {
		sections = append(sections, report.Status(status))
	}

	segments := make([]string, 0, len(sections)+1)
	if passed > 0 {
		segments = append(segments, fmt.Sprintf("%d passed", passed))
	}
	for _, status := range sections {
		segments = append(segments, fmt.Sprintf("%d %s", len(grouped[status]), statusWord(status)))
	}

	noun := "testcases"
	if len(cases) == 1 {
		noun = "testcase"
	}
	fmt.Fprintf(out, "\n%d %s: %s.\n", len(cases), noun, strings.Join(segments, ", "))

	for _, status := range sections {
		fmt.Fprintf(out, "\n%s:\n", sectionTitle(status))
		for _, c := range grouped[status] {
			fmt.Fprintf(out, "- %s\n", c.path)
		}
	}

	if tags := root.TagsIndex.Flatten(); len(tags) > 0 {
		fmt.Fprint(out, "\nTags:\n")
		for _, tag := range tags {
			fmt.Fprintf(out, "- %s\n", tag)
		}
	}

	_, err := w.Write([]byte(out.String()))
	return errors.WithStack(err)
}

func collectCases(entries []*report.Node, trail []string) []summaryCase {
	cases := make([]summaryCase, 0)
	for _, entry := range entries {
		next := make([]string, len(trail)+1)
		copy(next, trail)
		next[len(trail)] = entry.Name

		if entry.IsLeaf() {
			cases = append(cases, summaryCase{path: strings.Join(next, " > "), status: entry.Status})
			continue
		}

		cases = append(cases, collectCases(entry.Entries, next)...)
	}
	return cases
}

func knownSummaryStatus(status report.Status) bool {
	if status.CountsAsPass() {
		return true
	}
	for _, known := range summaryStatusOrder {
		if status == known {
			return true
		}
	}
	return false
}

func statusWord(status report.Status) string {
	if status == report.StatusUnset {
		return "without status"
	}
	return string(status)
}

func sectionTitle(status report.Status) string {
	if status == report.StatusUnset {
		return "No status"
	}
	runes := []rune(string(status))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
