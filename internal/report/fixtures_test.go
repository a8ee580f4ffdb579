package report_test

import (
	"github.com/testplan-tools/treport/internal/report"
)

// testcase returns a leaf testcase node.
func testcase(uid, name string, status report.Status) *report.Node {
	return &report.Node{
		UID:      uid,
		Name:     name,
		Category: report.CategoryTestCase,
		Type:     report.TypeTestCaseReport,
		Status:   status,
	}
}

// suite returns a testsuite node holding the given testcases.
func suite(uid, name string, tags report.TagMap, entries ...*report.Node) *report.Node {
	return &report.Node{
		UID:      uid,
		Name:     name,
		Category: report.CategoryTestSuite,
		Type:     report.TypeTestGroupReport,
		Tags:     tags,
		Entries:  entries,
	}
}

// multitest returns a multitest node holding the given suites.
func multitest(uid, name string, entries ...*report.Node) *report.Node {
	return &report.Node{
		UID:      uid,
		Name:     name,
		Category: report.CategoryMultitest,
		Type:     report.TypeTestGroupReport,
		Entries:  entries,
	}
}

// sampleTaggedReport builds the tagged sample testplan used across the transformation specs:
//
//	Primary
//	  Alpha (color=red):  test_1 passed, test_2 failed
//	  Beta  (server):     test_1 passed, test_2 failed, test_3 passed
//	Secondary
//	  Gamma (color=blue): test_4 passed, test_5 error, test_6 xfail
func sampleTaggedReport() *report.Node {
	return &report.Node{
		UID:      "plan-1",
		Name:     "Sample Testplan",
		Category: report.CategoryTestplan,
		Entries: []*report.Node{
			multitest("mt-primary", "Primary",
				suite("st-alpha", "Alpha", report.TagMap{"color": {"red"}},
					testcase("tc-a1", "test_1", report.StatusPassed),
					testcase("tc-a2", "test_2", report.StatusFailed),
				),
				suite("st-beta", "Beta", report.TagMap{report.SimpleTagName: {"server"}},
					testcase("tc-b1", "test_1", report.StatusPassed),
					testcase("tc-b2", "test_2", report.StatusFailed),
					testcase("tc-b3", "test_3", report.StatusPassed),
				),
			),
			multitest("mt-secondary", "Secondary",
				suite("st-gamma", "Gamma", report.TagMap{"color": {"blue"}},
					testcase("tc-g1", "test_4", report.StatusPassed),
					testcase("tc-g2", "test_5", report.StatusError),
					testcase("tc-g3", "test_6", report.StatusXFail),
				),
			),
		},
	}
}
