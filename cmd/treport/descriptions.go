package main

// These constants hold the "long" description of a subcommand. These get printed when running `--help`.
const (
	descriptionTreport = `treport provides utilities for working with Testplan report payloads: merging split
exports back together, flattening sharded multitests, and searching through large reports.

The transformations match the ones the report WebUI applies before rendering, so treport can be used
to debug what the UI would show.`

	descriptionFilter = `'treport filter' evaluates a search query against a report and writes the pruned tree.

Queries consist of whitespace-separated groups that all need to match. Groups can be scoped:
'mt:' or 'test:' match multitest names, 's:'/'suite:' suite names, 'c:'/'case:' testcase names,
'tag:' tags, and 're:' interprets its argument as a regular expression over entry names. Bare words
match names and tags alike. Comma-separated terms inside a scoped group are alternatives; the
uppercase word OR splits the whole query into alternatives.

Example use:

	treport filter --search "mt:primary c:test_3" report.json

	treport filter --search "tag:server OR tag:color=blue" --output pruned.json report.json`

	descriptionMerge = `'treport merge' reassembles a report that was exported as split payloads: a main file
carrying the metadata, a structure file carrying the tree, and one or more assertion files carrying
the testcase assertion bodies keyed by testcase uid.

Example use:

	treport merge --structure structure.json --assertions 'assertions/*.json' main.json`

	descriptionFlatten = `'treport flatten' merges multitests that were executed in parts (shards) back into
single entries, concatenating their testcases and summing their counters.`

	descriptionInspect = `'treport inspect' computes the report's indices and prints a text summary: testcase
totals, the non-passing testcases grouped by status, and the tag inventory.`
)
