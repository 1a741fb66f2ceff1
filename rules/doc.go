/*
Package rules implements the rule index and the cascade.

A rule consists of a chain of matchers and a set of style assignments.
Matcher 0 selects the styled node itself, matcher 1 its parent, and so on.
Rules are kept in a trie keyed by element name (or a text marker), built
over the reversed matcher chains. Walking a node's ancestor chain down the
trie prunes the rule set by names alone; property constraints are checked
by Rule.Test afterwards.

Every rule carries an ID, assigned in load order across all documents of
an Index. Among matching rules, the one with the highest ID wins for each
style key.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rules

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'uistyle.rules'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.rules")
}
