package uistyle

import (
	"errors"
	"fmt"

	"github.com/npillmayer/uistyle/rules"
	"github.com/npillmayer/uistyle/style"
	"github.com/npillmayer/uistyle/tree"
)

// Errors of tree operations.
var (
	ErrInvalidNode = tree.ErrInvalidNode
	ErrHasParent   = tree.ErrHasParent
	ErrNotChild    = tree.ErrNotChild
	ErrCycle       = tree.ErrCycle
	ErrTextNode    = errors.New("text nodes cannot have children")
)

// ErrNoConvergence is returned by Layout if the geometry did not settle
// within the maximum number of passes.
var ErrNoConvergence = errors.New("layout did not converge")

// Diagnostic reports a style expression which failed to evaluate.
type Diagnostic struct {
	Node NodeID
	Rule *rules.Rule
	Key  style.Key
	Err  error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("node %v, rule %s, key %s: %v", d.Node, d.Rule.Selector(), d.Key.Name(), d.Err)
}

func (m *Manager) report(d Diagnostic) {
	if m.quiet {
		tracer().Debugf("failed to evaluate expression: %s", d)
	} else {
		tracer().Errorf("failed to evaluate expression: %s", d)
	}
	if m.diagnostics != nil {
		m.diagnostics(d)
	}
}
