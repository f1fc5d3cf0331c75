package search

import "github.com/rynalabs/ryna/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(text string)
	AfterExtraction(criteria core.Criteria)
	Scored(property *core.Property, score int)
	Disqualified(property *core.Property)
	Filtered(property *core.Property, score int)
	Finish(results []core.ScoredCandidate)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                        {}
func (n *noopMonitor) AfterExtraction(_ core.Criteria)       {}
func (n *noopMonitor) Scored(_ *core.Property, _ int)        {}
func (n *noopMonitor) Disqualified(_ *core.Property)         {}
func (n *noopMonitor) Filtered(_ *core.Property, _ int)      {}
func (n *noopMonitor) Finish(_ []core.ScoredCandidate)       {}
