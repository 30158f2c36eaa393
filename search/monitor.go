package search

import "github.com/inklab/docstream/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps during a query.
type SearchMonitor interface {
	Start(query string)
	AfterCandidateRetrieval(records []*core.DocumentRecord)
	AfterVectorRanking(ids []core.ID)
	Finish(results []*core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                    {}
func (n *noopMonitor) AfterCandidateRetrieval(_ []*core.DocumentRecord)  {}
func (n *noopMonitor) AfterVectorRanking(_ []core.ID)                    {}
func (n *noopMonitor) Finish(_ []*core.SearchResult)                     {}
