package match

import "github.com/SaiPrasanna98/Smartroomate/core"

// MatchMonitor provides hooks to observe the matching process.
// Implement this interface to track intermediate steps during a match run.
type MatchMonitor interface {
	Start(userID core.ID)
	AfterPoolListing(candidates []*core.Profile)
	AfterQueryEmbedding(dimensions int)
	AfterScoring(results []*core.MatchResult)
	BelowThreshold(result *core.MatchResult)
	Finish(results []*core.MatchResult)
}

// noopMonitor is a no-op implementation of MatchMonitor
type noopMonitor struct{}

var _ MatchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ core.ID)                    {}
func (n *noopMonitor) AfterPoolListing(_ []*core.Profile) {}
func (n *noopMonitor) AfterQueryEmbedding(_ int)          {}
func (n *noopMonitor) AfterScoring(_ []*core.MatchResult) {}
func (n *noopMonitor) BelowThreshold(_ *core.MatchResult) {}
func (n *noopMonitor) Finish(_ []*core.MatchResult)       {}
