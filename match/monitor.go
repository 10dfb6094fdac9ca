package match

import "github.com/poiesic/gazetteer/core"

// TagMonitor provides hooks to observe a scan.
// Implement this interface to track intermediate steps and results while
// a document is being tagged.
type TagMonitor interface {
	Start(text string)
	AfterTokenization(tokens []string)
	StartSkipped(index int, token string)
	MatchAccepted(match *core.Match)
	Finish(matches []core.Match)
}

// noopMonitor is a no-op implementation of TagMonitor
type noopMonitor struct{}

var _ TagMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                 {}
func (n *noopMonitor) AfterTokenization(_ []string)   {}
func (n *noopMonitor) StartSkipped(_ int, _ string)   {}
func (n *noopMonitor) MatchAccepted(_ *core.Match)    {}
func (n *noopMonitor) Finish(_ []core.Match)          {}
