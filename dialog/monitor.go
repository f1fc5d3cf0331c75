package dialog

import "github.com/rynalabs/ryna/core"

// TurnMonitor provides hooks to observe how a conversation turn is handled.
// Implement this interface to track routing decisions and replies.
type TurnMonitor interface {
	Start(text string)
	Routed(intent core.Intent)
	Clarified(prompt core.ClarificationPrompt)
	Finish(turn Turn)
}

// noopTurnMonitor is a no-op implementation of TurnMonitor
type noopTurnMonitor struct{}

var _ TurnMonitor = (*noopTurnMonitor)(nil)

func (n *noopTurnMonitor) Start(_ string)                       {}
func (n *noopTurnMonitor) Routed(_ core.Intent)                 {}
func (n *noopTurnMonitor) Clarified(_ core.ClarificationPrompt) {}
func (n *noopTurnMonitor) Finish(_ Turn)                        {}
