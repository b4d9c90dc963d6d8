// Package eventlog writes game step events to a logger, so every front
// end reports a run the same way.
package eventlog

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crossroad/internal/core"
)

// Log writes one line per event in result. Outcomes go out at Info,
// moves at Debug.
func Log(logger *log.Logger, result core.StepResult) {
	for _, e := range result.Events {
		switch e {
		case core.EventCrossed:
			logger.Info("crossed", "score", result.State.Score, "best", result.State.Best)
		case core.EventHit:
			logger.Info("hit", "score", result.State.Score)
		case core.EventRestarted:
			logger.Info("restarted", "best", result.State.Best)
		default:
			logger.Debug("event", "event", e)
		}
	}
}
