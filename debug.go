package backdrop

import (
	"time"

	"go.uber.org/zap"
)

// debugStats holds per-tick timing and counts. Only populated in debug mode.
type debugStats struct {
	updateTime   time.Duration
	drawTime     time.Duration
	tick         uint64
	objectCount  int
	effectCount  int
	commandCount int
}

// debugLog writes stats at debug level.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	s.log.Debug("frame",
		zap.Uint64("tick", stats.tick),
		zap.Duration("update", stats.updateTime),
		zap.Duration("draw", stats.drawTime),
		zap.Int("objects", stats.objectCount),
		zap.Int("effects", stats.effectCount),
		zap.Int("commands", stats.commandCount))
}
