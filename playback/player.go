package playback

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/karalvik/npuzzle/board"
)

// DefaultFrameInterval paces streamed playback when no interval is
// configured: one move per second, slow enough to follow by eye.
const DefaultFrameInterval = time.Second

// Player streams a solution's frames to a hub session on a fixed clock.
type Player struct {
	hub      *Hub
	interval time.Duration
	log      *logrus.Logger
}

// NewPlayer builds a Player. A non-positive interval falls back to
// DefaultFrameInterval; a nil logger to the logrus default.
func NewPlayer(hub *Hub, interval time.Duration, log *logrus.Logger) *Player {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Player{hub: hub, interval: interval, log: log}
}

// Play emits the start board as step 0, then one solution frame per
// tick, then a playback_done event. It returns early if ctx is
// cancelled; the caller typically runs it on its own goroutine.
func (p *Player) Play(ctx context.Context, session string, start board.Board, path []board.Board) {
	total := len(path)
	p.hub.BroadcastEvent(session, "playback_start", map[string]int{"moves": total})
	p.hub.BroadcastFrame(session, newFrame(start, 0, total))

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for i, frame := range path {
		select {
		case <-ctx.Done():
			p.log.WithFields(logrus.Fields{"session": session, "step": i}).Debug("playback cancelled")
			return
		case <-ticker.C:
		}
		p.hub.BroadcastFrame(session, newFrame(frame, i+1, total))
	}
	p.hub.BroadcastEvent(session, "playback_done", map[string]int{"moves": total})
}
