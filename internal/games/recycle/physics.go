package recycle

import "time"

// TickResult reports what happened during one frame.
type TickResult struct {
	Spawned  []Item
	Resolved []Resolution
}

// Tick runs one frame: spawn, then move every item by the wall-clock time since
// the previous frame, then resolve and remove items past the bin line. It does
// nothing unless the session is PLAYING.
func (s *Session) Tick(now time.Time) TickResult {
	var res TickResult
	if s.closed || s.phase != PhasePlaying {
		return res
	}

	dt := s.frameDelta(now)
	if now.After(s.lastTick) {
		s.lastTick = now
	}
	elapsed := s.Elapsed(now)

	if it, ok := s.spawner.MaybeSpawn(now, s.lastSpawn, elapsed, s.nextID+1); ok {
		s.nextID = it.ID
		s.lastSpawn = now
		s.items = append(s.items, it)
		s.stats.Spawned++
		res.Spawned = append(res.Spawned, it)
	}

	secs := dt.Seconds()
	kept := s.items[:0]
	for _, it := range s.items {
		factor := secs
		if it.Held {
			factor *= s.cfg.Physics.HoldFactor
		}
		it = Advance(it, factor)
		if it.Y > s.cfg.Field.BoundaryY {
			res.Resolved = append(res.Resolved, s.resolve(it))
			continue
		}
		kept = append(kept, it)
	}
	clear(s.items[len(kept):])
	s.items = kept

	return res
}

// frameDelta returns the time since the previous frame, clamped to
// [0, MaxFrameMS] so a suspended terminal does not teleport items.
func (s *Session) frameDelta(now time.Time) time.Duration {
	dt := now.Sub(s.lastTick)
	if dt < 0 {
		return 0
	}
	if limit := time.Duration(s.cfg.Session.MaxFrameMS) * time.Millisecond; dt > limit {
		return limit
	}
	return dt
}

// resolve scores an item that crossed the bin line and notifies collaborators.
func (s *Session) resolve(it Item) Resolution {
	r := Resolve(s.bins, s.cfg.Scoring, it)
	s.score += r.Delta
	if r.Correct {
		s.stats.Correct++
		s.cues.PlayCue(CueCorrect)
	} else {
		s.stats.Wrong++
		s.cues.PlayCue(CueWrong)
	}
	if s.drag.holding && s.drag.id == it.ID {
		s.drag = drag{}
	}
	s.highlight.HighlightBin(r.Target, r.Outcome())
	return r
}
