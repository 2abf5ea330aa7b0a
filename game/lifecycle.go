package game

// Player lifecycle: alive -> dying -> removed. Disconnect removes from either
// state via Remove; respawn builds a brand-new Player via Respawn.

func (p *Player) startEating() {
	p.IsEating = true
	p.EatingProgress = 0
}

func (p *Player) startAngry() {
	p.IsAngry = true
	p.AngryProgress = 0
}

// advance runs the per-tick animation clocks and health regeneration. It
// reports true once the death animation has finished.
func (w *World) advance(p *Player) (finished bool) {
	if p.IsDying {
		p.DyingProgress += w.cfg.perTick(w.cfg.DyingSeconds)
		if p.DyingProgress >= 1 {
			p.DyingProgress = 1
			return true
		}
		return false
	}

	if p.IsEating {
		p.EatingProgress += w.cfg.perTick(EatingSeconds)
		if p.EatingProgress >= 1 {
			p.IsEating = false
			p.EatingProgress = 0
		}
	}
	if p.IsAngry {
		p.AngryProgress += w.cfg.perTick(AngrySeconds)
		if p.AngryProgress >= 1 {
			p.IsAngry = false
			p.AngryProgress = 0
		}
	}

	if p.Health < 100 {
		p.CurrentHP += RegenPerTick(p.MaxHP, w.cfg.TickHz, w.cfg.FullRegenSeconds)
		p.recomputeHealth()
	}
	return false
}

// reap advances every player and deletes those whose death animation ended.
func (w *World) reap(ids []string) {
	for _, id := range ids {
		p, ok := w.Players[id]
		if !ok {
			continue
		}
		if w.advance(p) {
			delete(w.Players, id)
		}
	}
}
