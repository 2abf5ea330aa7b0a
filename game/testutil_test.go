package game

import "time"

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

// emptyWorld has no orbs so tests control every overlap.
func emptyWorld() *World {
	cfg := DefaultConfig()
	cfg.FoodCount = 0
	cfg.PremiumOrbCount = 0
	w := NewWorld(cfg, 1)
	w.orbsSeeded = true
	return w
}

func addPlayer(w *World, id string, x, y float64) *Player {
	p := newPlayer(id, id, x, y, t0)
	w.Players[id] = p
	return p
}

func tickAt(n int) time.Time {
	return t0.Add(time.Duration(n) * time.Second / 60)
}
