package game

import "time"

// Step advances the world by one tick and returns what happened. Players are
// visited in id order so a tick is reproducible for a given seed and inputs.
func Step(w *World, inputs map[string]Input, now time.Time) []Event {
	w.Tick++

	ids := sortedKeys(w.Players)
	for _, id := range ids {
		p := w.Players[id]
		if p.IsDying {
			continue
		}
		w.move(p, inputs[id])
	}

	events := w.collectOrbs(ids)
	events = append(events, w.collidePlayers(ids, now)...)
	w.reap(ids)
	return events
}
