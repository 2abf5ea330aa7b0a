package game

import (
	"math"
	"sort"
	"time"
)

type contribution struct {
	id     string
	damage float64
}

// contributors ranks the players that damaged victim this life, most damage
// first. Players that left the arena or are dying themselves get nothing.
func (w *World) contributors(victim *Player) []contribution {
	out := make([]contribution, 0, len(victim.DamageDealt))
	for id, dmg := range victim.DamageDealt {
		if id == victim.ID || dmg <= 0 {
			continue
		}
		if p, ok := w.Players[id]; !ok || p.IsDying {
			continue
		}
		out = append(out, contribution{id: id, damage: dmg})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].damage != out[j].damage {
			return out[i].damage > out[j].damage
		}
		return out[i].id < out[j].id
	})
	return out
}

// kill moves every victim into the dying state, then shares 75% of each
// victim's score between everyone who damaged it. The top contributor is
// credited with the kill. Victims of the same collision are all marked dying
// before any score moves, so they never pay each other.
func (w *World) kill(victims []*Player, now time.Time) []Event {
	events := make([]Event, 0, len(victims))
	for _, victim := range victims {
		events = append(events, PlayerDied{
			PlayerID: victim.ID,
			Assists:  []string{},
			Stats: DeathStats{
				TimeSurvivedMs:   now.Sub(victim.SpawnTime).Milliseconds(),
				Kills:            victim.Kills,
				FoodEaten:        victim.FoodEaten,
				PremiumOrbsEaten: victim.PremiumOrbsEaten,
				Score:            victim.Score,
			},
		})
		victim.freeze()
		victim.IsDying = true
		victim.DyingProgress = 0
		victim.IsEating, victim.IsAngry = false, false
	}

	for i, victim := range victims {
		ev := events[i].(PlayerDied)
		ranked := w.contributors(victim)
		if len(ranked) > 0 {
			pool := int(math.Floor(ScoreShareOnDeath * float64(victim.Score)))
			share := pool / len(ranked)
			for j, c := range ranked {
				p := w.Players[c.id]
				p.addScore(share)
				w.clampToMap(p)
				if j == 0 {
					p.Kills++
					ev.KilledBy = c.id
					ev.KillerScore = p.Score
					continue
				}
				ev.Assists = append(ev.Assists, c.id)
			}
		}
		events[i] = ev
	}
	return events
}
