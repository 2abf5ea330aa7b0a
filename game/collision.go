package game

import (
	"math"
	"sort"
	"time"
)

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func overlaps(ax, ay, ar, bx, by, br float64) bool {
	return math.Hypot(bx-ax, by-ay) < ar+br
}

// collectOrbs checks every live player against both orb pools. Orbs spawned
// during this pass are not eligible until the next tick.
func (w *World) collectOrbs(ids []string) []Event {
	var events []Event
	foodIDs := sortedKeys(w.Food)
	premiumIDs := sortedKeys(w.PremiumOrbs)

	for _, id := range ids {
		p := w.Players[id]
		if p == nil || p.IsDying {
			continue
		}
		r := p.Radius()
		for _, fid := range foodIDs {
			f, ok := w.Food[fid]
			if !ok || !overlaps(p.X, p.Y, r, f.X, f.Y, f.Radius) {
				continue
			}
			p.addScore(f.XP)
			w.clampToMap(p)
			p.FoodEaten++
			p.startEating()
			nf := w.replaceFood(fid)
			events = append(events, FoodCollected{PlayerID: id, FoodID: fid, NewFood: *nf, NewScore: p.Score})
		}
		for _, oid := range premiumIDs {
			o, ok := w.PremiumOrbs[oid]
			if !ok || !overlaps(p.X, p.Y, r, o.X, o.Y, o.Radius) {
				continue
			}
			p.addScore(o.XP)
			w.clampToMap(p)
			p.PremiumOrbsEaten++
			p.startEating()
			no := w.replacePremiumOrb(oid)
			events = append(events, PremiumOrbCollected{PlayerID: id, OrbID: oid, NewOrb: *no, NewScore: p.Score})
		}
	}
	return events
}

// collidePlayers resolves every unordered pair of live players.
func (w *World) collidePlayers(ids []string, now time.Time) []Event {
	var events []Event
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := w.Players[ids[i]], w.Players[ids[j]]
			if a == nil || b == nil || a.IsDying || b.IsDying {
				continue
			}
			events = append(events, w.collidePair(a, b, now)...)
		}
	}
	return events
}

func (w *World) collidePair(a, b *Player, now time.Time) []Event {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dist := math.Hypot(dx, dy)
	threshold := a.OuterRadius() + b.OuterRadius()
	if dist >= threshold {
		return nil
	}

	nx, ny := 1.0, 0.0
	if dist > 0 {
		nx, ny = dx/dist, dy/dist
	}
	overlap := threshold - dist

	// Damage depends on speed at contact, before knockback changes it.
	speedA, speedB := a.Speed(), b.Speed()

	push := overlap/2 + CollisionPadding
	a.X -= nx * push
	a.Y -= ny * push
	b.X += nx * push
	b.Y += ny * push
	w.clampToMap(a)
	w.clampToMap(b)

	impulse := math.Min(overlap*KnockbackPerDepth, KnockbackMax)
	a.VX -= nx * impulse
	a.VY -= ny * impulse
	b.VX += nx * impulse
	b.VY += ny * impulse

	// b's output lands on a, a's output lands on b.
	dmgA := w.hit(a, b, speedB, now)
	dmgB := w.hit(b, a, speedA, now)

	events := []Event{PlayerCollision{
		Player1ID:     a.ID,
		Player2ID:     b.ID,
		Player1Health: a.Health,
		Player2Health: b.Health,
		Player1HP:     a.CurrentHP,
		Player2HP:     b.CurrentHP,
		Damage1:       dmgA,
		Damage2:       dmgB,
	}}
	var dead []*Player
	for _, victim := range [...]*Player{a, b} {
		if victim.CurrentHP <= 0 && !victim.IsDying {
			dead = append(dead, victim)
		}
	}
	if len(dead) > 0 {
		events = append(events, w.kill(dead, now)...)
	}
	return events
}

// hit applies attacker's damage to victim unless the victim's cooldown is
// still running, and returns the damage dealt.
func (w *World) hit(victim, attacker *Player, attackerSpeed float64, now time.Time) float64 {
	if !victim.LastCollision.IsZero() && now.Sub(victim.LastCollision) < w.cfg.DamageCooldown() {
		return 0
	}
	dmg := CollisionDamage(attacker.Score, attackerSpeed, w.cfg.BaseSpeed)
	victim.CurrentHP -= dmg
	victim.recomputeHealth()
	victim.startAngry()
	victim.LastCollision = now
	victim.DamageDealt[attacker.ID] += dmg
	return dmg
}
