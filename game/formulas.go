package game

import "math"

// Pure functions of score. Everything that grows with a spike goes through here.

const (
	baseMaxHP          = 10.0
	maxHPPerMilestone  = 5.0
	baseDamage         = 1.0
	damagePerMilestone = 2.0
	firstMilestone     = 1000
	milestoneGrowth    = 5
)

// SizeMultiplier ramps 1x→2x over [0,3000), 2x→3x over [3000,15000),
// 3x→4x over [15000,75000) and stays at 4x afterwards.
func SizeMultiplier(score int) float64 {
	s := float64(score)
	switch {
	case s <= 0:
		return 1
	case s < 3000:
		return 1 + s/3000
	case s < 15000:
		return 2 + (s-3000)/12000
	case s < 75000:
		return 3 + (s-15000)/60000
	default:
		return 4
	}
}

// milestones returns how many of the 1000×5^n thresholds score has reached,
// together with the last reached threshold and the next one.
func milestones(score int) (n int, prev, next float64) {
	prev, next = 0, firstMilestone
	s := float64(score)
	for s >= next {
		n++
		prev = next
		next *= milestoneGrowth
	}
	return n, prev, next
}

// MaxHP is 10 plus 5 for every milestone reached.
func MaxHP(score int) float64 {
	n, _, _ := milestones(score)
	return baseMaxHP + maxHPPerMilestone*float64(n)
}

// DamagePoints is 1 plus 2 per milestone, interpolated linearly between milestones.
func DamagePoints(score int) float64 {
	if score <= 0 {
		return baseDamage
	}
	n, prev, next := milestones(score)
	frac := (float64(score) - prev) / (next - prev)
	return baseDamage + damagePerMilestone*(float64(n)+frac)
}

// RegenPerTick heals a full bar in fullRegenSeconds whatever maxHP is.
func RegenPerTick(maxHP float64, tickHz int, fullRegenSeconds float64) float64 {
	return maxHP / (float64(tickHz) * fullRegenSeconds)
}

// AdjustedSpeed is the cruising speed of a spike: bigger spikes are slower.
func AdjustedSpeed(baseSpeed float64, score int) float64 {
	return baseSpeed / math.Sqrt(SizeMultiplier(score))
}

// DamageFactor maps the attacker's speed into [0.5, 2].
func DamageFactor(speed, baseSpeed float64) float64 {
	ratio := clamp(speed/baseSpeed, 0, 1)
	return 0.5 + 1.5*ratio
}

// CollisionDamage is the HP an attacker with the given score and speed takes off its victim.
func CollisionDamage(attackerScore int, attackerSpeed, baseSpeed float64) float64 {
	return math.Round(DamagePoints(attackerScore) * DamageFactor(attackerSpeed, baseSpeed))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
