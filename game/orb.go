package game

import (
	"math"
	"strconv"
)

type FoodOrb struct {
	ID     string
	X, Y   float64
	Radius float64
	Tier   int
	Color  string
	XP     int
}

type PremiumOrb struct {
	ID       string
	X, Y     float64
	Radius   float64
	Rotation float64
	XP       int
}

type foodTier struct {
	xp     int
	radius float64
	color  string
	weight int
}

// Tier 1 is the commonest orb; weights sum to 100.
var foodTiers = [...]foodTier{
	{xp: 5, radius: 8, color: "#7bed9f", weight: 30},
	{xp: 10, radius: 9, color: "#70a1ff", weight: 20},
	{xp: 15, radius: 10, color: "#5352ed", weight: 14},
	{xp: 20, radius: 11, color: "#eccc68", weight: 10},
	{xp: 30, radius: 12, color: "#ffa502", weight: 8},
	{xp: 40, radius: 13, color: "#ff7f50", weight: 6},
	{xp: 50, radius: 14, color: "#ff6b81", weight: 5},
	{xp: 75, radius: 15, color: "#ff4757", weight: 4},
	{xp: 100, radius: 16, color: "#a55eea", weight: 2},
	{xp: 150, radius: 18, color: "#f1f2f6", weight: 1},
}

func foodTierWeightTotal() int {
	total := 0
	for _, t := range foodTiers {
		total += t.weight
	}
	return total
}

// FoodTierXP returns the xp granted by a food orb of the given 1-based tier.
func FoodTierXP(tier int) int {
	if tier < 1 || tier > len(foodTiers) {
		return 0
	}
	return foodTiers[tier-1].xp
}

func (w *World) orbID(prefix string) string {
	w.nextOrbID++
	return prefix + strconv.FormatUint(w.nextOrbID, 36)
}

func (w *World) randomPoint(padding float64) (float64, float64) {
	x := padding + w.rng.Float64()*(w.cfg.MapWidth-2*padding)
	y := padding + w.rng.Float64()*(w.cfg.MapHeight-2*padding)
	return x, y
}

func (w *World) pickFoodTier() int {
	roll := w.rng.IntN(foodTierWeightTotal())
	for i, t := range foodTiers {
		if roll < t.weight {
			return i + 1
		}
		roll -= t.weight
	}
	return 1
}

func (w *World) newFood() *FoodOrb {
	tier := w.pickFoodTier()
	t := foodTiers[tier-1]
	x, y := w.randomPoint(t.radius)
	return &FoodOrb{
		ID:     w.orbID("f"),
		X:      x,
		Y:      y,
		Radius: t.radius,
		Tier:   tier,
		Color:  t.color,
		XP:     t.xp,
	}
}

func (w *World) newPremiumOrb() *PremiumOrb {
	x, y := w.randomPoint(PremiumOrbRadius)
	return &PremiumOrb{
		ID:       w.orbID("po"),
		X:        x,
		Y:        y,
		Radius:   PremiumOrbRadius,
		Rotation: w.rng.Float64() * 2 * math.Pi,
		XP:       PremiumOrbXP,
	}
}

// seedOrbs fills both pools to their configured sizes. It runs once, on the
// first join.
func (w *World) seedOrbs() {
	if w.orbsSeeded {
		return
	}
	w.orbsSeeded = true
	for len(w.Food) < w.cfg.FoodCount {
		f := w.newFood()
		w.Food[f.ID] = f
	}
	for len(w.PremiumOrbs) < w.cfg.PremiumOrbCount {
		o := w.newPremiumOrb()
		w.PremiumOrbs[o.ID] = o
	}
}

func (w *World) replaceFood(id string) *FoodOrb {
	delete(w.Food, id)
	f := w.newFood()
	w.Food[f.ID] = f
	return f
}

func (w *World) replacePremiumOrb(id string) *PremiumOrb {
	delete(w.PremiumOrbs, id)
	o := w.newPremiumOrb()
	w.PremiumOrbs[o.ID] = o
	return o
}
