package game

import (
	"math"
	"math/rand/v2"
	"time"
)

// Internal truth authoritative game state. A World is owned by exactly one
// goroutine; nothing in this package locks.

type World struct {
	Tick        int
	Players     map[string]*Player
	Food        map[string]*FoodOrb
	PremiumOrbs map[string]*PremiumOrb

	cfg        Config
	rng        *rand.Rand
	orbsSeeded bool
	nextOrbID  uint64
}

func NewWorld(cfg Config, seed uint64) *World {
	return &World{
		Players:     make(map[string]*Player),
		Food:        make(map[string]*FoodOrb),
		PremiumOrbs: make(map[string]*PremiumOrb),
		cfg:         cfg,
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (w *World) Config() Config { return w.cfg }

type Player struct {
	ID       string
	Username string

	X, Y, VX, VY       float64
	TargetVX, TargetVY float64
	Rotation           float64
	RotationSpeed      float64

	Score            int
	Kills            int
	FoodEaten        int
	PremiumOrbsEaten int

	CurrentHP float64
	MaxHP     float64
	Health    float64 // percent of MaxHP

	// DamageDealt maps attacker id to the damage it has dealt to this player
	// during the current life.
	DamageDealt map[string]float64

	LastCollision time.Time
	LastBoost     time.Time
	SpawnTime     time.Time

	IsEating       bool
	EatingProgress float64
	IsAngry        bool
	AngryProgress  float64
	IsDying        bool
	DyingProgress  float64
}

func newPlayer(id, username string, x, y float64, now time.Time) *Player {
	maxHP := MaxHP(0)
	return &Player{
		ID:            id,
		Username:      username,
		X:             x,
		Y:             y,
		RotationSpeed: BaseRotationSpeed,
		CurrentHP:     maxHP,
		MaxHP:         maxHP,
		Health:        100,
		DamageDealt:   make(map[string]float64),
		SpawnTime:     now,
	}
}

func (p *Player) SizeMultiplier() float64 { return SizeMultiplier(p.Score) }

func (p *Player) Radius() float64 { return PlayerBaseRadius * p.SizeMultiplier() }

// OuterRadius includes the protruding spikes.
func (p *Player) OuterRadius() float64 { return p.Radius() * SpikeOuterFactor }

func (p *Player) Speed() float64 { return math.Hypot(p.VX, p.VY) }

func (p *Player) recomputeHealth() {
	p.CurrentHP = clamp(p.CurrentHP, 0, p.MaxHP)
	p.Health = p.CurrentHP / p.MaxHP * 100
}

// addScore credits xp and grows max HP; crossing a milestone grants the new HP too.
func (p *Player) addScore(xp int) {
	if xp <= 0 {
		return
	}
	p.Score += xp
	if maxHP := MaxHP(p.Score); maxHP > p.MaxHP {
		p.CurrentHP += maxHP - p.MaxHP
		p.MaxHP = maxHP
	}
	p.recomputeHealth()
}

func (p *Player) freeze() {
	p.VX, p.VY = 0, 0
	p.TargetVX, p.TargetVY = 0, 0
}

// Input is the latest movement intent of one player.
type Input struct {
	Up, Down, Left, Right bool

	// Pointer is set when the direction comes from a cursor vector relative
	// to the spike's centre instead of keys.
	Pointer            bool
	PointerX, PointerY float64
}
