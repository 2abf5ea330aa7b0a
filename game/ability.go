package game

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrUnknownPlayer = errors.New("player not in arena")
	ErrPlayerDying   = errors.New("player is dying")
	ErrNotMoving     = errors.New("must be moving to use speed boost")
)

// CooldownError is returned when an ability is requested before its cooldown elapsed.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("speed boost on cooldown (%.1fs remaining)", e.Remaining.Seconds())
}

type BoostResult struct {
	PlayerID   string
	X, Y       float64
	VX, VY     float64
	CooldownMs int64
	UsedAt     time.Time
}

// SpeedBoost multiplies the current velocity of a moving player, capped at
// MaxBoostFactor times its cruising speed.
func (w *World) SpeedBoost(id string, now time.Time) (BoostResult, error) {
	p, ok := w.Players[id]
	if !ok {
		return BoostResult{}, ErrUnknownPlayer
	}
	if p.IsDying {
		return BoostResult{}, ErrPlayerDying
	}
	cooldown := w.cfg.BoostCooldown()
	if !p.LastBoost.IsZero() {
		if elapsed := now.Sub(p.LastBoost); elapsed < cooldown {
			return BoostResult{}, &CooldownError{Remaining: cooldown - elapsed}
		}
	}
	speed := p.Speed()
	if speed < w.cfg.BoostMinSpeedRate*w.cfg.BaseSpeed || speed == 0 {
		return BoostResult{}, ErrNotMoving
	}

	nx, ny := p.VX/speed, p.VY/speed
	boosted := math.Min(speed*w.cfg.BoostMultiplier, AdjustedSpeed(w.cfg.BaseSpeed, p.Score)*w.cfg.MaxBoostFactor)
	p.VX, p.VY = nx*boosted, ny*boosted
	p.LastBoost = now

	return BoostResult{
		PlayerID:   id,
		X:          p.X,
		Y:          p.Y,
		VX:         p.VX,
		VY:         p.VY,
		CooldownMs: cooldown.Milliseconds(),
		UsedAt:     now,
	}, nil
}
