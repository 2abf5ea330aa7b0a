package game

import "math"

// direction turns an input into a unit vector, or ok=false when there is no input.
func (in Input) direction() (dx, dy float64, ok bool) {
	if in.Pointer {
		mag := math.Hypot(in.PointerX, in.PointerY)
		if mag < PointerDeadzone {
			return 0, 0, false
		}
		return in.PointerX / mag, in.PointerY / mag, true
	}
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	mag := math.Hypot(dx, dy)
	if mag == 0 {
		return 0, 0, false
	}
	return dx / mag, dy / mag, true
}

// approach moves v toward target by at most step without overshooting.
func approach(v, target, step float64) float64 {
	if v < target {
		return math.Min(v+step, target)
	}
	return math.Max(v-step, target)
}

func flipped(prev, next float64) bool {
	return prev != 0 && next != 0 && math.Signbit(prev) != math.Signbit(next)
}

func (w *World) accelerateAxis(v, prevTarget, target float64) float64 {
	step := w.cfg.Acceleration
	if flipped(prevTarget, target) {
		step = w.cfg.DirectionChangeDecel
	}
	return approach(v, target, step)
}

func (w *World) decelerateAxis(v float64) float64 {
	v = approach(v, 0, w.cfg.Deceleration)
	if math.Abs(v) < VelocityEpsilon {
		return 0
	}
	return v
}

// move integrates one tick of momentum-based motion for a live player.
func (w *World) move(p *Player, in Input) {
	if dx, dy, ok := in.direction(); ok {
		speed := AdjustedSpeed(w.cfg.BaseSpeed, p.Score)
		tx, ty := dx*speed, dy*speed
		p.VX = w.accelerateAxis(p.VX, p.TargetVX, tx)
		p.VY = w.accelerateAxis(p.VY, p.TargetVY, ty)
		p.TargetVX, p.TargetVY = tx, ty
	} else {
		p.VX = w.decelerateAxis(p.VX)
		p.VY = w.decelerateAxis(p.VY)
		p.TargetVX, p.TargetVY = 0, 0
	}

	p.X += p.VX
	p.Y += p.VY
	w.clampToMap(p)

	p.RotationSpeed = BaseRotationSpeed + p.Speed()*RotationPerSpeed
	p.Rotation = math.Mod(p.Rotation+p.RotationSpeed, 2*math.Pi)
}

// clampToMap keeps the spike silhouette inside the map. Velocity is left as is
// so spikes slide along the walls.
func (w *World) clampToMap(p *Player) {
	r := p.OuterRadius()
	p.X = clamp(p.X, r, w.cfg.MapWidth-r)
	p.Y = clamp(p.Y, r, w.cfg.MapHeight-r)
}
