package room

import (
	"github.com/Satisfaction108/Burrs-io-sub000/game"
	"github.com/Satisfaction108/Burrs-io-sub000/protocol"
)

func playerSnapshot(p *game.Player) protocol.PlayerSnapshot {
	return protocol.PlayerSnapshot{
		ID:             p.ID,
		Username:       p.Username,
		X:              p.X,
		Y:              p.Y,
		VX:             p.VX,
		VY:             p.VY,
		Rotation:       p.Rotation,
		Score:          p.Score,
		Size:           p.SizeMultiplier(),
		Radius:         p.Radius(),
		CurrentHP:      p.CurrentHP,
		MaxHP:          p.MaxHP,
		Health:         p.Health,
		Kills:          p.Kills,
		IsEating:       p.IsEating,
		EatingProgress: p.EatingProgress,
		IsAngry:        p.IsAngry,
		AngryProgress:  p.AngryProgress,
		IsDying:        p.IsDying,
		DyingProgress:  p.DyingProgress,
		SpawnTime:      p.SpawnTime.UnixMilli(),
	}
}

func foodSnapshot(f game.FoodOrb) protocol.FoodSnapshot {
	return protocol.FoodSnapshot{ID: f.ID, X: f.X, Y: f.Y, Radius: f.Radius, Tier: f.Tier, Color: f.Color, XP: f.XP}
}

func premiumOrbSnapshot(o game.PremiumOrb) protocol.PremiumOrbSnapshot {
	return protocol.PremiumOrbSnapshot{ID: o.ID, X: o.X, Y: o.Y, Radius: o.Radius, Rotation: o.Rotation, XP: o.XP}
}

func (r *Room) playerSnapshots() []protocol.PlayerSnapshot {
	out := make([]protocol.PlayerSnapshot, 0, len(r.world.Players))
	for _, p := range r.world.Players {
		out = append(out, playerSnapshot(p))
	}
	return out
}

func (r *Room) premiumOrbSnapshots() []protocol.PremiumOrbSnapshot {
	out := make([]protocol.PremiumOrbSnapshot, 0, len(r.world.PremiumOrbs))
	for _, o := range r.world.PremiumOrbs {
		out = append(out, premiumOrbSnapshot(*o))
	}
	return out
}

func (r *Room) buildSnapshot() protocol.GameState {
	return protocol.GameState{
		Tick:        r.world.Tick,
		Players:     r.playerSnapshots(),
		PremiumOrbs: r.premiumOrbSnapshots(),
	}
}

func (r *Room) buildInit(p *game.Player) protocol.Init {
	food := make([]protocol.FoodSnapshot, 0, len(r.world.Food))
	for _, f := range r.world.Food {
		food = append(food, foodSnapshot(*f))
	}
	cfg := r.world.Config()
	return protocol.Init{
		PlayerID:    p.ID,
		Player:      playerSnapshot(p),
		Players:     r.playerSnapshots(),
		Food:        food,
		PremiumOrbs: r.premiumOrbSnapshots(),
		MapConfig: protocol.MapConfig{
			Width:  cfg.MapWidth,
			Height: cfg.MapHeight,
			TickHz: cfg.TickHz,
		},
	}
}

// eventMessage maps a simulation event to its outbound message.
func eventMessage(ev game.Event) (string, any) {
	switch e := ev.(type) {
	case game.FoodCollected:
		return protocol.MsgFoodCollected, protocol.FoodCollected{
			PlayerID: e.PlayerID,
			FoodID:   e.FoodID,
			NewFood:  foodSnapshot(e.NewFood),
			NewScore: e.NewScore,
		}
	case game.PremiumOrbCollected:
		return protocol.MsgPremiumOrbCollected, protocol.PremiumOrbCollected{
			PlayerID: e.PlayerID,
			OrbID:    e.OrbID,
			NewOrb:   premiumOrbSnapshot(e.NewOrb),
			NewScore: e.NewScore,
		}
	case game.PlayerCollision:
		return protocol.MsgPlayerCollision, protocol.PlayerCollision{
			Player1ID:     e.Player1ID,
			Player2ID:     e.Player2ID,
			Player1Health: e.Player1Health,
			Player2Health: e.Player2Health,
			Player1HP:     e.Player1HP,
			Player2HP:     e.Player2HP,
			Damage1:       e.Damage1,
			Damage2:       e.Damage2,
		}
	case game.PlayerDied:
		return protocol.MsgPlayerDied, protocol.PlayerDied{
			PlayerID: e.PlayerID,
			KilledBy: e.KilledBy,
			Assists:  e.Assists,
			Stats: protocol.DeathStats{
				TimeSurvived:     e.Stats.TimeSurvivedMs,
				Kills:            e.Stats.Kills,
				FoodEaten:        e.Stats.FoodEaten,
				PremiumOrbsEaten: e.Stats.PremiumOrbsEaten,
				Score:            e.Stats.Score,
			},
			KillerScore: e.KillerScore,
		}
	}
	return "", nil
}
