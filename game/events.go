package game

// Event is something a tick produced that connections need to hear about.
type Event interface {
	isEvent()
}

type FoodCollected struct {
	PlayerID string
	FoodID   string
	NewFood  FoodOrb
	NewScore int
}

type PremiumOrbCollected struct {
	PlayerID string
	OrbID    string
	NewOrb   PremiumOrb
	NewScore int
}

// PlayerCollision carries the state of both sides after one overlapping pair
// was resolved. DamageN is what player N received; 0 while its cooldown runs.
type PlayerCollision struct {
	Player1ID, Player2ID         string
	Player1Health, Player2Health float64
	Player1HP, Player2HP         float64
	Damage1, Damage2             float64
}

type DeathStats struct {
	TimeSurvivedMs   int64
	Kills            int
	FoodEaten        int
	PremiumOrbsEaten int
	Score            int
}

type PlayerDied struct {
	PlayerID    string
	KilledBy    string
	Assists     []string
	Stats       DeathStats
	KillerScore int
}

func (FoodCollected) isEvent()       {}
func (PremiumOrbCollected) isEvent() {}
func (PlayerCollision) isEvent()     {}
func (PlayerDied) isEvent()          {}
