package protocol

// Outbound payloads. Field sets are fixed per message type.

type MapConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	TickHz int     `json:"tickHz"`
}

type PlayerSnapshot struct {
	ID             string  `json:"id"`
	Username       string  `json:"username"`
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	VX             float64 `json:"vx"`
	VY             float64 `json:"vy"`
	Rotation       float64 `json:"rotation"`
	Score          int     `json:"score"`
	Size           float64 `json:"size"`
	Radius         float64 `json:"radius"`
	CurrentHP      float64 `json:"currentHP"`
	MaxHP          float64 `json:"maxHP"`
	Health         float64 `json:"health"`
	Kills          int     `json:"kills"`
	IsEating       bool    `json:"isEating"`
	EatingProgress float64 `json:"eatingProgress"`
	IsAngry        bool    `json:"isAngry"`
	AngryProgress  float64 `json:"angryProgress"`
	IsDying        bool    `json:"isDying"`
	DyingProgress  float64 `json:"dyingProgress"`
	SpawnTime      int64   `json:"spawnTime"` // unix ms
}

type FoodSnapshot struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
	Tier   int     `json:"tier"`
	Color  string  `json:"color"`
	XP     int     `json:"xp"`
}

type PremiumOrbSnapshot struct {
	ID       string  `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Radius   float64 `json:"radius"`
	Rotation float64 `json:"rotation"`
	XP       int     `json:"xp"`
}

type Init struct {
	PlayerID    string               `json:"playerId"`
	Player      PlayerSnapshot       `json:"player"`
	Players     []PlayerSnapshot     `json:"players"`
	Food        []FoodSnapshot       `json:"food"`
	PremiumOrbs []PremiumOrbSnapshot `json:"premiumOrbs"`
	MapConfig   MapConfig            `json:"mapConfig"`
}

type PlayerJoined struct {
	Player PlayerSnapshot `json:"player"`
}

type PlayerLeft struct {
	ID string `json:"id"`
}

type FoodCollected struct {
	PlayerID string       `json:"playerId"`
	FoodID   string       `json:"foodId"`
	NewFood  FoodSnapshot `json:"newFood"`
	NewScore int          `json:"newScore"`
}

type PremiumOrbCollected struct {
	PlayerID string             `json:"playerId"`
	OrbID    string             `json:"orbId"`
	NewOrb   PremiumOrbSnapshot `json:"newOrb"`
	NewScore int                `json:"newScore"`
}

type PlayerCollision struct {
	Player1ID     string  `json:"player1Id"`
	Player2ID     string  `json:"player2Id"`
	Player1Health float64 `json:"player1Health"`
	Player2Health float64 `json:"player2Health"`
	Player1HP     float64 `json:"player1HP"`
	Player2HP     float64 `json:"player2HP"`
	Damage1       float64 `json:"damage1"`
	Damage2       float64 `json:"damage2"`
}

type DeathStats struct {
	TimeSurvived     int64 `json:"timeSurvived"` // ms
	Kills            int   `json:"kills"`
	FoodEaten        int   `json:"foodEaten"`
	PremiumOrbsEaten int   `json:"premiumOrbsEaten"`
	Score            int   `json:"score"`
}

type PlayerDied struct {
	PlayerID    string     `json:"playerId"`
	KilledBy    string     `json:"killedBy"`
	Assists     []string   `json:"assists"`
	Stats       DeathStats `json:"stats"`
	KillerScore int        `json:"killerScore"`
}

type SpeedBoostUsed struct {
	CooldownMs int64 `json:"cooldownMs"`
	UsedAt     int64 `json:"usedAt"` // unix ms
}

type SpeedBoostError struct {
	Message string `json:"message"`
}

// PlayerBoosted is the boost visual sent to everyone but the booster.
type PlayerBoosted struct {
	PlayerID string  `json:"playerId"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

type GameState struct {
	Tick        int                  `json:"tick"`
	Players     []PlayerSnapshot     `json:"players"`
	PremiumOrbs []PremiumOrbSnapshot `json:"premiumOrbs"`
}
