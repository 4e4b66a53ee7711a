package sim

import (
	"github.com/vovakirdan/tui-defender/internal/core"
)

// Fixed entity dimensions in field units.
const (
	EnemySize     = 30
	BossSize      = 150
	PowerUpSize   = 25
	PowerUpSpeed  = 2
	BossRockSize  = 40
	BossRockSpeed = 4
	BossName      = "ASTEROID MOTHER"
)

// Player is the ship controlled by the user.
type Player struct {
	core.Box
	Speed float64
	Color core.Color
}

// Bullet travels straight up from the player.
type Bullet struct {
	core.Box
	Speed  float64 // Upward speed, positive
	Damage int
	Color  core.Color
}

// AsteroidKind selects the cosmetic palette of an asteroid.
type AsteroidKind int

const (
	AsteroidRust AsteroidKind = iota
	AsteroidStone
	AsteroidSlate
	AsteroidBoss // Thrown by the boss, never rolled by the spawner
)

// asteroidKinds is the number of kinds the spawner picks from.
const asteroidKinds = 3

// AsteroidProfile is the static palette for an asteroid kind.
type AsteroidProfile struct {
	Color   core.Color
	Outline core.Color
}

var asteroidProfiles = [...]AsteroidProfile{
	AsteroidRust:  {Color: core.ColorOrange, Outline: core.ColorYellow},
	AsteroidStone: {Color: core.ColorGray, Outline: core.ColorWhite},
	AsteroidSlate: {Color: core.ColorCyan, Outline: core.ColorBlue},
	AsteroidBoss:  {Color: core.ColorRed, Outline: core.ColorBrightRed},
}

// Profile returns the palette for the kind.
func (k AsteroidKind) Profile() AsteroidProfile {
	if k < 0 || int(k) >= len(asteroidProfiles) {
		return asteroidProfiles[AsteroidStone]
	}
	return asteroidProfiles[k]
}

// Asteroid is a falling rock. Boss-thrown rocks are worth triple score
// and do not count toward asteroid missions.
type Asteroid struct {
	core.Box
	ID            int
	Kind          AsteroidKind
	Speed         float64
	BaseSpeed     float64 // Speed before difficulty scaling
	Rotation      float64
	RotationSpeed float64
	Health        int
	FromBoss      bool
}

// Points returns the score for destroying the asteroid.
func (a Asteroid) Points() int {
	points := int(200 - a.W)
	if a.FromBoss {
		points *= 3
	}
	return points
}

// EnemyKind selects an enemy profile.
type EnemyKind int

const (
	EnemyRaider EnemyKind = iota
	EnemyDart
	EnemyHeavy
	enemyKinds
)

// EnemyProfile is the static profile for an enemy kind.
type EnemyProfile struct {
	Color  core.Color
	Points int
	Speed  float64
}

var enemyProfiles = [enemyKinds]EnemyProfile{
	EnemyRaider: {Color: core.ColorBrightRed, Points: 200, Speed: 2},
	EnemyDart:   {Color: core.ColorOrange, Points: 150, Speed: 3},
	EnemyHeavy:  {Color: core.ColorMagenta, Points: 250, Speed: 1.5},
}

// Profile returns the profile for the kind.
func (k EnemyKind) Profile() EnemyProfile {
	if k < 0 || k >= enemyKinds {
		return enemyProfiles[EnemyRaider]
	}
	return enemyProfiles[k]
}

// Enemy is a hostile ship that weaves while descending.
type Enemy struct {
	core.Box
	ID        int // Also the phase offset of the weave
	Kind      EnemyKind
	Speed     float64
	BaseSpeed float64
	Health    int
	Points    int
	Color     core.Color
}

// Boss is the single large enemy of a run.
type Boss struct {
	core.Box
	Health    int
	MaxHealth int
	Speed     float64
	Pattern   int
	Timer     int
	Phase     int
	Color     core.Color
	Name      string
}

// Buff identifies a timed player modifier.
type Buff int

const (
	BuffShield Buff = iota
	BuffRapidFire
	BuffMultiShot
	BuffCount
)

// BuffProfile is the static profile for a buff and its power-up.
type BuffProfile struct {
	Name   string // Shown when collected
	Label  string // HUD label
	Ended  string // Shown when the buff runs out
	Color  core.Color
	Symbol rune
}

var buffProfiles = [BuffCount]BuffProfile{
	BuffShield:    {Name: "SHIELD", Label: "SHIELD", Ended: "SHIELD DEPLETED", Color: core.ColorBrightYellow, Symbol: 'S'},
	BuffRapidFire: {Name: "RAPIDFIRE", Label: "RAPID FIRE", Ended: "RAPID FIRE ENDED", Color: core.ColorBrightRed, Symbol: 'R'},
	BuffMultiShot: {Name: "MULTISHOT", Label: "MULTI SHOT", Ended: "MULTI SHOT ENDED", Color: core.ColorBrightGreen, Symbol: 'M'},
}

// Profile returns the profile for the buff.
func (b Buff) Profile() BuffProfile {
	if b < 0 || b >= BuffCount {
		return BuffProfile{Name: "UNKNOWN", Label: "UNKNOWN", Symbol: '?'}
	}
	return buffProfiles[b]
}

// String returns the buff's display name.
func (b Buff) String() string {
	return b.Profile().Label
}

// BuffState is the timer of one buff.
type BuffState struct {
	Active    bool
	Remaining int // Ticks until the buff ends
}

// PowerUp is a falling pickup that grants a buff.
type PowerUp struct {
	core.Box
	ID       int
	Kind     Buff
	Speed    float64
	Duration int
	Color    core.Color
	Symbol   rune
}

// Particle is a short-lived cosmetic spark.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int
	Size   float64
	Color  core.Color
}

// Mission is one entry of the ordered mission list.
type Mission struct {
	ID          int
	Title       string
	Description string
	Kind        string
	Target      int
	Current     int
	Reward      int
	Completed   bool
}
