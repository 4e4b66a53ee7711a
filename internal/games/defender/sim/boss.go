package sim

import (
	"math"

	"github.com/vovakirdan/tui-defender/internal/core"
)

// Boss timeline in ticks since spawn.
const (
	bossEntryEnd   = 180
	bossSweepEnd   = 300
	bossEntryMaxY  = 100
	bossPatternLen = 120
	bossRockEvery  = 30

	bossOrbitY       = 150
	bossOrbitRadiusX = 200
	bossOrbitRadiusY = 50
	bossOrbitRate    = 0.03
	bossHoming       = 0.05

	bossPhaseSpeedUp = 1.5
	bossExplosions   = 50
)

// BossStage names the movement stage of the boss.
type BossStage int

const (
	BossEntry BossStage = iota
	BossSweep
	BossAttack
)

// String returns the stage name.
func (st BossStage) String() string {
	switch st {
	case BossEntry:
		return "entry"
	case BossSweep:
		return "sweep"
	default:
		return "attack"
	}
}

// Attack patterns cycled through during the attack stage.
const (
	PatternOrbit = iota
	PatternHoming
	PatternBarrage
)

// Stage returns the movement stage for the boss timer.
func (b *Boss) Stage() BossStage {
	switch {
	case b.Timer < bossEntryEnd:
		return BossEntry
	case b.Timer < bossSweepEnd:
		return BossSweep
	default:
		return BossAttack
	}
}

// updateBoss advances the boss state machine by one tick.
func (s *State) updateBoss() {
	b := s.Boss
	if b == nil {
		return
	}

	b.Timer++
	b.Y += b.Speed

	switch b.Stage() {
	case BossEntry:
		b.Y = min(b.Y, bossEntryMaxY)
	case BossSweep:
		b.X += math.Sin(float64(b.Timer)*0.05) * 2
	case BossAttack:
		b.Pattern = (b.Timer / bossPatternLen) % 3
		s.bossAttack(b)
	}

	if b.Phase == 1 && float64(b.Health) <= float64(b.MaxHealth)*0.5 {
		b.Phase = 2
		b.Speed *= bossPhaseSpeedUp
		b.Color = core.ColorOrange
		s.notify(EventBossPhase, "BOSS PHASE 2! "+b.Name+" ENRAGED", core.ColorOrange, dismissLong)
		s.epic("Boss Phase 2 Activated")
	}

	if b.Health <= 0 {
		s.defeatBoss()
	}
}

// bossAttack runs the current attack pattern.
func (s *State) bossAttack(b *Boss) {
	switch b.Pattern {
	case PatternOrbit:
		angle := float64(b.Timer) * bossOrbitRate
		b.X = s.Width/2 + math.Cos(angle)*bossOrbitRadiusX - b.W/2
		b.Y = bossOrbitY + math.Sin(angle)*bossOrbitRadiusY
	case PatternHoming:
		px, _ := s.Player.Center()
		target := px - b.W/2
		b.X += (target - b.X) * bossHoming
	case PatternBarrage:
		if b.Timer%bossRockEvery == 0 {
			s.spawnBossAsteroid()
		}
	}
}

// defeatBoss pays out the boss reward and removes it for good.
func (s *State) defeatBoss() {
	b := s.Boss
	cx, cy := b.Center()
	for i := 0; i < bossExplosions; i++ {
		s.explode(cx, cy, b.Color)
	}

	s.Score += s.cfg.Boss.Reward
	s.notify(EventBossDefeated, "BOSS DEFEATED! "+b.Name+" DESTROYED", core.ColorBrightYellow, dismissEpic)
	s.epic("Boss Defeated")

	s.Boss = nil
	s.Level += s.cfg.Boss.LevelBonus
	s.tightenSpawnRates()
}
