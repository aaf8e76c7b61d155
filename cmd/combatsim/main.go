// Package main provides the Mirefall combat simulator. It wires together
// configuration, logging, the roll source, and the combat manager, then runs
// scripted encounters on a generated arena so balance changes can be
// eyeballed from the log output.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/mirefall/mirefall/internal/config"
	"github.com/mirefall/mirefall/internal/game/bestiary"
	"github.com/mirefall/mirefall/internal/game/combat"
	"github.com/mirefall/mirefall/internal/game/effect"
	"github.com/mirefall/mirefall/internal/game/roll"
	"github.com/mirefall/mirefall/internal/game/vision"
	"github.com/mirefall/mirefall/internal/observability"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file (empty = built-in defaults)")
	seed := flag.Int64("seed", 0, "override simulation seed (0 = use config)")
	encounters := flag.Int("encounters", 0, "override encounter count (0 = use config)")
	flag.Parse()

	// Load configuration
	var cfg config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
	} else {
		cfg = config.Default()
	}
	if *seed != 0 {
		cfg.Simulation.Seed = *seed
	}
	if *encounters > 0 {
		cfg.Simulation.Encounters = *encounters
	}

	// Initialize logger
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	// Seed 0 means non-deterministic runs.
	var src roll.Source
	if cfg.Simulation.Seed != 0 {
		src = roll.NewSeeded(cfg.Simulation.Seed)
	} else {
		src = roll.NewCryptoSource()
	}

	logger.Info("starting Mirefall combat simulator",
		zap.Int64("seed", cfg.Simulation.Seed),
		zap.Int("encounters", cfg.Simulation.Encounters),
		zap.Int("fov_range", cfg.Simulation.FOVRange),
	)

	arena := generateArena(cfg.Simulation, src)
	manager := combat.NewManager(logger, src)

	sim := &simulator{
		cfg:     cfg.Simulation,
		logger:  logger,
		src:     src,
		arena:   arena,
		manager: manager,
	}
	summary := sim.run()

	logger.Info("simulation complete",
		zap.Int("encounters", summary.encounters),
		zap.Int("defeats", summary.defeats),
		zap.Int("experience_awarded", summary.experience),
		zap.Int("status_log_lines", summary.statusLines),
		zap.Duration("elapsed", time.Since(start)),
	)
}

// arena is the simulated dungeon grid: true marks a wall tile.
type arena struct {
	width  int
	height int
	walls  map[vision.Tile]bool
}

// blocked reports whether (x, y) blocks line of sight. Tiles outside the
// arena count as walls.
func (a *arena) blocked(x, y int) bool {
	if x < 0 || y < 0 || x >= a.width || y >= a.height {
		return true
	}
	return a.walls[vision.Tile{X: x, Y: y}]
}

// generateArena rolls a wall grid from the simulation settings.
func generateArena(cfg config.SimulationConfig, src roll.Source) *arena {
	a := &arena{
		width:  cfg.ArenaWidth,
		height: cfg.ArenaHeight,
		walls:  make(map[vision.Tile]bool),
	}
	for x := 0; x < a.width; x++ {
		for y := 0; y < a.height; y++ {
			if roll.Chance(src, cfg.WallChance) {
				a.walls[vision.Tile{X: x, Y: y}] = true
			}
		}
	}
	return a
}

type summary struct {
	encounters  int
	defeats     int
	experience  int
	statusLines int
}

type simulator struct {
	cfg     config.SimulationConfig
	logger  *zap.Logger
	src     roll.Source
	arena   *arena
	manager *combat.Manager
}

// run simulates the configured number of encounters. Each encounter pairs
// two freshly spawned monsters, resolves one round in a strategy matching
// the attacker's reach, then advances status-effect ticks.
func (s *simulator) run() summary {
	var sum summary

	kinds := []bestiary.Kind{
		bestiary.Rat, bestiary.Snake, bestiary.Gnoll, bestiary.Crab,
		bestiary.Bat, bestiary.Scorpion, bestiary.Guard, bestiary.Warlock,
		bestiary.Golem,
	}

	for i := 0; i < s.cfg.Encounters; i++ {
		attacker := s.spawn(kinds)
		defender := s.spawn(kinds)
		ax, ay := attacker.Position()
		dx, dy := defender.Position()

		params := combat.AttackParams{
			Attacker:  attacker,
			AttackerX: ax,
			AttackerY: ay,
			Defender:  defender,
			DefenderX: dx,
			DefenderY: dy,
			Blocked:   s.arena.blocked,
			FOVRange:  s.cfg.FOVRange,
		}

		var result combat.CombatResult
		switch {
		case combat.IsRanged(attacker):
			result = s.manager.RangedRound(params)
		case i%2 == 0:
			result = s.manager.Round(params)
		default:
			result = s.manager.InitiativeRound(params)
		}

		for _, line := range result.Logs {
			fmt.Println(line)
		}
		sum.encounters++
		if result.Defeated {
			sum.defeats++
		}
		sum.experience += result.Experience

		sum.statusLines += s.tickStatus(attacker, defender)
	}

	return sum
}

// spawn places a random monster on a random open tile.
func (s *simulator) spawn(kinds []bestiary.Kind) *bestiary.Monster {
	kind := kinds[int(roll.Between(s.src, 0, float64(len(kinds))))]
	for {
		x := int(roll.Between(s.src, 0, float64(s.arena.width)))
		y := int(roll.Between(s.src, 0, float64(s.arena.height)))
		if !s.arena.blocked(x, y) {
			return bestiary.NewMonster(kind, x, y)
		}
	}
}

// tickStatus seeds the occasional damage-over-time effect and advances both
// combatants' effect sets, returning the number of status log lines printed.
func (s *simulator) tickStatus(attacker, defender *bestiary.Monster) int {
	if roll.Chance(s.src, 0.3) && defender.IsAlive() {
		defender.Effects.Add(effect.New(effect.Poison, s.cfg.StatusTicks))
	}
	if roll.Chance(s.src, 0.15) && attacker.IsAlive() {
		attacker.Effects.Add(effect.New(effect.Burning, s.cfg.StatusTicks))
	}

	lines := 0
	for tick := 0; tick < s.cfg.StatusTicks; tick++ {
		for _, m := range []*bestiary.Monster{attacker, defender} {
			for _, line := range m.Effects.Update(m) {
				fmt.Println(line)
				lines++
			}
		}
	}
	return lines
}
