package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/blockplan/blockplan/config"
	"github.com/blockplan/blockplan/logic"
	"github.com/blockplan/blockplan/movegen"
	"github.com/blockplan/blockplan/planner"
	"github.com/blockplan/blockplan/world"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	start, err := world.LoadFile(cfg.WorldPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.WorldPath).Msg("loading world")
	}
	goal, err := logic.LoadFile(cfg.GoalPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.GoalPath).Msg("loading goal")
	}

	p := planner.New()
	p.SetTimeout(time.Duration(cfg.TimeoutSeconds * float64(time.Second)))
	plan, err := p.Plan(context.Background(), goal, start)
	if err != nil {
		log.Fatal().Err(err).Msg("planning failed")
	}

	if cfg.Verify && len(plan.Actions) > 0 {
		end, err := movegen.Replay(start, plan.Actions)
		if err != nil {
			log.Fatal().Err(err).Msg("plan replay failed")
		}
		if !goal.Holds(end) {
			log.Fatal().Str("end", end.String()).Msg("plan does not satisfy the goal")
		}
		log.Info().Str("end", end.String()).Msg("plan verified")
	}

	fmt.Println(plan)
}
