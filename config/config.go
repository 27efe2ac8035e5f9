package config

import "github.com/namsral/flag"

type Config struct {
	WorldPath      string
	GoalPath       string
	TimeoutSeconds float64
	Verify         bool
	Debug          bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("blockplan", flag.ContinueOnError)
	fs.StringVar(&c.WorldPath, "world", "world.yaml", "path to the YAML world snapshot")
	fs.StringVar(&c.GoalPath, "goal", "goal.yaml", "path to the YAML goal formula")
	fs.Float64Var(&c.TimeoutSeconds, "timeout", 10, "planning time budget per call, in seconds")
	fs.BoolVar(&c.Verify, "verify", false, "replay the plan against the world and check the goal holds")
	fs.BoolVar(&c.Debug, "debug", false, "debug logging")
	err := fs.Parse(args)
	return err
}
