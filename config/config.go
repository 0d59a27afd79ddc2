package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/jar0582/cpusched/internal/sched"
)

// SchedulerConfig holds the tunables for the scheduler server.
type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int64
}

// Load reads config.yaml from path. A missing file is fine; defaults
// apply. Any other read error is returned.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt64("scheduler.round_robin.time_quantum"),
	}
	if cfg.RoundRobinTimeQuantum <= 0 {
		return nil, fmt.Errorf("%w: configured value %d", sched.ErrInvalidQuantum, cfg.RoundRobinTimeQuantum)
	}
	return cfg, nil
}
