package main

import "github.com/BurntSushi/toml"

// Scenario configures a run of the "run" subcommand. It is read from a
// TOML file so a scenario can be replayed without recompiling the demo.
type Scenario struct {
	Seed    int64 `toml:"seed"`
	Count   int   `toml:"count"`
	Bound   int64 `toml:"bound"`
	Reverse bool  `toml:"reverse"`
}

func defaultScenario() *Scenario {
	return &Scenario{Seed: 1, Count: 20, Bound: 1000, Reverse: false}
}

func loadScenario(path string) (*Scenario, error) {
	if path == "" {
		return defaultScenario(), nil
	}
	s := defaultScenario()
	if _, err := toml.DecodeFile(path, s); err != nil {
		return nil, err
	}
	return s, nil
}
