package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	RulesFile    = "rules.yaml"
	BuffsFile    = "buffs.yaml"
	ScenarioFile = "scenario.yaml"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// loadOptional leaves out untouched and reports false when path does not exist.
func loadOptional(path string, out any) (bool, error) {
	err := loadYAML(path, out)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	return true, nil
}

// LoadScenario reads a single scenario file and fills in defaults.
func LoadScenario(path string) (*ScenarioConfig, error) {
	var sc ScenarioConfig
	if err := loadYAML(path, &sc); err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}
	applyScenarioDefaults(&sc)
	return &sc, nil
}

// LoadAll reads rules.yaml, buffs.yaml and scenario.yaml from dir. The rules and
// buffs files are optional and come back nil when absent.
func LoadAll(dir string) (*RulesConfig, *BuffsConfig, *ScenarioConfig, error) {
	var rc RulesConfig
	var bc BuffsConfig
	hasRules, err := loadOptional(filepath.Join(dir, RulesFile), &rc)
	if err != nil {
		return nil, nil, nil, err
	}
	hasBuffs, err := loadOptional(filepath.Join(dir, BuffsFile), &bc)
	if err != nil {
		return nil, nil, nil, err
	}
	sc, err := LoadScenario(filepath.Join(dir, ScenarioFile))
	if err != nil {
		return nil, nil, nil, err
	}
	var rules *RulesConfig
	if hasRules {
		rules = &rc
	}
	var buffs *BuffsConfig
	if hasBuffs {
		buffs = &bc
	}
	return rules, buffs, sc, nil
}

func applyScenarioDefaults(sc *ScenarioConfig) {
	if sc.Grid.Base == "" {
		sc.Grid.Base = "plains"
	}
	if sc.Objective.Kind == "" {
		sc.Objective.Kind = "capture"
	}
	if len(sc.TurnOrder) == 0 {
		for _, ch := range sc.Characters {
			sc.TurnOrder = append(sc.TurnOrder, ch.ID)
		}
	}
	if sc.Objective.Player == "" && len(sc.TurnOrder) > 0 {
		sc.Objective.Player = sc.TurnOrder[0]
	}
	for i := range sc.Units {
		if sc.Units[i].MaxHealth == 0 {
			sc.Units[i].MaxHealth = 100
		}
		if sc.Units[i].Health == 0 {
			sc.Units[i].Health = sc.Units[i].MaxHealth
		}
	}
}
