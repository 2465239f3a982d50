package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadVoid loads Void Tripper configuration.
// Search order: customPath -> ~/.arcade/configs/voidtripper.yaml -> ./configs/voidtripper.yaml -> embedded default
func LoadVoid(customPath string) (VoidConfig, error) {
	return load(customPath, "voidtripper.yaml", defaultVoidYAML, DefaultVoidConfig)
}

// LoadInvaders loads Space Invaders configuration.
// Search order: customPath -> ~/.arcade/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default
func LoadInvaders(customPath string) (InvadersConfig, error) {
	return load(customPath, "invaders.yaml", defaultInvadersYAML, DefaultInvadersConfig)
}

// load resolves one config file. Every candidate is decoded on top of the
// hardcoded defaults, so a partial YAML file only overrides what it names.
// Only an explicit customPath can fail; the other locations are best effort.
func load[T any](customPath, filename string, embedded []byte, defaults func() T) (T, error) {
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyVoidPreset modifies the config based on a difficulty preset.
func ApplyVoidPreset(cfg *VoidConfig, preset DifficultyPreset) {
	cfg.Escalation.Enabled = !IsFixedPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Escalation.Initial = 1
		cfg.Escalation.Max = 4
	case DifficultyNormal:
		cfg.Player.Lives = 3
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Escalation.Initial = 2
	}
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
