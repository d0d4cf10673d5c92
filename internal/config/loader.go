package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Dir is the per-user arcade directory under the home directory.
const Dir = ".codearcade"

// LoadQuiz loads quiz configuration.
// Search order: customPath -> ~/.codearcade/configs/quiz.yaml -> ./configs/quiz.yaml -> embedded default
func LoadQuiz(customPath string) (QuizConfig, error) {
	cfg, err := load("quiz", customPath, DefaultQuizConfig())
	cfg.Normalize()
	return cfg, err
}

// LoadPuzzle loads puzzle configuration.
// Search order: customPath -> ~/.codearcade/configs/puzzle.yaml -> ./configs/puzzle.yaml -> embedded default
func LoadPuzzle(customPath string) (PuzzleConfig, error) {
	cfg, err := load("puzzle", customPath, DefaultPuzzleConfig())
	cfg.Normalize()
	return cfg, err
}

// load decodes the first config found for gameID. Values missing from the
// file keep the defaults. Only an explicit customPath reports errors; the
// other locations are best effort.
func load[T any](gameID, customPath string, defaults T) (T, error) {
	if customPath != "" {
		cfg := defaults
		data, err := os.ReadFile(customPath)
		if err != nil {
			return defaults, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return defaults, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"
	candidates := []string{filepath.Join("configs", filename)}
	if userPath := UserPath("configs", filename); userPath != "" {
		candidates = append([]string{userPath}, candidates...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := defaults
	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &cfg); err != nil {
		return defaults, nil
	}
	return cfg, nil
}

// UserPath joins elem under ~/.codearcade, or returns empty if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, Dir}, elem...)...)
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
