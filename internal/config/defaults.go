package config

import (
	_ "embed"
)

//go:embed defaults/quiz.yaml
var defaultQuizYAML []byte

//go:embed defaults/puzzle.yaml
var defaultPuzzleYAML []byte

// DefaultQuizConfig returns the default quiz configuration.
func DefaultQuizConfig() QuizConfig {
	return QuizConfig{
		FeedbackDelayMs:  2000,
		ShuffleQuestions: false,
		ShowExplanations: true,
	}
}

// DefaultPuzzleConfig returns the default puzzle configuration.
func DefaultPuzzleConfig() PuzzleConfig {
	return PuzzleConfig{
		Snippet: `System.out.println("Hello world");`,
		DropZone: DropZone{
			Width:   36,
			Height:  3,
			OffsetY: 3,
		},
		DragScale:    0.8,
		TapSquare:    1,
		ShowDropZone: false,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "quiz":
		return defaultQuizYAML
	case "puzzle":
		return defaultPuzzleYAML
	default:
		return nil
	}
}
