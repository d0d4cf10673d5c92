// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

// QuizConfig contains all configuration for the quiz game.
type QuizConfig struct {
	Bank             string `yaml:"bank"`              // Bank file or directory, empty for built-in
	FeedbackDelayMs  int    `yaml:"feedback_delay_ms"` // Auto-advance delay after grading
	ShuffleQuestions bool   `yaml:"shuffle_questions"`
	ShowExplanations bool   `yaml:"show_explanations"`
}

// Normalize replaces out-of-range values with defaults.
func (c *QuizConfig) Normalize() {
	if c.FeedbackDelayMs < 0 {
		c.FeedbackDelayMs = DefaultQuizConfig().FeedbackDelayMs
	}
}

// PuzzleConfig contains all configuration for the drag-and-drop puzzle.
type PuzzleConfig struct {
	Snippet      string   `yaml:"snippet"`
	DropZone     DropZone `yaml:"drop_zone"`
	DragScale    float64  `yaml:"drag_scale"`
	TapSquare    int      `yaml:"tap_square"`
	ShowDropZone bool     `yaml:"show_drop_zone"`
}

// DropZone sizes and places the invisible drop target.
type DropZone struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	OffsetY int `yaml:"offset_y"` // Rows above the vertical center
}

// Normalize replaces out-of-range values with defaults.
func (c *PuzzleConfig) Normalize() {
	def := DefaultPuzzleConfig()
	if c.Snippet == "" {
		c.Snippet = def.Snippet
	}
	if c.DropZone.Width < 1 || c.DropZone.Height < 1 {
		c.DropZone.Width = def.DropZone.Width
		c.DropZone.Height = def.DropZone.Height
	}
	if c.DragScale <= 0 || c.DragScale > 1 {
		c.DragScale = def.DragScale
	}
	if c.TapSquare < 0 {
		c.TapSquare = def.TapSquare
	}
}
