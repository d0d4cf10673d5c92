package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search path only finds the embedded defaults.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var quiz QuizConfig
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML("quiz"), &quiz))
	assert.Equal(t, DefaultQuizConfig(), quiz)

	var puzzle PuzzleConfig
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML("puzzle"), &puzzle))
	assert.Equal(t, DefaultPuzzleConfig(), puzzle)

	assert.Nil(t, GetDefaultYAML("pong"))
}

func TestLoadQuizFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadQuiz("")
	require.NoError(t, err)
	assert.Equal(t, 2000, cfg.FeedbackDelayMs)
	assert.True(t, cfg.ShowExplanations)
}

func TestLoadQuizCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "quiz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("feedback_delay_ms: 500\nshuffle_questions: true\n"), 0o600))

	cfg, err := LoadQuiz(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.FeedbackDelayMs)
	assert.True(t, cfg.ShuffleQuestions)
	assert.True(t, cfg.ShowExplanations, "keys missing from the file keep their defaults")
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	_, err := LoadQuiz(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("drop_zone: [1, 2"), 0o600))
	cfg, err := LoadPuzzle(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
	assert.Equal(t, DefaultPuzzleConfig(), cfg, "defaults are returned with the error")
}

func TestLoadPuzzleUserDirBeatsLocal(t *testing.T) {
	home := isolate(t)

	userDir := filepath.Join(home, Dir, "configs")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "puzzle.yaml"), []byte("snippet: fmt.Println(\"hi\")\n"), 0o600))

	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "puzzle.yaml"), []byte("snippet: local\n"), 0o600))

	cfg, err := LoadPuzzle("")
	require.NoError(t, err)
	assert.Equal(t, `fmt.Println("hi")`, cfg.Snippet)
	assert.Equal(t, 36, cfg.DropZone.Width)
}

func TestLoadPuzzleLocalDir(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "puzzle.yaml"), []byte("show_drop_zone: true\n"), 0o600))

	cfg, err := LoadPuzzle("")
	require.NoError(t, err)
	assert.True(t, cfg.ShowDropZone)
}

func TestNormalize(t *testing.T) {
	quiz := QuizConfig{FeedbackDelayMs: -5}
	quiz.Normalize()
	assert.Equal(t, 2000, quiz.FeedbackDelayMs)

	puzzle := PuzzleConfig{DragScale: 3, TapSquare: -1, DropZone: DropZone{Width: 0, Height: 2, OffsetY: 7}}
	puzzle.Normalize()
	assert.Equal(t, 0.8, puzzle.DragScale)
	assert.Equal(t, 1, puzzle.TapSquare)
	assert.Equal(t, 36, puzzle.DropZone.Width)
	assert.Equal(t, 3, puzzle.DropZone.Height)
	assert.Equal(t, 7, puzzle.DropZone.OffsetY, "offset is kept")
	assert.NotEmpty(t, puzzle.Snippet)
}

func TestExpandHome(t *testing.T) {
	home := isolate(t)

	got, err := ExpandHome("~/scores.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "scores.db"), got)

	got, err = ExpandHome("/abs/path.db")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path.db", got)

	assert.Equal(t, filepath.Join(home, Dir, "arcade.log"), UserPath("arcade.log"))
}
