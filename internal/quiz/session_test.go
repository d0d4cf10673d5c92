package quiz

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(DefaultBank())
	require.NoError(t, err)
	return s
}

func TestSessionStartsAtFirstQuestion(t *testing.T) {
	s := newDefaultSession(t)

	assert.Equal(t, PhaseAnswering, s.Phase())
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 3, s.Total())
	assert.Equal(t, "Which method is often used to print text in Java?", s.Headline())

	msg, tone := s.Feedback()
	assert.Empty(t, msg)
	assert.Equal(t, ToneNone, tone)
}

func TestSubmitWithoutSelection(t *testing.T) {
	s := newDefaultSession(t)

	_, err := s.Submit(-1)
	require.ErrorIs(t, err, ErrNoSelection)

	msg, tone := s.Feedback()
	assert.Equal(t, "Please select an answer!", msg)
	assert.Equal(t, ToneNotice, tone)
	assert.Equal(t, PhaseAnswering, s.Phase(), "no selection must not leave the answering phase")
	assert.Equal(t, 0, s.Score())
}

func TestSubmitCorrect(t *testing.T) {
	s := newDefaultSession(t)

	res, err := s.Submit(0)
	require.NoError(t, err)

	assert.True(t, res.Correct)
	assert.Equal(t, "print", res.QuestionID)
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, PhaseFeedback, s.Phase())

	msg, tone := s.Feedback()
	assert.Equal(t, "Correct! ✓", msg)
	assert.Equal(t, ToneCorrect, tone)
}

func TestSubmitWrongNamesCorrectAnswer(t *testing.T) {
	s := newDefaultSession(t)

	res, err := s.Submit(3)
	require.NoError(t, err)

	assert.False(t, res.Correct)
	assert.Equal(t, 0, s.Score())

	msg, tone := s.Feedback()
	assert.Equal(t, "Wrong! The correct answer is: println()", msg)
	assert.Equal(t, ToneWrong, tone)
}

func TestSubmitTwiceIsRejected(t *testing.T) {
	s := newDefaultSession(t)

	_, err := s.Submit(0)
	require.NoError(t, err)

	_, err = s.Submit(0)
	require.ErrorIs(t, err, ErrNotAnswering)
	assert.Equal(t, 1, s.Score(), "a question is graded at most once")
}

func TestSubmitOutOfRange(t *testing.T) {
	s := newDefaultSession(t)

	_, err := s.Submit(4)
	require.ErrorIs(t, err, ErrInvalidChoice)
	assert.Equal(t, PhaseAnswering, s.Phase())
}

func TestFullRunScoresAndCompletes(t *testing.T) {
	tests := []struct {
		name    string
		choices []int
		score   int
	}{
		{"all correct", []int{0, 0, 0}, 3},
		{"all wrong", []int{1, 2, 3}, 0},
		{"mixed", []int{0, 1, 0}, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newDefaultSession(t)
			for _, c := range tc.choices {
				_, err := s.Submit(c)
				require.NoError(t, err)
				s.Next()
			}

			assert.Equal(t, PhaseComplete, s.Phase())
			assert.Equal(t, tc.score, s.Score())
			assert.Equal(t, "Quiz Complete!", s.Headline())

			msg, _ := s.Feedback()
			assert.Equal(t, fmt.Sprintf("Your final score: %d/3", tc.score), msg)
			assert.Len(t, s.Results(), 3)
			assert.LessOrEqual(t, s.Score(), s.Total())
		})
	}
}

func TestNextAfterCompleteIsNoop(t *testing.T) {
	s := newDefaultSession(t)
	for i := 0; i < s.Total(); i++ {
		s.Next()
	}
	require.Equal(t, PhaseComplete, s.Phase())

	s.Next()
	assert.Equal(t, PhaseComplete, s.Phase())
	assert.Equal(t, s.Total(), s.Index())
	assert.Equal(t, Question{}, s.Current())
}

func TestNextClearsFeedback(t *testing.T) {
	s := newDefaultSession(t)
	_, err := s.Submit(1)
	require.NoError(t, err)

	s.Next()

	msg, tone := s.Feedback()
	assert.Empty(t, msg)
	assert.Equal(t, ToneNone, tone)
	assert.Equal(t, PhaseAnswering, s.Phase())
	assert.Equal(t, "main", s.Current().ID)
}

func TestNewSessionEmptyBank(t *testing.T) {
	_, err := NewSession(&Bank{ID: "empty"})
	require.ErrorIs(t, err, ErrEmptyBank)

	_, err = NewSession(nil)
	require.ErrorIs(t, err, ErrEmptyBank)
}

func TestNewSessionRejectsInvalidBank(t *testing.T) {
	b := DefaultBank()
	b.Questions[1].Options = append(b.Questions[1].Options, "five")

	_, err := NewSession(b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question 2")
	assert.NotErrorIs(t, err, ErrEmptyBank)
}

func TestShuffleIsDeterministicAndLeavesBankAlone(t *testing.T) {
	b := &Bank{ID: "nums"}
	for i := 0; i < 10; i++ {
		b.Questions = append(b.Questions, Question{
			ID:      fmt.Sprintf("n%d", i),
			Prompt:  fmt.Sprintf("Question %d", i),
			Options: []string{"yes", "no"},
		})
	}

	order := func(seed int64) []string {
		s, err := NewSession(b, WithShuffle(seed))
		require.NoError(t, err)
		var ids []string
		for s.Phase() != PhaseComplete {
			ids = append(ids, s.Current().ID)
			s.Next()
		}
		return ids
	}

	first := order(42)
	assert.Equal(t, first, order(42))
	assert.Len(t, first, 10)
	assert.ElementsMatch(t, []string{"n0", "n1", "n2", "n3", "n4", "n5", "n6", "n7", "n8", "n9"}, first)
	assert.Equal(t, "n0", b.Questions[0].ID, "shuffle must not reorder the bank")
}
