package quiz

import (
	"fmt"
	"math/rand"
)

// Phase is the stage of the current question.
type Phase int

const (
	PhaseAnswering Phase = iota // Waiting for a submission
	PhaseFeedback               // Answer graded, feedback showing
	PhaseComplete               // All questions answered
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAnswering:
		return "answering"
	case PhaseFeedback:
		return "feedback"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Tone classifies feedback text for coloring.
type Tone int

const (
	ToneNone Tone = iota
	ToneNotice
	ToneCorrect
	ToneWrong
)

// Feedback texts shown to the player.
const (
	MsgSelectAnswer = "Please select an answer!"
	MsgCorrect      = "Correct! ✓"
	MsgWrongFmt     = "Wrong! The correct answer is: %s"
	MsgComplete     = "Quiz Complete!"
	MsgFinalFmt     = "Your final score: %d/%d"
)

// Result is the outcome of grading one submission.
type Result struct {
	QuestionID  string
	Choice      int
	Correct     bool
	CorrectText string
}

// Session walks through a bank one question at a time and keeps the score.
type Session struct {
	questions []Question
	index     int
	score     int
	phase     Phase
	feedback  string
	tone      Tone
	results   []Result
}

// Option configures a Session.
type Option func(*Session)

// WithShuffle randomizes question order with a deterministic seed.
func WithShuffle(seed int64) Option {
	return func(s *Session) {
		rng := rand.New(rand.NewSource(seed))
		rng.Shuffle(len(s.questions), func(i, j int) {
			s.questions[i], s.questions[j] = s.questions[j], s.questions[i]
		})
	}
}

// NewSession starts a session over the bank's questions. Banks that fail
// Validate are rejected. The bank itself is not modified.
func NewSession(b *Bank, opts ...Option) (*Session, error) {
	if b == nil {
		return nil, ErrEmptyBank
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("bank %q: %w", b.ID, err)
	}

	s := &Session{
		questions: append([]Question(nil), b.Questions...),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Current returns the question being asked. It is the zero Question once
// the session is complete.
func (s *Session) Current() Question {
	if s.index >= len(s.questions) {
		return Question{}
	}
	return s.questions[s.index]
}

// Index returns the zero-based position of the current question.
func (s *Session) Index() int { return s.index }

// Total returns the number of questions in the session.
func (s *Session) Total() int { return len(s.questions) }

// Score returns the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Feedback returns the feedback text and its tone.
func (s *Session) Feedback() (string, Tone) { return s.feedback, s.tone }

// Results returns the graded answers in order.
func (s *Session) Results() []Result { return s.results }

// Headline returns the text of the question label.
func (s *Session) Headline() string {
	if s.phase == PhaseComplete {
		return MsgComplete
	}
	return s.Current().Prompt
}

// Submit grades the selected option of the current question.
// A selection of -1 means nothing is checked: the player is asked to pick
// an answer and the session stays in the answering phase.
func (s *Session) Submit(selected int) (Result, error) {
	if s.phase != PhaseAnswering {
		return Result{}, ErrNotAnswering
	}
	if selected == -1 {
		s.feedback, s.tone = MsgSelectAnswer, ToneNotice
		return Result{}, ErrNoSelection
	}

	q := s.Current()
	if selected < 0 || selected >= len(q.Options) {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidChoice, selected)
	}

	res := Result{
		QuestionID:  q.ID,
		Choice:      selected,
		Correct:     q.IsCorrect(selected),
		CorrectText: q.CorrectText(),
	}
	if res.Correct {
		s.score++
		s.feedback, s.tone = MsgCorrect, ToneCorrect
	} else {
		s.feedback, s.tone = fmt.Sprintf(MsgWrongFmt, res.CorrectText), ToneWrong
	}

	s.results = append(s.results, res)
	s.phase = PhaseFeedback
	return res, nil
}

// Next moves past the current question. After the last question the
// session completes and the feedback shows the final score.
func (s *Session) Next() {
	if s.phase == PhaseComplete {
		return
	}

	s.index++
	if s.index >= len(s.questions) {
		s.index = len(s.questions)
		s.phase = PhaseComplete
		s.feedback, s.tone = fmt.Sprintf(MsgFinalFmt, s.score, len(s.questions)), ToneNotice
		return
	}

	s.phase = PhaseAnswering
	s.feedback, s.tone = "", ToneNone
}
