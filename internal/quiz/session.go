package quiz

import (
	"fmt"
	"maps"
	"sync"

	"github.com/google/uuid"

	"nexus.regintel.org/internal/metrics"
)

// Session tracks one attempt at the quiz.
type Session struct {
	ID        string      `json:"id"`
	Current   int         `json:"currentQuestion"`
	Answers   map[int]int `json:"selectedAnswers"`
	Started   bool        `json:"started"`
	Completed bool        `json:"completed"`
}

func NewSession(id string) *Session {
	return &Session{ID: id, Answers: map[int]int{}}
}

// Start begins the attempt from the first question, discarding earlier answers.
func (s *Session) Start() {
	s.Current = 0
	s.Answers = map[int]int{}
	s.Started = true
	s.Completed = false
}

// Select records answerIndex for questionIndex, replacing any earlier choice.
func (s *Session) Select(questionIndex, answerIndex int) error {
	questions := Questions()
	if questionIndex < 0 || questionIndex >= len(questions) {
		return fmt.Errorf("%w: question %d", ErrInvalidAnswer, questionIndex)
	}
	if answerIndex < 0 || answerIndex >= len(questions[questionIndex].Options) {
		return fmt.Errorf("%w: option %d", ErrInvalidAnswer, answerIndex)
	}
	s.Answers[questionIndex] = answerIndex
	return nil
}

// Next moves to the following question. On the last question it completes the session.
func (s *Session) Next() {
	if s.Current < len(Questions())-1 {
		s.Current++
		return
	}
	s.Completed = true
}

func (s *Session) Previous() {
	if s.Current > 0 {
		s.Current--
	}
}

// Finish completes the session from any question.
func (s *Session) Finish() {
	s.Completed = true
}

// Progress is the share of questions reached, as a percentage.
func (s *Session) Progress() float64 {
	return float64(s.Current+1) / float64(len(Questions())) * 100
}

func (s *Session) Result() Result {
	return Evaluate(s.Answers)
}

func (s *Session) clone() Session {
	c := *s
	c.Answers = maps.Clone(s.Answers)
	return c
}

// Sessions holds quiz attempts in memory.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]*Session
	metrics  *metrics.Metrics
}

func NewSessions(m *metrics.Metrics) *Sessions {
	return &Sessions{sessions: make(map[string]*Session), metrics: m}
}

// Create starts a new session.
func (s *Sessions) Create() Session {
	session := NewSession(uuid.NewString())
	session.Start()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return session.clone()
}

func (s *Sessions) Get(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return session.clone(), nil
}

// Update applies fn to the session. A session that becomes completed is counted
// as a quiz submission once.
func (s *Sessions) Update(id string, fn func(*Session) error) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	wasCompleted := session.Completed
	if err := fn(session); err != nil {
		return Session{}, err
	}
	if session.Completed && !wasCompleted {
		s.metrics.QuizSubmitted()
	}
	return session.clone(), nil
}
