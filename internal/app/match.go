package app

import (
	"sync"
	"time"

	"trivia-duel-service/internal/domain"
)

// Participant ties a player identity to its live connection.
type Participant struct {
	Conn     Conn
	PlayerID string
}

// Match is one live head-to-head duel. All mutable state below mu is guarded
// by it; answer handlers and timer callbacks both funnel through the lock,
// and every timer callback re-validates the completed flag and question
// cursor after acquiring it, so a stale fire can never double-advance.
type Match struct {
	ID      int64
	TopicID string
	Player1 Participant
	Player2 Participant

	Rounds            int
	QuestionsPerRound int
	TotalQuestions    int

	timers *timerRegistry

	mu                   sync.Mutex
	questions            []domain.Question
	currentIndex         int
	currentRound         int
	scores               map[string]int
	firstResponder       string
	firstResponderAnswer int
	firstResponderAt     time.Time
	answered             map[string]bool
	ready                map[string]bool
	questionStartedAt    time.Time
	isTiebreaker         bool
	tiebreakerP1Answered bool
	tiebreakerAnswered   bool
	completed            bool
	forceLosePlayerID    string
}

func newMatch(id int64, topicID string, p1, p2 Participant, rounds, questionsPerRound int, questions []domain.Question, clock Clock) *Match {
	return &Match{
		ID:                id,
		TopicID:           topicID,
		Player1:           p1,
		Player2:           p2,
		Rounds:            rounds,
		QuestionsPerRound: questionsPerRound,
		TotalQuestions:    rounds * questionsPerRound,
		timers:            newTimerRegistry(clock),
		questions:         questions,
		currentRound:      1,
		scores:            map[string]int{p1.PlayerID: 0, p2.PlayerID: 0},
		answered:          make(map[string]bool),
		ready:             make(map[string]bool),
	}
}

// IsCompleted reports whether the match has reached its terminal state.
func (m *Match) IsCompleted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.completed
}

// Scores returns a copy of the scoreboard.
func (m *Match) Scores() map[string]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int, len(m.scores))
	for id, s := range m.scores {
		out[id] = s
	}
	return out
}

// CurrentIndex returns the 0-based cursor into the question list.
func (m *Match) CurrentIndex() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentIndex
}

// CurrentRound returns the 1-based round number.
func (m *Match) CurrentRound() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentRound
}

// ArmedTimers reports how many timers are currently live. Test-only, for
// asserting the single-armed-timer discipline.
func (m *Match) ArmedTimers() int {
	return m.timers.armedCount()
}

// InTiebreaker reports whether the match is playing its tiebreaker question.
func (m *Match) InTiebreaker() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isTiebreaker
}

func (m *Match) participantLocked(playerID string) (Participant, bool) {
	switch playerID {
	case m.Player1.PlayerID:
		return m.Player1, true
	case m.Player2.PlayerID:
		return m.Player2, true
	}
	return Participant{}, false
}

func (m *Match) opponentLocked(playerID string) Participant {
	if playerID == m.Player1.PlayerID {
		return m.Player2
	}
	return m.Player1
}

func (m *Match) holdsConnLocked(connID string) (loser, winner Participant, ok bool) {
	switch connID {
	case m.Player1.Conn.ID():
		return m.Player1, m.Player2, true
	case m.Player2.Conn.ID():
		return m.Player2, m.Player1, true
	}
	return Participant{}, Participant{}, false
}

func (m *Match) scoreViewLocked(playerID string) domain.ScoreView {
	return domain.ScoreView{
		YourScore:     m.scores[playerID],
		OpponentScore: m.scores[m.opponentLocked(playerID).PlayerID],
	}
}

func (m *Match) scoresCopyLocked() map[string]int {
	out := make(map[string]int, len(m.scores))
	for id, s := range m.scores {
		out[id] = s
	}
	return out
}

func (m *Match) questionPayloadLocked(q domain.Question, windowSecs int) domain.QuestionPayload {
	questionInRound := 1
	if !m.isTiebreaker {
		questionInRound = m.currentIndex%m.QuestionsPerRound + 1
	}
	return domain.QuestionPayload{
		QuestionIndex:     m.currentIndex,
		CurrentRound:      m.currentRound,
		TotalRounds:       m.Rounds,
		QuestionInRound:   questionInRound,
		QuestionsPerRound: m.QuestionsPerRound,
		QuestionText:      q.Text,
		Options:           q.Options,
		TimeDuration:      windowSecs,
		IsTiebreaker:      m.isTiebreaker,
	}
}

func (m *Match) usedQuestionIDsLocked() []int64 {
	ids := make([]int64, 0, len(m.questions))
	for _, q := range m.questions {
		ids = append(ids, q.ID)
	}
	return ids
}
