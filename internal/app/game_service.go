package app

import (
	"context"
	"log"
	"time"

	"trivia-duel-service/internal/domain"
)

// MatchStore persists match rows (create on pairing, update on completion).
type MatchStore interface {
	CreateMatch(ctx context.Context, player1ID, player2ID, topicID string) (int64, error)
	CompleteMatch(ctx context.Context, matchID int64, winnerID string, player1Score, player2Score int) error
}

// QuestionBank supplies random questions for a topic, and one extra question
// excluding already-used ids for tiebreakers.
type QuestionBank interface {
	Questions(ctx context.Context, topicID string, n int) ([]domain.Question, error)
	OneQuestion(ctx context.Context, topicID string, exclude []int64) (domain.Question, error)
}

// ResultReporter pushes the final result to the external rating endpoint.
// Failures are logged by the caller and never block match completion.
type ResultReporter interface {
	Report(ctx context.Context, result domain.MatchResult) (domain.ReportAck, error)
}

// MatchDirectory tracks live matches by id. The disconnect handler scans it;
// completed matches are removed only after their result has been reported.
type MatchDirectory interface {
	Put(m *Match)
	Get(id int64) (*Match, bool)
	All() []*Match
	Remove(id int64)
}

// GameConfig tunes match pacing. Zero values fall back to the defaults the
// original protocol uses.
type GameConfig struct {
	Rounds                int
	QuestionsPerRound     int
	QuestionWindow        time.Duration
	SecondResponderWindow time.Duration
	QueueTimeout          time.Duration
	// CountdownUnit scales the pre-game announcement sequence. The default
	// 500ms unit yields the standard pacing; tests shrink it.
	CountdownUnit time.Duration
}

func (c GameConfig) withDefaults() GameConfig {
	if c.Rounds <= 0 {
		c.Rounds = 1
	}
	if c.QuestionsPerRound <= 0 {
		c.QuestionsPerRound = 5
	}
	if c.QuestionWindow <= 0 {
		c.QuestionWindow = 30 * time.Second
	}
	if c.SecondResponderWindow <= 0 {
		c.SecondResponderWindow = 5 * time.Second
	}
	if c.QueueTimeout <= 0 {
		c.QueueTimeout = 60 * time.Second
	}
	if c.CountdownUnit <= 0 {
		c.CountdownUnit = 500 * time.Millisecond
	}
	return c
}

// Countdown choreography, in CountdownUnit multiples. With the default
// 500ms unit: opponent_found +1s pre_game +4s ready_check +3s "3" +1.5s "2"
// +1.5s "1" +1.5s "go" +2.5s first question.
const (
	preGameUnits       = 2
	readyCheckUnits    = 8
	countdownWarmUnits = 6
	countdownStepUnits = 3
	firstQuestionUnits = 5
)

const collaboratorTimeout = 10 * time.Second

// GameService drives matchmaking and every live match. It is the only
// mutator of match state besides the disconnect path, which funnels through
// it as well.
type GameService struct {
	cfg       GameConfig
	clock     Clock
	store     MatchStore
	bank      QuestionBank
	reporter  ResultReporter
	directory MatchDirectory
	queue     *QueueManager
}

func NewGameService(cfg GameConfig, clock Clock, store MatchStore, bank QuestionBank, reporter ResultReporter, directory MatchDirectory) *GameService {
	s := &GameService{
		cfg:       cfg.withDefaults(),
		clock:     clock,
		store:     store,
		bank:      bank,
		reporter:  reporter,
		directory: directory,
	}
	s.queue = NewQueueManager(clock, s.cfg.QueueTimeout, s.startMatch)
	return s
}

// JoinQueue enqueues a player for a topic, pairing immediately when an
// opponent is already waiting.
func (s *GameService) JoinQueue(conn Conn, playerID, topicID string) {
	s.queue.Join(conn, playerID, topicID)
}

// CancelQueue removes the connection from the matchmaking queue.
func (s *GameService) CancelQueue(conn Conn) {
	s.queue.Cancel(conn)
}

// Queue exposes the matchmaking queue for inspection.
func (s *GameService) Queue() *QueueManager {
	return s.queue
}

// PlayerReady records a readiness signal. The countdown is timer-driven, so
// readiness is informational only.
func (s *GameService) PlayerReady(matchID int64, playerID string) {
	m, ok := s.directory.Get(matchID)
	if !ok {
		return
	}
	m.mu.Lock()
	if _, isPlayer := m.participantLocked(playerID); isPlayer && !m.completed {
		m.ready[playerID] = true
	}
	m.mu.Unlock()
	log.Printf("match %d: player %s ready", matchID, playerID)
}

// HandleDisconnect removes the connection from any queue and forces a loss
// in any live match it belongs to, preserving accrued scores.
func (s *GameService) HandleDisconnect(conn Conn) {
	s.queue.Remove(conn)
	for _, m := range s.directory.All() {
		m.mu.Lock()
		if m.completed {
			m.mu.Unlock()
			continue
		}
		loser, winner, ok := m.holdsConnLocked(conn.ID())
		if !ok {
			m.mu.Unlock()
			continue
		}
		log.Printf("match %d: player %s disconnected, %s wins", m.ID, loser.PlayerID, winner.PlayerID)
		m.forceLosePlayerID = loser.PlayerID
		notice := pendingSend{winner.Conn, domain.EventOpponentDisconnected, domain.MessagePayload{Message: "Your opponent has disconnected. You win!"}}
		s.finish(m, winner.PlayerID, []pendingSend{notice})
	}
}

// HandleAnswer processes a submit_answer event. Late, duplicate or
// misaddressed answers are silently ignored.
func (s *GameService) HandleAnswer(sub domain.AnswerSubmission) {
	m, ok := s.directory.Get(sub.MatchID)
	if !ok {
		return
	}
	m.mu.Lock()
	if m.completed {
		m.mu.Unlock()
		return
	}

	if sub.ForceLose {
		loser, isPlayer := m.participantLocked(sub.PlayerID)
		if !isPlayer {
			m.mu.Unlock()
			return
		}
		m.forceLosePlayerID = loser.PlayerID
		s.finish(m, m.opponentLocked(loser.PlayerID).PlayerID, nil)
		return
	}

	if m.isTiebreaker {
		s.handleTiebreakerAnswer(m, sub)
		return
	}

	// No question is live until the countdown hands over to the first one.
	if m.questionStartedAt.IsZero() {
		m.mu.Unlock()
		return
	}
	if sub.QuestionIndex != m.currentIndex || m.currentIndex >= len(m.questions) {
		m.mu.Unlock()
		return
	}
	if _, isPlayer := m.participantLocked(sub.PlayerID); !isPlayer {
		m.mu.Unlock()
		return
	}
	if m.answered[sub.PlayerID] || m.firstResponder == sub.PlayerID {
		m.mu.Unlock()
		return
	}

	q := m.questions[m.currentIndex]
	correct := sub.Answer == q.CorrectIndex

	if m.firstResponder == "" {
		m.firstResponder = sub.PlayerID
		m.firstResponderAnswer = sub.Answer
		m.firstResponderAt = s.clock.Now()
		if award := firstResponderAward(correct); award > 0 {
			m.scores[sub.PlayerID] += award
		}

		windowSecs := int(s.cfg.QuestionWindow / time.Second)
		elapsedSecs := int(s.clock.Now().Sub(m.questionStartedAt) / time.Second)
		remaining := max(windowSecs-elapsedSecs, 0)
		shortSecs := int(s.cfg.SecondResponderWindow / time.Second)
		prompt := domain.PromptAnswerPayload{
			QuestionIndex: m.currentIndex,
			CurrentRound:  m.currentRound,
			TotalRounds:   m.Rounds,
			IsTiebreaker:  false,
			TimeDuration:  remaining,
			TimeRemaining: min(shortSecs, remaining),
		}
		opponent := m.opponentLocked(sub.PlayerID)
		idx := m.currentIndex
		m.timers.cancel(slotQuestion)
		m.timers.arm(slotSecondResponder, s.cfg.SecondResponderWindow, func() { s.onSecondResponderTimeout(m, idx) })
		m.mu.Unlock()
		opponent.Conn.Send(domain.EventPromptAnswer, prompt)
		return
	}

	// Second responder.
	firstCorrect := m.firstResponderAnswer == q.CorrectIndex
	if award := secondResponderAward(correct, firstCorrect); award > 0 {
		m.scores[sub.PlayerID] += award
	}
	m.answered[sub.PlayerID] = true
	m.answered[m.firstResponder] = true
	s.resolveQuestion(m)
}

// startMatch is the queue's pair callback: Forming state.
func (s *GameService) startMatch(p1, p2 QueuedPlayer, topicID string) {
	ctx, cancel := context.WithTimeout(context.Background(), collaboratorTimeout)
	defer cancel()

	found := "Opponent found! Preparing the match..."
	p1.Conn.Send(domain.EventOpponentFound, domain.OpponentFoundPayload{Message: found, OpponentID: p2.PlayerID})
	p2.Conn.Send(domain.EventOpponentFound, domain.OpponentFoundPayload{Message: found, OpponentID: p1.PlayerID})

	id, err := s.store.CreateMatch(ctx, p1.PlayerID, p2.PlayerID, topicID)
	if err != nil {
		log.Printf("match create failed for topic %s: %v", topicID, err)
		s.abortForming(p1, p2, "Failed to start match.")
		return
	}

	total := s.cfg.Rounds * s.cfg.QuestionsPerRound
	questions, err := s.bank.Questions(ctx, topicID, total)
	if err != nil || len(questions) == 0 {
		log.Printf("match %d: no questions for topic %s: %v", id, topicID, err)
		s.abortForming(p1, p2, "Failed to start match: no questions available.")
		return
	}

	m := newMatch(id, topicID,
		Participant{Conn: p1.Conn, PlayerID: p1.PlayerID},
		Participant{Conn: p2.Conn, PlayerID: p2.PlayerID},
		s.cfg.Rounds, s.cfg.QuestionsPerRound, questions, s.clock)
	s.directory.Put(m)
	log.Printf("match %d: starting on topic %s (%s vs %s)", id, topicID, p1.PlayerID, p2.PlayerID)
	s.runCountdown(m)
}

func (s *GameService) abortForming(p1, p2 QueuedPlayer, msg string) {
	p1.Conn.Send(domain.EventError, domain.ErrorPayload{Message: msg})
	p2.Conn.Send(domain.EventError, domain.ErrorPayload{Message: msg})
}

// runCountdown plays the fixed announcement sequence. It is driven entirely
// by the timer registry; a forced loss during the sequence cancels it.
func (s *GameService) runCountdown(m *Match) {
	brief := "You will face a fellow student over a set of questions. Answer correctly and be the fastest to win the duel and raise your rating."
	steps := []struct {
		units int
		fire  func()
	}{
		{preGameUnits, func() {
			m.Player1.Conn.Send(domain.EventPreGameMessage, domain.PreGamePayload{Message: brief, MatchID: m.ID, OpponentID: m.Player2.PlayerID})
			m.Player2.Conn.Send(domain.EventPreGameMessage, domain.PreGamePayload{Message: brief, MatchID: m.ID, OpponentID: m.Player1.PlayerID})
		}},
		{readyCheckUnits, func() { s.sendBoth(m, domain.EventReadyCheck, domain.MessagePayload{Message: "Are you ready?"}) }},
		{countdownWarmUnits, func() { s.sendBoth(m, domain.EventCountdown, domain.CountdownPayload{Count: 3}) }},
		{countdownStepUnits, func() { s.sendBoth(m, domain.EventCountdown, domain.CountdownPayload{Count: 2}) }},
		{countdownStepUnits, func() { s.sendBoth(m, domain.EventCountdown, domain.CountdownPayload{Count: 1}) }},
		{countdownStepUnits, func() { s.sendBoth(m, domain.EventCountdown, domain.CountdownPayload{Count: 0}) }},
		{firstQuestionUnits, func() { s.startFirstQuestion(m) }},
	}

	var schedule func(i int)
	schedule = func(i int) {
		if i >= len(steps) {
			return
		}
		step := steps[i]
		m.timers.arm(slotCountdown, time.Duration(step.units)*s.cfg.CountdownUnit, func() {
			if m.IsCompleted() {
				return
			}
			step.fire()
			schedule(i + 1)
		})
	}
	schedule(0)
}

func (s *GameService) sendBoth(m *Match, event string, payload any) {
	m.Player1.Conn.Send(event, payload)
	m.Player2.Conn.Send(event, payload)
}

// startFirstQuestion arms the first question window and emits match_started.
func (s *GameService) startFirstQuestion(m *Match) {
	m.mu.Lock()
	if m.completed || m.currentIndex != 0 || m.firstResponder != "" {
		m.mu.Unlock()
		return
	}
	q := m.questions[0]
	m.questionStartedAt = s.clock.Now()
	windowSecs := int(s.cfg.QuestionWindow / time.Second)
	base := m.questionPayloadLocked(q, windowSecs)
	p1Payload := domain.MatchStartedPayload{QuestionPayload: base, MatchID: m.ID, OpponentID: m.Player2.PlayerID, Scores: m.scoreViewLocked(m.Player1.PlayerID)}
	p2Payload := domain.MatchStartedPayload{QuestionPayload: base, MatchID: m.ID, OpponentID: m.Player1.PlayerID, Scores: m.scoreViewLocked(m.Player2.PlayerID)}
	m.timers.arm(slotQuestion, s.cfg.QuestionWindow, func() { s.onQuestionTimeout(m, 0) })
	m.mu.Unlock()

	m.Player1.Conn.Send(domain.EventMatchStarted, p1Payload)
	m.Player2.Conn.Send(domain.EventMatchStarted, p2Payload)
}

// onQuestionTimeout fires when the question window elapses with no answers.
func (s *GameService) onQuestionTimeout(m *Match, index int) {
	m.mu.Lock()
	if m.completed || m.isTiebreaker || m.currentIndex != index || m.firstResponder != "" {
		m.mu.Unlock()
		return
	}
	log.Printf("match %d: question %d timed out unanswered", m.ID, index)
	s.resolveQuestion(m)
}

// onSecondResponderTimeout fires when the opponent of the first responder
// lets the short window lapse. They simply forfeit the point.
func (s *GameService) onSecondResponderTimeout(m *Match, index int) {
	m.mu.Lock()
	if m.completed || m.isTiebreaker || m.currentIndex != index || m.firstResponder == "" {
		m.mu.Unlock()
		return
	}
	m.answered[m.firstResponder] = true
	s.resolveQuestion(m)
}

type pendingSend struct {
	conn    Conn
	event   string
	payload any
}

// resolveQuestion settles the question at the cursor and advances the match.
// Caller must hold m.mu; the lock is released before anything is sent or any
// collaborator is called.
func (s *GameService) resolveQuestion(m *Match) {
	m.timers.cancel(slotQuestion)
	m.timers.cancel(slotSecondResponder)

	resolved := m.questions[m.currentIndex]
	reveal := func(p Participant) pendingSend {
		return pendingSend{p.Conn, domain.EventRoundResult, domain.RoundResultPayload{
			QuestionIndex: m.currentIndex,
			CorrectAnswer: resolved.CorrectText(),
			Scores:        m.scoreViewLocked(p.PlayerID),
		}}
	}
	sends := []pendingSend{reveal(m.Player1), reveal(m.Player2)}

	m.currentIndex++
	m.firstResponder = ""
	m.firstResponderAnswer = -1
	m.answered = make(map[string]bool)
	if m.currentIndex < m.TotalQuestions {
		m.currentRound = m.currentIndex/m.QuestionsPerRound + 1
	}

	if m.currentIndex < m.TotalQuestions {
		if m.currentIndex >= len(m.questions) {
			// Bank underflow: settle on current scores. No tiebreaker is
			// possible since there is no question left to break one.
			log.Printf("match %d: missing question at index %d, ending early", m.ID, m.currentIndex)
			winner := winnerByScore(m.Player1.PlayerID, m.Player2.PlayerID, m.scores)
			s.finish(m, winner, sends)
			return
		}
		q := m.questions[m.currentIndex]
		m.questionStartedAt = s.clock.Now()
		windowSecs := int(s.cfg.QuestionWindow / time.Second)
		base := m.questionPayloadLocked(q, windowSecs)
		next1 := domain.NextQuestionPayload{QuestionPayload: base, Scores: m.scoreViewLocked(m.Player1.PlayerID)}
		next2 := domain.NextQuestionPayload{QuestionPayload: base, Scores: m.scoreViewLocked(m.Player2.PlayerID)}
		idx := m.currentIndex
		m.timers.arm(slotQuestion, s.cfg.QuestionWindow, func() { s.onQuestionTimeout(m, idx) })
		m.mu.Unlock()

		for _, ps := range sends {
			ps.conn.Send(ps.event, ps.payload)
		}
		m.Player1.Conn.Send(domain.EventNextQuestion, next1)
		m.Player2.Conn.Send(domain.EventNextQuestion, next2)
		return
	}

	// All configured questions played.
	if m.scores[m.Player1.PlayerID] == m.scores[m.Player2.PlayerID] && !m.isTiebreaker {
		m.mu.Unlock()
		for _, ps := range sends {
			ps.conn.Send(ps.event, ps.payload)
		}
		s.startTiebreaker(m)
		return
	}
	winner := winnerByScore(m.Player1.PlayerID, m.Player2.PlayerID, m.scores)
	s.finish(m, winner, sends)
}

// startTiebreaker fetches one extra unused question and plays it under the
// tiebreaker rules: player 1 answers first by protocol, not by race.
func (s *GameService) startTiebreaker(m *Match) {
	m.mu.Lock()
	topicID := m.TopicID
	exclude := m.usedQuestionIDsLocked()
	m.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), collaboratorTimeout)
	defer cancel()
	q, err := s.bank.OneQuestion(ctx, topicID, exclude)

	m.mu.Lock()
	if m.completed {
		m.mu.Unlock()
		return
	}
	if err != nil {
		// Scores are equal by construction, so this settles as a draw.
		log.Printf("match %d: no tiebreaker question for topic %s: %v", m.ID, topicID, err)
		s.finish(m, "", nil)
		return
	}

	log.Printf("match %d: scores tied, entering tiebreaker", m.ID)
	m.isTiebreaker = true
	m.questions = append(m.questions, q)
	m.currentIndex = m.TotalQuestions
	m.currentRound = m.Rounds + 1
	m.firstResponder = ""
	m.answered = make(map[string]bool)
	m.tiebreakerP1Answered = false
	m.tiebreakerAnswered = false
	m.questionStartedAt = s.clock.Now()

	windowSecs := int(s.cfg.QuestionWindow / time.Second)
	base := m.questionPayloadLocked(q, windowSecs)
	p1Payload := domain.TiebreakerPayload{QuestionPayload: base, Scores: m.scoreViewLocked(m.Player1.PlayerID)}
	p2Payload := domain.TiebreakerPayload{QuestionPayload: base, Scores: m.scoreViewLocked(m.Player2.PlayerID)}
	m.timers.arm(slotQuestion, s.cfg.QuestionWindow, func() { s.onTiebreakerTimeout(m) })
	m.mu.Unlock()

	m.Player1.Conn.Send(domain.EventTiebreaker, p1Payload)
	m.Player2.Conn.Send(domain.EventTiebreaker, p2Payload)
}

// handleTiebreakerAnswer applies the turn-ordered tiebreaker rules: player 1
// answers first, player 2 only gets a window after a miss. Caller holds m.mu;
// every path releases it.
func (s *GameService) handleTiebreakerAnswer(m *Match, sub domain.AnswerSubmission) {
	if m.tiebreakerAnswered || sub.QuestionIndex != m.currentIndex || m.currentIndex >= len(m.questions) {
		m.mu.Unlock()
		return
	}
	q := m.questions[m.currentIndex]
	correct := sub.Answer == q.CorrectIndex
	p1 := m.Player1
	p2 := m.Player2

	switch sub.PlayerID {
	case p1.PlayerID:
		if m.tiebreakerP1Answered {
			m.mu.Unlock()
			return
		}
		m.tiebreakerP1Answered = true
		if correct {
			m.scores[p1.PlayerID] += firstCorrectPoints
			m.tiebreakerAnswered = true
			sends := s.tiebreakerResultsLocked(m, p1.PlayerID, "win", "")
			s.finish(m, p1.PlayerID, sends)
			return
		}
		// Wrong answer hands player 2 a short window.
		shortSecs := int(s.cfg.SecondResponderWindow / time.Second)
		prompt := domain.PromptAnswerPayload{
			QuestionIndex: m.currentIndex,
			CurrentRound:  m.currentRound,
			TotalRounds:   m.Rounds,
			IsTiebreaker:  true,
			TimeDuration:  shortSecs,
			TimeRemaining: shortSecs,
			Scores:        &domain.ScoreView{YourScore: m.scores[p2.PlayerID], OpponentScore: m.scores[p1.PlayerID]},
		}
		m.timers.cancel(slotQuestion)
		m.timers.arm(slotSecondResponder, s.cfg.SecondResponderWindow, func() { s.onTiebreakerSecondTimeout(m) })
		m.mu.Unlock()
		p2.Conn.Send(domain.EventPromptAnswer, prompt)

	case p2.PlayerID:
		// Player 1 answers first in this scheme.
		if !m.tiebreakerP1Answered {
			m.mu.Unlock()
			return
		}
		m.timers.cancel(slotSecondResponder)
		m.tiebreakerAnswered = true
		if correct {
			m.scores[p2.PlayerID] += secondCorrectPoints
			sends := s.tiebreakerResultsLocked(m, p2.PlayerID, "win", "")
			s.finish(m, p2.PlayerID, sends)
			return
		}
		sends := s.tiebreakerResultsLocked(m, "", "draw", "Both players answered incorrectly")
		s.finish(m, "", sends)

	default:
		m.mu.Unlock()
	}
}

// onTiebreakerTimeout fires when the full window lapses with no answer at
// all: the match is a draw.
func (s *GameService) onTiebreakerTimeout(m *Match) {
	m.mu.Lock()
	if m.completed || !m.isTiebreaker || m.tiebreakerAnswered || m.tiebreakerP1Answered {
		m.mu.Unlock()
		return
	}
	m.tiebreakerAnswered = true
	sends := s.tiebreakerResultsLocked(m, "", "draw", "No answers received within time limit")
	s.finish(m, "", sends)
}

// onTiebreakerSecondTimeout fires when player 2 lets their window lapse
// after player 1 answered wrong.
func (s *GameService) onTiebreakerSecondTimeout(m *Match) {
	m.mu.Lock()
	if m.completed || !m.isTiebreaker || m.tiebreakerAnswered {
		m.mu.Unlock()
		return
	}
	m.tiebreakerAnswered = true
	sends := s.tiebreakerResultsLocked(m, "", "draw", "Player 2 did not answer within time limit")
	s.finish(m, "", sends)
}

func (s *GameService) tiebreakerResultsLocked(m *Match, winnerID, result, reason string) []pendingSend {
	build := func(p Participant) pendingSend {
		return pendingSend{p.Conn, domain.EventTiebreakerResult, domain.TiebreakerResultPayload{
			WinnerID:     winnerPtr(winnerID),
			Result:       result,
			Reason:       reason,
			CurrentRound: m.currentRound,
			TotalRounds:  m.Rounds,
			IsTiebreaker: true,
			Scores:       m.scoreViewLocked(p.PlayerID),
		}}
	}
	return []pendingSend{build(m.Player1), build(m.Player2)}
}

// finish is the single entry into the Completed state. Caller must hold
// m.mu; finish cancels all timers, marks the match terminal, releases the
// lock, then persists, reports, and emits game_over. A completed match
// accepts no further transitions, so the post-unlock work races nothing.
func (s *GameService) finish(m *Match, winnerID string, extra []pendingSend) {
	m.timers.cancelAll()
	m.completed = true
	scores := m.scoresCopyLocked()
	isTiebreaker := m.isTiebreaker
	round := m.currentRound
	p1 := m.Player1
	p2 := m.Player2
	m.mu.Unlock()

	for _, ps := range extra {
		ps.conn.Send(ps.event, ps.payload)
	}

	ctx, cancel := context.WithTimeout(context.Background(), collaboratorTimeout)
	defer cancel()

	if err := s.store.CompleteMatch(ctx, m.ID, winnerID, scores[p1.PlayerID], scores[p2.PlayerID]); err != nil {
		log.Printf("match %d: persisting result failed: %v", m.ID, err)
	}

	ack, err := s.reporter.Report(ctx, domain.MatchResult{
		MatchID:   m.ID,
		Player1ID: p1.PlayerID,
		Player2ID: p2.PlayerID,
		WinnerID:  winnerID,
		Scores:    scores,
		Completed: true,
	})
	if err != nil {
		log.Printf("match %d: result report failed: %v", m.ID, err)
		ack = nil
	}

	gameOver := func(p, opp Participant) domain.GameOverPayload {
		return domain.GameOverPayload{
			WinnerID:      winnerPtr(winnerID),
			YourScore:     scores[p.PlayerID],
			OpponentScore: scores[opp.PlayerID],
			IsTiebreaker:  isTiebreaker,
			CurrentRound:  round,
			TotalRounds:   m.Rounds,
			Scores:        scores,
			Rating:        ack,
		}
	}
	p1.Conn.Send(domain.EventGameOver, gameOver(p1, p2))
	p2.Conn.Send(domain.EventGameOver, gameOver(p2, p1))

	s.directory.Remove(m.ID)
	if winnerID == "" {
		log.Printf("match %d: finished in a draw (%d-%d)", m.ID, scores[p1.PlayerID], scores[p2.PlayerID])
	} else {
		log.Printf("match %d: finished, winner %s (%d-%d)", m.ID, winnerID, scores[p1.PlayerID], scores[p2.PlayerID])
	}
}

func winnerPtr(winnerID string) *string {
	if winnerID == "" {
		return nil
	}
	return &winnerID
}
