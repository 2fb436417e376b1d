package domain

// ScoreView is one player's view of the scoreboard.
type ScoreView struct {
	YourScore     int `json:"yourScore"`
	OpponentScore int `json:"opponentScore"`
}

// QuestionPayload is the shared shape of match_started, next_question and
// tiebreaker events. The correct answer is deliberately absent: it is only
// revealed through round_result after the question is resolved.
type QuestionPayload struct {
	QuestionIndex     int      `json:"questionIndex"`
	CurrentRound      int      `json:"current_round"`
	TotalRounds       int      `json:"total_rounds"`
	QuestionInRound   int      `json:"questionInRound"`
	QuestionsPerRound int      `json:"questionsPerRound"`
	QuestionText      string   `json:"questionText"`
	Options           []Option `json:"options"`
	TimeDuration      int      `json:"time_duration"`
	IsTiebreaker      bool     `json:"is_tiebreaker"`
}

// MatchStartedPayload announces the first question.
type MatchStartedPayload struct {
	QuestionPayload
	MatchID    int64     `json:"matchId"`
	OpponentID string    `json:"opponentId"`
	Scores     ScoreView `json:"scores"`
}

// NextQuestionPayload carries every question after the first.
type NextQuestionPayload struct {
	QuestionPayload
	Scores ScoreView `json:"scores"`
}

// TiebreakerPayload carries the single extra question of a tied match.
type TiebreakerPayload struct {
	QuestionPayload
	Scores ScoreView `json:"scores"`
}

// PromptAnswerPayload warns the remaining player that their opponent has
// answered and a short response window is running.
type PromptAnswerPayload struct {
	QuestionIndex int        `json:"questionIndex"`
	CurrentRound  int        `json:"current_round"`
	TotalRounds   int        `json:"total_rounds"`
	IsTiebreaker  bool       `json:"is_tiebreaker"`
	TimeDuration  int        `json:"time_duration"`
	TimeRemaining int        `json:"timeRemaining"`
	Scores        *ScoreView `json:"scores,omitempty"`
}

// RoundResultPayload reveals the correct answer once a question is resolved.
type RoundResultPayload struct {
	QuestionIndex int       `json:"questionIndex"`
	CorrectAnswer string    `json:"correctAnswer"`
	Scores        ScoreView `json:"scores"`
}

// TiebreakerResultPayload reports the outcome of the tiebreaker question.
// WinnerID is nil on a draw.
type TiebreakerResultPayload struct {
	WinnerID     *string   `json:"winnerId"`
	Result       string    `json:"result"`
	Reason       string    `json:"reason,omitempty"`
	CurrentRound int       `json:"current_round"`
	TotalRounds  int       `json:"total_rounds"`
	IsTiebreaker bool      `json:"is_tiebreaker"`
	Scores       ScoreView `json:"scores"`
}

// GameOverPayload is the terminal event of a match. WinnerID is nil on a draw.
type GameOverPayload struct {
	WinnerID      *string        `json:"winnerId"`
	YourScore     int            `json:"yourScore"`
	OpponentScore int            `json:"opponentScore"`
	IsTiebreaker  bool           `json:"is_tiebreaker"`
	CurrentRound  int            `json:"current_round"`
	TotalRounds   int            `json:"total_rounds"`
	Scores        map[string]int `json:"scores"`
	Rating        ReportAck      `json:"ratingResponse,omitempty"`
}

// OpponentFoundPayload notifies a queued player that they were paired.
type OpponentFoundPayload struct {
	Message    string `json:"message"`
	OpponentID string `json:"opponentId"`
}

// PreGamePayload is the briefing shown before the countdown.
type PreGamePayload struct {
	Message    string `json:"message"`
	MatchID    int64  `json:"matchId"`
	OpponentID string `json:"opponentId"`
}

// CountdownPayload counts 3, 2, 1, 0 ("go").
type CountdownPayload struct {
	Count int `json:"count"`
}

// MessagePayload is a plain informational event body.
type MessagePayload struct {
	Message string `json:"message"`
}

// ErrorPayload is sent for malformed inbound events.
type ErrorPayload struct {
	Message string `json:"message"`
}
