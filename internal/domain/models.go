package domain

// Option represents a possible answer for a question. The index doubles as
// the option identifier on the wire.
type Option struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// Question models an MCQ question drawn from a topic's competitive pool.
type Question struct {
	ID           int64    `json:"id"`
	Text         string   `json:"text"`
	Options      []Option `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	UnitID       int64    `json:"unitId"`
}

// CorrectText returns the text of the correct option, or "" if the question
// is malformed.
func (q Question) CorrectText() string {
	for _, opt := range q.Options {
		if opt.ID == q.CorrectIndex {
			return opt.Text
		}
	}
	return ""
}

// AnswerSubmission is the scoring signal from a client. When ForceLose is
// set the answer fields are ignored and the named player forfeits the match.
type AnswerSubmission struct {
	MatchID       int64
	PlayerID      string
	QuestionIndex int
	Answer        int
	ForceLose     bool
}

// MatchResult is the terminal summary handed to the result-reporting
// endpoint. An empty WinnerID means the match was a draw.
type MatchResult struct {
	MatchID   int64
	Player1ID string
	Player2ID string
	WinnerID  string
	Scores    map[string]int
	Completed bool
}

// ReportAck is the raw response of the rating endpoint, forwarded to clients
// inside game_over when reporting succeeds.
type ReportAck map[string]any
