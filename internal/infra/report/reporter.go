package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"trivia-duel-service/internal/domain"
)

// Reporter posts final match results to the ratings backend. The backend
// expects the winner as a player slot (1, 2, or null for a draw). A missing
// URL disables reporting. Callers treat failures as transient: they are
// logged and never block match completion.
type Reporter struct {
	url    string
	client *http.Client
}

func NewReporter(url string) *Reporter {
	return &Reporter{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type resultPayload struct {
	MatchID      int64 `json:"match_id"`
	WinnerID     *int  `json:"winner_id"`
	Player1Score int   `json:"player1_score"`
	Player2Score int   `json:"player2_score"`
	Completed    bool  `json:"completed"`
}

func (r *Reporter) Report(ctx context.Context, result domain.MatchResult) (domain.ReportAck, error) {
	if r.url == "" {
		return nil, nil
	}

	payload := resultPayload{
		MatchID:      result.MatchID,
		Player1Score: result.Scores[result.Player1ID],
		Player2Score: result.Scores[result.Player2ID],
		Completed:    result.Completed,
	}
	switch result.WinnerID {
	case result.Player1ID:
		one := 1
		payload.WinnerID = &one
	case result.Player2ID:
		two := 2
		payload.WinnerID = &two
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build result request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send result: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("result endpoint returned %s", resp.Status)
	}

	var ack domain.ReportAck
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return nil, fmt.Errorf("decode result response: %w", err)
	}
	return ack, nil
}
