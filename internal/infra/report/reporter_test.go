package report

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"trivia-duel-service/internal/domain"
)

func sampleResult(winnerID string) domain.MatchResult {
	return domain.MatchResult{
		MatchID:   7,
		Player1ID: "p1",
		Player2ID: "p2",
		WinnerID:  winnerID,
		Scores:    map[string]int{"p1": 6, "p2": 4},
		Completed: true,
	}
}

func TestReportMapsWinnerToSlot(t *testing.T) {
	cases := []struct {
		name     string
		winnerID string
		want     *int
	}{
		{"player one wins", "p1", intPtr(1)},
		{"player two wins", "p2", intPtr(2)},
		{"draw", "", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got resultPayload
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("expected POST, got %s", r.Method)
				}
				if ct := r.Header.Get("Content-Type"); ct != "application/json" {
					t.Errorf("unexpected content type %q", ct)
				}
				if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
					t.Errorf("decode request: %v", err)
				}
				json.NewEncoder(w).Encode(map[string]any{"newRating": 1234})
			}))
			defer srv.Close()

			ack, err := NewReporter(srv.URL).Report(context.Background(), sampleResult(tc.winnerID))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ack["newRating"] != float64(1234) {
				t.Fatalf("ack not decoded: %+v", ack)
			}

			if got.MatchID != 7 || got.Player1Score != 6 || got.Player2Score != 4 || !got.Completed {
				t.Fatalf("unexpected payload: %+v", got)
			}
			switch {
			case tc.want == nil && got.WinnerID != nil:
				t.Fatalf("expected null winner slot, got %d", *got.WinnerID)
			case tc.want != nil && (got.WinnerID == nil || *got.WinnerID != *tc.want):
				t.Fatalf("expected winner slot %d, got %v", *tc.want, got.WinnerID)
			}
		})
	}
}

func TestReportErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewReporter(srv.URL).Report(context.Background(), sampleResult("p1"))
	if err == nil {
		t.Fatalf("expected an error for a non-2xx response")
	}
}

func TestReportDisabledWithoutURL(t *testing.T) {
	ack, err := NewReporter("").Report(context.Background(), sampleResult("p1"))
	if err != nil || ack != nil {
		t.Fatalf("expected reporting to be disabled, got ack=%v err=%v", ack, err)
	}
}

func intPtr(v int) *int { return &v }
