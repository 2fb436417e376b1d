package app

import "testing"

func TestFirstResponderAward(t *testing.T) {
	if got := firstResponderAward(true); got != 2 {
		t.Fatalf("expected 2 points for first correct answer, got %d", got)
	}
	if got := firstResponderAward(false); got != 0 {
		t.Fatalf("expected 0 points for first wrong answer, got %d", got)
	}
}

func TestSecondResponderAward(t *testing.T) {
	cases := []struct {
		name         string
		correct      bool
		firstCorrect bool
		want         int
	}{
		{"second correct after first correct", true, true, 1},
		{"second correct after first wrong", true, false, 2},
		{"second wrong after first correct", false, true, 0},
		{"second wrong after first wrong", false, false, 0},
	}
	for _, tc := range cases {
		if got := secondResponderAward(tc.correct, tc.firstCorrect); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

// No question may award more than 2 points to one player or more than 3 in
// total, regardless of who answers correctly.
func TestAwardBounds(t *testing.T) {
	for _, firstCorrect := range []bool{true, false} {
		for _, secondCorrect := range []bool{true, false} {
			first := firstResponderAward(firstCorrect)
			second := secondResponderAward(secondCorrect, firstCorrect)
			if first > 2 || second > 2 {
				t.Fatalf("single award above 2: first=%d second=%d", first, second)
			}
			if total := first + second; total > 3 {
				t.Fatalf("question total above 3: first=%v second=%v total=%d", firstCorrect, secondCorrect, total)
			}
		}
	}
}

func TestWinnerByScore(t *testing.T) {
	if got := winnerByScore("p1", "p2", map[string]int{"p1": 4, "p2": 2}); got != "p1" {
		t.Fatalf("expected p1, got %q", got)
	}
	if got := winnerByScore("p1", "p2", map[string]int{"p1": 1, "p2": 5}); got != "p2" {
		t.Fatalf("expected p2, got %q", got)
	}
	if got := winnerByScore("p1", "p2", map[string]int{"p1": 3, "p2": 3}); got != "" {
		t.Fatalf("expected draw, got %q", got)
	}
}
