package app

// Point awards for the race-to-answer protocol. Being first and right is
// worth more than being second and right.
const (
	firstCorrectPoints    = 2
	secondCorrectPoints   = 1
	secondAfterMissPoints = 2
)

// firstResponderAward returns the points for the first accepted answer.
func firstResponderAward(correct bool) int {
	if correct {
		return firstCorrectPoints
	}
	return 0
}

// secondResponderAward returns the points for the second answer. A correct
// second answer is worth the full amount only when the first responder was
// wrong.
func secondResponderAward(correct, firstCorrect bool) int {
	if !correct {
		return 0
	}
	if firstCorrect {
		return secondCorrectPoints
	}
	return secondAfterMissPoints
}

// winnerByScore picks the higher-scoring player, or "" on a tie.
func winnerByScore(p1ID, p2ID string, scores map[string]int) string {
	switch {
	case scores[p1ID] > scores[p2ID]:
		return p1ID
	case scores[p2ID] > scores[p1ID]:
		return p2ID
	default:
		return ""
	}
}
