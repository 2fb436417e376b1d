package memory

import (
	"testing"

	"trivia-duel-service/internal/app"
)

func TestMatchDirectoryLifecycle(t *testing.T) {
	dir := NewMatchDirectory()

	m := &app.Match{ID: 7, TopicID: "geo"}
	dir.Put(m)

	got, ok := dir.Get(7)
	if !ok || got != m {
		t.Fatalf("stored match not returned")
	}
	if len(dir.All()) != 1 {
		t.Fatalf("expected one live match, got %d", len(dir.All()))
	}

	dir.Remove(7)
	if _, ok := dir.Get(7); ok {
		t.Fatalf("removed match still present")
	}
	if len(dir.All()) != 0 {
		t.Fatalf("expected no live matches after removal")
	}
}

func TestMatchDirectoryGetMissing(t *testing.T) {
	dir := NewMatchDirectory()
	if _, ok := dir.Get(1); ok {
		t.Fatalf("expected miss for unknown id")
	}
}
