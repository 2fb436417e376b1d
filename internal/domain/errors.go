package domain

import "errors"

// ErrNoQuestions indicates the question bank has nothing left for a topic.
var ErrNoQuestions = errors.New("no questions available for topic")
