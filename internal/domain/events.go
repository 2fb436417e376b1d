package domain

// Outbound event names on the websocket wire.
const (
	EventOpponentFound        = "opponent_found"
	EventPreGameMessage       = "pre_game_message"
	EventReadyCheck           = "ready_check"
	EventCountdown            = "countdown"
	EventMatchStarted         = "match_started"
	EventNextQuestion         = "next_question"
	EventPromptAnswer         = "prompt_answer"
	EventRoundResult          = "round_result"
	EventTiebreaker           = "tiebreaker"
	EventTiebreakerResult     = "tiebreaker_result"
	EventGameOver             = "game_over"
	EventQueueTimeout         = "queue_timeout"
	EventCancelConfirmed      = "cancel_confirmed"
	EventOpponentDisconnected = "opponent_disconnected"
	EventError                = "error"
)
