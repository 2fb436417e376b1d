package app

// Conn is the transport-facing side of a connected player. Send must not
// block: the websocket layer satisfies this with a buffered writer
// goroutine, dropping on overflow rather than stalling the match engine.
type Conn interface {
	ID() string
	Send(event string, payload any)
}
