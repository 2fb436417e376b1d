package http

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"trivia-duel-service/internal/app"
	"trivia-duel-service/internal/domain"

	"github.com/gorilla/websocket"
)

// WSHandler upgrades connections and routes the duel protocol into the game
// service.
type WSHandler struct {
	service  *app.GameService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.GameService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type joinQueuePayload struct {
	PlayerID string `json:"playerId"`
	TopicID  string `json:"topicId"`
}

type answerPayload struct {
	MatchID       int64  `json:"matchId"`
	PlayerID      string `json:"playerId"`
	QuestionIndex int    `json:"questionIndex"`
	Answer        *int   `json:"answer"`
	ForceLose     bool   `json:"forceLose"`
}

type readyPayload struct {
	MatchID  int64  `json:"matchId"`
	PlayerID string `json:"playerId"`
}

type outboundMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// wsConn adapts one websocket to app.Conn. Sends go through a buffered
// channel drained by a single writer goroutine; a full buffer drops the
// event rather than stalling the match engine.
type wsConn struct {
	id   string
	send chan outboundMessage
	done chan struct{}
	once sync.Once
}

func newWSConn() *wsConn {
	return &wsConn{
		id:   newConnID(),
		send: make(chan outboundMessage, 64),
		done: make(chan struct{}),
	}
}

func (c *wsConn) ID() string { return c.id }

func (c *wsConn) Send(event string, payload any) {
	select {
	case <-c.done:
	case c.send <- outboundMessage{Type: event, Payload: payload}:
	default:
		log.Printf("ws %s: send buffer full, dropping %s", c.id, event)
	}
}

func (c *wsConn) close() {
	c.once.Do(func() { close(c.done) })
}

func newConnID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// ServeWS upgrades HTTP requests to websockets and wires them into the
// matchmaking and match use cases.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	c := newWSConn()
	defer h.service.HandleDisconnect(c)
	defer c.close()

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for {
			select {
			case msg := <-c.send:
				if err := conn.WriteJSON(msg); err != nil {
					log.Printf("ws %s: write error: %v", c.id, err)
					return
				}
			case <-c.done:
				return
			}
		}
	}()
	defer func() { <-writerDone }()

	log.Printf("ws %s: player connected", c.id)
	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			log.Printf("ws %s: player disconnected: %v", c.id, err)
			return
		}
		h.dispatch(c, inbound)
	}
}

func (h *WSHandler) dispatch(c *wsConn, inbound inboundMessage) {
	switch inbound.Type {
	case "join_queue":
		var payload joinQueuePayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil || payload.PlayerID == "" || payload.TopicID == "" {
			c.Send(domain.EventError, domain.ErrorPayload{Message: "playerId and topicId are required"})
			return
		}
		h.service.JoinQueue(c, payload.PlayerID, payload.TopicID)

	case "cancel_queue":
		h.service.CancelQueue(c)

	case "submit_answer":
		var payload answerPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil || payload.MatchID <= 0 || payload.PlayerID == "" {
			c.Send(domain.EventError, domain.ErrorPayload{Message: "invalid answer payload"})
			return
		}
		if payload.Answer == nil && !payload.ForceLose {
			c.Send(domain.EventError, domain.ErrorPayload{Message: "answer is required unless forceLose is set"})
			return
		}
		answer := -1
		if payload.Answer != nil {
			answer = *payload.Answer
		}
		h.service.HandleAnswer(domain.AnswerSubmission{
			MatchID:       payload.MatchID,
			PlayerID:      payload.PlayerID,
			QuestionIndex: payload.QuestionIndex,
			Answer:        answer,
			ForceLose:     payload.ForceLose,
		})

	case "player_ready":
		var payload readyPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil || payload.MatchID <= 0 || payload.PlayerID == "" {
			c.Send(domain.EventError, domain.ErrorPayload{Message: "matchId and playerId are required"})
			return
		}
		h.service.PlayerReady(payload.MatchID, payload.PlayerID)

	default:
		c.Send(domain.EventError, domain.ErrorPayload{Message: "unsupported message type"})
	}
}
