package app

import (
	"log"
	"sync"
	"time"

	"trivia-duel-service/internal/domain"
)

// QueuedPlayer is a paired queue entry handed to the match layer.
type QueuedPlayer struct {
	Conn     Conn
	PlayerID string
}

type queueEntry struct {
	conn          Conn
	playerID      string
	topicID       string
	joinedAt      time.Time
	cancelTimeout CancelFunc
}

// QueueManager holds per-topic FIFO queues of players waiting for an
// opponent. As soon as a topic queue reaches two entries the two oldest are
// removed and handed to the pair callback; a removed entry can never be
// paired or cancelled again.
type QueueManager struct {
	clock   Clock
	timeout time.Duration
	pair    func(p1, p2 QueuedPlayer, topicID string)

	mu     sync.Mutex
	queues map[string][]*queueEntry
}

func NewQueueManager(clock Clock, timeout time.Duration, pair func(p1, p2 QueuedPlayer, topicID string)) *QueueManager {
	return &QueueManager{
		clock:   clock,
		timeout: timeout,
		pair:    pair,
		queues:  make(map[string][]*queueEntry),
	}
}

// Join adds a player to the topic's queue. If that makes the queue reach two
// entries, the two oldest are paired synchronously, in insertion order.
func (q *QueueManager) Join(conn Conn, playerID, topicID string) {
	q.mu.Lock()
	entry := &queueEntry{
		conn:     conn,
		playerID: playerID,
		topicID:  topicID,
		joinedAt: q.clock.Now(),
	}
	entry.cancelTimeout = q.clock.AfterFunc(q.timeout, func() { q.expire(entry) })
	q.queues[topicID] = append(q.queues[topicID], entry)
	log.Printf("queue: player %s joined topic %s (size %d)", playerID, topicID, len(q.queues[topicID]))

	var p1, p2 *queueEntry
	if waiting := q.queues[topicID]; len(waiting) >= 2 {
		p1, p2 = waiting[0], waiting[1]
		if rest := waiting[2:]; len(rest) == 0 {
			delete(q.queues, topicID)
		} else {
			q.queues[topicID] = rest
		}
		p1.cancelTimeout()
		p2.cancelTimeout()
	}
	q.mu.Unlock()

	if p1 != nil {
		q.pair(QueuedPlayer{Conn: p1.conn, PlayerID: p1.playerID}, QueuedPlayer{Conn: p2.conn, PlayerID: p2.playerID}, topicID)
	}
}

// Cancel removes the connection's entry, if any, and confirms to the client.
// Cancelling after being paired is a no-op.
func (q *QueueManager) Cancel(conn Conn) {
	if q.Remove(conn) {
		conn.Send(domain.EventCancelConfirmed, domain.MessagePayload{Message: "You left the queue."})
	}
}

// Remove silently drops the connection's queue entry, if any. Used by the
// disconnect handler.
func (q *QueueManager) Remove(conn Conn) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	for topicID, waiting := range q.queues {
		for i, entry := range waiting {
			if entry.conn.ID() != conn.ID() {
				continue
			}
			entry.cancelTimeout()
			q.removeAtLocked(topicID, i)
			log.Printf("queue: player %s left topic %s", entry.playerID, topicID)
			return true
		}
	}
	return false
}

// Waiting reports how many players are queued for a topic.
func (q *QueueManager) Waiting(topicID string) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queues[topicID])
}

func (q *QueueManager) expire(entry *queueEntry) {
	q.mu.Lock()
	found := false
	for i, e := range q.queues[entry.topicID] {
		if e == entry {
			q.removeAtLocked(entry.topicID, i)
			found = true
			break
		}
	}
	q.mu.Unlock()
	if found {
		log.Printf("queue: player %s timed out waiting on topic %s", entry.playerID, entry.topicID)
		entry.conn.Send(domain.EventQueueTimeout, domain.MessagePayload{Message: "No opponent was found within the waiting period."})
	}
}

func (q *QueueManager) removeAtLocked(topicID string, i int) {
	waiting := q.queues[topicID]
	waiting = append(waiting[:i], waiting[i+1:]...)
	if len(waiting) == 0 {
		delete(q.queues, topicID)
	} else {
		q.queues[topicID] = waiting
	}
}
