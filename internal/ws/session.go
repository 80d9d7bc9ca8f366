package ws

import (
	"errors"
	"sync"
	"time"

	model "auction-engine/internal/models"
	"auction-engine/utils"

	"github.com/gorilla/websocket"
)

// Delivery errors. Both mean the event is skipped for this subscriber.
var (
	ErrSessionClosed = errors.New("session closed")
	ErrSessionBusy   = errors.New("session outbound buffer full")
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	// Inbound frames are small control messages; anything bigger is abuse.
	maxMessageSize = 4 * 1024
)

// Session is one authenticated connection: its identity, its outbound
// channel, and the set of auctions it has joined. Owned by the Hub;
// referenced (not owned) by the room registry.
type Session struct {
	connID   string
	bidderID string
	role     string

	conn *websocket.Conn
	send chan model.Event
	done chan struct{}

	mu     sync.Mutex
	joined map[string]struct{}

	closeOnce sync.Once
	onClose   func(*Session)
}

func newSession(conn *websocket.Conn, bidderID, role string, sendBuffer int, onClose func(*Session)) *Session {
	if sendBuffer <= 0 {
		sendBuffer = 32
	}
	return &Session{
		connID:   utils.GenerateID(),
		bidderID: bidderID,
		role:     role,
		conn:     conn,
		send:     make(chan model.Event, sendBuffer),
		done:     make(chan struct{}),
		joined:   make(map[string]struct{}),
		onClose:  onClose,
	}
}

// ConnID returns the connection identifier
func (s *Session) ConnID() string { return s.connID }

// BidderID returns the authenticated bidder identity
func (s *Session) BidderID() string { return s.bidderID }

// Role returns the authenticated role
func (s *Session) Role() string { return s.role }

// Deliver queues an event for the write pump without blocking. A full buffer
// or a closed session is reported as an error so the dispatcher can skip this
// subscriber.
func (s *Session) Deliver(ev model.Event) error {
	select {
	case <-s.done:
		return ErrSessionClosed
	default:
	}
	select {
	case s.send <- ev:
		return nil
	case <-s.done:
		return ErrSessionClosed
	default:
		return ErrSessionBusy
	}
}

// Close tears the session down exactly once, even if close is signaled more
// than once: room membership is dropped, the write pump is stopped, and the
// transport is closed.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		if s.onClose != nil {
			s.onClose(s)
		}
		close(s.done)
		s.conn.Close()
	})
}

func (s *Session) markJoined(auctionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.joined[auctionID] = struct{}{}
}

func (s *Session) markLeft(auctionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.joined, auctionID)
}

func (s *Session) hasJoined(auctionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.joined[auctionID]
	return ok
}

// writePump drains the outbound channel onto the websocket and keeps the
// connection alive with pings. One writer goroutine per connection; gorilla
// connections permit at most one concurrent writer.
func (s *Session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.Close()
	}()

	for {
		select {
		case ev := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteJSON(ev); err != nil {
				utils.Debug("ws: write failed, closing session", map[string]any{
					"conn_id": s.connID,
					"error":   err.Error(),
				})
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-s.done:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
