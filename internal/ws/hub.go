package ws

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/auth"
	"auction-engine/internal/bidding"
	model "auction-engine/internal/models"
	"auction-engine/internal/rooms"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Hub owns the lifecycle of every websocket connection: credential check
// before upgrade, session creation, event dispatch to the processor and
// registry, and idempotent teardown on disconnect.
type Hub struct {
	authenticator auth.Authenticator
	registry      *rooms.Registry
	processor     *bidding.Processor
	upgrader      websocket.Upgrader
	sendBuffer    int

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewHub creates a connection hub with injected collaborators
func NewHub(a auth.Authenticator, r *rooms.Registry, p *bidding.Processor, sendBuffer int) *Hub {
	return &Hub{
		authenticator: a,
		registry:      r,
		processor:     p,
		sendBuffer:    sendBuffer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		sessions: make(map[string]*Session),
	}
}

// ServeWS handles GET /ws. The credential is verified once, before the
// upgrade; verification failure closes the transport before any further
// message is read.
func (h *Hub) ServeWS(c *gin.Context) {
	identity, err := h.authenticator.Verify(credentialFromRequest(c))
	if err != nil {
		utils.Warn("ws: connection rejected", map[string]any{
			"remote": c.Request.RemoteAddr,
			"error":  err.Error(),
		})
		utils.JSONError(c, http.StatusUnauthorized, auctionerrors.ErrAuthenticationFailed, "authentication failed")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Warn("ws: upgrade failed", map[string]any{"error": err.Error()})
		return
	}

	session := newSession(conn, identity.BidderID, identity.Role, h.sendBuffer, func(s *Session) {
		h.registry.DropSession(s)
		h.remove(s)
	})
	h.add(session)
	utils.Info("ws: session opened", map[string]any{
		"conn_id":   session.ConnID(),
		"bidder_id": session.BidderID(),
	})

	go session.writePump()
	h.readPump(session)
}

// readPump consumes inbound frames until the connection drops, then tears the
// session down.
func (h *Hub) readPump(s *Session) {
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-s.done
		cancel()
	}()

	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var ev InboundEvent
		if err := s.conn.ReadJSON(&ev); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				utils.Debug("ws: abnormal close", map[string]any{
					"conn_id": s.ConnID(),
					"error":   err.Error(),
				})
			}
			utils.Info("ws: session closed", map[string]any{"conn_id": s.ConnID()})
			return
		}
		h.handleInbound(ctx, s, ev)
	}
}

// handleInbound routes one client frame. Bid rejections are recovered here
// and converted to a bid-error event; they never crash the connection.
func (h *Hub) handleInbound(ctx context.Context, s *Session, ev InboundEvent) {
	switch ev.Type {
	case InboundJoinAuction:
		if ev.AuctionID == "" {
			s.Deliver(model.BidErrorEvent("", "InvalidBid", "join-auction requires auction_id"))
			return
		}
		h.registry.Join(ev.AuctionID, s)
		s.markJoined(ev.AuctionID)
		s.Deliver(model.AckEvent(model.EventJoined, ev.AuctionID))

	case InboundLeaveAuction:
		if ev.AuctionID == "" {
			s.Deliver(model.BidErrorEvent("", "InvalidBid", "leave-auction requires auction_id"))
			return
		}
		h.registry.Leave(ev.AuctionID, s)
		s.markLeft(ev.AuctionID)
		s.Deliver(model.AckEvent(model.EventLeft, ev.AuctionID))

	case InboundPlaceBid:
		bid, err := h.processor.SubmitBid(ctx, ev.AuctionID, s.BidderID(), ev.Amount)
		if err != nil {
			s.Deliver(model.BidErrorEvent(ev.AuctionID, auctionerrors.Reason(err), rejectionMessage(err)))
			return
		}
		// A submitter outside the room would otherwise see no outcome; the
		// broadcast only reaches current members.
		if !s.hasJoined(ev.AuctionID) {
			auction, snapErr := h.processor.Snapshot(ev.AuctionID)
			if snapErr == nil {
				s.Deliver(model.NewBidEvent(auction, bid))
			}
		}

	default:
		s.Deliver(model.BidErrorEvent(ev.AuctionID, "InvalidBid", "unknown event type"))
	}
}

func (h *Hub) add(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[s.ConnID()] = s
}

func (h *Hub) remove(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, s.ConnID())
}

// SessionCount returns the number of live sessions
func (h *Hub) SessionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// CloseAll tears down every live session; used on server shutdown
func (h *Hub) CloseAll() {
	h.mu.Lock()
	sessions := make([]*Session, 0, len(h.sessions))
	for _, s := range h.sessions {
		sessions = append(sessions, s)
	}
	h.mu.Unlock()
	for _, s := range sessions {
		s.Close()
	}
}

// credentialFromRequest pulls the opaque token from the query string or the
// Authorization header. Browsers cannot set headers on websocket dials, so
// the query form is the primary one.
func credentialFromRequest(c *gin.Context) string {
	if token := c.Query("token"); token != "" {
		return token
	}
	authz := c.GetHeader("Authorization")
	if strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimPrefix(authz, "Bearer ")
	}
	return ""
}

// rejectionMessage keeps wire messages to the sentinel text rather than the
// full wrapped chain.
func rejectionMessage(err error) string {
	for _, sentinel := range []error{
		auctionerrors.ErrInvalidBid,
		auctionerrors.ErrAuctionNotFound,
		auctionerrors.ErrAuctionClosed,
		auctionerrors.ErrBidTooLow,
		auctionerrors.ErrSelfBidNotAllowed,
		auctionerrors.ErrLockTimeout,
		auctionerrors.ErrStoreUnavailable,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "bid rejected"
}
