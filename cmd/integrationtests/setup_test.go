package integrationtests

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"auction-engine/internal/auth"
	"auction-engine/internal/bidding"
	"auction-engine/internal/dispatch"
	"auction-engine/internal/listing"
	model "auction-engine/internal/models"
	"auction-engine/internal/rooms"
	"auction-engine/internal/server"
	"auction-engine/internal/store"
	"auction-engine/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

const testSecret = "integration-test-secret"

// testEnv wires the full engine against an httptest server.
type testEnv struct {
	store    *store.MemoryStore
	registry *rooms.Registry
	srv      *httptest.Server
}

// SetupEnv builds the whole stack with an in-memory store and seeds it with
// the given auctions.
func SetupEnv(t *testing.T, auctions ...model.Auction) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	memStore := store.NewMemoryStore()
	for _, a := range auctions {
		require.NoError(t, memStore.CreateAuction(a))
	}

	registry := rooms.NewRegistry()
	dispatcher := dispatch.NewDispatcher(registry)
	dispatcher.Start()

	listingSvc := listing.NewStoreBacked(memStore)
	processor := bidding.NewProcessor(memStore, listingSvc, dispatcher, time.Second)
	authenticator := auth.NewJWTAuthenticator(testSecret)
	hub := ws.NewHub(authenticator, registry, processor, 32)

	router := server.SetupRouter(processor, hub, authenticator)
	srv := httptest.NewServer(router)

	t.Cleanup(func() {
		hub.CloseAll()
		srv.Close()
		dispatcher.Close()
	})

	return &testEnv{store: memStore, registry: registry, srv: srv}
}

// Credential signs a valid token for a bidder
func Credential(t *testing.T, bidderID string) string {
	t.Helper()
	token, err := auth.SignCredential(testSecret, bidderID, "bidder", time.Minute)
	require.NoError(t, err)
	return token
}

// Dial opens an authenticated websocket session
func (e *testEnv) Dial(t *testing.T, bidderID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(e.srv.URL, "http") + "/ws?token=" + Credential(t, bidderID)
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// ReadEvent reads the next outbound event with a bounded wait
func ReadEvent(t *testing.T, conn *websocket.Conn) model.Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev model.Event
	require.NoError(t, conn.ReadJSON(&ev))
	return ev
}

// ExpectNoEvent asserts that nothing arrives within the wait window
func ExpectNoEvent(t *testing.T, conn *websocket.Conn, wait time.Duration) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(wait)))
	var ev model.Event
	err := conn.ReadJSON(&ev)
	require.Error(t, err, "expected no event, got %+v", ev)
}

// JoinAuction joins a room and consumes the ack
func JoinAuction(t *testing.T, conn *websocket.Conn, auctionID string) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(map[string]string{"type": "join-auction", "auction_id": auctionID}))
	ack := ReadEvent(t, conn)
	require.Equal(t, model.EventJoined, ack.Type)
	require.Equal(t, auctionID, ack.AuctionID)
}

// PlaceBid submits a bid over the websocket
func PlaceBid(t *testing.T, conn *websocket.Conn, auctionID, amount string) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(map[string]string{
		"type":       "place-bid",
		"auction_id": auctionID,
		"amount":     amount,
	}))
}
