package socket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

func dialTestClient(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		hub.Register(conn)
	}))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// Registration happens in the server handler goroutine.
	deadline := time.Now().Add(2 * time.Second)
	for {
		hub.mu.RLock()
		n := len(hub.clients)
		hub.mu.RUnlock()
		if n > 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("client was never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}
	return conn
}

func TestBroadcastDeliversToClient(t *testing.T) {
	hub := NewHub(zap.NewNop())
	client := dialTestClient(t, hub)

	hub.Broadcast("devis.created", map[string]string{"id": "abc"})

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, frame, err := client.ReadMessage()
	if err != nil {
		t.Fatalf("read broadcast frame: %v", err)
	}

	var event Event
	if err := json.Unmarshal(frame, &event); err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	if event.Type != "devis.created" {
		t.Fatalf("unexpected event type: %q", event.Type)
	}
	data, ok := event.Data.(map[string]any)
	if !ok || data["id"] != "abc" {
		t.Fatalf("unexpected event data: %+v", event.Data)
	}
}

func TestBroadcastWithoutClients(t *testing.T) {
	hub := NewHub(zap.NewNop())
	// Must be a silent no-op.
	hub.Broadcast("message.created", map[string]string{"id": "x"})
}

func TestBroadcastDropsDeadClient(t *testing.T) {
	hub := NewHub(zap.NewNop())
	client := dialTestClient(t, hub)
	client.Close()

	// The first write may still land in OS buffers; broadcasting twice
	// guarantees the dead connection is detected and evicted.
	hub.Broadcast("devis.created", map[string]string{"id": "1"})
	time.Sleep(50 * time.Millisecond)
	hub.Broadcast("devis.created", map[string]string{"id": "2"})

	hub.mu.RLock()
	defer hub.mu.RUnlock()
	if len(hub.clients) != 0 {
		t.Fatalf("expected dead client to be dropped, %d still registered", len(hub.clients))
	}
}
