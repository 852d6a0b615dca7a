package playback

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/karalvik/npuzzle/board"
)

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub(nil)

	client := &Client{
		hub:     hub,
		session: "test-session",
		send:    make(chan []byte, 256),
	}

	hub.registerClient(client)
	if !hub.sessions["test-session"][client] {
		t.Fatal("client was not registered in session")
	}

	hub.unregisterClient(client)
	if _, exists := hub.sessions["test-session"]; exists {
		t.Error("empty session was not cleaned up")
	}
	if _, open := <-client.send; open {
		t.Error("send channel left open after unregister")
	}
}

func TestHubBroadcastDropsSlowClient(t *testing.T) {
	hub := NewHub(nil)

	slow := &Client{
		hub:     hub,
		session: "s",
		send:    make(chan []byte), // unbuffered, never drained
	}
	hub.registerClient(slow)

	hub.broadcastMessage(&Message{Session: "s", Event: "frame"})
	if _, exists := hub.sessions["s"]; exists {
		t.Error("slow client was not dropped on full send buffer")
	}
}

// TestHubEndToEnd dials a real WebSocket against the hub and receives a
// broadcast frame.
func TestHubEndToEnd(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil)
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWS(w, r, "demo")
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// give the register message time to reach the Run loop
	time.Sleep(50 * time.Millisecond)

	goal := board.Goal(3)
	hub.BroadcastFrame("demo", newFrame(goal, 1, 1))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Event != "frame" || msg.Session != "demo" {
		t.Errorf("got event %q session %q; want frame/demo", msg.Event, msg.Session)
	}
	if msg.Frame == nil || msg.Frame.Size != 3 {
		t.Errorf("frame payload missing or wrong size: %+v", msg.Frame)
	}
}
