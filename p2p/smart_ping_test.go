// Copyright (c) 2026 The MWC Node developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p2p

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

func TestWSPingClientSendsPingPayload(t *testing.T) {
	received := make(chan string, 1)
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("server upgrade: %v", err)
			return
		}
		defer conn.Close()
		_, msg, err := conn.ReadMessage()
		if err != nil {
			t.Errorf("server read: %v", err)
			return
		}
		received <- string(msg)
	}))
	defer srv.Close()

	addr := strings.TrimPrefix(srv.URL, "http://")
	client := NewWSPingClient(addr)
	if err := client.SendPing(12345, 67); err != nil {
		t.Fatalf("SendPing: %v", err)
	}

	msg := <-received
	if !strings.Contains(msg, `"difficulty":12345`) || !strings.Contains(msg, `"height":67`) {
		t.Fatalf("ping payload = %q, want difficulty/height fields", msg)
	}
}

func TestWSPingClientFailsOnUnreachableAddr(t *testing.T) {
	client := NewWSPingClient("127.0.0.1:1")
	if err := client.SendPing(1, 1); err == nil {
		t.Fatal("SendPing to an unreachable address succeeded, want error")
	}
}
