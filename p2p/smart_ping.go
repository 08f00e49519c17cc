// Copyright (c) 2026 The MWC Node developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p2p

import (
	"fmt"
	"time"

	"github.com/gorilla/websocket"
)

// WSPingClient implements the smart-sync ping transport to a preferred
// peer over a lightweight websocket connection, reusing the transport
// rpcclient pulls in for notifications rather than standing up a full
// JSON-RPC round trip for a single one-shot message.
type WSPingClient struct {
	url string
}

// NewWSPingClient targets the preferred peer's ping endpoint.
func NewWSPingClient(addr string) *WSPingClient {
	return &WSPingClient{url: fmt.Sprintf("ws://%s/ping", addr)}
}

// SendPing dials, sends one ping frame, and closes. The transport is not
// retried: the caller logs a failure and carries on with standard sync.
func (c *WSPingClient) SendPing(difficulty uint64, height uint64) error {
	dialer := &websocket.Dialer{HandshakeTimeout: 5 * time.Second}
	conn, _, err := dialer.Dial(c.url, nil)
	if err != nil {
		return fmt.Errorf("p2p: dial %s: %w", c.url, err)
	}
	defer conn.Close()

	msg := fmt.Sprintf(`{"difficulty":%d,"height":%d}`, difficulty, height)
	if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
		return fmt.Errorf("p2p: write ping: %w", err)
	}
	return nil
}
