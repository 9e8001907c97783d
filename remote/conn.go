/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package remote

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Maximum message size allowed from peer.
	maxMessageSize = 8192
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Updates buffered per client.
	sendBuffer = 64
)

var upgrader = websocket.Upgrader{}

// errClientClosed ends a connection the client closed. It cancels the
// writer like any other read failure.
var errClientClosed = errors.New("linkki(remote): client closed")

// client is one websocket connection.
type client struct {
	id   string
	conn *websocket.Conn
	send chan Update
}

// ServeHTTP upgrades the request to a websocket, sends the current tree
// and then streams updates while applying the client's events.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", "err", err)
		return
	}
	c := &client{id: ulid.Make().String(), conn: conn, send: make(chan Update, sendBuffer)}
	h.join(c)
	defer h.unregister(c)
	h.log.Debug("client connected", "client", c.id)

	group, ctx := errgroup.WithContext(r.Context())
	group.Go(func() error { return h.readEvents(c) })
	group.Go(func() error { return c.writeUpdates(ctx) })
	if err := group.Wait(); err != nil && !errors.Is(err, errClientClosed) {
		h.log.Debug("client disconnected", "client", c.id, "err", err)
		return
	}
	h.log.Debug("client disconnected", "client", c.id)
}

// readEvents applies events until the connection fails. Errors of single
// events are reported back to the client.
func (h *Hub) readEvents(c *client) error {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		var e Event
		if err := c.conn.ReadJSON(&e); err != nil {
			if isClosure(err) {
				return errClientClosed
			}
			return err
		}
		if err := h.Dispatch(e); err != nil {
			select {
			case c.send <- Update{Error: err.Error()}:
			default:
			}
		}
	}
}

// writeUpdates is the only writer of the connection. It closes the
// connection on return, which also ends readEvents.
func (c *client) writeUpdates(ctx context.Context) error {
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ping.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case <-ctx.Done():
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return nil
		case u := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(u); err != nil {
				return err
			}
		case <-ping.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return err
			}
		}
	}
}

func isClosure(err error) bool {
	return websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)
}
