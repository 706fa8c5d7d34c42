package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/madhangowdaa/mak-backend/internal/live"
)

const (
	liveWriteWait  = 10 * time.Second
	livePingPeriod = 30 * time.Second
)

// upgrader global; el origen ya lo filtra CORS
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Live feed of top-10, trending, upcoming and click changes (WebSocket)
// @Tags live
// @Produce json
// @Success 101 {object} live.Event
// @Router /api/live [get]
func LiveFeed(hub *live.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade ya escribió la respuesta de error
			log.Printf("[live] no se pudo abrir WebSocket: %v", err)
			return
		}
		defer conn.Close()

		events, cancel := hub.Subscribe()
		defer cancel()

		// el cliente solo escucha; leer detecta el cierre
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
		if err := conn.WriteJSON(live.Event{Type: live.EventHello, At: time.Now().UTC()}); err != nil {
			return
		}

		ping := time.NewTicker(livePingPeriod)
		defer ping.Stop()
		for {
			select {
			case <-closed:
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
				if err := conn.WriteJSON(ev); err != nil {
					return
				}
			case <-ping.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(liveWriteWait)); err != nil {
					return
				}
			}
		}
	}
}
