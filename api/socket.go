package api

import (
	"net/http"
	"time"

	"github.com/battlesnakeio/decaysnake/controller"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	log "github.com/sirupsen/logrus"
)

// SocketPollInterval is how often the frame stream checks for new frames.
var SocketPollInterval = 50 * time.Millisecond

const socketWriteTimeout = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// framesSocket streams every frame of a game, oldest first, as JSON text
// messages. The stream closes normally once the game has ended and all its
// frames have been sent.
func (s *Server) framesSocket(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if _, err := s.controller.Status(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).WithField("GameID", id).Warn("unable to upgrade connection")
		return
	}
	defer func() {
		if err := ws.Close(); err != nil {
			log.WithError(err).Debug("unable to close websocket stream")
		}
	}()

	// Reads only serve to notice the client going away.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	logger := log.WithField("GameID", id)
	offset := 0
	for {
		resp, err := s.controller.ListGameFrames(r.Context(), id, 100, offset)
		if err != nil {
			logger.WithError(err).Warn("unable to list frames")
			return
		}
		for _, f := range resp.Frames {
			_ = ws.SetWriteDeadline(time.Now().Add(socketWriteTimeout))
			if err := ws.WriteJSON(f); err != nil {
				logger.WithError(err).Debug("unable to write frame")
				return
			}
			offset = int(f.Turn) + 1
			if f.Status.Done() {
				closeSocket(ws)
				return
			}
		}
		if len(resp.Frames) == 0 {
			st, err := s.controller.Status(r.Context(), id)
			if err != nil {
				return
			}
			if st.Game.Status == controller.GameStatusError {
				closeSocket(ws)
				return
			}
		}

		select {
		case <-gone:
			return
		case <-r.Context().Done():
			return
		case <-time.After(SocketPollInterval):
		}
	}
}

func closeSocket(ws *websocket.Conn) {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "game over")
	_ = ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(socketWriteTimeout))
}
