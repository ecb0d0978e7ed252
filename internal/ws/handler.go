package ws

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sheepshead/backend/internal/deck"
	"github.com/sheepshead/backend/internal/directory"
	"github.com/sheepshead/backend/internal/game"
	"github.com/sheepshead/backend/internal/hub"
	"github.com/sheepshead/backend/internal/room"
	"github.com/sheepshead/backend/internal/types"
)

const (
	pingPeriod   = 30 * time.Second
	writeTimeout = 3 * time.Second
)

// Handler upgrades GET /games/{roomID}. The room must already exist in the
// directory; unknown rooms and rooms beyond the live cap are refused before
// the handshake.
func Handler(h *hub.Hub, dir directory.Directory, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomID := chi.URLParam(r, "roomID")
		if roomID == "" {
			http.Error(w, "missing room id", http.StatusBadRequest)
			return
		}

		exists, err := dir.GameExists(r.Context(), roomID)
		if err != nil {
			log.Error("room lookup failed", zap.String("roomID", roomID), zap.Error(err))
			http.Error(w, "room lookup failed", http.StatusInternalServerError)
			return
		}
		if !exists {
			http.Error(w, "room not found", http.StatusNotFound)
			return
		}

		reply := make(chan *room.Room, 1)
		h.Inbox() <- hub.EnsureRoom{ID: roomID, Reply: reply}
		rm := <-reply
		if rm == nil {
			http.Error(w, "room capacity exceeded", http.StatusServiceUnavailable)
			return
		}

		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "closed")

		clientID := randID(6)
		clog := log.With(zap.String("roomID", roomID), zap.String("client", clientID))

		out := make(chan []byte, 8)
		rm.Inbox() <- room.Join{ClientID: clientID, Outbox: out}
		defer func() { rm.Inbox() <- room.Leave{ClientID: clientID} }()

		connCtx, cancel := context.WithCancel(r.Context())
		defer cancel()

		// writer: drain the room outbox until it closes or the room dies
		go func() {
			defer cancel()
			for {
				select {
				case payload, ok := <-out:
					if !ok {
						return
					}
					wctx, wcancel := context.WithTimeout(connCtx, writeTimeout)
					err := conn.Write(wctx, websocket.MessageText, payload)
					wcancel()
					if err != nil {
						return
					}
				case <-rm.Done():
					return
				case <-connCtx.Done():
					return
				}
			}
		}()

		// liveness: ping every period, terminate on a missed pong
		go func() {
			defer cancel()
			ticker := time.NewTicker(pingPeriod)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					pctx, pcancel := context.WithTimeout(connCtx, pingPeriod)
					err := conn.Ping(pctx)
					pcancel()
					if err != nil {
						clog.Info("liveness ping failed, terminating", zap.Error(err))
						return
					}
				case <-connCtx.Done():
					return
				}
			}
		}()

		for {
			_, data, err := conn.Read(connCtx)
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				// malformed input is dropped, never echoed back
				clog.Warn("malformed message dropped", zap.Error(err))
				continue
			}

			switch cm.ContentType {
			case types.ContentChat:
				rm.Inbox() <- room.Chat{UserName: cm.UserName, Content: cm.Content}

			case types.ContentGame:
				cmd, err := toCommand(cm)
				if err != nil {
					rm.Inbox() <- room.Reject{ClientID: clientID, Reason: err.Error()}
					continue
				}
				rm.Inbox() <- room.FromClient{ClientID: clientID, Cmd: cmd}

			default:
				// accepted, no state change and no broadcast
			}
		}
	}
}

func toCommand(m types.ClientMessage) (game.Command, error) {
	cmd := game.Command{
		Type:     game.CommandType(m.GameCommand),
		UserID:   m.UserID,
		UserName: m.UserName,
	}

	switch cmd.Type {
	case game.CmdCall, game.CmdPlay:
		card, err := deck.Parse(m.Content)
		if err != nil {
			return game.Command{}, err
		}
		cmd.Card = card
		return cmd, nil
	case game.CmdState, game.CmdJoin, game.CmdDeal, game.CmdPick,
		game.CmdCollect, game.CmdTrick, game.CmdScore,
		game.CmdNextRound, game.CmdResetAll:
		return cmd, nil
	default:
		return game.Command{}, game.ErrUnsupportedCommand
	}
}

func randID(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
