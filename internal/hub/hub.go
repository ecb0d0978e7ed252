package hub

import (
	"context"

	"go.uber.org/zap"

	"github.com/sheepshead/backend/internal/game"
	"github.com/sheepshead/backend/internal/room"
)

// MaxLiveRooms caps how many rooms may hold a live game at once.
const MaxLiveRooms = 5

type HubMsg interface{ isHubMsg() }

// EnsureRoom replies with the room for ID, creating it (and its game) on
// first use. The reply is nil when the cap is reached and ID is not live.
type EnsureRoom struct {
	ID    string
	Reply chan *room.Room
}

type GetRoom struct {
	ID    string
	Reply chan *room.Room
}

type RemoveRoom struct {
	ID string
}

type ShutdownHub struct{}

func (EnsureRoom) isHubMsg()  {}
func (GetRoom) isHubMsg()     {}
func (RemoveRoom) isHubMsg()  {}
func (ShutdownHub) isHubMsg() {}

// Hub owns the map from room ID to live room. All access goes through the
// inbox, so the map needs no locking.
type Hub struct {
	inbox  chan HubMsg
	rooms  map[string]*room.Room
	ctx    context.Context
	cancel context.CancelFunc
	log    *zap.Logger
}

func NewHub(parent context.Context, log *zap.Logger) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:  make(chan HubMsg, 64),
		rooms:  make(map[string]*room.Room),
		ctx:    ctx,
		cancel: cancel,
		log:    log,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case EnsureRoom:
				if rm := h.rooms[msg.ID]; rm != nil {
					msg.Reply <- rm
					break
				}
				if len(h.rooms) >= MaxLiveRooms {
					h.log.Warn("room cap reached", zap.String("roomID", msg.ID))
					msg.Reply <- nil
					break
				}
				id := msg.ID
				rm := room.New(h.ctx, game.New(), h.log.With(zap.String("roomID", id)), func() {
					h.inbox <- RemoveRoom{ID: id}
				})
				h.rooms[id] = rm
				h.log.Info("room created", zap.String("roomID", id))
				msg.Reply <- rm

			case GetRoom:
				msg.Reply <- h.rooms[msg.ID] // may be nil

			case RemoveRoom:
				delete(h.rooms, msg.ID)
				h.log.Info("room removed", zap.String("roomID", msg.ID))

			case ShutdownHub:
				for _, rm := range h.rooms {
					rm.Inbox() <- room.Shutdown{}
				}
				clear(h.rooms)
				h.cancel()
			}
		}
	}
}
