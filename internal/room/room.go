package room

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/sheepshead/backend/internal/game"
	"github.com/sheepshead/backend/internal/types"
)

type Msg interface{ isRoomMsg() }

// FromClient carries one game command. ClientID identifies the sender so
// engine errors can be reported back to it alone.
type FromClient struct {
	ClientID string
	Cmd      game.Command
}

func (FromClient) isRoomMsg() {}

type Join struct {
	ClientID string
	Outbox   chan []byte // where this client wants to receive payloads
}

func (Join) isRoomMsg() {}

type Leave struct{ ClientID string }

func (Leave) isRoomMsg() {}

// Chat is relayed to every client in the room without touching the game.
type Chat struct {
	UserName string
	Content  string
}

func (Chat) isRoomMsg() {}

// Reject reports an input error back to one client without touching the
// game, so the connection layer never writes to the socket itself.
type Reject struct {
	ClientID string
	Reason   string
}

func (Reject) isRoomMsg() {}

type Shutdown struct{}

func (Shutdown) isRoomMsg() {}

type GetView struct {
	Reply chan View
}

func (GetView) isRoomMsg() {}

type View struct {
	Version    int
	NumClients int
	State      json.RawMessage
}

// Room is the actor owning one game instance and its broadcast group.
// Commands are applied one at a time in the loop goroutine, so the game
// itself needs no locking. When the last client leaves, the room shuts
// down and tells its owner via onEmpty.
type Room struct {
	inbox   chan Msg
	game    *game.Game
	version int
	clients map[string]chan []byte
	ctx     context.Context
	cancel  context.CancelFunc
	log     *zap.Logger
	onEmpty func()
}

func New(parent context.Context, g *game.Game, log *zap.Logger, onEmpty func()) *Room {
	ctx, cancel := context.WithCancel(parent)

	r := &Room{
		inbox:   make(chan Msg, 64),
		game:    g,
		version: 0,
		clients: make(map[string]chan []byte),
		ctx:     ctx,
		cancel:  cancel,
		log:     log,
		onEmpty: onEmpty,
	}

	go r.loop()
	return r
}

func (r *Room) Inbox() chan<- Msg { return r.inbox }

// Done closes once the room has shut down. Connections watch it so a join
// racing a teardown does not strand the client on a silent socket.
func (r *Room) Done() <-chan struct{} { return r.ctx.Done() }

func (r *Room) loop() {
	for {
		select {
		case <-r.ctx.Done():
			r.shutdown()
			return

		case m := <-r.inbox:
			switch msg := m.(type) {
			case Join:
				// register the client and send the current state immediately
				r.clients[msg.ClientID] = msg.Outbox
				msg.Outbox <- r.statePayload()

			case Leave:
				r.drop(msg.ClientID)
				if len(r.clients) == 0 {
					r.shutdown()
					if r.onEmpty != nil {
						r.onEmpty()
					}
					return
				}

			case FromClient:
				if err := r.game.Apply(msg.Cmd); err != nil {
					r.log.Warn("command rejected",
						zap.String("client", msg.ClientID),
						zap.String("command", string(msg.Cmd.Type)),
						zap.Error(err))
					r.sendTo(msg.ClientID, marshal(types.ServerMessage{
						Type:  "error",
						Error: err.Error(),
					}))
					break
				}
				r.version++
				r.broadcast(r.statePayload())

			case Reject:
				r.sendTo(msg.ClientID, marshal(types.ServerMessage{
					Type:  "error",
					Error: msg.Reason,
				}))

			case Chat:
				r.broadcast(marshal(types.ServerMessage{
					Type:     "chat",
					UserName: msg.UserName,
					Content:  msg.Content,
				}))

			case GetView:
				// test-only: reflect internal state without data races
				msg.Reply <- View{
					Version:    r.version,
					NumClients: len(r.clients),
					State:      r.stateJSON(),
				}

			case Shutdown:
				r.shutdown()
				return
			}
		}
	}
}

func (r *Room) shutdown() {
	for id := range r.clients {
		r.drop(id)
	}
	r.cancel()
}

func (r *Room) drop(id string) {
	if ch, ok := r.clients[id]; ok {
		close(ch)
		delete(r.clients, id)
	}
}

func (r *Room) stateJSON() json.RawMessage {
	raw, err := json.Marshal(r.game)
	if err != nil {
		r.log.Error("marshal game state", zap.Error(err))
		return json.RawMessage(`{}`)
	}
	return raw
}

func (r *Room) statePayload() []byte {
	return marshal(types.ServerMessage{
		Type:    "state",
		Version: r.version,
		State:   r.stateJSON(),
	})
}

func (r *Room) sendTo(id string, payload []byte) {
	ch, ok := r.clients[id]
	if !ok {
		return
	}
	select {
	case ch <- payload:
	default:
		r.drop(id)
	}
}

func (r *Room) broadcast(payload []byte) {
	for id, ch := range r.clients {
		select {
		case ch <- payload:
			// ok
		default:
			// client is slow/full - drop it
			r.drop(id)
		}
	}
}

func marshal(m types.ServerMessage) []byte {
	payload, _ := json.Marshal(m)
	return payload
}
