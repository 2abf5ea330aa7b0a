package room

import (
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Satisfaction108/Burrs-io-sub000/game"
	"github.com/Satisfaction108/Burrs-io-sub000/protocol"
)

type client struct {
	conn  Conn
	codec protocol.Codec
}

// Room owns one arena. Only the Run goroutine touches the world; everything
// else talks to it through Inbox, so each tick sees every command that arrived
// before it and never a half-applied one.
type Room struct {
	Inbox chan any

	Code string // room code (e.g. "ABC123")

	world        *game.World
	clients      map[string]*client
	latestInputs map[string]game.Input
	usernames    map[string]string
	now          func() time.Time

	players  atomic.Int64
	quit     chan struct{}
	stopOnce sync.Once
}

func New(cfg game.Config) *Room {
	return &Room{
		Inbox:        make(chan any, 256),
		world:        game.NewWorld(cfg, uint64(time.Now().UnixNano())),
		clients:      make(map[string]*client),
		latestInputs: make(map[string]game.Input),
		usernames:    make(map[string]string),
		now:          time.Now,
		quit:         make(chan struct{}),
	}
}

func (r *Room) Stop() {
	r.stopOnce.Do(func() { close(r.quit) })
}

// Submit queues a command; it reports false once the room has stopped.
func (r *Room) Submit(cmd any) bool {
	select {
	case <-r.quit:
		return false
	default:
	}
	select {
	case r.Inbox <- cmd:
		return true
	case <-r.quit:
		return false
	}
}

// NumPlayers returns the number of spikes in the arena. Safe from any goroutine.
func (r *Room) NumPlayers() int {
	return int(r.players.Load())
}

func (r *Room) Run() {
	cfg := r.world.Config()
	ticker := time.NewTicker(time.Second / time.Duration(cfg.TickHz))
	defer ticker.Stop()

	for {
		select {
		case <-r.quit:
			r.closeAll()
			return
		case cmd := <-r.Inbox:
			r.handleCommand(cmd)
		case now := <-ticker.C:
			r.tick(now)
		}
	}
}

func (r *Room) tick(now time.Time) {
	events := game.Step(r.world, r.latestInputs, now)
	for _, ev := range events {
		if t, payload := eventMessage(ev); t != "" {
			r.broadcast(t, payload, "")
		}
	}
	if r.world.Tick%r.world.Config().SnapshotEvery == 0 {
		r.broadcast(protocol.MsgGameState, r.buildSnapshot(), "")
	}
	r.players.Store(int64(len(r.world.Players)))
}

func (r *Room) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Connect:
		r.clients[c.ID] = &client{conn: c.Conn, codec: c.Codec}
	case Join:
		r.spawn(c.PlayerID, c.Username)
	case Respawn:
		name := c.Username
		if name == "" {
			name = r.usernames[c.PlayerID]
		}
		r.spawn(c.PlayerID, name)
	case Input:
		if _, ok := r.world.Players[c.PlayerID]; !ok {
			return
		}
		r.latestInputs[c.PlayerID] = c.Input
	case SpeedBoost:
		r.speedBoost(c.PlayerID)
	case Leave:
		r.handleLeave(c.PlayerID)
	}
	r.players.Store(int64(len(r.world.Players)))
}

func (r *Room) spawn(id, username string) {
	if _, ok := r.clients[id]; !ok {
		return
	}
	p, err := r.world.Respawn(id, username, r.now())
	if err != nil {
		log.Printf("room %s: spawn %s: %v", r.Code, id, err)
		return
	}
	r.latestInputs[id] = game.Input{}
	r.usernames[id] = p.Username

	r.sendTo(id, protocol.MsgInit, r.buildInit(p))
	if _, ok := r.clients[id]; !ok {
		return
	}
	r.broadcast(protocol.MsgPlayerJoined, protocol.PlayerJoined{Player: playerSnapshot(p)}, id)
}

func (r *Room) speedBoost(id string) {
	res, err := r.world.SpeedBoost(id, r.now())
	if err != nil {
		if !errors.Is(err, game.ErrUnknownPlayer) {
			r.sendTo(id, protocol.MsgSpeedBoostError, protocol.SpeedBoostError{Message: err.Error()})
		}
		return
	}
	r.sendTo(id, protocol.MsgSpeedBoostUsed, protocol.SpeedBoostUsed{
		CooldownMs: res.CooldownMs,
		UsedAt:     res.UsedAt.UnixMilli(),
	})
	r.broadcast(protocol.MsgPlayerBoosted, protocol.PlayerBoosted{PlayerID: id, X: res.X, Y: res.Y}, id)
}

func (r *Room) handleLeave(playerID string) {
	c, ok := r.clients[playerID]
	delete(r.clients, playerID)
	delete(r.latestInputs, playerID)
	delete(r.usernames, playerID)
	if ok {
		_ = c.conn.Close()
	}
	if r.world.Remove(playerID) {
		r.broadcast(protocol.MsgPlayerLeft, protocol.PlayerLeft{ID: playerID}, "")
	}
}

func (r *Room) closeAll() {
	for id, c := range r.clients {
		_ = c.conn.Close()
		delete(r.clients, id)
	}
}

func (r *Room) sendTo(id, t string, payload any) {
	c, ok := r.clients[id]
	if !ok {
		return
	}
	b, err := c.codec.Encode(t, payload)
	if err != nil {
		log.Printf("room %s: encode %s: %v", r.Code, t, err)
		return
	}
	if err := c.conn.Send(b); err != nil {
		r.handleLeave(id)
	}
}

// broadcast sends to every client except the given id. Each payload is encoded
// at most once per codec; a codec that cannot encode it is skipped. Clients
// whose send fails are dropped afterwards.
func (r *Room) broadcast(t string, payload any, except string) {
	var frames [2][]byte
	var unencodable [2]bool
	var failed []string
	for id, c := range r.clients {
		if id == except || unencodable[c.codec] {
			continue
		}
		b := frames[c.codec]
		if b == nil {
			var err error
			b, err = c.codec.Encode(t, payload)
			if err != nil {
				log.Printf("room %s: encode %s as %s: %v", r.Code, t, c.codec, err)
				unencodable[c.codec] = true
				continue
			}
			frames[c.codec] = b
		}
		if err := c.conn.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		r.handleLeave(id)
	}
}
