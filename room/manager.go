package room

import (
	"crypto/rand"
	"math/big"
	"sort"
	"sync"

	"github.com/Satisfaction108/Burrs-io-sub000/game"
)

// RoomInfo is returned by the API for the server list.
type RoomInfo struct {
	Code        string `json:"code"`
	Players     int    `json:"players"`
	Connections int    `json:"connections"`
}

type entry struct {
	room  *Room
	conns int
}

// Manager holds multiple arenas by code. An arena is created on the first
// connection and stopped when its last connection is released.
type Manager struct {
	mu    sync.RWMutex
	cfg   game.Config
	rooms map[string]*entry
}

func NewManager(cfg game.Config) *Manager {
	return &Manager{
		cfg:   cfg,
		rooms: make(map[string]*entry),
	}
}

// Acquire returns the room for the given code, creating it if needed, and
// counts one more connection against it. Callers must call the returned
// release func exactly once when the connection goes away.
func (m *Manager) Acquire(code string) (*Room, func()) {
	if code == "" {
		return nil, func() {}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.rooms[code]
	if !ok {
		e = &entry{room: m.startRoom(code)}
		m.rooms[code] = e
	}
	e.conns++

	var once sync.Once
	return e.room, func() {
		once.Do(func() { m.release(code, e) })
	}
}

func (m *Manager) startRoom(code string) *Room {
	r := New(m.cfg)
	r.Code = code
	go r.Run()
	return r
}

func (m *Manager) release(code string, e *entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.conns--
	if e.conns > 0 {
		return
	}
	e.room.Stop()
	if cur, ok := m.rooms[code]; ok && cur == e {
		delete(m.rooms, code)
	}
}

const codeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CreateRoom generates a 6-char code no running arena uses. The arena itself
// starts when the first connection acquires the code.
func (m *Manager) CreateRoom() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for {
		code := generateCode(6)
		if _, exists := m.rooms[code]; exists {
			continue
		}
		return code
	}
}

// ListRooms returns all active rooms sorted by code.
func (m *Manager) ListRooms() []RoomInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]RoomInfo, 0, len(m.rooms))
	for code, e := range m.rooms {
		out = append(out, RoomInfo{Code: code, Players: e.room.NumPlayers(), Connections: e.conns})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// PlayerCount is the number of spikes across every arena of the process.
func (m *Manager) PlayerCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, e := range m.rooms {
		n += e.room.NumPlayers()
	}
	return n
}

// Shutdown stops every room.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for code, e := range m.rooms {
		e.room.Stop()
		delete(m.rooms, code)
	}
}

func generateCode(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(codeChars)))
	for i := range b {
		idx, _ := rand.Int(rand.Reader, max)
		b[i] = codeChars[idx.Int64()]
	}
	return string(b)
}
