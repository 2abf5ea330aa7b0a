package network

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Satisfaction108/Burrs-io-sub000/game"
	"github.com/Satisfaction108/Burrs-io-sub000/protocol"
	"github.com/Satisfaction108/Burrs-io-sub000/room"
)

const (
	readTimeout  = 60 * time.Second
	pingInterval = 25 * time.Second
	writeTimeout = 10 * time.Second
	readLimit    = 64 << 10
	sendBuffer   = 256

	DefaultRoom = "MAIN"
)

// Server upgrades HTTP requests to websocket connections and routes their
// messages to arenas.
type Server struct {
	rooms       *room.Manager
	defaultRoom string
	origins     map[string]struct{}
	upgrader    websocket.Upgrader
}

func NewServer(rooms *room.Manager, defaultRoom string, allowedOrigins []string) *Server {
	if defaultRoom == "" {
		defaultRoom = DefaultRoom
	}
	s := &Server{
		rooms:       rooms,
		defaultRoom: defaultRoom,
		origins:     make(map[string]struct{}, len(allowedOrigins)),
	}
	for _, o := range allowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			s.origins[o] = struct{}{}
		}
	}
	s.upgrader = websocket.Upgrader{CheckOrigin: s.checkOrigin}
	return s
}

// Routes registers the websocket and status endpoints on mux.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/ws", s.HandleWS)
	mux.HandleFunc("/status", s.HandleStatus)
	mux.HandleFunc("/rooms", s.HandleRooms)
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if _, ok := s.origins["*"]; ok {
		return true
	}
	if _, ok := s.origins[origin]; ok {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if u.Host == r.Host {
		return true
	}
	host := u.Hostname()
	if host == "localhost" || host == "127.0.0.1" {
		return true
	}
	log.Printf("network: rejected websocket origin %s", origin)
	return false
}

func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("room")))
	if code == "" {
		code = s.defaultRoom
	}
	codec := protocol.ParseCodec(r.URL.Query().Get("codec"))

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("network: upgrade:", err)
		return
	}

	c := newConn(ws, codec)
	id := uuid.NewString()
	arena, release := s.rooms.Acquire(code)
	defer release()
	if !arena.Submit(room.Connect{ID: id, Conn: c, Codec: codec}) {
		_ = c.Close()
		return
	}

	log.Printf("network: %s connected to room %s (%s frames)", id, code, codec)

	go c.writePump()
	c.readPump(func(env protocol.Envelope) {
		if cmd := command(id, env); cmd != nil {
			arena.Submit(cmd)
		}
	})
	arena.Submit(room.Leave{PlayerID: id})
	_ = c.Close()
	log.Printf("network: %s left room %s", id, code)
}

// command translates one inbound envelope into a room command. Unknown
// message types are dropped.
func command(id string, env protocol.Envelope) any {
	switch env.T {
	case protocol.MsgJoin:
		return room.Join{PlayerID: id, Username: protocol.ParseJoin(env.P).Username}
	case protocol.MsgRespawn:
		return room.Respawn{PlayerID: id, Username: protocol.ParseJoin(env.P).Username}
	case protocol.MsgInput:
		return room.Input{PlayerID: id, Input: gameInput(protocol.ParseInput(env.P))}
	case protocol.MsgSpeedBoost:
		return room.SpeedBoost{PlayerID: id}
	}
	return nil
}

func gameInput(in protocol.Input) game.Input {
	out := game.Input{Up: in.Up, Down: in.Down, Left: in.Left, Right: in.Right}
	if in.HasPointer() {
		out.Pointer = true
		out.PointerX, out.PointerY = *in.MouseX, *in.MouseY
	}
	return out
}

type statusResponse struct {
	Players int             `json:"players"`
	Rooms   []room.RoomInfo `json:"rooms"`
}

func (s *Server) HandleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{
		Players: s.rooms.PlayerCount(),
		Rooms:   s.rooms.ListRooms(),
	})
}

// HandleRooms lists arenas on GET and hands out a fresh room code on POST.
func (s *Server) HandleRooms(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.rooms.ListRooms())
	case http.MethodPost:
		writeJSON(w, http.StatusCreated, map[string]string{"code": s.rooms.CreateRoom()})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("network: write response:", err)
	}
}
