package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
	"unicode"
)

var ErrRespawnWhileDying = errors.New("cannot respawn while dying")

var reservedNames = map[string]struct{}{
	"admin":     {},
	"moderator": {},
	"server":    {},
	"system":    {},
	"burrs":     {},
}

// SanitizeUsername strips control and markup characters, clamps the length
// and replaces blank or reserved names with a generated one.
func SanitizeUsername(name string, rng *rand.Rand) string {
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || r == '<' || r == '>' {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)
	if runes := []rune(name); len(runes) > UsernameMaxLen {
		name = strings.TrimSpace(string(runes[:UsernameMaxLen]))
	}
	if _, reserved := reservedNames[strings.ToLower(name)]; name == "" || reserved {
		return fmt.Sprintf("Spike%04d", rng.IntN(10000))
	}
	return name
}

// Join inserts a fresh player for the connection id. An existing entry for the
// same id is replaced; there is never more than one player per connection.
func (w *World) Join(id, username string, now time.Time) *Player {
	w.seedOrbs()
	x, y := w.randomPoint(w.cfg.SpawnPadding)
	p := newPlayer(id, SanitizeUsername(username, w.rng), x, y, now)
	w.Players[id] = p
	return p
}

// Respawn discards the current entity of the connection and builds a new one.
// A blank username keeps the previous life's name.
func (w *World) Respawn(id, username string, now time.Time) (*Player, error) {
	if old, ok := w.Players[id]; ok {
		if old.IsDying {
			return nil, ErrRespawnWhileDying
		}
		if strings.TrimSpace(username) == "" {
			username = old.Username
		}
	}
	return w.Join(id, username, now), nil
}

func (w *World) Remove(id string) bool {
	if _, ok := w.Players[id]; !ok {
		return false
	}
	delete(w.Players, id)
	return true
}
