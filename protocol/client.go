package protocol

import (
	"encoding/json"
	"math"
	"strings"
)

// input structs coming in from the client. Anything malformed is coerced to
// a safe default instead of being rejected.

// Join is the payload of both join and respawn. A blank username on respawn
// keeps the previous one.
type Join struct {
	Username string `json:"username"`
}

type Input struct {
	Up    bool `json:"up"`
	Down  bool `json:"down"`
	Left  bool `json:"left"`
	Right bool `json:"right"`

	// Cursor vector relative to the spike; both set or neither.
	MouseX *float64 `json:"mouseX,omitempty"`
	MouseY *float64 `json:"mouseY,omitempty"`
}

func (in Input) HasPointer() bool {
	return in.MouseX != nil && in.MouseY != nil
}

// ParseJoin reads a join or respawn payload. A missing or non-string username
// yields "".
func ParseJoin(raw json.RawMessage) Join {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Join{}
	}
	name, _ := fields["username"].(string)
	return Join{Username: name}
}

// ParseInput decodes an input payload with loose typing: any JSON value is
// accepted for the key flags and read by truthiness.
func ParseInput(raw json.RawMessage) Input {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Input{}
	}
	in := Input{
		Up:    truthy(fields["up"]),
		Down:  truthy(fields["down"]),
		Left:  truthy(fields["left"]),
		Right: truthy(fields["right"]),
	}
	mx, okX := finite(fields["mouseX"])
	my, okY := finite(fields["mouseY"])
	if okX && okY {
		in.MouseX, in.MouseY = &mx, &my
	}
	return in
}

func truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case string:
		s := strings.TrimSpace(strings.ToLower(x))
		return s != "" && s != "false" && s != "0"
	default:
		return false
	}
}

func finite(v any) (float64, bool) {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
