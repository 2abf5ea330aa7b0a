package protocol

import (
	"encoding/json"
	"testing"
)

func TestParseInputCoercesFlags(t *testing.T) {
	in := ParseInput(json.RawMessage(`{"up":1,"down":"yes","left":"false","right":null}`))
	if !in.Up || !in.Down || in.Left || in.Right {
		t.Fatalf("unexpected coercion %+v", in)
	}
	if in.HasPointer() {
		t.Fatalf("no pointer expected")
	}
}

func TestParseInputPointer(t *testing.T) {
	in := ParseInput(json.RawMessage(`{"mouseX":120.5,"mouseY":-40}`))
	if !in.HasPointer() || *in.MouseX != 120.5 || *in.MouseY != -40 {
		t.Fatalf("pointer not parsed: %+v", in)
	}
	half := ParseInput(json.RawMessage(`{"mouseX":3,"mouseY":"up"}`))
	if half.HasPointer() {
		t.Fatalf("partial pointer should be dropped")
	}
}

func TestParseInputGarbage(t *testing.T) {
	for _, raw := range []string{``, `null`, `[1,2]`, `"up"`, `{`} {
		if in := ParseInput(json.RawMessage(raw)); in != (Input{}) {
			t.Fatalf("ParseInput(%q) = %+v, want zero", raw, in)
		}
	}
}

func TestParseJoin(t *testing.T) {
	if got := ParseJoin(json.RawMessage(`{"username":"spiky"}`)); got.Username != "spiky" {
		t.Fatalf("got %q", got.Username)
	}
	for _, raw := range []string{`{"username":42}`, `{}`, ``, `nope`} {
		if got := ParseJoin(json.RawMessage(raw)); got.Username != "" {
			t.Fatalf("ParseJoin(%q) = %q, want empty", raw, got.Username)
		}
	}
}
