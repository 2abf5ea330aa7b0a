package room

import (
	"testing"
	"time"
)

func TestManagerAcquireSharesRoomPerCode(t *testing.T) {
	m := NewManager(testConfig())
	defer m.Shutdown()

	r1, rel1 := m.Acquire("MAIN")
	r2, rel2 := m.Acquire("MAIN")
	if r1 == nil || r1 != r2 {
		t.Fatalf("expected the same room for the same code")
	}
	other, rel3 := m.Acquire("ABC123")
	defer rel3()
	if other == r1 {
		t.Fatalf("different codes must not share a room")
	}

	rel1()
	rel1() // idempotent
	if rooms := m.ListRooms(); len(rooms) != 2 {
		t.Fatalf("room removed while still referenced: %+v", rooms)
	}
	rel2()
	rooms := m.ListRooms()
	if len(rooms) != 1 || rooms[0].Code != "ABC123" {
		t.Fatalf("released room still listed: %+v", rooms)
	}
	if r1.Submit(Leave{PlayerID: "x"}) {
		t.Fatalf("stopped room should refuse commands")
	}
}

func TestManagerAcquireEmptyCode(t *testing.T) {
	m := NewManager(testConfig())
	r, release := m.Acquire("")
	release()
	if r != nil {
		t.Fatalf("empty code should not create a room")
	}
}

func TestManagerPlayerCount(t *testing.T) {
	m := NewManager(testConfig())
	defer m.Shutdown()

	r, release := m.Acquire("MAIN")
	defer release()
	fc := newFakeConn()
	r.Submit(Connect{ID: "c1", Conn: fc})
	r.Submit(Join{PlayerID: "c1", Username: "a"})
	r.Submit(Connect{ID: "c2", Conn: newFakeConn()})
	r.Submit(Join{PlayerID: "c2", Username: "b"})

	deadline := time.Now().Add(time.Second)
	for m.PlayerCount() != 2 {
		if time.Now().After(deadline) {
			t.Fatalf("PlayerCount = %d, want 2", m.PlayerCount())
		}
		time.Sleep(10 * time.Millisecond)
	}
	if rooms := m.ListRooms(); rooms[0].Players != 2 || rooms[0].Connections != 1 {
		t.Fatalf("unexpected room info %+v", rooms[0])
	}
}

func TestCreateRoomCode(t *testing.T) {
	m := NewManager(testConfig())
	code := m.CreateRoom()
	if len(code) != 6 {
		t.Fatalf("code %q should have 6 chars", code)
	}
	for _, c := range code {
		found := false
		for _, allowed := range codeChars {
			if c == allowed {
				found = true
			}
		}
		if !found {
			t.Fatalf("code %q has illegal char %q", code, c)
		}
	}
}
