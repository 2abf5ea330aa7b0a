package game

import (
	"reflect"
	"testing"
	"time"
)

func killOne(w *World, victim *Player) PlayerDied {
	return w.kill([]*Player{victim}, t0)[0].(PlayerDied)
}

func TestSoloKillGivesThreeQuartersOfScore(t *testing.T) {
	w := emptyWorld()
	killer := addPlayer(w, "killer", 1000, 1000)
	victim := addPlayer(w, "victim", 1050, 1000)
	victim.Score = 1001
	victim.MaxHP = MaxHP(victim.Score)
	victim.CurrentHP = 1
	victim.recomputeHealth()
	killer.VX, killer.TargetVX = 6, 6

	events := Step(w, map[string]Input{"killer": {Right: true}}, t0.Add(time.Minute))

	var died *PlayerDied
	for _, ev := range events {
		if d, ok := ev.(PlayerDied); ok {
			died = &d
		}
	}
	if died == nil {
		t.Fatalf("expected playerDied event, got %+v", events)
	}
	if died.KilledBy != "killer" || len(died.Assists) != 0 {
		t.Fatalf("killedBy=%q assists=%v", died.KilledBy, died.Assists)
	}
	if killer.Score != 750 || died.KillerScore != 750 {
		t.Fatalf("killer score = %d (event %d), want 750", killer.Score, died.KillerScore)
	}
	if killer.Kills != 1 {
		t.Fatalf("killer kills = %d, want 1", killer.Kills)
	}
	if died.Stats.Score != 1001 || victim.Score != 1001 {
		t.Fatalf("victim score in event = %d (player %d), want 1001", died.Stats.Score, victim.Score)
	}
	if died.Stats.TimeSurvivedMs != time.Minute.Milliseconds() {
		t.Fatalf("time survived = %d", died.Stats.TimeSurvivedMs)
	}
	if !victim.IsDying || victim.VX != 0 || victim.VY != 0 {
		t.Fatalf("victim should be dying and frozen: dying=%v v=(%f,%f)", victim.IsDying, victim.VX, victim.VY)
	}
}

func TestAssistedKillSplitsEvenly(t *testing.T) {
	w := emptyWorld()
	victim := addPlayer(w, "v", 1000, 1000)
	a := addPlayer(w, "a", 2000, 2000)
	b := addPlayer(w, "b", 2500, 2500)
	c := addPlayer(w, "c", 3000, 3000)
	victim.Score = 1000
	victim.DamageDealt = map[string]float64{"a": 3, "b": 7, "c": 1}

	died := killOne(w, victim)

	// floor(0.75*1000)=750, /3 = 250 each
	for _, p := range []*Player{a, b, c} {
		if p.Score != 250 {
			t.Fatalf("%s score = %d, want 250", p.ID, p.Score)
		}
	}
	if died.KilledBy != "b" || b.Kills != 1 || a.Kills != 0 || c.Kills != 0 {
		t.Fatalf("top contributor should get the kill: killedBy=%q kills a=%d b=%d c=%d", died.KilledBy, a.Kills, b.Kills, c.Kills)
	}
	if !reflect.DeepEqual(died.Assists, []string{"a", "c"}) {
		t.Fatalf("assists = %v, want [a c]", died.Assists)
	}
	if died.KillerScore != 250 {
		t.Fatalf("killer score = %d, want 250", died.KillerScore)
	}
}

func TestShareFloorsPerContributor(t *testing.T) {
	w := emptyWorld()
	victim := addPlayer(w, "v", 1000, 1000)
	a := addPlayer(w, "a", 2000, 2000)
	b := addPlayer(w, "b", 2500, 2500)
	victim.Score = 7
	victim.DamageDealt = map[string]float64{"a": 2, "b": 2}

	died := killOne(w, victim)
	// floor(5.25)=5, floor(5/2)=2
	if a.Score != 2 || b.Score != 2 {
		t.Fatalf("shares = %d/%d, want 2/2", a.Score, b.Score)
	}
	if died.KilledBy != "a" {
		t.Fatalf("ties break by id, killedBy=%q", died.KilledBy)
	}
}

func TestDepartedContributorsAreSkipped(t *testing.T) {
	w := emptyWorld()
	victim := addPlayer(w, "v", 1000, 1000)
	a := addPlayer(w, "a", 2000, 2000)
	victim.Score = 400
	victim.DamageDealt = map[string]float64{"a": 1, "gone": 9}

	died := killOne(w, victim)
	if died.KilledBy != "a" || a.Score != 300 || len(died.Assists) != 0 {
		t.Fatalf("killedBy=%q score=%d assists=%v", died.KilledBy, a.Score, died.Assists)
	}
}

func TestDeathWithoutContributors(t *testing.T) {
	w := emptyWorld()
	victim := addPlayer(w, "v", 1000, 1000)
	victim.Score = 400

	died := killOne(w, victim)
	if died.KilledBy != "" || died.Assists == nil || len(died.Assists) != 0 {
		t.Fatalf("unexpected attribution: %+v", died)
	}
}

func TestMutualKillPaysNobody(t *testing.T) {
	w := emptyWorld()
	a := addPlayer(w, "a", 1000, 1000)
	b := addPlayer(w, "b", 1050, 1000)
	for _, p := range []*Player{a, b} {
		p.Score = 400
		p.MaxHP = MaxHP(p.Score)
		p.CurrentHP = 1
		p.recomputeHealth()
	}
	a.VX, a.TargetVX = 6, 6
	b.VX, b.TargetVX = -6, -6

	events := Step(w, map[string]Input{"a": {Right: true}, "b": {Left: true}}, t0.Add(time.Minute))

	deaths := map[string]PlayerDied{}
	for _, ev := range events {
		if d, ok := ev.(PlayerDied); ok {
			deaths[d.PlayerID] = d
		}
	}
	if len(deaths) != 2 {
		t.Fatalf("expected both spikes to die, got %+v", events)
	}
	for _, p := range []*Player{a, b} {
		d := deaths[p.ID]
		if d.Stats.Score != 400 {
			t.Fatalf("%s death score = %d, want 400", p.ID, d.Stats.Score)
		}
		if d.KilledBy != "" || len(d.Assists) != 0 {
			t.Fatalf("%s should have no living killer: killedBy=%q assists=%v", p.ID, d.KilledBy, d.Assists)
		}
		if !p.IsDying || p.Score != 400 || p.Kills != 0 {
			t.Fatalf("%s ended dying=%v score=%d kills=%d", p.ID, p.IsDying, p.Score, p.Kills)
		}
	}
}

func TestDyingContributorsAreSkipped(t *testing.T) {
	w := emptyWorld()
	victim := addPlayer(w, "v", 1000, 1000)
	a := addPlayer(w, "a", 2000, 2000)
	ghost := addPlayer(w, "ghost", 2500, 2500)
	ghost.IsDying = true
	victim.Score = 400
	victim.DamageDealt = map[string]float64{"a": 1, "ghost": 9}

	died := killOne(w, victim)
	if died.KilledBy != "a" || a.Score != 300 || ghost.Score != 0 || ghost.Kills != 0 {
		t.Fatalf("killedBy=%q a=%d ghost=%d ghost kills=%d", died.KilledBy, a.Score, ghost.Score, ghost.Kills)
	}
}
