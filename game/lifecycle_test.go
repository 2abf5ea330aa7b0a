package game

import "testing"

func TestEatingAnimationLastsAboutThreeTenthsOfASecond(t *testing.T) {
	w := emptyWorld()
	p := addPlayer(w, "a", 500, 500)
	p.startEating()

	for i := 1; i <= 17; i++ {
		Step(w, nil, tickAt(i))
	}
	if !p.IsEating || p.EatingProgress <= 0 {
		t.Fatalf("expected eating still in progress, got eating=%v progress=%v", p.IsEating, p.EatingProgress)
	}
	for i := 18; i <= 20; i++ {
		Step(w, nil, tickAt(i))
	}
	if p.IsEating || p.EatingProgress != 0 {
		t.Fatalf("expected eating finished, got eating=%v progress=%v", p.IsEating, p.EatingProgress)
	}
}

func TestAngryAnimationRestartsOnNewHit(t *testing.T) {
	w := emptyWorld()
	p := addPlayer(w, "a", 500, 500)
	p.startAngry()

	for i := 1; i <= 40; i++ {
		Step(w, nil, tickAt(i))
	}
	p.startAngry()
	for i := 41; i <= 80; i++ {
		Step(w, nil, tickAt(i))
	}
	if !p.IsAngry {
		t.Fatalf("restarted angry animation ended early (progress %v)", p.AngryProgress)
	}
	for i := 81; i <= 105; i++ {
		Step(w, nil, tickAt(i))
	}
	if p.IsAngry {
		t.Fatalf("angry animation should end about a second after the last hit")
	}
}

func TestDyingProgressClampsAtOne(t *testing.T) {
	w := emptyWorld()
	p := addPlayer(w, "a", 500, 500)
	p.IsDying = true

	for i := 1; i <= 45; i++ {
		Step(w, nil, tickAt(i))
	}
	if _, ok := w.Players["a"]; !ok {
		t.Fatalf("player removed before the death animation finished")
	}
	if p.DyingProgress <= 0 || p.DyingProgress >= 1 {
		t.Fatalf("dying progress = %v, want within (0,1)", p.DyingProgress)
	}
}
