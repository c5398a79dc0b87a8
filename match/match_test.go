package match

import (
	"testing"

	"go-tafl"
	"go-tafl/rules"
)

// S6: Online turn policing. A click from the session bound to the
// role that is not current_turn is rejected with NotYourTurn, no
// broadcast occurs, and current_turn is unchanged.
func TestOnlineTurnPolicing(t *testing.T) {
	m := New(12345678, "Hnefatafl", rules.HnefataflVariant, tafl.Online, 100, "A", tafl.Attacker)
	if _, err := m.Join("B"); err != nil {
		t.Fatalf("join should succeed: %v", err)
	}

	subB := m.Subscribe("B")

	err := m.Click("B", 0, 3)
	if err == nil {
		t.Fatalf("expected NotYourTurn error")
	}

	select {
	case <-subB:
		t.Fatalf("no broadcast should occur on a wrong-turn click")
	default:
	}

	if m.views[tafl.Attacker].CurrentTurn != tafl.Attacker {
		t.Fatalf("current_turn must remain unchanged")
	}
}

// Testable property 6: rendering projected to the inactive role never
// contains the selection overlay unless a move actually occurred.
func TestOnlineOverlayNotLeakedOnSelection(t *testing.T) {
	m := New(12345678, "Hnefatafl", rules.HnefataflVariant, tafl.Online, 100, "A", tafl.Attacker)
	if _, err := m.Join("B"); err != nil {
		t.Fatalf("join should succeed: %v", err)
	}

	subA := m.Subscribe("A")
	subB := m.Subscribe("B")

	// Attacker (A) selects a piece: a selection-only transition.
	if err := m.Click("A", 0, 3); err != nil {
		t.Fatalf("selection should succeed: %v", err)
	}

	activeSnap := <-subA
	if !activeSnap.Board.At(rules.Coord{Row: 0, Col: 3}).IsSelected {
		t.Fatalf("active view should show the selection")
	}

	inactiveSnap := <-subB
	for r := 0; r < inactiveSnap.Board.Size; r++ {
		for c := 0; c < inactiveSnap.Board.Size; c++ {
			cell := inactiveSnap.Board.At(rules.Coord{Row: r, Col: c})
			if cell.IsSelected || cell.IsPossibleMove {
				t.Fatalf("inactive view must not see overlay on a selection-only click, found at (%d,%d)", r, c)
			}
		}
	}
}

// When a click completes a move, both subscribers receive the
// post-move rendering.
func TestOnlineMoveBroadcastsToBothSides(t *testing.T) {
	m := New(12345678, "Hnefatafl", rules.HnefataflVariant, tafl.Online, 100, "A", tafl.Attacker)
	if _, err := m.Join("B"); err != nil {
		t.Fatalf("join should succeed: %v", err)
	}
	subA := m.Subscribe("A")
	subB := m.Subscribe("B")

	if err := m.Click("A", 0, 3); err != nil {
		t.Fatalf("select: %v", err)
	}
	<-subA
	<-subB

	if err := m.Click("A", 3, 3); err != nil {
		t.Fatalf("move should succeed: %v", err)
	}

	snapA := <-subA
	snapB := <-subB
	if snapA.CurrentTurn != tafl.Defender || snapB.CurrentTurn != tafl.Defender {
		t.Fatalf("both views should observe the flipped turn")
	}
}

func TestLocalModeBroadcastsIdenticalRenderToEverySubscriber(t *testing.T) {
	m := New(12345678, "Tablut", rules.TablutVariant, tafl.Local, 100, "A", tafl.Attacker)
	subA := m.Subscribe("A")
	subB := m.Subscribe("B")

	if err := m.Click("solo", 0, 3); err != nil {
		t.Fatalf("local mode permits clicks from any session: %v", err)
	}

	snapA := <-subA
	snapB := <-subB
	if !snapA.Board.Equal(snapB.Board) {
		t.Fatalf("local mode must broadcast an identical render to every subscriber")
	}
}

func TestJoinEnforcesMatchFull(t *testing.T) {
	m := New(12345678, "Brandubh", rules.BrandubhVariant, tafl.Online, 100, "A", tafl.Attacker)
	if _, err := m.Join("B"); err != nil {
		t.Fatalf("second join should succeed: %v", err)
	}
	if _, err := m.Join("C"); err == nil {
		t.Fatalf("third join should be rejected")
	}
}
