package plan

import (
	"testing"

	"cattalk-v0/internal/pet"
)

func TestNeedOfPrecedence(t *testing.T) {
	// everything urgent at once: food wins
	s := pet.State{Hunger: 80, Energy: 10, Fun: 10, Affection: 10, Trust: 60}
	if got := NeedOf(s); got != NeedFood {
		t.Fatalf("food should outrank all other needs, got %v", got)
	}
	s.Hunger = 0
	if got := NeedOf(s); got != NeedRest {
		t.Fatalf("rest should outrank play, got %v", got)
	}
	s.Energy = 100
	if got := NeedOf(s); got != NeedPlay {
		t.Fatalf("play should outrank affection, got %v", got)
	}
	s.Fun = 100
	if got := NeedOf(s); got != NeedAffection {
		t.Fatalf("expected affection, got %v", got)
	}
}

func TestNeedAffectionRequiresTrust(t *testing.T) {
	s := pet.State{Hunger: 0, Energy: 100, Fun: 100, Affection: 10, Trust: 49}
	if got := NeedOf(s); got != NeedNone {
		t.Fatalf("low trust should suppress the affection need, got %v", got)
	}
	s.Trust = 50
	if got := NeedOf(s); got != NeedAffection {
		t.Fatalf("trust 50 should allow the affection need, got %v", got)
	}
}

func TestNeedBoundaries(t *testing.T) {
	if NeedOf(pet.State{Hunger: 70, Energy: 100, Fun: 100}) != NeedFood {
		t.Fatal("hunger 70 should trigger food")
	}
	if NeedOf(pet.State{Hunger: 69.9, Energy: 30, Fun: 100}) != NeedRest {
		t.Fatal("energy 30 should trigger rest")
	}
	if NeedOf(pet.State{Energy: 31, Fun: 30}) != NeedPlay {
		t.Fatal("fun 30 should trigger play")
	}
	if NeedOf(pet.State{Energy: 31, Fun: 31, Affection: 50}) != NeedNone {
		t.Fatal("no threshold crossed should yield none")
	}
}
