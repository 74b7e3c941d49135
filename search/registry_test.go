package search

import (
	"testing"

	"github.com/lixenwraith/pathstep/grid"
)

func TestRegistryOrder(t *testing.T) {
	want := []string{"astar", "greedy", "dijkstra", "bfs", "bidirectionalbfs", "dfs", "random"}
	got := IDs()
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestRegistryLookup(t *testing.T) {
	for _, e := range Entries() {
		found, ok := Lookup(e.ID)
		if !ok {
			t.Errorf("Lookup(%q) failed", e.ID)
			continue
		}
		if found.Name == "" || found.Description == "" || found.New == nil {
			t.Errorf("Entry %q is incomplete: %+v", e.ID, found)
		}
	}

	if _, ok := Lookup("teleport"); ok {
		t.Error("Expected unknown id lookup to fail")
	}
	if _, ok := Lookup(DefaultID); !ok {
		t.Errorf("Default id %q not registered", DefaultID)
	}
}

func TestRegistryEntriesIsCopy(t *testing.T) {
	list := Entries()
	list[0].ID = "mutated"
	if IDs()[0] == "mutated" {
		t.Error("Entries exposed the backing table")
	}
}

func TestRegistryFactoriesConform(t *testing.T) {
	for _, e := range Entries() {
		g := grid.New(8, 5)
		alg := e.New(g, WithSeed(11))
		alg.Init()
		out := runToEnd(t, alg, g.Width*g.Height+1)
		if e.ID != "random" && out.last.Status != Found {
			t.Errorf("%s: expected found on an open grid, got %v", e.ID, out.last.Status)
		}
	}
}
