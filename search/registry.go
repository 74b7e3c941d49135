package search

// Entry describes one selectable variant
type Entry struct {
	ID          string
	Name        string
	Description string
	New         Factory
	// Optimal is true when the variant guarantees a shortest path on uniform-cost grids
	Optimal bool
}

var entries = []Entry{
	{
		ID:          "astar",
		Name:        "A* (Shortest Path)",
		Description: "A* balances actual cost with a heuristic to find optimal routes quickly on grids.",
		New:         NewAStar,
		Optimal:     true,
	},
	{
		ID:          "greedy",
		Name:        "Greedy Best-First",
		Description: "Greedy Best-First expands nodes closest to the goal. Fast but not guaranteed to be optimal.",
		New:         NewGreedy,
	},
	{
		ID:          "dijkstra",
		Name:        "Dijkstra's",
		Description: "Dijkstra's algorithm explores the lowest-cost frontier first and always finds the shortest path.",
		New:         NewDijkstra,
		Optimal:     true,
	},
	{
		ID:          "bfs",
		Name:        "Breadth-First Search",
		Description: "BFS explores all nodes at the current depth before moving deeper. Optimal on unweighted grids.",
		New:         NewBFS,
		Optimal:     true,
	},
	{
		ID:          "bidirectionalbfs",
		Name:        "Bidirectional BFS",
		Description: "Bidirectional BFS searches simultaneously from start and goal, meeting in the middle for speed.",
		New:         NewBidirectionalBFS,
		Optimal:     true,
	},
	{
		ID:          "dfs",
		Name:        "Depth-First Search",
		Description: "DFS dives deep along one branch before backtracking. Fast but does not guarantee shortest paths.",
		New:         NewDFS,
	},
	{
		ID:          "random",
		Name:        "Random Walk",
		Description: "Random Walk moves randomly until it reaches the goal or gets stuck. Mostly for demonstration.",
		New:         NewRandomWalk,
	},
}

// DefaultID is the variant selected when none is requested
const DefaultID = "astar"

// Entries returns the registry in display order
func Entries() []Entry {
	return append([]Entry(nil), entries...)
}

// IDs returns the variant identifiers in display order
func IDs() []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}

// Lookup finds a variant by identifier
func Lookup(id string) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
