package gridgraph

import "github.com/sncxyz/grid/vector"

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Options contains tunable parameters for grid analysis.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns Options with Conn=Conn4.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// Precomputed neighbour offsets, clockwise from North.
var (
	offsets4 = []vector.Vector{vector.North, vector.East, vector.South, vector.West}
	offsets8 = []vector.Vector{
		vector.North, vector.North.Add(vector.East),
		vector.East, vector.South.Add(vector.East),
		vector.South, vector.South.Add(vector.West),
		vector.West, vector.North.Add(vector.West),
	}
)

// Offsets returns the neighbour offsets for c. The slice must not be modified.
func (c Connectivity) Offsets() []vector.Vector {
	if c == Conn8 {
		return offsets8
	}

	return offsets4
}
