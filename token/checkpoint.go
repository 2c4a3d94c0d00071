package token

import (
	"fmt"
	"slices"
)

// A Checkpoint records a cursor position that the cursor can later be rewound
// to.  It is a plain value: copying it does not create a new checkpoint, and
// releasing any copy releases them all.
//
// The zero Checkpoint is never live.
type Checkpoint struct {
	set *checkpointSet
	id  uint64
	pos int
}

// Position is the logical position the checkpoint was taken at.
func (cp Checkpoint) Position() int {
	return cp.pos
}

func (cp Checkpoint) String() string {
	return fmt.Sprintf("Checkpoint(%d@%d)", cp.id, cp.pos)
}

// checkpointSet tracks the live checkpoints of one cursor.  The positions of
// live checkpoints are kept sorted (with repeats) so the oldest one, which
// bounds what the window must retain, is always positions[0].
type checkpointSet struct {
	live      map[uint64]int
	positions []int
	lastID    uint64
}

func (s *checkpointSet) add(pos int) Checkpoint {
	if s.live == nil {
		s.live = make(map[uint64]int)
	}
	s.lastID++
	s.live[s.lastID] = pos
	n := len(s.positions)
	if n == 0 || s.positions[n-1] <= pos {
		s.positions = append(s.positions, pos)
	} else {
		i, _ := slices.BinarySearch(s.positions, pos)
		s.positions = slices.Insert(s.positions, i, pos)
	}
	return Checkpoint{set: s, id: s.lastID, pos: pos}
}

func (s *checkpointSet) isLive(cp Checkpoint) bool {
	if cp.set != s {
		return false
	}
	pos, ok := s.live[cp.id]
	return ok && pos == cp.pos
}

func (s *checkpointSet) remove(cp Checkpoint) bool {
	if !s.isLive(cp) {
		return false
	}
	delete(s.live, cp.id)
	i, found := slices.BinarySearch(s.positions, cp.pos)
	if !found {
		panic(fmt.Sprintf("logic error: missing position for live %s", cp))
	}
	s.positions = slices.Delete(s.positions, i, i+1)
	return true
}

// oldest returns the lowest live checkpoint position.
func (s *checkpointSet) oldest() (int, bool) {
	if len(s.positions) == 0 {
		return 0, false
	}
	return s.positions[0], true
}

func (s *checkpointSet) len() int {
	return len(s.positions)
}
