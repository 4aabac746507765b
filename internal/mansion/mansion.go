// Package mansion holds the fixed map of the house: a binary tree of rooms where every
// room can be reached from the entrance along exactly one path.
package mansion

import (
	"log/slog"
	"strings"

	"github.com/myrjola/detectivequest/internal/errors"
)

var (
	ErrInvalidMap       = errors.NewSentinel("invalid mansion map")
	ErrNoSuchPath       = errors.NewSentinel("no such path")
	ErrUnknownDirection = errors.NewSentinel("unknown direction")
)

// Direction is one of the two ways out of a room.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Blueprint describes a room and the rooms behind it. Build turns it into the playable map.
type Blueprint struct {
	Name  string
	Clue  string
	Left  *Blueprint
	Right *Blueprint
}

// Room is a node of the mansion map. The parent room owns its children.
type Room struct {
	name  string
	clue  string
	left  *Room
	right *Room
}

// Exits tells which directions lead somewhere from a room.
type Exits struct {
	Left  bool
	Right bool
}

// None reports whether the room is a dead end.
func (e Exits) None() bool {
	return !e.Left && !e.Right
}

// Has reports whether there is a path in direction d.
func (e Exits) Has(d Direction) bool {
	switch d {
	case Left:
		return e.Left
	case Right:
		return e.Right
	default:
		return false
	}
}

// Build creates the room tree described by bp.
//
// The blueprint must be a proper tree: every room needs a name and no blueprint node may
// appear twice, which also rules out cycles. Failures wrap ErrInvalidMap.
func Build(bp *Blueprint) (*Room, error) {
	if bp == nil {
		return nil, errors.Wrap(ErrInvalidMap, "missing entrance")
	}
	seen := make(map[*Blueprint]struct{})
	return build(bp, seen)
}

func build(bp *Blueprint, seen map[*Blueprint]struct{}) (*Room, error) {
	if _, ok := seen[bp]; ok {
		return nil, errors.Wrap(ErrInvalidMap, "room reachable twice", slog.String("room", bp.Name))
	}
	seen[bp] = struct{}{}

	name := strings.TrimSpace(bp.Name)
	if name == "" {
		return nil, errors.Wrap(ErrInvalidMap, "room without name")
	}

	room := &Room{
		name: name,
		clue: strings.TrimSpace(bp.Clue),
	}
	var err error
	if bp.Left != nil {
		if room.left, err = build(bp.Left, seen); err != nil {
			return nil, err
		}
	}
	if bp.Right != nil {
		if room.right, err = build(bp.Right, seen); err != nil {
			return nil, err
		}
	}
	return room, nil
}

// Name of the room.
func (r *Room) Name() string {
	return r.name
}

// HasClue reports whether the room still holds a clue that hasn't been collected.
func (r *Room) HasClue() bool {
	return r.clue != ""
}

// TakeClue removes the clue from the room and returns it. The second result is false when
// there is nothing (left) to collect.
func (r *Room) TakeClue() (string, bool) {
	if r.clue == "" {
		return "", false
	}
	clue := r.clue
	r.clue = ""
	return clue, true
}

// Child returns the room in direction d or nil.
func (r *Room) Child(d Direction) *Room {
	switch d {
	case Left:
		return r.left
	case Right:
		return r.right
	default:
		return nil
	}
}

// IsLeaf reports whether exploration ends in this room.
func (r *Room) IsLeaf() bool {
	return r.left == nil && r.right == nil
}

// Children returns the directions that lead out of room.
func Children(room *Room) Exits {
	return Exits{
		Left:  room.left != nil,
		Right: room.right != nil,
	}
}

// Move returns the room behind direction d. If there is no path that way ErrNoSuchPath is
// returned and the caller stays where it is.
func Move(room *Room, d Direction) (*Room, error) {
	if d != Left && d != Right {
		return nil, errors.Wrap(ErrUnknownDirection, "move", slog.Int("direction", int(d)))
	}
	next := room.Child(d)
	if next == nil {
		return nil, errors.Wrap(ErrNoSuchPath, "move",
			slog.String("room", room.name), slog.String("direction", d.String()))
	}
	return next, nil
}

// Walk visits room and its descendants in pre-order. depth is 0 for room itself.
// Walking stops early when visit returns false.
func Walk(room *Room, visit func(depth int, room *Room) bool) {
	walk(room, 0, visit)
}

func walk(room *Room, depth int, visit func(int, *Room) bool) bool {
	if room == nil {
		return true
	}
	if !visit(depth, room) {
		return false
	}
	return walk(room.left, depth+1, visit) && walk(room.right, depth+1, visit)
}
