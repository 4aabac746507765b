// Package clueindex keeps collected clues in a binary search tree ordered by their text.
package clueindex

import (
	"iter"
	"strings"
)

type node struct {
	text  string
	left  *node
	right *node
}

// Index is an unbalanced binary search tree of clue texts without duplicates.
// The zero value is an empty index ready to use.
type Index struct {
	root *node
	size int
}

// New returns an empty Index.
func New() *Index {
	return &Index{}
}

// Insert adds text to the index. Texts compare byte-wise and case-sensitively.
// Inserting a text that is already present, or an empty text, leaves the index unchanged
// and returns false.
func (idx *Index) Insert(text string) bool {
	if text == "" {
		return false
	}
	link := &idx.root
	for *link != nil {
		switch c := strings.Compare(text, (*link).text); {
		case c < 0:
			link = &(*link).left
		case c > 0:
			link = &(*link).right
		default:
			return false
		}
	}
	*link = &node{text: text}
	idx.size++
	return true
}

// Len returns the number of clues in the index.
func (idx *Index) Len() int {
	return idx.size
}

// All yields the clues in ascending order. The sequence is lazy and can be ranged over
// any number of times; each range starts from the smallest clue.
func (idx *Index) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		var stack []*node
		n := idx.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.text) {
				return
			}
			n = n.right
		}
	}
}

// Height is the number of nodes on the longest path from the root, 0 for an empty index.
func (idx *Index) Height() int {
	return height(idx.root)
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}
