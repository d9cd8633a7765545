package bst

import (
	"github.com/rs/zerolog"
)

// SearchTree describes an unbalanced binary search tree of distinct
// integers.
type SearchTree interface {
	// Insert adds the value as a new leaf. Inserting a value that is
	// already present leaves the tree untouched and returns
	// ErrDuplicateValue.
	Insert(value int) error
	// Delete removes the value from the tree. A node with two children
	// takes the value of its in-order successor, which is then removed
	// from the right subtree. ErrValueNotFound is returned if the value
	// isn't in the tree.
	Delete(value int) error
	// Contains returns true if the value is in the tree.
	Contains(value int) bool
	// PreOrder returns the values in node, left, right order.
	PreOrder() ([]int, error)
	// InOrder returns the values in left, node, right order, which is
	// ascending.
	InOrder() ([]int, error)
	// PostOrder returns the values in left, right, node order.
	PostOrder() ([]int, error)
	// Teardown releases every node, children before their parent, and
	// returns the number of nodes released.
	Teardown() int
	// Len returns the number of nodes in the tree.
	Len() int
}

// Assert that *Tree implements SearchTree.
var _ SearchTree = (*Tree)(nil)

// Tree implements SearchTree. It owns the root node; every node owns its
// two subtrees.
//
// Tree is not safe for concurrent use.
type Tree struct {
	log  zerolog.Logger
	root *Node
	size int
}

// New returns a new, empty Tree.
func New(log zerolog.Logger) *Tree {
	return &Tree{
		log: log,
	}
}

// Root returns the root node, nil if the tree is empty.
func (t *Tree) Root() *Node {
	return t.root
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return t.size
}

// Empty returns true if the tree has no nodes.
func (t *Tree) Empty() bool {
	return t.root == nil
}

// Insert descends from the root and links a new leaf at the first empty
// slot.
func (t *Tree) Insert(value int) error {
	link := &t.root
	for *link != nil {
		node := *link
		switch {
		case value < node.value:
			link = &node.left
		case value > node.value:
			link = &node.right
		default:
			t.
				log.
				Debug().
				Int("value", value).
				Msg("duplicate ignored")
			return ErrDuplicateValue
		}
	}
	*link = &Node{value: value}
	t.size++
	t.
		log.
		Debug().
		Int("value", value).
		Int("size", t.size).
		Msg("inserted")
	return nil
}

// Delete removes the node holding value.
func (t *Tree) Delete(value int) error {
	link := find(&t.root, value)
	if link == nil {
		t.
			log.
			Debug().
			Int("value", value).
			Msg("can't delete, value not found")
		return ErrValueNotFound
	}

	node := *link
	if node.left != nil && node.right != nil {
		successor := FindMin(node.right)
		node.value = successor.value
		// The successor has no left child, so removing it from the right
		// subtree is always a splice.
		link = find(&node.right, successor.value)
		t.
			log.
			Debug().
			Int("value", value).
			Int("successor", successor.value).
			Msg("promoted successor")
	}
	splice(link)
	t.size--

	t.
		log.
		Debug().
		Int("value", value).
		Int("size", t.size).
		Msg("deleted")
	return nil
}

// Contains searches the tree for value.
func (t *Tree) Contains(value int) bool {
	return find(&t.root, value) != nil
}

// PreOrder returns the values visiting the node, then the left subtree,
// then the right subtree.
func (t *Tree) PreOrder() ([]int, error) {
	return t.collect(walkPreOrder)
}

// InOrder returns the values in ascending order.
func (t *Tree) InOrder() ([]int, error) {
	return t.collect(walkInOrder)
}

// PostOrder returns the values visiting the left subtree, then the right
// subtree, then the node.
func (t *Tree) PostOrder() ([]int, error) {
	return t.collect(walkPostOrder)
}

// Teardown releases the tree in post-order.
func (t *Tree) Teardown() int {
	released := 0
	walkPostOrder(t.root, func(node *Node) {
		node.left, node.right = nil, nil
		released++
	})
	t.root = nil
	t.size = 0
	t.
		log.
		Debug().
		Int("released", released).
		Msg("torn down")
	return released
}

func (t *Tree) collect(walk func(*Node, func(*Node))) ([]int, error) {
	if t.root == nil {
		return nil, ErrEmptyTree
	}
	values := make([]int, 0, t.size)
	walk(t.root, func(node *Node) {
		values = append(values, node.value)
	})
	return values, nil
}
