package linkedlist

// LinkedList describes a list of integers that grows at its head.
type LinkedList interface {
	// InsertHead inserts a node holding the value in front of the
	// current head. Duplicate values are allowed.
	InsertHead(value int)
	// Find returns the first node, from the head, holding the value.
	// It returns nil if no node holds it.
	Find(value int) *Node
	// Update replaces the value of the first node holding oldValue with
	// newValue. It returns false if no node holds oldValue.
	Update(oldValue, newValue int) bool
	// Remove unlinks the first node holding the value. An error is
	// returned if the list is empty or the value isn't in it, in which
	// case the list is left untouched.
	Remove(value int) error
	// Traverse returns the values from head to tail. An empty list
	// yields ErrEmptyList rather than an empty slice.
	Traverse() ([]int, error)
	// Teardown releases every node and leaves the list empty. It returns
	// the number of nodes released.
	Teardown() int
	// Len returns the number of nodes in the list.
	Len() int
}

// Node is a single entity of the singly linked list.
type Node struct {
	value int
	next  *Node
}

// Value returns the value held by the node.
func (n *Node) Value() int {
	return n.value
}

// Next returns the node after this one, nil at the tail or once the
// node has been removed from its list.
func (n *Node) Next() *Node {
	return n.next
}
