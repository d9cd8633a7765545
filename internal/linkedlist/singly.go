package linkedlist

import (
	"github.com/rs/zerolog"
)

// Assert that *SinglyLinkedList implements LinkedList.
var _ LinkedList = (*SinglyLinkedList)(nil)

// SinglyLinkedList implements LinkedList.
//
// The list owns its head node and every node owns the chain that starts
// at its next link. Nodes leaving the list have their link cleared so
// a reference kept by a caller can't reach back into the list.
//
// SinglyLinkedList is not safe for concurrent use.
type SinglyLinkedList struct {
	log  zerolog.Logger
	head *Node
	size int
}

// New returns a new, empty SinglyLinkedList.
func New(log zerolog.Logger) *SinglyLinkedList {
	return &SinglyLinkedList{
		log: log,
	}
}

// Head returns the first node of the list, nil if the list is empty.
func (l *SinglyLinkedList) Head() *Node {
	return l.head
}

// Len returns the number of nodes in the list.
func (l *SinglyLinkedList) Len() int {
	return l.size
}

// Empty returns true if the list has no nodes.
func (l *SinglyLinkedList) Empty() bool {
	return l.head == nil
}

// InsertHead links a new node holding value in front of the head.
func (l *SinglyLinkedList) InsertHead(value int) {
	l.head = &Node{
		value: value,
		next:  l.head,
	}
	l.size++
	l.
		log.
		Debug().
		Int("value", value).
		Int("size", l.size).
		Msg("inserted at head")
}

// Find scans from the head and returns the first node holding value.
func (l *SinglyLinkedList) Find(value int) *Node {
	for node := l.head; node != nil; node = node.next {
		if node.value == value {
			return node
		}
	}
	return nil
}

// Update changes the first node holding oldValue in place.
func (l *SinglyLinkedList) Update(oldValue, newValue int) bool {
	node := l.Find(oldValue)
	if node == nil {
		l.
			log.
			Debug().
			Int("value", oldValue).
			Msg("can't update, value not found")
		return false
	}
	node.value = newValue
	l.
		log.
		Debug().
		Int("old", oldValue).
		Int("new", newValue).
		Msg("updated")
	return true
}

// Remove walks the list with a trailing pointer and splices out the
// first node holding value.
func (l *SinglyLinkedList) Remove(value int) error {
	if l.head == nil {
		l.
			log.
			Debug().
			Int("value", value).
			Msg("can't remove, list is empty")
		return ErrEmptyList
	}

	var prev *Node
	current := l.head
	for current != nil && current.value != value {
		prev = current
		current = current.next
	}

	if current == nil {
		l.
			log.
			Debug().
			Int("value", value).
			Msg("can't remove, value not found")
		return ErrValueNotFound
	}

	if prev == nil {
		l.head = current.next
	} else {
		prev.next = current.next
	}
	current.next = nil
	l.size--

	l.
		log.
		Debug().
		Int("value", value).
		Int("size", l.size).
		Msg("removed")
	return nil
}

// Traverse returns the values from head to tail.
func (l *SinglyLinkedList) Traverse() ([]int, error) {
	if l.head == nil {
		return nil, ErrEmptyList
	}
	values := make([]int, 0, l.size)
	for node := l.head; node != nil; node = node.next {
		values = append(values, node.value)
	}
	return values, nil
}

// Teardown unlinks every node from the head onwards.
func (l *SinglyLinkedList) Teardown() int {
	released := 0
	for l.head != nil {
		node := l.head
		l.head = node.next
		node.next = nil
		released++
	}
	l.size = 0
	l.
		log.
		Debug().
		Int("released", released).
		Msg("torn down")
	return released
}
