package bst

// Node is a single entity of the tree. Every value in the left subtree
// is smaller than the node's value and every value in the right subtree
// is larger.
type Node struct {
	value int
	left  *Node
	right *Node
}

// Value returns the value held by the node.
func (n *Node) Value() int {
	return n.value
}

// Left returns the root of the left subtree.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the root of the right subtree.
func (n *Node) Right() *Node {
	return n.right
}

// FindMin returns the leftmost node of the subtree rooted at node.
// node must not be nil.
func FindMin(node *Node) *Node {
	for node.left != nil {
		node = node.left
	}
	return node
}

// find walks down from link and returns the link holding the node with
// value, or nil if there is none.
func find(link **Node, value int) **Node {
	for *link != nil {
		node := *link
		switch {
		case value < node.value:
			link = &node.left
		case value > node.value:
			link = &node.right
		default:
			return link
		}
	}
	return nil
}

// splice replaces the node held by link with its only child, or nil.
// The node must not have two children.
func splice(link **Node) {
	node := *link
	if node.left == nil {
		*link = node.right
	} else {
		*link = node.left
	}
	node.left, node.right = nil, nil
}

// The walkers below use an explicit stack so that a degenerate tree
// built from sorted input can't exhaust the goroutine stack.

func walkPreOrder(root *Node, visit func(*Node)) {
	if root == nil {
		return
	}
	stack := []*Node{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(node)
		if node.right != nil {
			stack = append(stack, node.right)
		}
		if node.left != nil {
			stack = append(stack, node.left)
		}
	}
}

func walkInOrder(root *Node, visit func(*Node)) {
	var stack []*Node
	node := root
	for node != nil || len(stack) > 0 {
		for node != nil {
			stack = append(stack, node)
			node = node.left
		}
		node = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(node)
		node = node.right
	}
}

// walkPostOrder visits both children before their parent. visit may
// clear the links of the node it is given.
func walkPostOrder(root *Node, visit func(*Node)) {
	var (
		stack []*Node
		last  *Node
	)
	node := root
	for node != nil || len(stack) > 0 {
		if node != nil {
			stack = append(stack, node)
			node = node.left
			continue
		}
		top := stack[len(stack)-1]
		if top.right != nil && top.right != last {
			node = top.right
			continue
		}
		stack = stack[:len(stack)-1]
		visit(top)
		last = top
	}
}
