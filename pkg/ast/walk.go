package ast

// Children returns the direct children of n in document order.
// Table children are the inlines of every cell, row by row.
func Children(n Node) []Node {
	switch node := n.(type) {
	case *Document:
		return blocksToNodes(node.Blocks)
	case *Paragraph:
		return inlinesToNodes(node.Content)
	case *Heading:
		return inlinesToNodes(node.Content)
	case *BlockQuote:
		return blocksToNodes(node.Blocks)
	case *List:
		nodes := make([]Node, 0, len(node.Items))
		for _, item := range node.Items {
			nodes = append(nodes, item)
		}
		return nodes
	case *ListItem:
		return blocksToNodes(node.Blocks)
	case *Table:
		var nodes []Node
		for _, row := range node.Rows {
			for _, cell := range row {
				nodes = append(nodes, inlinesToNodes(cell)...)
			}
		}
		return nodes
	case *FootnoteDefinition:
		return blocksToNodes(node.Blocks)
	case *Link:
		return inlinesToNodes(node.Children)
	case *LinkReference:
		return inlinesToNodes(node.Text)
	case *Emphasis:
		return inlinesToNodes(node.Children)
	case *Strong:
		return inlinesToNodes(node.Children)
	case *Strikethrough:
		return inlinesToNodes(node.Children)
	default:
		return nil
	}
}

func blocksToNodes(blocks []Block) []Node {
	nodes := make([]Node, len(blocks))
	for i, b := range blocks {
		nodes[i] = b
	}
	return nodes
}

func inlinesToNodes(inlines []Inline) []Node {
	nodes := make([]Node, len(inlines))
	for i, in := range inlines {
		nodes[i] = in
	}
	return nodes
}

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(n Node) error

// Walk performs a pre-order traversal of the tree starting at root.
// If walkFunc returns a non-nil error, the walk stops and returns that error.
func Walk(root Node, walkFunc WalkFunc) error {
	if root == nil {
		return nil
	}
	if err := walkFunc(root); err != nil {
		return err
	}
	for _, child := range Children(root) {
		if err := Walk(child, walkFunc); err != nil {
			return err
		}
	}
	return nil
}

// WalkWithContext performs a traversal with enter and leave callbacks.
// Enter is called before visiting children, leave is called after.
// Either callback may be nil.
func WalkWithContext(root Node, enter, leave WalkFunc) error {
	if root == nil {
		return nil
	}
	if enter != nil {
		if err := enter(root); err != nil {
			return err
		}
	}
	for _, child := range Children(root) {
		if err := WalkWithContext(child, enter, leave); err != nil {
			return err
		}
	}
	if leave != nil {
		if err := leave(root); err != nil {
			return err
		}
	}
	return nil
}

// Inspect traverses the tree in pre-order, calling fn for each node. The
// children of a node are skipped when fn returns false for it.
func Inspect(root Node, fn func(n Node) bool) {
	if root == nil || !fn(root) {
		return
	}
	for _, child := range Children(root) {
		Inspect(child, fn)
	}
}

// FindAll returns all nodes matching the predicate in pre-order.
func FindAll(root Node, predicate func(n Node) bool) []Node {
	var result []Node

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(root, func(node Node) error {
		if predicate(node) {
			result = append(result, node)
		}
		return nil
	})

	return result
}

// FindFirst returns the first node matching the predicate, or nil if none found.
func FindFirst(root Node, predicate func(n Node) bool) Node {
	var found Node

	//nolint:errcheck,revive // errStopWalk is expected and intentionally ignored
	Walk(root, func(node Node) error {
		if predicate(node) {
			found = node
			return errStopWalk
		}
		return nil
	})

	return found
}

// FindByKind returns all nodes of the specified kind.
func FindByKind(root Node, kind Kind) []Node {
	return FindAll(root, func(n Node) bool {
		return n.Kind() == kind
	})
}

// Count returns the number of nodes of each kind under root, root included.
func Count(root Node) map[Kind]int {
	counts := make(map[Kind]int)

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(root, func(node Node) error {
		counts[node.Kind()]++
		return nil
	})

	return counts
}

// errStopWalk is a sentinel error used to stop walking early.
var errStopWalk = &stopWalkError{}

type stopWalkError struct{}

func (e *stopWalkError) Error() string {
	return "stop walk"
}
