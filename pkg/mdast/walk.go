package mdast

// WalkFunc is called for every node visited by Walk. A non-nil error ends
// the walk and is returned by Walk.
type WalkFunc func(n Node) error

// Walk visits root and its descendants in document order, parents before
// children.
func Walk(root Node, fn WalkFunc) error {
	if root == nil {
		return nil
	}
	if err := fn(root); err != nil {
		return err
	}
	for _, child := range Children(root) {
		if err := Walk(child, fn); err != nil {
			return err
		}
	}
	return nil
}

// FindByKind collects the nodes under root, root included, whose kind is
// one of kinds, in document order.
func FindByKind(root Node, kinds ...NodeKind) []Node {
	var found []Node
	_ = Walk(root, func(n Node) error {
		for _, kind := range kinds {
			if n.Kind() == kind {
				found = append(found, n)
				break
			}
		}
		return nil
	})
	return found
}
