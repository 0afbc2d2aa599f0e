package tree

// BasicNode is a ready-made Node implementation for callers that do not bring
// their own node type. Label and Level are filled by LabeledFactory; the
// default factory leaves them zero.
type BasicNode struct {
	Label string
	Level int

	parent   *BasicNode
	children []*BasicNode
}

// NewBasicNode is the zero-argument constructor of BasicNode, suitable as the
// newNode argument of CreateTree.
func NewBasicNode() *BasicNode {
	return &BasicNode{}
}

// SetParent implements Node.
func (n *BasicNode) SetParent(parent *BasicNode) {
	n.parent = parent
}

// SetChildren implements Node.
func (n *BasicNode) SetChildren(children []*BasicNode) {
	n.children = children
}

// Parent returns the node's parent, or nil for the root.
func (n *BasicNode) Parent() *BasicNode {
	return n.parent
}

// Children returns the node's children in distribution order.
// The slice is shared with the node; do not modify it.
func (n *BasicNode) Children() []*BasicNode {
	return n.children
}

// IsRoot reports whether n has no parent.
func (n *BasicNode) IsRoot() bool {
	return n.parent == nil
}

// String returns the label, or "node" when unlabeled.
func (n *BasicNode) String() string {
	if n.Label == "" {
		return "node"
	}

	return n.Label
}
