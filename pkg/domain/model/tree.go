package model

// FileTreeNode is one path segment of an archive listing. A node without
// children is a file, a node with children is a directory. Children keep the
// order in which they were first added.
type FileTreeNode struct {
	Name string

	children []*FileTreeNode
	index    map[string]*FileTreeNode
}

// NewFileTree returns an anonymous root node
func NewFileTree() *FileTreeNode {
	return &FileTreeNode{}
}

// Child returns the child named name, creating it at the end of the sibling
// list if it does not exist yet.
func (n *FileTreeNode) Child(name string) *FileTreeNode {
	if c, ok := n.index[name]; ok {
		return c
	}
	if n.index == nil {
		n.index = make(map[string]*FileTreeNode)
	}

	c := &FileTreeNode{Name: name}
	n.index[name] = c
	n.children = append(n.children, c)
	return c
}

// Lookup returns the child named name without creating it
func (n *FileTreeNode) Lookup(name string) (*FileTreeNode, bool) {
	c, ok := n.index[name]
	return c, ok
}

// Children returns child nodes in insertion order
func (n *FileTreeNode) Children() []*FileTreeNode {
	return n.children
}

// IsDir reports whether the node has any children
func (n *FileTreeNode) IsDir() bool {
	return len(n.children) > 0
}
