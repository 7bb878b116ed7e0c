package usecase

import (
	"strings"

	"github.com/m-mizutani/zipscope/pkg/domain/model"
)

const (
	connectorMiddle = "├── "
	connectorLast   = "└── "
	continuation    = "│   "

	iconDir  = "📁 "
	iconFile = "📄 "
)

// BuildFileTree converts a flat archive listing into a FileTreeNode hierarchy.
// Junk entries are skipped, empty segments are dropped and paths sharing a
// prefix share nodes. Sibling order follows first appearance in paths.
func BuildFileTree(paths []string) *model.FileTreeNode {
	root := model.NewFileTree()

	for _, path := range paths {
		if model.IsJunkEntry(path) {
			continue
		}

		current := root
		for _, part := range strings.Split(path, "/") {
			if part == "" {
				continue
			}
			current = current.Child(part)
		}
	}

	return root
}

// RenderFileTree renders the children of root, one line per node, without a
// trailing newline. Top-level entries have no connector.
func RenderFileTree(root *model.FileTreeNode) string {
	var lines []string
	renderNodes(&lines, root.Children(), "", true)
	return strings.Join(lines, "\n")
}

func renderNodes(lines *[]string, nodes []*model.FileTreeNode, prefix string, topLevel bool) {
	for i, node := range nodes {
		isLast := i == len(nodes)-1

		connector := ""
		if !topLevel {
			connector = connectorMiddle
			if isLast {
				connector = connectorLast
			}
		}
		*lines = append(*lines, prefix+connector+nodeLabel(node))

		if !node.IsDir() {
			continue
		}

		// The continuation column is only drawn under non-last, non-top entries.
		childPrefix := prefix
		if !topLevel && !isLast {
			childPrefix += continuation
		}
		renderNodes(lines, node.Children(), childPrefix, false)
	}
}

func nodeLabel(node *model.FileTreeNode) string {
	if node.IsDir() {
		return iconDir + node.Name + "/"
	}
	return iconFile + node.Name
}
