// File: pkg/aggregate/tree.go
package aggregate

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

type treeNode struct {
	name     string
	children map[string]*treeNode
}

func (n *treeNode) isDir() bool {
	return n.children != nil
}

// GenerateTree renders relPaths as an indented tree under a rootName/ line.
// Directories come first, then files, each group ordered case-insensitively.
func GenerateTree(rootName string, relPaths []string) string {
	root := &treeNode{name: rootName, children: map[string]*treeNode{}}
	for _, relPath := range relPaths {
		node := root
		parts := strings.Split(filepath.ToSlash(relPath), "/")
		for i, part := range parts {
			child, ok := node.children[part]
			if !ok {
				child = &treeNode{name: part}
				if i < len(parts)-1 {
					child.children = map[string]*treeNode{}
				}
				node.children[part] = child
			}
			node = child
		}
	}

	var treeBuilder strings.Builder
	treeBuilder.WriteString(fmt.Sprintf("%s/\n", rootName))
	writeSubtree(&treeBuilder, root, "")
	return treeBuilder.String()
}

func writeSubtree(b *strings.Builder, dir *treeNode, prefix string) {
	entries := make([]*treeNode, 0, len(dir.children))
	for _, child := range dir.children {
		entries = append(entries, child)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].isDir() != entries[j].isDir() {
			return entries[i].isDir()
		}
		return strings.ToLower(entries[i].name) < strings.ToLower(entries[j].name)
	})

	for i, entry := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		if entry.isDir() {
			b.WriteString(fmt.Sprintf("%s%s%s/\n", prefix, connector, entry.name))
			writeSubtree(b, entry, prefix+extension)
			continue
		}
		b.WriteString(fmt.Sprintf("%s%s%s\n", prefix, connector, entry.name))
	}
}
