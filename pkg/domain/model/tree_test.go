package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/zipscope/pkg/domain/model"
)

func TestFileTreeNode_Child(t *testing.T) {
	root := model.NewFileTree()
	gt.False(t, root.IsDir())

	b := root.Child("b")
	a := root.Child("a")
	gt.Equal(t, root.Child("b"), b)

	children := root.Children()
	gt.Equal(t, len(children), 2)
	gt.Equal(t, children[0].Name, "b")
	gt.Equal(t, children[1].Name, "a")
	gt.True(t, root.IsDir())
	gt.False(t, a.IsDir())

	found, ok := root.Lookup("a")
	gt.True(t, ok)
	gt.Equal(t, found, a)

	_, ok = root.Lookup("missing")
	gt.False(t, ok)
	gt.Equal(t, len(root.Children()), 2)
}
