package assimp

/*
#include <assimp/scene.h>
*/
import "C"

import (
	"unsafe"

	"github.com/wippyai/assimp/geom"
)

// Node is a view over one aiNode in the scene hierarchy.
type Node struct {
	raw *C.struct_aiNode
}

func newNode(p *C.struct_aiNode) *Node {
	if p == nil {
		return nil
	}
	return &Node{raw: p}
}

func (n *Node) Name() string { return goString(&n.raw.mName) }

// Transformation is relative to the parent node.
func (n *Node) Transformation() geom.Matrix4x4 {
	return *(*geom.Matrix4x4)(unsafe.Pointer(&n.raw.mTransformation))
}

// Parent returns nil for the root.
func (n *Node) Parent() *Node { return newNode(n.raw.mParent) }

func (n *Node) Children() []*Node {
	return wrap(slice[*C.struct_aiNode](n.raw.mChildren, n.raw.mNumChildren), newNode)
}

// MeshIndices indexes Scene.Meshes.
func (n *Node) MeshIndices() []uint32 {
	return slice[uint32](n.raw.mMeshes, n.raw.mNumMeshes)
}

// MeshesFrom resolves the node's mesh indices against scene. Indices out
// of range are skipped.
func (n *Node) MeshesFrom(scene *Scene) []*Mesh {
	idx := n.MeshIndices()
	if len(idx) == 0 {
		return nil
	}
	out := make([]*Mesh, 0, len(idx))
	for _, i := range idx {
		if m, err := scene.Mesh(int(i)); err == nil {
			out = append(out, m)
		}
	}
	return out
}

// GlobalTransformation composes the transformations from the root down to n.
func (n *Node) GlobalTransformation() geom.Matrix4x4 {
	m := n.Transformation()
	for p := n.Parent(); p != nil; p = p.Parent() {
		m = p.Transformation().Mul(m)
	}
	return m
}

// Walk visits n and its descendants depth-first, passing each node's depth
// below n. Returning false from fn skips that node's children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children() {
		c.walk(fn, depth+1)
	}
}

// Find returns the first node named name in n's subtree.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(node *Node, _ int) bool {
		if found != nil {
			return false
		}
		if node.Name() == name {
			found = node
			return false
		}
		return true
	})
	return found
}
