// Package scene implements the scene graph: nodes with local transforms,
// optional drawables, and depth-first draw traversal through a Backend.
package scene

import (
	"fmt"

	"github.com/Faultbox/tramway/pkg/math"
)

// Node is a scene graph node: a local transform relative to its parent,
// an optional drawable, and an ordered list of children.
//
// The graph is a tree. Children are appended with Attach and never removed.
// World transforms are computed during traversal and never cached.
type Node struct {
	Name string

	local     math.Mat4
	drawable  Drawable
	instances []math.Vec3
	parent    *Node
	children  []*Node
}

// NewNode creates a node. d may be nil, in which case the node only groups
// its children.
func NewNode(name string, local math.Mat4, d Drawable) *Node {
	return &Node{
		Name:     name,
		local:    local,
		drawable: d,
	}
}

// Attach appends child to n's children.
// It panics if child already has a parent or is n itself.
func (n *Node) Attach(child *Node) {
	if child == n {
		panic(fmt.Sprintf("scene: node %q attached to itself", n.Name))
	}
	if child.parent != nil {
		panic(fmt.Sprintf("scene: node %q already attached to %q", child.Name, child.parent.Name))
	}
	for p := n.parent; p != nil; p = p.parent {
		if p == child {
			panic(fmt.Sprintf("scene: attaching %q to %q would create a cycle", child.Name, n.Name))
		}
	}
	child.parent = n
	n.children = append(n.children, child)
}

// SetLocal replaces the local transform. Children are not touched.
func (n *Node) SetLocal(m math.Mat4) {
	n.local = m
}

// Local returns the local transform.
func (n *Node) Local() math.Mat4 {
	return n.local
}

// Drawable returns the node's drawable, or nil.
func (n *Node) Drawable() Drawable {
	return n.drawable
}

// SetDrawable replaces the drawable. nil leaves the node empty.
func (n *Node) SetDrawable(d Drawable) {
	n.drawable = d
}

// SetInstances makes the node draw its drawable once per offset.
// A nil slice switches back to a single draw.
func (n *Node) SetInstances(offsets []math.Vec3) {
	n.instances = offsets
}

// Instances returns the instance offsets, or nil.
func (n *Node) Instances() []math.Vec3 {
	return n.instances
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the children in insertion order.
// The returned slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Path returns the slash-separated names from the root down to n.
func (n *Node) Path() string {
	if p := n.Parent(); p != nil {
		return p.Path() + "/" + n.Name
	}
	return n.Name
}

// World composes the local transforms from the root down to n.
func (n *Node) World() math.Mat4 {
	if n.parent == nil {
		return n.local
	}
	return n.parent.World().Mul(n.local)
}

// Draw renders n and its subtree depth-first, pre-order.
// world = parentWorld * local is handed to the backend and passed down.
func (n *Node) Draw(parentWorld math.Mat4, b Backend) {
	world := parentWorld.Mul(n.local)
	if n.drawable != nil {
		if n.instances != nil {
			b.RenderInstanced(world, n.drawable, n.instances)
		} else {
			b.Render(world, n.drawable)
		}
	}
	for _, c := range n.children {
		c.Draw(world, b)
	}
}

// Walk calls fn for n and every descendant in draw order with its world
// transform. Returning false from fn skips that node's subtree.
func (n *Node) Walk(parentWorld math.Mat4, fn func(node *Node, world math.Mat4) bool) {
	world := parentWorld.Mul(n.local)
	if !fn(n, world) {
		return
	}
	for _, c := range n.children {
		c.Walk(world, fn)
	}
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	count := 1
	for _, c := range n.children {
		count += c.Count()
	}
	return count
}
