// Package octree provides a sparse spatial index over points in 3D space.
// Nodes subdivide lazily when they overflow, down to a minimum cell size,
// so memory tracks the occupied regions rather than the full volume.
package octree

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// NodeCapacity is the number of points a leaf holds before splitting.
	NodeCapacity = 8
	// MinNodeSize stops subdivision; cells at or below this edge length
	// grow their slice instead of splitting.
	MinNodeSize = 0.05
)

// Point is an indexed position with an opaque payload.
type Point struct {
	Pos  mgl64.Vec3
	Data any
}

type node struct {
	center   mgl64.Vec3
	size     float64
	points   []Point
	children *[8]node
}

// Tree is a sparse octree rooted at a fixed cube. It is not safe for
// concurrent use.
type Tree struct {
	root node
	len  int
}

// New returns an empty tree covering the axis-aligned cube with the given
// center and edge length.
func New(center mgl64.Vec3, size float64) *Tree {
	return &Tree{root: node{center: center, size: size}}
}

// Len returns the number of stored points.
func (t *Tree) Len() int {
	return t.len
}

// Insert adds p to the index. Points outside the root cube are rejected.
func (t *Tree) Insert(p Point) error {
	if !t.root.contains(p.Pos) {
		return fmt.Errorf("octree: point %v outside bounds (center %v, size %g)", p.Pos, t.root.center, t.root.size)
	}
	t.root.insert(p)
	t.len++
	return nil
}

// Clear resets the tree to empty, keeping the root bounds.
func (t *Tree) Clear() {
	t.root = node{center: t.root.center, size: t.root.size}
	t.len = 0
}

func (n *node) contains(pos mgl64.Vec3) bool {
	h := n.size / 2
	for i := 0; i < 3; i++ {
		if pos[i] < n.center[i]-h || pos[i] > n.center[i]+h {
			return false
		}
	}
	return true
}

func (n *node) insert(p Point) {
	if n.children != nil {
		n.children[n.childFor(p.Pos)].insert(p)
		return
	}
	n.points = append(n.points, p)
	if len(n.points) > NodeCapacity && n.size > MinNodeSize {
		n.split()
	}
}

// childFor picks the octant for pos. Positions exactly on a dividing plane
// go to the low octant of that axis.
func (n *node) childFor(pos mgl64.Vec3) int {
	idx := 0
	if pos.X() > n.center.X() {
		idx |= 1
	}
	if pos.Y() > n.center.Y() {
		idx |= 2
	}
	if pos.Z() > n.center.Z() {
		idx |= 4
	}
	return idx
}

func (n *node) split() {
	half := n.size / 2
	quarter := n.size / 4
	var kids [8]node
	for i := range kids {
		c := n.center
		if i&1 != 0 {
			c[0] += quarter
		} else {
			c[0] -= quarter
		}
		if i&2 != 0 {
			c[1] += quarter
		} else {
			c[1] -= quarter
		}
		if i&4 != 0 {
			c[2] += quarter
		} else {
			c[2] -= quarter
		}
		kids[i] = node{center: c, size: half}
	}
	n.children = &kids
	for _, p := range n.points {
		n.children[n.childFor(p.Pos)].insert(p)
	}
	n.points = nil
}

// QueryBox returns every point inside the axis-aligned box with the given
// center and edge length, bounds inclusive.
func (t *Tree) QueryBox(center mgl64.Vec3, size float64) []Point {
	var out []Point
	t.root.queryBox(center, size/2, &out)
	return out
}

func (n *node) queryBox(center mgl64.Vec3, half float64, out *[]Point) {
	nh := n.size / 2
	for i := 0; i < 3; i++ {
		if d := n.center[i] - center[i]; d > nh+half || -d > nh+half {
			return
		}
	}
	if n.children != nil {
		for i := range n.children {
			n.children[i].queryBox(center, half, out)
		}
		return
	}
	for _, p := range n.points {
		if inBox(p.Pos, center, half) {
			*out = append(*out, p)
		}
	}
}

func inBox(pos, center mgl64.Vec3, half float64) bool {
	for i := 0; i < 3; i++ {
		if pos[i] < center[i]-half || pos[i] > center[i]+half {
			return false
		}
	}
	return true
}

// QuerySphere returns every point within radius of center.
func (t *Tree) QuerySphere(center mgl64.Vec3, radius float64) []Point {
	candidates := t.QueryBox(center, radius*2)
	out := candidates[:0]
	for _, p := range candidates {
		if p.Pos.Sub(center).Len() <= radius {
			out = append(out, p)
		}
	}
	return out
}

// FindNearest returns the stored point closest to pos within maxRadius. The
// search starts with a small sphere and doubles it until a hit or the radius
// cap, so dense neighborhoods resolve without scanning the whole tree.
func (t *Tree) FindNearest(pos mgl64.Vec3, maxRadius float64) (Point, bool) {
	if t.len == 0 || maxRadius <= 0 {
		return Point{}, false
	}
	r := t.root.size * 0.1
	if r > maxRadius {
		r = maxRadius
	}
	for {
		if hits := t.QuerySphere(pos, r); len(hits) > 0 {
			best := hits[0]
			bestDist := best.Pos.Sub(pos).Len()
			for _, p := range hits[1:] {
				if d := p.Pos.Sub(pos).Len(); d < bestDist {
					best, bestDist = p, d
				}
			}
			return best, true
		}
		if r >= maxRadius {
			return Point{}, false
		}
		r *= 2
		if r > maxRadius {
			r = maxRadius
		}
	}
}
