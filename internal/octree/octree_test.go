package octree

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func randVec(rng *rand.Rand, extent float64) mgl64.Vec3 {
	return mgl64.Vec3{
		rng.Float64()*extent - extent/2,
		rng.Float64()*extent - extent/2,
		rng.Float64()*extent - extent/2,
	}
}

// TestInsertQueryRoundTrip inserts points and verifies a box query covering
// the root returns every one of them exactly once.
func TestInsertQueryRoundTrip(t *testing.T) {
	tree := New(mgl64.Vec3{}, 100)
	rng := rand.New(rand.NewSource(1))

	const n = 500
	for i := 0; i < n; i++ {
		if err := tree.Insert(Point{Pos: randVec(rng, 100), Data: i}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	if tree.Len() != n {
		t.Fatalf("Len = %d, want %d", tree.Len(), n)
	}

	got := tree.QueryBox(mgl64.Vec3{}, 100)
	if len(got) != n {
		t.Fatalf("QueryBox over root returned %d points, want %d", len(got), n)
	}
	seen := make(map[int]bool, n)
	for _, p := range got {
		id := p.Data.(int)
		if seen[id] {
			t.Fatalf("point %d returned twice", id)
		}
		seen[id] = true
	}
}

// TestInsertOutOfBounds verifies points outside the root cube are rejected
// and do not change the count.
func TestInsertOutOfBounds(t *testing.T) {
	tree := New(mgl64.Vec3{}, 10)

	if err := tree.Insert(Point{Pos: mgl64.Vec3{6, 0, 0}}); err == nil {
		t.Error("Insert outside bounds succeeded, want error")
	}
	if tree.Len() != 0 {
		t.Errorf("Len = %d after rejected insert, want 0", tree.Len())
	}

	// Boundary positions are inside.
	if err := tree.Insert(Point{Pos: mgl64.Vec3{5, -5, 5}}); err != nil {
		t.Errorf("Insert on boundary: %v", err)
	}
}

// TestSplitRedistribution overflows a single leaf and verifies no point is
// lost or duplicated by the split.
func TestSplitRedistribution(t *testing.T) {
	tree := New(mgl64.Vec3{}, 10)
	rng := rand.New(rand.NewSource(2))

	const n = NodeCapacity * 4
	for i := 0; i < n; i++ {
		if err := tree.Insert(Point{Pos: randVec(rng, 1), Data: i}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	got := tree.QueryBox(mgl64.Vec3{}, 10)
	if len(got) != n {
		t.Fatalf("after splits QueryBox returned %d points, want %d", len(got), n)
	}
}

// TestQuerySphere verifies the distance filter against a brute-force scan.
func TestQuerySphere(t *testing.T) {
	tree := New(mgl64.Vec3{}, 20)
	rng := rand.New(rand.NewSource(3))

	var all []Point
	for i := 0; i < 300; i++ {
		p := Point{Pos: randVec(rng, 20), Data: i}
		all = append(all, p)
		if err := tree.Insert(p); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	center := mgl64.Vec3{1, -2, 3}
	const radius = 4.0
	got := tree.QuerySphere(center, radius)

	want := 0
	for _, p := range all {
		if p.Pos.Sub(center).Len() <= radius {
			want++
		}
	}
	if len(got) != want {
		t.Errorf("QuerySphere returned %d points, brute force found %d", len(got), want)
	}
	for _, p := range got {
		if d := p.Pos.Sub(center).Len(); d > radius {
			t.Errorf("QuerySphere returned point at distance %g > %g", d, radius)
		}
	}
}

// TestFindNearest compares against a brute-force scan over many queries.
func TestFindNearest(t *testing.T) {
	tree := New(mgl64.Vec3{}, 50)
	rng := rand.New(rand.NewSource(4))

	var all []Point
	for i := 0; i < 50; i++ {
		p := Point{Pos: randVec(rng, 50), Data: i}
		all = append(all, p)
		if err := tree.Insert(p); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	for q := 0; q < 1000; q++ {
		pos := randVec(rng, 50)

		got, ok := tree.FindNearest(pos, 100)
		if !ok {
			t.Fatalf("FindNearest(%v) found nothing", pos)
		}

		bestDist := all[0].Pos.Sub(pos).Len()
		for _, p := range all[1:] {
			if d := p.Pos.Sub(pos).Len(); d < bestDist {
				bestDist = d
			}
		}
		if gotDist := got.Pos.Sub(pos).Len(); gotDist-bestDist > 1e-12 {
			t.Fatalf("FindNearest(%v) distance %g, brute force %g", pos, gotDist, bestDist)
		}
	}
}

// TestFindNearestNone verifies the miss cases: empty tree and a radius cap
// smaller than the nearest point.
func TestFindNearestNone(t *testing.T) {
	tree := New(mgl64.Vec3{}, 10)

	if _, ok := tree.FindNearest(mgl64.Vec3{}, 100); ok {
		t.Error("FindNearest on empty tree reported a hit")
	}

	if err := tree.Insert(Point{Pos: mgl64.Vec3{4, 0, 0}}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, ok := tree.FindNearest(mgl64.Vec3{-4, 0, 0}, 1); ok {
		t.Error("FindNearest beyond radius cap reported a hit")
	}
	if _, ok := tree.FindNearest(mgl64.Vec3{-4, 0, 0}, 10); !ok {
		t.Error("FindNearest within radius cap missed the point")
	}
}

// TestClear verifies Clear empties the tree and leaves it usable.
func TestClear(t *testing.T) {
	tree := New(mgl64.Vec3{}, 10)
	for i := 0; i < 20; i++ {
		f := float64(i) * 0.2
		if err := tree.Insert(Point{Pos: mgl64.Vec3{f - 2, 0, 0}, Data: i}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	tree.Clear()
	if tree.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", tree.Len())
	}
	if got := tree.QueryBox(mgl64.Vec3{}, 10); len(got) != 0 {
		t.Errorf("QueryBox after Clear returned %d points", len(got))
	}
	tree.Clear()

	if err := tree.Insert(Point{Pos: mgl64.Vec3{1, 1, 1}}); err != nil {
		t.Errorf("Insert after Clear: %v", err)
	}
	if tree.Len() != 1 {
		t.Errorf("Len = %d after reinsert, want 1", tree.Len())
	}
}
