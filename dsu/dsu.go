// SPDX-License-Identifier: MIT

package dsu

// DisjointSet is a union-find forest over elements 0..n-1.
// The zero value is an empty set of size 0.
type DisjointSet struct {
	parent []int
	sets   int // number of disjoint sets remaining
}

// New returns a DisjointSet of n singletons (parent[i] = i).
func New(n int) *DisjointSet {
	d := &DisjointSet{parent: make([]int, n), sets: n}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Sets returns the number of disjoint sets.
func (d *DisjointSet) Sets() int { return d.sets }

// Find returns the root of i's set and repoints every node on the path to it.
// Two passes: locate the root, then compress.
func (d *DisjointSet) Find(i int) int {
	root := i
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[i] != root {
		next := d.parent[i]
		d.parent[i] = root
		i = next
	}

	return root
}

// Union merges the sets of x and y by setting parent[Find(y)] = Find(x).
// It returns false, leaving the forest unchanged, when x and y already
// share a root.
func (d *DisjointSet) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	d.parent[ry] = rx
	d.sets--

	return true
}

// Connected reports whether x and y are in the same set.
func (d *DisjointSet) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

// Parents returns a copy of the parent array for observation.
func (d *DisjointSet) Parents() []int {
	return append([]int(nil), d.parent...)
}
