// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/treekit/fault"
	"github.com/bitmark-inc/treekit/tree"
)

type item struct {
	key   int
	value string
}

var (
	ascending  = []item{{1, "first"}, {2, "second"}, {3, "third"}, {4, "fourth"}, {5, "fifth"}}
	descending = []item{{5, "fifth"}, {4, "fourth"}, {3, "third"}, {2, "second"}, {1, "first"}}
	mixed      = []item{{3, "third"}, {1, "first"}, {5, "fifth"}, {2, "second"}, {4, "fourth"}}
)

const expectedDump = "1: first\n2: second\n3: third\n4: fourth\n5: fifth\n"

func newTree(t *testing.T, variant tree.Variant) *tree.Tree[int, string] {
	tr, err := tree.New[int, string](variant)
	require.NoError(t, err, "new tree")
	return tr
}

// insert items checking the height after each one
func doHeights(t *testing.T, variant tree.Variant, items []item, heights []int) {
	tr := newTree(t, variant)
	for i, it := range items {
		tr.Insert(it.key, it.value)
		if h := tr.Height(); heights[i] != h {
			t.Fatalf("%s: after insert of %d height: %d  expected: %d", variant, it.key, h, heights[i])
		}
	}
	if d := tr.Dump(); expectedDump != d {
		t.Fatalf("%s: dump: %q  expected: %q", variant, d, expectedDump)
	}
	require.NoError(t, tr.Check(), "check")
}

func TestUnbalancedScenario(t *testing.T) {
	doHeights(t, tree.Unbalanced, ascending, []int{0, 1, 2, 3, 4})
	doHeights(t, tree.Unbalanced, descending, []int{0, 1, 2, 3, 4})
	doHeights(t, tree.Unbalanced, mixed, []int{0, 1, 1, 2, 2})
}

func TestBalancedScenario(t *testing.T) {
	for _, variant := range []tree.Variant{tree.RedBlack, tree.LeftLeaning} {
		for _, items := range [][]item{ascending, descending, mixed} {
			tr := newTree(t, variant)
			for _, it := range items {
				tr.Insert(it.key, it.value)
				require.NoError(t, tr.Check(), "%s: check after insert of %d", variant, it.key)
			}
			assert.Equal(t, expectedDump, tr.Dump(), "%s: dump", variant)
			assert.LessOrEqual(t, tr.Height(), 2, "%s: height", variant)
			assert.Equal(t, 5, tr.Count(), "%s: count", variant)
		}
	}
}

func TestEmptyTree(t *testing.T) {
	for _, variant := range tree.Variants {
		tr := newTree(t, variant)

		assert.True(t, tr.IsEmpty(), "%s: empty", variant)
		assert.Equal(t, -1, tr.Height(), "%s: height", variant)
		assert.Equal(t, "", tr.Dump(), "%s: dump", variant)
		assert.Empty(t, tr.InOrder(), "%s: in order", variant)
		assert.Equal(t, tree.NotFound, tr.CountSteps(1), "%s: steps", variant)
		assert.NoError(t, tr.Check(), "%s: check", variant)

		_, err := tr.Minimum()
		assert.Equal(t, fault.ErrEmptyTree, err, "%s: minimum", variant)
		_, err = tr.Maximum()
		assert.Equal(t, fault.ErrEmptyTree, err, "%s: maximum", variant)
		_, err = tr.RecursiveSearch(1)
		assert.Equal(t, fault.ErrEmptyTree, err, "%s: recursive search", variant)
		_, err = tr.IterativeSearch(1)
		assert.Equal(t, fault.ErrEmptyTree, err, "%s: iterative search", variant)
	}
}

func TestSingleNode(t *testing.T) {
	for _, variant := range tree.Variants {
		tr := newTree(t, variant)
		tr.Insert(42, "answer")

		assert.Equal(t, 0, tr.Height(), "%s: height", variant)
		assert.Equal(t, 1, tr.CountSteps(42), "%s: steps", variant)
		assert.NoError(t, tr.Check(), "%s: check", variant)
	}
}

func TestSearch(t *testing.T) {
	for _, variant := range tree.Variants {
		tr := newTree(t, variant)
		for _, it := range mixed {
			tr.Insert(it.key, it.value)
		}

		for _, it := range mixed {
			v, err := tr.RecursiveSearch(it.key)
			require.NoError(t, err, "%s: recursive search: %d", variant, it.key)
			assert.Equal(t, it.value, v, "%s: recursive search: %d", variant, it.key)

			v, err = tr.IterativeSearch(it.key)
			require.NoError(t, err, "%s: iterative search: %d", variant, it.key)
			assert.Equal(t, it.value, v, "%s: iterative search: %d", variant, it.key)
		}

		for _, key := range []int{0, 6, -10, 100} {
			_, err := tr.RecursiveSearch(key)
			assert.True(t, fault.IsErrNotFound(err), "%s: recursive search absent: %d", variant, key)
			_, err = tr.IterativeSearch(key)
			assert.True(t, fault.IsErrNotFound(err), "%s: iterative search absent: %d", variant, key)
			assert.Equal(t, tree.NotFound, tr.CountSteps(key), "%s: steps absent: %d", variant, key)
		}
	}
}

func TestCountSteps(t *testing.T) {
	tr := newTree(t, tree.Unbalanced)
	for _, it := range ascending {
		tr.Insert(it.key, it.value)
	}
	for i, it := range ascending {
		assert.Equal(t, i+1, tr.CountSteps(it.key), "steps for: %d", it.key)
	}

	// 3 at the top, 1 and 5 below, 2 and 4 at the bottom
	tr = newTree(t, tree.Unbalanced)
	for _, it := range mixed {
		tr.Insert(it.key, it.value)
	}
	expected := map[int]int{3: 1, 1: 2, 5: 2, 2: 3, 4: 3}
	for key, steps := range expected {
		assert.Equal(t, steps, tr.CountSteps(key), "steps for: %d", key)
	}
}

func TestDuplicateKeysAreRetained(t *testing.T) {
	const expected = "1: x\n2: a\n2: b\n2: c\n3: y\n"

	for _, variant := range tree.Variants {
		tr := newTree(t, variant)
		tr.Insert(2, "a")
		tr.Insert(1, "x")
		tr.Insert(2, "b")
		tr.Insert(3, "y")
		tr.Insert(2, "c")

		assert.Equal(t, 5, tr.Count(), "%s: count", variant)
		assert.Equal(t, expected, tr.Dump(), "%s: dump", variant)
		assert.NoError(t, tr.Check(), "%s: check", variant)

		v, err := tr.IterativeSearch(2)
		require.NoError(t, err, "%s: search", variant)
		assert.Contains(t, []string{"a", "b", "c"}, v, "%s: search value", variant)
	}
}

func TestMinMaxMatchTraversal(t *testing.T) {
	r := rand.New(rand.NewSource(12345))
	for _, variant := range tree.Variants {
		tr := newTree(t, variant)
		for i := 0; i < 300; i += 1 {
			tr.Insert(r.Intn(100000)-50000, "")
		}
		entries := tr.InOrder()
		require.Len(t, entries, 300)

		minimum, err := tr.Minimum()
		require.NoError(t, err)
		maximum, err := tr.Maximum()
		require.NoError(t, err)
		assert.Equal(t, entries[0].Key, minimum, "%s: minimum", variant)
		assert.Equal(t, entries[len(entries)-1].Key, maximum, "%s: maximum", variant)
	}
}

// random distinct keys, every property checked after each insert
func TestRandomInsertion(t *testing.T) {
	r := rand.New(rand.NewSource(67890))
	for _, variant := range tree.Variants {
		for round := 0; round < 5; round += 1 {
			keys := r.Perm(400)
			tr := newTree(t, variant)
			for i, k := range keys {
				tr.Insert(k, "data")
				if err := tr.Check(); nil != err {
					var b strings.Builder
					tr.Print(&b, true)
					t.Logf("tree:\n%s", b.String())
					t.Fatalf("%s: round: %d insert: %d key: %d check error: %s", variant, round, i, k, err)
				}
			}

			previous := -1
			for _, e := range tr.InOrder() {
				if e.Key <= previous {
					t.Fatalf("%s: key: %d follows: %d", variant, e.Key, previous)
				}
				previous = e.Key
			}
		}
	}
}

func TestLargeBalancedHeight(t *testing.T) {
	const size = 20000

	sorted := make([]int, size)
	for i := range sorted {
		sorted[i] = i
	}
	shuffled := rand.New(rand.NewSource(1)).Perm(size)

	for _, variant := range []tree.Variant{tree.RedBlack, tree.LeftLeaning} {
		for name, keys := range map[string][]int{"sorted": sorted, "shuffled": shuffled} {
			tr := newTree(t, variant)
			for _, k := range keys {
				tr.Insert(k, "")
			}

			minimum, err := tr.Minimum()
			require.NoError(t, err)
			assert.Equal(t, 0, minimum, "%s %s: minimum", variant, name)

			maximum, err := tr.Maximum()
			require.NoError(t, err)
			assert.Equal(t, size-1, maximum, "%s %s: maximum", variant, name)

			assert.LessOrEqual(t, float64(tr.Height()), tr.HeightBound(), "%s %s: height", variant, name)
			assert.NoError(t, tr.Check(), "%s %s: check", variant, name)
		}
	}
}

// sorted input gives the unbalanced tree a height of n-1; traversal
// and height must cope without recursing that deep
func TestDegenerateUnbalanced(t *testing.T) {
	const size = 10000

	tr := newTree(t, tree.Unbalanced)
	for i := 0; i < size; i += 1 {
		tr.Insert(i, "")
	}
	assert.Equal(t, size-1, tr.Height())
	assert.Len(t, tr.InOrder(), size)
	assert.Equal(t, size, tr.CountSteps(size-1))
	assert.NoError(t, tr.Check())
}

func TestPrintDegenerateUnbalanced(t *testing.T) {
	const size = 3000

	tr := newTree(t, tree.Unbalanced)
	for i := size; i > 0; i -= 1 {
		tr.Insert(i, "")
	}

	var b strings.Builder
	assert.Equal(t, size, tr.Print(&b, false), "depth")
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(t, lines, size)
	assert.Equal(t, "|------+ 3000", lines[0], "root first")
	assert.True(t, strings.HasSuffix(lines[size-1], "\\------+ 1"), "deepest left last")
}

func TestCustomCompare(t *testing.T) {
	reverse := func(a, b string) int {
		return strings.Compare(b, a)
	}
	tr, err := tree.NewFunc[string, int](tree.LeftLeaning, reverse)
	require.NoError(t, err)

	for i, k := range []string{"delta", "alpha", "charlie", "bravo"} {
		tr.Insert(k, i)
	}
	assert.Equal(t, "delta: 0\ncharlie: 2\nbravo: 3\nalpha: 1\n", tr.Dump())

	minimum, err := tr.Minimum()
	require.NoError(t, err)
	assert.Equal(t, "delta", minimum)
}

func TestConstructorErrors(t *testing.T) {
	_, err := tree.NewFunc[int, int](tree.RedBlack, nil)
	assert.Equal(t, fault.ErrMissingCompare, err)

	_, err = tree.New[int, int](tree.Variant(99))
	assert.Equal(t, fault.ErrInvalidVariant, err)
}

func TestParseVariant(t *testing.T) {
	names := map[string]tree.Variant{
		"unbalanced":    tree.Unbalanced,
		"BST":           tree.Unbalanced,
		"red-black":     tree.RedBlack,
		"rb":            tree.RedBlack,
		" left-leaning": tree.LeftLeaning,
		"llrb":          tree.LeftLeaning,
	}
	for name, expected := range names {
		v, err := tree.ParseVariant(name)
		require.NoError(t, err, "parse: %q", name)
		assert.Equal(t, expected, v, "parse: %q", name)
	}

	_, err := tree.ParseVariant("avl")
	assert.Equal(t, fault.ErrInvalidVariant, err)

	for _, v := range tree.Variants {
		p, err := tree.ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, p)
	}
}

func TestWalkStopsEarly(t *testing.T) {
	tr := newTree(t, tree.RedBlack)
	for _, it := range mixed {
		tr.Insert(it.key, it.value)
	}

	visited := []int{}
	tr.Walk(func(key int, _ string) bool {
		visited = append(visited, key)
		return key < 3
	})
	assert.Equal(t, []int{1, 2, 3}, visited)
}

func TestPrint(t *testing.T) {
	for _, variant := range tree.Variants {
		tr := newTree(t, variant)

		var b strings.Builder
		assert.Equal(t, 0, tr.Print(&b, false), "%s: empty depth", variant)
		assert.Equal(t, "", b.String())

		for _, it := range mixed {
			tr.Insert(it.key, it.value)
		}
		b.Reset()
		depth := tr.Print(&b, true)
		assert.Equal(t, tr.Height()+1, depth, "%s: depth", variant)
		assert.Equal(t, 5, strings.Count(b.String(), "\n"), "%s: lines", variant)
		assert.Contains(t, b.String(), "third", "%s: data", variant)
	}
}

func TestStats(t *testing.T) {
	tr := newTree(t, tree.Unbalanced)
	for _, it := range ascending {
		tr.Insert(it.key, it.value)
	}
	assert.Equal(t, tree.Stats{}, tr.Stats(), "unbalanced never rotates")

	tr = newTree(t, tree.RedBlack)
	tr.Insert(1, "")
	tr.Insert(2, "")
	tr.Insert(3, "")
	assert.Equal(t, uint64(1), tr.Stats().Rotations, "red-black rotations")

	tr = newTree(t, tree.LeftLeaning)
	tr.Insert(1, "")
	tr.Insert(2, "")
	tr.Insert(3, "")
	s := tr.Stats()
	assert.Equal(t, uint64(1), s.Rotations, "left-leaning rotations")
	assert.Equal(t, uint64(1), s.ColorFlips, "left-leaning flips")
}

func TestReset(t *testing.T) {
	tr := newTree(t, tree.RedBlack)
	for _, it := range ascending {
		tr.Insert(it.key, it.value)
	}
	tr.Reset()

	assert.True(t, tr.IsEmpty())
	assert.Equal(t, 0, tr.Count())
	assert.Equal(t, tree.Stats{}, tr.Stats())

	tr.Insert(7, "seven")
	assert.Equal(t, "7: seven\n", tr.Dump())
	assert.NoError(t, tr.Check())
}
