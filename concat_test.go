package rope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(n node) string {
	buf := make([]CodeUnit, n.length())
	n.copyTo(0, buf, 0, n.length())
	b := make([]byte, len(buf))
	for i, u := range buf {
		b[i] = byte(u)
	}
	return string(b)
}

func TestConcatFusesUnderBlockSize(t *testing.T) {
	n1 := newLeaf(units("hello"))
	n2 := newLeaf(units(" world"))
	got := concatNodes(n1, n2)

	l, ok := got.(*leaf)
	require.True(t, ok, "small concat must fuse into a single leaf")
	require.Equal(t, "hello world", collect(l))
}

func TestConcatProducesCompositeAboveBlockSize(t *testing.T) {
	n1 := newLeaf(units(strings.Repeat("a", BlockSize)))
	n2 := newLeaf(units("b"))
	got := concatNodes(n1, n2)

	c, ok := got.(*composite)
	require.True(t, ok, "concat above BlockSize must produce a composite")
	require.Equal(t, BlockSize+1, c.length())
	require.Equal(t, strings.Repeat("a", BlockSize)+"b", collect(c))
}

// assertWeaklyBalanced walks every composite reachable from n and
// checks spec §3 invariant 3: min(H,T)*2 > max(H,T).
func assertWeaklyBalanced(t *testing.T, n node) {
	t.Helper()
	c, ok := n.(*composite)
	if !ok {
		return
	}
	h, tl := c.head.length(), c.tail.length()
	lo, hi := h, tl
	if lo > hi {
		lo, hi = hi, lo
	}
	require.Greaterf(t, lo*2, hi, "weak balance violated: head=%d tail=%d", h, tl)
	assertWeaklyBalanced(t, c.head)
	assertWeaklyBalanced(t, c.tail)
}

func TestConcatKeepsWeakBalanceUnderRepeatedAppend(t *testing.T) {
	var root node = newLeaf(units("x"))
	for i := 0; i < 2000; i++ {
		root = ensureChunked(root)
		root = concatNodes(root, newLeaf(units("y")))
		assertWeaklyBalanced(t, root)
	}
	require.Equal(t, 2001, root.length())
}

func TestConcatKeepsWeakBalanceUnderRepeatedPrepend(t *testing.T) {
	var root node = newLeaf(units("x"))
	for i := 0; i < 2000; i++ {
		root = ensureChunked(root)
		root = concatNodes(newLeaf(units("y")), root)
		assertWeaklyBalanced(t, root)
	}
	require.Equal(t, 2001, root.length())
}

func TestRotateRightNoOpOnLeafHead(t *testing.T) {
	c := newComposite(newLeaf(units("a")), newLeaf(units("b")))
	require.Same(t, c, rotateRight(c))
}

func TestRotateLeftNoOpOnLeafTail(t *testing.T) {
	c := newComposite(newLeaf(units("a")), newLeaf(units("b")))
	require.Same(t, c, rotateLeft(c))
}

func TestRotateRightReshapesCorrectly(t *testing.T) {
	a := newLeaf(units("A"))
	b := newLeaf(units("B"))
	tail := newLeaf(units("T"))
	p := newComposite(a, b) // head of the outer composite
	outer := newComposite(p, tail)

	rotated := rotateRight(outer)
	require.Same(t, a, rotated.head)
	inner, ok := rotated.tail.(*composite)
	require.True(t, ok)
	require.Same(t, b, inner.head)
	require.Same(t, tail, inner.tail)
	require.Equal(t, outer.length(), rotated.length())
}

func TestRotateLeftReshapesCorrectly(t *testing.T) {
	head := newLeaf(units("H"))
	b := newLeaf(units("B"))
	c := newLeaf(units("C"))
	q := newComposite(b, c) // tail of the outer composite
	outer := newComposite(head, q)

	rotated := rotateLeft(outer)
	inner, ok := rotated.head.(*composite)
	require.True(t, ok)
	require.Same(t, head, inner.head)
	require.Same(t, b, inner.tail)
	require.Same(t, c, rotated.tail)
	require.Equal(t, outer.length(), rotated.length())
}
