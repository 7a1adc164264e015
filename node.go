// Package rope implements an immutable text rope: a persistent
// character-sequence data structure supporting O(log n) concatenation,
// insertion, deletion and substring extraction, plus O(1) snapshotting.
//
// Every Text value is produced by a pure function of its inputs. No
// node reachable from any Text is ever mutated after construction, so
// any Text may be read from multiple goroutines concurrently, and may
// be retained indefinitely as a consistent snapshot of a past state
// while a foreground goroutine keeps editing.
package rope

// CodeUnit is the fixed-width value a Text indexes, counts and stores:
// one UTF-16 code unit. Indices and lengths throughout this package are
// counts of CodeUnit, not bytes or runes.
type CodeUnit = uint16

// BlockSize is the fuse threshold used by concat and the target chunk
// size produced by the chunker.
const BlockSize = 1 << 6

// blockMask rounds a length down to the nearest multiple of BlockSize.
// BlockSize is a power of two so this is a plain bit-mask.
const blockMask = ^(BlockSize - 1)

// node is the tagged union at the heart of the rope. It has three
// variants: leaf (wide, uint16-backed), byteLeaf (narrow, uint8-backed,
// the optional optimization from spec §9) and composite. Every
// implementation is immutable: none of these methods is ever called on
// a receiver in order to change it, only to read it or to build a new,
// separate node.
type node interface {
	length() int
	charAt(i int) CodeUnit
	subNode(s, e int) node
	copyTo(srcOff int, dst []CodeUnit, dstOff, count int)
}

// leaf holds a contiguous, immutable run of 16-bit code units.
type leaf struct {
	units []CodeUnit
}

func newLeaf(units []CodeUnit) *leaf {
	return &leaf{units: units}
}

func (l *leaf) length() int { return len(l.units) }

func (l *leaf) charAt(i int) CodeUnit { return l.units[i] }

// subNode returns a node for units[s:e). The full-range case shares the
// receiver by identity; any other range is copied into a fresh leaf, so
// rebalancing a large extracted range is left to whoever concatenates
// it back in (concat re-chunks on its next call via ensureChunked).
func (l *leaf) subNode(s, e int) node {
	if s == 0 && e == len(l.units) {
		return l
	}
	buf := make([]CodeUnit, e-s)
	copy(buf, l.units[s:e])
	return newLeaf(buf)
}

func (l *leaf) copyTo(srcOff int, dst []CodeUnit, dstOff, count int) {
	copy(dst[dstOff:dstOff+count], l.units[srcOff:srcOff+count])
}

// byteLeaf is the optional byte-packed leaf variant (spec §9): a pure
// memory optimization for runs whose code units all fit in a byte. It
// is semantically interchangeable with leaf; concat widens it to leaf
// whenever it must fuse with a wide leaf.
type byteLeaf struct {
	units []uint8
}

func newByteLeaf(units []uint8) *byteLeaf {
	return &byteLeaf{units: units}
}

// fitsByteLeaf reports whether every code unit in units has a zero high
// byte, i.e. whether a byteLeaf can represent the run without loss.
func fitsByteLeaf(units []CodeUnit) bool {
	for _, u := range units {
		if u > 0xFF {
			return false
		}
	}
	return true
}

func (b *byteLeaf) length() int { return len(b.units) }

func (b *byteLeaf) charAt(i int) CodeUnit { return CodeUnit(b.units[i]) }

func (b *byteLeaf) subNode(s, e int) node {
	if s == 0 && e == len(b.units) {
		return b
	}
	buf := make([]uint8, e-s)
	copy(buf, b.units[s:e])
	return newByteLeaf(buf)
}

func (b *byteLeaf) copyTo(srcOff int, dst []CodeUnit, dstOff, count int) {
	for i := 0; i < count; i++ {
		dst[dstOff+i] = CodeUnit(b.units[srcOff+i])
	}
}

// composite is the binary inner node: a cached total length and two
// non-nil children, head and tail. Neither child is ever an empty leaf;
// callers never construct one (there is no public way to build an
// empty leaf or byteLeaf at all).
type composite struct {
	count      int
	head, tail node
}

func newComposite(head, tail node) *composite {
	return &composite{count: head.length() + tail.length(), head: head, tail: tail}
}

func (c *composite) length() int { return c.count }

func (c *composite) charAt(i int) CodeUnit {
	if h := c.head.length(); i < h {
		return c.head.charAt(i)
	} else {
		return c.tail.charAt(i - h)
	}
}

// subNode splits the request at the head/tail boundary. A range that
// straddles the boundary is the one case that can't simply delegate:
// it goes back through concat (spec §4.2), so the two fragments are
// fused or rebalanced by concat's rules instead of being wrapped in a
// bare composite.
func (c *composite) subNode(s, e int) node {
	h := c.head.length()
	switch {
	case e <= h:
		return c.head.subNode(s, e)
	case s >= h:
		return c.tail.subNode(s-h, e-h)
	case s == 0 && e == c.count:
		return c
	default:
		return concatNodes(c.head.subNode(s, h), c.tail.subNode(0, e-h))
	}
}

func (c *composite) copyTo(srcOff int, dst []CodeUnit, dstOff, count int) {
	h := c.head.length()
	switch {
	case srcOff+count <= h:
		c.head.copyTo(srcOff, dst, dstOff, count)
	case srcOff >= h:
		c.tail.copyTo(srcOff-h, dst, dstOff, count)
	default:
		headCount := h - srcOff
		c.head.copyTo(srcOff, dst, dstOff, headCount)
		c.tail.copyTo(0, dst, dstOff+headCount, count-headCount)
	}
}
