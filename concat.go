package rope

// concatNodes is the core combining operator (spec §4.3). It is called
// only with non-empty n1, n2. When one side is more than twice the other
// and the larger side is a composite, the smaller side is merged into
// one child of the larger side (after at most one rotation). When the
// larger side is a leaf, the pair is wrapped as it is, so the returned
// composite is not always weakly balanced: a 64-unit leaf followed by a
// 1-unit leaf yields a (64, 1) composite.
func concatNodes(n1, n2 node) node {
	total := n1.length() + n2.length()
	if total <= BlockSize {
		return fuse(n1, n2)
	}

	head, tail := n1, n2

	switch {
	case head.length()*2 < tail.length():
		if tc, ok := tail.(*composite); ok {
			if tc.head.length() > tc.tail.length() {
				tc = rotateRight(tc)
			}
			head = concatNodes(head, tc.head)
			tail = tc.tail
		}

	case tail.length()*2 < head.length():
		if hc, ok := head.(*composite); ok {
			if hc.tail.length() > hc.head.length() {
				hc = rotateLeft(hc)
			}
			tail = concatNodes(hc.tail, tail)
			head = hc.head
		}
	}

	return newComposite(head, tail)
}

// fuse merges two small nodes into a single leaf (spec §4.3 Case A).
// Two byteLeafs fuse into a byteLeaf; any other pairing widens to a
// plain leaf.
func fuse(n1, n2 node) node {
	if b1, ok1 := n1.(*byteLeaf); ok1 {
		if b2, ok2 := n2.(*byteLeaf); ok2 {
			buf := make([]uint8, len(b1.units)+len(b2.units))
			copy(buf, b1.units)
			copy(buf[len(b1.units):], b2.units)
			return newByteLeaf(buf)
		}
	}

	total := n1.length() + n2.length()
	buf := make([]CodeUnit, total)
	n1.copyTo(0, buf, 0, n1.length())
	n2.copyTo(0, buf, n1.length(), n2.length())
	return newLeaf(buf)
}
