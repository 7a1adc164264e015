package rope

// chunkNode splits a flat leaf (src, restricted to [offset, offset+length))
// into a balanced tree of block-sized leaves. It always splits at a
// block-aligned midpoint so that future concats line up with block
// boundaries and keep finding fuse opportunities.
func chunkNode(src node, offset, length int) node {
	if length <= BlockSize {
		return src.subNode(offset, offset+length)
	}
	half := ((length + BlockSize) >> 1) & blockMask
	left := chunkNode(src, offset, half)
	right := chunkNode(src, offset+half, length-half)
	return newComposite(left, right)
}

// ensureChunked breaks a single oversized flat leaf into a balanced
// tree of block-sized leaves. Any other shape of root, including an
// already-chunked tree or a small leaf, is returned unchanged (by
// identity) so callers can cheaply detect "nothing to do".
func ensureChunked(root node) node {
	switch root.(type) {
	case *leaf, *byteLeaf:
		if root.length() > BlockSize {
			return chunkNode(root, 0, root.length())
		}
	}
	return root
}
