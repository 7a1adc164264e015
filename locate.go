package rope

// locate walks from root to the leaf owning index, returning that leaf
// node (a *leaf or *byteLeaf) and the base offset at which it starts.
// Preconditions: root != nil, 0 <= index < root.length(). Complexity is
// O(depth).
func locate(root node, index int) (leafNode node, base int) {
	n := root
	for {
		c, ok := n.(*composite)
		if !ok {
			return n, base
		}
		if h := c.head.length(); index < h {
			n = c.head
		} else {
			index -= h
			base += h
			n = c.tail
		}
	}
}
