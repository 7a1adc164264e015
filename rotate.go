package rope

// rotateRight is applicable when c.head is itself a composite P =
// (A, B): it produces (A, (B, c.tail)). concat uses it to shift the
// merge point of a right-heavy pair onto the smaller part. If c.head is
// a leaf, rotation is a no-op and c is returned unchanged.
func rotateRight(c *composite) *composite {
	p, ok := c.head.(*composite)
	if !ok {
		return c
	}
	return newComposite(p.head, newComposite(p.tail, c.tail))
}

// rotateLeft is applicable when c.tail is itself a composite Q =
// (B, C): it produces ((c.head, B), C). If c.tail is a leaf, rotation
// is a no-op and c is returned unchanged.
func rotateLeft(c *composite) *composite {
	q, ok := c.tail.(*composite)
	if !ok {
		return c
	}
	return newComposite(newComposite(c.head, q.head), q.tail)
}
