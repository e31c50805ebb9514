package vcache

// DirectMapped simulates a direct-mapped cache of fixed-size lines, per
// spec §4.7: a cache line's tag lives at slot (lineAddress mod lineCount);
// touching a line whose current occupant tag doesn't match is a miss that
// costs one full line fetch.
type DirectMapped struct {
	lineBytes int
	lineCount int
	tags      []int64
}

// NewDirectMapped creates a direct-mapped cache simulator with lineCount
// lines of lineBytes bytes each.
func NewDirectMapped(lineCount, lineBytes int) *DirectMapped {
	tags := make([]int64, lineCount)
	for i := range tags {
		tags[i] = -1
	}
	return &DirectMapped{lineBytes: lineBytes, lineCount: lineCount, tags: tags}
}

// TouchRange marks the byte range [start, end) as accessed and returns the
// number of bytes fetched — lineBytes for every lineBytes-aligned line in the
// range whose tag was not already resident at its modular slot.
func (c *DirectMapped) TouchRange(start, end int) uint32 {
	if end <= start {
		return 0
	}

	var fetched uint32
	firstLine := start / c.lineBytes
	lastLine := (end - 1) / c.lineBytes
	for line := firstLine; line <= lastLine; line++ {
		slot := line % c.lineCount
		tag := int64(line)
		if c.tags[slot] != tag {
			c.tags[slot] = tag
			fetched += uint32(c.lineBytes)
		}
	}
	return fetched
}
