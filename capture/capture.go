package capture

// Record pairs the pin vector driven into the device with the pin
// state observed at the same instant. For input pins Out mirrors In;
// for output pins Out carries whatever the device drove.
type Record struct {
	In  uint32
	Out uint32
}

// Capture is an ordered sequence of records plus the record count the
// capture header promised. Records are never reordered; the analysis
// core depends on the walking binary enumeration order of the source.
type Capture struct {
	records  []Record
	expected int
}

// New returns an empty capture expecting n records.
func New(n int) *Capture {
	return &Capture{
		records:  make([]Record, 0, n),
		expected: n,
	}
}

// Push appends a record. Pushes beyond the expected count are kept;
// the mismatch is the caller's diagnostic to raise.
func (c *Capture) Push(in, out uint32) {
	c.records = append(c.records, Record{In: in, Out: out})
}

// Len returns the number of records actually present.
func (c *Capture) Len() int {
	return len(c.records)
}

// Expected returns the record count announced by the capture header.
func (c *Capture) Expected() int {
	return c.expected
}

// Get returns record k.
func (c *Capture) Get(k int) (in, out uint32) {
	r := c.records[k]
	return r.In, r.Out
}

// Record returns record k by value.
func (c *Capture) Record(k int) Record {
	return c.records[k]
}
