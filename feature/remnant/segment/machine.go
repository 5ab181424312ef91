package segment

import "strings"

// State is the capture state of one format machine.
type State int

const (
	// Idle means the machine waits for its session-start marker.
	Idle State = iota
	// Capturing means the machine is inside a session.
	Capturing
)

func (s State) String() string {
	if s == Capturing {
		return "capturing"
	}
	return "idle"
}

// capture is the state shared by both format machines: the session state,
// the lines seen before the site is known and the bound site address.
type capture struct {
	state  State
	prebuf []string
	bound  string
}

func (c *capture) begin(line string) {
	c.state = Capturing
	c.bound = ""
	c.prebuf = append(c.prebuf[:0], line)
}

func (c *capture) reset() {
	c.state = Idle
	c.bound = ""
	c.prebuf = c.prebuf[:0]
}

// bind attaches the session to address and hands back the buffered lines.
func (c *capture) bind(address string) []string {
	c.bound = address
	flushed := make([]string, len(c.prebuf))
	copy(flushed, c.prebuf)
	c.prebuf = c.prebuf[:0]
	return flushed
}

// callMachine follows WASON SetupApo sessions.
type callMachine struct {
	capture
}

func (m *callMachine) feed(line string, out *Buckets, sites map[string]string) {
	if reCallStart.MatchString(line) {
		m.begin(line)
	}

	if reCallEnd.MatchString(line) {
		if m.state == Capturing && m.bound != "" {
			bucket := out.Ensure(m.bound, sites)
			bucket.CallLogLines = append(bucket.CallLogLines, line)
		}
		m.reset()
		return
	}

	if m.state != Capturing || !strings.HasPrefix(line, CallLogTag) {
		return
	}

	if m.bound != "" {
		bucket := out.Ensure(m.bound, sites)
		bucket.CallLogLines = append(bucket.CallLogLines, line)
		return
	}

	m.prebuf = append(m.prebuf, line)
	if !IsDescriptorLine(line) {
		return
	}
	desc, ok := ParseDescriptor(line)
	if !ok {
		return
	}
	bucket := out.Ensure(desc.FirstAddress, sites)
	bucket.CallLogLines = append(bucket.CallLogLines, m.bind(desc.FirstAddress)...)
}

// inventoryMachine follows APOPLUS "show all och-inst" sessions.
type inventoryMachine struct {
	capture
}

func (m *inventoryMachine) feed(line string, out *Buckets, sites map[string]string) {
	if reInvStart.MatchString(line) {
		m.begin(line)
		return
	}

	if reInvEnd.MatchString(line) {
		if m.state == Capturing && m.bound != "" {
			bucket := out.Ensure(m.bound, sites)
			bucket.InventoryLines = append(bucket.InventoryLines, line)
		}
		m.reset()
		return
	}

	if m.state != Capturing || !strings.HasPrefix(line, InventoryTag) {
		return
	}

	if m.bound == "" {
		m.prebuf = append(m.prebuf, line)
		if addr, matched := ParseTopNeIP(line); matched && addr != "" {
			bucket := out.Ensure(addr, sites)
			bucket.InventoryLines = append(bucket.InventoryLines, m.bind(addr)...)
		}
		return
	}

	bucket := out.Ensure(m.bound, sites)
	bucket.InventoryLines = append(bucket.InventoryLines, line)
	if row, ok := ParseInventoryRow(line); ok {
		bucket.InventoryRows = append(bucket.InventoryRows, row)
	}
}
