// Package memory models the Cairo VM's segmented, write-once memory.
//
// Memory is organised as ordered segments of cells. A cell holds either a
// field element or a relocatable address, and once written it can never be
// rewritten with a different value; the proof system relies on that
// immutability. Every read and write also marks the cell as accessed, which
// the trace generator consumes when laying out the public memory.
package memory

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

var (
	ErrUnknownSegment    = errors.New("unknown memory segment")
	ErrUnknownMemoryCell = errors.New("unknown memory cell")
	ErrMemoryWriteOnce   = errors.New("memory write-once violation")
	ErrCellNotFelt       = errors.New("memory cell does not hold a field element")
	ErrCellNotAddress    = errors.New("memory cell does not hold an address")
)

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellFelt
	cellAddress
)

type cell struct {
	kind cellKind
	felt fp.Element
	addr Relocatable
}

func (c cell) equal(o cell) bool {
	if c.kind != o.kind {
		return false
	}
	switch c.kind {
	case cellFelt:
		return c.felt.Equal(&o.felt)
	case cellAddress:
		return c.addr == o.addr
	}
	return true
}

func (c cell) String() string {
	switch c.kind {
	case cellFelt:
		return c.felt.String()
	case cellAddress:
		return c.addr.String()
	}
	return "<empty>"
}

// Memory is the VM's address space. The zero value is not usable; call New.
type Memory struct {
	segments [][]cell
	accessed []*bitset.BitSet
}

func New() *Memory {
	return &Memory{}
}

// AddSegment appends a fresh empty segment and returns its base address.
func (m *Memory) AddSegment() Relocatable {
	m.segments = append(m.segments, nil)
	m.accessed = append(m.accessed, bitset.New(0))
	return NewRelocatable(len(m.segments)-1, 0)
}

// NumSegments returns the number of allocated segments.
func (m *Memory) NumSegments() int {
	return len(m.segments)
}

// AccessedCount returns the number of distinct cells of the segment that
// have been read or written so far.
func (m *Memory) AccessedCount(segmentIndex int) (uint, error) {
	if segmentIndex < 0 || segmentIndex >= len(m.segments) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownSegment, segmentIndex)
	}
	return m.accessed[segmentIndex].Count(), nil
}

func (m *Memory) at(addr Relocatable) (cell, error) {
	if addr.SegmentIndex < 0 || addr.SegmentIndex >= len(m.segments) {
		return cell{}, fmt.Errorf("%w: %s", ErrUnknownSegment, addr)
	}
	seg := m.segments[addr.SegmentIndex]
	if addr.Offset >= uint64(len(seg)) || seg[addr.Offset].kind == cellEmpty {
		return cell{}, fmt.Errorf("%w: %s", ErrUnknownMemoryCell, addr)
	}
	m.accessed[addr.SegmentIndex].Set(uint(addr.Offset))
	return seg[addr.Offset], nil
}

// Read returns the field element stored at addr. Reading a cell that was
// never written, or a cell holding an address, is an error.
func (m *Memory) Read(addr Relocatable) (fp.Element, error) {
	c, err := m.at(addr)
	if err != nil {
		return fp.Element{}, err
	}
	if c.kind != cellFelt {
		return fp.Element{}, fmt.Errorf("%w: %s", ErrCellNotFelt, addr)
	}
	return c.felt, nil
}

// ReadAddress returns the relocatable address stored at addr.
func (m *Memory) ReadAddress(addr Relocatable) (Relocatable, error) {
	c, err := m.at(addr)
	if err != nil {
		return Relocatable{}, err
	}
	if c.kind != cellAddress {
		return Relocatable{}, fmt.Errorf("%w: %s", ErrCellNotAddress, addr)
	}
	return c.addr, nil
}

func (m *Memory) write(addr Relocatable, c cell) error {
	if addr.SegmentIndex < 0 || addr.SegmentIndex >= len(m.segments) {
		return fmt.Errorf("%w: %s", ErrUnknownSegment, addr)
	}
	seg := m.segments[addr.SegmentIndex]
	for uint64(len(seg)) <= addr.Offset {
		seg = append(seg, cell{})
	}
	if prev := seg[addr.Offset]; prev.kind != cellEmpty && !prev.equal(c) {
		return fmt.Errorf("%w: %s holds %s, refusing %s", ErrMemoryWriteOnce, addr, prev, c)
	}
	seg[addr.Offset] = c
	m.segments[addr.SegmentIndex] = seg
	m.accessed[addr.SegmentIndex].Set(uint(addr.Offset))
	return nil
}

// Write stores a field element at addr. Rewriting an occupied cell with a
// different value fails with ErrMemoryWriteOnce; rewriting it with the same
// value is a no-op and succeeds.
func (m *Memory) Write(addr Relocatable, v fp.Element) error {
	return m.write(addr, cell{kind: cellFelt, felt: v})
}

// WriteAddress stores a relocatable address at addr, under the same
// write-once rule as Write.
func (m *Memory) WriteAddress(addr Relocatable, v Relocatable) error {
	return m.write(addr, cell{kind: cellAddress, addr: v})
}
