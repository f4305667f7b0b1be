package memory

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrOffsetUnderflow = errors.New("relocatable offset underflow")
	ErrOffsetOverflow  = errors.New("relocatable offset overflow")
)

// Relocatable is a (segment, offset) pair into the VM's memory. Segment
// indices are assigned by the host's allocator; the offset counts cells
// from the start of the segment.
type Relocatable struct {
	SegmentIndex int
	Offset       uint64
}

func NewRelocatable(segmentIndex int, offset uint64) Relocatable {
	return Relocatable{SegmentIndex: segmentIndex, Offset: offset}
}

// Add returns the address off cells further into the same segment. Offsets
// never cross segment boundaries; stepping before the start of the segment
// or past the maximum offset is an error.
func (r Relocatable) Add(off int64) (Relocatable, error) {
	if off < 0 {
		d := uint64(-off)
		if d > r.Offset {
			return Relocatable{}, fmt.Errorf("%w: %s%+d", ErrOffsetUnderflow, r, off)
		}
		return Relocatable{SegmentIndex: r.SegmentIndex, Offset: r.Offset - d}, nil
	}
	if r.Offset > math.MaxUint64-uint64(off) {
		return Relocatable{}, fmt.Errorf("%w: %s%+d", ErrOffsetOverflow, r, off)
	}
	return Relocatable{SegmentIndex: r.SegmentIndex, Offset: r.Offset + uint64(off)}, nil
}

func (r Relocatable) String() string {
	return fmt.Sprintf("%d:%d", r.SegmentIndex, r.Offset)
}
