// Package cpacket provides Go bindings for a tiny C packet library.
//
// The native library exposes a single function, get_packet_len, which
// reads the 16-bit length field of a caller-supplied packet. A packet
// is a fixed header followed by a variable number of int32 payload
// elements:
//
//	typedef struct {
//	    uint16_t length;
//	    int32_t  data[0];
//	} Packet;
//
// The Packet type in this package owns a native allocation with that
// layout and is the only holder of the raw pointer: application code
// works with slices, indices, and iterators, and every boundary
// crossing goes through the narrow bridge in internal/ffi.
//
// # Usage
//
//	p, err := cpacket.FromSlice([]int32{1, 2, 3})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
//
//	fmt.Println(p.Len())  // 3
//	fmt.Println(p.Data()) // [1 2 3]
//
// A Packet is safe to use from multiple goroutines as long as no
// goroutine mutates it concurrently; distinct Packets need no
// coordination at all.
package cpacket

import (
	"fmt"
	"iter"
	"math"
	"unsafe"

	"github.com/guuzaa/cpacket/internal/ffi"
)

// Packet owns one native packet allocation. The zero value is unusable;
// construct with New or FromSlice and release with Close.
type Packet struct {
	ptr unsafe.Pointer
}

// New allocates a packet with the given length and a zeroed payload.
func New(length uint16) (*Packet, error) {
	ptr := ffi.Alloc(length)
	if ptr == nil {
		return nil, ErrAllocFailed
	}
	return &Packet{ptr: ptr}, nil
}

// FromSlice allocates a packet holding a copy of data.
func FromSlice(data []int32) (*Packet, error) {
	if len(data) > math.MaxUint16 {
		return nil, ErrTooLarge
	}
	p, err := New(uint16(len(data)))
	if err != nil {
		return nil, err
	}
	copy(p.Data(), data)
	return p, nil
}

// Len returns the packet's declared length by calling the native
// get_packet_len. A nil or closed packet reads as 0, which is the
// library's null-pointer contract.
func (p *Packet) Len() uint16 {
	if p == nil {
		return 0
	}
	return ffi.Len(p.ptr)
}

// IsEmpty reports whether the packet has a zero-length payload.
func (p *Packet) IsEmpty() bool {
	return p.Len() == 0
}

// Data returns the payload as a mutable slice sharing memory with the
// native allocation. The slice is valid until Close. A nil, closed, or
// empty packet yields an empty slice.
func (p *Packet) Data() []int32 {
	if p == nil {
		return nil
	}
	return ffi.Data(p.ptr, int(p.Len()))
}

// At returns the payload element at index i, reporting whether the
// index is in range.
func (p *Packet) At(i int) (int32, bool) {
	data := p.Data()
	if i < 0 || i >= len(data) {
		return 0, false
	}
	return data[i], true
}

// All iterates over the payload as (index, value) pairs.
func (p *Packet) All() iter.Seq2[int, int32] {
	return func(yield func(int, int32) bool) {
		for i, v := range p.Data() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Pointer returns the raw native address of the packet, or nil if the
// packet is closed. Callers passing it elsewhere take on the full
// foreign-memory contract: the pointee must not be used after Close,
// and nothing validates the layout on the far side.
func (p *Packet) Pointer() unsafe.Pointer {
	if p == nil {
		return nil
	}
	return p.ptr
}

// String formats the packet as Packet(length: N, data: [...]).
func (p *Packet) String() string {
	return fmt.Sprintf("Packet(length: %d, data: %v)", p.Len(), p.Data())
}

// Close releases the native allocation. It is idempotent and safe on a
// nil receiver; after Close the packet reads as empty.
func (p *Packet) Close() error {
	if p == nil || p.ptr == nil {
		return nil
	}
	ffi.Free(p.ptr)
	p.ptr = nil
	return nil
}
