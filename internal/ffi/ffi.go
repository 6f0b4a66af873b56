// Package ffi provides the CGo bridge to the packet C library.
//
// This is the only package in the module that imports "C". Every raw
// pointer crossing happens through one of the small functions below, so
// the unsafe surface stays narrow and auditable. The C sources live in
// this directory and are compiled by cgo together with the package; the
// header is the authoritative description of the Packet memory layout,
// and the Go side never re-declares it by hand.
package ffi

/*
#include <stdlib.h>
#include "packet.h"

#cgo nocallback get_packet_len
#cgo noescape get_packet_len
*/
import "C"
import "unsafe"

// HeaderSize is sizeof(Packet): the length field plus alignment padding
// before the trailing data array.
const HeaderSize = C.sizeof_Packet

// Len calls get_packet_len on a raw packet pointer. A nil pointer reads
// as 0, handled on the C side; any other invalid pointer is undefined
// behavior, which is the caller's contract to uphold.
func Len(ptr unsafe.Pointer) uint16 {
	return uint16(C.get_packet_len(ptr))
}

// Alloc allocates a zeroed packet with room for length trailing int32
// elements and stamps the length field. The memory is C-allocated so
// the pointer may legally cross the boundary and outlive the call.
// Returns nil if the allocator fails. The caller owns the allocation
// and must release it with Free.
func Alloc(length uint16) unsafe.Pointer {
	total := C.size_t(HeaderSize) + C.size_t(length)*C.sizeof_int32_t
	ptr := C.calloc(1, total)
	if ptr == nil {
		return nil
	}
	(*C.Packet)(ptr).length = C.uint16_t(length)
	return ptr
}

// Free releases a packet allocated by Alloc. Safe on nil.
func Free(ptr unsafe.Pointer) {
	C.free(ptr)
}

// Data aliases the trailing data array of a packet as a Go slice of n
// elements. The slice shares memory with the packet: it is valid only
// until the packet is freed, and n must not exceed the element count
// the packet was allocated with.
func Data(ptr unsafe.Pointer, n int) []int32 {
	if ptr == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*int32)(unsafe.Add(ptr, HeaderSize)), n)
}
