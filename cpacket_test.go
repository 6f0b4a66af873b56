package cpacket_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guuzaa/cpacket"
)

func TestPacketBasic(t *testing.T) {
	p, err := cpacket.New(3)
	require.NoError(t, err)
	defer p.Close()

	data := p.Data()
	data[0] = 1
	data[1] = 2
	data[2] = 3

	assert.Equal(t, uint16(3), p.Len())
	assert.False(t, p.IsEmpty())
	assert.Equal(t, []int32{1, 2, 3}, p.Data())

	var collected []int32
	for _, v := range p.All() {
		collected = append(collected, v)
	}
	assert.Equal(t, []int32{1, 2, 3}, collected)
}

func TestPacketZeroLength(t *testing.T) {
	p, err := cpacket.New(0)
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, uint16(0), p.Len())
	assert.True(t, p.IsEmpty())
	assert.Empty(t, p.Data())

	_, ok := p.At(3)
	assert.False(t, ok)
}

func TestPacketMaxLength(t *testing.T) {
	p, err := cpacket.New(65535)
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, uint16(65535), p.Len())
	assert.Len(t, p.Data(), 65535)
}

func TestFromSlice(t *testing.T) {
	p, err := cpacket.FromSlice([]int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, uint16(10), p.Len())
	assert.False(t, p.IsEmpty())
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, p.Data())

	v, ok := p.At(0)
	require.True(t, ok)
	assert.Equal(t, int32(1), v)

	v, ok = p.At(9)
	require.True(t, ok)
	assert.Equal(t, int32(10), v)

	_, ok = p.At(10)
	assert.False(t, ok)
	_, ok = p.At(-1)
	assert.False(t, ok)
}

func TestFromSliceTooLarge(t *testing.T) {
	_, err := cpacket.FromSlice(make([]int32, 65536))
	assert.ErrorIs(t, err, cpacket.ErrTooLarge)
}

func TestLenIndependentOfPayload(t *testing.T) {
	p, err := cpacket.New(42)
	require.NoError(t, err)
	defer p.Close()

	for i := range p.Data() {
		p.Data()[i] = int32(-1 - i)
	}
	assert.Equal(t, uint16(42), p.Len())
	// Reading the length twice must agree and leave the payload alone.
	assert.Equal(t, p.Len(), p.Len())
	assert.Equal(t, int32(-1), p.Data()[0])
}

func TestCloseIdempotent(t *testing.T) {
	p, err := cpacket.FromSlice([]int32{7, 8, 9})
	require.NoError(t, err)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	assert.Equal(t, uint16(0), p.Len())
	assert.True(t, p.IsEmpty())
	assert.Empty(t, p.Data())
	assert.Nil(t, p.Pointer())

	_, ok := p.At(0)
	assert.False(t, ok)
}

func TestNilPacket(t *testing.T) {
	var p *cpacket.Packet

	assert.Equal(t, uint16(0), p.Len())
	assert.True(t, p.IsEmpty())
	assert.Nil(t, p.Data())
	assert.Nil(t, p.Pointer())
	assert.NoError(t, p.Close())
}

func TestPacketString(t *testing.T) {
	p, err := cpacket.FromSlice([]int32{1, 2, 3})
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, "Packet(length: 3, data: [1 2 3])", p.String())

	empty, err := cpacket.New(0)
	require.NoError(t, err)
	defer empty.Close()

	assert.Equal(t, "Packet(length: 0, data: [])", empty.String())
}
