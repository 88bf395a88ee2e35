package lbytes

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadUInt16(t *testing.T) {
	r := NewBytesReader([]byte{0x10, 0x00, 0x00, 0x10})
	v1, err := r.ReadUInt16(binary.LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0010), v1)
	v2, err := r.ReadUInt16(binary.BigEndian)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0010), v2)
}

func TestReadUInt32(t *testing.T) {
	r := NewBytesReader([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	v, err := r.ReadUInt32(binary.LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFFFFFFFF), v)
}

func TestReadBytesShort(t *testing.T) {
	r := NewBytesReader([]byte{0x01, 0x02})
	_, err := r.ReadBytes(4)
	assert.Error(t, err)
}

func TestRewind(t *testing.T) {
	r := NewBytesReader([]byte{0x01, 0x02, 0x03, 0x04})
	_, err := r.ReadUInt16(binary.LittleEndian)
	require.NoError(t, err)
	require.NoError(t, r.Rewind(2))
	bs, err := r.ReadBytes(4)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, bs)
}

func TestEncodeUInt16RoundTrip(t *testing.T) {
	bs := EncodeUInt16(binary.LittleEndian, 0x0028)
	assert.Equal(t, []byte{0x28, 0x00}, bs)
	bs = EncodeUInt32(binary.BigEndian, 1)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x01}, bs)
}
