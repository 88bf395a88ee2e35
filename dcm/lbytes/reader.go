package lbytes

import (
	"bytes"
	"encoding/binary"
	"io"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

func (r *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	if n == 0 {
		return bs, nil
	}
	read, err := io.ReadFull(r, bs)
	if err != nil {
		return nil, err
	}
	if read != n {
		return nil, io.ErrUnexpectedEOF
	}
	return bs, nil
}

func (r *Reader) ReadString(n int) (string, error) {
	bs, err := r.ReadBytes(n)
	if err != nil {
		return "", err
	}
	return string(bs), nil
}

func (r *Reader) ReadUInt16(order binary.ByteOrder) (uint16, error) {
	bs, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return order.Uint16(bs), nil
}

func (r *Reader) ReadUInt32(order binary.ByteOrder) (uint32, error) {
	bs, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return order.Uint32(bs), nil
}

// Rewind seeks backwards from the current position. The codec uses it after
// peeking a group number or an item delimiter.
func (r *Reader) Rewind(n int) error {
	_, err := r.Seek(int64(-n), io.SeekCurrent)
	return err
}
