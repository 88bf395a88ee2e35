package lbytes

import (
	"encoding/binary"
)

func EncodeUInt16(order binary.ByteOrder, value uint16) []byte {
	bs := make([]byte, 2)
	order.PutUint16(bs, value)
	return bs
}

func EncodeUInt32(order binary.ByteOrder, value uint32) []byte {
	bs := make([]byte, 4)
	order.PutUint32(bs, value)
	return bs
}

func CreateZeroBytes(n int) []byte {
	return make([]byte, n)
}
