// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// ToVarint64 - convert a 64 bit unsigned integer to Varint64
//
// seven bits per byte, least significant group first, top bit set
// on every byte except the last; the ninth byte carries eight bits
func ToVarint64(value uint64) []byte {
	result := make([]byte, 0, Varint64MaximumBytes)
	for i := 1; i < Varint64MaximumBytes; i += 1 {
		if value < 0x80 {
			return append(result, byte(value))
		}
		result = append(result, byte(value)|0x80)
		value >>= 7
	}
	return append(result, byte(value))
}

// FromVarint64 - convert an array of up to Varint64MaximumBytes to a uint64
//
// also return the number of bytes used as second value
// returns 0, 0 if varint64 buffer is truncated
func FromVarint64(buffer []byte) (uint64, int) {
	result := uint64(0)
	shift := uint(0)

	for count := 1; count <= len(buffer) && count <= Varint64MaximumBytes; count += 1 {
		b := uint64(buffer[count-1])
		if Varint64MaximumBytes == count {
			return result | b<<shift, count
		}
		result |= (b & 0x7f) << shift
		if 0 == b&0x80 {
			return result, count
		}
		shift += 7
	}
	return 0, 0
}

// PackBytes - length prefixed byte data
func PackBytes(data []byte) []byte {
	return append(ToVarint64(uint64(len(data))), data...)
}

// UnpackBytes - extract length prefixed byte data from the start of a buffer
//
// returns the data, the total bytes consumed and false if the buffer is truncated
func UnpackBytes(buffer []byte) ([]byte, int, bool) {
	length, n := FromVarint64(buffer)
	if 0 == n {
		return nil, 0, false
	}
	end := uint64(n) + length
	if length > uint64(len(buffer)) || end > uint64(len(buffer)) {
		return nil, 0, false
	}
	data := make([]byte, length)
	copy(data, buffer[n:end])
	return data, int(end), true
}
