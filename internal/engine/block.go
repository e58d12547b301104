// Package engine implements the Argon2 memory-fill state machine: the
// initial hash bootstrap, the fBlaMka compression function, the three
// indexing disciplines (data-dependent, data-independent, hybrid), and
// Blake2b-long (H'). It has no notion of PHC strings or parameter
// validation — those live one layer up, in the public argon2 package.
package engine

import "encoding/binary"

const (
	// BlockSize is the size in bytes of one Argon2 memory block.
	BlockSize = 1024

	// QWordsPerBlock is BlockSize expressed in 64-bit words.
	QWordsPerBlock = BlockSize / 8
)

// Block is one slot of the memory matrix: 1024 bytes viewed as 128
// little-endian uint64 words. The fill engine owns every Block it
// allocates; callers never see this type.
type Block [QWordsPerBlock]uint64

// xor sets b = b XOR other.
func (b *Block) xor(other *Block) {
	for i := range b {
		b[i] ^= other[i]
	}
}

// setFromBytes decodes exactly BlockSize little-endian bytes into b.
func (b *Block) setFromBytes(data []byte) {
	for i := range b {
		b[i] = binary.LittleEndian.Uint64(data[i*8 : i*8+8])
	}
}

// appendBytes appends the little-endian encoding of b to dst.
func (b *Block) appendBytes(dst []byte) []byte {
	var tmp [8]byte
	for _, w := range b {
		binary.LittleEndian.PutUint64(tmp[:], w)
		dst = append(dst, tmp[:]...)
	}
	return dst
}
