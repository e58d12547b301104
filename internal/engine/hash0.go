package engine

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Context carries every input and tunable the fill engine needs. The
// caller (the public argon2 package) is responsible for range-validating
// these fields; the engine assumes they are already sane.
type Context struct {
	Variant Variant
	Lanes   uint32
	Threads uint32
	Time    uint32
	Memory  uint32 // effective memory size in blocks, already a multiple of 4*Lanes
	OutLen  uint32

	Password       []byte
	Salt           []byte
	Secret         []byte
	AssociatedData []byte

	// ClearPassword and ClearSecret request a best-effort zeroing of
	// Password/Secret once Derive no longer needs them. Off by default.
	// This is opportunistic cleanup of the caller's own buffers, not a
	// security guarantee about the working memory matrix, which is
	// never scrubbed.
	ClearPassword bool
	ClearSecret   bool
}

func writeUint32Field(h interface{ Write([]byte) (int, error) }, field []byte) {
	var length [4]byte
	binary.LittleEndian.PutUint32(length[:], uint32(len(field)))
	h.Write(length[:])
	if len(field) > 0 {
		h.Write(field)
	}
}

// initialHash computes H0 by streaming every context parameter through
// Blake2b in a fixed order: lanes, tag length, memory, time, version,
// type, then each of password/salt/secret/associated-data prefixed by
// its own length. Feeding the fields through successive Write calls
// (rather than building one buffer) is what lets the underlying
// Blake2b digest stay oblivious to how its input was chunked.
func initialHash(ctx *Context) [64]byte {
	h, err := blake2b.New512(nil)
	if err != nil {
		panic("engine: blake2b.New512 failed: " + err.Error())
	}

	var u32 [4]byte
	putU32 := func(v uint32) {
		binary.LittleEndian.PutUint32(u32[:], v)
		h.Write(u32[:])
	}

	putU32(ctx.Lanes)
	putU32(ctx.OutLen)
	putU32(ctx.Memory)
	putU32(ctx.Time)
	putU32(Version)
	putU32(uint32(ctx.Variant))

	writeUint32Field(h, ctx.Password)
	writeUint32Field(h, ctx.Salt)
	writeUint32Field(h, ctx.Secret)
	writeUint32Field(h, ctx.AssociatedData)

	var h0 [64]byte
	h.Sum(h0[:0])
	return h0
}

// bootstrapLane derives the first two blocks of a lane from H0:
// B[lane][0] = H'(H0 || 0 || lane, 1024), B[lane][1] = H'(H0 || 1 ||
// lane, 1024). The two calls share a 72-byte buffer whose trailing
// counter/lane words are overwritten in place.
func bootstrapLane(h0 [64]byte, lane uint32, b0, b1 *Block) {
	var buf [72]byte
	copy(buf[:64], h0[:])
	binary.LittleEndian.PutUint32(buf[68:72], lane)

	binary.LittleEndian.PutUint32(buf[64:68], 0)
	b0.setFromBytes(hPrime(buf[:], BlockSize))

	binary.LittleEndian.PutUint32(buf[64:68], 1)
	b1.setFromBytes(hPrime(buf[:], BlockSize))
}
