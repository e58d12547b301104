package engine

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// hPrime is Argon2's variable-length derivation (H', a.k.a.
// Blake2b-long): it expands x into exactly outLen bytes, something
// Blake2b alone cannot do past its native 64-byte digest.
//
// outLen <= 64 is a single Blake2b call; longer outputs are produced by
// chaining 64-byte digests and keeping the first 32 bytes of each link,
// except the final one, a Blake2b digest whose output length is
// whatever remains (always in (32, 64]), which is emitted in full.
func hPrime(x []byte, outLen uint32) []byte {
	prefixed := make([]byte, 4+len(x))
	binary.LittleEndian.PutUint32(prefixed, outLen)
	copy(prefixed[4:], x)

	if outLen <= 64 {
		h, err := blake2b.New(int(outLen), nil)
		if err != nil {
			panic("engine: blake2b.New rejected a valid output length: " + err.Error())
		}
		h.Write(prefixed)
		return h.Sum(nil)
	}

	out := make([]byte, 0, outLen)
	v := blake2b.Sum512(prefixed)
	out = append(out, v[:32]...)

	for uint32(len(out))+64 < outLen {
		v = blake2b.Sum512(v[:])
		out = append(out, v[:32]...)
	}

	tail := outLen - uint32(len(out))
	h, err := blake2b.New(int(tail), nil)
	if err != nil {
		panic("engine: blake2b.New rejected a valid tail length: " + err.Error())
	}
	h.Write(v[:])
	return h.Sum(out)
}
