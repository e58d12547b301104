package engine

import (
	"encoding/hex"
	"fmt"
	"testing"

	"golang.org/x/crypto/blake2b"
)

// TestBlake2bEmptyVector pins down the RFC 7693 Appendix A vector for
// the underlying primitive this package builds on — if
// golang.org/x/crypto/blake2b ever changed behavior underneath us,
// every other vector in this package would silently drift too.
func TestBlake2bEmptyVector(t *testing.T) {
	want := "786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419" +
		"d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce"

	sum := blake2b.Sum512(nil)
	if got := hex.EncodeToString(sum[:]); got != want {
		t.Fatalf("blake2b.Sum512(nil) = %s, want %s", got, want)
	}
}

func TestHPrimeShortFormLengthAndDeterminism(t *testing.T) {
	x := []byte("some input")
	got := hPrime(x, 32)
	if len(got) != 32 {
		t.Fatalf("hPrime produced %d bytes, want 32", len(got))
	}

	again := hPrime(x, 32)
	if hex.EncodeToString(got) != hex.EncodeToString(again) {
		t.Fatal("hPrime is not deterministic")
	}
}

func TestHPrimeOutputLengths(t *testing.T) {
	for _, n := range []uint32{4, 32, 64, 65, 100, 1024, 4096} {
		t.Run(fmt.Sprintf("outlen=%d", n), func(t *testing.T) {
			got := hPrime([]byte("fixed input"), n)
			if uint32(len(got)) != n {
				t.Fatalf("hPrime(_, %d) produced %d bytes", n, len(got))
			}
		})
	}
}

func TestHPrimeChangesWithInput(t *testing.T) {
	a := hPrime([]byte("input A"), 128)
	b := hPrime([]byte("input B"), 128)
	if hex.EncodeToString(a) == hex.EncodeToString(b) {
		t.Fatal("different inputs produced identical hPrime output")
	}
}
