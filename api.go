package argon2

import (
	"crypto/subtle"

	"github.com/fleximus/argon2/internal/engine"
)

// HashDRaw derives a raw outLen-byte digest using Argon2d.
func HashDRaw(timeCost, memoryCost, parallelism uint32, password, salt []byte, outLen uint32) ([]byte, error) {
	return hashRaw(engine.VariantD, timeCost, memoryCost, parallelism, password, salt, outLen)
}

// HashIRaw derives a raw outLen-byte digest using Argon2i.
func HashIRaw(timeCost, memoryCost, parallelism uint32, password, salt []byte, outLen uint32) ([]byte, error) {
	return hashRaw(engine.VariantI, timeCost, memoryCost, parallelism, password, salt, outLen)
}

// HashIDRaw derives a raw outLen-byte digest using Argon2id.
func HashIDRaw(timeCost, memoryCost, parallelism uint32, password, salt []byte, outLen uint32) ([]byte, error) {
	return hashRaw(engine.VariantID, timeCost, memoryCost, parallelism, password, salt, outLen)
}

// HashD derives a digest using Argon2d and renders it as a PHC string.
func HashD(timeCost, memoryCost, parallelism uint32, password, salt []byte, outLen uint32) (string, error) {
	return hashPHC(engine.VariantD, timeCost, memoryCost, parallelism, password, salt, outLen)
}

// HashI derives a digest using Argon2i and renders it as a PHC string.
func HashI(timeCost, memoryCost, parallelism uint32, password, salt []byte, outLen uint32) (string, error) {
	return hashPHC(engine.VariantI, timeCost, memoryCost, parallelism, password, salt, outLen)
}

// HashID derives a digest using Argon2id and renders it as a PHC string.
func HashID(timeCost, memoryCost, parallelism uint32, password, salt []byte, outLen uint32) (string, error) {
	return hashPHC(engine.VariantID, timeCost, memoryCost, parallelism, password, salt, outLen)
}

// Hash is the batteries-included entry point: Argon2id with
// DefaultParams' cost, requiring a salt of at least 16 bytes.
func Hash(password, salt []byte) (string, error) {
	if len(salt) < 16 {
		return "", newErr(ErrKindSaltTooShort, "salt")
	}
	p := DefaultParams()
	return HashID(p.Time, p.Memory, p.Parallelism, password, salt, p.KeyLength)
}

// HashWithParams is Hash with caller-supplied cost parameters, still
// pinned to Argon2id and the same minimum-16-byte salt rule.
func HashWithParams(password, salt []byte, p Params) (string, error) {
	if len(salt) < 16 {
		return "", newErr(ErrKindSaltTooShort, "salt")
	}
	return HashID(p.Time, p.Memory, p.Parallelism, password, salt, p.KeyLength)
}

func hashRaw(v engine.Variant, timeCost, memoryCost, parallelism uint32, password, salt []byte, outLen uint32) ([]byte, error) {
	return DeriveRaw(v, timeCost, memoryCost, parallelism, parallelism, password, salt, outLen)
}

// DeriveRaw is the full derivation surface, distinguishing lane count
// from worker count: threads bounds how many lanes are filled
// concurrently per slice but does not change the digest, since every
// lane schedule within a slice produces the same bytes.
func DeriveRaw(v Variant, timeCost, memoryCost, lanes, threads uint32, password, salt []byte, outLen uint32) ([]byte, error) {
	if err := validate(password, salt, timeCost, memoryCost, lanes, threads, outLen); err != nil {
		return nil, err
	}
	ctx := newContext(v, timeCost, memoryCost, lanes, threads, outLen, password, salt, nil, nil)
	return engine.Derive(ctx), nil
}

func hashPHC(v engine.Variant, timeCost, memoryCost, parallelism uint32, password, salt []byte, outLen uint32) (string, error) {
	digest, err := hashRaw(v, timeCost, memoryCost, parallelism, password, salt, outLen)
	if err != nil {
		return "", err
	}
	rec := phcRecord{
		variant: v,
		version: engine.Version,
		memory:  effectiveMemory(memoryCost, parallelism),
		time:    timeCost,
		lanes:   parallelism,
		salt:    salt,
		hash:    digest,
	}
	return encodePHC(rec)
}

// VerifyD verifies encoded (which must be an Argon2d hash) against
// password in constant time, re-deriving with the string's own
// parameters.
func VerifyD(encoded string, password []byte) (bool, error) {
	return verifyExpecting(encoded, password, &engine.VariantD)
}

// VerifyI verifies an Argon2i-encoded hash.
func VerifyI(encoded string, password []byte) (bool, error) {
	return verifyExpecting(encoded, password, &engine.VariantI)
}

// VerifyID verifies an Argon2id-encoded hash.
func VerifyID(encoded string, password []byte) (bool, error) {
	return verifyExpecting(encoded, password, &engine.VariantID)
}

// Verify auto-detects the variant from the PHC string and verifies
// password against it.
func Verify(encoded string, password []byte) (bool, error) {
	return verifyExpecting(encoded, password, nil)
}

// VerifyExpected verifies encoded against password, additionally
// failing with ErrIncorrectType if the string's variant does not match
// expected.
func VerifyExpected(encoded string, password []byte, expected Variant) (bool, error) {
	ev := engine.Variant(expected)
	return verifyExpecting(encoded, password, &ev)
}

// Variant mirrors the engine's variant tag for callers who need to name
// one without importing the internal package.
type Variant = engine.Variant

const (
	VariantD  = engine.VariantD
	VariantI  = engine.VariantI
	VariantID = engine.VariantID
)

func verifyExpecting(encoded string, password []byte, expected *engine.Variant) (bool, error) {
	rec, err := decodePHC(encoded)
	if err != nil {
		return false, err
	}
	if expected != nil && rec.variant != *expected {
		return false, ErrIncorrectType
	}

	// The engine does no range checks of its own, so the decoded costs are
	// checked here; salt and hash are used as recovered, as long as the
	// hash is not empty.
	switch {
	case rec.time < minTime:
		return false, newErr(ErrKindTimeTooSmall, "time")
	case rec.lanes < minLanes:
		return false, newErr(ErrKindLanesTooFew, "lanes")
	case rec.lanes > maxLanes:
		return false, newErr(ErrKindLanesTooMany, "lanes")
	case len(rec.hash) == 0:
		return false, newErr(ErrKindOutputTooShort, "output")
	}

	ctx := newContext(rec.variant, rec.time, rec.memory, rec.lanes, rec.lanes,
		uint32(len(rec.hash)), password, rec.salt, nil, nil)
	recomputed := engine.Derive(ctx)

	if constantTimeEqual(recomputed, rec.hash) {
		return true, nil
	}
	return false, ErrVerifyMismatch
}

// constantTimeEqual compares the full length of both slices regardless
// of where they first differ, to avoid leaking the mismatch position
// through timing.
func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
