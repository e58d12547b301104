package argon2

import "github.com/fleximus/argon2/internal/engine"

// Parameter limits. Upper bounds are the u32 maxima; the effective
// memory floor is enforced per-call since it depends on the lane count.
const (
	minSaltLength = 8
	minOutputLen  = 4
	minTime       = 1
	minMemoryAbs  = 8
	minLanes      = 1
	maxLanes      = 1<<24 - 1

	maxU32 = 1<<32 - 1
)

// Params bundles the cost parameters for a derivation. The zero value
// is not valid; build one with DefaultParams, RFC9106LowMemoryParams,
// or by filling in every field yourself.
type Params struct {
	Time        uint32 // number of passes over memory
	Memory      uint32 // memory size in KiB
	Parallelism uint32 // lanes, and the default thread count
	SaltLength  uint32 // used only by callers that generate their own salt
	KeyLength   uint32 // output digest length in bytes
}

// DefaultParams is RFC 9106's "SECOND RECOMMENDED" profile: favors
// lower memory over fewer passes. This is what Hash and HashWithParams
// use.
func DefaultParams() Params {
	return Params{Time: 3, Memory: 64 * 1024, Parallelism: 4, SaltLength: 16, KeyLength: 32}
}

// RFC9106LowMemoryParams is RFC 9106's "FIRST RECOMMENDED" profile:
// favors more memory over more passes, for environments that can
// afford 2 GiB of working memory. Despite its name, it uses far more
// memory than DefaultParams (2 GiB against 64 MiB) and a single pass.
func RFC9106LowMemoryParams() Params {
	return Params{Time: 1, Memory: 2 * 1024 * 1024, Parallelism: 4, SaltLength: 16, KeyLength: 32}
}

// effectiveMemory rounds m down to a multiple of 4*lanes after raising
// it to the floor 2*4*lanes, so the memory matrix always divides evenly
// into lanes*4 segments.
func effectiveMemory(m, lanes uint32) uint32 {
	floor := 2 * 4 * lanes
	if m < floor {
		m = floor
	}
	return m / (4 * lanes) * (4 * lanes)
}

// validate checks password, salt, and cost parameters against the
// documented limits and returns the first violation found. threads may
// legitimately be less than lanes (parallelism); both must
// independently satisfy the lane bounds.
func validate(password, salt []byte, time, memory, lanes, threads, outLen uint32) error {
	if uint64(len(salt)) < minSaltLength {
		return newErr(ErrKindSaltTooShort, "salt")
	}
	if uint64(len(salt)) > maxU32 {
		return newErr(ErrKindSaltTooLong, "salt")
	}
	if uint64(len(password)) > maxU32 {
		return newErr(ErrKindPasswordTooLong, "password")
	}
	if outLen < minOutputLen {
		return newErr(ErrKindOutputTooShort, "output")
	}
	if uint64(outLen) > maxU32 {
		return newErr(ErrKindOutputTooLong, "output")
	}
	if time < minTime {
		return newErr(ErrKindTimeTooSmall, "time")
	}
	if uint64(time) > maxU32 {
		return newErr(ErrKindTimeTooLarge, "time")
	}
	if lanes < minLanes || threads < minLanes {
		return newErr(ErrKindLanesTooFew, "lanes")
	}
	if lanes > maxLanes || threads > maxLanes {
		return newErr(ErrKindLanesTooMany, "lanes")
	}
	if memory < minMemoryAbs || memory < 2*4*lanes {
		return newErr(ErrKindMemoryTooLittle, "memory")
	}
	if uint64(memory) > maxU32 {
		return newErr(ErrKindMemoryTooMuch, "memory")
	}
	return nil
}

func newContext(v engine.Variant, time, memory, lanes, threads, outLen uint32, password, salt, secret, ad []byte) *engine.Context {
	return &engine.Context{
		Variant:        v,
		Lanes:          lanes,
		Threads:        threads,
		Time:           time,
		Memory:         effectiveMemory(memory, lanes),
		OutLen:         outLen,
		Password:       password,
		Salt:           salt,
		Secret:         secret,
		AssociatedData: ad,
	}
}
