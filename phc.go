package argon2

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/fleximus/argon2/internal/engine"
)

var b64 = base64.RawStdEncoding // standard alphabet, no padding

// phcRecord is everything recovered from (or needed to produce) a PHC
// string: $argon2{d,i,id}$v=19$m=...,t=...,p=...$salt$hash
type phcRecord struct {
	variant engine.Variant
	version uint32
	memory  uint32
	time    uint32
	lanes   uint32
	salt    []byte
	hash    []byte
}

func variantToken(v engine.Variant) (string, error) {
	switch v {
	case engine.VariantD:
		return "argon2d", nil
	case engine.VariantI:
		return "argon2i", nil
	case engine.VariantID:
		return "argon2id", nil
	default:
		return "", newErr(ErrKindDecodingFail, "variant")
	}
}

func variantFromToken(tok string) (engine.Variant, error) {
	switch tok {
	case "argon2d":
		return engine.VariantD, nil
	case "argon2i":
		return engine.VariantI, nil
	case "argon2id":
		return engine.VariantID, nil
	default:
		return 0, newErr(ErrKindDecodingFail, "variant")
	}
}

// encodePHC renders rec in the canonical $argon2{d,i,id}$v=...$m=...,t=...,p=...$salt$hash
// form, with parameters always in m,t,p order.
func encodePHC(rec phcRecord) (string, error) {
	tok, err := variantToken(rec.variant)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		tok, rec.version, rec.memory, rec.time, rec.lanes,
		b64.EncodeToString(rec.salt), b64.EncodeToString(rec.hash),
	), nil
}

// decodePHC parses a string produced by encodePHC. It is deliberately
// strict about segment count and unknown keys, but does not re-validate
// salt/hash length against current policy — those are exact recovered
// bytes, used as-is for re-derivation.
func decodePHC(s string) (phcRecord, error) {
	if !strings.HasPrefix(s, "$") {
		return phcRecord{}, newErr(ErrKindDecodingFail, "format")
	}
	segments := strings.Split(s, "$")[1:] // drop the leading empty segment
	if len(segments) != 5 {
		return phcRecord{}, newErr(ErrKindDecodingFail, "format")
	}

	variant, err := variantFromToken(segments[0])
	if err != nil {
		return phcRecord{}, err
	}

	if !strings.HasPrefix(segments[1], "v=") {
		return phcRecord{}, newErr(ErrKindDecodingFail, "version")
	}
	version, err := strconv.ParseUint(segments[1][2:], 10, 32)
	if err != nil {
		return phcRecord{}, wrapErr(ErrKindDecodingFail, "version", err)
	}

	memory, time, lanes, err := parsePHCParams(segments[2])
	if err != nil {
		return phcRecord{}, err
	}

	salt, err := decodePHCBase64(segments[3])
	if err != nil {
		return phcRecord{}, wrapErr(ErrKindDecodingFail, "salt", err)
	}
	hash, err := decodePHCBase64(segments[4])
	if err != nil {
		return phcRecord{}, wrapErr(ErrKindDecodingFail, "hash", err)
	}

	return phcRecord{
		variant: variant,
		version: uint32(version),
		memory:  memory,
		time:    time,
		lanes:   lanes,
		salt:    salt,
		hash:    hash,
	}, nil
}

// parsePHCParams parses "m=<dec>,t=<dec>,p=<dec>", requiring all three
// keys and rejecting anything else; the encoder always emits them in
// m,t,p order but the decoder does not require that order.
func parsePHCParams(s string) (memory, time, lanes uint32, err error) {
	var haveM, haveT, haveP bool
	for _, kv := range strings.Split(s, ",") {
		key, val, ok := strings.Cut(kv, "=")
		if !ok {
			return 0, 0, 0, newErr(ErrKindDecodingFail, "params")
		}
		n, convErr := strconv.ParseUint(val, 10, 32)
		if convErr != nil {
			return 0, 0, 0, wrapErr(ErrKindDecodingFail, "params", convErr)
		}
		switch key {
		case "m":
			memory, haveM = uint32(n), true
		case "t":
			time, haveT = uint32(n), true
		case "p":
			lanes, haveP = uint32(n), true
		default:
			return 0, 0, 0, newErr(ErrKindDecodingFail, "params")
		}
	}
	if !haveM || !haveT || !haveP {
		return 0, 0, 0, newErr(ErrKindDecodingFail, "params")
	}
	return memory, time, lanes, nil
}

// decodePHCBase64 right-pads s with '=' to a multiple of four before
// decoding, since the PHC format strips the padding that standard
// base64 otherwise requires.
func decodePHCBase64(s string) ([]byte, error) {
	if pad := len(s) % 4; pad != 0 {
		s += strings.Repeat("=", 4-pad)
	}
	return base64.StdEncoding.DecodeString(s)
}
