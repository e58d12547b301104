package argon2

import (
	"errors"
	"testing"

	"github.com/fleximus/argon2/internal/engine"
)

func TestPHCRoundTrip(t *testing.T) {
	rec := phcRecord{
		variant: engine.VariantID,
		version: engine.Version,
		memory:  65536,
		time:    2,
		lanes:   1,
		salt:    []byte("somesalt"),
		hash:    []byte("0123456789abcdef0123456789abcdef"),
	}

	encoded, err := encodePHC(rec)
	if err != nil {
		t.Fatalf("encodePHC: %v", err)
	}

	decoded, err := decodePHC(encoded)
	if err != nil {
		t.Fatalf("decodePHC: %v", err)
	}

	reencoded, err := encodePHC(decoded)
	if err != nil {
		t.Fatalf("encodePHC(decoded): %v", err)
	}
	if reencoded != encoded {
		t.Errorf("round trip produced %q, want %q", reencoded, encoded)
	}
}

func TestDecodePHCKnownString(t *testing.T) {
	s := "$argon2i$v=19$m=65536,t=2,p=1$c29tZXNhbHQ$wWKIMhR9lyDFvRz9YTZweHKfbftvj+qf+YFY4NeBbtA"
	rec, err := decodePHC(s)
	if err != nil {
		t.Fatalf("decodePHC: %v", err)
	}
	if rec.variant != engine.VariantI {
		t.Errorf("variant = %v, want VariantI", rec.variant)
	}
	if rec.memory != 65536 || rec.time != 2 || rec.lanes != 1 {
		t.Errorf("params = {%d,%d,%d}, want {65536,2,1}", rec.memory, rec.time, rec.lanes)
	}
	if string(rec.salt) != "somesalt" {
		t.Errorf("salt = %q, want %q", rec.salt, "somesalt")
	}
}

func TestDecodePHCRejectsMissingDollar(t *testing.T) {
	// Drops the '$' between the parameter block and the salt segment.
	s := "$argon2i$v=19$m=65536,t=2,p=1c29tZXNhbHQ$wWKIMhR9lyDFvRz9YTZweHKfbftvj+qf+YFY4NeBbtA"
	_, err := decodePHC(s)
	if err == nil {
		t.Fatal("decodePHC accepted a string missing a '$' separator")
	}
	var e *Error
	if !errors.As(err, &e) || e.Kind != ErrKindDecodingFail {
		t.Errorf("decodePHC error = %v, want ErrKindDecodingFail", err)
	}
}

func TestDecodePHCRejectsUnknownVariant(t *testing.T) {
	s := "$argon2x$v=19$m=65536,t=2,p=1$c29tZXNhbHQ$wWKIMhR9lyDFvRz9YTZweHKfbftvj+qf+YFY4NeBbtA"
	if _, err := decodePHC(s); err == nil {
		t.Fatal("decodePHC accepted an unknown variant token")
	}
}

func TestDecodePHCRejectsMissingParam(t *testing.T) {
	s := "$argon2i$v=19$m=65536,t=2$c29tZXNhbHQ$wWKIMhR9lyDFvRz9YTZweHKfbftvj+qf+YFY4NeBbtA"
	if _, err := decodePHC(s); err == nil {
		t.Fatal("decodePHC accepted a parameter block missing 'p'")
	}
}
