package argon2

import (
	"errors"
	"testing"
)

func TestValidateRejectsShortSalt(t *testing.T) {
	err := validate([]byte("pw"), []byte("12345"), 1, 8, 1, 1, 32)
	var e *Error
	if !errors.As(err, &e) || e.Kind != ErrKindSaltTooShort {
		t.Fatalf("validate(5-byte salt) = %v, want ErrKindSaltTooShort", err)
	}
}

func TestValidateRejectsTinyMemory(t *testing.T) {
	err := validate([]byte("pw"), []byte("12345678"), 1, 1, 1, 1, 32)
	var e *Error
	if !errors.As(err, &e) || e.Kind != ErrKindMemoryTooLittle {
		t.Fatalf("validate(m_cost=1) = %v, want ErrKindMemoryTooLittle", err)
	}
}

func TestValidateAcceptsDefaultParams(t *testing.T) {
	p := DefaultParams()
	err := validate([]byte("pw"), []byte("0123456789abcdef"), p.Time, p.Memory, p.Parallelism, p.Parallelism, p.KeyLength)
	if err != nil {
		t.Fatalf("validate(DefaultParams) = %v, want nil", err)
	}
}

func TestValidateRejectsShortOutput(t *testing.T) {
	err := validate([]byte("pw"), []byte("0123456789abcdef"), 1, 8, 1, 1, 3)
	var e *Error
	if !errors.As(err, &e) || e.Kind != ErrKindOutputTooShort {
		t.Fatalf("validate(outLen=3) = %v, want ErrKindOutputTooShort", err)
	}
}

func TestEffectiveMemoryRaisesToFloor(t *testing.T) {
	if got := effectiveMemory(4, 4); got != 32 {
		t.Errorf("effectiveMemory(4, 4) = %d, want 32 (floor 2*4*lanes)", got)
	}
}

func TestEffectiveMemoryRoundsDownToMultiple(t *testing.T) {
	if got := effectiveMemory(100, 4); got != 96 {
		t.Errorf("effectiveMemory(100, 4) = %d, want 96", got)
	}
}

func TestRFC9106LowMemoryParamsFavorsMemoryOverPasses(t *testing.T) {
	p := RFC9106LowMemoryParams()
	d := DefaultParams()
	if p.Time >= d.Time {
		t.Errorf("RFC9106LowMemoryParams.Time = %d, want fewer passes than DefaultParams.Time = %d", p.Time, d.Time)
	}
	if p.Memory <= d.Memory {
		t.Errorf("RFC9106LowMemoryParams.Memory = %d, want more memory than DefaultParams.Memory = %d", p.Memory, d.Memory)
	}
}
