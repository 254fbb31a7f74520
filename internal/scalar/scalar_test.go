package scalar

import (
	"errors"
	"math"
	"testing"

	"github.com/d4l3k/messagediff"
)

func TestScalar_ToFloat64(t *testing.T) {
	tests := []struct {
		name    string
		s       Scalar
		want    float64
		wantErr error
	}{
		{"int64", FromInt64(3), 3, nil},
		{"float64", FromFloat64(1.5), 1.5, nil},
		{"bool not numeric", FromBool(true), 0, ErrNotNumeric},
		{"utf8 not numeric", FromUtf8("x"), 0, ErrNotNumeric},
		{"null missing", FromNull(NullKindNull), 0, ErrMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.s.ToFloat64()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ToFloat64() err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf(messagediff.PrettyDiff(got, tt.want))
			}
		})
	}
}

func TestScalar_FloatBits_CanonicalNaN(t *testing.T) {
	a := FromFloat64(math.NaN())
	b := FromFloat64(math.Copysign(math.NaN(), -1))
	if a.FloatBits() != b.FloatBits() {
		t.Errorf("expected all NaN payloads to share one canonical bit pattern")
	}
	if !a.Equal(b) {
		t.Errorf("expected NaN scalars to compare equal under the canonical-NaN rule")
	}
}

func TestScalar_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Scalar
		want bool
	}{
		{"equal ints", FromInt64(1), FromInt64(1), true},
		{"different ints", FromInt64(1), FromInt64(2), false},
		{"different kinds", FromInt64(1), FromUtf8("1"), false},
		{"null same kind", FromNull(NullKindNaN), FromNull(NullKindNaN), true},
		{"null different kind", FromNull(NullKindNaN), FromNull(NullKindNaT), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScalar_String(t *testing.T) {
	tests := []struct {
		name string
		s    Scalar
		want string
	}{
		{"bool", FromBool(true), "true"},
		{"int64", FromInt64(42), "42"},
		{"float64", FromFloat64(1.5), "1.5"},
		{"utf8", FromUtf8("hi"), "hi"},
		{"null", FromNull(NullKindNull), "<null>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.String(); got != tt.want {
				t.Errorf("String() = %v, want %v", got, tt.want)
			}
		})
	}
}
