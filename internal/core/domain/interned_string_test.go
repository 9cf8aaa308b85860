package domain_test

import (
	"testing"

	"github.com/Timdpr/atsp-approximation/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("lemon")
	is2 := domain.NewInternedString("lemon")

	if is1 != is2 {
		t.Errorf("expected identical strings to intern to the same handle")
	}

	if is1.String() != "lemon" {
		t.Errorf("expected String() to return %q, got %q", "lemon", is1.String())
	}
}

func TestInternedString_Zero(t *testing.T) {
	var zero domain.InternedString
	if zero.String() != "" {
		t.Errorf("expected zero value to render as empty string, got %q", zero.String())
	}
}

func TestInternedString_Text(t *testing.T) {
	original := domain.NewInternedString("atsp-instances")

	data, err := original.MarshalText()
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	if string(data) != "atsp-instances" {
		t.Errorf("expected %q, got %q", "atsp-instances", string(data))
	}

	var decoded domain.InternedString
	if err := decoded.UnmarshalText(data); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("expected round-tripped value to equal the original")
	}
}
