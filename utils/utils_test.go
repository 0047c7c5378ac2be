package utils

import (
	"strings"
	"testing"
)

func TestRoundFloat(t *testing.T) {
	cases := []struct {
		val       float64
		precision int
		want      float64
	}{
		{10.004, 2, 10.0},
		{10.016, 2, 10.02},
		{-2.5, 0, -3},
		{5, 0, 5},
	}
	for _, tc := range cases {
		if got := RoundFloat(tc.val, tc.precision); got != tc.want {
			t.Fatalf("RoundFloat(%v, %d) = %v, want %v", tc.val, tc.precision, got, tc.want)
		}
	}
}

func TestGenerateOrderID(t *testing.T) {
	id := GenerateOrderID(42)
	if !strings.HasPrefix(id, "DWN-") {
		t.Fatalf("expected DWN- prefix, got %s", id)
	}
	if !strings.HasSuffix(id, "42") {
		t.Fatalf("expected user id suffix, got %s", id)
	}

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		v := GenerateOrderID(42)
		if seen[v] {
			t.Fatalf("duplicate order id %s", v)
		}
		seen[v] = true
	}
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=6"`
	}

	if err := ValidateStruct(&payload{Email: "sara@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
	if err := ValidateStruct(&payload{Password: "secret1"}); err == nil || !strings.Contains(err.Error(), "required") {
		t.Fatalf("expected required error, got %v", err)
	}
	if err := ValidateStruct(&payload{Email: "not-an-email", Password: "secret1"}); err == nil || !strings.Contains(err.Error(), "email") {
		t.Fatalf("expected email error, got %v", err)
	}
	if err := ValidateStruct(&payload{Email: "sara@example.com", Password: "abc"}); err == nil || !strings.Contains(err.Error(), "at least") {
		t.Fatalf("expected min error, got %v", err)
	}
}
