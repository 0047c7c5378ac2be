package models

import "testing"

func TestDisplayName(t *testing.T) {
	cases := []struct {
		name string
		user User
		want string
	}{
		{"full name", User{FirstName: "Sara", LastName: "Haddad", Email: "sara@example.com"}, "Sara Haddad"},
		{"first only", User{FirstName: "Sara", Email: "sara@example.com"}, "Sara"},
		{"last only", User{LastName: "Haddad", Email: "sara@example.com"}, "Haddad"},
		{"whitespace names", User{FirstName: "  ", LastName: " ", Email: "sara@example.com"}, "sara"},
		{"email local part", User{Email: "lucky.winner@example.com"}, "lucky.winner"},
		{"empty email local part", User{Email: "@example.com"}, "Anonymous Winner"},
		{"no usable identity", User{}, "Anonymous Winner"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.user.DisplayName(); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestHasPriceTier(t *testing.T) {
	d := Draw{PriceTiers: []float64{5, 10, 20}}
	for _, p := range []float64{5, 10, 20} {
		if !d.HasPriceTier(p) {
			t.Fatalf("expected tier %v to match", p)
		}
	}
	for _, p := range []float64{0, 7, 15, -5} {
		if d.HasPriceTier(p) {
			t.Fatalf("expected %v to be rejected", p)
		}
	}
}
