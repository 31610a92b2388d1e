package handler

import (
	"strings"
	"testing"
)

func TestValidator_LoginRequest(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		name string
		req  loginRequest
		want string
	}{
		{"valid", loginRequest{Email: "owner@coffee.test", Password: "secret"}, ""},
		{"missing both", loginRequest{}, "email is required; password is required"},
		{"bad email", loginRequest{Email: "owner", Password: "secret"}, "email must be a valid email"},
		{"long password", loginRequest{Email: "owner@coffee.test", Password: strings.Repeat("x", 73)}, "password must be at most 72 characters"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(&tc.req)
			if tc.want == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil || err.Error() != tc.want {
				t.Fatalf("expected %q, got %v", tc.want, err)
			}
		})
	}
}
