package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"patient":    RolePatient,
		"doctor":     RoleDoctor,
		"asha":       RoleASHA,
		"pharmacy":   RolePharmacy,
		" Pharmacy ": RolePharmacy,
	}
	for in, want := range cases {
		got, err := ParseRole(in)
		if err != nil {
			t.Fatalf("ParseRole(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseRole(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseRole_Invalid(t *testing.T) {
	for _, in := range []string{"", "admin", "nurse"} {
		r, err := ParseRole(in)
		if !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("ParseRole(%q) expected ErrInvalidRole, got %v", in, err)
		}
		if r.Valid() {
			t.Fatalf("ParseRole(%q) returned a valid role", in)
		}
	}
}

func TestRoles_RoundTrip(t *testing.T) {
	for _, r := range Roles() {
		parsed, err := ParseRole(r.String())
		if err != nil || parsed != r {
			t.Fatalf("round trip failed for %v: %v %v", r, parsed, err)
		}
	}
	if len(Roles()) != 4 {
		t.Fatalf("expected 4 roles, got %d", len(Roles()))
	}
}

func TestRole_JSON(t *testing.T) {
	u := User{UserID: "p-1", Role: RoleASHA, PasswordHash: "secret-hash"}
	b, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out["role"] != "asha" {
		t.Fatalf("expected role tag asha, got %v", out["role"])
	}
	if _, ok := out["password_hash"]; ok {
		t.Fatalf("password hash must not be serialized")
	}

	var back User
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal user: %v", err)
	}
	if back.Role != RoleASHA {
		t.Fatalf("expected RoleASHA, got %v", back.Role)
	}
}
