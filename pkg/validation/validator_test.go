package validation

import (
	"testing"
)

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		want     error
	}{
		{"abc123", nil},
		{"123abc", nil},
		{"a1b2c3d4", nil},
		{"ñandú7", nil},
		{"abcdef", ErrPasswordMissingDigit},
		{"123456", ErrPasswordMissingLetter},
		{"12345", ErrPasswordTooShort},
		{"ab1", ErrPasswordTooShort},
		{"", ErrPasswordTooShort},
		{"!!!!!!", ErrPasswordMissingDigit},
		{"!!!!!1", ErrPasswordMissingLetter},
	}
	for _, tc := range cases {
		if got := ValidatePassword(tc.password); got != tc.want {
			t.Fatalf("ValidatePassword(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}

func TestValidatePassword_CountsCharacters(t *testing.T) {
	// five runes, more than six bytes
	if got := ValidatePassword("ñññ1a"); got != ErrPasswordTooShort {
		t.Fatalf("expected ErrPasswordTooShort, got %v", got)
	}
}

func TestValidateRegistration_IgnoresNameAndEmail(t *testing.T) {
	if err := ValidateRegistration(Registration{Name: "", Email: "not-an-email", Password: "abc123"}); err != nil {
		t.Fatalf("expected name and email to be accepted as typed, got %v", err)
	}
}
