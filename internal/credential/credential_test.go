package credential

import "testing"

func TestPlaintextRoundTrip(t *testing.T) {
	var h Plaintext
	stored, err := h.Hash("password1")
	if err != nil {
		t.Fatal(err)
	}
	if stored != "password1" {
		t.Errorf("expected plaintext to be stored verbatim; got %q", stored)
	}
	match, err := h.Compare(stored, "password1")
	if err != nil {
		t.Fatal(err)
	}
	if !match {
		t.Error("expected matching password to compare true")
	}
	match, err = h.Compare(stored, "password2")
	if err != nil {
		t.Fatal(err)
	}
	if match {
		t.Error("expected non-matching password to compare false")
	}
}

func TestBcryptRoundTrip(t *testing.T) {
	h := Bcrypt{Cost: 4}
	stored, err := h.Hash("password1")
	if err != nil {
		t.Fatal(err)
	}
	if stored == "password1" {
		t.Error("expected bcrypt to not store the plaintext")
	}
	match, err := h.Compare(stored, "password1")
	if err != nil {
		t.Fatal(err)
	}
	if !match {
		t.Error("expected matching password to compare true")
	}
	match, err = h.Compare(stored, "wrong-password")
	if err != nil {
		t.Fatal(err)
	}
	if match {
		t.Error("expected non-matching password to compare false")
	}
}

func TestBcryptCompareRejectsGarbageHash(t *testing.T) {
	h := Bcrypt{Cost: 4}
	match, err := h.Compare("not-a-bcrypt-hash", "password1")
	if err == nil {
		t.Error("expected an error for a malformed stored hash")
	}
	if match {
		t.Error("expected no match for a malformed stored hash")
	}
}
