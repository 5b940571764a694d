package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !Verify("secret", hash) {
		t.Fatalf("expected plaintext to verify")
	}
	if Verify("Secret", hash) {
		t.Fatalf("expected different plaintext to fail")
	}
}

func TestHash_Salted(t *testing.T) {
	a, _ := Hash("secret")
	b, _ := Hash("secret")
	if a == b {
		t.Fatalf("expected distinct salts per hash")
	}
}
