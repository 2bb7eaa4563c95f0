package auth

import (
	"testing"
	"time"
)

func TestConfigVerifierPlaintext(t *testing.T) {
	v := ConfigVerifier{Email: "admin@foodtrucks.ma", Password: "secret"}

	if !v.Verify("admin@foodtrucks.ma", "secret") {
		t.Fatal("expected matching credentials to verify")
	}
	// Email comparison is case-insensitive, password is not.
	if !v.Verify("Admin@Foodtrucks.MA", "secret") {
		t.Fatal("expected case-insensitive email match")
	}
	if v.Verify("admin@foodtrucks.ma", "Secret") {
		t.Fatal("expected case-sensitive password match")
	}
	if v.Verify("other@foodtrucks.ma", "secret") {
		t.Fatal("expected wrong email to fail")
	}
}

func TestConfigVerifierHashTakesPrecedence(t *testing.T) {
	hash, err := HashPassword("hashed-secret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	v := ConfigVerifier{Email: "admin@foodtrucks.ma", Password: "plaintext", PasswordHash: hash}

	if !v.Verify("admin@foodtrucks.ma", "hashed-secret") {
		t.Fatal("expected hash to verify")
	}
	// With a hash configured, the plaintext placeholder is ignored.
	if v.Verify("admin@foodtrucks.ma", "plaintext") {
		t.Fatal("expected plaintext to be ignored when a hash is set")
	}
}

func TestConfigVerifierEmptyPassword(t *testing.T) {
	v := ConfigVerifier{Email: "admin@foodtrucks.ma"}
	if v.Verify("admin@foodtrucks.ma", "") {
		t.Fatal("expected empty configured password to never verify")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	j := NewJWT("test-secret", time.Hour)

	token, err := j.Generate("admin@foodtrucks.ma", "admin")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := j.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.Email != "admin@foodtrucks.ma" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, err := NewJWT("secret-a", time.Hour).Generate("admin@foodtrucks.ma", "admin")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := NewJWT("secret-b", time.Hour).Parse(token); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	j := &JWT{Secret: []byte("test-secret"), Expiration: -time.Hour}
	token, err := j.Generate("admin@foodtrucks.ma", "admin")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := j.Parse(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}
