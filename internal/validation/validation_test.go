package validation

import (
	"strings"
	"testing"
)

func TestRequiredField(t *testing.T) {
	rule := Rule{Required: true}

	for _, value := range []string{"", "   ", "\t\n"} {
		if msg := Field(value, rule); msg != "Ce champ est requis" {
			t.Fatalf("value %q: expected required error, got %q", value, msg)
		}
	}
	if msg := Field("ok", rule); msg != "" {
		t.Fatalf("expected no error for non-empty value, got %q", msg)
	}
}

func TestOptionalEmptySkipsRemainingChecks(t *testing.T) {
	// Empty and not required: min/max/pattern/custom must not run.
	rule := OptionalPhoneRule
	if msg := Field("", rule); msg != "" {
		t.Fatalf("expected empty optional field to pass, got %q", msg)
	}
	if msg := Field("   ", rule); msg != "" {
		t.Fatalf("expected whitespace optional field to pass, got %q", msg)
	}
}

func TestPhoneRule(t *testing.T) {
	valid := []string{
		"+212612345678",
		"+212512345678",
		"+212712345678",
		"0612345678",
		"0512345678",
		"0712345678",
	}
	for _, phone := range valid {
		if msg := Field(phone, PhoneRule); msg != "" {
			t.Errorf("phone %q: expected valid, got %q", phone, msg)
		}
	}

	invalid := []string{
		"123",
		"0812345678",        // 8 is not an accepted prefix digit
		"+21361234567",      // wrong country code
		"061234567",         // too short
		"06123456789",       // too long
		"+212 612345678",    // inner space
		"0612345678a",       // trailing letter
	}
	for _, phone := range invalid {
		msg := Field(phone, PhoneRule)
		if msg != "Numéro de téléphone marocain invalide (ex: +212 6XX XXX XXX)" {
			t.Errorf("phone %q: expected phone-format error, got %q", phone, msg)
		}
	}
}

func TestEmailRule(t *testing.T) {
	if msg := Field("ahmed@example.com", EmailRule); msg != "" {
		t.Fatalf("expected valid email, got %q", msg)
	}
	for _, email := range []string{"ahmed", "ahmed@", "@example.com", "a b@c.d", "ahmed@example"} {
		if msg := Field(email, EmailRule); msg != "Adresse email invalide" {
			t.Errorf("email %q: expected email error, got %q", email, msg)
		}
	}
}

func TestNameRule(t *testing.T) {
	for _, name := range []string{"Ahmed Benali", "Aïcha El-Fassi", "Jean d'Arc"} {
		if msg := Field(name, NameRule); msg != "" {
			t.Errorf("name %q: expected valid, got %q", name, msg)
		}
	}
	// Min length check runs before the pattern.
	if msg := Field("A", NameRule); msg != "Minimum 2 caractères requis" {
		t.Fatalf("expected min length error, got %q", msg)
	}
	if msg := Field(strings.Repeat("a", 51), NameRule); msg != "Maximum 50 caractères autorisés" {
		t.Fatalf("expected max length error, got %q", msg)
	}
	if msg := Field("Ahmed123", NameRule); msg != "Le nom ne peut contenir que des lettres, espaces, apostrophes et tirets" {
		t.Fatalf("expected name pattern error, got %q", msg)
	}
}

func TestMessageLengthCountsRunes(t *testing.T) {
	// 10 accented characters: valid despite being >10 bytes.
	if msg := Field("éééééééééé", MessageRule); msg != "" {
		t.Fatalf("expected 10-rune message to pass, got %q", msg)
	}
	if msg := Field("trop court", MessageRule); msg != "" {
		t.Fatalf("expected 10-char message to pass, got %q", msg)
	}
	if msg := Field("court", MessageRule); msg != "Minimum 10 caractères requis" {
		t.Fatalf("expected min length error, got %q", msg)
	}
}

func TestFirstViolationWins(t *testing.T) {
	// Required beats everything else; only one message per field.
	if msg := Field("  ", PhoneRule); msg != "Ce champ est requis" {
		t.Fatalf("expected required error, got %q", msg)
	}
}

func TestFormAggregation(t *testing.T) {
	errs := Form(map[string]string{
		"name":    "Ahmed Benali",
		"email":   "ahmed@example.com",
		"phone":   "123",
		"message": "Je voudrais un devis",
	}, QuoteFormRules)

	if errs.IsValid() {
		t.Fatal("expected form to be invalid")
	}
	if len(errs) != 1 {
		t.Fatalf("expected exactly one field error, got %v", errs)
	}
	if _, ok := errs["phone"]; !ok {
		t.Fatalf("expected error on phone, got %v", errs)
	}
	if errs.First() == "" {
		t.Fatal("expected First to return the phone error")
	}
}

func TestFormValid(t *testing.T) {
	errs := Form(map[string]string{
		"name":    "Ahmed Benali",
		"email":   "ahmed@example.com",
		"phone":   "+212612345678",
		"message": "Je voudrais un devis",
	}, QuoteFormRules)

	if !errs.IsValid() {
		t.Fatalf("expected valid form, got %v", errs)
	}
	if errs.First() != "" {
		t.Fatalf("expected no first error, got %q", errs.First())
	}
}

func TestContactFormOptionalPhone(t *testing.T) {
	errs := Form(map[string]string{
		"name":    "Ahmed Benali",
		"email":   "ahmed@example.com",
		"phone":   "",
		"subject": "Renseignements",
		"message": "Bonjour, je souhaite plus d'informations.",
	}, ContactFormRules)

	if !errs.IsValid() {
		t.Fatalf("expected valid contact form without phone, got %v", errs)
	}
}
