package validation

import "regexp"

// Patterns shared by the rule sets.
var (
	// PatternEmail is RFC-light: local@domain.tld, no spaces.
	PatternEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// PatternPhone matches Moroccan numbers: +212 or a leading 0,
	// then 5, 6 or 7, then 8 digits.
	PatternPhone = regexp.MustCompile(`^(\+212|0)[5-7][0-9]{8}$`)
	// PatternName allows letters (accents included), spaces, apostrophes, hyphens.
	PatternName = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s'-]+$`)
	PatternURL  = regexp.MustCompile(`^https?://.+`)

	patternDimensions = regexp.MustCompile(`^\d+(\.\d+)?m\s*x\s*\d+(\.\d+)?m\s*x\s*\d+(\.\d+)?m$`)
	patternCapacity   = regexp.MustCompile(`^\d+-\d+\s+personnes?$`)
)

// Common field rules.
var (
	EmailRule = Rule{
		Required: true,
		Pattern:  PatternEmail,
		Custom: func(v string) string {
			if !PatternEmail.MatchString(v) {
				return "Adresse email invalide"
			}
			return ""
		},
	}

	PhoneRule = Rule{
		Required: true,
		Pattern:  PatternPhone,
		Custom: func(v string) string {
			if !PatternPhone.MatchString(v) {
				return "Numéro de téléphone marocain invalide (ex: +212 6XX XXX XXX)"
			}
			return ""
		},
	}

	// OptionalPhoneRule is PhoneRule without the required flag, for forms
	// where the phone may be left blank.
	OptionalPhoneRule = Rule{
		Pattern: PatternPhone,
		Custom: func(v string) string {
			if !PatternPhone.MatchString(v) {
				return "Numéro de téléphone marocain invalide (ex: +212 6XX XXX XXX)"
			}
			return ""
		},
	}

	NameRule = Rule{
		Required:  true,
		MinLength: 2,
		MaxLength: 50,
		Pattern:   PatternName,
		Custom: func(v string) string {
			if !PatternName.MatchString(v) {
				return "Le nom ne peut contenir que des lettres, espaces, apostrophes et tirets"
			}
			return ""
		},
	}

	MessageRule = Rule{Required: true, MinLength: 10, MaxLength: 1000}
	SubjectRule = Rule{Required: true, MinLength: 5, MaxLength: 100}

	DimensionsRule = Rule{
		Required: true,
		Pattern:  patternDimensions,
		Custom: func(v string) string {
			if !patternDimensions.MatchString(v) {
				return "Format invalide (ex: 6m x 2.5m x 3m)"
			}
			return ""
		},
	}

	CapacityRule = Rule{
		Required: true,
		Pattern:  patternCapacity,
		Custom: func(v string) string {
			if !patternCapacity.MatchString(v) {
				return "Format invalide (ex: 2-3 personnes)"
			}
			return ""
		},
	}
)

// Per-form rule sets.
var (
	QuoteFormRules = Rules{
		"name":    NameRule,
		"email":   EmailRule,
		"phone":   PhoneRule,
		"message": MessageRule,
	}

	ContactFormRules = Rules{
		"name":    NameRule,
		"email":   EmailRule,
		"phone":   OptionalPhoneRule,
		"subject": SubjectRule,
		"message": MessageRule,
	}

	TruckFormRules = Rules{
		"name":             {Required: true, MinLength: 3, MaxLength: 100},
		"description":      {Required: true, MinLength: 20, MaxLength: 1000},
		"shortDescription": {Required: true, MinLength: 10, MaxLength: 200},
		"category":         {Required: true},
	}

	SettingsFormRules = Rules{
		"siteName":     {Required: true, MinLength: 3, MaxLength: 50},
		"contactEmail": EmailRule,
		"contactPhone": PhoneRule,
		"address":      {Required: true, MinLength: 10, MaxLength: 200},
		"description":  {Required: true, MinLength: 20, MaxLength: 500},
	}
)
