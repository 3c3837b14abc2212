package utils_test

import (
	"bytes"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/plateahq/Platea_Backend/internal/models"
	"github.com/plateahq/Platea_Backend/internal/utils"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"Valid email", "john@example.com", true},
		{"Valid email with subdomain", "john@mail.example.com", true},
		{"Valid email with plus", "john+tag@example.com", true},
		{"Empty email", "", false},
		{"Missing at sign", "johnexample.com", false},
		{"Missing domain dot", "john@example", false},
		{"Whitespace in local part", "jo hn@example.com", false},
		{"Two at signs", "john@@example.com", false},
		{"Too long", strings.Repeat("a", 250) + "@e.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := utils.ValidateEmail(tt.email)
			if result.Valid != tt.valid {
				t.Errorf("ValidateEmail(%q).Valid = %v, want %v (reason: %q)",
					tt.email, result.Valid, tt.valid, result.Reason)
			}
			if !result.Valid && result.Reason == "" {
				t.Error("Expected a reason for invalid email, got empty string")
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"Valid password", "Str0ng!pass", true},
		{"Too short", "S1!a", false},
		{"No uppercase", "weak1pass!", false},
		{"No lowercase", "WEAK1PASS!", false},
		{"No digit", "WeakPass!!", false},
		{"No symbol", "WeakPass11", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := utils.ValidatePassword(tt.password)
			if result.Valid != tt.valid {
				t.Errorf("ValidatePassword(%q).Valid = %v, want %v (reason: %q)",
					tt.password, result.Valid, tt.valid, result.Reason)
			}
		})
	}
}

// The reported violation follows a fixed priority order: length first, then
// uppercase, lowercase, digit, symbol. A password breaking several rules at
// once must always report the highest-priority one.
func TestValidatePasswordPriorityOrder(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     string
	}{
		{"Length beats everything", "abc", "at least 8 characters"},
		{"Uppercase beats lowercase and digit", "abcdefgh", "uppercase"},
		{"Lowercase beats digit and symbol", "ABCDEFGH", "lowercase"},
		{"Digit beats symbol", "Abcdefgh", "digit"},
		{"Symbol reported last", "Abcdefg1", "special character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := utils.ValidatePassword(tt.password)
			if result.Valid {
				t.Fatalf("ValidatePassword(%q) unexpectedly valid", tt.password)
			}
			if !strings.Contains(result.Reason, tt.want) {
				t.Errorf("ValidatePassword(%q).Reason = %q, want it to mention %q",
					tt.password, result.Reason, tt.want)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"Simple name", "John", true},
		{"Name with apostrophe", "O'Brien", true},
		{"Name with hyphen", "Smith-Jones", true},
		{"Name with space", "Mary Ann", true},
		{"Empty name", "", false},
		{"One character", "J", false},
		{"Too long", strings.Repeat("a", 51), false},
		{"Contains digits", "John3", false},
		{"Contains angle brackets", "<John>", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := utils.ValidateName(tt.input)
			if result.Valid != tt.valid {
				t.Errorf("ValidateName(%q).Valid = %v, want %v (reason: %q)",
					tt.input, result.Valid, tt.valid, result.Reason)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"Empty phone is valid", "", true},
		{"Plain digits", "12345678", true},
		{"International format", "+47 123 45 678", true},
		{"With parentheses", "(555) 123-4567", true},
		{"Too short", "123456", false},
		{"Too long", strings.Repeat("1", 21), false},
		{"Contains letters", "12345abc", false},
		{"Injection attempt", "<script>1234567", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := utils.ValidatePhone(tt.phone)
			if result.Valid != tt.valid {
				t.Errorf("ValidatePhone(%q).Valid = %v, want %v (reason: %q)",
					tt.phone, result.Valid, tt.valid, result.Reason)
			}
		})
	}
}

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Plain text untouched", "Cafe Luna", "Cafe Luna"},
		{"Whitespace trimmed", "  Cafe Luna  ", "Cafe Luna"},
		{"Tags stripped", "Cafe<script>alert(1)</script>Luna", "Cafealert(1)Luna"},
		{"Template fragment stripped", "Cafe${user.name}Luna", "CafeLuna"},
		{"Bare identifier stripped", "Cafe$nameLuna", "Cafe"},
		{"Quotes encoded", `O'Brien "Pub"`, "O&#39;Brien &quot;Pub&quot;"},
		{"Ampersand encoded", "Fish & Chips", "Fish &amp; Chips"},
		{"Empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := utils.SanitizeString(tt.input); got != tt.want {
				t.Errorf("SanitizeString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeStringTruncates(t *testing.T) {
	input := strings.Repeat("a", 300)
	got := utils.SanitizeString(input)
	if len(got) != 255 {
		t.Errorf("Expected sanitized string truncated to 255 characters, got %d", len(got))
	}
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name        string
		requestBody string
		wantErr     bool
		errContains string
	}{
		{
			name:        "Valid JSON",
			requestBody: `{"email":"john@example.com","password":"Str0ng!pass"}`,
			wantErr:     false,
		},
		{
			name:        "Invalid JSON syntax",
			requestBody: `{"email":john@example.com","password":"Str0ng!pass"}`,
			wantErr:     true,
			errContains: "malformed JSON",
		},
		{
			name:        "Empty request body",
			requestBody: "",
			wantErr:     true,
			errContains: "empty",
		},
		{
			name:        "Unknown field",
			requestBody: `{"email":"john@example.com","password":"Str0ng!pass","unknown":"value"}`,
			wantErr:     true,
			errContains: "unknown field",
		},
		{
			name:        "Multiple JSON objects",
			requestBody: `{"email":"a@b.co","password":"x"}{"email":"c@d.co"}`,
			wantErr:     true,
			errContains: "single JSON object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var requestBody io.Reader
			if tt.requestBody != "" {
				requestBody = bytes.NewBufferString(tt.requestBody)
			}

			req := httptest.NewRequest("POST", "/", requestBody)
			req.Header.Set("Content-Type", "application/json")

			var target models.LoginRequest
			err := utils.DecodeJSON(req, &target)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected an error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(strings.ToLower(err.Error()), strings.ToLower(tt.errContains)) {
					t.Errorf("Expected error to contain %q, got %q", tt.errContains, err.Error())
				}
			} else if err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestValidateStructReportsFirstViolation(t *testing.T) {
	utils.InitValidator()

	req := models.LoginRequest{}
	err := utils.ValidateStruct(&req)
	if err == nil {
		t.Fatal("Expected a validation error for empty login request")
	}

	if !utils.IsValidationError(err) {
		t.Errorf("Expected a validation error, got %v", err)
	}

	appErr := utils.ParseError(err)
	if appErr.Field != "email" {
		t.Errorf("Expected first violation to be on the email field, got %q", appErr.Field)
	}
}

func TestDecodeAndValidate(t *testing.T) {
	utils.InitValidator()

	body := bytes.NewBufferString(`{"email":"john@example.com","password":"Str0ng!pass"}`)
	req := httptest.NewRequest("POST", "/", body)

	var target models.LoginRequest
	if err := utils.DecodeAndValidate(req, &target); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if target.Email != "john@example.com" {
		t.Errorf("Expected decoded email 'john@example.com', got %q", target.Email)
	}
}
