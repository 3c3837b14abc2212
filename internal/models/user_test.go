package models_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/plateahq/Platea_Backend/internal/models"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"john@example.com", "john@example.com"},
		{"JOHN@EXAMPLE.COM", "john@example.com"},
		{"  John@Example.Com  ", "john@example.com"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := models.NormalizeEmail(tt.input); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNewUserNormalizesEmail(t *testing.T) {
	user := models.NewUser("JOHN@Example.com", "John", "Doe", "Cafe Luna", "owner", "")
	if user.Email != "john@example.com" {
		t.Errorf("Expected normalized email, got %q", user.Email)
	}
	if user.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
}

func TestSanitizeClearsHash(t *testing.T) {
	user := &models.User{ID: 1, Email: "john@example.com", PasswordHash: "$2a$10$hash"}

	sanitized := user.Sanitize()
	if sanitized.PasswordHash != "" {
		t.Error("Expected Sanitize to clear the password hash")
	}
	// The original is untouched; Sanitize returns a copy.
	if user.PasswordHash == "" {
		t.Error("Expected the original user to keep its hash")
	}
}

func TestUserJSONNeverContainsHash(t *testing.T) {
	user := &models.User{ID: 1, Email: "john@example.com", PasswordHash: "$2a$10$secret-hash"}

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	if strings.Contains(string(data), "secret-hash") || strings.Contains(string(data), "password") {
		t.Errorf("Serialized user leaks the password hash: %s", data)
	}
}
