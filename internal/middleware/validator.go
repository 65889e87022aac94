package middleware

import (
	"fmt"
	"regexp"
	"strings"
)

// Request-level validation and sanitization utilities

var (
	tenantIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)
	recordIDPattern = regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12}$`)
)

// ValidateTenantID validates tenant ID format
func ValidateTenantID(tenant string) error {
	if tenant == "" {
		return fmt.Errorf("tenant ID cannot be empty")
	}
	if !tenantIDPattern.MatchString(tenant) {
		return fmt.Errorf("invalid tenant ID format (alphanumeric, dash, underscore only, max 64 chars)")
	}
	return nil
}

// ValidateRecordID validates analysis record ID format (UUID)
func ValidateRecordID(id string) error {
	if id == "" {
		return fmt.Errorf("record ID cannot be empty")
	}
	if !recordIDPattern.MatchString(strings.ToLower(id)) {
		return fmt.Errorf("invalid record ID format")
	}
	return nil
}

// ValidatePageSize clamps pagination page size
func ValidatePageSize(size int) int {
	if size <= 0 {
		return 20 // default
	}
	if size > 100 {
		return 100 // max
	}
	return size
}

// SanitizeString removes dangerous characters from strings
func SanitizeString(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")

	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}
