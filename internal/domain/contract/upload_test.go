package contract

import (
	"bytes"
	"errors"
	"testing"
)

func TestValidateRuleOrder(t *testing.T) {
	// An absent file must report missing before size or type are considered.
	if err := Validate(nil); !errors.Is(err, ErrMissingFile) {
		t.Fatalf("Validate(nil) = %v, want ErrMissingFile", err)
	}
	empty := &UploadedFile{Name: "contract.pdf", MediaType: "text/plain"}
	if err := Validate(empty); !errors.Is(err, ErrMissingFile) {
		t.Fatalf("Validate(empty) = %v, want ErrMissingFile", err)
	}

	// Oversized with a bad type: size rule fires first.
	big := &UploadedFile{
		Name:      "contract.zip",
		MediaType: "application/zip",
		Size:      MaxUploadBytes + 1,
	}
	if err := Validate(big); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("Validate(oversized) = %v, want ErrFileTooLarge", err)
	}
}

func TestValidateSizeBoundary(t *testing.T) {
	at := &UploadedFile{Name: "a.pdf", MediaType: "application/pdf", Size: MaxUploadBytes}
	if err := Validate(at); err != nil {
		t.Fatalf("Validate(exactly 10MiB) = %v, want nil", err)
	}
	over := &UploadedFile{Name: "a.pdf", MediaType: "application/pdf", Size: MaxUploadBytes + 1}
	if err := Validate(over); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("Validate(10MiB+1) = %v, want ErrFileTooLarge", err)
	}
}

func TestValidateMediaTypes(t *testing.T) {
	cases := []struct {
		mediaType string
		ok        bool
	}{
		{"image/jpeg", true},
		{"image/png", true},
		{"image/webp", true},
		{"application/pdf", true},
		{"application/msword", false},
		{"text/plain", false},
		{"application/pdf+xml", false},
		{"", false},
	}
	for _, tc := range cases {
		f := &UploadedFile{
			Name:      "doc",
			MediaType: tc.mediaType,
			Size:      128,
			Content:   bytes.Repeat([]byte{0x1}, 128),
		}
		err := Validate(f)
		if tc.ok && err != nil {
			t.Errorf("Validate(%q) = %v, want nil", tc.mediaType, err)
		}
		if !tc.ok && !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("Validate(%q) = %v, want ErrUnsupportedType", tc.mediaType, err)
		}
	}
}

func TestValidateSizeFallsBackToContentLength(t *testing.T) {
	f := &UploadedFile{Name: "a.png", MediaType: "image/png", Content: []byte{1, 2, 3}}
	if err := Validate(f); err != nil {
		t.Fatalf("Validate(content only) = %v, want nil", err)
	}
}
