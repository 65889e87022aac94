package contract

import "strings"

// MaxUploadBytes caps accepted uploads at 10 MiB
const MaxUploadBytes = 10 * 1024 * 1024

// UploadedFile is the caller-supplied document for one analysis request.
// It lives only for the duration of that request.
type UploadedFile struct {
	Name      string
	MediaType string
	Size      int64
	Content   []byte
}

// Validate checks an upload before any network call is made.
// Rules run in order (presence, size, type); the first violation wins.
func Validate(f *UploadedFile) error {
	if f == nil || (f.Size == 0 && len(f.Content) == 0) {
		return ErrMissingFile
	}
	size := f.Size
	if size == 0 {
		size = int64(len(f.Content))
	}
	if size > MaxUploadBytes {
		return ErrFileTooLarge
	}
	if !SupportedMediaType(f.MediaType) {
		return ErrUnsupportedType
	}
	return nil
}

// SupportedMediaType reports whether the declared type is an image or a PDF.
func SupportedMediaType(mediaType string) bool {
	return strings.HasPrefix(mediaType, "image/") || mediaType == "application/pdf"
}
