package contract

import "errors"

var (
	// ErrMissingFile indicates no file was attached to the request.
	ErrMissingFile = errors.New("no file uploaded")

	// ErrFileTooLarge indicates the upload exceeds the 10 MiB limit.
	ErrFileTooLarge = errors.New("file size exceeds 10MB limit")

	// ErrUnsupportedType indicates the declared media type is neither image/* nor application/pdf.
	ErrUnsupportedType = errors.New("only image and PDF files are supported")
)
