package checkin

import (
	"hotel-portal/internal/pkg/errs"
)

const (
	MaxDocumentSize = 10 * 1024 * 1024
	PDFContentType  = "application/pdf"
)

var (
	ErrPassportMissingSelf  = errs.Validation("Please upload your passport to proceed.")
	ErrPassportMissingStaff = errs.Validation("Please upload a passport to proceed.")
	ErrDocumentType         = errs.Validation("Allowed type is PDF.")
	ErrDocumentTooLarge     = errs.Validation("File size exceeds the 10 MB limit.")
)

// Document is the uploaded passport scan.
type Document struct {
	Name        string
	ContentType string
	Size        int64
	Content     []byte
}

// ValidateDocument enforces presence, PDF type and the size limit.
func ValidateDocument(v Variant, doc *Document) error {
	if doc == nil || doc.Size == 0 {
		if v.Staff() {
			return ErrPassportMissingStaff
		}
		return ErrPassportMissingSelf
	}
	if doc.ContentType != PDFContentType {
		return errs.Invalidf(ErrDocumentType, "Invalid file type: %s. Allowed type is PDF.", doc.ContentType)
	}
	if doc.Size > MaxDocumentSize {
		return errs.Invalidf(ErrDocumentTooLarge, "File size exceeds the 10 MB limit: %s (%.2f MB).",
			doc.Name, float64(doc.Size)/(1024*1024))
	}
	return nil
}
