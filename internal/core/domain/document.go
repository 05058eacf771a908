package domain

import "time"

// Document is a candidate document with its extracted text content.
// Documents are written by the upload/extraction side of the system;
// the search core treats them as read-only.
type Document struct {
	ID               int64      `json:"id"`
	CandidateID      int64      `json:"candidate_id"`
	CandidateName    string     `json:"candidate_name"`
	OriginalFilename string     `json:"original_filename"`
	FileSize         int64      `json:"file_size,omitempty"`
	IsExtracted      bool       `json:"is_extracted"`
	UploadDate       time.Time  `json:"upload_date"`
	ExtractionDate   *time.Time `json:"extraction_date,omitempty"`

	// ExtractedText is the full plain text produced by PDF extraction.
	ExtractedText string `json:"-"`

	// ContentLength is the stored length of the extracted text.
	// Zero when the extraction side recorded no length.
	ContentLength int `json:"content_length,omitempty"`
}

// DocumentFilter narrows the corpus handed to the ranking engine
type DocumentFilter struct {
	// CandidateID restricts results to one candidate's documents
	CandidateID *int64

	// ExtractedOnly skips documents whose text was never extracted
	ExtractedOnly bool
}
