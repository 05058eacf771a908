package postgres

import (
	"context"
	"database/sql"

	"github.com/talentdock/search-core/internal/core/domain"
	"github.com/talentdock/search-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore implements driven.DocumentStore using PostgreSQL
type DocumentStore struct {
	db *DB
}

// NewDocumentStore creates a new DocumentStore
func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// Query retrieves the searchable corpus matching the filter,
// newest upload first
func (s *DocumentStore) Query(ctx context.Context, filter domain.DocumentFilter) ([]*domain.Document, error) {
	query := `
		SELECT d.id, d.candidate_id, c.first_name, c.last_name,
		       d.original_filename, d.file_size, d.is_extracted,
		       d.upload_date, d.extraction_date,
		       COALESCE(dc.extracted_text, ''), COALESCE(dc.content_length, 0)
		FROM documents d
		JOIN candidates c ON c.id = d.candidate_id
		LEFT JOIN document_content dc ON dc.document_id = d.id
		WHERE ($1::bigint IS NULL OR d.candidate_id = $1)
		  AND (NOT $2 OR d.is_extracted)
		ORDER BY d.upload_date DESC
	`

	rows, err := s.db.QueryContext(ctx, query, NullInt64(filter.CandidateID), filter.ExtractedOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return s.scanDocuments(rows)
}

func (s *DocumentStore) scanDocuments(rows *sql.Rows) ([]*domain.Document, error) {
	var docs []*domain.Document
	for rows.Next() {
		var doc domain.Document
		var firstName, lastName string
		var extractionDate sql.NullTime

		err := rows.Scan(
			&doc.ID,
			&doc.CandidateID,
			&firstName,
			&lastName,
			&doc.OriginalFilename,
			&doc.FileSize,
			&doc.IsExtracted,
			&doc.UploadDate,
			&extractionDate,
			&doc.ExtractedText,
			&doc.ContentLength,
		)
		if err != nil {
			return nil, err
		}

		doc.CandidateName = firstName + " " + lastName
		doc.ExtractionDate = TimePtr(extractionDate)

		docs = append(docs, &doc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return docs, nil
}
