package domain

import "time"

// FileStatus tracks whether a candidate has documents on file
type FileStatus string

const (
	FileStatusNone       FileStatus = "no-file"
	FileStatusUploaded   FileStatus = "uploaded"
	FileStatusProcessing FileStatus = "processing"
)

// Candidate is a candidate profile owning uploaded documents.
// Candidate CRUD lives in the surrounding system; the search core
// only reads candidates to validate scope filters.
type Candidate struct {
	ID         int64      `json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      string     `json:"email"`
	FileStatus FileStatus `json:"file_status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// FullName returns the candidate's display name
func (c *Candidate) FullName() string {
	return c.FirstName + " " + c.LastName
}
