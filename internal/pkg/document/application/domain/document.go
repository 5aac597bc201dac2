package document

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUnknownDocType = errors.New("document: unknown document type")
	ErrBadFileName    = errors.New("document: invalid file name")
)

// docTypes is the union of every role's required set plus the optional
// signed contract.
var docTypes = map[string]struct{}{
	"insurance":        {},
	"food_hygiene":     {},
	"public_liability": {},
	"dbs_check":        {},
	"signed_contract":  {},
}

// ParseDocType validates a document type slug.
func ParseDocType(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if _, ok := docTypes[s]; !ok {
		return "", ErrUnknownDocType
	}
	return s, nil
}

// ObjectPath builds the object-store path for a user file:
// {user_id}/{logical_name}.{ext}. Uploads with the same logical name
// replace the previous object (upsert-on-conflict semantics at the store).
func ObjectPath(userID, logicalName, ext string) (string, error) {
	ext = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")
	if userID == "" || logicalName == "" || ext == "" {
		return "", ErrBadFileName
	}
	if strings.ContainsAny(logicalName, "/\\") || strings.ContainsAny(ext, "/\\.") {
		return "", ErrBadFileName
	}
	return fmt.Sprintf("%s/%s.%s", userID, logicalName, ext), nil
}

// Document is a registration document record. The file itself lives in the
// object store at FilePath.
type Document struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	DocType    string    `db:"doc_type"`
	FilePath   string    `db:"file_path"`
	UploadedAt time.Time `db:"uploaded_at"`
}

// GalleryImage is a portfolio image record.
type GalleryImage struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	FilePath  string    `db:"file_path"`
	CreatedAt time.Time `db:"created_at"`
}
