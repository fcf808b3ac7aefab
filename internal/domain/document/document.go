package document

import (
	"fmt"
	"time"

	"unibot/internal/shared/biztime"
)

// Document is a downloadable reference file (application form, regulation,
// template). Exactly one of fileID (transport file handle) or url must be
// set; fileID wins when both are present.
type Document struct {
	id            uint
	name          string
	category      string
	description   string
	fileID        string
	url           string
	fileType      string
	keywords      string
	isActive      bool
	downloadCount int64
	createdAt     time.Time
	updatedAt     time.Time
}

func NewDocument(name, category, description, fileID, url, fileType, keywords string) (*Document, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("document name cannot be empty")
	}
	if len([]rune(name)) > 200 {
		return nil, fmt.Errorf("document name exceeds maximum length of 200 characters")
	}
	if fileID == "" && url == "" {
		return nil, fmt.Errorf("document requires a file ID or a URL")
	}

	now := biztime.NowUTC()
	return &Document{
		name:        name,
		category:    category,
		description: description,
		fileID:      fileID,
		url:         url,
		fileType:    fileType,
		keywords:    keywords,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructDocument(
	id uint,
	name string,
	category string,
	description string,
	fileID string,
	url string,
	fileType string,
	keywords string,
	isActive bool,
	downloadCount int64,
	createdAt time.Time,
	updatedAt time.Time,
) (*Document, error) {
	if id == 0 {
		return nil, fmt.Errorf("document ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("document name cannot be empty")
	}

	return &Document{
		id:            id,
		name:          name,
		category:      category,
		description:   description,
		fileID:        fileID,
		url:           url,
		fileType:      fileType,
		keywords:      keywords,
		isActive:      isActive,
		downloadCount: downloadCount,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (d *Document) ID() uint             { return d.id }
func (d *Document) Name() string         { return d.name }
func (d *Document) Category() string     { return d.category }
func (d *Document) Description() string  { return d.description }
func (d *Document) FileID() string       { return d.fileID }
func (d *Document) URL() string          { return d.url }
func (d *Document) FileType() string     { return d.fileType }
func (d *Document) Keywords() string     { return d.keywords }
func (d *Document) IsActive() bool       { return d.isActive }
func (d *Document) DownloadCount() int64 { return d.downloadCount }
func (d *Document) CreatedAt() time.Time { return d.createdAt }
func (d *Document) UpdatedAt() time.Time { return d.updatedAt }

func (d *Document) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("document ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("document ID cannot be zero")
	}
	d.id = id
	return nil
}

// HasFile reports whether the document is delivered as a transport file
// upload rather than a bare link.
func (d *Document) HasFile() bool {
	return d.fileID != ""
}

// SearchText is the haystack the fuzzy ranker scores a query against.
func (d *Document) SearchText() string {
	text := d.name
	if d.description != "" {
		text += " " + d.description
	}
	if d.keywords != "" {
		text += " " + d.keywords
	}
	return text
}

func (d *Document) RegisterDownload() {
	d.downloadCount++
}

func (d *Document) Deactivate() {
	d.isActive = false
	d.updatedAt = biztime.NowUTC()
}

func (d *Document) Activate() {
	d.isActive = true
	d.updatedAt = biztime.NowUTC()
}
