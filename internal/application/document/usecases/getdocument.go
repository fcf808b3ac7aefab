package usecases

import (
	"context"

	"unibot/internal/domain/document"
	"unibot/internal/shared/logger"
)

type GetDocumentQuery struct {
	DocumentID uint
	// CountDownload bumps the download counter; set when the caller is
	// about to deliver the file, not when merely previewing it.
	CountDownload bool
}

type DocumentView struct {
	ID            uint
	Name          string
	Category      string
	Description   string
	FileID        string
	URL           string
	FileType      string
	HasFile       bool
	DownloadCount int64
}

type GetDocumentResult struct {
	Document DocumentView
}

type GetDocumentUseCase struct {
	documentRepo document.Repository
	logger       logger.Interface
}

func NewGetDocumentUseCase(documentRepo document.Repository, logger logger.Interface) *GetDocumentUseCase {
	return &GetDocumentUseCase{
		documentRepo: documentRepo,
		logger:       logger,
	}
}

func (uc *GetDocumentUseCase) Execute(ctx context.Context, query GetDocumentQuery) (*GetDocumentResult, error) {
	d, err := uc.documentRepo.GetByID(ctx, query.DocumentID)
	if err != nil {
		return nil, err
	}

	downloadCount := d.DownloadCount()
	if query.CountDownload {
		if err := uc.documentRepo.IncrementDownloadCount(ctx, d.ID()); err != nil {
			uc.logger.Warnw("failed to bump download count", "error", err, "document_id", d.ID())
		} else {
			downloadCount++
		}
	}

	return &GetDocumentResult{
		Document: DocumentView{
			ID:            d.ID(),
			Name:          d.Name(),
			Category:      d.Category(),
			Description:   d.Description(),
			FileID:        d.FileID(),
			URL:           d.URL(),
			FileType:      d.FileType(),
			HasFile:       d.HasFile(),
			DownloadCount: downloadCount,
		},
	}, nil
}
