package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unibot/internal/domain/document"
	"unibot/internal/shared/config"
	"unibot/internal/shared/errors"
)

func reconstructDocument(t *testing.T, id uint, name, keywords string) *document.Document {
	t.Helper()
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	d, err := document.ReconstructDocument(
		id, name, "forms", "", "file-abc", "", "pdf", keywords,
		true, 0, now, now,
	)
	require.NoError(t, err)
	return d
}

func TestSearchDocuments_RanksByNameAndKeywords(t *testing.T) {
	repo := &mockDocumentRepository{
		ListActiveFunc: func(ctx context.Context) ([]*document.Document, error) {
			return []*document.Document{
				reconstructDocument(t, 1, "Academic leave application", "leave,application,form"),
				reconstructDocument(t, 2, "Dormitory rules", "dorm,housing"),
			}, nil
		},
	}

	uc := NewSearchDocumentsUseCase(repo, config.SearchConfig{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), SearchDocumentsQuery{Query: "leave application"})

	require.NoError(t, err)
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, uint(1), result.Hits[0].DocumentID)
}

func TestSearchDocuments_ShortQueryRejected(t *testing.T) {
	uc := NewSearchDocumentsUseCase(&mockDocumentRepository{}, config.SearchConfig{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), SearchDocumentsQuery{Query: "x"})
	assert.True(t, errors.IsValidationError(err))
}

func TestGetDocument_DownloadCounted(t *testing.T) {
	var bumped bool
	repo := &mockDocumentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*document.Document, error) {
			return reconstructDocument(t, 1, "Academic leave application", ""), nil
		},
		IncrementDownloadCountFunc: func(ctx context.Context, id uint) error {
			bumped = true
			return nil
		},
	}

	uc := NewGetDocumentUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), GetDocumentQuery{DocumentID: 1, CountDownload: true})

	require.NoError(t, err)
	assert.True(t, bumped)
	assert.True(t, result.Document.HasFile)
	assert.Equal(t, int64(1), result.Document.DownloadCount)
}

func TestGetDocument_PreviewLeavesCounter(t *testing.T) {
	var bumped bool
	repo := &mockDocumentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*document.Document, error) {
			return reconstructDocument(t, 1, "Academic leave application", ""), nil
		},
		IncrementDownloadCountFunc: func(ctx context.Context, id uint) error {
			bumped = true
			return nil
		},
	}

	uc := NewGetDocumentUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), GetDocumentQuery{DocumentID: 1})

	require.NoError(t, err)
	assert.False(t, bumped)
	assert.Equal(t, int64(0), result.Document.DownloadCount)
}
