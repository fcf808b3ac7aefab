package usecases

import (
	"context"

	"unibot/internal/domain/document"
	"unibot/internal/domain/user"
	"unibot/internal/shared/authorization"
	"unibot/internal/shared/errors"
	"unibot/internal/shared/logger"
)

type AddDocumentCommand struct {
	ActorRole   user.Role
	Name        string
	Category    string
	Description string
	FileID      string
	URL         string
	FileType    string
	Keywords    string
}

type AddDocumentResult struct {
	DocumentID uint
	Name       string
}

type AddDocumentUseCase struct {
	documentRepo document.Repository
	logger       logger.Interface
}

func NewAddDocumentUseCase(documentRepo document.Repository, logger logger.Interface) *AddDocumentUseCase {
	return &AddDocumentUseCase{
		documentRepo: documentRepo,
		logger:       logger,
	}
}

func (uc *AddDocumentUseCase) Execute(ctx context.Context, cmd AddDocumentCommand) (*AddDocumentResult, error) {
	if err := authorization.RequireStaff(cmd.ActorRole); err != nil {
		return nil, err
	}

	doc, err := document.NewDocument(cmd.Name, cmd.Category, cmd.Description, cmd.FileID, cmd.URL, cmd.FileType, cmd.Keywords)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.documentRepo.Save(ctx, doc); err != nil {
		uc.logger.Errorw("failed to save document", "error", err, "name", cmd.Name)
		return nil, err
	}

	uc.logger.Infow("document added", "document_id", doc.ID(), "name", cmd.Name)

	return &AddDocumentResult{
		DocumentID: doc.ID(),
		Name:       doc.Name(),
	}, nil
}

type RemoveDocumentCommand struct {
	ActorRole  user.Role
	DocumentID uint
}

// RemoveDocumentUseCase deactivates a document. The row stays so download
// stats survive; it just disappears from listings and search.
type RemoveDocumentUseCase struct {
	documentRepo document.Repository
	logger       logger.Interface
}

func NewRemoveDocumentUseCase(documentRepo document.Repository, logger logger.Interface) *RemoveDocumentUseCase {
	return &RemoveDocumentUseCase{
		documentRepo: documentRepo,
		logger:       logger,
	}
}

func (uc *RemoveDocumentUseCase) Execute(ctx context.Context, cmd RemoveDocumentCommand) error {
	if err := authorization.RequireStaff(cmd.ActorRole); err != nil {
		return err
	}

	doc, err := uc.documentRepo.GetByID(ctx, cmd.DocumentID)
	if err != nil {
		return err
	}

	doc.Deactivate()

	if err := uc.documentRepo.Update(ctx, doc); err != nil {
		uc.logger.Errorw("failed to remove document", "error", err, "document_id", cmd.DocumentID)
		return err
	}

	uc.logger.Infow("document removed", "document_id", cmd.DocumentID)
	return nil
}
