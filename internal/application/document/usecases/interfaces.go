package usecases

import "context"

type SearchDocumentsExecutor interface {
	Execute(ctx context.Context, query SearchDocumentsQuery) (*SearchDocumentsResult, error)
}

type ListCategoriesExecutor interface {
	Execute(ctx context.Context) (*ListCategoriesResult, error)
}

type ListDocumentsExecutor interface {
	Execute(ctx context.Context, query ListDocumentsQuery) (*ListDocumentsResult, error)
}

type GetDocumentExecutor interface {
	Execute(ctx context.Context, query GetDocumentQuery) (*GetDocumentResult, error)
}

type AddDocumentExecutor interface {
	Execute(ctx context.Context, cmd AddDocumentCommand) (*AddDocumentResult, error)
}

type RemoveDocumentExecutor interface {
	Execute(ctx context.Context, cmd RemoveDocumentCommand) error
}
