package usecases

import (
	"context"

	"unibot/internal/domain/faq"
	"unibot/internal/domain/user"
	"unibot/internal/shared/authorization"
	"unibot/internal/shared/errors"
	"unibot/internal/shared/logger"
)

type CreateCategoryCommand struct {
	ActorRole   user.Role
	Name        string
	Slug        string
	Description string
	Icon        string
	SortOrder   int
}

type CreateCategoryResult struct {
	CategoryID uint
	Title      string
}

type CreateCategoryUseCase struct {
	categoryRepo faq.CategoryRepository
	logger       logger.Interface
}

func NewCreateCategoryUseCase(categoryRepo faq.CategoryRepository, logger logger.Interface) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*CreateCategoryResult, error) {
	if err := authorization.RequireStaff(cmd.ActorRole); err != nil {
		return nil, err
	}

	category, err := faq.NewCategory(cmd.Name, cmd.Slug, cmd.Description, cmd.Icon, cmd.SortOrder)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.categoryRepo.Save(ctx, category); err != nil {
		uc.logger.Errorw("failed to save faq category", "error", err, "name", cmd.Name)
		return nil, err
	}

	uc.logger.Infow("faq category created", "category_id", category.ID(), "name", cmd.Name)

	return &CreateCategoryResult{
		CategoryID: category.ID(),
		Title:      category.DisplayTitle(),
	}, nil
}

type CreateItemCommand struct {
	ActorRole  user.Role
	CategoryID uint
	Question   string
	Answer     string
	Keywords   string
	Links      []faq.Link
}

type CreateItemResult struct {
	ItemID   uint
	Question string
}

type CreateItemUseCase struct {
	categoryRepo faq.CategoryRepository
	itemRepo     faq.ItemRepository
	logger       logger.Interface
}

func NewCreateItemUseCase(
	categoryRepo faq.CategoryRepository,
	itemRepo faq.ItemRepository,
	logger logger.Interface,
) *CreateItemUseCase {
	return &CreateItemUseCase{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		logger:       logger,
	}
}

func (uc *CreateItemUseCase) Execute(ctx context.Context, cmd CreateItemCommand) (*CreateItemResult, error) {
	if err := authorization.RequireStaff(cmd.ActorRole); err != nil {
		return nil, err
	}

	// The category must exist; a dangling category ID would make the item
	// unreachable through the menu.
	category, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		return nil, err
	}

	item, err := faq.NewItem(category.ID(), cmd.Question, cmd.Answer, cmd.Keywords, cmd.Links)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.itemRepo.Save(ctx, item); err != nil {
		uc.logger.Errorw("failed to save faq item", "error", err, "category_id", cmd.CategoryID)
		return nil, err
	}

	uc.logger.Infow("faq item created", "item_id", item.ID(), "category_id", category.ID())

	return &CreateItemResult{
		ItemID:   item.ID(),
		Question: item.Question(),
	}, nil
}
