package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"unibot/internal/domain/ticket"
	vo "unibot/internal/domain/ticket/valueobjects"
	"unibot/internal/infrastructure/persistence/mappers"
	"unibot/internal/infrastructure/persistence/models"
	"unibot/internal/shared/db"
	apperrors "unibot/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(gdb *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		// Duplicate number errors bubble up unwrapped so the create use
		// case can regenerate.
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "number", "owner_id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *TicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("number = ?", number).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.UnassignedOnly {
		query = query.Where("assignee_id IS NULL")
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.ActiveOnly {
		query = query.Where("status IN ?", []string{
			vo.StatusOpen.String(),
			vo.StatusInProgress.String(),
			vo.StatusWaiting.String(),
		})
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var ticketModels []models.TicketModel
	if err := query.Order("created_at DESC").Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i := range ticketModels {
		t, err := r.mapper.ToEntity(&ticketModels[i])
		if err != nil {
			return nil, err
		}
		tickets[i] = t
	}

	return tickets, nil
}

func (r *TicketRepository) GetStats(ctx context.Context) (*ticket.Stats, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	stats := &ticket.Stats{ByStatus: make(map[vo.TicketStatus]int64)}

	if err := tx.Model(&models.TicketModel{}).Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}

	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	if err := tx.Model(&models.TicketModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}
	for _, row := range rows {
		stats.ByStatus[vo.TicketStatus(row.Status)] = row.Count
	}

	if err := tx.Model(&models.TicketModel{}).
		Where("assignee_id IS NULL").
		Where("status IN ?", []string{
			vo.StatusOpen.String(),
			vo.StatusInProgress.String(),
			vo.StatusWaiting.String(),
		}).
		Count(&stats.Unassigned).Error; err != nil {
		return nil, fmt.Errorf("failed to count unassigned tickets: %w", err)
	}

	// Mean resolution time computed in Go to stay portable between sqlite
	// and mysql date arithmetic.
	var resolved []models.TicketModel
	if err := tx.
		Select("created_at, resolved_at").
		Where("resolved_at IS NOT NULL").
		Find(&resolved).Error; err != nil {
		return nil, fmt.Errorf("failed to load resolved tickets: %w", err)
	}
	if len(resolved) > 0 {
		var totalDays float64
		for _, m := range resolved {
			totalDays += m.ResolvedAt.Sub(m.CreatedAt).Hours() / 24
		}
		stats.AvgResolutionDays = totalDays / float64(len(resolved))
	}

	return stats, nil
}

type TicketMessageRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketMessageRepository(gdb *gorm.DB) *TicketMessageRepository {
	return &TicketMessageRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketMessageRepository) Save(ctx context.Context, m *ticket.Message) error {
	model := r.mapper.MessageToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket message: %w", err)
	}

	return m.SetID(model.ID)
}

func (r *TicketMessageRepository) ListByTicketID(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.Message, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Where("ticket_id = ?", ticketID)
	if !includeInternal {
		query = query.Where("is_internal = ?", false)
	}

	var messageModels []models.TicketMessageModel
	if err := query.Order("created_at ASC, id ASC").Find(&messageModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket messages: %w", err)
	}

	messages := make([]*ticket.Message, len(messageModels))
	for i := range messageModels {
		m, err := r.mapper.MessageToEntity(&messageModels[i])
		if err != nil {
			return nil, err
		}
		messages[i] = m
	}

	return messages, nil
}
