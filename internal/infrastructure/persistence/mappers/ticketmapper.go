package mappers

import (
	"fmt"

	"unibot/internal/domain/ticket"
	vo "unibot/internal/domain/ticket/valueobjects"
	"unibot/internal/infrastructure/persistence/models"
)

type TicketMapper interface {
	ToEntity(model *models.TicketModel) (*ticket.Ticket, error)
	ToModel(entity *ticket.Ticket) *models.TicketModel
	MessageToEntity(model *models.TicketMessageModel) (*ticket.Message, error)
	MessageToModel(entity *ticket.Message) *models.TicketMessageModel
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToEntity(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket status: %w", err)
	}

	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket priority: %w", err)
	}

	entity, err := ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.OwnerID,
		model.AssigneeID,
		model.Subject,
		model.Description,
		status,
		priority,
		model.Category,
		model.IsAnonymous,
		model.CreatedAt,
		model.UpdatedAt,
		model.ResolvedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket entity: %w", err)
	}

	return entity, nil
}

func (m *TicketMapperImpl) ToModel(entity *ticket.Ticket) *models.TicketModel {
	if entity == nil {
		return nil
	}

	return &models.TicketModel{
		ID:          entity.ID(),
		Number:      entity.Number(),
		OwnerID:     entity.OwnerID(),
		AssigneeID:  entity.AssigneeID(),
		Subject:     entity.Subject(),
		Description: entity.Description(),
		Status:      entity.Status().String(),
		Priority:    entity.Priority().Int(),
		Category:    entity.Category(),
		IsAnonymous: entity.IsAnonymous(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
		ResolvedAt:  entity.ResolvedAt(),
	}
}

func (m *TicketMapperImpl) MessageToEntity(model *models.TicketMessageModel) (*ticket.Message, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := ticket.ReconstructMessage(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Body,
		model.IsFromStaff,
		model.IsInternal,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket message entity: %w", err)
	}

	return entity, nil
}

func (m *TicketMapperImpl) MessageToModel(entity *ticket.Message) *models.TicketMessageModel {
	if entity == nil {
		return nil
	}

	return &models.TicketMessageModel{
		ID:          entity.ID(),
		TicketID:    entity.TicketID(),
		AuthorID:    entity.AuthorID(),
		Body:        entity.Body(),
		IsFromStaff: entity.IsFromStaff(),
		IsInternal:  entity.IsInternal(),
		CreatedAt:   entity.CreatedAt(),
	}
}
