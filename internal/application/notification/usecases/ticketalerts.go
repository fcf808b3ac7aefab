package usecases

import (
	"context"
	"fmt"

	"unibot/internal/domain/user"
	"unibot/internal/shared/logger"
)

// TicketAlertService pushes ticket events to Telegram: staff hear about new
// tickets, requesters hear about staff replies. Alerts are best-effort and
// never fail the originating use case.
type TicketAlertService struct {
	userRepo user.Repository
	sender   MessageSender
	logger   logger.Interface
}

func NewTicketAlertService(
	userRepo user.Repository,
	sender MessageSender,
	logger logger.Interface,
) *TicketAlertService {
	return &TicketAlertService{
		userRepo: userRepo,
		sender:   sender,
		logger:   logger,
	}
}

func (s *TicketAlertService) NotifyStaffNewTicket(ctx context.Context, number, subject string) {
	if s.sender == nil {
		return
	}

	staff, err := s.userRepo.ListStaff(ctx)
	if err != nil {
		s.logger.Warnw("failed to list staff for ticket alert", "error", err, "ticket_number", number)
		return
	}

	text := fmt.Sprintf("🎫 Новое обращение <b>%s</b>\n%s", number, subject)
	for _, member := range staff {
		if !member.IsActive() {
			continue
		}
		if err := s.sender.SendMessage(member.TelegramID(), text); err != nil {
			s.logger.Warnw("failed to alert staff about new ticket",
				"error", err,
				"ticket_number", number,
				"user_id", member.ID(),
			)
		}
	}
}

func (s *TicketAlertService) NotifyOwnerReply(ctx context.Context, ownerID uint, number, preview string) {
	if s.sender == nil {
		return
	}

	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		s.logger.Warnw("failed to load ticket owner for reply alert", "error", err, "ticket_number", number)
		return
	}
	if !owner.IsActive() || !owner.NotificationsEnabled() {
		return
	}

	text := fmt.Sprintf("💬 Ответ по обращению <b>%s</b>\n%s", number, preview)
	if err := s.sender.SendMessage(owner.TelegramID(), text); err != nil {
		s.logger.Warnw("failed to alert requester about reply",
			"error", err,
			"ticket_number", number,
			"user_id", owner.ID(),
		)
	}
}
