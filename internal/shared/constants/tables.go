package constants

// Table names used by persistence models and migrations.
const (
	TableUsers          = "users"
	TableFAQCategories  = "faq_categories"
	TableFAQItems       = "faq_items"
	TableFAQRatings     = "faq_ratings"
	TableUserFavorites  = "user_favorites"
	TableTickets        = "tickets"
	TableTicketMessages = "ticket_messages"
	TableDocuments      = "documents"
	TableScheduleEvents = "schedule_events"
	TableRequestLogs    = "request_logs"
	TableFeedbacks      = "feedbacks"
	TableNotifications  = "notifications"
)
