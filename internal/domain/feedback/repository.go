package feedback

import "context"

// Stats aggregates ratings and suggestion volume for the admin dashboard.
type Stats struct {
	AvgRating          float64
	RatingDistribution map[int]int64
	SuggestionCount    int64
	ComplaintCount     int64
	Unprocessed        int64
}

type Repository interface {
	Save(ctx context.Context, f *Feedback) error
	Update(ctx context.Context, f *Feedback) error
	GetByID(ctx context.Context, id uint) (*Feedback, error)
	ListUnprocessed(ctx context.Context, limit int) ([]*Feedback, error)
	GetStats(ctx context.Context) (*Stats, error)
}
