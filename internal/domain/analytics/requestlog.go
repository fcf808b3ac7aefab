package analytics

import (
	"fmt"
	"time"

	"unibot/internal/shared/biztime"
)

// RequestType classifies inbound interactions for aggregation.
type RequestType string

const (
	RequestCommand  RequestType = "command"
	RequestSearch   RequestType = "search"
	RequestFAQView  RequestType = "faq_view"
	RequestTicket   RequestType = "ticket"
	RequestDocument RequestType = "document"
	RequestSchedule RequestType = "schedule"
	RequestOther    RequestType = "other"
)

func (t RequestType) String() string { return string(t) }

// ResponseType records how the interaction was answered.
type ResponseType string

const (
	ResponseAnswered  ResponseType = "answered"
	ResponseNoResults ResponseType = "no_results"
	ResponseError     ResponseType = "error"
)

func (t ResponseType) String() string { return string(t) }

// RequestLog is an append-only interaction record. UserID zero means the
// user could not be resolved. Entries are never updated or deleted.
type RequestLog struct {
	id             uint
	userID         uint
	requestType    RequestType
	text           string
	category       string
	responseType   ResponseType
	responseTimeMs int64
	createdAt      time.Time
}

func NewRequestLog(
	userID uint,
	requestType RequestType,
	text string,
	category string,
	responseType ResponseType,
	responseTimeMs int64,
) (*RequestLog, error) {
	if requestType == "" {
		return nil, fmt.Errorf("request type is required")
	}
	if responseTimeMs < 0 {
		return nil, fmt.Errorf("response time cannot be negative")
	}

	return &RequestLog{
		userID:         userID,
		requestType:    requestType,
		text:           text,
		category:       category,
		responseType:   responseType,
		responseTimeMs: responseTimeMs,
		createdAt:      biztime.NowUTC(),
	}, nil
}

func ReconstructRequestLog(
	id uint,
	userID uint,
	requestType RequestType,
	text string,
	category string,
	responseType ResponseType,
	responseTimeMs int64,
	createdAt time.Time,
) (*RequestLog, error) {
	if id == 0 {
		return nil, fmt.Errorf("request log ID cannot be zero")
	}

	return &RequestLog{
		id:             id,
		userID:         userID,
		requestType:    requestType,
		text:           text,
		category:       category,
		responseType:   responseType,
		responseTimeMs: responseTimeMs,
		createdAt:      createdAt,
	}, nil
}

func (r *RequestLog) ID() uint                   { return r.id }
func (r *RequestLog) UserID() uint               { return r.userID }
func (r *RequestLog) RequestType() RequestType   { return r.requestType }
func (r *RequestLog) Text() string               { return r.text }
func (r *RequestLog) Category() string           { return r.category }
func (r *RequestLog) ResponseType() ResponseType { return r.responseType }
func (r *RequestLog) ResponseTimeMs() int64      { return r.responseTimeMs }
func (r *RequestLog) CreatedAt() time.Time       { return r.createdAt }

func (r *RequestLog) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("request log ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("request log ID cannot be zero")
	}
	r.id = id
	return nil
}
