package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"unibot/internal/shared/biztime"
)

// WizardState is the per-user multi-step conversation state. Data holds the
// partially collected form keyed by field name. Loss of this state mid-wizard
// is accepted; the user restarts the flow.
type WizardState struct {
	Flow      string            `json:"flow"`
	Step      string            `json:"step"`
	Data      map[string]string `json:"data"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Value returns a collected field, empty when unset.
func (s *WizardState) Value(key string) string {
	if s.Data == nil {
		return ""
	}
	return s.Data[key]
}

// Set stores a collected field.
func (s *WizardState) Set(key, value string) {
	if s.Data == nil {
		s.Data = make(map[string]string)
	}
	s.Data[key] = value
}

// WizardStateStore provides redis-based conversation state keyed by telegram
// user ID with a sliding TTL.
type WizardStateStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewWizardStateStore(client *redis.Client, ttl time.Duration) *WizardStateStore {
	return &WizardStateStore{
		client: client,
		prefix: "wizard:state:",
		ttl:    ttl,
	}
}

// Set stores the state, resetting the TTL.
func (s *WizardStateStore) Set(ctx context.Context, telegramID int64, state *WizardState) error {
	if state == nil {
		return errors.New("state cannot be nil")
	}

	state.UpdatedAt = biztime.NowUTC()
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard state: %w", err)
	}

	key := s.buildKey(telegramID)
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store wizard state in redis: %w", err)
	}

	return nil
}

// Get returns the current state, or nil when no wizard is in progress.
func (s *WizardStateStore) Get(ctx context.Context, telegramID int64) (*WizardState, error) {
	key := s.buildKey(telegramID)

	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to retrieve wizard state from redis: %w", err)
	}

	var state WizardState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wizard state: %w", err)
	}

	return &state, nil
}

// Clear drops the state, ending the wizard.
func (s *WizardStateStore) Clear(ctx context.Context, telegramID int64) error {
	key := s.buildKey(telegramID)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to clear wizard state in redis: %w", err)
	}
	return nil
}

func (s *WizardStateStore) buildKey(telegramID int64) string {
	return s.prefix + strconv.FormatInt(telegramID, 10)
}
