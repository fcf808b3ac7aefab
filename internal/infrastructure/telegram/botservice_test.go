package telegram

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBotService(t *testing.T, handler http.HandlerFunc) *BotService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &BotService{
		httpClient: srv.Client(),
		baseURL:    srv.URL,
	}
}

func TestSendMessage_FloodWaitCarriesRetryAfter(t *testing.T) {
	s := newTestBotService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":429,"description":"Too Many Requests: retry later","parameters":{"retry_after":7}}`))
	})

	err := s.SendMessage(100, "привет")

	require.Error(t, err)
	assert.True(t, IsRetryAfter(err))
	assert.Equal(t, 7*time.Second, RetryAfterDelay(err))
}

func TestSendMessage_ErrorWithoutParameters(t *testing.T) {
	s := newTestBotService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":403,"description":"Forbidden: bot was blocked by the user"}`))
	})

	err := s.SendMessage(100, "привет")

	require.Error(t, err)
	assert.True(t, IsBotBlocked(err))
	assert.Equal(t, time.Duration(0), RetryAfterDelay(err))
}
