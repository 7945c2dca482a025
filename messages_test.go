package mailgun

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/samples.mailgun.org/messages", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "api", user)
		assert.Equal(t, "key-test", pass)

		// Parameters must arrive in insertion order, with o:testmode
		// rendered as the literal "yes" token.
		assert.Equal(t, [][2]string{
			{"text", "test message"},
			{"to", "bob@host.com"},
			{"from", "Test <test@samples.mailgun.org>"},
			{"o:testmode", "yes"},
		}, queryPairs(t, r.URL.RawQuery))

		w.Write([]byte(`{"id": "<20111114174239.25659.5817@samples.mailgun.org>", "message": "Queued. Thank you."}`))
	}))

	params := NewSendMessageParamList().
		Text("test message").
		To("bob@host.com").
		From("Test <test@samples.mailgun.org>").
		OTestMode(true)

	resp, err := client.SendMessage(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, "<20111114174239.25659.5817@samples.mailgun.org>", resp.ID)
	assert.Equal(t, "Queued. Thank you.", resp.Message)
}

func TestSendMessage_RecipientVariables(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pairs := queryPairs(t, r.URL.RawQuery)
		require.Len(t, pairs, 3)
		assert.Equal(t, "recipient-variables", pairs[2][0])
		assert.JSONEq(t, `{"bob@host.com": {"first": "Bob"}}`, pairs[2][1])

		w.Write([]byte(`{"id": "<id>", "message": "Queued. Thank you."}`))
	}))

	params := NewSendMessageParamList().
		To("bob@host.com").
		Subject("Hello, %recipient.first%").
		RecipientVariables(map[string]map[string]string{
			"bob@host.com": {"first": "Bob"},
		})

	_, err := client.SendMessage(context.Background(), params)
	require.NoError(t, err)
}

// A render failure must surface before any network activity.
func TestSendMessage_RenderFailureSkipsNetwork(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	params := NewSendMessageParamList().
		To("bob@host.com").
		RecipientVariables(func() {})

	_, err := client.SendMessage(context.Background(), params)
	var paramErr *ParamError
	require.ErrorAs(t, err, &paramErr)
	assert.Equal(t, "recipient-variables", paramErr.Key)
	assert.Zero(t, hits.Load())
}

func TestSendMessage_APIError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "'from' parameter is missing"}`))
	}))

	_, err := client.SendMessage(context.Background(), NewSendMessageParamList().To("bob@host.com"))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "'from' parameter is missing", apiErr.Message)
}
