package mailgun

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deliveredEventBody = `{
	"items": [
		{
			"event": "delivered",
			"id": "CPgfbmQMTCKtHW6uIWtuVe",
			"timestamp": 1521472262.908181,
			"log-level": "info",
			"method": "smtp",
			"envelope": {
				"targets": "alice@example.com",
				"transport": "smtp",
				"sender": "bob@samples.mailgun.org"
			},
			"flags": {
				"is-authenticated": true,
				"is-routed": false,
				"is-system-test": false,
				"is-test-mode": false
			},
			"delivery-status": {
				"tls": true,
				"mx-host": "smtp-in.example.com",
				"code": 250,
				"description": "",
				"session-seconds": 0.4331989288330078,
				"utf8": true,
				"attempt-no": 1,
				"message": "OK",
				"certificate-verified": true
			},
			"message": {
				"headers": {
					"to": "alice@example.com",
					"message-id": "20130503182626.18666.16540@samples.mailgun.org",
					"from": "Bob <bob@samples.mailgun.org>",
					"subject": "Test delivered webhook"
				},
				"attachments": [],
				"size": 111
			},
			"storage": {
				"url": "https://sw.api.mailgun.net/v3/domains/samples.mailgun.org/messages/message_key",
				"key": "message_key"
			},
			"recipient": "alice@example.com",
			"recipient-domain": "example.com",
			"tags": ["my_tag_1", "my_tag_2"]
		}
	],
	"paging": {
		"next": "https://api.mailgun.net/v3/samples.mailgun.org/events/W3siY...",
		"previous": "https://api.mailgun.net/v3/samples.mailgun.org/events/Lkawm..."
	}
}`

func TestGetEvents_DecodesNestedShapes(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The default list disables pretty-printing with a native token.
		assert.Equal(t, [][2]string{{"pretty", "false"}}, queryPairs(t, r.URL.RawQuery))
		w.Write([]byte(deliveredEventBody))
	}))

	resp, err := client.GetEvents(context.Background(), NewGetEventsParamList())
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)

	item := resp.Items[0]
	assert.Equal(t, "delivered", item.Event)
	assert.Equal(t, "CPgfbmQMTCKtHW6uIWtuVe", item.ID)
	assert.InDelta(t, 1521472262.908181, item.Timestamp, 1e-6)
	assert.Equal(t, "alice@example.com", item.Recipient)

	require.NotNil(t, item.LogLevel)
	assert.Equal(t, "info", *item.LogLevel)
	require.NotNil(t, item.RecipientDomain)
	assert.Equal(t, "example.com", *item.RecipientDomain)

	require.NotNil(t, item.Envelope)
	assert.Equal(t, "bob@samples.mailgun.org", item.Envelope.Sender)

	require.NotNil(t, item.Flags)
	require.NotNil(t, item.Flags.IsAuthenticated)
	assert.True(t, *item.Flags.IsAuthenticated)
	assert.Nil(t, item.Flags.IsDelayedBounce) // absent, not false

	require.NotNil(t, item.DeliveryStatus)
	require.NotNil(t, item.DeliveryStatus.Code)
	assert.Equal(t, int64(250), *item.DeliveryStatus.Code)
	require.NotNil(t, item.DeliveryStatus.AttemptNo)
	assert.Equal(t, 1, *item.DeliveryStatus.AttemptNo)

	require.NotNil(t, item.Message.Headers)
	require.NotNil(t, item.Message.Headers.Subject)
	assert.Equal(t, "Test delivered webhook", *item.Message.Headers.Subject)
	require.NotNil(t, item.Message.Size)
	assert.Equal(t, int64(111), *item.Message.Size)

	require.NotNil(t, item.Storage)
	assert.Equal(t, "message_key", item.Storage.Key)

	assert.Nil(t, item.Reject)
	assert.Nil(t, item.Geolocation)
	assert.Nil(t, item.ClientInfo)
	assert.Nil(t, item.IP)
	assert.Equal(t, []string{"my_tag_1", "my_tag_2"}, item.Tags)

	assert.Equal(t, "https://api.mailgun.net/v3/samples.mailgun.org/events/W3siY...", resp.Paging.Next)
}

func TestGetEvents_FilterParamsInOrder(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, [][2]string{
			{"pretty", "false"},
			{"begin", "Fri, 3 May 2013 09:00:00 -0000"},
			{"ascending", "yes"},
			{"limit", "25"},
			{"event", "failed"},
			{"severity", "permanent"},
			{"recipient", "alice@example.com"},
		}, queryPairs(t, r.URL.RawQuery))
		w.Write([]byte(`{"items":[],"paging":{"next":"","previous":""}}`))
	}))

	params := NewGetEventsParamList().
		Begin("Fri, 3 May 2013 09:00:00 -0000").
		Ascending(true).
		Limit(25).
		Event("failed").
		Severity("permanent").
		Recipient("alice@example.com")

	_, err := client.GetEvents(context.Background(), params)
	require.NoError(t, err)
}
