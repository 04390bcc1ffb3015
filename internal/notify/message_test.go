package notify

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_QueuePayloadRoundTrip(t *testing.T) {
	msg := Message{
		To:      "ops@lsweb.com",
		From:    "noreply@lsweb.com",
		Subject: "Nueva Solicitud de Web - Ana Gómez",
		HTML:    "<html><body>Teléfono: +54 11 5555-0000</body></html>",
	}

	body, err := encodeMessage(msg)
	require.NoError(t, err)

	decoded, err := decodeMessage(body)
	require.NoError(t, err)
	assert.Equal(t, msg, decoded)
}

func TestMessage_QueuePayloadKeys(t *testing.T) {
	// The external mailer worker consumes these exact keys; a rename
	// here breaks it silently.
	body, err := encodeMessage(Message{
		To:      "ops@lsweb.com",
		From:    "noreply@lsweb.com",
		Subject: "s",
		HTML:    "<p>h</p>",
	})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))
	for _, key := range []string{"to", "from", "subject", "html"} {
		assert.Contains(t, raw, key)
	}
	assert.Len(t, raw, 4)
}

func TestDecodeMessage_Malformed(t *testing.T) {
	_, err := decodeMessage([]byte("{not json"))
	assert.Error(t, err)
}
