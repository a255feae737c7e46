package whatsapp

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	hits        int
	path        string
	auth        string
	contentType string
	body        []byte
}

func newTestClient(t *testing.T, respond func(w http.ResponseWriter)) (*Client, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.hits++
		rec.path = r.URL.Path
		rec.auth = r.Header.Get("Authorization")
		rec.contentType = r.Header.Get("Content-Type")
		rec.body, _ = io.ReadAll(r.Body)
		respond(w)
	}))
	t.Cleanup(server.Close)

	client := NewClient("123456789", "test-token")
	client.SetBaseURL(server.URL)
	return client, rec
}

func respondAccepted(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"messaging_product":"whatsapp","contacts":[{"input":"15551234567","wa_id":"15551234567"}],"messages":[{"id":"wamid.test"}]}`))
}

func TestSendTextExactPayload(t *testing.T) {
	client, rec := newTestClient(t, respondAccepted)

	resp, err := client.SendText("15551234567", "Hello World")
	require.NoError(t, err)

	assert.Equal(t, 1, rec.hits, "exactly one HTTP request should be issued")
	assert.Equal(t, "/v21.0/123456789/messages", rec.path)
	assert.Equal(t, "Bearer test-token", rec.auth)
	assert.Equal(t, "application/json", rec.contentType)
	assert.Equal(t,
		`{"messaging_product":"whatsapp","to":"15551234567","type":"text","text":{"body":"Hello World"}}`,
		string(rec.body),
	)
	assert.Equal(t, "wamid.test", resp.MessageID())
}

func TestSendTextPreviewURL(t *testing.T) {
	t.Run("Set", func(t *testing.T) {
		client, rec := newTestClient(t, respondAccepted)

		_, err := client.SendTextInput(TextInput{To: "15551234567", Body: "check https://example.com", PreviewURL: true})
		require.NoError(t, err)
		assert.Contains(t, string(rec.body), `"preview_url":true`)
	})

	t.Run("Unset", func(t *testing.T) {
		client, rec := newTestClient(t, respondAccepted)

		_, err := client.SendText("15551234567", "no preview")
		require.NoError(t, err)
		assert.NotContains(t, string(rec.body), "preview_url")
	})
}

func TestSendTextEmptyBody(t *testing.T) {
	client, rec := newTestClient(t, respondAccepted)

	_, err := client.SendText("15551234567", "")
	assert.True(t, IsValidationError(err))
	assert.Equal(t, 0, rec.hits)
}

func TestSendMediaReferenceValidation(t *testing.T) {
	t.Run("Both Link And ID", func(t *testing.T) {
		client, rec := newTestClient(t, respondAccepted)

		_, err := client.SendImage("15551234567", MediaRef{Link: "https://example.com/a.jpg", ID: "MEDIA1"}, "")
		assert.True(t, IsValidationError(err))
		assert.Equal(t, 0, rec.hits, "validation must fail before any request")
	})

	t.Run("Neither", func(t *testing.T) {
		client, rec := newTestClient(t, respondAccepted)

		_, err := client.SendImage("15551234567", MediaRef{}, "")
		assert.True(t, IsValidationError(err))
		assert.Equal(t, 0, rec.hits)
	})

	t.Run("Link Only", func(t *testing.T) {
		client, rec := newTestClient(t, respondAccepted)

		_, err := client.SendImage("15551234567", MediaRef{Link: "https://example.com/a.jpg"}, "a caption")
		require.NoError(t, err)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(rec.body, &payload))
		image := payload["image"].(map[string]any)
		assert.Equal(t, "https://example.com/a.jpg", image["link"])
		assert.Equal(t, "a caption", image["caption"])
		assert.NotContains(t, image, "id")
	})

	t.Run("ID Only", func(t *testing.T) {
		client, rec := newTestClient(t, respondAccepted)

		_, err := client.SendAudio("15551234567", MediaRef{ID: "MEDIA1"})
		require.NoError(t, err)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(rec.body, &payload))
		assert.Equal(t, "audio", payload["type"])
		audio := payload["audio"].(map[string]any)
		assert.Equal(t, "MEDIA1", audio["id"])
		assert.NotContains(t, audio, "link")
	})
}

func TestSendDocumentFilename(t *testing.T) {
	client, rec := newTestClient(t, respondAccepted)

	_, err := client.SendDocument("15551234567", MediaRef{ID: "DOC1"}, "invoice", "Invoice_2024.pdf")
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.body, &payload))
	document := payload["document"].(map[string]any)
	assert.Equal(t, "Invoice_2024.pdf", document["filename"])
	assert.Equal(t, "invoice", document["caption"])
}

func TestSendButtons(t *testing.T) {
	t.Run("Caps At Three Buttons", func(t *testing.T) {
		client, rec := newTestClient(t, respondAccepted)

		_, err := client.SendButtons(ButtonsInput{
			To:   "15551234567",
			Body: "Pick one",
			Buttons: []Button{
				{ID: "a", Title: "A"},
				{ID: "b", Title: "B"},
				{ID: "c", Title: "C"},
				{ID: "d", Title: "D"},
			},
		})
		require.NoError(t, err)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(rec.body, &payload))
		interactive := payload["interactive"].(map[string]any)
		assert.Equal(t, "button", interactive["type"])
		buttons := interactive["action"].(map[string]any)["buttons"].([]any)
		assert.Len(t, buttons, 3)

		first := buttons[0].(map[string]any)
		assert.Equal(t, "reply", first["type"])
		assert.Equal(t, "a", first["reply"].(map[string]any)["id"])
	})

	t.Run("Header And Footer", func(t *testing.T) {
		client, rec := newTestClient(t, respondAccepted)

		_, err := client.SendButtons(ButtonsInput{
			To:      "15551234567",
			Body:    "Pick one",
			Header:  "Menu",
			Footer:  "Reply anytime",
			Buttons: []Button{{ID: "a", Title: "A"}},
		})
		require.NoError(t, err)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(rec.body, &payload))
		interactive := payload["interactive"].(map[string]any)
		assert.Equal(t, "Menu", interactive["header"].(map[string]any)["text"])
		assert.Equal(t, "Reply anytime", interactive["footer"].(map[string]any)["text"])
	})

	t.Run("No Buttons", func(t *testing.T) {
		client, rec := newTestClient(t, respondAccepted)

		_, err := client.SendButtons(ButtonsInput{To: "15551234567", Body: "Pick one"})
		assert.True(t, IsValidationError(err))
		assert.Equal(t, 0, rec.hits)
	})
}

func TestSendList(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		client, rec := newTestClient(t, respondAccepted)

		_, err := client.SendList(ListInput{
			To:         "15551234567",
			Body:       "Our plans",
			ButtonText: "See plans",
			Sections: []Section{
				{Title: "Monthly", Rows: []Row{{ID: "m1", Title: "Basic", Description: "R$ 29"}}},
				{Title: "Yearly", Rows: []Row{{ID: "y1", Title: "Basic"}}},
			},
		})
		require.NoError(t, err)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(rec.body, &payload))
		action := payload["interactive"].(map[string]any)["action"].(map[string]any)
		assert.Equal(t, "See plans", action["button"])
		assert.Len(t, action["sections"].([]any), 2)
	})

	t.Run("Too Many Rows", func(t *testing.T) {
		client, rec := newTestClient(t, respondAccepted)

		rows := make([]Row, 11)
		for i := range rows {
			rows[i] = Row{ID: "r", Title: "Row"}
		}
		_, err := client.SendList(ListInput{
			To:       "15551234567",
			Body:     "Too long",
			Sections: []Section{{Rows: rows}},
		})
		assert.True(t, IsValidationError(err))
		assert.Equal(t, 0, rec.hits)
	})
}

func TestSendTemplate(t *testing.T) {
	client, rec := newTestClient(t, respondAccepted)

	_, err := client.SendTemplate(TemplateInput{
		To:         "15551234567",
		Name:       "order_confirmation",
		Components: []Component{BodyParameters("Order123", "R$ 499")},
	})
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.body, &payload))
	template := payload["template"].(map[string]any)
	assert.Equal(t, "order_confirmation", template["name"])
	assert.Equal(t, "en", template["language"].(map[string]any)["code"], "language defaults to en")
	assert.Len(t, template["components"].([]any), 1)
}

func TestSendLocation(t *testing.T) {
	client, rec := newTestClient(t, respondAccepted)

	_, err := client.SendLocation(LocationInput{
		To:        "15551234567",
		Latitude:  -23.5505,
		Longitude: -46.6333,
		Name:      "Office",
	})
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.body, &payload))
	location := payload["location"].(map[string]any)
	assert.InDelta(t, -23.5505, location["latitude"], 0.0001)
	assert.Equal(t, "Office", location["name"])
	assert.NotContains(t, location, "address")
}

func TestMarkAsRead(t *testing.T) {
	client, rec := newTestClient(t, respondAccepted)

	err := client.MarkAsRead("wamid.abc")
	require.NoError(t, err)
	assert.Equal(t,
		`{"messaging_product":"whatsapp","status":"read","message_id":"wamid.abc"}`,
		string(rec.body),
	)
}
