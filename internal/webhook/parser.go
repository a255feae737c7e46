package webhook

import (
	"encoding/json"
	"fmt"
)

// Event is an inbound message flattened out of the entry/changes/value
// nesting. Exactly one of the type-specific fields is set, matching Type.
type Event struct {
	From        string
	MessageID   string
	Timestamp   string
	Type        string
	ProfileName string

	Text        string
	Image       *Media
	Video       *Media
	Audio       *Media
	Document    *Media
	Sticker     *Media
	Location    *Location
	Contacts    []Card
	Button      *Button
	Interactive *Interactive
}

// StatusUpdate is a delivery receipt for an outbound message: sent,
// delivered, read or failed.
type StatusUpdate struct {
	MessageID    string
	Status       string
	Timestamp    string
	RecipientID  string
	Errors       []StatusError
	Conversation *Conversation
	Pricing      *Pricing
}

// ParseMessage extracts the first inbound message from a webhook body.
// Returns (nil, nil) when the payload carries no messages, e.g. a pure
// status delivery.
func ParseMessage(body []byte) (*Event, error) {
	value, err := changeValue(body)
	if err != nil {
		return nil, err
	}
	if value == nil || len(value.Messages) == 0 {
		return nil, nil
	}

	msg := value.Messages[0]
	event := &Event{
		From:        msg.From,
		MessageID:   msg.ID,
		Timestamp:   msg.Timestamp,
		Type:        msg.Type,
		Image:       msg.Image,
		Video:       msg.Video,
		Audio:       msg.Audio,
		Document:    msg.Document,
		Sticker:     msg.Sticker,
		Location:    msg.Location,
		Contacts:    msg.Contacts,
		Button:      msg.Button,
		Interactive: msg.Interactive,
	}
	if msg.Text != nil {
		event.Text = msg.Text.Body
	}
	if len(value.Contacts) > 0 {
		event.ProfileName = value.Contacts[0].Profile.Name
	}
	return event, nil
}

// ParseStatus extracts the first status update from a webhook body.
// Returns (nil, nil) when the payload carries no statuses.
func ParseStatus(body []byte) (*StatusUpdate, error) {
	value, err := changeValue(body)
	if err != nil {
		return nil, err
	}
	if value == nil || len(value.Statuses) == 0 {
		return nil, nil
	}

	status := value.Statuses[0]
	return &StatusUpdate{
		MessageID:    status.ID,
		Status:       status.Status,
		Timestamp:    status.Timestamp,
		RecipientID:  status.RecipientID,
		Errors:       status.Errors,
		Conversation: status.Conversation,
		Pricing:      status.Pricing,
	}, nil
}

func changeValue(body []byte) (*ChangeValue, error) {
	var payload Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("webhook: parse payload: %w", err)
	}
	if len(payload.Entry) == 0 || len(payload.Entry[0].Changes) == 0 {
		return nil, nil
	}
	return &payload.Entry[0].Changes[0].Value, nil
}
