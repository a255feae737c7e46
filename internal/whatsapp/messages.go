package whatsapp

// Payload composers for each outbound message kind. Every composer validates
// its input before any request goes out; a *ValidationError from here means
// no HTTP call was made.

const (
	maxReplyButtons  = 3
	maxListRows      = 10
	defaultListLabel = "View Options"
)

// SendText sends a plain text message.
func (c *Client) SendText(to, body string) (*SendResponse, error) {
	return c.SendTextInput(TextInput{To: to, Body: body})
}

// SendTextInput sends a text message with explicit options. PreviewURL
// enables link previews and is only serialized when set.
func (c *Client) SendTextInput(input TextInput) (*SendResponse, error) {
	if input.Body == "" {
		return nil, validationErr("body", "text body is required")
	}
	payload := textRequest{
		MessagingProduct: "whatsapp",
		To:               input.To,
		Type:             "text",
		Text: textBody{
			Body:       TruncateMessage(input.Body),
			PreviewURL: input.PreviewURL,
		},
	}
	return c.Send(payload)
}

func (c *Client) SendImage(to string, media MediaRef, caption string) (*SendResponse, error) {
	return c.sendMedia(to, "image", media, caption, "")
}

func (c *Client) SendVideo(to string, media MediaRef, caption string) (*SendResponse, error) {
	return c.sendMedia(to, "video", media, caption, "")
}

func (c *Client) SendAudio(to string, media MediaRef) (*SendResponse, error) {
	return c.sendMedia(to, "audio", media, "", "")
}

func (c *Client) SendSticker(to string, media MediaRef) (*SendResponse, error) {
	return c.sendMedia(to, "sticker", media, "", "")
}

func (c *Client) SendDocument(to string, media MediaRef, caption, filename string) (*SendResponse, error) {
	return c.sendMedia(to, "document", media, caption, filename)
}

// sendMedia builds the media payload shared by image, video, audio, document
// and sticker. Caption is only valid for image/video/document, filename only
// for document; both are dropped otherwise.
func (c *Client) sendMedia(to, mediaType string, media MediaRef, caption, filename string) (*SendResponse, error) {
	obj, err := media.object()
	if err != nil {
		return nil, err
	}
	switch mediaType {
	case "image", "video", "document":
		obj.Caption = caption
	}
	if mediaType == "document" {
		obj.Filename = filename
	}

	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              mediaType,
		mediaType:           obj,
	}
	return c.Send(payload)
}

func (c *Client) SendLocation(input LocationInput) (*SendResponse, error) {
	payload := locationRequest{
		MessagingProduct: "whatsapp",
		To:               input.To,
		Type:             "location",
		Location: locationObject{
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
			Name:      input.Name,
			Address:   input.Address,
		},
	}
	return c.Send(payload)
}

func (c *Client) SendContacts(to string, contacts []Contact) (*SendResponse, error) {
	if len(contacts) == 0 {
		return nil, validationErr("contacts", "at least one contact is required")
	}
	payload := contactsRequest{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "contacts",
		Contacts:         contacts,
	}
	return c.Send(payload)
}

// SendButtons sends an interactive reply-button message. The provider caps
// reply buttons at three; extras are dropped.
func (c *Client) SendButtons(input ButtonsInput) (*SendResponse, error) {
	if input.Body == "" {
		return nil, validationErr("body", "body text is required")
	}
	if len(input.Buttons) == 0 {
		return nil, validationErr("buttons", "at least one button is required")
	}

	buttons := input.Buttons
	if len(buttons) > maxReplyButtons {
		buttons = buttons[:maxReplyButtons]
	}

	replies := make([]map[string]any, 0, len(buttons))
	for _, b := range buttons {
		replies = append(replies, map[string]any{
			"type": "reply",
			"reply": map[string]string{
				"id":    b.ID,
				"title": b.Title,
			},
		})
	}

	interactive := map[string]any{
		"type":   "button",
		"body":   map[string]string{"text": input.Body},
		"action": map[string]any{"buttons": replies},
	}
	applyHeaderFooter(interactive, input.Header, input.Footer)

	return c.sendInteractive(input.To, interactive)
}

// SendList sends an interactive list message. The provider rejects lists
// with more than ten rows, so that fails validation here instead.
func (c *Client) SendList(input ListInput) (*SendResponse, error) {
	if input.Body == "" {
		return nil, validationErr("body", "body text is required")
	}
	if len(input.Sections) == 0 {
		return nil, validationErr("sections", "at least one section is required")
	}
	rows := 0
	for _, s := range input.Sections {
		rows += len(s.Rows)
	}
	if rows == 0 {
		return nil, validationErr("sections", "at least one row is required")
	}
	if rows > maxListRows {
		return nil, validationErr("sections", "a list supports at most 10 rows")
	}

	label := input.ButtonText
	if label == "" {
		label = defaultListLabel
	}

	interactive := map[string]any{
		"type": "list",
		"body": map[string]string{"text": input.Body},
		"action": map[string]any{
			"button":   label,
			"sections": input.Sections,
		},
	}
	applyHeaderFooter(interactive, input.Header, input.Footer)

	return c.sendInteractive(input.To, interactive)
}

func (c *Client) sendInteractive(to string, interactive map[string]any) (*SendResponse, error) {
	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "interactive",
		"interactive":       interactive,
	}
	return c.Send(payload)
}

func applyHeaderFooter(interactive map[string]any, header, footer string) {
	if header != "" {
		interactive["header"] = map[string]string{"type": "text", "text": header}
	}
	if footer != "" {
		interactive["footer"] = map[string]string{"text": footer}
	}
}

// SendTemplate sends a pre-approved template message. Templates are the only
// kind deliverable outside the 24-hour session window.
func (c *Client) SendTemplate(input TemplateInput) (*SendResponse, error) {
	if input.Name == "" {
		return nil, validationErr("template", "template name is required")
	}
	language := input.Language
	if language == "" {
		language = "en"
	}

	template := map[string]any{
		"name":     input.Name,
		"language": map[string]string{"code": language},
	}
	if len(input.Components) > 0 {
		template["components"] = input.Components
	}

	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                input.To,
		"type":              "template",
		"template":          template,
	}
	return c.Send(payload)
}
