package whatsapp

// MediaRef points at media either by public link or by a previously
// uploaded media ID. Exactly one of the two must be set.
type MediaRef struct {
	Link string
	ID   string
}

// Button is a reply button on an interactive message.
type Button struct {
	ID    string
	Title string
}

// Row is one selectable entry inside a list section.
type Row struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Section groups rows under an optional title.
type Section struct {
	Title string `json:"title,omitempty"`
	Rows  []Row  `json:"rows"`
}

// Component is one template component (body parameters, header, button).
// Built by the helpers in templates.go.
type Component map[string]any

type TextInput struct {
	To         string
	Body       string
	PreviewURL bool
}

type ButtonsInput struct {
	To      string
	Body    string
	Header  string
	Footer  string
	Buttons []Button
}

type ListInput struct {
	To         string
	Body       string
	Header     string
	Footer     string
	ButtonText string
	Sections   []Section
}

type TemplateInput struct {
	To         string
	Name       string
	Language   string
	Components []Component
}

type LocationInput struct {
	To        string
	Latitude  float64
	Longitude float64
	Name      string
	Address   string
}

// Contact is a minimal contact card.
type Contact struct {
	Name   ContactName    `json:"name"`
	Phones []ContactPhone `json:"phones,omitempty"`
	Emails []ContactEmail `json:"emails,omitempty"`
}

type ContactName struct {
	FormattedName string `json:"formatted_name"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
}

type ContactPhone struct {
	Phone string `json:"phone"`
	Type  string `json:"type,omitempty"`
	WaID  string `json:"wa_id,omitempty"`
}

type ContactEmail struct {
	Email string `json:"email"`
	Type  string `json:"type,omitempty"`
}

// textRequest is kept as a fixed struct so the serialized field set is
// exactly {messaging_product, to, type, text} with preview_url only when set.
type textRequest struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             textBody `json:"text"`
}

type textBody struct {
	Body       string `json:"body"`
	PreviewURL bool   `json:"preview_url,omitempty"`
}

type mediaObject struct {
	ID       string `json:"id,omitempty"`
	Link     string `json:"link,omitempty"`
	Caption  string `json:"caption,omitempty"`
	Filename string `json:"filename,omitempty"`
}

type locationRequest struct {
	MessagingProduct string         `json:"messaging_product"`
	To               string         `json:"to"`
	Type             string         `json:"type"`
	Location         locationObject `json:"location"`
}

type locationObject struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name,omitempty"`
	Address   string  `json:"address,omitempty"`
}

type contactsRequest struct {
	MessagingProduct string    `json:"messaging_product"`
	To               string    `json:"to"`
	Type             string    `json:"type"`
	Contacts         []Contact `json:"contacts"`
}

type markReadRequest struct {
	MessagingProduct string `json:"messaging_product"`
	Status           string `json:"status"`
	MessageID        string `json:"message_id"`
}

// SendResponse is the provider's reply to a successful message send.
type SendResponse struct {
	MessagingProduct string            `json:"messaging_product"`
	Contacts         []ResponseContact `json:"contacts"`
	Messages         []ResponseMessage `json:"messages"`
}

type ResponseContact struct {
	Input string `json:"input"`
	WaID  string `json:"wa_id"`
}

type ResponseMessage struct {
	ID string `json:"id"`
}

// MessageID returns the ID of the first accepted message, if any.
func (r *SendResponse) MessageID() string {
	if len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[0].ID
}

type uploadResponse struct {
	ID string `json:"id"`
}

type mediaURLResponse struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
	SHA256   string `json:"sha256"`
	FileSize int64  `json:"file_size"`
}
