package whatsapp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultAPIVersion is the Graph API version used when none is given.
	DefaultAPIVersion = "v21.0"

	defaultBaseURL = "https://graph.facebook.com"
)

// Client talks to the WhatsApp Business Cloud API for one phone number.
// Credentials are fixed at construction; a Client is safe for concurrent use.
type Client struct {
	phoneNumberID string
	accessToken   string
	apiVersion    string
	baseURL       string
	http          *http.Client
}

func NewClient(phoneNumberID, accessToken string) *Client {
	return NewClientWithVersion(phoneNumberID, accessToken, DefaultAPIVersion)
}

func NewClientWithVersion(phoneNumberID, accessToken, apiVersion string) *Client {
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	return &Client{
		phoneNumberID: phoneNumberID,
		accessToken:   accessToken,
		apiVersion:    apiVersion,
		baseURL:       defaultBaseURL,
		http:          &http.Client{Timeout: 30 * time.Second},
	}
}

// SetBaseURL points the client at a different Graph host. Used for proxies
// and for test servers.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimRight(baseURL, "/")
}

// Send posts a pre-built payload to the messages endpoint. Most callers use
// the typed Send* helpers in messages.go instead.
func (c *Client) Send(payload any) (*SendResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("whatsapp: marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s/messages", c.baseURL, c.apiVersion, c.phoneNumberID)
	respBody, err := c.do("POST", url, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var result SendResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("whatsapp: decode response: %w", err)
	}
	return &result, nil
}

// MarkAsRead flags an inbound message as read, moving the read receipt on
// the sender's side.
func (c *Client) MarkAsRead(messageID string) error {
	payload := markReadRequest{
		MessagingProduct: "whatsapp",
		Status:           "read",
		MessageID:        messageID,
	}
	_, err := c.Send(payload)
	return err
}

// do issues one authorized request and returns the raw body on 2xx.
// Non-2xx responses come back as the typed errors from errors.go.
func (c *Client) do(method, url, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, fmt.Errorf("whatsapp: create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, mapStatusError(resp.StatusCode, respBody)
	}
	return respBody, nil
}
