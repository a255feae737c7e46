package whatsapp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
)

// UploadMedia pushes a binary stream to the media endpoint and returns the
// provider-assigned media ID. The ID can be referenced in later messages
// instead of a public link.
func (c *Client) UploadMedia(r io.Reader, filename, mimeType string) (string, error) {
	if mimeType == "" {
		return "", validationErr("mime_type", "mime type is required")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("messaging_product", "whatsapp"); err != nil {
		return "", fmt.Errorf("whatsapp: write form field: %w", err)
	}
	if err := writer.WriteField("type", mimeType); err != nil {
		return "", fmt.Errorf("whatsapp: write form field: %w", err)
	}

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("whatsapp: create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("whatsapp: copy media: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("whatsapp: close form: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s/media", c.baseURL, c.apiVersion, c.phoneNumberID)
	respBody, err := c.do("POST", url, writer.FormDataContentType(), &body)
	if err != nil {
		return "", err
	}

	var result uploadResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("whatsapp: decode upload response: %w", err)
	}
	return result.ID, nil
}

// GetMediaURL resolves a media ID to a short-lived download URL.
func (c *Client) GetMediaURL(mediaID string) (string, error) {
	url := fmt.Sprintf("%s/%s/%s", c.baseURL, c.apiVersion, mediaID)
	respBody, err := c.do("GET", url, "", nil)
	if err != nil {
		return "", err
	}

	var result mediaURLResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("whatsapp: decode media response: %w", err)
	}
	return result.URL, nil
}

// DownloadMedia fetches the bytes behind a URL returned by GetMediaURL.
// The URL expires quickly and requires the same bearer token.
func (c *Client) DownloadMedia(url string) ([]byte, error) {
	return c.do("GET", url, "", nil)
}
