package whatsapp

import "strconv"

// Template component helpers. A template has up to three parameterized
// parts: a header (text or media), a body with positional parameters, and
// buttons with dynamic values. Each helper returns one Component ready to
// drop into TemplateInput.Components.

// BodyParameters fills the {{1}}, {{2}}, ... placeholders of the body text.
func BodyParameters(values ...string) Component {
	params := make([]map[string]any, 0, len(values))
	for _, v := range values {
		params = append(params, TextParameter(v))
	}
	return Component{"type": "body", "parameters": params}
}

// BodyComponent builds a body component from already-built parameters, for
// mixing text, currency and date_time values.
func BodyComponent(parameters ...map[string]any) Component {
	return Component{"type": "body", "parameters": parameters}
}

func HeaderText(text string) Component {
	return Component{
		"type":       "header",
		"parameters": []map[string]any{{"type": "text", "text": text}},
	}
}

func HeaderImage(media MediaRef) (Component, error) {
	return headerMedia("image", media, "")
}

func HeaderVideo(media MediaRef) (Component, error) {
	return headerMedia("video", media, "")
}

func HeaderDocument(media MediaRef, filename string) (Component, error) {
	return headerMedia("document", media, filename)
}

func headerMedia(mediaType string, media MediaRef, filename string) (Component, error) {
	obj, err := media.object()
	if err != nil {
		return nil, err
	}
	obj.Filename = filename
	return Component{
		"type":       "header",
		"parameters": []map[string]any{{"type": mediaType, mediaType: obj}},
	}, nil
}

// ButtonURL fills the dynamic suffix of a URL button. Index is the button's
// zero-based position in the approved template.
func ButtonURL(index int, urlSuffix string) Component {
	return buttonComponent("url", index, map[string]any{"type": "text", "text": urlSuffix})
}

// ButtonQuickReply sets the payload echoed back when a quick-reply button
// is tapped.
func ButtonQuickReply(index int, payload string) Component {
	return buttonComponent("quick_reply", index, map[string]any{"type": "payload", "payload": payload})
}

func buttonComponent(subType string, index int, parameter map[string]any) Component {
	return Component{
		"type":       "button",
		"sub_type":   subType,
		"index":      strconv.Itoa(index),
		"parameters": []map[string]any{parameter},
	}
}

func TextParameter(value string) map[string]any {
	return map[string]any{"type": "text", "text": value}
}

// CurrencyParameter renders a localized amount. amount1000 is the value
// multiplied by 1000, per the Graph API convention.
func CurrencyParameter(fallback, code string, amount1000 int64) map[string]any {
	return map[string]any{
		"type": "currency",
		"currency": map[string]any{
			"fallback_value": fallback,
			"code":           code,
			"amount_1000":    amount1000,
		},
	}
}

// DateTimeParameter passes a pre-formatted date string; the provider does
// not localize it.
func DateTimeParameter(fallback string) map[string]any {
	return map[string]any{
		"type":      "date_time",
		"date_time": map[string]any{"fallback_value": fallback},
	}
}
