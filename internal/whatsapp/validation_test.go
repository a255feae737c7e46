package whatsapp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhoneNumber(t *testing.T) {
	tests := []struct {
		name        string
		phone       string
		countryCode string
		want        string
	}{
		{"Bare Number", "9876543210", "91", "919876543210"},
		{"Formatted With Plus", "+91 98765 43210", "91", "919876543210"},
		{"Already Prefixed", "919876543210", "91", "919876543210"},
		{"Punctuation", "(11) 99999-9999", "55", "5511999999999"},
		{"No Country Code", "15551234567", "", "15551234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPhoneNumber(tt.phone, tt.countryCode))
		})
	}
}

func TestValidPhoneNumber(t *testing.T) {
	assert.True(t, ValidPhoneNumber("15551234567"))
	assert.True(t, ValidPhoneNumber("+55 (11) 99999-9999"))
	assert.False(t, ValidPhoneNumber("12345"))
	assert.False(t, ValidPhoneNumber("1234567890123456"))
	assert.False(t, ValidPhoneNumber(""))
}

func TestTruncateMessage(t *testing.T) {
	short := "Hello World"
	assert.Equal(t, short, TruncateMessage(short))

	long := strings.Repeat("a", MaxMessageLength+100)
	got := TruncateMessage(long)
	assert.Len(t, []rune(got), MaxMessageLength)
	assert.True(t, strings.HasSuffix(got, "..."))

	exact := strings.Repeat("b", MaxMessageLength)
	assert.Equal(t, exact, TruncateMessage(exact))
}
