package contact

import (
	"net/url"
	"strings"
)

// WhatsAppLink builds a chat deep link with prefilled text. The phone number
// keeps digits only; the text is percent-encoded.
func WhatsAppLink(phone, text string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	u := "https://wa.me/" + digits.String()
	if text != "" {
		u += "?text=" + url.QueryEscape(text)
	}
	return u
}
