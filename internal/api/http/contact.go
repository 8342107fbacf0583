package http

import (
	"log"
	"net/http"

	"github.com/Untraddgit/untraddcareer-sub001/internal/contact"
	"github.com/Untraddgit/untraddcareer-sub001/internal/notify"
)

// POST /api/contact validates the form, forwards it to the external relay,
// then emails a copy to the ops inbox. The relay is the source of truth for
// success: an email failure is logged but does not fail the request.
func ContactHandler(relay *contact.Relay, mailer notify.EmailService, notifyTo string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg contact.Message
		if !decodeJSON(w, r, &msg) {
			return
		}
		if err := relay.Send(r.Context(), msg); err != nil {
			log.Printf("contact: relay: %v", err)
			http.Error(w, "could not deliver message", http.StatusBadGateway)
			return
		}
		if notifyTo != "" {
			if err := mailer.Send(r.Context(), notifyTo, "New contact form message", msg.Summary()); err != nil {
				log.Printf("contact: notify email: %v", err)
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "sent"})
	}
}

// GET /api/whatsapp-link?text= builds a deep link into the configured chat number.
func WhatsAppLinkHandler(phone, defaultText string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text := r.URL.Query().Get("text")
		if text == "" {
			text = defaultText
		}
		writeJSON(w, http.StatusOK, map[string]string{"url": contact.WhatsAppLink(phone, text)})
	}
}
