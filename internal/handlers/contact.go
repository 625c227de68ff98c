package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"goldenhills/internal/contact"
	"goldenhills/internal/models"
	"goldenhills/internal/render"
)

// Contact renders the empty contact form.
func (s *Site) Contact(w http.ResponseWriter, r *http.Request) {
	s.renderer.Page(w, http.StatusOK, "contact", &render.PageData{
		Title:    "Contact",
		Section:  "contact",
		Settings: s.siteSettings(r.Context()),
		Data:     emptyForm(),
	})
}

// ContactSubmit validates the form and forwards it to the contact
// webhook. The form state is preserved on every failure path so the
// visitor never retypes their message.
func (s *Site) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	settings := s.siteSettings(ctx)

	if err := r.ParseForm(); err != nil {
		s.contactError(w, http.StatusBadRequest, settings, "", "", "", "Could not read the form. Please try again.")
		return
	}

	name := strings.TrimSpace(r.PostFormValue("name"))
	email := strings.TrimSpace(r.PostFormValue("email"))
	message := strings.TrimSpace(r.PostFormValue("message"))

	if msg := validateContact(name, email, message); msg != "" {
		s.contactError(w, http.StatusUnprocessableEntity, settings, name, email, message, msg)
		return
	}

	if !s.notifier.Configured() {
		slog.Error("contact form submitted but no webhook configured")
		s.contactError(w, http.StatusServiceUnavailable, settings, name, email, message,
			"Messages are temporarily unavailable. Please email us directly.")
		return
	}

	reference, err := s.notifier.Send(ctx, contact.Submission{
		Name:    name,
		Email:   email,
		Message: message,
	})
	if err != nil {
		slog.Error("contact webhook delivery failed", "error", err)
		s.contactError(w, http.StatusBadGateway, settings, name, email, message,
			"We couldn't send your message right now. Please try again in a moment.")
		return
	}

	slog.Info("contact form delivered", "reference", reference)
	data := emptyForm()
	data["Sent"] = true
	data["Reference"] = reference
	s.renderer.Page(w, http.StatusOK, "contact", &render.PageData{
		Title:    "Contact",
		Section:  "contact",
		Settings: settings,
		Data:     data,
	})
}

// emptyForm is the template data for a blank contact form. The form
// fields print unconditionally, so they must always be present.
func emptyForm() map[string]any {
	return map[string]any{"Name": "", "Email": "", "Message": ""}
}

// contactError re-renders the form with the submitted values intact.
func (s *Site) contactError(w http.ResponseWriter, status int, settings *models.SiteSettings, name, email, message, errMsg string) {
	s.renderer.Page(w, status, "contact", &render.PageData{
		Title:    "Contact",
		Section:  "contact",
		Settings: settings,
		Data: map[string]any{
			"Name":    name,
			"Email":   email,
			"Message": message,
			"Error":   errMsg,
		},
	})
}
