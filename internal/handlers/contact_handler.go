package handlers

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"time"

	"nihongoclass/internal/models"
	"nihongoclass/internal/security"
	"nihongoclass/internal/service"
)

const (
	contactDemoNotice = "문의가 임시로 제출되었습니다. (데모) 수업 시간에 교사에게 직접 문의해 주세요!"
	contactSentNotice = "문의가 전송되었습니다. 선생님이 확인 후 답변드릴게요!"
	contactFailNotice = "지금은 문의를 보낼 수 없어요. 수업 시간에 교사에게 직접 문의해 주세요."
)

// ContactHandler handles the FAQ page contact form
type ContactHandler struct {
	contact   *service.ContactService
	templates *template.Template
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contact *service.ContactService, templates *template.Template) *ContactHandler {
	return &ContactHandler{contact: contact, templates: templates}
}

// Submit validates and delivers a contact message, then shows the FAQ page
// with the outcome.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "Error parsing contact form", err)
		return
	}

	view := newFAQView(r)
	view.Form = ContactForm{
		Name:    r.FormValue("name"),
		Message: r.FormValue("message"),
	}

	msg := models.ContactMessage{
		Name:        view.Form.Name,
		Message:     view.Form.Message,
		RemoteAddr:  security.GetClientIP(r),
		SubmittedAt: time.Now(),
	}

	err := h.contact.Submit(r.Context(), msg)
	switch {
	case err == nil:
		view.Form = ContactForm{}
		view.Success = contactDemoNotice
		if h.contact.IsEnabled() {
			view.Success = contactSentNotice
		}
		render(w, h.templates, "faq.tmpl", http.StatusOK, view)
	case errors.Is(err, service.ErrContactMessageMissing):
		view.Error = "질문/하고 싶은 말을 입력해 주세요."
		render(w, h.templates, "faq.tmpl", http.StatusBadRequest, view)
	case errors.Is(err, service.ErrContactNameTooLong):
		view.Error = "이름이 너무 길어요."
		render(w, h.templates, "faq.tmpl", http.StatusBadRequest, view)
	case errors.Is(err, service.ErrContactMessageTooLong):
		view.Error = "내용이 너무 길어요. 2000자 이내로 줄여 주세요."
		render(w, h.templates, "faq.tmpl", http.StatusBadRequest, view)
	default:
		log.Printf("Error delivering contact message: %v", err)
		view.Error = contactFailNotice
		render(w, h.templates, "faq.tmpl", http.StatusBadGateway, view)
	}
}
