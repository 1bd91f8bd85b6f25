package site

import (
	"net/url"
	"slices"
	"strings"

	"github.com/mindcare-edu/mindcare/internal/validation"
)

// ContactType is an option of the contact form's type selector.
type ContactType struct {
	Value string
	Label string
}

// ContactTypes lists the selectable inquiry types. The first is the default.
var ContactTypes = []ContactType{
	{Value: "general", Label: "General Inquiry"},
	{Value: "student", Label: "Student Support"},
	{Value: "university", Label: "University Partnership"},
	{Value: "press", Label: "Press & Media"},
	{Value: "technical", Label: "Technical Support"},
}

// ContactForm is the state of the contact page form. Messages are not delivered anywhere.
type ContactForm struct {
	Name         string `json:"name" validate:"required,max=100"`
	Email        string `json:"email" validate:"required,email,max=254"`
	Organization string `json:"organization" validate:"max=200"`
	ContactType  string `json:"contactType" validate:"oneof=general student university press technical"`
	Message      string `json:"message" validate:"required,max=5000"`
}

// NewContactForm returns an empty form with the default contact type.
func NewContactForm() ContactForm {
	return ContactForm{ContactType: ContactTypes[0].Value}
}

// ParseContactForm reads a submitted form. Unknown contact types fall back to the default.
func ParseContactForm(values url.Values) ContactForm {
	f := ContactForm{
		Name:         strings.TrimSpace(values.Get("name")),
		Email:        strings.TrimSpace(values.Get("email")),
		Organization: strings.TrimSpace(values.Get("organization")),
		ContactType:  values.Get("contactType"),
		Message:      strings.TrimSpace(values.Get("message")),
	}
	if !slices.ContainsFunc(ContactTypes, func(t ContactType) bool { return t.Value == f.ContactType }) {
		f.ContactType = ContactTypes[0].Value
	}
	return f
}

// Submit checks the form. On success the returned form is reset.
func (f ContactForm) Submit(v *validation.Validator) (ContactForm, Notice) {
	if f.Name == "" || f.Email == "" || f.Message == "" {
		return f, Notice{
			Title:       "Missing Information",
			Description: "Please fill in all required fields.",
			Variant:     "destructive",
		}
	}
	if err := v.Struct(f); err != nil {
		return f, Notice{
			Title:       "Please check your message",
			Description: strings.TrimPrefix(err.Error(), validation.ErrInvalid.Error()+": "),
			Variant:     "destructive",
		}
	}
	return NewContactForm(), Notice{
		Title:       "Message Sent Successfully!",
		Description: "We'll get back to you within 24 hours.",
		Variant:     "default",
	}
}
