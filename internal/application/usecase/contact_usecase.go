// internal/application/usecase/contact_usecase.go
package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

var (
	ErrContactInvalidArgument = errors.New("contact: name, email and message are required")
	ErrContactInvalidEmail    = errors.New("contact: invalid email format")
	ErrContactMailerMissing   = errors.New("contact: mailer is not configured")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactMessage is a validated contact-form submission.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// ContactMailerPort delivers a contact message to the shop's inbox.
type ContactMailerPort interface {
	SendContactEmail(ctx context.Context, msg ContactMessage) error
}

// ContactUsecase validates and forwards contact-form submissions.
type ContactUsecase struct {
	mailer ContactMailerPort
}

func NewContactUsecase(mailer ContactMailerPort) *ContactUsecase {
	return &ContactUsecase{mailer: mailer}
}

// Send validates the submission and delivers it. Phone is optional.
func (uc *ContactUsecase) Send(ctx context.Context, msg ContactMessage) error {
	if uc.mailer == nil {
		return ErrContactMailerMissing
	}

	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Phone = strings.TrimSpace(msg.Phone)
	msg.Message = strings.TrimSpace(msg.Message)

	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return ErrContactInvalidArgument
	}
	if !emailPattern.MatchString(msg.Email) {
		return ErrContactInvalidEmail
	}

	return uc.mailer.SendContactEmail(ctx, msg)
}
