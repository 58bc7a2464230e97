// internal/adapters/out/mail/contact_mailer.go
package mail

import (
	"context"
	"fmt"
	"strings"

	"coutellerie/internal/application/usecase"
)

// ContactMailer delivers storefront contact-form submissions to the shop's
// inbox. Reply-To is set to the customer so the shop can answer directly.
type ContactMailer struct {
	client      EmailClient
	fromAddress string
	toAddress   string
}

// NewContactMailer wires the mailer.
//
//   - client      : SendGrid or another EmailClient implementation
//   - fromAddress : verified sender address (e.g. no-reply@shop.example)
//   - toAddress   : the shop inbox contact mails land in
func NewContactMailer(client EmailClient, fromAddress, toAddress string) *ContactMailer {
	return &ContactMailer{
		client:      client,
		fromAddress: strings.TrimSpace(fromAddress),
		toAddress:   strings.TrimSpace(toAddress),
	}
}

// SendContactEmail implements ContactUsecase's outbound port.
func (m *ContactMailer) SendContactEmail(ctx context.Context, msg usecase.ContactMessage) error {
	if m == nil || m.client == nil {
		return fmt.Errorf("contact mailer is not configured")
	}
	if m.toAddress == "" {
		return fmt.Errorf("contact mailer destination address is empty")
	}

	subject := fmt.Sprintf("Nouveau message de contact - %s", msg.Name)

	phone := strings.TrimSpace(msg.Phone)
	if phone == "" {
		phone = "(non renseigné)"
	}

	body := fmt.Sprintf(
		`Un nouveau message a été envoyé depuis le formulaire de contact.

  Nom       : %s
  Email     : %s
  Téléphone : %s

Message :

%s
`,
		msg.Name,
		msg.Email,
		phone,
		msg.Message,
	)

	return m.client.Send(ctx, m.fromAddress, m.toAddress, msg.Email, subject, body)
}
