// internal/application/usecase/contact_usecase_test.go
package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	sent []ContactMessage
	err  error
}

func (f *fakeMailer) SendContactEmail(_ context.Context, msg ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func TestContactSend(t *testing.T) {
	mailer := &fakeMailer{}
	uc := NewContactUsecase(mailer)

	err := uc.Send(context.Background(), ContactMessage{
		Name:    "  Jean Dupont ",
		Email:   "jean@example.com",
		Message: "Bonjour, une question sur la gravure.",
	})
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "Jean Dupont", mailer.sent[0].Name)
}

func TestContactValidation(t *testing.T) {
	uc := NewContactUsecase(&fakeMailer{})
	ctx := context.Background()

	err := uc.Send(ctx, ContactMessage{Name: "Jean", Email: "jean@example.com"})
	assert.ErrorIs(t, err, ErrContactInvalidArgument)

	err = uc.Send(ctx, ContactMessage{Name: "Jean", Email: "not an email", Message: "hi"})
	assert.ErrorIs(t, err, ErrContactInvalidEmail)

	// phone stays optional
	err = uc.Send(ctx, ContactMessage{Name: "Jean", Email: "jean@example.com", Message: "hi"})
	assert.NoError(t, err)
}
