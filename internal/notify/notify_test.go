package notify

import (
	"context"
	"errors"
	"net/smtp"
	"testing"

	"github.com/jonathan/cv-builder/internal/config"
	"github.com/jonathan/cv-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smtpConfig() config.SMTPConfig {
	return config.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "mailer",
		Password: "secret",
		From:     "cv@example.com",
	}
}

func TestNotifyNewCV_SendsMessage(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	n := New(smtpConfig())
	n.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	cv := &types.CV{FullName: "Ana Gómez", Email: "ana@example.com", Phone: "+34 600 000 000"}
	require.NoError(t, n.NotifyNewCV(context.Background(), "hr@example.com", cv))

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "cv@example.com", gotFrom)
	assert.Equal(t, []string{"hr@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: Nuevo CV recibido: Ana Gómez")
	assert.Contains(t, string(gotMsg), "ana@example.com")
}

func TestNotifyNewCV_DisabledConfigIsNoOp(t *testing.T) {
	n := New(config.SMTPConfig{})
	n.send = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send should not be called when SMTP is not configured")
		return nil
	}

	err := n.NotifyNewCV(context.Background(), "hr@example.com", &types.CV{FullName: "Ana"})
	assert.NoError(t, err)
}

func TestNotifyNewCV_EmptyRecipientIsNoOp(t *testing.T) {
	n := New(smtpConfig())
	called := false
	n.send = func(string, smtp.Auth, string, []string, []byte) error {
		called = true
		return nil
	}

	require.NoError(t, n.NotifyNewCV(context.Background(), "", &types.CV{FullName: "Ana"}))
	assert.False(t, called)
}

func TestNotifyNewCV_SendFailure(t *testing.T) {
	n := New(smtpConfig())
	n.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	err := n.NotifyNewCV(context.Background(), "hr@example.com", &types.CV{FullName: "Ana"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notification email")
}

func TestNotifyNewCV_CanceledContext(t *testing.T) {
	n := New(smtpConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := n.NotifyNewCV(ctx, "hr@example.com", &types.CV{FullName: "Ana"})
	assert.Error(t, err)
}
