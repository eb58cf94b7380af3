package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/katariya/portfolio/internal/config"
)

func testSMTP() config.SMTP {
	return config.SMTP{
		Host:     "smtp.example.com",
		Port:     587,
		User:     "relay@example.com",
		Password: "pw",
		To:       "owner@example.com",
	}
}

func testMessage() Message {
	return Message{Name: "Ada", Email: "ada@example.com", Message: "Hello there"}
}

func TestSend_NotConfigured(t *testing.T) {
	cfg := testSMTP()
	cfg.Password = ""

	s := NewSMTPSender(cfg)
	err := s.Send(context.Background(), testMessage())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSend_Delivers(t *testing.T) {
	s := NewSMTPSender(testSMTP())

	var sent *gomail.Message
	s.dial = func(m *gomail.Message) error {
		sent = m
		return nil
	}

	require.NoError(t, s.Send(context.Background(), testMessage()))
	require.NotNil(t, sent)
	assert.Equal(t, []string{"owner@example.com"}, sent.GetHeader("To"))
	assert.Equal(t, []string{"ada@example.com"}, sent.GetHeader("Reply-To"))
	assert.Equal(t, []string{"Portfolio Contact: Ada"}, sent.GetHeader("Subject"))
}

func TestSend_DialError(t *testing.T) {
	s := NewSMTPSender(testSMTP())
	boom := errors.New("connection refused")
	s.dial = func(*gomail.Message) error { return boom }

	err := s.Send(context.Background(), testMessage())
	assert.ErrorIs(t, err, boom)
}

func TestSend_CanceledContext(t *testing.T) {
	s := NewSMTPSender(testSMTP())
	s.dial = func(*gomail.Message) error {
		t.Fatal("should not dial")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Send(ctx, testMessage()), context.Canceled)
}

func TestBody(t *testing.T) {
	body := Body(testMessage())
	assert.Contains(t, body, "Name: Ada")
	assert.Contains(t, body, "Email: ada@example.com")
	assert.Contains(t, body, "Hello there")
}
