// Copyright (c) 2026 YaMDB. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
)

// Mailer delivers confirmation codes to users.
//
// # Why an interface?
//
// Production uses SMTP; development and tests use [LogMailer] so no real
// emails leave the machine.
type Mailer interface {
	SendConfirmationCode(context context.Context, email, username, code string) error
}

// # SMTP Delivery

// SMTPMailer sends confirmation emails through a plain SMTP relay.
type SMTPMailer struct {
	host     string
	port     int
	from     string
	password string
}

// NewSMTPMailer creates a new SMTPMailer.
func NewSMTPMailer(host string, port int, from, password string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, from: from, password: password}
}

/*
SendConfirmationCode delivers the signup confirmation code by email.

Parameters:
  - context: context.Context (unused by net/smtp but kept for the contract)
  - email: string
  - username: string
  - code: string

Returns:
  - error: Delivery failures
*/
func (mailer *SMTPMailer) SendConfirmationCode(_ context.Context, email, username, code string) error {
	addr := fmt.Sprintf("%s:%d", mailer.host, mailer.port)

	var auth smtp.Auth
	if mailer.password != "" {
		auth = smtp.PlainAuth("", mailer.from, mailer.password, mailer.host)
	}

	var body strings.Builder
	body.WriteString("From: " + mailer.from + "\r\n")
	body.WriteString("To: " + email + "\r\n")
	body.WriteString("Subject: YaMDB confirmation code\r\n")
	body.WriteString("\r\n")
	body.WriteString(fmt.Sprintf("Hello %s,\r\n\r\nYour confirmation code is: %s\r\n", username, code))

	if err := smtp.SendMail(addr, auth, mailer.from, []string{email}, []byte(body.String())); err != nil {
		return fmt.Errorf("smtp_send_failed: %w", err)
	}

	return nil
}

// # Development Delivery

// LogMailer writes confirmation codes to the structured log instead of
// sending real emails. Used in development environments.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a new LogMailer.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// SendConfirmationCode logs the code at INFO level.
func (mailer *LogMailer) SendConfirmationCode(context context.Context, email, username, code string) error {
	mailer.logger.InfoContext(context, "confirmation_code_issued",
		slog.String("email", email),
		slog.String("username", username),
		slog.String("code", code),
	)
	return nil
}
