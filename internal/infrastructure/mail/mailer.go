// Package mail delivers the system's outbound notifications over SMTP.
// Delivery is best-effort by contract: every send reports success as a
// boolean, and failures are logged rather than propagated.
package mail

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"mime"
	"net/smtp"

	"github.com/sis/backend/internal/application/notification"
	"github.com/sis/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// SMTPMailer implements the notification.Mailer port over plain SMTP.
type SMTPMailer struct {
	cfg       config.MailConfig
	templates *template.Template
	logger    *zap.Logger
}

// Ensure SMTPMailer implements notification.Mailer
var _ notification.Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer creates a mailer from configuration
func NewSMTPMailer(cfg config.MailConfig, logger *zap.Logger) (*SMTPMailer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	root := template.New("mail")
	for name, body := range mailTemplates {
		if _, err := root.New(name).Parse(body); err != nil {
			return nil, fmt.Errorf("failed to parse mail template %s: %w", name, err)
		}
	}

	return &SMTPMailer{
		cfg:       cfg,
		templates: root,
		logger:    logger,
	}, nil
}

// SendApplicationConfirmation acknowledges a submitted application
func (m *SMTPMailer) SendApplicationConfirmation(ctx context.Context, to, applicantName, applicationID string) bool {
	return m.send(ctx, to, "Application Received", templateApplicationConfirmation, map[string]any{
		"Name":          applicantName,
		"ApplicationID": applicationID,
	}, nil)
}

// SendAdmissionOffer delivers the admission offer with the letter attached
func (m *SMTPMailer) SendAdmissionOffer(ctx context.Context, to, applicantName, studentNumber, programName string, letter []byte) bool {
	var attachments []notification.Attachment
	if len(letter) > 0 {
		attachments = append(attachments, notification.Attachment{
			Filename:    "Admission_Letter.pdf",
			ContentType: "application/pdf",
			Content:     letter,
		})
	}
	return m.send(ctx, to, "Offer of Admission", templateAdmissionOffer, map[string]any{
		"Name":          applicantName,
		"StudentNumber": studentNumber,
		"Program":       programName,
	}, attachments)
}

// SendApplicationRejection delivers a rejection notice
func (m *SMTPMailer) SendApplicationRejection(ctx context.Context, to, applicantName, reason string) bool {
	return m.send(ctx, to, "Admission Application Outcome", templateApplicationRejection, map[string]any{
		"Name":   applicantName,
		"Reason": reason,
	}, nil)
}

// SendPaymentConfirmation acknowledges a recorded payment
func (m *SMTPMailer) SendPaymentConfirmation(ctx context.Context, to, studentName string, amount float64, receiptNumber, description string) bool {
	return m.send(ctx, to, "Payment Received", templatePaymentConfirmation, map[string]any{
		"Name":          studentName,
		"Amount":        fmt.Sprintf("%.2f", amount),
		"ReceiptNumber": receiptNumber,
		"Description":   description,
	}, nil)
}

// SendEnrollmentConfirmation acknowledges a semester enrollment
func (m *SMTPMailer) SendEnrollmentConfirmation(ctx context.Context, to, studentName, studentNumber, programName string) bool {
	return m.send(ctx, to, "Enrollment Confirmation", templateEnrollmentConfirmation, map[string]any{
		"Name":          studentName,
		"StudentNumber": studentNumber,
		"Program":       programName,
	}, nil)
}

// SendCourseRegistrationConfirmation acknowledges a course registration
func (m *SMTPMailer) SendCourseRegistrationConfirmation(ctx context.Context, to, studentName string, courses []string, totalCredits int) bool {
	return m.send(ctx, to, "Course Registration Confirmation", templateCourseRegistration, map[string]any{
		"Name":         studentName,
		"Courses":      courses,
		"TotalCredits": totalCredits,
	}, nil)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, templateName string, data map[string]any, attachments []notification.Attachment) bool {
	if to == "" {
		m.logger.Warn("skipping notification with empty recipient",
			zap.String("template", templateName))
		return false
	}
	if err := ctx.Err(); err != nil {
		m.logger.Warn("skipping notification, context done",
			zap.String("template", templateName),
			zap.Error(err))
		return false
	}

	var body bytes.Buffer
	if err := m.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		m.logger.Error("failed to render mail template",
			zap.String("template", templateName),
			zap.Error(err))
		return false
	}

	msg := m.buildMessage(to, subject, body.String(), attachments)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, msg); err != nil {
		m.logger.Error("failed to send notification",
			zap.String("template", templateName),
			zap.String("to", to),
			zap.Error(err))
		return false
	}

	m.logger.Info("notification sent",
		zap.String("template", templateName),
		zap.String("to", to))
	return true
}

const mimeBoundary = "sis-mail-boundary-4f9a1c"

// buildMessage assembles an RFC 5322 message. With attachments the body is a
// multipart/mixed envelope with the HTML part first.
func (m *SMTPMailer) buildMessage(to, subject, htmlBody string, attachments []notification.Attachment) []byte {
	from := m.cfg.From
	if m.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", m.cfg.FromName), m.cfg.From)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	buf.WriteString("MIME-Version: 1.0\r\n")

	if len(attachments) == 0 {
		buf.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
		buf.WriteString(htmlBody)
		return buf.Bytes()
	}

	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%s\r\n\r\n", mimeBoundary)

	fmt.Fprintf(&buf, "--%s\r\n", mimeBoundary)
	buf.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	buf.WriteString(htmlBody)
	buf.WriteString("\r\n")

	for _, a := range attachments {
		fmt.Fprintf(&buf, "--%s\r\n", mimeBoundary)
		fmt.Fprintf(&buf, "Content-Type: %s\r\n", a.ContentType)
		fmt.Fprintf(&buf, "Content-Disposition: attachment; filename=%q\r\n", a.Filename)
		buf.WriteString("Content-Transfer-Encoding: base64\r\n\r\n")

		encoded := base64.StdEncoding.EncodeToString(a.Content)
		for len(encoded) > 76 {
			buf.WriteString(encoded[:76])
			buf.WriteString("\r\n")
			encoded = encoded[76:]
		}
		buf.WriteString(encoded)
		buf.WriteString("\r\n")
	}
	fmt.Fprintf(&buf, "--%s--\r\n", mimeBoundary)
	return buf.Bytes()
}
