// Package notification defines the outbound email port used by the admission,
// finance and enrollment workflows. Delivery is best-effort by contract: every
// send reports success as a boolean and never returns an error, so a failed
// notification can never fail the workflow that triggered it.
package notification

import "context"

// Attachment is a binary file attached to an email
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Mailer dispatches the system's templated HTML notifications
type Mailer interface {
	// SendApplicationConfirmation acknowledges a submitted application
	SendApplicationConfirmation(ctx context.Context, to, applicantName, applicationID string) bool
	// SendAdmissionOffer delivers the admission offer with the letter attached
	SendAdmissionOffer(ctx context.Context, to, applicantName, studentNumber, programName string, letter []byte) bool
	// SendApplicationRejection delivers a rejection notice
	SendApplicationRejection(ctx context.Context, to, applicantName, reason string) bool
	// SendPaymentConfirmation acknowledges a recorded payment
	SendPaymentConfirmation(ctx context.Context, to, studentName string, amount float64, receiptNumber, description string) bool
	// SendEnrollmentConfirmation acknowledges a semester enrollment
	SendEnrollmentConfirmation(ctx context.Context, to, studentName, studentNumber, programName string) bool
	// SendCourseRegistrationConfirmation acknowledges a course registration
	SendCourseRegistrationConfirmation(ctx context.Context, to, studentName string, courses []string, totalCredits int) bool
}
