package mail

// Template names for the six notification kinds
const (
	templateApplicationConfirmation = "application_confirmation"
	templateAdmissionOffer          = "admission_offer"
	templateApplicationRejection    = "application_rejection"
	templatePaymentConfirmation     = "payment_confirmation"
	templateEnrollmentConfirmation  = "enrollment_confirmation"
	templateCourseRegistration      = "course_registration"
)

const mailStyle = `
	body { font-family: Arial, sans-serif; color: #222; line-height: 1.6; }
	.wrap { max-width: 560px; margin: 0 auto; padding: 24px; }
	.banner { background: #16213e; color: #fff; padding: 14px 24px; font-size: 16px; font-weight: bold; }
	.highlight { background: #f0f2f8; border-left: 4px solid #16213e; padding: 10px 16px; margin: 16px 0; }
	.footer { font-size: 11px; color: #888; margin-top: 24px; border-top: 1px solid #ddd; padding-top: 12px; }
`

var mailTemplates = map[string]string{
	templateApplicationConfirmation: `<html>
<head><style>` + mailStyle + `</style></head>
<body><div class="wrap">
	<div class="banner">Application Received</div>
	<p>Dear {{.Name}},</p>
	<p>Thank you for applying. Your application has been received and is awaiting review.</p>
	<div class="highlight">Your application reference: <strong>{{.ApplicationID}}</strong></div>
	<p>Keep this reference for all enquiries about your application. You will be notified by email once a decision has been made.</p>
	<div class="footer">This is an automated message from the university admissions office. Please do not reply.</div>
</div></body>
</html>`,

	templateAdmissionOffer: `<html>
<head><style>` + mailStyle + `</style></head>
<body><div class="wrap">
	<div class="banner">Offer of Admission</div>
	<p>Dear {{.Name}},</p>
	<p>Congratulations! You have been offered admission to <strong>{{.Program}}</strong>.</p>
	<div class="highlight">Your student number: <strong>{{.StudentNumber}}</strong></div>
	<p>Your student number also serves as your initial account password. Sign in to the student portal with the email address on your application and change the password when prompted.</p>
	<p>Your official admission letter is attached to this email.</p>
	<div class="footer">This is an automated message from the university admissions office. Please do not reply.</div>
</div></body>
</html>`,

	templateApplicationRejection: `<html>
<head><style>` + mailStyle + `</style></head>
<body><div class="wrap">
	<div class="banner">Admission Application Outcome</div>
	<p>Dear {{.Name}},</p>
	<p>Thank you for your interest in studying with us. After careful review, we regret to inform you that your application was not successful.</p>
	<div class="highlight">{{.Reason}}</div>
	<p>You are welcome to apply again in a future intake.</p>
	<div class="footer">This is an automated message from the university admissions office. Please do not reply.</div>
</div></body>
</html>`,

	templatePaymentConfirmation: `<html>
<head><style>` + mailStyle + `</style></head>
<body><div class="wrap">
	<div class="banner">Payment Received</div>
	<p>Dear {{.Name}},</p>
	<p>We have received your payment of <strong>K{{.Amount}}</strong>.</p>
	<div class="highlight">Receipt number: <strong>{{.ReceiptNumber}}</strong><br>{{.Description}}</div>
	<p>Your official receipt is available from the finance office on request.</p>
	<div class="footer">This is an automated message from the university finance office. Please do not reply.</div>
</div></body>
</html>`,

	templateEnrollmentConfirmation: `<html>
<head><style>` + mailStyle + `</style></head>
<body><div class="wrap">
	<div class="banner">Enrollment Confirmation</div>
	<p>Dear {{.Name}},</p>
	<p>Your semester enrollment has been recorded and is awaiting approval.</p>
	<div class="highlight">Student number: <strong>{{.StudentNumber}}</strong><br>Program: {{.Program}}</div>
	<p>You will be notified once your enrollment has been approved by the registrar.</p>
	<div class="footer">This is an automated message from the office of the registrar. Please do not reply.</div>
</div></body>
</html>`,

	templateCourseRegistration: `<html>
<head><style>` + mailStyle + `</style></head>
<body><div class="wrap">
	<div class="banner">Course Registration Confirmation</div>
	<p>Dear {{.Name}},</p>
	<p>Your course registration has been submitted for advisor approval:</p>
	<div class="highlight">
		<ul>{{range .Courses}}<li>{{.}}</li>{{end}}</ul>
		Total credits: <strong>{{.TotalCredits}}</strong>
	</div>
	<p>An invoice for tuition and registration fees has been raised against your account.</p>
	<div class="footer">This is an automated message from the office of the registrar. Please do not reply.</div>
</div></body>
</html>`,
}
