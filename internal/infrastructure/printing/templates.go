package printing

// Template names matching the document kinds
const (
	TemplateInvoice         = "invoice"
	TemplateReceipt         = "receipt"
	TemplateAdmissionLetter = "admission_letter"
	TemplateStudentID       = "student_id"
)

const baseStyle = `
	body { font-family: 'Helvetica Neue', Arial, sans-serif; color: #1a1a2e; margin: 0; padding: 24px; }
	.header { text-align: center; border-bottom: 3px solid #16213e; padding-bottom: 12px; margin-bottom: 24px; }
	.header h1 { margin: 0; font-size: 22px; color: #16213e; }
	.header p { margin: 4px 0 0; font-size: 12px; color: #555; }
	.doc-title { font-size: 16px; font-weight: bold; text-transform: uppercase; letter-spacing: 2px; margin: 16px 0; }
	table { width: 100%; border-collapse: collapse; margin: 12px 0; }
	th { background: #16213e; color: #fff; text-align: left; padding: 8px; font-size: 12px; }
	td { padding: 8px; border-bottom: 1px solid #ddd; font-size: 12px; }
	.meta td { border: none; padding: 3px 8px 3px 0; }
	.meta .label { color: #555; width: 160px; }
	.total-row td { font-weight: bold; border-top: 2px solid #16213e; }
	.amount { text-align: right; }
	.footer { margin-top: 32px; font-size: 10px; color: #777; text-align: center; }
	.signature { margin-top: 48px; }
	.signature .line { border-top: 1px solid #333; width: 220px; padding-top: 4px; font-size: 11px; }
`

var documentTemplates = map[string]string{
	TemplateInvoice: `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><style>` + baseStyle + `</style></head>
<body>
	<div class="header">
		<h1>University Student Information System</h1>
		<p>Office of the Bursar</p>
	</div>
	<div class="doc-title">Invoice</div>
	<table class="meta">
		<tr><td class="label">Invoice Number</td><td>{{.InvoiceNumber}}</td></tr>
		<tr><td class="label">Student Number</td><td>{{.StudentNumber}}</td></tr>
		<tr><td class="label">Student Name</td><td>{{.StudentName}}</td></tr>
		<tr><td class="label">Program</td><td>{{.Program}}</td></tr>
		<tr><td class="label">Academic Year</td><td>{{.AcademicYear}}</td></tr>
		<tr><td class="label">Semester</td><td>{{.Semester}}</td></tr>
		<tr><td class="label">Issue Date</td><td>{{.IssueDate}}</td></tr>
		<tr><td class="label">Due Date</td><td>{{.DueDate}}</td></tr>
	</table>
	<table>
		<tr><th>Description</th><th class="amount">Amount</th></tr>
		{{range .Items}}<tr><td>{{.Description}}</td><td class="amount">{{formatMoney .Amount}}</td></tr>
		{{end}}<tr class="total-row"><td>Total</td><td class="amount">{{formatMoney .TotalAmount}}</td></tr>
		<tr><td>Amount Paid</td><td class="amount">{{formatMoney .AmountPaid}}</td></tr>
		<tr class="total-row"><td>Balance Due</td><td class="amount">{{formatMoney .Balance}}</td></tr>
	</table>
	<div class="footer">Payment is due by {{.DueDate}}. Quote the invoice number on all payments.</div>
</body>
</html>`,

	TemplateReceipt: `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><style>` + baseStyle + `</style></head>
<body>
	<div class="header">
		<h1>University Student Information System</h1>
		<p>Office of the Bursar</p>
	</div>
	<div class="doc-title">Official Receipt</div>
	<table class="meta">
		<tr><td class="label">Receipt Number</td><td>{{.ReceiptNumber}}</td></tr>
		<tr><td class="label">Student Number</td><td>{{.StudentNumber}}</td></tr>
		<tr><td class="label">Student Name</td><td>{{.StudentName}}</td></tr>
		<tr><td class="label">Program</td><td>{{.Program}}</td></tr>
		<tr><td class="label">Payment Date</td><td>{{.PaymentDate}}</td></tr>
		<tr><td class="label">Payment Method</td><td>{{title .PaymentMethod}}</td></tr>
	</table>
	<table>
		<tr><th>Description</th><th class="amount">Amount</th></tr>
		<tr><td>{{.Description}}</td><td class="amount">{{formatMoney .Amount}}</td></tr>
		<tr class="total-row"><td>Amount Received</td><td class="amount">{{formatMoney .Amount}}</td></tr>
		<tr><td>Outstanding Balance</td><td class="amount">{{formatMoney .Balance}}</td></tr>
	</table>
	<div class="footer">This receipt is issued subject to the clearance of the underlying payment.</div>
</body>
</html>`,

	TemplateAdmissionLetter: `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><style>` + baseStyle + `
	.body-text { font-size: 13px; line-height: 1.7; margin: 16px 0; }
</style></head>
<body>
	<div class="header">
		<h1>University Student Information System</h1>
		<p>Office of Admissions</p>
	</div>
	<div class="doc-title">Letter of Admission</div>
	<p class="body-text">Dear {{.StudentName}},</p>
	<p class="body-text">
		We are pleased to inform you that you have been offered admission to the
		<strong>{{.Program}}</strong> ({{.ProgramCode}}) program at the
		{{title .DegreeLevel}} level for the {{.AcademicYear}} academic year,
		commencing {{.Semester}} at {{.Campus}}.
	</p>
	<table class="meta">
		<tr><td class="label">Student Number</td><td>{{.StudentNumber}}</td></tr>
		<tr><td class="label">Program</td><td>{{.Program}}</td></tr>
		<tr><td class="label">Admission Date</td><td>{{.AdmissionDate}}</td></tr>
		<tr><td class="label">Academic Year</td><td>{{.AcademicYear}}</td></tr>
		<tr><td class="label">Intake</td><td>{{.Semester}}</td></tr>
	</table>
	<p class="body-text">
		Your student number is quoted above and must accompany all correspondence
		with the university. Registration instructions and the fee schedule will
		be sent to you separately.
	</p>
	<div class="signature">
		<div class="line">Registrar, Office of Admissions</div>
	</div>
</body>
</html>`,

	TemplateStudentID: `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><style>
	body { font-family: 'Helvetica Neue', Arial, sans-serif; margin: 0; padding: 24px; }
	.card { width: 340px; border: 2px solid #16213e; border-radius: 10px; overflow: hidden; }
	.card-header { background: #16213e; color: #fff; text-align: center; padding: 10px; font-size: 13px; font-weight: bold; }
	.card-body { padding: 14px; }
	.card-body table { border-collapse: collapse; }
	.card-body td { padding: 3px 8px 3px 0; font-size: 11px; }
	.card-body .label { color: #555; width: 110px; }
	.card-number { font-size: 16px; font-weight: bold; letter-spacing: 1px; margin-bottom: 8px; }
	.card-footer { background: #eee; padding: 6px 14px; font-size: 9px; color: #555; }
</style></head>
<body>
	<div class="card">
		<div class="card-header">UNIVERSITY STUDENT IDENTIFICATION CARD</div>
		<div class="card-body">
			<div class="card-number">{{.StudentNumber}}</div>
			<table>
				<tr><td class="label">Name</td><td>{{.StudentName}}</td></tr>
				<tr><td class="label">Program</td><td>{{.Program}} ({{.ProgramCode}})</td></tr>
				<tr><td class="label">Year of Study</td><td>Year {{.Year}}</td></tr>
				<tr><td class="label">Issued</td><td>{{.IssueDate}}</td></tr>
				<tr><td class="label">Expires</td><td>{{.ExpiryDate}}</td></tr>
			</table>
		</div>
		<div class="card-footer">This card remains the property of the university and must be surrendered on request.</div>
	</div>
</body>
</html>`,
}
