package notifications

import (
	"bytes"
	"fmt"
	"html/template"
)

// Template names used across the services.
const (
	TemplateEmailVerification  = "email_verification"
	TemplatePasswordReset      = "password_reset"
	TemplateApplicationOutcome = "application_outcome"
	TemplateCertificateIssued  = "certificate_issued"
)

var emailTemplates = template.Must(template.New("emails").Parse(`
{{define "email_verification"}}
<h1>Verify Your Account</h1>
<p>Use the code below to verify your account. It expires in 20 minutes.</p>
<h2>{{.Code}}</h2>
{{end}}

{{define "password_reset"}}
<h1>Password Reset</h1>
<p>Click the link below to reset your password. This link is valid for 20 minutes.</p>
<p><a href="{{.ResetLink}}">Reset Password</a></p>
{{end}}

{{define "application_outcome"}}
<h1>Application Update</h1>
<p>Dear {{.ApplicantName}},</p>
<p>Thank you for applying for <b>{{.JobTitle}}</b> at {{.CompanyName}}.
After careful consideration we will not be moving forward with your application.</p>
<p>We wish you the best in your job search.</p>
{{end}}

{{define "certificate_issued"}}
<h1>Congratulations!</h1>
<p>You passed the <b>{{.CategoryName}}</b> assessment with a score of {{.Score}}/{{.Total}}.</p>
<p>Your certificate is ready: <a href="{{.CertificateURL}}">Download Certificate</a></p>
{{end}}
`))

// Render executes the named email template with data.
func Render(name string, data map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return buf.String(), nil
}
