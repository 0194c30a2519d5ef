package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Either Template (+Data) or Subject with Text/HTML is set.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // "welcome", "login_notification"
	Data     map[string]any `json:"data,omitempty"`
}

// Rendered returns subject, text and html for the job, rendering its template
// when one is set.
func (j EmailJob) Rendered(render func(name string, data any) (string, string, string, error)) (string, string, string, error) {
	if j.Template == "" {
		return j.Subject, j.Text, j.HTML, nil
	}
	return render(j.Template, j.Data)
}
