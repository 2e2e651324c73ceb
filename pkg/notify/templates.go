package notify

import (
	"fmt"
	"html/template"
	"strings"
)

var newMessageTmpl = template.Must(template.New("new_message").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">New Message from Portfolio Contact Form</h2>
  <div style="background-color: #f5f5f5; padding: 20px; border-radius: 5px; margin: 20px 0;">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Subject:</strong> {{.Subject}}</p>
  </div>
  <div style="margin: 20px 0;">
    <h3 style="color: #555;">Message:</h3>
    <p style="line-height: 1.6;">{{.Body}}</p>
  </div>
  <hr style="border: none; border-top: 1px solid #ddd; margin: 30px 0;">
  <p style="color: #666; font-size: 14px;"><strong>Reply to:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
</div>`))

var replyTmpl = template.Must(template.New("reply").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <p style="line-height: 1.6;">{{.Body}}</p>
  <hr style="border: none; border-top: 1px solid #ddd; margin: 30px 0;">
  <p style="color: #666; font-size: 12px;">This is a reply{{with .Owner}} from {{.}}{{end}} to your message sent through the portfolio contact form.</p>
</div>`))

func render(tmpl *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("notify: render %s: %w", tmpl.Name(), err)
	}
	return sb.String(), nil
}
