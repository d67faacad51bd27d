package mail

import (
	"bytes"
	"html/template"
	"time"

	"allergo/internal/domain/constants"
	"allergo/internal/domain/entity"
	"allergo/internal/domain/service"
	"allergo/internal/util"

	"github.com/pkg/errors"
)

var otpBody = template.Must(template.New("otp").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif;">
<p>Hi{{if .Name}} {{.Name}}{{end}},</p>
<p>{{.Intro}}</p>
<p style="font-size: 28px; letter-spacing: 6px;"><strong>{{.Code}}</strong></p>
<p>The code expires in {{.ValidFor}}. If you did not request it, ignore this email.</p>
</body>
</html>
`))

type otpView struct {
	Name     string
	Intro    string
	Code     int
	ValidFor string
}

// Render builds the subject and HTML body for a mail event.
func Render(event *service.MailEvent, now time.Time) (subject, body string, err error) {
	if event.Kind != constants.MailKindOTP {
		return "", "", errors.Errorf("unsupported mail kind: %s", event.Kind)
	}

	view := otpView{
		Name:     event.Name,
		Code:     event.Code,
		ValidFor: util.FormatDuration(max(event.ExpiresAt.Sub(now), 0).Round(time.Minute)),
	}

	switch entity.OTPPurpose(event.Purpose) {
	case entity.OTPPurposeActivation:
		subject = "Activate your account"
		view.Intro = "Use this code to activate your account:"
	case entity.OTPPurposePasswordReset:
		subject = "Reset your password"
		view.Intro = "Use this code to reset your password:"
	default:
		return "", "", errors.Errorf("unsupported otp purpose: %s", event.Purpose)
	}

	var buf bytes.Buffer
	if err := otpBody.Execute(&buf, view); err != nil {
		return "", "", errors.Wrap(err, "render otp mail")
	}

	return subject, buf.String(), nil
}

type templateRenderer struct{}

// NewRenderer returns the MailRenderer backed by the built-in templates.
func NewRenderer() service.MailRenderer {
	return templateRenderer{}
}

func (templateRenderer) Render(event *service.MailEvent, now time.Time) (string, string, error) {
	return Render(event, now)
}
