package email

import (
	"bytes"
	"html/template"
)

var resetCodeTemplate = template.Must(template.New("reset_code").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 480px; margin: 0 auto;">
  <h2 style="color: #008751;">Heptabet Password Reset</h2>
  <p>Hi {{.Name}},</p>
  <p>Use the code below to reset your password. It expires in 15 minutes.</p>
  <p style="font-size: 32px; letter-spacing: 8px; font-weight: bold;">{{.Code}}</p>
  <p>If you did not request this, you can safely ignore this email.</p>
</div>
`))

func renderResetCode(name, code string) (string, error) {
	var buf bytes.Buffer
	err := resetCodeTemplate.Execute(&buf, struct {
		Name string
		Code string
	}{Name: name, Code: code})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
