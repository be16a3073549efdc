package generator

import (
	"bytes"
	"text/template"
)

const personalizePrompt = `You write one cold outreach email for a single recipient.

Recipient:
- Name: {{or .Recipient.ContactName "unknown"}}
- Company: {{or .Recipient.Company "unknown"}}
- Industry: {{or .Recipient.Industry "unknown"}}
- Website: {{or .Recipient.Domain "unknown"}}

Tone: {{.Tone}}
Goal: {{.Goal}}
Language: {{.Language}}

The template below is final text written by the sender. Keep every character of it
unchanged, HTML tags included, except the bracketed placeholders{{if .Spans}} ({{range $i, $s := .Spans}}{{if $i}}, {{end}}{{$s}}{{end}}){{end}}.
Replace each bracketed placeholder with text written for this recipient, in the
requested language and tone. Do not add a greeting or signature that is not in the template.

Subject template:
{{.Subject}}

Body template:
{{.Body}}

Answer with a JSON object {"subject": "...", "body": "..."} and nothing else.`

const enrichPrompt = `Identify the company below and answer with what is publicly known about it.

Company: {{.Company}}
{{if .Domain}}Website: {{.Domain}}
{{end}}{{if .ContactEmail}}Contact email: {{.ContactEmail}}
{{end}}
Answer with a JSON object {"domain": "...", "industry": "...", "employee_count": 0}.
Use an empty string or null for anything you do not know. Do not guess.`

var (
	personalizeTemplate = template.Must(template.New("personalize").Parse(personalizePrompt))
	enrichTemplate      = template.Must(template.New("enrich").Parse(enrichPrompt))
)

func renderPrompt(tpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
