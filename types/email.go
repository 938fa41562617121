package types

// EmailData describes a single outbound email to be rendered and sent.
type EmailData struct {
	To           string
	Subject      string
	ReplyTo      string
	TemplateData map[string]interface{}
}
