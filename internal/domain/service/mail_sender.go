package service

import "context"

// MailSender delivers transactional mail rendered from a named template.
// The template name selects the body; data feeds the template context.
type MailSender interface {
	Send(ctx context.Context, to, subject, templateName string, data map[string]any) error
}
