package email

import (
	"context"
	"fmt"

	"campusmind/internal/application/issue/usecases"
	"campusmind/internal/domain/directory"
	"campusmind/internal/domain/issue"
	"campusmind/internal/shared/logger"
	"campusmind/internal/shared/services/markdown"
)

// Sender is the narrow delivery surface the notifier needs.
type Sender interface {
	Send(to, subject, htmlBody, plainBody string) error
}

// EscalationNotifier emails the new assignee when an issue lands on them.
// The issue description is treated as markdown and sanitized before it is
// embedded in the HTML body.
type EscalationNotifier struct {
	sender   Sender
	markdown markdown.MarkdownService
	logger   logger.Interface
}

var _ usecases.EscalationNotifier = (*EscalationNotifier)(nil)

func NewEscalationNotifier(sender Sender, markdown markdown.MarkdownService, logger logger.Interface) *EscalationNotifier {
	return &EscalationNotifier{
		sender:   sender,
		markdown: markdown,
		logger:   logger,
	}
}

func (n *EscalationNotifier) NotifyAssigned(_ context.Context, iss *issue.Issue, assignee *directory.User) error {
	descriptionHTML, err := n.markdown.ToHTMLSanitized(iss.Description())
	if err != nil {
		n.logger.Warnw("failed to render issue description", "error", err, "issue_id", iss.ID())
		descriptionHTML = ""
	}

	subject := fmt.Sprintf("[CampusMind] Issue #%d assigned to you: %s", iss.ID(), iss.Title())

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>An issue needs your attention</h2>
			<p><strong>#%d - %s</strong></p>
			<p>Priority: %s | Category: %s | Status: %s</p>
			%s
		</body>
		</html>
	`, iss.ID(), iss.Title(), iss.Priority().String(), iss.Category().String(), iss.Status().String(), descriptionHTML)

	plainBody := fmt.Sprintf(`
An issue needs your attention.

#%d - %s
Priority: %s | Category: %s | Status: %s

%s
	`, iss.ID(), iss.Title(), iss.Priority().String(), iss.Category().String(), iss.Status().String(), iss.Description())

	return n.sender.Send(assignee.Email(), subject, htmlBody, plainBody)
}

// NoopNotifier is used when email delivery is disabled by configuration.
type NoopNotifier struct{}

var _ usecases.EscalationNotifier = (*NoopNotifier)(nil)

func NewNoopNotifier() *NoopNotifier {
	return &NoopNotifier{}
}

func (n *NoopNotifier) NotifyAssigned(context.Context, *issue.Issue, *directory.User) error {
	return nil
}
