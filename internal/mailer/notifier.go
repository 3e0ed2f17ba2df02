package mailer

import (
	"context"
	"fmt"

	"github.com/portfolio/backend/internal/model"
	"github.com/russross/blackfriday/v2"
)

// Notifier formats and sends the two emails triggered by a contact
// submission: an alert to the site operator and an acknowledgment back
// to the sender. Bodies are written as markdown and rendered to HTML.
type Notifier struct {
	transport Transport
	from      string
	operator  string
}

// NewNotifier creates a Notifier. from is the verified sender address,
// operator is the fixed address that receives submission alerts.
func NewNotifier(transport Transport, from, operator string) *Notifier {
	return &Notifier{transport: transport, from: from, operator: operator}
}

// ContactReceived sends the operator alert followed by the sender
// acknowledgment, sequentially. The first failure aborts and is
// returned; the submission itself is persisted by the caller before
// this runs, so a failed send never loses the record.
func (n *Notifier) ContactReceived(ctx context.Context, c *model.Contact) error {
	alert := Message{
		From:    n.from,
		To:      n.operator,
		Subject: fmt.Sprintf("New contact: %s", c.Subject),
		Text:    alertBody(c),
		HTML:    renderHTML(alertBody(c)),
	}
	if err := n.transport.Send(ctx, alert); err != nil {
		return err
	}

	ack := Message{
		From:    n.from,
		To:      c.Email,
		Subject: "Thanks for getting in touch",
		Text:    ackBody(c),
		HTML:    renderHTML(ackBody(c)),
	}
	return n.transport.Send(ctx, ack)
}

func alertBody(c *model.Contact) string {
	return fmt.Sprintf(`## New contact form submission

**From:** %s <%s>

**Subject:** %s

**Message:**

%s

---

IP: %s | User-Agent: %s | Received: %s
`,
		c.Name, c.Email, c.Subject, c.Message,
		c.IPAddress, c.UserAgent, c.CreatedAt.Format("2006-01-02 15:04:05 MST"))
}

func ackBody(c *model.Contact) string {
	return fmt.Sprintf(`Hi %s,

Thanks for reaching out! I received your message and will get back to you as soon as I can.

Your message:

> %s

Best,
The site
`, c.Name, c.Message)
}

func renderHTML(markdown string) string {
	return "<html><body>" + string(blackfriday.Run([]byte(markdown))) + "</body></html>"
}
