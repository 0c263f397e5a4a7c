package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/sahanw/portfolio-backend/config"
	"github.com/sahanw/portfolio-backend/internal/contacts/domain"
)

// Mailer sends contact notifications over SMTP.
type Mailer struct {
	cfg config.SMTPConfig
}

func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Enabled reports whether SMTP is configured at all.
func (m *Mailer) Enabled() bool {
	return m.cfg.Host != "" && m.cfg.To != ""
}

// Notify emails the site owner about a new contact message.
func (m *Mailer) Notify(c *domain.Contact) error {
	if !m.Enabled() {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.cfg.To)
	msg.SetHeader("Subject", fmt.Sprintf("New contact message from %s", c.Name))
	msg.SetHeader("Reply-To", c.Email)
	msg.SetBody("text/plain", fmt.Sprintf(
		"Name: %s\nEmail: %s\nReceived: %s\n\n%s\n",
		c.Name, c.Email, c.CreatedAt.Format("2006-01-02 15:04:05"), c.Message,
	))

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNotification, err)
	}
	return nil
}
