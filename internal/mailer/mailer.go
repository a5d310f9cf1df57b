package mailer

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/wneessen/go-mail"
)

// InquiryNotice carries the submitted form values verbatim. The date stays a
// raw string: the email must show what the client typed even when it could
// not be parsed into a calendar date.
type InquiryNotice struct {
	ClientName string
	Email      string
	EventType  string
	EventDate  string
	Message    string
}

// Notifier is the outbound-notification seam. Delivery is best effort: the
// inquiry is already durably recorded before Notify runs, so implementations
// must never surface transport failures to the caller.
type Notifier interface {
	InquiryReceived(notice InquiryNotice)
}

// Noop is used when no mail relay is configured.
type Noop struct{}

func (Noop) InquiryReceived(InquiryNotice) {}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	UseTLS   bool
	From     string
	To       string
}

type SMTPNotifier struct {
	cfg SMTPConfig
}

func NewSMTPNotifier(cfg SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

const sendTimeout = 10 * time.Second

func (n *SMTPNotifier) InquiryReceived(notice InquiryNotice) {
	if err := n.send(notice); err != nil {
		log.Printf("inquiry email send failed: %v", err)
	}
}

func (n *SMTPNotifier) send(notice InquiryNotice) error {
	msg := mail.NewMsg()
	if err := msg.From(n.cfg.From); err != nil {
		return err
	}
	if err := msg.To(n.cfg.To); err != nil {
		return err
	}
	msg.Subject("Nouvelle demande – AB AGENCY")
	msg.SetBodyString(mail.TypeTextPlain, strings.Join([]string{
		"Nouvelle demande via le formulaire:",
		fmt.Sprintf("Nom: %s", notice.ClientName),
		fmt.Sprintf("Email: %s", notice.Email),
		fmt.Sprintf("Type d'événement: %s", notice.EventType),
		fmt.Sprintf("Date souhaitée: %s", notice.EventDate),
		"Message:",
		notice.Message,
	}, "\n"))

	opts := []mail.Option{
		mail.WithPort(n.cfg.Port),
		mail.WithTimeout(sendTimeout),
	}
	if n.cfg.UseTLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}
	if n.cfg.Username != "" && n.cfg.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(n.cfg.Username),
			mail.WithPassword(n.cfg.Password),
		)
	}

	client, err := mail.NewClient(n.cfg.Host, opts...)
	if err != nil {
		return err
	}
	return client.DialAndSend(msg)
}
