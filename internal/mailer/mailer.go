// Package mailer composes and dispatches the transactional notifications sent
// after a quote request or a contact message is persisted. Sending is
// best-effort: callers must never fail a submission because an email did not
// go out.
package mailer

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Kind distinguishes the two confirmation emails.
type Kind string

const (
	KindContact Kind = "contact"
	KindQuote   Kind = "quote"
)

// QuoteNotification is the payload of the business-facing quote email.
type QuoteNotification struct {
	Name      string
	Email     string
	Phone     string
	Message   string
	TruckName string
	TruckID   string
}

// ContactNotification is the payload of the business-facing contact email.
type ContactNotification struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// Sender dispatches notifications. Implementations report success as a bare
// boolean; the intake workflow logs failures and moves on.
type Sender interface {
	SendQuoteRequest(ctx context.Context, q QuoteNotification) bool
	SendContactForm(ctx context.Context, m ContactNotification) bool
	SendConfirmation(ctx context.Context, to string, kind Kind, name string) bool
}

// LogSender composes the real email bodies but only logs them. This mirrors
// the behaviour in production today; a transactional provider can be plugged
// in behind the same interface later.
type LogSender struct {
	CompanyEmail string
	CompanyPhone string
	Log          *zap.Logger
}

func NewLogSender(companyEmail, companyPhone string, log *zap.Logger) *LogSender {
	if companyEmail == "" {
		companyEmail = "contact@foodtrucks.ma"
	}
	return &LogSender{CompanyEmail: companyEmail, CompanyPhone: companyPhone, Log: log}
}

func (s *LogSender) SendQuoteRequest(ctx context.Context, q QuoteNotification) bool {
	subject := "Nouvelle demande de devis"
	if q.TruckName != "" {
		subject += " - " + q.TruckName
	}
	s.Log.Info("email dispatched",
		zap.String("to", s.CompanyEmail),
		zap.String("subject", subject),
		zap.String("body", quoteBody(q)),
	)
	return true
}

func (s *LogSender) SendContactForm(ctx context.Context, m ContactNotification) bool {
	s.Log.Info("email dispatched",
		zap.String("to", s.CompanyEmail),
		zap.String("subject", "Nouveau message de contact: "+m.Subject),
		zap.String("body", contactBody(m)),
	)
	return true
}

func (s *LogSender) SendConfirmation(ctx context.Context, to string, kind Kind, name string) bool {
	subject := "Confirmation de réception de votre demande de devis"
	if kind == KindContact {
		subject = "Confirmation de réception de votre message"
	}
	s.Log.Info("email dispatched",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", confirmationBody(kind, name, s.CompanyEmail, s.CompanyPhone)),
	)
	return true
}

func quoteBody(q QuoteNotification) string {
	body := fmt.Sprintf("Nouvelle demande de devis\n\nNom: %s\nEmail: %s\nTéléphone: %s\n",
		q.Name, q.Email, q.Phone)
	if q.TruckName != "" {
		body += fmt.Sprintf("Produit: %s\n", q.TruckName)
	}
	if q.TruckID != "" {
		body += fmt.Sprintf("ID Produit: %s\n", q.TruckID)
	}
	body += fmt.Sprintf("\nMessage:\n%s\n\n---\nCe message a été envoyé depuis le formulaire de demande de devis de votre site web.", q.Message)
	return body
}

func contactBody(m ContactNotification) string {
	body := fmt.Sprintf("Nouveau message de contact\n\nNom: %s\nEmail: %s\n", m.Name, m.Email)
	if m.Phone != "" {
		body += fmt.Sprintf("Téléphone: %s\n", m.Phone)
	}
	body += fmt.Sprintf("Sujet: %s\n\nMessage:\n%s\n\n---\nCe message a été envoyé depuis le formulaire de contact de votre site web.", m.Subject, m.Message)
	return body
}

func confirmationBody(kind Kind, name, companyEmail, companyPhone string) string {
	received := "demande de devis"
	if kind == KindContact {
		received = "message"
	}
	return fmt.Sprintf(`Merci pour votre message, %s !

Nous avons bien reçu votre %s et nous vous répondrons dans les plus brefs délais.

Nos coordonnées :
Email: %s
Téléphone: %s

Cordialement,
L'équipe Food Trucks Maroc`, name, received, companyEmail, companyPhone)
}
