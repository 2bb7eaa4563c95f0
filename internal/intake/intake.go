// Package intake orchestrates the public submission flows:
// validate input -> persist entity -> dispatch notifications.
//
// Only the persistence step may fail a submission. Validation failures are
// returned per-field without touching storage, and notification failures are
// logged and swallowed: the record of intent must durably exist, the email is
// a convenience.
package intake

import (
	"context"
	"errors"

	"foodtrucks-maroc-api-server/internal/mailer"
	"foodtrucks-maroc-api-server/internal/models"
	"foodtrucks-maroc-api-server/internal/socket"
	"foodtrucks-maroc-api-server/internal/storage"
	"foodtrucks-maroc-api-server/internal/validation"

	"go.uber.org/zap"
)

// GeneralInquiryTruckName is the denormalized truck name used when a quote
// request is not tied to a listing.
const GeneralInquiryTruckName = "Demande générale"

// QuoteForm is a public quote request submission.
type QuoteForm struct {
	TruckID   string `json:"truckId"`
	TruckName string `json:"truckName"`
	Name      string `json:"customerName"`
	Email     string `json:"customerEmail"`
	Phone     string `json:"customerPhone"`
	Message   string `json:"message"`
}

// ContactForm is a public contact message submission.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Workflow wires the intake collaborators together.
type Workflow struct {
	Trucks   storage.FoodTruckStore
	Devis    storage.DevisStore
	Messages storage.MessageStore
	Mailer   mailer.Sender
	Hub      *socket.Hub
	Log      *zap.Logger
}

// SubmitQuote runs the quote intake. On validation failure it returns the
// field errors and no entity; on persistence failure it returns the error;
// otherwise the created devis, always in status "pending".
func (w *Workflow) SubmitQuote(ctx context.Context, form QuoteForm) (*models.Devis, validation.Errors, error) {
	errs := validation.Form(map[string]string{
		"name":    form.Name,
		"email":   form.Email,
		"phone":   form.Phone,
		"message": form.Message,
	}, validation.QuoteFormRules)
	if !errs.IsValid() {
		return nil, errs, nil
	}

	truckName := w.resolveTruckName(ctx, form.TruckID, form.TruckName)

	devis, err := w.Devis.Create(ctx, models.Devis{
		TruckID:       form.TruckID,
		TruckName:     truckName,
		CustomerName:  form.Name,
		CustomerEmail: form.Email,
		CustomerPhone: form.Phone,
		Message:       form.Message,
		Status:        models.DevisPending,
	})
	if err != nil {
		return nil, nil, err
	}

	if !w.Mailer.SendQuoteRequest(ctx, mailer.QuoteNotification{
		Name:      form.Name,
		Email:     form.Email,
		Phone:     form.Phone,
		Message:   form.Message,
		TruckName: devis.TruckName,
		TruckID:   devis.TruckID,
	}) {
		w.Log.Warn("quote notification failed", zap.String("devisId", devis.ID))
	}
	if !w.Mailer.SendConfirmation(ctx, form.Email, mailer.KindQuote, form.Name) {
		w.Log.Warn("quote confirmation failed", zap.String("devisId", devis.ID))
	}

	if w.Hub != nil {
		w.Hub.Broadcast("devis.created", devis)
	}
	return devis, nil, nil
}

// SubmitContact runs the contact intake; same shape as SubmitQuote.
// The created message always starts in status "unread".
func (w *Workflow) SubmitContact(ctx context.Context, form ContactForm) (*models.Message, validation.Errors, error) {
	errs := validation.Form(map[string]string{
		"name":    form.Name,
		"email":   form.Email,
		"phone":   form.Phone,
		"subject": form.Subject,
		"message": form.Message,
	}, validation.ContactFormRules)
	if !errs.IsValid() {
		return nil, errs, nil
	}

	msg, err := w.Messages.Create(ctx, models.Message{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Subject: form.Subject,
		Message: form.Message,
		Status:  models.MessageUnread,
	})
	if err != nil {
		return nil, nil, err
	}

	if !w.Mailer.SendContactForm(ctx, mailer.ContactNotification{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Subject: form.Subject,
		Message: form.Message,
	}) {
		w.Log.Warn("contact notification failed", zap.String("messageId", msg.ID))
	}
	if !w.Mailer.SendConfirmation(ctx, form.Email, mailer.KindContact, form.Name) {
		w.Log.Warn("contact confirmation failed", zap.String("messageId", msg.ID))
	}

	if w.Hub != nil {
		w.Hub.Broadcast("message.created", msg)
	}
	return msg, nil, nil
}

// resolveTruckName snapshots the listing name at submission time. A lookup
// failure is not fatal: the submitted name, then the general-inquiry label,
// stand in.
func (w *Workflow) resolveTruckName(ctx context.Context, truckID, submitted string) string {
	if truckID != "" {
		truck, err := w.Trucks.GetByID(ctx, truckID)
		if err == nil {
			return truck.Name
		}
		if !errors.Is(err, storage.ErrNotFound) {
			w.Log.Warn("could not resolve truck name", zap.String("truckId", truckID), zap.Error(err))
		}
	}
	if submitted != "" {
		return submitted
	}
	return GeneralInquiryTruckName
}
