package notify

import (
	"fmt"
	"strings"
)

// ContactDetails carries the contact-form fields used in email bodies.
type ContactDetails struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// NewContactNotification builds the email sent to the salon when a visitor
// submits the contact form.
func NewContactNotification(to string, d ContactDetails) EmailMessage {
	subject := "New contact message"
	if d.Subject != "" {
		subject = "New contact message - " + d.Subject
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\n", d.Name, d.Email)
	if d.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", d.Phone)
	}
	if d.Subject != "" {
		fmt.Fprintf(&b, "Subject: %s\n", d.Subject)
	}
	fmt.Fprintf(&b, "\n%s\n", d.Message)

	return EmailMessage{To: to, Subject: subject, Body: b.String()}
}

// NewContactConfirmation builds the acknowledgement sent back to the visitor.
func NewContactConfirmation(d ContactDetails) EmailMessage {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", d.Name)
	b.WriteString("Thank you for your message. We usually reply within 24 hours.\n\n")
	if d.Subject != "" {
		fmt.Fprintf(&b, "Subject: %s\n", d.Subject)
	}
	fmt.Fprintf(&b, "Your message:\n%s\n\nThe Neill Beauty team\n", d.Message)

	return EmailMessage{
		To:      d.Email,
		ToName:  d.Name,
		Subject: "We received your message",
		Body:    b.String(),
	}
}

// NewContactReply builds the admin reply email to a visitor.
func NewContactReply(d ContactDetails, reply string) EmailMessage {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n%s\n\nThe Neill Beauty team\n", d.Name, reply)

	subject := "Reply to your message"
	if d.Subject != "" {
		subject = "Re: " + d.Subject
	}
	return EmailMessage{To: d.Email, ToName: d.Name, Subject: subject, Body: b.String()}
}

// ReservationDetails carries the booking fields used in email bodies.
type ReservationDetails struct {
	Name        string
	Email       string
	ServiceName string
	Date        string
	Time        string
}

// NewReservationReceived builds the acknowledgement for a new booking request.
func NewReservationReceived(d ReservationDetails) EmailMessage {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", d.Name)
	b.WriteString("We received your reservation request")
	if d.ServiceName != "" {
		fmt.Fprintf(&b, " for %s", d.ServiceName)
	}
	if d.Date != "" && d.Time != "" {
		fmt.Fprintf(&b, " on %s at %s", d.Date, d.Time)
	}
	b.WriteString(".\nWe will confirm it shortly.\n\nThe Neill Beauty team\n")

	return EmailMessage{
		To:      d.Email,
		ToName:  d.Name,
		Subject: "Your reservation request",
		Body:    b.String(),
	}
}
