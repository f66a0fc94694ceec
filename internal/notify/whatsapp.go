package notify

import (
	"fmt"
	"net/url"
)

// WhatsAppLink builds the deep link that opens a chat with the agency number
// pre-filled with the booking summary. Opening the link is the client's job;
// the server only constructs it.
func WhatsAppLink(destinationNumber, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", destinationNumber, url.QueryEscape(message))
}

// LinkBuilder binds the configured destination number. The number is a hard
// external dependency of the primary channel and is always present in config.
type LinkBuilder struct {
	destinationNumber string
}

// NewLinkBuilder creates a LinkBuilder for the given destination number.
func NewLinkBuilder(destinationNumber string) *LinkBuilder {
	return &LinkBuilder{destinationNumber: destinationNumber}
}

// BookingLink returns the deep link carrying the given summary.
func (l *LinkBuilder) BookingLink(summary string) string {
	return WhatsAppLink(l.destinationNumber, summary)
}
