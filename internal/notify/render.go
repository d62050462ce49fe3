package notify

import (
	"strings"

	"github.com/wolfman30/ondo-handyman/internal/format"
	"github.com/wolfman30/ondo-handyman/internal/leads"
)

const (
	DefaultFromName  = "Ondo Handyman"
	DefaultFromEmail = "hello@ondo-handyman.com"

	notProvided  = "Not provided"
	notSpecified = "Not specified"
)

// LeadEmail builds the office notification for lead.
func LeadEmail(brand, inbox string, lead leads.Lead) EmailMessage {
	return EmailMessage{
		To:      inbox,
		ReplyTo: lead.Email(),
		Subject: "New project inquiry from " + lead.Name(),
		Body:    RenderLeadText(lead),
		HTML:    RenderLeadHTML(brand, lead),
	}
}

// RenderLeadText renders the plain-text body: one "Key: value" line per
// field, a blank line, then the project details.
func RenderLeadText(lead leads.Lead) string {
	return strings.Join([]string{
		"Name: " + lead.Name(),
		"Email: " + lead.Email(),
		"Phone: " + orDefault(format.Phone(lead.Phone()), notProvided),
		"Service: " + orDefault(lead.Service(), notSpecified),
		"Timeline: " + orDefault(lead.Timeline(), notSpecified),
		"",
		"Project details:",
		lead.Message(),
	}, "\n")
}

// RenderLeadHTML renders the HTML body. Every interpolated value is escaped
// exactly once; newlines in the message become <br /> after escaping.
func RenderLeadHTML(brand string, lead leads.Lead) string {
	if brand == "" {
		brand = DefaultFromName
	}

	var b strings.Builder
	b.WriteString("<!doctype html>\n<html>\n")
	b.WriteString(`  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #0f172a;">` + "\n")
	b.WriteString(`    <h2 style="color: #0c5a83;">New ` + format.EscapeHTML(brand) + " Inquiry</h2>\n")
	writeField(&b, "Name", lead.Name())
	writeField(&b, "Email", lead.Email())
	writeField(&b, "Phone", orDefault(format.Phone(lead.Phone()), notProvided))
	writeField(&b, "Service", orDefault(lead.Service(), notSpecified))
	writeField(&b, "Timeline", orDefault(lead.Timeline(), notSpecified))
	b.WriteString(`    <hr style="margin: 24px 0; border: none; border-top: 1px solid #e2e8f0;" />` + "\n")
	b.WriteString("    <p><strong>Project details:</strong></p>\n")
	b.WriteString("    <p>" + messageHTML(lead.Message()) + "</p>\n")
	b.WriteString("  </body>\n</html>")
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString("    <p><strong>" + label + ":</strong> " + format.EscapeHTML(value) + "</p>\n")
}

func messageHTML(message string) string {
	escaped := format.EscapeHTML(strings.ReplaceAll(message, "\r\n", "\n"))
	return strings.ReplaceAll(escaped, "\n", "<br />")
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
