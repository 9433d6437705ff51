package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"agencyhub/internal/domain"
	"agencyhub/internal/port"
)

type sesSender struct {
	client       *sesv2.Client
	fromAddress  string
	fromName     string
	adminAddress string
	frontendURL  string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName, adminAddress, frontendURL string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:       client,
		fromAddress:  fromAddress,
		fromName:     fromName,
		adminAddress: adminAddress,
		frontendURL:  frontendURL,
	}, nil
}

func (s *sesSender) send(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func (s *sesSender) SendInvoiceCreated(ctx context.Context, toEmail, toName string, inv *domain.Invoice) error {
	subject := fmt.Sprintf("Invoice %s from %s", inv.InvoiceNumber, s.fromName)
	invoiceURL := fmt.Sprintf("%s/dashboard/invoices/%s", s.frontendURL, inv.ID)
	htmlBody := buildInvoiceHTML(toName, inv, invoiceURL,
		"A new invoice has been issued for your project. You can review the details and line items in your dashboard.")
	textBody := fmt.Sprintf("Hi %s,\n\nInvoice %s for %s has been issued (due %s).\nView it at:\n%s\n\n%s Team",
		toName, inv.InvoiceNumber, inv.Total.StringFixed(2), inv.DueDate.Format("2 Jan 2006"), invoiceURL, s.fromName)
	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) SendInvoiceCreatedAdmin(ctx context.Context, inv *domain.Invoice, clientName string) error {
	subject := fmt.Sprintf("Invoice %s created for %s", inv.InvoiceNumber, clientName)
	invoiceURL := fmt.Sprintf("%s/admin/invoices/%s", s.frontendURL, inv.ID)
	htmlBody := buildInvoiceHTML("there", inv, invoiceURL,
		fmt.Sprintf("Invoice %s (%s) was created for client %s.", inv.InvoiceNumber, inv.Total.StringFixed(2), clientName))
	textBody := fmt.Sprintf("Invoice %s (%s) was created for client %s.\n%s",
		inv.InvoiceNumber, inv.Total.StringFixed(2), clientName, invoiceURL)
	return s.send(ctx, s.adminAddress, subject, htmlBody, textBody)
}

func (s *sesSender) SendPaymentRequired(ctx context.Context, toEmail, toName string, inv *domain.Invoice) error {
	subject := fmt.Sprintf("Payment required: invoice %s", inv.InvoiceNumber)
	invoiceURL := fmt.Sprintf("%s/dashboard/invoices/%s", s.frontendURL, inv.ID)
	htmlBody := buildInvoiceHTML(toName, inv, invoiceURL,
		fmt.Sprintf("Invoice %s is now due for payment. The total of %s is payable by %s.",
			inv.InvoiceNumber, inv.Total.StringFixed(2), inv.DueDate.Format("2 Jan 2006")))
	textBody := fmt.Sprintf("Hi %s,\n\nInvoice %s (%s) is now due for payment by %s.\nView it at:\n%s\n\n%s Team",
		toName, inv.InvoiceNumber, inv.Total.StringFixed(2), inv.DueDate.Format("2 Jan 2006"), invoiceURL, s.fromName)
	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) SendPaymentConfirmed(ctx context.Context, toEmail, toName string, inv *domain.Invoice) error {
	subject := fmt.Sprintf("Payment confirmed: invoice %s", inv.InvoiceNumber)
	invoiceURL := fmt.Sprintf("%s/dashboard/invoices/%s", s.frontendURL, inv.ID)
	htmlBody := buildInvoiceHTML(toName, inv, invoiceURL,
		fmt.Sprintf("We have received your payment of %s for invoice %s. Thank you.",
			inv.Total.StringFixed(2), inv.InvoiceNumber))
	textBody := fmt.Sprintf("Hi %s,\n\nYour payment of %s for invoice %s has been confirmed.\n\n%s Team",
		toName, inv.Total.StringFixed(2), inv.InvoiceNumber, s.fromName)
	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) SendStatusChangedAdmin(ctx context.Context, inv *domain.Invoice, clientName string) error {
	subject := fmt.Sprintf("Invoice %s is now %s", inv.InvoiceNumber, inv.Status)
	invoiceURL := fmt.Sprintf("%s/admin/invoices/%s", s.frontendURL, inv.ID)
	body := fmt.Sprintf("Invoice %s for client %s moved to status %s.", inv.InvoiceNumber, clientName, inv.Status)
	htmlBody := buildInvoiceHTML("there", inv, invoiceURL, body)
	textBody := body + "\n" + invoiceURL
	return s.send(ctx, s.adminAddress, subject, htmlBody, textBody)
}

func (s *sesSender) SendPaymentReported(ctx context.Context, inv *domain.Invoice, clientName, method, transactionID string) error {
	subject := fmt.Sprintf("Payment reported on invoice %s", inv.InvoiceNumber)
	invoiceURL := fmt.Sprintf("%s/admin/invoices/%s", s.frontendURL, inv.ID)
	detail := fmt.Sprintf("%s reported a payment of %s on invoice %s.", clientName, inv.Total.StringFixed(2), inv.InvoiceNumber)
	if method != "" {
		detail += fmt.Sprintf(" Method: %s.", method)
	}
	if transactionID != "" {
		detail += fmt.Sprintf(" Transaction: %s.", transactionID)
	}
	detail += " Verify the payment and mark the invoice paid."
	htmlBody := buildInvoiceHTML("there", inv, invoiceURL, detail)
	textBody := detail + "\n" + invoiceURL
	return s.send(ctx, s.adminAddress, subject, htmlBody, textBody)
}

func (s *sesSender) SendNotificationEmail(ctx context.Context, toEmail, toName, title, message string) error {
	htmlBody := buildNotificationHTML(toName, title, message, s.frontendURL, s.fromName)
	textBody := fmt.Sprintf("Hi %s,\n\n%s\n\n%s\n\nView your notifications at %s/dashboard/notifications\n\n%s Team",
		toName, title, message, s.frontendURL, s.fromName)
	return s.send(ctx, toEmail, title, htmlBody, textBody)
}

func (s *sesSender) SendContactReceived(ctx context.Context, contact *domain.Contact) error {
	subject := fmt.Sprintf("New contact request: %s", contact.Subject)
	htmlBody := buildContactHTML(contact, s.fromName)
	textBody := fmt.Sprintf("New contact request from %s <%s>.\nSubject: %s\nService: %s\n\n%s",
		contact.Name, contact.Email, contact.Subject, contact.Service, contact.Message)
	return s.send(ctx, s.adminAddress, subject, htmlBody, textBody)
}

func buildInvoiceHTML(name string, inv *domain.Invoice, invoiceURL, lede string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Invoice %s</h2>
  <p>Hi %s,</p>
  <p>%s</p>
  <table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
    <tr><td style="padding: 6px 0; color: #666;">Subtotal</td><td style="text-align: right;">%s</td></tr>
    <tr><td style="padding: 6px 0; color: #666;">Tax (%s%%)</td><td style="text-align: right;">%s</td></tr>
    <tr><td style="padding: 6px 0; font-weight: bold;">Total</td><td style="text-align: right; font-weight: bold;">%s</td></tr>
  </table>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">View Invoice</a>
  </p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">Due %s</p>
</body>
</html>`, inv.InvoiceNumber, name, lede,
		inv.Subtotal.StringFixed(2), inv.TaxRate.String(), inv.TaxAmount.StringFixed(2),
		inv.Total.StringFixed(2), invoiceURL, inv.DueDate.Format("2 Jan 2006"))
}

func buildNotificationHTML(name, title, message, frontendURL, fromName string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">%s</h2>
  <p>Hi %s,</p>
  <p>%s</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s/dashboard/notifications" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Open Dashboard</a>
  </p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">%s</p>
</body>
</html>`, title, name, message, frontendURL, fromName)
}

func buildContactHTML(contact *domain.Contact, fromName string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">New contact request</h2>
  <p><strong>%s</strong> &lt;%s&gt;</p>
  <p style="color: #666;">Subject: %s<br>Service: %s<br>Company: %s<br>Phone: %s</p>
  <blockquote style="border-left: 3px solid #4F46E5; margin: 20px 0; padding-left: 12px; color: #444;">%s</blockquote>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">%s</p>
</body>
</html>`, contact.Name, contact.Email, contact.Subject, contact.Service, contact.Company,
		contact.Phone, contact.Message, fromName)
}
