package impl

import (
	"fmt"
	"html"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/util"
)

func greeting(name string) string {
	if name == "" {
		return "Hi,"
	}

	return "Hi " + name + ","
}

// textToHTML renders paragraphs separated by blank lines.
func textToHTML(text string) string {
	var b strings.Builder
	for _, para := range strings.Split(text, "\n\n") {
		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(html.EscapeString(para), "\n", "<br>"))
		b.WriteString("</p>")
	}

	return b.String()
}

func newEmail(to, name, subject, text string) *service.Email {
	return &service.Email{
		ToAddress: to,
		ToName:    name,
		Subject:   subject,
		PlainText: text,
		HTML:      textToHTML(text),
	}
}

func verificationEmail(principal *entity.Principal, link string) *service.Email {
	text := fmt.Sprintf("%s\n\nPlease confirm your email address by opening this link:\n%s\n\nIf you did not create an account, you can ignore this message.",
		greeting(principal.DisplayName), link)

	return newEmail(principal.Email, principal.DisplayName, "Confirm your email address", text)
}

func passwordResetEmail(email, link string) *service.Email {
	text := fmt.Sprintf("%s\n\nWe received a request to reset your password. Choose a new one here:\n%s\n\nIf you did not ask for this, no action is needed.",
		greeting(""), link)

	return newEmail(email, "", "Reset your password", text)
}

func orderLines(order *entity.Order) string {
	var b strings.Builder
	for i := range order.Items {
		item := &order.Items[i]
		name := util.Truncate(item.Name, 60)
		if v := item.Variant.String(); v != "" {
			name += " (" + v + ")"
		}
		fmt.Fprintf(&b, "%d x %s  %s\n", item.Quantity, name, util.FormatCurrency(item.LineTotal()))
	}
	fmt.Fprintf(&b, "\nSubtotal: %s\nShipping: %s\nTax: %s\nTotal: %s",
		util.FormatCurrency(order.Subtotal),
		util.FormatCurrency(order.Shipping),
		util.FormatCurrency(order.Tax),
		util.FormatCurrency(order.Total),
	)

	return b.String()
}

func orderConfirmationEmail(order *entity.Order, orderURL string) *service.Email {
	text := fmt.Sprintf("%s\n\nThanks for your order #%s placed on %s.\n\n%s\n\nEstimated delivery: %s\nTrack your order: %s",
		greeting(order.UserName),
		util.ShortID(order.ID),
		util.FormatDate(order.CreatedAt),
		orderLines(order),
		util.FormatDate(order.EstimatedDelivery),
		orderURL,
	)

	return newEmail(order.UserEmail, order.UserName, "Order #"+util.ShortID(order.ID)+" confirmed", text)
}

func orderStatusEmail(order *entity.Order, orderURL string) *service.Email {
	status := order.Status.String()
	var detail string
	switch order.Status {
	case entity.OrderStatusShipped:
		detail = "Your order is on its way."
		if order.TrackingNumber != "" {
			detail += " Tracking number: " + order.TrackingNumber + "."
		}
	case entity.OrderStatusDelivered:
		detail = "Your order has been delivered. Enjoy!"
	case entity.OrderStatusCancelled:
		detail = "Your order has been cancelled. If you were charged, the amount will be refunded."
	default:
		detail = "Your order is now " + status + "."
	}

	text := fmt.Sprintf("%s\n\n%s\n\nOrder #%s, total %s.\nDetails: %s",
		greeting(order.UserName), detail, util.ShortID(order.ID), util.FormatCurrency(order.Total), orderURL)

	return newEmail(order.UserEmail, order.UserName, "Order #"+util.ShortID(order.ID)+" is "+status, text)
}
