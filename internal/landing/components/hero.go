package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	Headline       = "Be the First to Know"
	Lead           = "We're launching something exciting soon! Join our waiting list to stay updated and get exclusive early access."
	SuccessMessage = "Thank you for joining! We'll keep you posted."
)

// Hero renders the headline and either the signup form or, once the
// visitor has joined, the thank-you message.
func Hero(email string, submitted bool) g.Node {
	return Div(
		Class("hero"),
		H1(g.Text(Headline)),
		P(g.Text(Lead)),
		g.If(!submitted, WaitlistForm(email)),
		g.If(submitted, Success()),
	)
}

// WaitlistForm is the email capture form. waitlist.js takes over submission
// and posts to the endpoint named in data-endpoint.
func WaitlistForm(email string) g.Node {
	return FormEl(
		Class("form-container"),
		ID("waitlist-form"),
		g.Attr("data-endpoint", "/api/register"),
		g.Attr("data-success", SuccessMessage),
		Input(
			Type("email"),
			Name("email"),
			Placeholder("Enter your email"),
			Value(email),
			Required(),
		),
		Button(Type("submit"), g.Text("Join Waitlist")),
	)
}

func Success() g.Node {
	return Div(
		Class("success-message"),
		g.Text(SuccessMessage),
	)
}
