package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Join Our Waiting List"
	}

	if config.Description == "" {
		config.Description = "Sign up to join our waiting list for the latest updates and news."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				g.Group(content),

				Script(Type("module"), Src("/static/js/waitlist.js")),
			),
		),
	})
}
