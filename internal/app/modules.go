package app

import (
	"github.com/sifiratik/fidan/internal/module"
	"github.com/sifiratik/fidan/internal/modules/donation"
	"github.com/sifiratik/fidan/internal/modules/faq"
	"github.com/sifiratik/fidan/internal/modules/newsletter"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		faq.New(faq.Dependencies{
			Content:  deps.Content,
			Renderer: deps.Renderer,
		}),
		donation.New(donation.Dependencies{
			Content:  deps.Content,
			Renderer: deps.Renderer,
		}),
		newsletter.New(newsletter.Dependencies{
			Content:  deps.Content,
			Renderer: deps.Renderer,
			Service:  deps.Newsletter,
		}),
	}
}
