// Package content holds the static copy of the landing page.
//
// The copy is compiled in (Defaults) and can be replaced by a YAML file with
// the same shape. Content is read-only once loaded: a Store hands out
// immutable snapshots and swaps them whole on reload.
package content

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sifiratik/fidan/internal/domain"
)

var validate = validator.New()

// Site is the full copy of the page, section by section.
type Site struct {
	Brand    Brand           `yaml:"brand"`
	Nav      Nav             `yaml:"nav"`
	Hero     Hero            `yaml:"hero"`
	About    About           `yaml:"about"`
	Services ServicesSection `yaml:"services"`
	Steps    StepsSection    `yaml:"steps"`
	FAQ      FAQSection      `yaml:"faq"`
	Footer   Footer          `yaml:"footer"`
}

// Brand identifies the organisation.
type Brand struct {
	Name   string `yaml:"name" validate:"required"`
	Logo   string `yaml:"logo"`
	Accent string `yaml:"accent" validate:"omitempty,hexcolor"`
}

// Nav is the fixed header. ScrollThreshold is the vertical offset, in pixels,
// past which the header turns opaque.
type Nav struct {
	Links           []Link `yaml:"links"`
	DonateLabel     string `yaml:"donate_label"`
	DonateHref      string `yaml:"donate_href"`
	ScrollThreshold int    `yaml:"scroll_threshold" validate:"gte=0"`
}

// Hero is the first screen with the donation-amount selector.
type Hero struct {
	Eyebrow       string   `yaml:"eyebrow"`
	Title         []string `yaml:"title" validate:"required,min=1"`
	Highlight     string   `yaml:"highlight"`
	Lead          string   `yaml:"lead"`
	AmountLabel   string   `yaml:"amount_label"`
	PickSuffix    string   `yaml:"pick_suffix"`
	UnitLabel     string   `yaml:"unit_label"`
	QuickPicks    []int    `yaml:"quick_picks" validate:"required,min=1,dive,gte=1"`
	DefaultAmount int      `yaml:"default_amount" validate:"gte=1"`
	Assurances    []string `yaml:"assurances"`
	DonateSuffix  string   `yaml:"donate_suffix"`
	ExploreLabel  string   `yaml:"explore_label"`
	ThanksFormat  string   `yaml:"thanks_format"`
	Trust         []string `yaml:"trust"`
	Image         string   `yaml:"image"`
	ImageAlt      string   `yaml:"image_alt"`
	PlantedBadge  string   `yaml:"planted_badge"`
	CarbonBadge   string   `yaml:"carbon_badge"`
}

// Person is a named member of the organisation.
type Person struct {
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
	Photo string `yaml:"photo"`
}

// Link is a labelled href.
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// About introduces the organisation and its progress toward the goal.
// Progress is a percentage; values outside 0..100 are clamped on load.
type About struct {
	Eyebrow       string   `yaml:"eyebrow"`
	Title         []string `yaml:"title"`
	Lead          string   `yaml:"lead"`
	Bullets       []string `yaml:"bullets"`
	ProgressLabel string   `yaml:"progress_label"`
	Progress      int      `yaml:"progress"`
	Photo         string   `yaml:"photo"`
	PhotoAlt      string   `yaml:"photo_alt"`
	Sticker       string   `yaml:"sticker"`
	StickerTitle  string   `yaml:"sticker_title"`
	StickerText   string   `yaml:"sticker_text"`
	Person        Person   `yaml:"person"`
	CTA           Link     `yaml:"cta"`
}

// Service is one offering card.
type Service struct {
	Icon    string   `yaml:"icon"`
	Title   string   `yaml:"title" validate:"required"`
	Desc    string   `yaml:"desc"`
	Bullets []string `yaml:"bullets"`
	Image   string   `yaml:"image"`
	Badge   string   `yaml:"badge"`
}

// Stat is an animated counter.
type Stat struct {
	Number   float64 `yaml:"number" validate:"gte=0"`
	Suffix   string  `yaml:"suffix"`
	Label    string  `yaml:"label" validate:"required"`
	Decimals int     `yaml:"decimals" validate:"gte=0,lte=4"`
}

// ServicesSection lists the offerings and headline statistics.
type ServicesSection struct {
	Eyebrow      string    `yaml:"eyebrow"`
	Title        string    `yaml:"title"`
	Lead         string    `yaml:"lead"`
	Items        []Service `yaml:"items" validate:"dive"`
	Stats        []Stat    `yaml:"stats" validate:"dive"`
	Transparency string    `yaml:"transparency"`
	Footnote     string    `yaml:"footnote"`
}

// Step is one stage of the process.
type Step struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title" validate:"required"`
	Desc  string `yaml:"desc"`
}

// StepsSection is the numbered process.
type StepsSection struct {
	Eyebrow string   `yaml:"eyebrow"`
	Title   []string `yaml:"title"`
	Items   []Step   `yaml:"items" validate:"dive"`
}

// FAQSection is the accordion with its illustration.
type FAQSection struct {
	Eyebrow  string            `yaml:"eyebrow"`
	Title    string            `yaml:"title"`
	Lead     string            `yaml:"lead"`
	Image    string            `yaml:"image"`
	ImageAlt string            `yaml:"image_alt"`
	Entries  []domain.FAQEntry `yaml:"entries" validate:"required,min=1,dive"`
}

// ContactCard is one of the boxes above the footer columns.
type ContactCard struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title"`
	Desc  string `yaml:"desc"`
}

// NewsItem is a recent article teaser.
type NewsItem struct {
	Title string `yaml:"title"`
	Date  string `yaml:"date"`
	Image string `yaml:"image"`
	Href  string `yaml:"href"`
}

// Newsletter is the copy of the sign-up form.
type Newsletter struct {
	Title       string `yaml:"title"`
	Lead        string `yaml:"lead"`
	Placeholder string `yaml:"placeholder"`
	Submit      string `yaml:"submit"`
	Thanks      string `yaml:"thanks"`
	Invalid     string `yaml:"invalid"`
}

// Footer closes the page.
type Footer struct {
	Contacts   []ContactCard `yaml:"contacts"`
	AboutTitle string        `yaml:"about_title"`
	AboutText  string        `yaml:"about_text"`
	AboutCTA   Link          `yaml:"about_cta"`
	LinksTitle string        `yaml:"links_title"`
	QuickLinks []Link        `yaml:"quick_links"`
	NewsTitle  string        `yaml:"news_title"`
	News       []NewsItem    `yaml:"news"`
	Newsletter Newsletter    `yaml:"newsletter"`
	Copyright  string        `yaml:"copyright"`
	LegalLinks []Link        `yaml:"legal_links"`
	BackToTop  string        `yaml:"back_to_top"`
}

// Normalize clamps values that have a valid range and fills defaults that
// the copy may leave out.
func (s *Site) Normalize() {
	if s.About.Progress < 0 {
		s.About.Progress = 0
	}
	if s.About.Progress > 100 {
		s.About.Progress = 100
	}
	if s.Hero.DefaultAmount == 0 {
		s.Hero.DefaultAmount = 5
	}
	if s.Nav.ScrollThreshold == 0 {
		s.Nav.ScrollThreshold = 80
	}
}

// Validate checks the copy for fields the page cannot render without.
func (s *Site) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidContent, err)
	}
	return nil
}
