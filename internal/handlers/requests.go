package handlers

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sifiratik/fidan/internal/accordion"
	"github.com/sifiratik/fidan/internal/donation"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// HomeQuery is the query string of the landing page. Open and Index arrive
// from the no-script FAQ form, Amount and Pick from the no-script donation form.
type HomeQuery struct {
	Open   string `query:"open"`
	Index  string `query:"index"`
	Amount string `query:"amount"`
	Pick   string `query:"pick"`
}

// Selection returns the accordion state the page should show and the
// transitions that led to it. A bare visit mounts the accordion fresh.
func (q HomeQuery) Selection(n int) (accordion.Selection, []accordion.Effect) {
	if q.Open == "" && q.Index == "" {
		return accordion.Initial(), nil
	}
	prev := accordion.Parse(q.Open, n)
	i, ok := accordion.ParseIndex(q.Index, n)
	if !ok {
		return prev, nil
	}
	next := accordion.Reduce(prev, accordion.Action{Index: i})
	return next, accordion.Effects(prev, next)
}

// DonationAmount resolves the amount carried by the query.
func (q HomeQuery) DonationAmount(def donation.Amount) donation.Amount {
	return AmountRequest{Amount: q.Amount, Pick: q.Pick}.Resolve(def)
}

// ToggleRequest is the FAQ form: the currently open entry, the entry whose
// header was activated and the donation amount shown beside it.
type ToggleRequest struct {
	Open   string `form:"open"`
	Index  string `form:"index" validate:"required,numeric"`
	Amount string `form:"amount"`
}

// AmountRequest is the donation selector form. A quick pick wins over the
// free-text amount. Open is the FAQ selection the page was showing.
type AmountRequest struct {
	Amount string `form:"amount"`
	Pick   string `form:"pick"`
	Open   string `form:"open"`
}

// Selection returns the FAQ selection carried by the form, or the fresh
// mount state when the form carried none.
func (r AmountRequest) Selection(n int) accordion.Selection {
	if r.Open == "" {
		return accordion.Initial()
	}
	return accordion.Parse(r.Open, n)
}

// PageQuery encodes the page state for a no-script redirect back to the
// index route.
func PageQuery(sel accordion.Selection, amount donation.Amount) string {
	return url.Values{
		"open":   {sel.String()},
		"amount": {amount.String()},
	}.Encode()
}

// Resolve returns the selected amount, or def when nothing was sent.
func (r AmountRequest) Resolve(def donation.Amount) donation.Amount {
	if pick := strings.TrimSpace(r.Pick); pick != "" {
		if q, err := strconv.Atoi(pick); err == nil {
			return donation.Pick(q)
		}
	}
	return donation.ParseOr(r.Amount, def)
}

// NewsletterRequest is the footer sign-up form.
type NewsletterRequest struct {
	Email string `form:"email" validate:"max=320"`
}
