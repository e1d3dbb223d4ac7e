package domain

// FAQEntry is one static question/answer pair. Entries are identified by
// their position in the FAQ list and never change while the page is mounted.
type FAQEntry struct {
	Question string `yaml:"question" validate:"required"`
	Answer   string `yaml:"answer" validate:"required"`
}
