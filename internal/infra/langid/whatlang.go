package langid

import (
	"strings"

	"github.com/abadojack/whatlanggo"

	"github.com/hananasr/faqchat/internal/domain/chat"
)

// Detector classifies text using whatlanggo's trigram model. It always
// returns a best guess; the unknown sentinel is reserved for inputs the
// library cannot map to an ISO-639-1 code at all.
type Detector struct{}

// New constructs the detector.
func New() *Detector {
	return &Detector{}
}

// Detect implements chat.Detector. It never panics or errors.
func (d *Detector) Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return chat.LanguageUnknown
	}
	info := whatlanggo.Detect(text)
	code := info.Lang.Iso6391()
	if code == "" {
		return chat.LanguageUnknown
	}
	return code
}

var _ chat.Detector = (*Detector)(nil)
