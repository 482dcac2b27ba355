package langid

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hananasr/faqchat/internal/domain/chat"
)

func TestDetectEmptyReturnsUnknown(t *testing.T) {
	d := New()
	require.Equal(t, chat.LanguageUnknown, d.Detect(""))
	require.Equal(t, chat.LanguageUnknown, d.Detect("   \n\t"))
}

func TestDetectArabicScript(t *testing.T) {
	d := New()
	require.Equal(t, "ar", d.Detect("ما هي مواعيد العمل لديكم في أيام الأسبوع؟"))
}

func TestDetectEnglishSentence(t *testing.T) {
	d := New()
	got := d.Detect("How do I reset my password for the customer portal and where can I find the billing settings?")
	require.Equal(t, "en", got)
}

func TestDetectAlwaysReturnsACode(t *testing.T) {
	d := New()
	for _, input := range []string{"a", "??", "12345", "zzzz zzzz zzzz"} {
		require.NotEmpty(t, d.Detect(input))
	}
}
