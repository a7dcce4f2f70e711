package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/datacheck/pkg/sanitizer"
)

func TestNormalizeNFC(t *testing.T) {
	t.Parallel()

	t.Run("composes decomposed characters", func(t *testing.T) {
		decomposed := "résumé" // e + combining acute
		composed := "résumé"

		assert.NotEqual(t, decomposed, composed)
		assert.Equal(t, composed, sanitizer.NormalizeNFC(decomposed))
	})

	t.Run("leaves ascii alone", func(t *testing.T) {
		assert.Equal(t, "plain ascii 123", sanitizer.NormalizeNFC("plain ascii 123"))
	})

	t.Run("makes equal-looking input compare equal", func(t *testing.T) {
		a := sanitizer.NormalizeNFC("José")
		b := sanitizer.NormalizeNFC("José")
		assert.Equal(t, a, b)
	})
}
