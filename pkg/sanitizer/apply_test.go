package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/datacheck/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		transforms []func(string) string
		expected   string
	}{
		{
			name:       "applies single transform",
			input:      "  hello  ",
			transforms: []func(string) string{sanitizer.Trim},
			expected:   "hello",
		},
		{
			name:  "applies multiple transforms in sequence",
			input: " (555) 123-4567 ",
			transforms: []func(string) string{
				sanitizer.Trim,
				sanitizer.KeepDigits,
			},
			expected: "5551234567",
		},
		{
			name:  "order matters",
			input: "  a  b  ",
			transforms: []func(string) string{
				sanitizer.CollapseWhitespace,
				func(s string) string { return s + "!" },
			},
			expected: "a b!",
		},
		{
			name:       "handles empty transforms slice",
			input:      "hello world",
			transforms: []func(string) string{},
			expected:   "hello world",
		},
		{
			name:  "handles empty input",
			input: "",
			transforms: []func(string) string{
				sanitizer.Trim,
				sanitizer.KeepDigits,
			},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.Apply(tt.input, tt.transforms...))
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	t.Run("builds a reusable pipeline", func(t *testing.T) {
		clean := sanitizer.Compose(
			sanitizer.NormalizeNFC,
			sanitizer.Trim,
		)

		assert.Equal(t, "user@example.com", clean("  user@example.com\n"))
		assert.Equal(t, "second", clean("\tsecond "))
	})

	t.Run("empty pipeline is identity", func(t *testing.T) {
		id := sanitizer.Compose[string]()
		assert.Equal(t, "unchanged", id("unchanged"))
	})

	t.Run("composed pipelines nest", func(t *testing.T) {
		digits := sanitizer.Compose(sanitizer.Trim, sanitizer.KeepDigits)
		padded := sanitizer.Compose(digits, func(s string) string { return "#" + s })

		assert.Equal(t, "#5551234567", padded(" 555-123-4567 "))
	})
}
