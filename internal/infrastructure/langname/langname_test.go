package langname

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		code    string
		known   bool
		english string
		str     string
	}{
		{code: "en", known: true, english: "English", str: "English"},
		{code: "ko", known: true, english: "Korean", str: "Korean (한국어)"},
		{code: "fr", known: true, english: "French", str: "French (français)"},
		{code: "", known: false, str: ""},
		{code: "not a code", known: false, str: "not a code"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			name := Lookup(tt.code)
			assert.Equal(t, tt.code, name.Code)
			assert.Equal(t, tt.known, name.Known)
			assert.Equal(t, tt.english, name.English)
			assert.Equal(t, tt.str, name.String())
		})
	}
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "en-US", Canonical("en-us"))
	assert.Equal(t, "ko", Canonical("ko"))
	assert.Equal(t, "??", Canonical("??"))
}
