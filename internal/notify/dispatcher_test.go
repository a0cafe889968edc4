package notify

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateMessageShortInputUnchanged(t *testing.T) {
	assert.Equal(t, "hola", truncateMessage("hola", 10))
	assert.Equal(t, "hola", truncateMessage("hola", 4))
}

func TestTruncateMessageKeepsRunesWhole(t *testing.T) {
	// Each "ñ" is two bytes; a byte-offset cut would split one in half.
	msg := strings.Repeat("ñ", 12)

	out := truncateMessage(msg, 5)

	assert.Equal(t, strings.Repeat("ñ", 5)+"...", out)
	assert.True(t, utf8.ValidString(out))
}

func TestTruncateMessageAtExactLimit(t *testing.T) {
	msg := strings.Repeat("é", 8)

	assert.Equal(t, msg, truncateMessage(msg, 8))
}
