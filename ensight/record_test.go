package ensight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedStringPads(t *testing.T) {
	fs := NewFixedString("part")
	assert.Equal(t, "part", string(fs[:4]))
	for _, c := range fs[4:] {
		assert.Equal(t, byte(0), c)
	}
	assert.Equal(t, "part", fs.String())
}

func TestFixedStringTruncates(t *testing.T) {
	long := strings.Repeat("abcdefghij", 9)
	fs := NewFixedString(long)
	assert.Len(t, fs, StringSize)
	assert.Equal(t, long[:StringSize], fs.String())
}

func TestFixedStringExactWidth(t *testing.T) {
	exact := strings.Repeat("x", StringSize)
	assert.Equal(t, exact, NewFixedString(exact).String())
	assert.Equal(t, "", NewFixedString("").String())
}
