package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"tinygo.org/x/tinyfont"
)

func TestLookupKnownClasses(t *testing.T) {
	for _, c := range []Class{Numbers20Bold, Label24Bold, Numbers26Bold, Numbers42} {
		f := Lookup(c)
		assert.NotNil(t, f.Font, c.String())
		assert.Positive(t, f.Ascent, c.String())
		assert.GreaterOrEqual(t, f.Height, f.Ascent, c.String())
	}
}

func TestLookupUnknownFallsBack(t *testing.T) {
	assert.Equal(t, Lookup(Numbers20Bold), Lookup(Class(200)))
	assert.Equal(t, "unknown", Class(200).String())
}

func TestTimeFaceIsLargest(t *testing.T) {
	big, _ := tinyfont.LineWidth(Lookup(Numbers42).Font, "00:00")
	small, _ := tinyfont.LineWidth(Lookup(Numbers20Bold).Font, "00:00")
	assert.Greater(t, big, small)
	assert.Greater(t, Lookup(Numbers42).Ascent, Lookup(Numbers20Bold).Ascent)
}

func TestSizeClassesGrow(t *testing.T) {
	order := []Class{Numbers20Bold, Label24Bold, Numbers26Bold, Numbers42}
	for i := 1; i < len(order); i++ {
		assert.Greater(t, Lookup(order[i]).Ascent, Lookup(order[i-1]).Ascent, order[i].String())
	}
}
