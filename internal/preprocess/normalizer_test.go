package preprocess

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_StripsMarkerLines(t *testing.T) {
	in := "This case is dedicated to the memory of our beloved coach\n" +
		"Twenty characters OK."
	out := Normalize(in, DefaultPolicy())
	assert.Equal(t, "Twenty characters OK.", out)
}

func TestNormalize_RemovesAllCapsHeaders(t *testing.T) {
	in := "STATEMENT OF JANE DOE\nJane Doe walked to the store that evening"
	out := Normalize(in, DefaultPolicy())
	assert.Equal(t, "Jane Doe walked to the store that evening", out)
}

func TestNormalize_ShortLineBoundary(t *testing.T) {
	// 14 characters is dropped, 15 is kept.
	fourteen := "abcdefghijklmn"
	fifteen := "abcdefghijklmno"
	assert.Len(t, fourteen, 14)
	assert.Len(t, fifteen, 15)

	out := Normalize(fourteen+"\n"+fifteen, DefaultPolicy())
	assert.Equal(t, fifteen, out)
}

func TestNormalize_EndToEnd(t *testing.T) {
	in := "In honor of our late coach\n\n" +
		"John Doe testified that he saw the car run the red light at approximately 5:45pm.\n\n" +
		"WITNESS STATEMENT OF JOHN DOE\n\nPAGE 3"
	out := Normalize(in, DefaultPolicy())
	assert.Equal(t, "John Doe testified that he saw the car run the red light at approximately 5:45pm.", out)
}

func TestNormalize_EmptyAndNoSurvivors(t *testing.T) {
	p := DefaultPolicy()
	assert.Equal(t, "", Normalize("", p))
	assert.Equal(t, "", Normalize("\n\n\n", p))
	assert.Equal(t, "", Normalize("PAGE 1\nEXHIBIT A\nshort", p))
}

func TestNormalize_NoMarkersPassthrough(t *testing.T) {
	in := "The defendant arrived at the warehouse around nine in the evening.\n" +
		"Two witnesses heard shouting before the alarm sounded."
	out := Normalize(in, DefaultPolicy())
	assert.Equal(t, in, out)
}

func TestNormalize_Idempotent(t *testing.T) {
	docs := []string{
		"",
		"In honor of our late coach\n\nJohn Doe testified that he saw the car run the red light.\n\nPAGE 3",
		"The defendant arrived at the warehouse around nine in the evening.\nSCORING INSTRUCTIONS\nA second witness heard shouting before the alarm sounded.",
		"Written by the case writer committee\nthe contract was signed on March 3rd, 2021 in Springfield.",
		"Ünïcode testimony: the café owner déscribed the argument in detail.",
	}
	p := DefaultPolicy()
	for _, d := range docs {
		once := Normalize(d, p)
		twice := Normalize(once, p)
		assert.Equal(t, once, twice, "normalize must be idempotent for %q", d)
	}
}

func TestNormalize_SubsequenceProperty(t *testing.T) {
	in := "The first officer arrived at the scene at midnight sharp.\n" +
		"EXHIBIT B\n" +
		"A neighbor reported hearing two distinct voices arguing loudly.\n" +
		"pg 4\n" +
		"The security camera footage shows a figure near the loading dock."
	out := Normalize(in, DefaultPolicy())

	inLines := strings.Split(in, "\n")
	i := 0
	for _, line := range strings.Split(out, "\n") {
		found := false
		for ; i < len(inLines); i++ {
			if inLines[i] == line {
				found = true
				i++
				break
			}
		}
		assert.True(t, found, "output line %q must appear in input, in order", line)
	}
}

func TestNormalize_NoTripleNewlines(t *testing.T) {
	in := strings.Repeat("The witness described the collision in considerable detail.\n\n\n\n", 5)
	out := Normalize(in, DefaultPolicy())
	assert.NotContains(t, out, "\n\n\n")
}

func TestNormalize_NonASCII(t *testing.T) {
	// Rune-based length: 15 two-byte runes must survive the length rule.
	line := strings.Repeat("é", 15)
	out := Normalize(line, DefaultPolicy())
	assert.Equal(t, line, out)
}
