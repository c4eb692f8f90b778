package preprocess

// Policy configures the case packet normalizer: which substring markers flag
// a line as meta-information, the minimum substantive line length, and the
// length above which an all-uppercase line is treated as a section header.
// A Policy is plain data, loaded once and shared read-only.
type Policy struct {
	Markers           []string
	MinLineChars      int
	UppercaseMinChars int
}

// defaultMarkers flags dedications, authorship credits, competition and
// scoring instructions, disclaimers, copyright notices, and page/exhibit
// labels commonly found in mock trial case packets.
var defaultMarkers = []string{
	"in honor of", "dedicated to", "in memory of", "this case honors",
	"written by", "authored by", "created by", "developed by",
	"mock trial competition", "competition rules", "tournament",
	"judge instructions", "scoring", "time limit", "points",
	"for educational purposes", "learning objectives",
	"case writer", "based on", "inspired by",
	"copyright", "all rights reserved", "©",
	"page ", "exhibit ", "stipulation",
}

// DefaultPolicy returns the stock normalization policy.
func DefaultPolicy() Policy {
	return Policy{
		Markers:           defaultMarkers,
		MinLineChars:      15,
		UppercaseMinChars: 5,
	}
}
