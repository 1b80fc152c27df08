package domain

// ParagraphPair is the unit exchanged with callers for both reads and writes.
type ParagraphPair struct {
	Left  string `json:"left" yaml:"left" mapstructure:"left"`
	Right string `json:"right" yaml:"right" mapstructure:"right"`
}

// Side names one of the two books.
type Side string

const (
	Left  Side = "left"
	Right Side = "right"
)

// Sides lists both books in load/write order.
var Sides = []Side{Left, Right}

// Of returns the text of the pair for the given side.
func (p ParagraphPair) Of(side Side) string {
	if side == Right {
		return p.Right
	}
	return p.Left
}
