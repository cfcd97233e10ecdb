package classifier

import (
	"errors"
	"fmt"
	"strings"
)

// Label is a sentiment class.
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// ErrInvalidLabel is returned when a training label is not positive or negative.
var ErrInvalidLabel = errors.New("invalid label")

func (l Label) String() string {
	return string(l)
}

// Display returns the label the way the result field shows it (upper case).
func (l Label) Display() string {
	return strings.ToUpper(string(l))
}

// ParseLabel parses a training label. Only positive and negative are
// accepted; neutral is an outcome, never an input.
func ParseLabel(s string) (Label, error) {
	switch Label(strings.ToLower(strings.TrimSpace(s))) {
	case Positive:
		return Positive, nil
	case Negative:
		return Negative, nil
	default:
		return "", fmt.Errorf("%w: %q (want positive or negative)", ErrInvalidLabel, s)
	}
}
