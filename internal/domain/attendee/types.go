package attendee

import "errors"

var ErrInvalidSource = errors.New("invalid attendee source")

// Source records how the attendee entered the list.
type Source string

const (
	SourceManual  Source = "manual"
	SourceLuma    Source = "luma"
	SourceWebsite Source = "website"
)

func (s Source) String() string {
	return string(s)
}

func (s Source) IsValid() bool {
	switch s {
	case SourceManual, SourceLuma, SourceWebsite:
		return true
	default:
		return false
	}
}

func NewSource(s string) (Source, error) {
	source := Source(s)
	if !source.IsValid() {
		return "", ErrInvalidSource
	}
	return source, nil
}
