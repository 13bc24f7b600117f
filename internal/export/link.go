package export

import (
	"fmt"

	"github.com/vincent-petithory/dataurl"
)

// Link is an inline download: a data URI plus the name to save it under.
type Link struct {
	Href     string
	Download string
}

// NewLink encodes content as a UTF-8 data URI of the given media type.
func NewLink(filename, mime, content string) Link {
	du := dataurl.New([]byte(content), mime, "charset", "utf-8")
	return Link{
		Href:     du.String(),
		Download: filename,
	}
}

// Decode returns the media type and the raw bytes carried by the link.
func (l Link) Decode() (string, []byte, error) {
	du, err := dataurl.DecodeString(l.Href)
	if err != nil {
		return "", nil, fmt.Errorf("decode data link: %w", err)
	}
	return du.ContentType(), du.Data, nil
}
