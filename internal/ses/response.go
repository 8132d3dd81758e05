package ses

import (
	"bytes"
	"encoding/xml"
	"strings"
)

type errorResponse struct {
	Code string `xml:"Error>Code"`
}

// errorCode pulls the service error code out of an error document. A body
// that does not parse yields "" so status-based mapping still applies.
func errorCode(body []byte) string {
	var doc errorResponse
	if err := xml.Unmarshal(body, &doc); err != nil {
		return ""
	}
	return doc.Code
}

// nextToken scans for a NextToken element anywhere in the document, so one
// scanner serves every paginated response shape.
func nextToken(body []byte) string {
	dec := xml.NewDecoder(bytes.NewReader(body))
	for {
		tok, err := dec.Token()
		if err != nil {
			return ""
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "NextToken" {
			continue
		}
		var value string
		if err := dec.DecodeElement(&value, &start); err != nil {
			return ""
		}
		return strings.TrimSpace(value)
	}
}
