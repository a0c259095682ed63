// Package filereader turns raw report bytes into an XML token stream,
// whatever encoding the producing tool picked.
package filereader

import (
	"encoding/xml"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NewXMLDecoder returns a decoder for r. A UTF-8 or UTF-16 byte-order mark is
// honoured and removed; other encodings are taken from the XML declaration.
func NewXMLDecoder(r io.Reader) *xml.Decoder {
	decoder := xml.NewDecoder(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	decoder.CharsetReader = CharsetReader
	return decoder
}

// CharsetReader converts input in the named encoding to UTF-8. Unicode labels
// pass through because the byte-order mark was already handled.
func CharsetReader(label string, input io.Reader) (io.Reader, error) {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(label)), "utf-") {
		return input, nil
	}
	return charset.NewReaderLabel(label, input)
}
