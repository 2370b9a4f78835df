package align

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/DiwakaruniKoushik/DocuSign/internal/types"
)

// ExtractMarkers parses aligned HTML and returns the marker spans found, in
// document order. Fields that could not be aligned have no marker and are
// simply absent from the result.
func ExtractMarkers(html string) ([]types.Marker, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var markers []types.Marker
	doc.Find("span.field-marker").Each(func(i int, s *goquery.Selection) {
		id, ok := s.Attr("data-field-id")
		if !ok {
			return
		}
		markers = append(markers, types.Marker{FieldID: id, Index: i})
	})
	return markers, nil
}
