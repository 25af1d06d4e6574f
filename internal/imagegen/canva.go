package imagegen

import (
	"fmt"
	"net/url"
	"strings"
)

const canvaEditBase = "https://www.canva.com/design/new"

// CanvaEditURL builds a deep link that opens an external design editor
// pre-loaded with the generated image for manual touch-up.
func CanvaEditURL(imageURL, businessName string) string {
	query := url.Values{}
	query.Set("template", "true")
	query.Set("imageUrl", imageURL)
	query.Set("businessName", businessName)
	return canvaEditBase + "?" + query.Encode()
}

// ParseCanvaEditURL recovers the image URL and business name from a deep link
// produced by CanvaEditURL.
func ParseCanvaEditURL(link string) (imageURL, businessName string, err error) {
	parsed, err := url.Parse(link)
	if err != nil {
		return "", "", fmt.Errorf("parse editor link: %w", err)
	}
	query := parsed.Query()
	return query.Get("imageUrl"), query.Get("businessName"), nil
}

// CanvaTemplateURL builds a link to start a fresh branded design when no usable
// generated image exists at all.
func CanvaTemplateURL(params Params) string {
	query := url.Values{}
	query.Set("format", string(params.Network))
	query.Set("style", params.Style)
	query.Set("text", params.OverlayText)
	query.Set("colors", strings.ReplaceAll(strings.Join(params.ColorPalette, ","), "#", ""))
	query.Set("businessName", params.BusinessName)
	return "https://www.canva.com/design/create?" + query.Encode()
}
