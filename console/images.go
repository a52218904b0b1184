package console

import "strings"

// PlaceholderImage is shown for assets without an image.
const PlaceholderImage = "/placeholder-asset.jpg"

// ImageURL resolves a stored image reference against the client's base URL.
func (c *Console) ImageURL(ref *string) string {
	return ResolveImageURL(c.client.BaseURL(), ref)
}

func ResolveImageURL(baseURL string, ref *string) string {
	if ref == nil || *ref == "" {
		return PlaceholderImage
	}
	if strings.HasPrefix(*ref, "http://") || strings.HasPrefix(*ref, "https://") {
		return *ref
	}
	return strings.TrimRight(baseURL, "/") + "/assets/images/" + *ref
}
