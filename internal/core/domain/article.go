package domain

// PlaceholderImageURL is shown for articles that carry no image.
const PlaceholderImageURL = "https://via.placeholder.com/150"

// DefaultCountry is the country code headlines are requested for.
const DefaultCountry = "us"

// Article is a single top headline.
type Article struct {
	// Title is the headline text.
	Title string

	// Description is a short summary. May be empty.
	Description string

	// ImageURL is the article image. Empty when the provider sent none.
	ImageURL string
}

// Image returns the article image URL, or the placeholder when absent.
func (a Article) Image() string {
	if a.ImageURL == "" {
		return PlaceholderImageURL
	}
	return a.ImageURL
}
