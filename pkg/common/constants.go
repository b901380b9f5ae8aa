package common

const (
	// RedisKeyEventDetail is the cache key prefix for event detail responses.
	RedisKeyEventDetail = "news.event.detail"

	// DefaultUserAgent is sent on article and sitemap fetches. Some
	// publishers refuse requests without a browser user agent.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	// TitleNotFound is the placeholder title for pages without a <title> element.
	TitleNotFound = "Title not found"
)
