package model

// Platform identifies a social media target for generated content.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformX         Platform = "x"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformFacebook  Platform = "facebook"
)

// SupportedPlatforms lists every platform content can be generated for,
// in the order they are presented to the user.
var SupportedPlatforms = []Platform{
	PlatformInstagram,
	PlatformX,
	PlatformLinkedIn,
	PlatformFacebook,
}

// IsValidPlatform reports whether p is one of the supported platforms.
func IsValidPlatform(p Platform) bool {
	switch p {
	case PlatformInstagram, PlatformX, PlatformLinkedIn, PlatformFacebook:
		return true
	default:
		return false
	}
}

// PostCounts maps a platform to the number of posts requested for it.
type PostCounts map[Platform]int

// GeneratedContent maps a platform to its generated posts, in call order.
// Platforms with a zero post count are omitted from the map.
type GeneratedContent map[Platform][]string

// TotalPosts returns the number of posts across all platforms.
func (c GeneratedContent) TotalPosts() int {
	total := 0
	for _, posts := range c {
		total += len(posts)
	}
	return total
}
