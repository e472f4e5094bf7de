// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	"github.com/google/uuid"
)

// SocialPlatform enumerates the platforms a listing may link to.
type SocialPlatform string

const (
	PlatformFacebook  SocialPlatform = "facebook"
	PlatformInstagram SocialPlatform = "instagram"
	PlatformTikTok    SocialPlatform = "tiktok"
	PlatformYouTube   SocialPlatform = "youtube"
	PlatformX         SocialPlatform = "x"
	PlatformLinkedIn  SocialPlatform = "linkedin"
	PlatformWebsite   SocialPlatform = "website"
)

// String returns the string representation of the SocialPlatform.
func (p SocialPlatform) String() string {
	return string(p)
}

// IsValid checks if the SocialPlatform is a valid value.
func (p SocialPlatform) IsValid() bool {
	switch p {
	case PlatformFacebook, PlatformInstagram, PlatformTikTok, PlatformYouTube,
		PlatformX, PlatformLinkedIn, PlatformWebsite:
		return true
	default:
		return false
	}
}

// SocialLink points a listing at an external social presence.
type SocialLink struct {
	ID       uuid.UUID
	Owner    OwnerRef
	Platform SocialPlatform
	URL      string
	Position int
}

// Valid reports whether the item survives the replace-all minimal check.
func (l *SocialLink) Valid() bool {
	return l.Platform.IsValid() && strings.TrimSpace(l.URL) != ""
}
