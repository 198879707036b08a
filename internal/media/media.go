package media

import (
	"fmt"
	"net/url"
	"strings"

	"foodexchange-admin/internal/models"
)

// DefaultImage is shown when a story or post carries no picture
const DefaultImage = "https://fastly.picsum.photos/id/75/1999/2998.jpg?hmac=0agRZd8c5CRiFvADOWJqfTv6lqYBty3Kw-9LEtLp_98"

// UnknownUser is the display name of an author the API did not send
const UnknownUser = "Unknown User"

// NormalizeImage turns an API image field into something an <img> can
// load: data URLs and http(s) URLs pass through, bare base64 is wrapped as
// JPEG, and empty falls back.
func NormalizeImage(raw, fallback string) string {
	switch {
	case raw == "":
		return fallback
	case strings.HasPrefix(raw, "data:image"):
		return raw
	case strings.HasPrefix(raw, "http"):
		return raw
	default:
		return "data:image/jpeg;base64," + raw
	}
}

// ProxyPrefix is where the gateway serves post media
const ProxyPrefix = "/media"

// PostImageURL normalizes a post image; an empty image is served through
// the gateway's per-post image route
func PostImageURL(raw string, postID int) string {
	if raw == "" && postID > 0 {
		return fallbackImageURL(postID)
	}
	return NormalizeImage(raw, DefaultImage)
}

// MediaURLs lists one gateway URL per media file of a post. Without media
// info (nil, or the lookup failed) it falls back to the single image route.
func MediaURLs(postID int, info *models.MediaInfo) []string {
	if info == nil {
		return []string{fallbackImageURL(postID)}
	}
	urls := make([]string, 0, len(info.Files))
	for _, f := range info.Files {
		urls = append(urls, fmt.Sprintf("%s/%d/%d", ProxyPrefix, postID, f.Index))
	}
	return urls
}

func fallbackImageURL(postID int) string {
	return fmt.Sprintf("%s/%d", ProxyPrefix, postID)
}

// DisplayName prefers the community member's full name over the account name
func DisplayName(u *models.User) string {
	if u == nil {
		return UnknownUser
	}
	if cm := u.CommunityMember; cm != nil {
		if name := strings.TrimSpace(cm.FirstName + " " + cm.LastName); name != "" {
			return name
		}
	}
	if u.Name != "" {
		return u.Name
	}
	return UnknownUser
}

// AvatarURL builds a generated initials avatar for name
func AvatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=4caf50&color=white&size=128"
}
