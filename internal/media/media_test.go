package media

import (
	"testing"

	"foodexchange-admin/internal/models"

	"github.com/stretchr/testify/require"
)

func TestNormalizeImage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty_uses_fallback", raw: "", want: "fallback.png"},
		{name: "data_url_passes", raw: "data:image/png;base64,AAAA", want: "data:image/png;base64,AAAA"},
		{name: "http_url_passes", raw: "http://cdn/x.jpg", want: "http://cdn/x.jpg"},
		{name: "https_url_passes", raw: "https://cdn/x.jpg", want: "https://cdn/x.jpg"},
		{name: "bare_base64_wrapped", raw: "/9j/4AAQ", want: "data:image/jpeg;base64,/9j/4AAQ"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, NormalizeImage(tc.raw, "fallback.png"))
		})
	}
}

func TestPostImageURL(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/media/7", PostImageURL("", 7))
	require.Equal(t, DefaultImage, PostImageURL("", 0))
	require.Equal(t, "data:image/jpeg;base64,abc", PostImageURL("abc", 7))
}

func TestMediaURLs(t *testing.T) {
	t.Parallel()

	// the URL the API reports for a file is ignored in favour of the gateway route
	info := &models.MediaInfo{TotalFiles: 2, Files: []models.MediaFileInfo{
		{Index: 0, URL: "/sharedpost/media/3/0"},
		{Index: 1, URL: "/sharedpost/media/3/1"},
	}}
	require.Equal(t, []string{"/media/3/0", "/media/3/1"}, MediaURLs(3, info))

	require.Equal(t, []string{"/media/3"}, MediaURLs(3, nil))
	require.Empty(t, MediaURLs(3, &models.MediaInfo{}))
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	require.Equal(t, UnknownUser, DisplayName(nil))
	require.Equal(t, UnknownUser, DisplayName(&models.User{}))
	require.Equal(t, "Akila", DisplayName(&models.User{Name: "Akila"}))
	require.Equal(t, "Akila Weerasinghe", DisplayName(&models.User{
		Name:            "akila",
		CommunityMember: &models.CommunityMember{FirstName: "Akila", LastName: "Weerasinghe"},
	}))
}

func TestAvatarURL(t *testing.T) {
	t.Parallel()
	require.Equal(t, "https://ui-avatars.com/api/?name=Nimni+Reshani&background=4caf50&color=white&size=128", AvatarURL("Nimni Reshani"))
}
