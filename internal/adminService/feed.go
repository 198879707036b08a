package admin

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"foodexchange-admin/internal/marketapi"
	"foodexchange-admin/internal/marketerrors"
	"foodexchange-admin/internal/media"
	"foodexchange-admin/internal/models"
	"foodexchange-admin/utils"
)

// ListStories returns the story feed newest first
func (s *AdminService) ListStories(ctx context.Context) ([]StoryView, error) {
	stories, err := s.api.ListStories(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list stories: %w", err)
	}

	out := make([]StoryView, 0, len(stories))
	for _, st := range stories {
		out = append(out, StoryView{
			ID:          st.ID,
			Title:       st.Title,
			Description: st.Description,
			Image:       media.NormalizeImage(st.Image, media.DefaultImage),
			Author:      media.DisplayName(st.Author),
			CreatedAt:   st.CreatedAt.Time,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// CreateStory validates a story and uploads it with its image
func (s *AdminService) CreateStory(ctx context.Context, form StoryForm) error {
	title := strings.TrimSpace(form.Title)
	description := strings.TrimSpace(form.Description)
	if title == "" || description == "" {
		return fmt.Errorf("service: %w - title and description are required", marketerrors.ErrInvalidRequest)
	}
	if len(form.Image) == 0 {
		return fmt.Errorf("service: %w - an image is required", marketerrors.ErrInvalidRequest)
	}
	if int64(len(form.Image)) > s.opts.MaxImageBytes {
		return fmt.Errorf("service: %w - image is %d bytes, limit is %d", marketerrors.ErrInvalidRequest, len(form.Image), s.opts.MaxImageBytes)
	}
	contentType := http.DetectContentType(form.Image)
	if !strings.HasPrefix(contentType, "image/") {
		return fmt.Errorf("service: %w - file is %s, not an image", marketerrors.ErrInvalidRequest, contentType)
	}

	fileName := form.FileName
	if fileName == "" {
		fileName = "story-image"
	}
	err := s.api.UploadStory(ctx, models.StoryUpload{
		Title:       title,
		Description: description,
		FileName:    fileName,
		ContentType: contentType,
		Image:       form.Image,
	})
	if err != nil {
		return fmt.Errorf("service: failed to upload story: %w", err)
	}
	utils.Info("story uploaded", map[string]any{"title": title, "bytes": len(form.Image), "content_type": contentType})
	return nil
}

// FetchMedia opens one media file of a post for streaming
func (s *AdminService) FetchMedia(ctx context.Context, postID, index int) (marketapi.Media, error) {
	if postID <= 0 || index < 0 {
		return marketapi.Media{}, fmt.Errorf("service: %w - invalid media reference %d/%d", marketerrors.ErrInvalidRequest, postID, index)
	}
	m, err := s.api.FetchMedia(ctx, postID, index)
	if err != nil {
		return marketapi.Media{}, fmt.Errorf("service: failed to fetch media %d/%d: %w", postID, index, err)
	}
	return m, nil
}

// FetchPostImage opens the single image of a post that has no media info
func (s *AdminService) FetchPostImage(ctx context.Context, postID int) (marketapi.Media, error) {
	if postID <= 0 {
		return marketapi.Media{}, fmt.Errorf("service: %w - invalid post id %d", marketerrors.ErrInvalidRequest, postID)
	}
	m, err := s.api.FetchPostImage(ctx, postID)
	if err != nil {
		return marketapi.Media{}, fmt.Errorf("service: failed to fetch image of post %d: %w", postID, err)
	}
	return m, nil
}
