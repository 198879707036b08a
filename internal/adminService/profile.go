package admin

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"foodexchange-admin/internal/deals"
	"foodexchange-admin/internal/marketerrors"
	"foodexchange-admin/internal/media"
	"foodexchange-admin/internal/models"
	"foodexchange-admin/internal/registration"
	"foodexchange-admin/utils"

	"golang.org/x/sync/errgroup"
)

// GetProfile loads a user and their posts. The user fetch failing fails
// the view; the posts fetch failing only sets PostsError.
func (s *AdminService) GetProfile(ctx context.Context, userID int) (ProfileView, error) {
	if userID <= 0 {
		return ProfileView{}, fmt.Errorf("service: %w - invalid user id %d", marketerrors.ErrInvalidRequest, userID)
	}

	user, err := s.api.GetUser(ctx, userID)
	if err != nil {
		return ProfileView{}, fmt.Errorf("service: failed to get user %d: %w", userID, err)
	}
	user.Password = ""

	name := media.DisplayName(&user)
	view := ProfileView{
		User:        user,
		DisplayName: name,
		Avatar:      media.AvatarURL(name),
		Posts:       []PostView{},
	}

	posts, err := s.userPosts(ctx, userID)
	switch {
	case err == nil:
		view.Posts = posts
	case ctx.Err() != nil:
		return ProfileView{}, fmt.Errorf("service: profile of user %d abandoned: %w", userID, ctx.Err())
	default:
		view.PostsError = err.Error()
		utils.Warn("profile posts unavailable", map[string]any{"user_id": userID, "error": err.Error()})
	}
	return view, nil
}

// UpdateProfile merges patch into the stored user and saves it. Community
// member fields only apply to users that already have a member record.
// The password goes back upstream untouched and is only stripped from the
// returned user.
func (s *AdminService) UpdateProfile(ctx context.Context, userID int, patch ProfilePatch) (models.User, error) {
	if userID <= 0 {
		return models.User{}, fmt.Errorf("service: %w - invalid user id %d", marketerrors.ErrInvalidRequest, userID)
	}

	user, err := s.api.GetUser(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get user %d: %w", userID, err)
	}
	if err := applyPatch(&user, patch); err != nil {
		return models.User{}, fmt.Errorf("service: %w", err)
	}

	// the marketplace replaces the whole record, stored password included
	updated, err := s.api.UpdateUser(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to update user %d: %w", userID, err)
	}
	updated.Password = ""
	return updated, nil
}

func applyPatch(u *models.User, p ProfilePatch) error {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&u.Name, p.Name)
	set(&u.Username, p.Username)
	set(&u.City, p.City)
	set(&u.Address, p.Address)
	set(&u.NIC, p.NIC)

	if p.MobileNumber != nil {
		raw := strings.TrimSpace(*p.MobileNumber)
		if !registration.ValidMobile(raw) {
			return &registration.ValidationError{Message: registration.MsgInvalidMobile}
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("%w - mobile number %q", marketerrors.ErrInvalidRequest, raw)
		}
		u.MobileNumber = n
	}

	mp, cm := p.CommunityMember, u.CommunityMember
	if mp == nil || cm == nil {
		return nil
	}
	if mp.Email != nil && !registration.ValidEmail(strings.TrimSpace(*mp.Email)) {
		return &registration.ValidationError{Message: registration.MsgInvalidEmail}
	}
	if mp.MobileNumber != nil && !registration.ValidMobile(strings.TrimSpace(*mp.MobileNumber)) {
		return &registration.ValidationError{Message: registration.MsgInvalidMemberMob}
	}
	set(&cm.FirstName, mp.FirstName)
	set(&cm.LastName, mp.LastName)
	set(&cm.Email, mp.Email)
	set(&cm.City, mp.City)
	set(&cm.Address, mp.Address)
	set(&cm.ShopOrFarmName, mp.ShopOrFarmName)
	set(&cm.NIC, mp.NIC)
	set(&cm.MobileNumber, mp.MobileNumber)
	set(&cm.Description, mp.Description)
	return nil
}

// AcceptBid turns a bid on one of the user's posts into a deal and
// returns the refreshed post list
func (s *AdminService) AcceptBid(ctx context.Context, userID int, form AcceptForm) ([]PostView, error) {
	if userID <= 0 || form.PostID <= 0 || form.BidID <= 0 {
		return nil, fmt.Errorf("service: %w - user, post and bid ids are required", marketerrors.ErrInvalidRequest)
	}

	posts, err := s.api.ListPostsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get posts of user %d: %w", userID, err)
	}
	post, ok := findPost(posts, form.PostID)
	if !ok {
		return nil, fmt.Errorf("service: %w - post %d of user %d", marketerrors.ErrPostNotFound, form.PostID, userID)
	}
	bid, ok := deals.FindBid(post, form.BidID)
	if !ok {
		return nil, fmt.Errorf("service: %w - bid %d is not on post %d", marketerrors.ErrInvalidRequest, form.BidID, form.PostID)
	}

	deal := deals.NewDealRequest(bid, post.ID, form.DeliveryDate, form.DeliveryLocation, form.SpecialInstructions)
	if err := s.api.AcceptBid(ctx, deal); err != nil {
		return nil, fmt.Errorf("service: failed to accept bid %d: %w", bid.ID, err)
	}
	utils.Info("bid accepted", map[string]any{"bid_id": bid.ID, "post_id": post.ID, "user_id": userID})

	return s.refreshPosts(ctx, userID)
}

// RejectBid rejects a bid and returns the refreshed post list of userID
func (s *AdminService) RejectBid(ctx context.Context, userID, bidID int) ([]PostView, error) {
	if userID <= 0 || bidID <= 0 {
		return nil, fmt.Errorf("service: %w - user and bid ids are required", marketerrors.ErrInvalidRequest)
	}
	if err := s.api.RejectBid(ctx, bidID); err != nil {
		return nil, fmt.Errorf("service: failed to reject bid %d: %w", bidID, err)
	}
	utils.Info("bid rejected", map[string]any{"bid_id": bidID, "user_id": userID})

	return s.refreshPosts(ctx, userID)
}

// GetDelivery renders the delivery of a post. Any failure other than a
// cancelled request renders the empty state.
func (s *AdminService) GetDelivery(ctx context.Context, postID int) (deals.DeliveryView, error) {
	if postID <= 0 {
		return deals.DeliveryView{}, fmt.Errorf("service: %w - invalid post id %d", marketerrors.ErrInvalidRequest, postID)
	}
	view := s.deliveryView(ctx, postID)
	if err := ctx.Err(); err != nil {
		return deals.DeliveryView{}, fmt.Errorf("service: delivery of post %d abandoned: %w", postID, err)
	}
	return view, nil
}

// UpdateDeliveryDetails edits a delivery and returns the post's refreshed
// delivery view
func (s *AdminService) UpdateDeliveryDetails(ctx context.Context, postID, deliveryID int, details models.DeliveryDetails) (deals.DeliveryView, error) {
	if postID <= 0 || deliveryID <= 0 {
		return deals.DeliveryView{}, fmt.Errorf("service: %w - post and delivery ids are required", marketerrors.ErrInvalidRequest)
	}
	if details == (models.DeliveryDetails{}) {
		return deals.DeliveryView{}, fmt.Errorf("service: %w - no delivery fields to update", marketerrors.ErrInvalidRequest)
	}

	if err := s.api.UpdateDeliveryDetails(ctx, deliveryID, details); err != nil {
		return deals.DeliveryView{}, fmt.Errorf("service: failed to update delivery %d: %w", deliveryID, err)
	}
	return s.GetDelivery(ctx, postID)
}

func (s *AdminService) refreshPosts(ctx context.Context, userID int) ([]PostView, error) {
	posts, err := s.userPosts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to refresh posts of user %d: %w", userID, err)
	}
	return posts, nil
}

// userPosts fetches a user's posts and derives their views. Media info and
// delivery lookups run concurrently, bounded by MaxParallelFetches.
func (s *AdminService) userPosts(ctx context.Context, userID int) ([]PostView, error) {
	posts, err := s.api.ListPostsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]PostView, len(posts))
	var g errgroup.Group
	g.SetLimit(s.opts.MaxParallelFetches)
	for i, p := range posts {
		views[i] = s.postView(p)
		g.Go(func() error {
			views[i].MediaURLs = s.mediaURLs(ctx, p.ID)
			return nil
		})
		if deals.HasConfirmed(p.Bids) {
			g.Go(func() error {
				d := s.deliveryView(ctx, p.ID)
				views[i].Delivery = &d
				return nil
			})
		}
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return views, nil
}

func (s *AdminService) postView(p models.SharedPost) PostView {
	stats := deals.Stats(p.Bids)
	view := PostView{
		Post:        p,
		Category:    deals.CategoryOf(p),
		ImageURL:    media.PostImageURL(p.Image, p.ID),
		VisibleBids: deals.VisibleBids(p.Bids),
		Stats:       stats,
		Summary:     deals.Summary(p.Bids),
	}
	if stats.Accepted > 1 {
		view.MultipleConfirmed = true
		utils.Warn("post has more than one confirmed bid", map[string]any{"post_id": p.ID, "confirmed": stats.Accepted})
	}
	return view
}

func (s *AdminService) mediaURLs(ctx context.Context, postID int) []string {
	info, err := s.api.GetMediaInfo(ctx, postID)
	if err != nil {
		utils.Debug("media info unavailable", map[string]any{"post_id": postID, "error": err.Error()})
		return media.MediaURLs(postID, nil)
	}
	return media.MediaURLs(postID, &info)
}

func (s *AdminService) deliveryView(ctx context.Context, postID int) deals.DeliveryView {
	d, err := s.api.GetDeliveryByPost(ctx, postID)
	if err != nil {
		if !errors.Is(err, marketerrors.ErrDeliveryNotFound) {
			utils.Warn("delivery lookup failed", map[string]any{"post_id": postID, "error": err.Error()})
		}
		return deals.EmptyDelivery()
	}
	return deals.RenderDelivery(&d)
}

func findPost(posts []models.SharedPost, id int) (models.SharedPost, bool) {
	for _, p := range posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.SharedPost{}, false
}
