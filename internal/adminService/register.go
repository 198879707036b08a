package admin

import (
	"context"
	"fmt"

	"foodexchange-admin/internal/models"
	"foodexchange-admin/internal/registration"
	"foodexchange-admin/utils"
)

// Register validates a registration form and creates the user. A form
// failing validation never reaches the marketplace API.
func (s *AdminService) Register(ctx context.Context, form registration.Form) (models.User, error) {
	if err := registration.Validate(form); err != nil {
		return models.User{}, fmt.Errorf("service: %w", err)
	}
	user, err := registration.ToUser(form)
	if err != nil {
		return models.User{}, fmt.Errorf("service: %w", err)
	}

	created, err := s.api.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to create user %s: %w", user.Username, err)
	}
	created.Password = ""
	utils.Info("user registered", map[string]any{
		"user_id":          created.ID,
		"username":         created.Username,
		"community_member": form.IsCommunityMember,
	})
	return created, nil
}
