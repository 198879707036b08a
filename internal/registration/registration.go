package registration

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"foodexchange-admin/internal/marketerrors"
	"foodexchange-admin/internal/models"
)

// Messages returned by Validate, one per failing check
const (
	MsgRequired         = "Please fill in all required fields"
	MsgPasswordTooShort = "Password must be at least 4 characters long"
	MsgPasswordMismatch = "Passwords do not match"
	MsgInvalidMobile    = "Please enter a valid mobile number (9-10 digits)"
	MsgMemberRequired   = "Please fill in all community member fields"
	MsgInvalidEmail     = "Please enter a valid email address"
	MsgInvalidMemberMob = "Please enter a valid community member mobile number (9-10 digits)"
)

// MinPasswordLength is the shortest accepted password
const MinPasswordLength = 4

// DefaultRole is assigned when the form names none
const DefaultRole = "farmer"

var (
	mobilePattern = regexp.MustCompile(`^\d{9,10}$`)
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// MemberForm holds the community member sub-fields
type MemberForm struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	City           string `json:"city"`
	Address        string `json:"address"`
	ShopOrFarmName string `json:"shopOrFarmName"`
	NIC            string `json:"nic"`
	MobileNumber   string `json:"mobileNumber"`
	Description    string `json:"description"`
}

// Form is a submitted registration
type Form struct {
	Name              string     `json:"name"`
	Username          string     `json:"username"`
	Password          string     `json:"password"`
	ConfirmPassword   string     `json:"confirmPassword"`
	City              string     `json:"city"`
	Address           string     `json:"address"`
	NIC               string     `json:"nic"`
	MobileNumber      string     `json:"mobileNumber"`
	Role              string     `json:"role"`
	IsCommunityMember bool       `json:"isCommunityMember"`
	Member            MemberForm `json:"communityMember"`
}

// ValidationError carries the single message of the first failed check
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", marketerrors.ErrValidation, e.Message)
}

// Unwrap lets errors.Is match ErrValidation
func (e *ValidationError) Unwrap() error {
	return marketerrors.ErrValidation
}

func fail(msg string) error {
	return &ValidationError{Message: msg}
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// Validate runs the checks in order and stops at the first failure.
// Community member fields are only looked at when the toggle is set.
func Validate(f Form) error {
	if blank(f.Name, f.Username, f.Password, f.ConfirmPassword, f.City, f.Address, f.NIC, f.MobileNumber) {
		return fail(MsgRequired)
	}
	if len(f.Password) < MinPasswordLength {
		return fail(MsgPasswordTooShort)
	}
	if f.Password != f.ConfirmPassword {
		return fail(MsgPasswordMismatch)
	}
	if !mobilePattern.MatchString(strings.TrimSpace(f.MobileNumber)) {
		return fail(MsgInvalidMobile)
	}

	if !f.IsCommunityMember {
		return nil
	}

	m := f.Member
	if blank(m.FirstName, m.LastName, m.Email, m.City, m.Address, m.ShopOrFarmName, m.NIC, m.MobileNumber) {
		return fail(MsgMemberRequired)
	}
	if !ValidEmail(strings.TrimSpace(m.Email)) {
		return fail(MsgInvalidEmail)
	}
	if !ValidMobile(strings.TrimSpace(m.MobileNumber)) {
		return fail(MsgInvalidMemberMob)
	}
	return nil
}

// ValidMobile reports whether s is a 9 or 10 digit number
func ValidMobile(s string) bool {
	return mobilePattern.MatchString(s)
}

// ValidEmail reports whether s looks like local@domain.tld
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ToUser maps a validated form onto the marketplace user record
func ToUser(f Form) (models.User, error) {
	mobile, err := strconv.ParseInt(strings.TrimSpace(f.MobileNumber), 10, 64)
	if err != nil {
		return models.User{}, fmt.Errorf("registration: %w - mobile number %q", marketerrors.ErrInvalidRequest, f.MobileNumber)
	}

	role := strings.TrimSpace(f.Role)
	if role == "" {
		role = DefaultRole
	}

	u := models.User{
		Name:         strings.TrimSpace(f.Name),
		Username:     strings.TrimSpace(f.Username),
		Password:     f.Password,
		City:         strings.TrimSpace(f.City),
		Address:      strings.TrimSpace(f.Address),
		NIC:          strings.TrimSpace(f.NIC),
		MobileNumber: mobile,
		Status:       true,
		Roles:        []models.Role{{Name: role}},
	}
	if f.IsCommunityMember {
		m := f.Member
		u.CommunityMember = &models.CommunityMember{
			FirstName:      strings.TrimSpace(m.FirstName),
			LastName:       strings.TrimSpace(m.LastName),
			Email:          strings.TrimSpace(m.Email),
			City:           strings.TrimSpace(m.City),
			Address:        strings.TrimSpace(m.Address),
			ShopOrFarmName: strings.TrimSpace(m.ShopOrFarmName),
			NIC:            strings.TrimSpace(m.NIC),
			MobileNumber:   strings.TrimSpace(m.MobileNumber),
			Description:    strings.TrimSpace(m.Description),
		}
	}
	return u, nil
}
