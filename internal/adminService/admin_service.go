package admin

import (
	"time"

	"foodexchange-admin/internal/connections"
	"foodexchange-admin/internal/marketapi"
	"foodexchange-admin/internal/session"
)

// Defaults applied when Options leaves a field zero
const (
	DefaultMaxParallelFetches       = 4
	DefaultMaxImageBytes      int64 = 5 << 20
	DefaultSessionTTL               = 24 * time.Hour
)

// Options tunes an AdminService
type Options struct {
	PageSize           int
	MaxParallelFetches int
	MaxImageBytes      int64
	StatusSource       connections.StatusSource
	SessionTTL         time.Duration // lifetime of the session issued at login
}

// AdminService is the business logic behind the admin gateway. Every
// upstream call runs under the caller's context.
type AdminService struct {
	api       marketapi.MarketAPI
	sessions  session.Store
	auth      *session.Authenticator
	directory connections.DirectoryStore
	opts      Options
}

// NewAdminService creates a new AdminService instance
func NewAdminService(api marketapi.MarketAPI, sessions session.Store, auth *session.Authenticator, directory connections.DirectoryStore, opts Options) *AdminService {
	if opts.PageSize <= 0 {
		opts.PageSize = connections.DefaultPageSize
	}
	if opts.MaxParallelFetches <= 0 {
		opts.MaxParallelFetches = DefaultMaxParallelFetches
	}
	if opts.MaxImageBytes <= 0 {
		opts.MaxImageBytes = DefaultMaxImageBytes
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = DefaultSessionTTL
	}
	if opts.StatusSource == nil {
		opts.StatusSource = connections.FixedSource{}
	}
	return &AdminService{
		api:       api,
		sessions:  sessions,
		auth:      auth,
		directory: directory,
		opts:      opts,
	}
}
