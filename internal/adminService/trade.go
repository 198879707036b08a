package admin

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"foodexchange-admin/internal/deals"
	"foodexchange-admin/internal/marketapi"
	"foodexchange-admin/internal/marketerrors"
	"foodexchange-admin/internal/models"
	"foodexchange-admin/internal/registration"
	"foodexchange-admin/utils"

	"golang.org/x/sync/errgroup"
)

// CreatePost validates a shared post for userID and uploads it with its
// images. The marketplace's confirmation text is returned.
func (s *AdminService) CreatePost(ctx context.Context, form PostForm) (string, error) {
	if form.UserID <= 0 {
		return "", fmt.Errorf("service: %w - invalid user id %d", marketerrors.ErrInvalidRequest, form.UserID)
	}

	listing := deals.Listing{
		Title:       form.Title,
		Description: form.Description,
		Quantity:    form.Quantity,
		Address:     form.Address,
	}
	files := make([]models.PostFile, 0, len(form.Images))
	for i, img := range form.Images {
		ct := http.DetectContentType(img.Data)
		listing.ImageTypes = append(listing.ImageTypes, ct)
		listing.ImageSizes = append(listing.ImageSizes, int64(len(img.Data)))

		name := img.FileName
		if name == "" {
			name = fmt.Sprintf("post-image-%d", i+1)
		}
		files = append(files, models.PostFile{FileName: name, ContentType: ct, Data: img.Data})
	}
	if msg := deals.CheckListing(listing); msg != "" {
		return "", fmt.Errorf("service: %w", &registration.ValidationError{Message: msg})
	}

	msg, err := s.api.CreatePost(ctx, models.PostUpload{
		Title:       strings.TrimSpace(form.Title),
		Description: strings.TrimSpace(form.Description),
		Quantity:    form.Quantity,
		UserID:      form.UserID,
		Address:     strings.TrimSpace(form.Address),
		City:        strings.TrimSpace(form.City),
		Latitude:    form.Latitude,
		Longitude:   form.Longitude,
		Category:    deals.CategoryStatus(form.Category),
		Files:       files,
	})
	if err != nil {
		return "", fmt.Errorf("service: failed to upload post for user %d: %w", form.UserID, err)
	}
	utils.Info("shared post uploaded", map[string]any{"user_id": form.UserID, "images": len(files), "category": form.Category})
	return msg, nil
}

// PaymentTypes lists the payment methods
func (s *AdminService) PaymentTypes(ctx context.Context) ([]models.PaymentType, error) {
	types, err := s.api.ListPaymentTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list payment types: %w", err)
	}
	if types == nil {
		types = []models.PaymentType{}
	}
	return types, nil
}

// PaymentFile opens a payment's receipt for streaming
func (s *AdminService) PaymentFile(ctx context.Context, paymentID int) (marketapi.Media, error) {
	if paymentID <= 0 {
		return marketapi.Media{}, fmt.Errorf("service: %w - invalid payment id %d", marketerrors.ErrInvalidRequest, paymentID)
	}
	m, err := s.api.FetchPaymentFile(ctx, paymentID)
	if err != nil {
		return marketapi.Media{}, fmt.Errorf("service: failed to fetch receipt of payment %d: %w", paymentID, err)
	}
	return m, nil
}

// UpdatePayment validates and saves a payment edit. A receipt must be a
// PDF, PNG or JPEG no larger than the image limit.
func (s *AdminService) UpdatePayment(ctx context.Context, form PaymentForm) error {
	if msg := deals.CheckPayment(form.PaymentID, form.Amount, form.Note, form.PaymentTypeID); msg != "" {
		return fmt.Errorf("service: %w", &registration.ValidationError{Message: msg})
	}

	update := models.PaymentUpdate{
		PaymentID:     form.PaymentID,
		Amount:        form.Amount,
		Note:          strings.TrimSpace(form.Note),
		PaymentTypeID: form.PaymentTypeID,
		Status:        form.Status,
	}
	if r := form.Receipt; r != nil && len(r.Data) > 0 {
		if int64(len(r.Data)) > s.opts.MaxImageBytes {
			return fmt.Errorf("service: %w - receipt is %d bytes, limit is %d", marketerrors.ErrInvalidRequest, len(r.Data), s.opts.MaxImageBytes)
		}
		ct := http.DetectContentType(r.Data)
		fileType, ok := deals.ReceiptFileType(ct)
		if !ok {
			return fmt.Errorf("service: %w", &registration.ValidationError{Message: deals.MsgReceiptType})
		}
		update.File, update.ContentType, update.FileType = r.Data, ct, fileType
		update.FileName = r.FileName
		if update.FileName == "" {
			update.FileName = fmt.Sprintf("payment_receipt_%d.%s", form.PaymentID, fileType)
		}
	}

	if err := s.api.UpdatePayment(ctx, update); err != nil {
		return fmt.Errorf("service: failed to update payment %d: %w", form.PaymentID, err)
	}
	utils.Info("payment updated", map[string]any{
		"payment_id":   form.PaymentID,
		"payment_type": form.PaymentTypeID,
		"status":       form.Status,
		"receipt":      update.FileType,
	})
	return nil
}

// ListDeals returns the marketplace user's deals newest first
func (s *AdminService) ListDeals(ctx context.Context) (DealsView, error) {
	list, err := s.api.ListUserDeals(ctx)
	if err != nil {
		return DealsView{}, fmt.Errorf("service: failed to list deals: %w", err)
	}

	view := DealsView{Deals: make([]models.Deal, 0, len(list)), ByStatus: map[string]int{}}
	view.Deals = append(view.Deals, list...)
	sort.SliceStable(view.Deals, func(i, j int) bool {
		return view.Deals[i].CreatedAt.After(view.Deals[j].CreatedAt.Time)
	})
	for _, d := range view.Deals {
		view.ByStatus[d.Status]++
	}
	return view, nil
}

// ProfitReport fetches buying costs and selling profits concurrently and
// merges them by shared date. Either call failing fails the report.
func (s *AdminService) ProfitReport(ctx context.Context) (deals.ProfitReport, error) {
	var (
		buying  []models.BuyingCost
		selling []models.SellingProfit
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if buying, err = s.api.BuyingCosts(gctx); err != nil {
			return fmt.Errorf("buying costs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if selling, err = s.api.SellingProfits(gctx); err != nil {
			return fmt.Errorf("selling profits: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return deals.ProfitReport{}, fmt.Errorf("service: failed to build profit report: %w", err)
	}
	return deals.BuildProfitReport(buying, selling), nil
}
