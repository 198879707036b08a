package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	admin "foodexchange-admin/internal/adminService"
	"foodexchange-admin/internal/connections"
	"foodexchange-admin/internal/deals"
	"foodexchange-admin/internal/marketapi"
	"foodexchange-admin/internal/marketerrors"
	model "foodexchange-admin/internal/models"
	"foodexchange-admin/internal/registration"
	"foodexchange-admin/services/admin/helpers"
	"foodexchange-admin/utils"

	"github.com/gin-gonic/gin"
)

type AdminServiceInterface interface {
	Session(ctx context.Context, sessionID string) (admin.SessionView, error)
	Login(ctx context.Context, sessionID, email, password string) (admin.SessionView, error)
	Logout(ctx context.Context, sessionID string) error
	Register(ctx context.Context, form registration.Form) (model.User, error)
	Directory(ctx context.Context, sessionID string) (admin.DirectoryView, error)
	SelectTab(ctx context.Context, sessionID, tab string) (connections.ViewState, error)
	SelectPage(ctx context.Context, sessionID string, page int) (connections.ViewState, error)
	Connect(ctx context.Context, sessionID string, req admin.ConnectRequest) (admin.ConnectResult, error)
	GetProfile(ctx context.Context, userID int) (admin.ProfileView, error)
	UpdateProfile(ctx context.Context, userID int, patch admin.ProfilePatch) (model.User, error)
	AcceptBid(ctx context.Context, userID int, form admin.AcceptForm) ([]admin.PostView, error)
	RejectBid(ctx context.Context, userID, bidID int) ([]admin.PostView, error)
	GetDelivery(ctx context.Context, postID int) (deals.DeliveryView, error)
	UpdateDeliveryDetails(ctx context.Context, postID, deliveryID int, details model.DeliveryDetails) (deals.DeliveryView, error)
	ListStories(ctx context.Context) ([]admin.StoryView, error)
	CreateStory(ctx context.Context, form admin.StoryForm) error
	FetchMedia(ctx context.Context, postID, index int) (marketapi.Media, error)
	FetchPostImage(ctx context.Context, postID int) (marketapi.Media, error)
	CreatePost(ctx context.Context, form admin.PostForm) (string, error)
	PaymentTypes(ctx context.Context) ([]model.PaymentType, error)
	PaymentFile(ctx context.Context, paymentID int) (marketapi.Media, error)
	UpdatePayment(ctx context.Context, form admin.PaymentForm) error
	ListDeals(ctx context.Context) (admin.DealsView, error)
	ProfitReport(ctx context.Context) (deals.ProfitReport, error)
}

type AdminHandler struct {
	service    AdminServiceInterface
	cookieName string
	maxUpload  int64
}

func NewAdminHandler(service AdminServiceInterface, cookieName string, maxUpload int64) *AdminHandler {
	return &AdminHandler{service: service, cookieName: cookieName, maxUpload: maxUpload}
}

// HealthHandler handles GET /healthz
func (h *AdminHandler) HealthHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, helpers.HealthResponse{Status: "ok"}, "service healthy")
}

// LoginHandler handles POST /auth/login
func (h *AdminHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	view, err := h.service.Login(c.Request.Context(), helpers.SessionID(c), req.Email, req.Password)
	if err != nil {
		helpers.HandleServiceError(c, "LoginHandler", err, map[string]any{"email": req.Email})
		return
	}
	if view.ID != "" && view.ID != helpers.SessionID(c) {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(h.cookieName, view.ID, int(time.Until(view.ExpiresAt).Seconds()), "/", "", false, true)
		c.Set(helpers.SessionIDKey, view.ID)
	}

	utils.JSONResponse(c, http.StatusOK, view, "logged in")
	helpers.LogSuccess("LoginHandler", "logged in", map[string]any{"user_id": view.UserID, "role": view.Role})
}

// SessionHandler handles GET /auth/session
func (h *AdminHandler) SessionHandler(c *gin.Context) {
	view, err := h.service.Session(c.Request.Context(), helpers.SessionID(c))
	if err != nil {
		helpers.HandleServiceError(c, "SessionHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view, "session retrieved successfully")
}

// LogoutHandler handles POST /auth/logout
func (h *AdminHandler) LogoutHandler(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), helpers.SessionID(c)); err != nil {
		helpers.HandleServiceError(c, "LogoutHandler", err, nil)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	utils.JSONResponse(c, http.StatusOK, admin.SessionView{}, "logged out")
	helpers.LogSuccess("LogoutHandler", "logged out", nil)
}

// RegisterHandler handles POST /register
func (h *AdminHandler) RegisterHandler(c *gin.Context) {
	var form registration.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, err := h.service.Register(c.Request.Context(), form)
	if err != nil {
		helpers.HandleServiceError(c, "RegisterHandler", err, map[string]any{"username": form.Username})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, user, "user registered successfully")
	helpers.LogSuccess("RegisterHandler", "user registered successfully", map[string]any{"user_id": user.ID})
}

// DirectoryHandler handles GET /directory
func (h *AdminHandler) DirectoryHandler(c *gin.Context) {
	view, err := h.service.Directory(c.Request.Context(), helpers.SessionID(c))
	if err != nil {
		helpers.HandleServiceError(c, "DirectoryHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, view, "directory retrieved successfully")
	helpers.LogSuccess("DirectoryHandler", "directory retrieved successfully", map[string]any{
		"tab":   view.Tab,
		"page":  view.Page,
		"total": view.Total,
	})
}

// SelectTabHandler handles PUT /directory/tab
func (h *AdminHandler) SelectTabHandler(c *gin.Context) {
	var req helpers.SelectTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SelectTabHandler", err)
		return
	}

	state, err := h.service.SelectTab(c.Request.Context(), helpers.SessionID(c), req.Tab)
	if err != nil {
		helpers.HandleServiceError(c, "SelectTabHandler", err, map[string]any{"tab": req.Tab})
		return
	}
	utils.JSONResponse(c, http.StatusOK, state, "tab selected")
}

// SelectPageHandler handles PUT /directory/page
func (h *AdminHandler) SelectPageHandler(c *gin.Context) {
	var req helpers.SelectPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SelectPageHandler", err)
		return
	}

	state, err := h.service.SelectPage(c.Request.Context(), helpers.SessionID(c), req.Page)
	if err != nil {
		helpers.HandleServiceError(c, "SelectPageHandler", err, map[string]any{"page": req.Page})
		return
	}
	utils.JSONResponse(c, http.StatusOK, state, "page selected")
}

// ConnectHandler handles POST /directory/connections
func (h *AdminHandler) ConnectHandler(c *gin.Context) {
	var req helpers.ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ConnectHandler", err)
		return
	}

	res, err := h.service.Connect(c.Request.Context(), helpers.SessionID(c), admin.ConnectRequest{
		DealerID: req.DealerID,
		From:     connections.Status(req.From),
		Action:   connections.Action(req.Action),
	})
	fields := map[string]any{"dealer_id": req.DealerID, "from": req.From, "action": req.Action}
	if err != nil {
		helpers.HandleServiceError(c, "ConnectHandler", err, fields)
		return
	}

	msg := "connection updated"
	if !res.Applied {
		msg = "connection already updated"
	}
	utils.JSONResponse(c, http.StatusOK, res, msg)
	fields["status"] = res.Status
	helpers.LogSuccess("ConnectHandler", msg, fields)
}

// OwnProfileHandler handles GET /profile
func (h *AdminHandler) OwnProfileHandler(c *gin.Context) {
	view, err := h.service.Session(c.Request.Context(), helpers.SessionID(c))
	if err != nil {
		helpers.HandleServiceError(c, "OwnProfileHandler", err, nil)
		return
	}
	h.writeProfile(c, "OwnProfileHandler", view.UserID)
}

// ProfileHandler handles GET /users/:user_id/profile
func (h *AdminHandler) ProfileHandler(c *gin.Context) {
	userID, err := helpers.IntParam(c, "user_id")
	if err != nil {
		helpers.HandleServiceError(c, "ProfileHandler", err, nil)
		return
	}
	h.writeProfile(c, "ProfileHandler", userID)
}

func (h *AdminHandler) writeProfile(c *gin.Context, handlerName string, userID int) {
	view, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		helpers.HandleServiceError(c, handlerName, err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, view, "profile retrieved successfully")
	helpers.LogSuccess(handlerName, "profile retrieved successfully", map[string]any{
		"user_id":     userID,
		"posts_count": len(view.Posts),
		"posts_error": view.PostsError != "",
	})
}

// UpdateProfileHandler handles PATCH /users/:user_id
func (h *AdminHandler) UpdateProfileHandler(c *gin.Context) {
	userID, err := helpers.IntParam(c, "user_id")
	if err != nil {
		helpers.HandleServiceError(c, "UpdateProfileHandler", err, nil)
		return
	}
	var patch admin.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		helpers.HandleBindError(c, "UpdateProfileHandler", err)
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), userID, patch)
	if err != nil {
		helpers.HandleServiceError(c, "UpdateProfileHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "profile updated successfully")
	helpers.LogSuccess("UpdateProfileHandler", "profile updated successfully", map[string]any{"user_id": userID})
}

// AcceptBidHandler handles POST /users/:user_id/posts/:post_id/bids/:bid_id/accept
func (h *AdminHandler) AcceptBidHandler(c *gin.Context) {
	var ids [3]int
	for i, name := range []string{"user_id", "post_id", "bid_id"} {
		n, err := helpers.IntParam(c, name)
		if err != nil {
			helpers.HandleServiceError(c, "AcceptBidHandler", err, nil)
			return
		}
		ids[i] = n
	}
	var req helpers.AcceptBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AcceptBidHandler", err)
		return
	}

	posts, err := h.service.AcceptBid(c.Request.Context(), ids[0], admin.AcceptForm{
		PostID:              ids[1],
		BidID:               ids[2],
		DeliveryDate:        req.DeliveryDate,
		DeliveryLocation:    req.DeliveryLocation,
		SpecialInstructions: req.SpecialInstructions,
	})
	fields := map[string]any{"user_id": ids[0], "post_id": ids[1], "bid_id": ids[2]}
	if err != nil {
		helpers.HandleServiceError(c, "AcceptBidHandler", err, fields)
		return
	}

	utils.JSONResponse(c, http.StatusOK, posts, "bid accepted successfully")
	helpers.LogSuccess("AcceptBidHandler", "bid accepted successfully", fields)
}

// RejectBidHandler handles POST /users/:user_id/bids/:bid_id/reject
func (h *AdminHandler) RejectBidHandler(c *gin.Context) {
	userID, err := helpers.IntParam(c, "user_id")
	if err != nil {
		helpers.HandleServiceError(c, "RejectBidHandler", err, nil)
		return
	}
	bidID, err := helpers.IntParam(c, "bid_id")
	if err != nil {
		helpers.HandleServiceError(c, "RejectBidHandler", err, nil)
		return
	}

	posts, err := h.service.RejectBid(c.Request.Context(), userID, bidID)
	fields := map[string]any{"user_id": userID, "bid_id": bidID}
	if err != nil {
		helpers.HandleServiceError(c, "RejectBidHandler", err, fields)
		return
	}

	utils.JSONResponse(c, http.StatusOK, posts, "bid rejected successfully")
	helpers.LogSuccess("RejectBidHandler", "bid rejected successfully", fields)
}

// DeliveryHandler handles GET /posts/:post_id/delivery
func (h *AdminHandler) DeliveryHandler(c *gin.Context) {
	postID, err := helpers.IntParam(c, "post_id")
	if err != nil {
		helpers.HandleServiceError(c, "DeliveryHandler", err, nil)
		return
	}

	view, err := h.service.GetDelivery(c.Request.Context(), postID)
	if err != nil {
		helpers.HandleServiceError(c, "DeliveryHandler", err, map[string]any{"post_id": postID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, view, "delivery retrieved successfully")
}

// UpdateDeliveryHandler handles PUT /posts/:post_id/delivery/:delivery_id
func (h *AdminHandler) UpdateDeliveryHandler(c *gin.Context) {
	postID, err := helpers.IntParam(c, "post_id")
	if err != nil {
		helpers.HandleServiceError(c, "UpdateDeliveryHandler", err, nil)
		return
	}
	deliveryID, err := helpers.IntParam(c, "delivery_id")
	if err != nil {
		helpers.HandleServiceError(c, "UpdateDeliveryHandler", err, nil)
		return
	}
	var req helpers.DeliveryDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateDeliveryHandler", err)
		return
	}

	view, err := h.service.UpdateDeliveryDetails(c.Request.Context(), postID, deliveryID, model.DeliveryDetails{
		TrackingNumber:         req.TrackingNumber,
		Location:               req.Location,
		CurrentPackageLocation: req.CurrentPackageLocation,
		DeliveryCompany:        req.DeliveryCompany,
		Description:            req.Description,
		StatusID:               req.StatusID,
	})
	fields := map[string]any{"post_id": postID, "delivery_id": deliveryID}
	if err != nil {
		helpers.HandleServiceError(c, "UpdateDeliveryHandler", err, fields)
		return
	}

	utils.JSONResponse(c, http.StatusOK, view, "delivery updated successfully")
	helpers.LogSuccess("UpdateDeliveryHandler", "delivery updated successfully", fields)
}

// ListStoriesHandler handles GET /stories
func (h *AdminHandler) ListStoriesHandler(c *gin.Context) {
	stories, err := h.service.ListStories(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "ListStoriesHandler", err, nil)
		return
	}
	if stories == nil {
		stories = []admin.StoryView{}
	}
	utils.JSONResponse(c, http.StatusOK, stories, "stories retrieved successfully")
}

// CreateStoryHandler handles POST /stories (multipart)
func (h *AdminHandler) CreateStoryHandler(c *gin.Context) {
	form := admin.StoryForm{
		Title:       c.PostForm(helpers.StoryTitleField),
		Description: c.PostForm(helpers.StoryDescriptionField),
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload+1<<20)
	fh, err := c.FormFile(helpers.StoryImageField)
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		helpers.HandleServiceError(c, "CreateStoryHandler", marketerrors.ErrInvalidRequest, map[string]any{"limit": tooLarge.Limit})
		return
	case errors.Is(err, http.ErrMissingFile):
		// the service reports the missing image
	case err != nil:
		helpers.HandleBindError(c, "CreateStoryHandler", err)
		return
	case h.maxUpload > 0 && fh.Size > h.maxUpload:
		helpers.HandleServiceError(c, "CreateStoryHandler", marketerrors.ErrInvalidRequest, map[string]any{"bytes": fh.Size})
		return
	default:
		up, err := readUpload(fh)
		if err != nil {
			helpers.HandleBindError(c, "CreateStoryHandler", err)
			return
		}
		form.Image, form.FileName = up.Data, up.FileName
	}

	if err := h.service.CreateStory(c.Request.Context(), form); err != nil {
		helpers.HandleServiceError(c, "CreateStoryHandler", err, map[string]any{"title": form.Title})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, nil, "story created successfully")
	helpers.LogSuccess("CreateStoryHandler", "story created successfully", map[string]any{"title": form.Title})
}

// MediaHandler handles GET /media/:post_id/:index and streams the file
func (h *AdminHandler) MediaHandler(c *gin.Context) {
	postID, err := helpers.IntParam(c, "post_id")
	if err != nil {
		helpers.HandleServiceError(c, "MediaHandler", err, nil)
		return
	}
	index, err := helpers.IntParam(c, "index")
	if err != nil {
		helpers.HandleServiceError(c, "MediaHandler", err, nil)
		return
	}

	m, err := h.service.FetchMedia(c.Request.Context(), postID, index)
	if err != nil {
		helpers.HandleServiceError(c, "MediaHandler", err, map[string]any{"post_id": postID, "index": index})
		return
	}
	defer m.Body.Close()

	writeMedia(c, m)
}

// PostImageHandler handles GET /media/:post_id, the single image of a post
// without media info
func (h *AdminHandler) PostImageHandler(c *gin.Context) {
	postID, err := helpers.IntParam(c, "post_id")
	if err != nil {
		helpers.HandleServiceError(c, "PostImageHandler", err, nil)
		return
	}

	m, err := h.service.FetchPostImage(c.Request.Context(), postID)
	if err != nil {
		helpers.HandleServiceError(c, "PostImageHandler", err, map[string]any{"post_id": postID})
		return
	}
	defer m.Body.Close()
	writeMedia(c, m)
}

func writeMedia(c *gin.Context, m marketapi.Media) {
	contentType := m.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	var extra map[string]string
	if m.ContentDisposition != "" {
		extra = map[string]string{"Content-Disposition": m.ContentDisposition}
	}
	c.DataFromReader(http.StatusOK, m.Size, contentType, m.Body, extra)
}

func readUpload(fh *multipart.FileHeader) (admin.UploadedFile, error) {
	f, err := fh.Open()
	if err != nil {
		return admin.UploadedFile{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return admin.UploadedFile{}, err
	}
	return admin.UploadedFile{FileName: fh.Filename, Data: data}, nil
}

// CreatePostHandler handles POST /users/:user_id/posts (multipart)
func (h *AdminHandler) CreatePostHandler(c *gin.Context) {
	userID, err := helpers.IntParam(c, "user_id")
	if err != nil {
		helpers.HandleServiceError(c, "CreatePostHandler", err, nil)
		return
	}

	limit := int64(deals.MaxPostImages+1)*deals.MaxPostImageBytes + 1<<20
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	mf, err := c.MultipartForm()
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		helpers.HandleServiceError(c, "CreatePostHandler", marketerrors.ErrInvalidRequest, map[string]any{"limit": tooLarge.Limit})
		return
	case err != nil:
		helpers.HandleBindError(c, "CreatePostHandler", err)
		return
	}

	form := admin.PostForm{
		UserID:      userID,
		Title:       c.PostForm(helpers.PostTitleField),
		Description: c.PostForm(helpers.PostDescriptionField),
		Address:     c.PostForm(helpers.PostAddressField),
		City:        c.PostForm(helpers.PostCityField),
		Category:    deals.Category(c.PostForm(helpers.PostCategoryField)),
	}
	switch form.Category {
	case "", deals.CategoryBuying, deals.CategorySelling:
	default:
		helpers.HandleServiceError(c, "CreatePostHandler", marketerrors.ErrInvalidRequest, map[string]any{"category": form.Category})
		return
	}
	// an unparseable quantity is reported as not positive
	if q, err := helpers.FormFloat(c, helpers.PostQuantityField); err == nil && q != nil {
		form.Quantity = *q
	}
	if form.Latitude, err = helpers.FormFloat(c, helpers.PostLatitudeField); err != nil {
		helpers.HandleServiceError(c, "CreatePostHandler", err, nil)
		return
	}
	if form.Longitude, err = helpers.FormFloat(c, helpers.PostLongitudeField); err != nil {
		helpers.HandleServiceError(c, "CreatePostHandler", err, nil)
		return
	}
	for _, fh := range mf.File[helpers.PostImagesField] {
		up, err := readUpload(fh)
		if err != nil {
			helpers.HandleBindError(c, "CreatePostHandler", err)
			return
		}
		form.Images = append(form.Images, up)
	}

	msg, err := h.service.CreatePost(c.Request.Context(), form)
	fields := map[string]any{"user_id": userID, "images": len(form.Images)}
	if err != nil {
		helpers.HandleServiceError(c, "CreatePostHandler", err, fields)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"result": msg}, "post created successfully")
	helpers.LogSuccess("CreatePostHandler", "post created successfully", fields)
}

// PaymentTypesHandler handles GET /payment-types
func (h *AdminHandler) PaymentTypesHandler(c *gin.Context) {
	types, err := h.service.PaymentTypes(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "PaymentTypesHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, types, "payment types retrieved successfully")
}

// PaymentFileHandler handles GET /payments/:payment_id/file and streams the receipt
func (h *AdminHandler) PaymentFileHandler(c *gin.Context) {
	paymentID, err := helpers.IntParam(c, "payment_id")
	if err != nil {
		helpers.HandleServiceError(c, "PaymentFileHandler", err, nil)
		return
	}

	m, err := h.service.PaymentFile(c.Request.Context(), paymentID)
	if err != nil {
		helpers.HandleServiceError(c, "PaymentFileHandler", err, map[string]any{"payment_id": paymentID})
		return
	}
	defer m.Body.Close()
	if m.ContentDisposition == "" {
		m.ContentDisposition = fmt.Sprintf(`attachment; filename="payment_receipt_%d"`, paymentID)
	}
	writeMedia(c, m)
}

// UpdatePaymentHandler handles PUT /payments/:payment_id (multipart)
func (h *AdminHandler) UpdatePaymentHandler(c *gin.Context) {
	paymentID, err := helpers.IntParam(c, "payment_id")
	if err != nil {
		helpers.HandleServiceError(c, "UpdatePaymentHandler", err, nil)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload+1<<20)
	fh, err := c.FormFile(helpers.PaymentFileField)
	var tooLarge *http.MaxBytesError
	form := admin.PaymentForm{PaymentID: paymentID}
	switch {
	case errors.As(err, &tooLarge):
		helpers.HandleServiceError(c, "UpdatePaymentHandler", marketerrors.ErrInvalidRequest, map[string]any{"limit": tooLarge.Limit})
		return
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		helpers.HandleBindError(c, "UpdatePaymentHandler", err)
		return
	default:
		up, err := readUpload(fh)
		if err != nil {
			helpers.HandleBindError(c, "UpdatePaymentHandler", err)
			return
		}
		form.Receipt = &up
	}

	form.Note = c.PostForm(helpers.PaymentNoteField)
	// unparseable numbers fall through to the service's messages
	if amount, err := helpers.FormFloat(c, helpers.PaymentAmountField); err == nil && amount != nil {
		form.Amount = *amount
	}
	form.PaymentTypeID, _ = strconv.Atoi(strings.TrimSpace(c.PostForm(helpers.PaymentTypeField)))
	form.Status, _ = strconv.ParseBool(c.PostForm(helpers.PaymentStatusField))

	fields := map[string]any{"payment_id": paymentID, "receipt": form.Receipt != nil}
	if err := h.service.UpdatePayment(c.Request.Context(), form); err != nil {
		helpers.HandleServiceError(c, "UpdatePaymentHandler", err, fields)
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "Payment updated successfully!")
	helpers.LogSuccess("UpdatePaymentHandler", "payment updated", fields)
}

// DealsHandler handles GET /deals
func (h *AdminHandler) DealsHandler(c *gin.Context) {
	view, err := h.service.ListDeals(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "DealsHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view, "deals retrieved successfully")
}

// ProfitReportHandler handles GET /reports/profit
func (h *AdminHandler) ProfitReportHandler(c *gin.Context) {
	report, err := h.service.ProfitReport(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "ProfitReportHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, report, "profit report retrieved successfully")
	helpers.LogSuccess("ProfitReportHandler", "profit report retrieved successfully", map[string]any{
		"points":     len(report.Points),
		"net_profit": report.TotalNetProfit,
	})
}
