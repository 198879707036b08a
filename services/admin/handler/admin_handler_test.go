package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	admin "foodexchange-admin/internal/adminService"
	"foodexchange-admin/internal/connections"
	"foodexchange-admin/internal/deals"
	"foodexchange-admin/internal/marketapi"
	"foodexchange-admin/internal/marketerrors"
	model "foodexchange-admin/internal/models"
	"foodexchange-admin/internal/registration"
	"foodexchange-admin/internal/session"
	"foodexchange-admin/services/admin/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

const testSessionID = "sid-1"

func newTestRouter(t *testing.T) (*gin.Engine, *MockAdminServiceInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockService := NewMockAdminServiceInterface(ctrl)
	h := NewAdminHandler(mockService, "fx_session", 1<<10)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set(helpers.SessionIDKey, testSessionID) })

	router.GET("/healthz", h.HealthHandler)
	router.POST("/auth/login", h.LoginHandler)
	router.POST("/auth/logout", h.LogoutHandler)
	router.POST("/register", h.RegisterHandler)
	router.GET("/directory", h.DirectoryHandler)
	router.PUT("/directory/tab", h.SelectTabHandler)
	router.PUT("/directory/page", h.SelectPageHandler)
	router.POST("/directory/connections", h.ConnectHandler)
	router.GET("/profile", h.OwnProfileHandler)
	router.GET("/users/:user_id/profile", h.ProfileHandler)
	router.PATCH("/users/:user_id", h.UpdateProfileHandler)
	router.POST("/users/:user_id/posts/:post_id/bids/:bid_id/accept", h.AcceptBidHandler)
	router.POST("/users/:user_id/bids/:bid_id/reject", h.RejectBidHandler)
	router.GET("/posts/:post_id/delivery", h.DeliveryHandler)
	router.PUT("/posts/:post_id/delivery/:delivery_id", h.UpdateDeliveryHandler)
	router.GET("/stories", h.ListStoriesHandler)
	router.POST("/stories", h.CreateStoryHandler)
	router.GET("/media/:post_id", h.PostImageHandler)
	router.GET("/media/:post_id/:index", h.MediaHandler)
	router.POST("/users/:user_id/posts", h.CreatePostHandler)
	router.GET("/payment-types", h.PaymentTypesHandler)
	router.GET("/payments/:payment_id/file", h.PaymentFileHandler)
	router.PUT("/payments/:payment_id", h.UpdatePaymentHandler)
	router.GET("/deals", h.DealsHandler)
	router.GET("/reports/profit", h.ProfitReportHandler)
	return router, mockService
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestLoginHandler(t *testing.T) {
	router, mockService := newTestRouter(t)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success",
			requestBody: helpers.LoginRequest{Email: "admin@foodexchange.lk", Password: "secret"},
			mockSetup: func() {
				mockService.EXPECT().Login(gomock.Any(), testSessionID, "admin@foodexchange.lk", "secret").
					Return(admin.SessionView{LoggedIn: true, UserID: 1, Role: "admin"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "logged in",
		},
		{
			name:        "missing_credentials",
			requestBody: helpers.LoginRequest{},
			mockSetup: func() {
				mockService.EXPECT().Login(gomock.Any(), testSessionID, "", "").
					Return(admin.SessionView{}, &session.CredentialError{Message: session.MsgMissingCredentials})
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    session.MsgMissingCredentials,
		},
		{
			name:        "wrong_password",
			requestBody: helpers.LoginRequest{Email: "admin@foodexchange.lk", Password: "nope"},
			mockSetup: func() {
				mockService.EXPECT().Login(gomock.Any(), testSessionID, "admin@foodexchange.lk", "nope").
					Return(admin.SessionView{}, &session.CredentialError{Message: session.MsgInvalidCredentials})
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    session.MsgInvalidCredentials,
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			w, resp := doJSON(t, router, http.MethodPost, "/auth/login", tt.requestBody)
			require.Equal(t, tt.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tt.expectedMsg)
		})
	}
}

func TestLoginHandler_IssuesNewSessionCookie(t *testing.T) {
	router, mockService := newTestRouter(t)
	mockService.EXPECT().Login(gomock.Any(), testSessionID, "admin@foodexchange.lk", "secret").
		Return(admin.SessionView{ID: "sid-2", ExpiresAt: time.Now().Add(time.Hour), LoggedIn: true, UserID: 1}, nil)

	w, resp := doJSON(t, router, http.MethodPost, "/auth/login", helpers.LoginRequest{Email: "admin@foodexchange.lk", Password: "secret"})
	require.Equal(t, http.StatusOK, w.Code)
	cookie := w.Header().Get("Set-Cookie")
	require.Contains(t, cookie, "fx_session=sid-2;")
	require.Contains(t, cookie, "HttpOnly")
	require.NotContains(t, w.Body.String(), "sid-2")
	require.Equal(t, true, resp["data"].(map[string]any)["isLoggedIn"])

	// an already logged-in session keeps its cookie
	mockService.EXPECT().Login(gomock.Any(), testSessionID, "", "").
		Return(admin.SessionView{ID: testSessionID, LoggedIn: true, UserID: 1}, nil)
	w, _ = doJSON(t, router, http.MethodPost, "/auth/login", helpers.LoginRequest{})
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, w.Header().Get("Set-Cookie"))
}

func TestLogoutHandler_ClearsCookie(t *testing.T) {
	router, mockService := newTestRouter(t)
	mockService.EXPECT().Logout(gomock.Any(), testSessionID).Return(nil)

	w, resp := doJSON(t, router, http.MethodPost, "/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "logged out", resp["message"])
	require.Contains(t, w.Header().Get("Set-Cookie"), "fx_session=;")
	require.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestRegisterHandler(t *testing.T) {
	router, mockService := newTestRouter(t)

	tests := []struct {
		name           string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "created",
			mockSetup: func() {
				mockService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(model.User{ID: 9, Username: "sunil"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "user registered successfully",
		},
		{
			name: "validation_message_passes_through",
			mockSetup: func() {
				mockService.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(model.User{}, &registration.ValidationError{Message: registration.MsgInvalidMobile})
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    registration.MsgInvalidMobile,
		},
		{
			name: "upstream_failure",
			mockSetup: func() {
				mockService.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(model.User{}, &marketerrors.UpstreamError{Method: "POST", Path: "/user", StatusCode: 500})
			},
			expectedStatus: http.StatusBadGateway,
			expectedMsg:    "marketplace api request failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			w, resp := doJSON(t, router, http.MethodPost, "/register", registration.Form{Username: "sunil", MobileNumber: "12345"})
			require.Equal(t, tt.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tt.expectedMsg)
		})
	}
}

func TestDirectoryHandlers(t *testing.T) {
	router, mockService := newTestRouter(t)

	mockService.EXPECT().Directory(gomock.Any(), testSessionID).Return(admin.DirectoryView{
		Tab: connections.TabConnected, Page: 1, PageCount: 1, Total: 1,
		Items: []admin.DirectoryItem{{User: model.User{ID: 3}, Status: connections.StatusConnected}},
	}, nil)
	w, resp := doJSON(t, router, http.MethodGet, "/directory", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]any)
	require.Equal(t, "connected", data["tab"])
	require.Len(t, data["items"], 1)

	mockService.EXPECT().SelectTab(gomock.Any(), testSessionID, "requests").
		Return(connections.ViewState{Tab: connections.TabRequests, Page: 1}, nil)
	w, resp = doJSON(t, router, http.MethodPut, "/directory/tab", helpers.SelectTabRequest{Tab: "requests"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, float64(1), resp["data"].(map[string]any)["page"])

	mockService.EXPECT().SelectTab(gomock.Any(), testSessionID, "blocked").
		Return(connections.ViewState{}, marketerrors.ErrUnknownTab)
	w, resp = doJSON(t, router, http.MethodPut, "/directory/tab", helpers.SelectTabRequest{Tab: "blocked"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "unknown directory tab", resp["message"])

	// page 0 fails binding before reaching the service
	w, _ = doJSON(t, router, http.MethodPut, "/directory/page", helpers.SelectPageRequest{Page: 0})
	require.Equal(t, http.StatusBadRequest, w.Code)

	mockService.EXPECT().SelectPage(gomock.Any(), testSessionID, 3).
		Return(connections.ViewState{Tab: connections.TabRequests, Page: 3}, nil)
	w, _ = doJSON(t, router, http.MethodPut, "/directory/page", helpers.SelectPageRequest{Page: 3})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestConnectHandler(t *testing.T) {
	router, mockService := newTestRouter(t)
	req := helpers.ConnectRequest{DealerID: 3, From: "none", Action: "connect"}
	want := admin.ConnectRequest{DealerID: 3, From: connections.StatusNone, Action: connections.ActionConnect}

	mockService.EXPECT().Connect(gomock.Any(), testSessionID, want).
		Return(admin.ConnectResult{DealerID: 3, Status: connections.StatusPending, Applied: true}, nil)
	w, resp := doJSON(t, router, http.MethodPost, "/directory/connections", req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "connection updated", resp["message"])

	mockService.EXPECT().Connect(gomock.Any(), testSessionID, want).
		Return(admin.ConnectResult{DealerID: 3, Status: connections.StatusPending, Applied: false}, nil)
	w, resp = doJSON(t, router, http.MethodPost, "/directory/connections", req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "connection already updated", resp["message"])

	mockService.EXPECT().Connect(gomock.Any(), testSessionID, gomock.Any()).
		Return(admin.ConnectResult{}, marketerrors.ErrInvalidTransition)
	w, _ = doJSON(t, router, http.MethodPost, "/directory/connections", helpers.ConnectRequest{DealerID: 3, From: "none", Action: "accept"})
	require.Equal(t, http.StatusConflict, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/directory/connections", helpers.ConnectRequest{From: "none", Action: "connect"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileHandlers(t *testing.T) {
	router, mockService := newTestRouter(t)

	mockService.EXPECT().GetProfile(gomock.Any(), 5).
		Return(admin.ProfileView{User: model.User{ID: 5}, Posts: []admin.PostView{}, PostsError: "GET /sharedpost/getposybyuserid: HTTP error! status: 500"}, nil)
	w, resp := doJSON(t, router, http.MethodGet, "/users/5/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, resp["data"].(map[string]any)["postsError"], "status: 500")

	w, resp = doJSON(t, router, http.MethodGet, "/users/abc/profile", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "invalid request", resp["message"])

	mockService.EXPECT().GetProfile(gomock.Any(), 6).Return(admin.ProfileView{}, marketerrors.ErrUserNotFound)
	w, _ = doJSON(t, router, http.MethodGet, "/users/6/profile", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	mockService.EXPECT().Session(gomock.Any(), testSessionID).Return(admin.SessionView{LoggedIn: true, UserID: 1}, nil)
	mockService.EXPECT().GetProfile(gomock.Any(), 1).Return(admin.ProfileView{User: model.User{ID: 1}}, nil)
	w, _ = doJSON(t, router, http.MethodGet, "/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)

	name := "New Name"
	mockService.EXPECT().UpdateProfile(gomock.Any(), 5, admin.ProfilePatch{Name: &name}).Return(model.User{ID: 5, Name: name}, nil)
	w, resp = doJSON(t, router, http.MethodPatch, "/users/5", map[string]any{"name": name})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, name, resp["data"].(map[string]any)["name"])
}

func TestBidHandlers(t *testing.T) {
	router, mockService := newTestRouter(t)

	mockService.EXPECT().AcceptBid(gomock.Any(), 5, admin.AcceptForm{PostID: 10, BidID: 100, DeliveryDate: "2024-05-01"}).
		Return([]admin.PostView{{Post: model.SharedPost{ID: 10}}}, nil)
	w, resp := doJSON(t, router, http.MethodPost, "/users/5/posts/10/bids/100/accept", helpers.AcceptBidRequest{DeliveryDate: "2024-05-01"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "bid accepted successfully", resp["message"])

	w, _ = doJSON(t, router, http.MethodPost, "/users/5/posts/10/bids/100/accept", helpers.AcceptBidRequest{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	mockService.EXPECT().RejectBid(gomock.Any(), 5, 100).Return(nil, marketerrors.ErrUpstream)
	w, _ = doJSON(t, router, http.MethodPost, "/users/5/bids/100/reject", nil)
	require.Equal(t, http.StatusBadGateway, w.Code)
}

func TestDeliveryHandlers(t *testing.T) {
	router, mockService := newTestRouter(t)

	mockService.EXPECT().GetDelivery(gomock.Any(), 10).Return(deals.EmptyDelivery(), nil)
	w, resp := doJSON(t, router, http.MethodGet, "/posts/10/delivery", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]any)
	require.Equal(t, false, data["available"])
	require.Equal(t, deals.NoDeliveryMessage, data["message"])

	details := model.DeliveryDetails{CurrentPackageLocation: "Colombo hub", StatusID: 2}
	mockService.EXPECT().UpdateDeliveryDetails(gomock.Any(), 10, 7, details).
		Return(deals.DeliveryView{Available: true, DeliveryID: 7}, nil)
	w, _ = doJSON(t, router, http.MethodPut, "/posts/10/delivery/7", helpers.DeliveryDetailsRequest{CurrentPackageLocation: "Colombo hub", StatusID: 2})
	require.Equal(t, http.StatusOK, w.Code)
}

func multipartStory(t *testing.T, title string, image []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField(helpers.StoryTitleField, title))
	require.NoError(t, mw.WriteField(helpers.StoryDescriptionField, "fresh crop"))
	if image != nil {
		fw, err := mw.CreateFormFile(helpers.StoryImageField, "crop.png")
		require.NoError(t, err)
		_, err = fw.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestStoryHandlers(t *testing.T) {
	router, mockService := newTestRouter(t)
	png := []byte("\x89PNG\r\n\x1a\nrest")

	mockService.EXPECT().CreateStory(gomock.Any(), admin.StoryForm{
		Title: "Harvest", Description: "fresh crop", FileName: "crop.png", Image: png,
	}).Return(nil)
	body, ct := multipartStory(t, "Harvest", png)
	req := httptest.NewRequest(http.MethodPost, "/stories", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	// a missing image is reported by the service
	mockService.EXPECT().CreateStory(gomock.Any(), admin.StoryForm{Title: "Harvest", Description: "fresh crop"}).
		Return(marketerrors.ErrInvalidRequest)
	body, ct = multipartStory(t, "Harvest", nil)
	req = httptest.NewRequest(http.MethodPost, "/stories", body)
	req.Header.Set("Content-Type", ct)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// over the handler's upload limit
	body, ct = multipartStory(t, "Harvest", make([]byte, 2<<10))
	req = httptest.NewRequest(http.MethodPost, "/stories", body)
	req.Header.Set("Content-Type", ct)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// a body past the upload cap is cut off before it is buffered
	body, ct = multipartStory(t, "Harvest", make([]byte, 2<<20))
	req = httptest.NewRequest(http.MethodPost, "/stories", body)
	req.Header.Set("Content-Type", ct)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	mockService.EXPECT().ListStories(gomock.Any()).Return(nil, nil)
	w, resp := doJSON(t, router, http.MethodGet, "/stories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, resp["data"])
	require.NotNil(t, resp["data"])
}

func TestMediaHandler_Streams(t *testing.T) {
	router, mockService := newTestRouter(t)
	payload := []byte("\x89PNG\r\n\x1a\nbytes")

	mockService.EXPECT().FetchMedia(gomock.Any(), 4, 0).Return(marketapi.Media{
		ContentType: "image/png", Size: int64(len(payload)), Body: io.NopCloser(bytes.NewReader(payload)),
	}, nil)
	req := httptest.NewRequest(http.MethodGet, "/media/4/0", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "image/png", w.Header().Get("Content-Type"))
	require.Equal(t, payload, w.Body.Bytes())

	mockService.EXPECT().FetchMedia(gomock.Any(), 4, 5).Return(marketapi.Media{}, marketerrors.ErrMediaNotFound)
	w2, resp := doJSON(t, router, http.MethodGet, "/media/4/5", nil)
	require.Equal(t, http.StatusNotFound, w2.Code)
	require.Equal(t, "media not found", resp["message"])
}

func TestPostImageHandler(t *testing.T) {
	router, mockService := newTestRouter(t)
	payload := []byte("\x89PNG\r\n\x1a\nsingle")

	mockService.EXPECT().FetchPostImage(gomock.Any(), 11).Return(marketapi.Media{
		ContentType: "image/png", Size: int64(len(payload)), Body: io.NopCloser(bytes.NewReader(payload)),
	}, nil)
	req := httptest.NewRequest(http.MethodGet, "/media/11", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, payload, w.Body.Bytes())

	w, _ = doJSON(t, router, http.MethodGet, "/media/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

type formFile struct {
	field, name string
	data        []byte
}

func multipartBody(t *testing.T, fields map[string]string, files ...formFile) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		fw, err := mw.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = fw.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func sendMultipart(router *gin.Engine, method, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreatePostHandler(t *testing.T) {
	router, mockService := newTestRouter(t)
	png := []byte("\x89PNG\r\n\x1a\nrest")
	lat := 6.9

	fields := map[string]string{
		helpers.PostTitleField:       "Carrots",
		helpers.PostDescriptionField: "Fresh",
		helpers.PostQuantityField:    "40",
		helpers.PostAddressField:     "12 Main St",
		helpers.PostCityField:        "Kandy",
		helpers.PostLatitudeField:    "6.9",
		helpers.PostCategoryField:    "selling",
	}
	mockService.EXPECT().CreatePost(gomock.Any(), admin.PostForm{
		UserID: 5, Title: "Carrots", Description: "Fresh", Quantity: 40, Address: "12 Main St", City: "Kandy",
		Latitude: &lat, Category: deals.CategorySelling,
		Images: []admin.UploadedFile{{FileName: "a.png", Data: png}, {FileName: "b.png", Data: png}},
	}).Return("Post uploaded successfully", nil)

	body, ct := multipartBody(t, fields, formFile{helpers.PostImagesField, "a.png", png}, formFile{helpers.PostImagesField, "b.png", png})
	w := sendMultipart(router, http.MethodPost, "/users/5/posts", body, ct)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), "Post uploaded successfully")

	// a garbled quantity reaches the service as zero and gets its message
	fields[helpers.PostQuantityField] = "lots"
	mockService.EXPECT().CreatePost(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, form admin.PostForm) (string, error) {
			require.Zero(t, form.Quantity)
			return "", &registration.ValidationError{Message: deals.MsgQuantityPositive}
		})
	body, ct = multipartBody(t, fields, formFile{helpers.PostImagesField, "a.png", png})
	w = sendMultipart(router, http.MethodPost, "/users/5/posts", body, ct)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), deals.MsgQuantityPositive)

	fields[helpers.PostCategoryField] = "bartering"
	body, ct = multipartBody(t, fields)
	w = sendMultipart(router, http.MethodPost, "/users/5/posts", body, ct)
	require.Equal(t, http.StatusBadRequest, w.Code)

	fields[helpers.PostCategoryField] = "buying"
	fields[helpers.PostLatitudeField] = "north"
	body, ct = multipartBody(t, fields)
	w = sendMultipart(router, http.MethodPost, "/users/5/posts", body, ct)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/users/5/posts", map[string]string{"title": "json"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentHandlers(t *testing.T) {
	router, mockService := newTestRouter(t)
	pdf := []byte("%PDF-1.4\nreceipt")

	mockService.EXPECT().PaymentTypes(gomock.Any()).Return([]model.PaymentType{{ID: 1, Name: "Cash"}}, nil)
	w, resp := doJSON(t, router, http.MethodGet, "/payment-types", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Cash", resp["data"].([]any)[0].(map[string]any)["name"])

	mockService.EXPECT().PaymentFile(gomock.Any(), 3).Return(marketapi.Media{
		ContentType: "application/pdf", Size: int64(len(pdf)), Body: io.NopCloser(bytes.NewReader(pdf)),
	}, nil)
	req := httptest.NewRequest(http.MethodGet, "/payments/3/file", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, pdf, w.Body.Bytes())
	require.Equal(t, `attachment; filename="payment_receipt_3"`, w.Header().Get("Content-Disposition"))

	mockService.EXPECT().PaymentFile(gomock.Any(), 9).Return(marketapi.Media{}, marketerrors.ErrPaymentNotFound)
	w, resp = doJSON(t, router, http.MethodGet, "/payments/9/file", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "payment not found", resp["message"])

	fields := map[string]string{
		helpers.PaymentAmountField: "1500.50",
		helpers.PaymentNoteField:   "cash",
		helpers.PaymentTypeField:   "1",
		helpers.PaymentStatusField: "true",
	}
	mockService.EXPECT().UpdatePayment(gomock.Any(), admin.PaymentForm{
		PaymentID: 3, Amount: 1500.50, Note: "cash", PaymentTypeID: 1, Status: true,
		Receipt: &admin.UploadedFile{FileName: "r.pdf", Data: pdf},
	}).Return(nil)
	body, ct := multipartBody(t, fields, formFile{helpers.PaymentFileField, "r.pdf", pdf})
	w = sendMultipart(router, http.MethodPut, "/payments/3", body, ct)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Payment updated successfully!")

	// no receipt, and the service's first message comes back
	mockService.EXPECT().UpdatePayment(gomock.Any(), admin.PaymentForm{PaymentID: 3, Note: "cash", PaymentTypeID: 1, Status: true}).
		Return(&registration.ValidationError{Message: deals.MsgInvalidAmount})
	fields[helpers.PaymentAmountField] = "abc"
	body, ct = multipartBody(t, fields)
	w = sendMultipart(router, http.MethodPut, "/payments/3", body, ct)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), deals.MsgInvalidAmount)

	// over the upload cap
	body, ct = multipartBody(t, fields, formFile{helpers.PaymentFileField, "big.pdf", make([]byte, 2<<20)})
	w = sendMultipart(router, http.MethodPut, "/payments/3", body, ct)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDealsAndReportHandlers(t *testing.T) {
	router, mockService := newTestRouter(t)

	mockService.EXPECT().ListDeals(gomock.Any()).Return(admin.DealsView{
		Deals:    []model.Deal{{ID: 1, Status: "pending", Amount: 900}},
		ByStatus: map[string]int{"pending": 1},
	}, nil)
	w, resp := doJSON(t, router, http.MethodGet, "/deals", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]any)
	require.Len(t, data["deals"], 1)
	require.Equal(t, float64(1), data["byStatus"].(map[string]any)["pending"])

	mockService.EXPECT().ProfitReport(gomock.Any()).Return(deals.ProfitReport{
		Points:         []deals.ProfitPoint{{Date: "2024-06-01", SellingProfit: 10, NetProfit: 10}},
		TotalNetProfit: 10,
	}, nil)
	w, resp = doJSON(t, router, http.MethodGet, "/reports/profit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, float64(10), resp["data"].(map[string]any)["totalNetProfit"])

	mockService.EXPECT().ProfitReport(gomock.Any()).Return(deals.ProfitReport{}, fmt.Errorf("service: %w", context.DeadlineExceeded))
	w, _ = doJSON(t, router, http.MethodGet, "/reports/profit", nil)
	require.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestHealthHandler(t *testing.T) {
	router, _ := newTestRouter(t)
	w, resp := doJSON(t, router, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ok", resp["data"].(map[string]any)["status"])
}
