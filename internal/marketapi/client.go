package marketapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"

	"foodexchange-admin/internal/marketerrors"
	"foodexchange-admin/internal/models"
	"foodexchange-admin/utils"
)

// MarketAPI is the marketplace REST API as the admin gateway uses it
type MarketAPI interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	ListStories(ctx context.Context) ([]models.Story, error)
	UploadStory(ctx context.Context, story models.StoryUpload) error
	ListPostsByUser(ctx context.Context, userID int) ([]models.SharedPost, error)
	AcceptBid(ctx context.Context, deal models.DealRequest) error
	RejectBid(ctx context.Context, bidID int) error
	GetDeliveryByPost(ctx context.Context, postID int) (models.Delivery, error)
	UpdateDeliveryDetails(ctx context.Context, deliveryID int, details models.DeliveryDetails) error
	GetMediaInfo(ctx context.Context, postID int) (models.MediaInfo, error)
	FetchMedia(ctx context.Context, postID, index int) (Media, error)
	FetchPostImage(ctx context.Context, postID int) (Media, error)
	CreatePost(ctx context.Context, post models.PostUpload) (string, error)
	ListPaymentTypes(ctx context.Context) ([]models.PaymentType, error)
	FetchPaymentFile(ctx context.Context, paymentID int) (Media, error)
	UpdatePayment(ctx context.Context, update models.PaymentUpdate) error
	ListUserDeals(ctx context.Context) ([]models.Deal, error)
	BuyingCosts(ctx context.Context) ([]models.BuyingCost, error)
	SellingProfits(ctx context.Context) ([]models.SellingProfit, error)
}

// Media is a streamed media file; the caller closes Body
type Media struct {
	ContentType        string
	ContentDisposition string
	Size               int64
	Body               io.ReadCloser
}

// Client is the HTTP implementation of MarketAPI
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the API rooted at baseURL
func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout})
}

// NewClientWithHTTP creates a client around an existing *http.Client
func NewClientWithHTTP(baseURL string, hc *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: hc,
	}
}

// BaseURL returns the API root the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// request describes one API call
type request struct {
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
	notFound    error // returned on 404 when set
}

// send performs the call and returns the response for 2xx statuses.
// Any other status is turned into an error and the body is closed.
func (c *Client) send(ctx context.Context, r request) (*http.Response, error) {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, r.body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", r.method, r.path, err)
	}
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s %s: %w", r.method, r.path, ctxErr)
		}
		if isTimeout(err) {
			return nil, fmt.Errorf("%s %s: %w: %v", r.method, r.path, context.DeadlineExceeded, err)
		}
		return nil, fmt.Errorf("%s %s: %w: %v", r.method, r.path, marketerrors.ErrUpstream, err)
	}

	utils.Debug("marketapi: call", map[string]any{
		"method":  r.method,
		"path":    r.path,
		"status":  resp.StatusCode,
		"latency": time.Since(start).String(),
	})

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
	resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound && r.notFound != nil {
		return nil, fmt.Errorf("%s %s: %w", r.method, r.path, r.notFound)
	}
	return nil, &marketerrors.UpstreamError{Method: r.method, Path: r.path, StatusCode: resp.StatusCode}
}

// do performs the call and decodes a JSON body into out (if non-nil)
func (c *Client) do(ctx context.Context, r request, out any) error {
	resp, err := c.send(ctx, r)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%s %s: read body: %w: %v", r.method, r.path, context.DeadlineExceeded, err)
		}
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%s %s: %w: empty body", r.method, r.path, marketerrors.ErrMalformedResponse)
		}
		return fmt.Errorf("%s %s: %w: %v", r.method, r.path, marketerrors.ErrMalformedResponse, err)
	}
	return nil
}

// isTimeout reports whether err is the http.Client timeout firing
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func jsonBody(v any) (io.Reader, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return bytes.NewReader(b), nil
}

// ListUsers returns every marketplace user
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, request{method: http.MethodGet, path: "/user/all"}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser returns one user by id
func (c *Client) GetUser(ctx context.Context, id int) (models.User, error) {
	var user models.User
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/user/getbyid",
		query:    url.Values{"id": {strconv.Itoa(id)}},
		notFound: marketerrors.ErrUserNotFound,
	}, &user)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// CreateUser registers a new user
func (c *Client) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	body, err := jsonBody(user)
	if err != nil {
		return models.User{}, err
	}
	var created models.User
	err = c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/user",
		body:        body,
		contentType: "application/json",
	}, &created)
	if err != nil {
		return models.User{}, err
	}
	return created, nil
}

// UpdateUser replaces a user record and returns what the API stored
func (c *Client) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	body, err := jsonBody(user)
	if err != nil {
		return models.User{}, err
	}
	var updated models.User
	err = c.do(ctx, request{
		method:      http.MethodPut,
		path:        "/user/" + strconv.Itoa(user.ID),
		body:        body,
		contentType: "application/json",
		notFound:    marketerrors.ErrUserNotFound,
	}, &updated)
	if err != nil {
		return models.User{}, err
	}
	return updated, nil
}

// ListStories returns every story
func (c *Client) ListStories(ctx context.Context) ([]models.Story, error) {
	var stories []models.Story
	if err := c.do(ctx, request{method: http.MethodGet, path: "/sharestory/all"}, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

// UploadStory posts a story as multipart form data (title, description, image)
func (c *Client) UploadStory(ctx context.Context, story models.StoryUpload) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("title", story.Title); err != nil {
		return fmt.Errorf("encode story: %w", err)
	}
	if err := w.WriteField("description", story.Description); err != nil {
		return fmt.Errorf("encode story: %w", err)
	}

	if err := writeFilePart(w, "image", story.FileName, story.ContentType, story.Image); err != nil {
		return fmt.Errorf("encode story image: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("encode story: %w", err)
	}

	return c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/sharestory/upload",
		body:        &buf,
		contentType: w.FormDataContentType(),
	}, nil)
}

// ListPostsByUser returns the shared posts owned by a user, bids included
func (c *Client) ListPostsByUser(ctx context.Context, userID int) ([]models.SharedPost, error) {
	var posts []models.SharedPost
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/sharedpost/getposybyuserid",
		query:  url.Values{"userId": {strconv.Itoa(userID)}},
	}, &posts)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// AcceptBid turns a bid into a deal
func (c *Client) AcceptBid(ctx context.Context, deal models.DealRequest) error {
	body, err := jsonBody(deal)
	if err != nil {
		return err
	}
	return c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/deals/accept",
		body:        body,
		contentType: "application/json",
		notFound:    marketerrors.ErrPostNotFound,
	}, nil)
}

// RejectBid rejects a bid
func (c *Client) RejectBid(ctx context.Context, bidID int) error {
	return c.do(ctx, request{
		method:      http.MethodPut,
		path:        "/bids/reject/" + strconv.Itoa(bidID),
		contentType: "application/json",
		notFound:    marketerrors.ErrPostNotFound,
	}, nil)
}

// GetDeliveryByPost returns the delivery of a post. A post without one
// yields ErrDeliveryNotFound.
func (c *Client) GetDeliveryByPost(ctx context.Context, postID int) (models.Delivery, error) {
	var d models.Delivery
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/delivery/getbypostid",
		query:    url.Values{"postId": {strconv.Itoa(postID)}},
		notFound: marketerrors.ErrDeliveryNotFound,
	}, &d)
	if err != nil {
		return models.Delivery{}, err
	}
	return d, nil
}

// UpdateDeliveryDetails edits tracking fields and optionally records a status change
func (c *Client) UpdateDeliveryDetails(ctx context.Context, deliveryID int, details models.DeliveryDetails) error {
	body, err := jsonBody(details)
	if err != nil {
		return err
	}
	return c.do(ctx, request{
		method:      http.MethodPut,
		path:        "/delivery/update-all-details",
		query:       url.Values{"deliveryId": {strconv.Itoa(deliveryID)}},
		body:        body,
		contentType: "application/json",
		notFound:    marketerrors.ErrDeliveryNotFound,
	}, nil)
}

// GetMediaInfo lists a post's media files
func (c *Client) GetMediaInfo(ctx context.Context, postID int) (models.MediaInfo, error) {
	var info models.MediaInfo
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     fmt.Sprintf("/sharedpost/%d/media-info", postID),
		notFound: marketerrors.ErrMediaNotFound,
	}, &info)
	if err != nil {
		return models.MediaInfo{}, err
	}
	return info, nil
}

// FetchMedia streams one media file of a post
func (c *Client) FetchMedia(ctx context.Context, postID, index int) (Media, error) {
	return c.stream(ctx, request{
		method:   http.MethodGet,
		path:     fmt.Sprintf("/sharedpost/media/%d/%d", postID, index),
		notFound: marketerrors.ErrMediaNotFound,
	})
}

// FetchPostImage streams the single image of a post without media info
func (c *Client) FetchPostImage(ctx context.Context, postID int) (Media, error) {
	return c.stream(ctx, request{
		method:   http.MethodGet,
		path:     fmt.Sprintf("/sharedpost/image/%d", postID),
		notFound: marketerrors.ErrMediaNotFound,
	})
}

func (c *Client) stream(ctx context.Context, r request) (Media, error) {
	resp, err := c.send(ctx, r)
	if err != nil {
		return Media{}, err
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return Media{
		ContentType:        contentType,
		ContentDisposition: resp.Header.Get("Content-Disposition"),
		Size:               resp.ContentLength,
		Body:               resp.Body,
	}, nil
}

// CreatePost uploads a shared post with its images and returns the API's
// confirmation text
func (c *Client) CreatePost(ctx context.Context, post models.PostUpload) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := [][2]string{
		{"title", post.Title},
		{"description", post.Description},
		{"quantity", strconv.FormatFloat(post.Quantity, 'f', -1, 64)},
		{"userId", strconv.Itoa(post.UserID)},
		{"address", post.Address},
		{"city", post.City},
	}
	if post.Latitude != nil {
		fields = append(fields, [2]string{"latitude", strconv.FormatFloat(*post.Latitude, 'f', -1, 64)})
	}
	if post.Longitude != nil {
		fields = append(fields, [2]string{"longitude", strconv.FormatFloat(*post.Longitude, 'f', -1, 64)})
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return "", fmt.Errorf("encode post: %w", err)
		}
	}
	for _, f := range post.Files {
		if err := writeFilePart(w, "files", f.FileName, f.ContentType, f.Data); err != nil {
			return "", fmt.Errorf("encode post image: %w", err)
		}
	}
	if post.Category != nil {
		raw, err := json.Marshal(post.Category)
		if err != nil {
			return "", fmt.Errorf("encode post category: %w", err)
		}
		if err := writeFilePart(w, "categoreystatus_id", "blob", "application/json", raw); err != nil {
			return "", fmt.Errorf("encode post category: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("encode post: %w", err)
	}

	resp, err := c.send(ctx, request{
		method:      http.MethodPost,
		path:        "/sharedpost/upload-media",
		body:        &buf,
		contentType: w.FormDataContentType(),
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	msg, err := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	if err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("POST /sharedpost/upload-media: read body: %w: %v", context.DeadlineExceeded, err)
		}
		return "", fmt.Errorf("POST /sharedpost/upload-media: %w: %v", marketerrors.ErrMalformedResponse, err)
	}
	return strings.TrimSpace(string(msg)), nil
}

func writeFilePart(w *multipart.Writer, field, fileName, contentType string, data []byte) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, fileName))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = part.Write(data)
	return err
}

// ListPaymentTypes returns the payment methods a payment can record
func (c *Client) ListPaymentTypes(ctx context.Context) ([]models.PaymentType, error) {
	var types []models.PaymentType
	if err := c.do(ctx, request{method: http.MethodGet, path: "/payment-types"}, &types); err != nil {
		return nil, err
	}
	return types, nil
}

// FetchPaymentFile streams the receipt attached to a payment
func (c *Client) FetchPaymentFile(ctx context.Context, paymentID int) (Media, error) {
	return c.stream(ctx, request{
		method:   http.MethodGet,
		path:     "/payment/file/getbyid",
		query:    url.Values{"id": {strconv.Itoa(paymentID)}},
		notFound: marketerrors.ErrPaymentNotFound,
	})
}

// UpdatePayment edits a payment as multipart form data, receipt optional
func (c *Client) UpdatePayment(ctx context.Context, u models.PaymentUpdate) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := [][2]string{
		{"paymentid", strconv.Itoa(u.PaymentID)},
		{"amount", strconv.FormatFloat(u.Amount, 'f', -1, 64)},
		{"note", u.Note},
		{"paymentTypeId", strconv.Itoa(u.PaymentTypeID)},
		{"status", strconv.FormatBool(u.Status)},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return fmt.Errorf("encode payment: %w", err)
		}
	}
	if len(u.File) > 0 {
		if err := writeFilePart(w, "file", u.FileName, u.ContentType, u.File); err != nil {
			return fmt.Errorf("encode payment receipt: %w", err)
		}
	}
	if u.FileType != "" {
		if err := w.WriteField("filetype", u.FileType); err != nil {
			return fmt.Errorf("encode payment: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("encode payment: %w", err)
	}

	return c.do(ctx, request{
		method:      http.MethodPut,
		path:        "/payment/updatepayment",
		body:        &buf,
		contentType: w.FormDataContentType(),
		notFound:    marketerrors.ErrPaymentNotFound,
	}, nil)
}

// ListUserDeals returns the deals of the signed-in marketplace user
func (c *Client) ListUserDeals(ctx context.Context) ([]models.Deal, error) {
	var deals []models.Deal
	if err := c.do(ctx, request{method: http.MethodGet, path: "/deals/user"}, &deals); err != nil {
		return nil, err
	}
	return deals, nil
}

// BuyingCosts returns the buying-post cost totals per shared date
func (c *Client) BuyingCosts(ctx context.Context) ([]models.BuyingCost, error) {
	var costs []models.BuyingCost
	if err := c.do(ctx, request{method: http.MethodGet, path: "/userreport/getBuyingRequestCost"}, &costs); err != nil {
		return nil, err
	}
	return costs, nil
}

// SellingProfits returns the selling-post profit totals per shared date
func (c *Client) SellingProfits(ctx context.Context) ([]models.SellingProfit, error) {
	var profits []models.SellingProfit
	if err := c.do(ctx, request{method: http.MethodGet, path: "/userreport/getSellingRequestProfit"}, &profits); err != nil {
		return nil, err
	}
	return profits, nil
}
