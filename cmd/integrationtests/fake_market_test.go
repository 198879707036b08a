package integrationtests

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"testing"

	model "foodexchange-admin/internal/models"
)

// fakeMarket is an in-memory stand-in for the marketplace REST API
type fakeMarket struct {
	mu         sync.Mutex
	users      map[int]model.User
	posts      map[int][]model.SharedPost // key: owner user id
	deliveries map[int]model.Delivery     // key: post id
	media      map[int][][]byte           // key: post id
	stories    []model.Story
	deals      []model.DealRequest
	rejected   []int
	updates    map[int]model.DeliveryDetails // key: delivery id
	failPosts  map[int]bool                  // owner ids whose posts endpoint returns 500
	nextUserID int

	postImages   map[int][]byte // key: post id, single-image posts
	nextPostID   int
	paymentTypes []model.PaymentType
	receipts     map[int][]byte // key: payment id
	payments     []model.PaymentUpdate
	userDeals    []model.Deal
	buying       []model.BuyingCost
	selling      []model.SellingProfit
}

func newFakeMarket() *fakeMarket {
	return &fakeMarket{
		users:      map[int]model.User{},
		posts:      map[int][]model.SharedPost{},
		deliveries: map[int]model.Delivery{},
		media:      map[int][][]byte{},
		updates:    map[int]model.DeliveryDetails{},
		failPosts:  map[int]bool{},
		nextUserID: 1000,
		postImages: map[int][]byte{},
		nextPostID: 500,
		receipts:   map[int][]byte{},
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func intQuery(r *http.Request, key string) int {
	n, _ := strconv.Atoi(r.URL.Query().Get(key))
	return n
}

func intPath(r *http.Request, key string) int {
	n, _ := strconv.Atoi(r.PathValue(key))
	return n
}

// start serves the fake on an httptest server closed with the test
func (m *fakeMarket) start(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("GET /user/all", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()
		users := make([]model.User, 0, len(m.users))
		for _, u := range m.users {
			users = append(users, u)
		}
		sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
		writeJSON(w, users)
	})
	mux.HandleFunc("GET /user/getbyid", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()
		u, ok := m.users[intQuery(r, "id")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, u)
	})
	mux.HandleFunc("POST /user", func(w http.ResponseWriter, r *http.Request) {
		var u model.User
		if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		m.mu.Lock()
		defer m.mu.Unlock()
		m.nextUserID++
		u.ID = m.nextUserID
		m.users[u.ID] = u
		writeJSON(w, u)
	})
	mux.HandleFunc("PUT /user/{id}", func(w http.ResponseWriter, r *http.Request) {
		var u model.User
		if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		m.mu.Lock()
		defer m.mu.Unlock()
		if _, ok := m.users[intPath(r, "id")]; !ok {
			http.NotFound(w, r)
			return
		}
		m.users[u.ID] = u
		writeJSON(w, u)
	})
	mux.HandleFunc("GET /sharestory/all", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()
		writeJSON(w, m.stories)
	})
	mux.HandleFunc("POST /sharestory/upload", func(w http.ResponseWriter, r *http.Request) {
		f, _, err := r.FormFile("image")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer f.Close()
		img, _ := io.ReadAll(f)
		m.mu.Lock()
		defer m.mu.Unlock()
		m.stories = append(m.stories, model.Story{
			ID:          len(m.stories) + 1,
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
			Image:       strconv.Itoa(len(img)),
		})
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("GET /sharedpost/getposybyuserid", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()
		owner := intQuery(r, "userId")
		if m.failPosts[owner] {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		posts := m.posts[owner]
		if posts == nil {
			posts = []model.SharedPost{}
		}
		writeJSON(w, posts)
	})
	mux.HandleFunc("POST /deals/accept", func(w http.ResponseWriter, r *http.Request) {
		var d model.DealRequest
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		m.mu.Lock()
		defer m.mu.Unlock()
		m.deals = append(m.deals, d)
		for owner, posts := range m.posts {
			for i := range posts {
				for j := range posts[i].Bids {
					if posts[i].Bids[j].ID == d.BidID {
						m.posts[owner][i].Bids[j].Confirmed = true
					}
				}
			}
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("PUT /bids/reject/{id}", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()
		id := intPath(r, "id")
		m.rejected = append(m.rejected, id)
		for owner, posts := range m.posts {
			for i := range posts {
				kept := posts[i].Bids[:0:0]
				for _, b := range posts[i].Bids {
					if b.ID != id {
						kept = append(kept, b)
					}
				}
				m.posts[owner][i].Bids = kept
			}
		}
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /delivery/getbypostid", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()
		d, ok := m.deliveries[intQuery(r, "postId")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, d)
	})
	mux.HandleFunc("PUT /delivery/update-all-details", func(w http.ResponseWriter, r *http.Request) {
		var d model.DeliveryDetails
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		m.mu.Lock()
		defer m.mu.Unlock()
		id := intQuery(r, "deliveryId")
		m.updates[id] = d
		for postID, del := range m.deliveries {
			if del.ID == id && d.CurrentPackageLocation != "" {
				del.CurrentPackageLocation = d.CurrentPackageLocation
				m.deliveries[postID] = del
			}
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /sharedpost/{id}/media-info", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()
		files, ok := m.media[intPath(r, "id")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		info := model.MediaInfo{TotalFiles: len(files)}
		for i := range files {
			info.Files = append(info.Files, model.MediaFileInfo{Index: i, ContentType: "image/png", FileSize: int64(len(files[i]))})
		}
		writeJSON(w, info)
	})
	mux.HandleFunc("GET /sharedpost/media/{id}/{index}", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		files := m.media[intPath(r, "id")]
		m.mu.Unlock()
		idx := intPath(r, "index")
		if idx < 0 || idx >= len(files) {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", strconv.Itoa(len(files[idx])))
		_, _ = w.Write(files[idx])
	})

	mux.HandleFunc("GET /sharedpost/image/{id}", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		img, ok := m.postImages[intPath(r, "id")]
		m.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(img)
	})
	mux.HandleFunc("POST /sharedpost/upload-media", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		post := model.SharedPost{
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
			Latitude:    r.FormValue("latitude"),
			Longitude:   r.FormValue("longitude"),
		}
		if q := r.FormValue("quantity"); q != "" {
			post.Quantity = &q
		}
		if parts := r.MultipartForm.File["categoreystatus_id"]; len(parts) == 1 {
			f, err := parts[0].Open()
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			var cat model.CategoryStatus
			err = json.NewDecoder(f).Decode(&cat)
			f.Close()
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			post.Category = &cat
		}
		var images [][]byte
		for _, fh := range r.MultipartForm.File["files"] {
			f, err := fh.Open()
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			img, _ := io.ReadAll(f)
			f.Close()
			images = append(images, img)
		}

		owner, _ := strconv.Atoi(r.FormValue("userId"))
		m.mu.Lock()
		defer m.mu.Unlock()
		m.nextPostID++
		post.ID = m.nextPostID
		m.posts[owner] = append(m.posts[owner], post)
		m.media[post.ID] = images
		_, _ = io.WriteString(w, "Post uploaded successfully\n")
	})
	mux.HandleFunc("GET /payment-types", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()
		writeJSON(w, m.paymentTypes)
	})
	mux.HandleFunc("GET /payment/file/getbyid", func(w http.ResponseWriter, r *http.Request) {
		id := intQuery(r, "id")
		m.mu.Lock()
		receipt, ok := m.receipts[id]
		m.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "attachment; filename=\"receipt-"+strconv.Itoa(id)+".pdf\"")
		_, _ = w.Write(receipt)
	})
	mux.HandleFunc("PUT /payment/updatepayment", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		u := model.PaymentUpdate{Note: r.FormValue("note"), FileType: r.FormValue("filetype")}
		u.PaymentID, _ = strconv.Atoi(r.FormValue("paymentid"))
		u.Amount, _ = strconv.ParseFloat(r.FormValue("amount"), 64)
		u.PaymentTypeID, _ = strconv.Atoi(r.FormValue("paymentTypeId"))
		u.Status, _ = strconv.ParseBool(r.FormValue("status"))
		if f, fh, err := r.FormFile("file"); err == nil {
			u.File, _ = io.ReadAll(f)
			u.FileName = fh.Filename
			u.ContentType = fh.Header.Get("Content-Type")
			f.Close()
		}

		m.mu.Lock()
		defer m.mu.Unlock()
		if _, ok := m.receipts[u.PaymentID]; !ok {
			http.NotFound(w, r)
			return
		}
		m.payments = append(m.payments, u)
		if len(u.File) > 0 {
			m.receipts[u.PaymentID] = u.File
		}
		_, _ = io.WriteString(w, "Payment updated")
	})
	mux.HandleFunc("GET /deals/user", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()
		writeJSON(w, m.userDeals)
	})
	mux.HandleFunc("GET /userreport/getBuyingRequestCost", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()
		writeJSON(w, m.buying)
	})
	mux.HandleFunc("GET /userreport/getSellingRequestProfit", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()
		writeJSON(w, m.selling)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}
