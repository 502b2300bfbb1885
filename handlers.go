package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const placeholderImage = "https://via.placeholder.com/800x600.png?text=GAME+COVER"

// isAdmin checks the session cookie for the admin flag, falling back
// to the admin token in header or query.
func isAdmin(r *http.Request, adminToken string) bool {
	if c, err := r.Cookie("session"); err == nil && c.Value == "admin" {
		return true
	}
	if adminToken == "" {
		return false
	}
	if t := r.Header.Get("X-Admin-Token"); t != "" && t == adminToken {
		return true
	}
	if t := r.URL.Query().Get("token"); t != "" && t == adminToken {
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// pathID extracts the trailing id from /api/.../{id} style paths.
func pathID(path string, depth int) (string, bool) {
	parts := strings.Split(strings.TrimSuffix(path, "/"), "/")
	if len(parts) <= depth {
		return "", false
	}
	id := parts[depth]
	if id == "" {
		return "", false
	}
	return id, true
}

// catalogHandler serves the filtered, sorted public catalog. The
// listing is a read-only projection of the admin product collection.
func catalogHandler(admin *AdminStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		q, err := decodeCatalogQuery(r.URL.Query())
		if err != nil {
			http.Error(w, "invalid query: "+err.Error(), http.StatusBadRequest)
			return
		}
		products := FilterProducts(admin.Products(), q)
		writeJSON(w, http.StatusOK, products)
	}
}

// catalogItemHandler serves GET /api/catalog/{id}.
func catalogItemHandler(admin *AdminStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		id, ok := pathID(r.URL.Path, 3)
		if !ok {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		p, ok := admin.ProductByID(id)
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

type cartView struct {
	Items     []CartItem `json:"items"`
	ItemCount int        `json:"itemCount"`
	Total     float64    `json:"total"`
}

func cartSnapshot(cart *CartStore) cartView {
	return cartView{Items: cart.Items(), ItemCount: cart.ItemCount(), Total: cart.Total()}
}

// cartHandler serves GET (contents), POST (add) and DELETE (clear)
// for /api/cart.
func cartHandler(cart *CartStore, admin *AdminStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, cartSnapshot(cart))

		case http.MethodPost:
			var payload struct {
				ProductID string `json:"productId"`
				Quantity  int    `json:"quantity"`
			}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
			p, ok := admin.ProductByID(payload.ProductID)
			if !ok {
				http.Error(w, "product not found", http.StatusNotFound)
				return
			}
			cart.AddToCart(p, payload.Quantity)
			writeJSON(w, http.StatusOK, cartSnapshot(cart))

		case http.MethodDelete:
			cart.ClearCart()
			writeJSON(w, http.StatusOK, cartSnapshot(cart))

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// cartItemHandler serves PUT (set quantity) and DELETE for
// /api/cart/{id}.
func cartItemHandler(cart *CartStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r.URL.Path, 3)
		if !ok {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		switch r.Method {
		case http.MethodPut:
			var payload struct {
				Quantity int `json:"quantity"`
			}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
			cart.UpdateQuantity(id, payload.Quantity)
			writeJSON(w, http.StatusOK, cartSnapshot(cart))

		case http.MethodDelete:
			cart.RemoveFromCart(id)
			writeJSON(w, http.StatusOK, cartSnapshot(cart))

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

type wishlistView struct {
	Items     []Product `json:"items"`
	ItemCount int       `json:"itemCount"`
}

// wishlistHandler serves GET, POST (add) and DELETE (clear) for
// /api/wishlist.
func wishlistHandler(wl *WishlistStore, admin *AdminStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, wishlistView{Items: wl.Items(), ItemCount: wl.ItemCount()})

		case http.MethodPost:
			var payload struct {
				ProductID string `json:"productId"`
			}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
			p, ok := admin.ProductByID(payload.ProductID)
			if !ok {
				http.Error(w, "product not found", http.StatusNotFound)
				return
			}
			wl.AddToWishlist(p)
			writeJSON(w, http.StatusOK, wishlistView{Items: wl.Items(), ItemCount: wl.ItemCount()})

		case http.MethodDelete:
			wl.ClearWishlist()
			writeJSON(w, http.StatusOK, wishlistView{Items: wl.Items(), ItemCount: wl.ItemCount()})

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// wishlistItemHandler serves DELETE for /api/wishlist/{id}.
func wishlistItemHandler(wl *WishlistStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		id, ok := pathID(r.URL.Path, 3)
		if !ok {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		wl.RemoveFromWishlist(id)
		writeJSON(w, http.StatusOK, wishlistView{Items: wl.Items(), ItemCount: wl.ItemCount()})
	}
}

// loginHandler expects JSON {"email","password"}. The check is the
// storefront's mock rule: any well-formed email signs in.
func loginHandler(auth *AuthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var cred struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&cred); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if !auth.Login(cred.Email, cred.Password) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		u, _ := auth.CurrentUser()
		writeJSON(w, http.StatusOK, u)
	}
}

func registerHandler(auth *AuthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var payload struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		auth.Register(payload.Username, payload.Email, payload.Password)
		u, _ := auth.CurrentUser()
		writeJSON(w, http.StatusOK, u)
	}
}

func logoutHandler(auth *AuthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		auth.Logout()
		w.WriteHeader(http.StatusOK)
	}
}

// meHandler serves GET (current user) and PUT (profile update) for
// /api/me.
func meHandler(auth *AuthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := auth.CurrentUser()
		if !ok {
			http.Error(w, "not signed in", http.StatusUnauthorized)
			return
		}
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, u)

		case http.MethodPut:
			var upd ProfileUpdate
			if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
			auth.UpdateProfile(upd)
			u, _ = auth.CurrentUser()
			writeJSON(w, http.StatusOK, u)

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// purchasesHandler serves GET (history) and POST (checkout) for
// /api/purchases. Checkout applies the referral discount server-side
// when requested.
func purchasesHandler(auth *AuthStore, profile *ProfileStore, admin *AdminStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !auth.IsAuthenticated() {
			http.Error(w, "not signed in", http.StatusUnauthorized)
			return
		}
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, profile.Purchases())

		case http.MethodPost:
			var payload struct {
				ProductID     string   `json:"productId"`
				Platform      Platform `json:"platform"`
				ApplyDiscount bool     `json:"applyDiscount"`
			}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
			p, ok := admin.ProductByID(payload.ProductID)
			if !ok {
				http.Error(w, "product not found", http.StatusNotFound)
				return
			}
			price := p.Price
			if payload.ApplyDiscount {
				price = profile.ApplyReferralDiscount(price)
			}
			purchase := profile.AddPurchase(p, payload.Platform, price, p.OriginalPrice)
			writeJSON(w, http.StatusCreated, purchase)

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// referralHandler serves GET /api/referral and POST
// /api/referral/regenerate.
func referralHandler(auth *AuthStore, profile *ProfileStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !auth.IsAuthenticated() {
			http.Error(w, "not signed in", http.StatusUnauthorized)
			return
		}
		regenerate := strings.HasSuffix(strings.TrimSuffix(r.URL.Path, "/"), "/regenerate")
		switch {
		case r.Method == http.MethodGet && !regenerate:
		case r.Method == http.MethodPost && regenerate:
			profile.GenerateReferralCode()
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		ref, ok := profile.Referral()
		if !ok {
			http.Error(w, "referral data not ready", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, ref)
	}
}

// adminLoginHandler exchanges the admin token for the session cookie.
func adminLoginHandler(adminToken string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var payload struct {
			Token string `json:"token"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if adminToken == "" || payload.Token != adminToken {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "admin", Path: "/", HttpOnly: true})
		w.WriteHeader(http.StatusOK)
	}
}

// uploadProductImage pushes the uploaded file to Cloudinary, or
// returns a placeholder when no Cloudinary account is configured.
func uploadProductImage(ctx context.Context, cloudURL string, file multipart.File) (string, error) {
	if cloudURL == "" {
		return placeholderImage, nil
	}
	cld, err := cloudinary.NewFromURL(cloudURL)
	if err != nil {
		return "", err
	}
	res, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{})
	if err != nil {
		return "", err
	}
	return res.SecureURL, nil
}

// adminProductsHandler serves GET (full catalog) and POST (create,
// multipart with optional image file) for /api/admin/products.
func adminProductsHandler(admin *AdminStore, cloudURL, adminToken string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !isAdmin(r, adminToken) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, admin.Products())

		case http.MethodPost:
			if err := r.ParseMultipartForm(20 << 20); err != nil {
				http.Error(w, "parse multipart: "+err.Error(), http.StatusBadRequest)
				return
			}
			title := strings.TrimSpace(r.FormValue("title"))
			if title == "" {
				http.Error(w, "title required", http.StatusBadRequest)
				return
			}
			price, _ := strconv.ParseFloat(r.FormValue("price"), 64)
			originalPrice, _ := strconv.ParseFloat(r.FormValue("original_price"), 64)
			rating, _ := strconv.ParseFloat(r.FormValue("rating"), 64)
			reviewCount, _ := strconv.Atoi(r.FormValue("review_count"))
			inStock := r.FormValue("in_stock") != "false"

			var platforms []Platform
			for _, v := range r.MultipartForm.Value["platform"] {
				platforms = append(platforms, Platform(v))
			}
			var tags []Tag
			for _, v := range r.MultipartForm.Value["tag"] {
				tags = append(tags, Tag(v))
			}

			image := strings.TrimSpace(r.FormValue("image"))
			if file, _, err := r.FormFile("file"); err == nil {
				defer file.Close()
				uploaded, err := uploadProductImage(r.Context(), cloudURL, file)
				if err != nil {
					slog.Error("product image upload", "error", err)
					http.Error(w, "upload failed", http.StatusInternalServerError)
					return
				}
				image = uploaded
			}

			p := admin.AddProduct(Product{
				Title:         title,
				TitleKa:       r.FormValue("title_ka"),
				TitleRu:       r.FormValue("title_ru"),
				Description:   r.FormValue("description"),
				DescriptionKa: r.FormValue("description_ka"),
				DescriptionRu: r.FormValue("description_ru"),
				Price:         price,
				OriginalPrice: originalPrice,
				Image:         image,
				Category:      Category(r.FormValue("category")),
				Platform:      platforms,
				Tags:          tags,
				Rating:        rating,
				ReviewCount:   reviewCount,
				InStock:       inStock,
				ReleaseDate:   r.FormValue("release_date"),
				Developer:     r.FormValue("developer"),
				Publisher:     r.FormValue("publisher"),
			})
			slog.Info("product created", "id", p.ID, "title", p.Title)
			writeJSON(w, http.StatusCreated, p)

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// adminProductItemHandler serves PUT (partial update) and DELETE for
// /api/admin/products/{id}.
func adminProductItemHandler(admin *AdminStore, adminToken string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !isAdmin(r, adminToken) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		id, ok := pathID(r.URL.Path, 4)
		if !ok {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		switch r.Method {
		case http.MethodPut:
			var upd ProductUpdate
			if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
			if !admin.UpdateProduct(id, upd) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			p, _ := admin.ProductByID(id)
			writeJSON(w, http.StatusOK, p)

		case http.MethodDelete:
			if !admin.DeleteProduct(id) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			w.WriteHeader(http.StatusOK)

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// adminGiftCardsHandler serves GET and POST {"value"} for
// /api/admin/giftcards.
func adminGiftCardsHandler(admin *AdminStore, adminToken string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !isAdmin(r, adminToken) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, admin.GiftCards())

		case http.MethodPost:
			var payload struct {
				Value float64 `json:"value"`
			}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
			if payload.Value <= 0 {
				http.Error(w, "value must be positive", http.StatusBadRequest)
				return
			}
			card := admin.AddGiftCard(payload.Value)
			writeJSON(w, http.StatusCreated, card)

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// adminGiftCardItemHandler serves DELETE for /api/admin/giftcards/{id}.
func adminGiftCardItemHandler(admin *AdminStore, adminToken string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !isAdmin(r, adminToken) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if r.Method != http.MethodDelete {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		id, ok := pathID(r.URL.Path, 4)
		if !ok {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if !admin.DeleteGiftCard(id) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

// adminUsersHandler serves GET /api/admin/users and PUT
// /api/admin/users/{id}/status.
func adminUsersHandler(admin *AdminStore, adminToken string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !isAdmin(r, adminToken) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if r.Method == http.MethodGet {
			writeJSON(w, http.StatusOK, admin.Users())
			return
		}
		if r.Method == http.MethodPut && strings.HasSuffix(strings.TrimSuffix(r.URL.Path, "/"), "/status") {
			parts := strings.Split(strings.TrimSuffix(r.URL.Path, "/"), "/")
			id := parts[len(parts)-2]
			var payload struct {
				Status StoreUserStatus `json:"status"`
			}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
			if !admin.UpdateUserStatus(id, payload.Status) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			w.WriteHeader(http.StatusOK)
			return
		}
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// adminOrdersHandler serves GET /api/admin/orders and PUT
// /api/admin/orders/{id}/status.
func adminOrdersHandler(admin *AdminStore, adminToken string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !isAdmin(r, adminToken) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if r.Method == http.MethodGet {
			writeJSON(w, http.StatusOK, admin.Orders())
			return
		}
		if r.Method == http.MethodPut && strings.HasSuffix(strings.TrimSuffix(r.URL.Path, "/"), "/status") {
			parts := strings.Split(strings.TrimSuffix(r.URL.Path, "/"), "/")
			id := parts[len(parts)-2]
			var payload struct {
				Status OrderStatus `json:"status"`
			}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
			if !admin.UpdateOrderStatus(id, payload.Status) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			w.WriteHeader(http.StatusOK)
			return
		}
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func adminStatsHandler(admin *AdminStore, adminToken string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !isAdmin(r, adminToken) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, admin.Stats())
	}
}

// newMux wires every endpoint. Kept separate from main so tests can
// stand up the whole API over an in-memory store.
func newMux(cfg Config, admin *AdminStore, cart *CartStore, wl *WishlistStore, auth *AuthStore, profile *ProfileStore) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/catalog", catalogHandler(admin))
	mux.HandleFunc("/api/catalog/", catalogItemHandler(admin))

	mux.HandleFunc("/api/cart", cartHandler(cart, admin))
	mux.HandleFunc("/api/cart/", cartItemHandler(cart))

	mux.HandleFunc("/api/wishlist", wishlistHandler(wl, admin))
	mux.HandleFunc("/api/wishlist/", wishlistItemHandler(wl))

	mux.HandleFunc("/api/login", loginHandler(auth))
	mux.HandleFunc("/api/register", registerHandler(auth))
	mux.HandleFunc("/api/logout", logoutHandler(auth))
	mux.HandleFunc("/api/me", meHandler(auth))

	mux.HandleFunc("/api/purchases", purchasesHandler(auth, profile, admin))
	mux.HandleFunc("/api/referral", referralHandler(auth, profile))
	mux.HandleFunc("/api/referral/", referralHandler(auth, profile))

	mux.HandleFunc("/api/admin/login", adminLoginHandler(cfg.AdminToken))
	mux.HandleFunc("/api/admin/products", adminProductsHandler(admin, cfg.CloudinaryURL, cfg.AdminToken))
	mux.HandleFunc("/api/admin/products/", adminProductItemHandler(admin, cfg.AdminToken))
	mux.HandleFunc("/api/admin/giftcards", adminGiftCardsHandler(admin, cfg.AdminToken))
	mux.HandleFunc("/api/admin/giftcards/", adminGiftCardItemHandler(admin, cfg.AdminToken))
	mux.HandleFunc("/api/admin/users", adminUsersHandler(admin, cfg.AdminToken))
	mux.HandleFunc("/api/admin/users/", adminUsersHandler(admin, cfg.AdminToken))
	mux.HandleFunc("/api/admin/orders", adminOrdersHandler(admin, cfg.AdminToken))
	mux.HandleFunc("/api/admin/orders/", adminOrdersHandler(admin, cfg.AdminToken))
	mux.HandleFunc("/api/admin/stats", adminStatsHandler(admin, cfg.AdminToken))

	return mux
}
