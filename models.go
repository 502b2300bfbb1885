package main

// Category is one of the fixed genre identifiers used by the catalog.
type Category string

const (
	CategoryAction     Category = "action"
	CategoryAdventure  Category = "adventure"
	CategoryRPG        Category = "rpg"
	CategoryStrategy   Category = "strategy"
	CategorySports     Category = "sports"
	CategorySimulation Category = "simulation"
)

// Platform is a console the key can be redeemed on.
type Platform string

const (
	PlatformPS4  Platform = "PS4"
	PlatformPS5  Platform = "PS5"
	PlatformXbox Platform = "Xbox"
)

// Tag marks a product for a merchandising section.
type Tag string

const (
	TagNewRelease Tag = "newRelease"
	TagBestseller Tag = "bestseller"
	TagFeatured   Tag = "featured"
	TagDiscount   Tag = "discount"
	TagTrending   Tag = "trending"
)

// Product represents a game key in the shop, with localized title and
// description variants for Georgian, English and Russian.
// OriginalPrice, when non-zero, is the pre-discount baseline and is
// expected to exceed Price (discount display assumes it, nothing
// enforces it).
type Product struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	TitleKa       string     `json:"titleKa"`
	TitleRu       string     `json:"titleRu"`
	Description   string     `json:"description"`
	DescriptionKa string     `json:"descriptionKa"`
	DescriptionRu string     `json:"descriptionRu"`
	Price         float64    `json:"price"`
	OriginalPrice float64    `json:"originalPrice,omitempty"`
	Image         string     `json:"image"`
	Images        []string   `json:"images,omitempty"`
	Category      Category   `json:"category"`
	Platform      []Platform `json:"platform"`
	Tags          []Tag      `json:"tags"`
	Rating        float64    `json:"rating"`
	ReviewCount   int        `json:"reviewCount"`
	InStock       bool       `json:"inStock"`
	ReleaseDate   string     `json:"releaseDate"`
	Developer     string     `json:"developer"`
	Publisher     string     `json:"publisher"`
}

// HasPlatform reports whether the product is available on platform.
func (p *Product) HasPlatform(platform Platform) bool {
	for _, pl := range p.Platform {
		if pl == platform {
			return true
		}
	}
	return false
}

// HasTag reports whether the product carries the given tag.
func (p *Product) HasTag(tag Tag) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// CartItem pairs a product with a quantity. Quantity is always >= 1;
// dropping to zero removes the entry from the cart.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// AccountStatus of a signed-in storefront user.
type AccountStatus string

const (
	AccountActive    AccountStatus = "active"
	AccountPremium   AccountStatus = "premium"
	AccountSuspended AccountStatus = "suspended"
)

// User is the current storefront session identity. At most one is
// alive at a time; login/register are mocked and always produce a
// fresh record.
type User struct {
	ID            string        `json:"id"`
	Username      string        `json:"username"`
	Email         string        `json:"email"`
	Avatar        string        `json:"avatar,omitempty"`
	CreatedAt     string        `json:"createdAt"`
	AccountStatus AccountStatus `json:"accountStatus"`
}

// Purchase is one entry in a user's purchase history. Product fields
// are denormalized so history survives catalog edits.
type Purchase struct {
	ID            string   `json:"id"`
	ProductID     string   `json:"productId"`
	ProductTitle  string   `json:"productTitle"`
	ProductImage  string   `json:"productImage"`
	Platform      Platform `json:"platform"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice,omitempty"`
	PurchaseDate  string   `json:"purchaseDate"`
	DownloadKey   string   `json:"downloadKey"`
}

// ReferralData holds a user's referral program state. One per user;
// the code is regenerable but the counters are static mock data.
type ReferralData struct {
	ReferralCode        string  `json:"referralCode"`
	ReferralLink        string  `json:"referralLink"`
	InvitedUsers        int     `json:"invitedUsers"`
	SuccessfulReferrals int     `json:"successfulReferrals"`
	HasActiveDiscount   bool    `json:"hasActiveDiscount"`
	DiscountPercentage  float64 `json:"discountPercentage"`
}

// GiftCardStatus of an issued gift card.
type GiftCardStatus string

const (
	GiftCardActive  GiftCardStatus = "active"
	GiftCardUsed    GiftCardStatus = "used"
	GiftCardExpired GiftCardStatus = "expired"
)

// GiftCard is an admin-issued voucher. Status beyond creation is
// static mock data; there is no redemption flow.
type GiftCard struct {
	ID        string         `json:"id"`
	Value     float64        `json:"value"`
	Code      string         `json:"code"`
	Status    GiftCardStatus `json:"status"`
	CreatedAt string         `json:"createdAt"`
	UsedAt    string         `json:"usedAt,omitempty"`
	UsedBy    string         `json:"usedBy,omitempty"`
}

// StoreUserStatus of a registered user in the admin panel.
type StoreUserStatus string

const (
	StoreUserActive    StoreUserStatus = "active"
	StoreUserSuspended StoreUserStatus = "suspended"
	StoreUserBanned    StoreUserStatus = "banned"
)

// StoreUser is a registered customer as seen by the admin dashboard.
type StoreUser struct {
	ID             string          `json:"id"`
	Username       string          `json:"username"`
	Email          string          `json:"email"`
	RegisteredAt   string          `json:"registeredAt"`
	TotalPurchases int             `json:"totalPurchases"`
	TotalSpent     float64         `json:"totalSpent"`
	Status         StoreUserStatus `json:"status"`
}

// OrderStatus of a storefront order.
type OrderStatus string

const (
	OrderCompleted OrderStatus = "completed"
	OrderPending   OrderStatus = "pending"
	OrderRefunded  OrderStatus = "refunded"
	OrderCancelled OrderStatus = "cancelled"
)

// Order is one storefront order as seen by the admin dashboard.
type Order struct {
	ID            string      `json:"id"`
	UserID        string      `json:"userId"`
	Username      string      `json:"username"`
	ProductID     string      `json:"productId"`
	ProductTitle  string      `json:"productTitle"`
	Platform      string      `json:"platform"`
	Price         float64     `json:"price"`
	Status        OrderStatus `json:"status"`
	CreatedAt     string      `json:"createdAt"`
	PaymentMethod string      `json:"paymentMethod"`
}

// Stats are the aggregate numbers on the admin dashboard. Revenue
// counts completed orders only.
type Stats struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalOrders   int     `json:"totalOrders"`
	TotalUsers    int     `json:"totalUsers"`
	TotalProducts int     `json:"totalProducts"`
}
