package store

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrUsernameExists     = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash []byte `json:"-"`
}

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`

	// ProductCount is derived from actual product membership on read,
	// never stored.
	ProductCount int `json:"productCount"`
}

type Product struct {
	ID               int              `json:"id"`
	Name             string           `json:"name"`
	Slug             string           `json:"slug"`
	Description      string           `json:"description"`
	ShortDescription string           `json:"shortDescription"`
	Price            decimal.Decimal  `json:"price"`
	SalePrice        *decimal.Decimal `json:"salePrice"`
	ImageURL         string           `json:"imageUrl"`
	Thumbnails       []string         `json:"thumbnails"`
	CategoryID       int              `json:"categoryId"`
	Featured         bool             `json:"featured"`
	InStock          bool             `json:"inStock"`
	Rating           decimal.Decimal  `json:"rating"`
	ReviewCount      int              `json:"reviewCount"`
	Tags             []string         `json:"tags"`
	Features         []string         `json:"features"`
	CreatedAt        time.Time        `json:"createdAt"`
}

// EffectivePrice is the unit price a shopper actually pays: the sale
// price when one is set, the base price otherwise.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

type BlogPost struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Excerpt      string    `json:"excerpt"`
	Content      string    `json:"content"`
	ImageURL     string    `json:"imageUrl"`
	CategoryName string    `json:"categoryName"`
	PublishedAt  time.Time `json:"publishedAt"`
	ReadTime     int       `json:"readTime"`
	Featured     bool      `json:"featured"`
}

// ProductQuery filters compose with logical AND; a nil/zero field
// imposes no constraint.
type ProductQuery struct {
	CategoryID *int
	Featured   *bool
	Limit      int
	Search     string
}

type BlogQuery struct {
	Featured *bool
	Limit    int
	Category string
}

type Store interface {
	Ping(ctx context.Context) error

	GetUser(ctx context.Context, id int) (User, bool, error)
	GetUserByUsername(ctx context.Context, username string) (User, bool, error)
	CreateUser(ctx context.Context, username, password string) (User, error)
	VerifyUser(ctx context.Context, username, password string) (User, error)

	ListCategories(ctx context.Context) ([]Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (Category, bool, error)

	ListProducts(ctx context.Context, q ProductQuery) ([]Product, error)
	GetProductBySlug(ctx context.Context, slug string) (Product, bool, error)
	ListProductsByCategory(ctx context.Context, categorySlug string) ([]Product, error)

	ListBlogPosts(ctx context.Context, q BlogQuery) ([]BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (BlogPost, bool, error)
}
