package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// MemStore holds the full dataset in memory. Catalog entities are
// seeded once at construction and never mutated afterwards; user
// creation is the only write path.
type MemStore struct {
	mu         sync.RWMutex
	users      map[int]User
	categories map[int]Category
	products   map[int]Product
	posts      map[int]BlogPost

	nextUserID     int
	nextCategoryID int
	nextProductID  int
	nextPostID     int
}

func NewMemStore() *MemStore {
	s := &MemStore{
		users:          map[int]User{},
		categories:     map[int]Category{},
		products:       map[int]Product{},
		posts:          map[int]BlogPost{},
		nextUserID:     1,
		nextCategoryID: 1,
		nextProductID:  1,
		nextPostID:     1,
	}
	s.load(defaultSeed())
	return s
}

func (s *MemStore) load(seed seedData) {
	for _, c := range seed.Categories {
		c.ID = s.nextCategoryID
		s.nextCategoryID++
		s.categories[c.ID] = c
	}
	for _, p := range seed.Products {
		p.ID = s.nextProductID
		s.nextProductID++
		s.products[p.ID] = p
	}
	for _, b := range seed.BlogPosts {
		b.ID = s.nextPostID
		s.nextPostID++
		s.posts[b.ID] = b
	}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) GetUser(ctx context.Context, id int) (User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	return u, ok, nil
}

func (s *MemStore) GetUserByUsername(ctx context.Context, username string) (User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, true, nil
		}
	}
	return User{}, false, nil
}

func (s *MemStore) CreateUser(ctx context.Context, username, password string) (User, error) {
	username = strings.TrimSpace(username)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return User{}, ErrUsernameExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	u := User{ID: s.nextUserID, Username: username, PasswordHash: hash}
	s.nextUserID++
	s.users[u.ID] = u
	return u, nil
}

func (s *MemStore) VerifyUser(ctx context.Context, username, password string) (User, error) {
	u, ok, err := s.GetUserByUsername(ctx, username)
	if err != nil {
		return User{}, err
	}
	if !ok {
		return User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *MemStore) ListCategories(ctx context.Context) ([]Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Category, 0, len(s.categories))
	for _, c := range s.categories {
		c.ProductCount = s.countProductsLocked(c.ID)
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) GetCategoryBySlug(ctx context.Context, slug string) (Category, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.Slug == slug {
			c.ProductCount = s.countProductsLocked(c.ID)
			return c, true, nil
		}
	}
	return Category{}, false, nil
}

func (s *MemStore) countProductsLocked(categoryID int) int {
	n := 0
	for _, p := range s.products {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n
}

func (s *MemStore) ListProducts(ctx context.Context, q ProductQuery) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if matchProduct(p, q) {
			out = append(out, p)
		}
	}

	sortProductsNewestFirst(out)

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func matchProduct(p Product, q ProductQuery) bool {
	if q.CategoryID != nil && p.CategoryID != *q.CategoryID {
		return false
	}
	if q.Featured != nil && p.Featured != *q.Featured {
		return false
	}
	if q.Search != "" && !searchMatches(p, q.Search) {
		return false
	}
	return true
}

// searchMatches is a plain case-insensitive substring test over name,
// description and tags. No tokenization and no ranking.
func searchMatches(p Product, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), needle) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func sortProductsNewestFirst(products []Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
}

func (s *MemStore) GetProductBySlug(ctx context.Context, slug string) (Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.Slug == slug {
			return p, true, nil
		}
	}
	return Product{}, false, nil
}

func (s *MemStore) ListProductsByCategory(ctx context.Context, categorySlug string) ([]Product, error) {
	c, ok, err := s.GetCategoryBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Product{}, nil
	}
	return s.ListProducts(ctx, ProductQuery{CategoryID: &c.ID})
}

func (s *MemStore) ListBlogPosts(ctx context.Context, q BlogQuery) ([]BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]BlogPost, 0, len(s.posts))
	for _, b := range s.posts {
		if matchBlogPost(b, q) {
			out = append(out, b)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func matchBlogPost(b BlogPost, q BlogQuery) bool {
	if q.Featured != nil && b.Featured != *q.Featured {
		return false
	}
	if q.Category != "" && !strings.EqualFold(b.CategoryName, q.Category) {
		return false
	}
	return true
}

func (s *MemStore) GetBlogPostBySlug(ctx context.Context, slug string) (BlogPost, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.posts {
		if b.Slug == slug {
			return b, true, nil
		}
	}
	return BlogPost{}, false, nil
}
