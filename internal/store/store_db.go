package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second

	pgUniqueViolation = "23505"
)

// PostgresStore serves the same read-mostly catalog out of Postgres.
// String-array fields (thumbnails, tags, features) are stored as jsonb.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

// EnsureSchema creates the tables if they do not exist and loads the
// seed data into an empty catalog.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, schemaSQL)
	if err != nil {
		return err
	}

	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM products`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return s.seed(ctx, defaultSeed())
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password_hash BYTEA NOT NULL
);
CREATE TABLE IF NOT EXISTS categories (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	slug TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	icon TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS products (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	slug TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL,
	short_description TEXT NOT NULL DEFAULT '',
	price NUMERIC(10,2) NOT NULL,
	sale_price NUMERIC(10,2),
	image_url TEXT NOT NULL DEFAULT '',
	thumbnails JSONB NOT NULL DEFAULT '[]',
	category_id INTEGER NOT NULL REFERENCES categories(id),
	featured BOOLEAN NOT NULL DEFAULT FALSE,
	in_stock BOOLEAN NOT NULL DEFAULT TRUE,
	rating NUMERIC(2,1) NOT NULL DEFAULT 0,
	review_count INTEGER NOT NULL DEFAULT 0,
	tags JSONB NOT NULL DEFAULT '[]',
	features JSONB NOT NULL DEFAULT '[]',
	created_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS blog_posts (
	id SERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	slug TEXT NOT NULL UNIQUE,
	excerpt TEXT NOT NULL,
	content TEXT NOT NULL,
	image_url TEXT NOT NULL DEFAULT '',
	category_name TEXT NOT NULL,
	published_at TIMESTAMPTZ NOT NULL,
	read_time INTEGER NOT NULL DEFAULT 5,
	featured BOOLEAN NOT NULL DEFAULT FALSE
);
`

func (s *PostgresStore) seed(ctx context.Context, seed seedData) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, c := range seed.Categories {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO categories (name, slug, description, icon)
			VALUES ($1, $2, $3, $4)
		`, c.Name, c.Slug, c.Description, c.Icon)
		if err != nil {
			return err
		}
	}

	for _, p := range seed.Products {
		var sale any
		if p.SalePrice != nil {
			sale = p.SalePrice.String()
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO products (
				name, slug, description, short_description, price, sale_price,
				image_url, thumbnails, category_id, featured, in_stock,
				rating, review_count, tags, features, created_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		`, p.Name, p.Slug, p.Description, p.ShortDescription, p.Price.String(), sale,
			p.ImageURL, mustJSON(p.Thumbnails), p.CategoryID, p.Featured, p.InStock,
			p.Rating.String(), p.ReviewCount, mustJSON(p.Tags), mustJSON(p.Features), p.CreatedAt)
		if err != nil {
			return err
		}
	}

	for _, b := range seed.BlogPosts {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO blog_posts (
				title, slug, excerpt, content, image_url, category_name,
				published_at, read_time, featured
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		`, b.Title, b.Slug, b.Excerpt, b.Content, b.ImageURL, b.CategoryName,
			b.PublishedAt, b.ReadTime, b.Featured)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func mustJSON(v []string) []byte {
	if v == nil {
		v = []string{}
	}
	b, _ := json.Marshal(v)
	return b
}

func (s *PostgresStore) GetUser(ctx context.Context, id int) (User, bool, error) {
	var u User
	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			SELECT id, username, password_hash FROM users WHERE id = $1
		`, id).Scan(&u.ID, &u.Username, &u.PasswordHash)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, false, nil
	}
	if err != nil {
		return User{}, false, err
	}
	return u, true, nil
}

func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (User, bool, error) {
	var u User
	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			SELECT id, username, password_hash FROM users WHERE username = $1
		`, username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, false, nil
	}
	if err != nil {
		return User{}, false, err
	}
	return u, true, nil
}

func (s *PostgresStore) CreateUser(ctx context.Context, username, password string) (User, error) {
	username = strings.TrimSpace(username)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	u := User{Username: username, PasswordHash: hash}
	err = withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			INSERT INTO users (username, password_hash)
			VALUES ($1, $2)
			RETURNING id
		`, username, hash).Scan(&u.ID)
	})

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return User{}, ErrUsernameExists
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *PostgresStore) VerifyUser(ctx context.Context, username, password string) (User, error) {
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

func (s *PostgresStore) ListCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT c.id, c.name, c.slug, c.description, c.icon,
			       (SELECT count(*) FROM products p WHERE p.category_id = c.id)
			FROM categories c
			ORDER BY c.id ASC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Category, 0, 8)
		for rows.Next() {
			var c Category
			if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Icon, &c.ProductCount); err != nil {
				return err
			}
			out = append(out, c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) GetCategoryBySlug(ctx context.Context, slug string) (Category, bool, error) {
	var c Category
	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			SELECT c.id, c.name, c.slug, c.description, c.icon,
			       (SELECT count(*) FROM products p WHERE p.category_id = c.id)
			FROM categories c
			WHERE c.slug = $1
		`, slug).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Icon, &c.ProductCount)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return Category{}, false, nil
	}
	if err != nil {
		return Category{}, false, err
	}
	return c, true, nil
}

const productColumns = `
	id, name, slug, description, short_description, price, sale_price,
	image_url, thumbnails, category_id, featured, in_stock,
	rating, review_count, tags, features, created_at
`

func (s *PostgresStore) ListProducts(ctx context.Context, q ProductQuery) ([]Product, error) {
	where := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if q.CategoryID != nil {
		args = append(args, *q.CategoryID)
		where = append(where, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if q.Featured != nil {
		args = append(args, *q.Featured)
		where = append(where, fmt.Sprintf("featured = $%d", len(args)))
	}
	if q.Search != "" {
		args = append(args, "%"+escapeLike(q.Search)+"%")
		n := len(args)
		where = append(where, fmt.Sprintf(
			"(name ILIKE $%d OR description ILIKE $%d"+
				" OR EXISTS (SELECT 1 FROM jsonb_array_elements_text(tags) tag WHERE tag ILIKE $%d))",
			n, n, n))
	}

	query := "SELECT " + productColumns + " FROM products"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id ASC"
	if q.Limit > 0 {
		args = append(args, q.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	var out []Product
	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Product, 0, 16)
		for rows.Next() {
			p, err := scanProduct(rows)
			if err != nil {
				return err
			}
			out = append(out, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// escapeLike neutralizes LIKE metacharacters so the search term stays
// a literal substring test, matching the in-memory store.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var (
		p          Product
		sale       decimal.NullDecimal
		thumbnails []byte
		tags       []byte
		features   []byte
	)

	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.ShortDescription,
		&p.Price, &sale, &p.ImageURL, &thumbnails, &p.CategoryID,
		&p.Featured, &p.InStock, &p.Rating, &p.ReviewCount,
		&tags, &features, &p.CreatedAt,
	)
	if err != nil {
		return Product{}, err
	}

	if sale.Valid {
		p.SalePrice = &sale.Decimal
	}
	if err := json.Unmarshal(thumbnails, &p.Thumbnails); err != nil {
		return Product{}, err
	}
	if err := json.Unmarshal(tags, &p.Tags); err != nil {
		return Product{}, err
	}
	if err := json.Unmarshal(features, &p.Features); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *PostgresStore) GetProductBySlug(ctx context.Context, slug string) (Product, bool, error) {
	var (
		p   Product
		err error
	)
	err = withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		row := s.db.QueryRowContext(ctx,
			"SELECT "+productColumns+" FROM products WHERE slug = $1", slug)
		p, err = scanProduct(row)
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, false, nil
	}
	if err != nil {
		return Product{}, false, err
	}
	return p, true, nil
}

func (s *PostgresStore) ListProductsByCategory(ctx context.Context, categorySlug string) ([]Product, error) {
	c, ok, err := s.GetCategoryBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Product{}, nil
	}
	return s.ListProducts(ctx, ProductQuery{CategoryID: &c.ID})
}

const blogColumns = `
	id, title, slug, excerpt, content, image_url, category_name,
	published_at, read_time, featured
`

func (s *PostgresStore) ListBlogPosts(ctx context.Context, q BlogQuery) ([]BlogPost, error) {
	where := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if q.Featured != nil {
		args = append(args, *q.Featured)
		where = append(where, fmt.Sprintf("featured = $%d", len(args)))
	}
	if q.Category != "" {
		args = append(args, q.Category)
		where = append(where, fmt.Sprintf("lower(category_name) = lower($%d)", len(args)))
	}

	query := "SELECT " + blogColumns + " FROM blog_posts"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY published_at DESC, id ASC"
	if q.Limit > 0 {
		args = append(args, q.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	var out []BlogPost
	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]BlogPost, 0, 8)
		for rows.Next() {
			var b BlogPost
			err := rows.Scan(
				&b.ID, &b.Title, &b.Slug, &b.Excerpt, &b.Content, &b.ImageURL,
				&b.CategoryName, &b.PublishedAt, &b.ReadTime, &b.Featured,
			)
			if err != nil {
				return err
			}
			out = append(out, b)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) GetBlogPostBySlug(ctx context.Context, slug string) (BlogPost, bool, error) {
	var b BlogPost
	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx,
			"SELECT "+blogColumns+" FROM blog_posts WHERE slug = $1", slug).Scan(
			&b.ID, &b.Title, &b.Slug, &b.Excerpt, &b.Content, &b.ImageURL,
			&b.CategoryName, &b.PublishedAt, &b.ReadTime, &b.Featured,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return BlogPost{}, false, nil
	}
	if err != nil {
		return BlogPost{}, false, err
	}
	return b, true, nil
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
