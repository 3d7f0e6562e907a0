package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"DigiStore/internal/store"
	"DigiStore/pkg/kit"
)

const searchDefaultLimit = 20

type Server struct {
	Store store.Store
	Log   *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()

		if err := s.Store.Ping(ctx); err != nil {
			if s.Log != nil {
				s.Log.Warn("readyz failed", zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready")
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api", func(rr chi.Router) {
		rr.Get("/categories", s.listCategories)
		rr.Get("/categories/{slug}", s.getCategory)
		rr.Get("/categories/{slug}/products", s.listCategoryProducts)

		rr.Get("/products", s.listProducts)
		rr.Get("/product/{slug}", s.getProduct)

		rr.Get("/blog", s.listBlogPosts)
		rr.Get("/blog/{slug}", s.getBlogPost)

		rr.Get("/search", s.search)
	})

	return r
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.Store.ListCategories(r.Context())
	if err != nil {
		s.logError("list categories failed", err)
		kit.WriteError(w, r, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	kit.WriteJSON(w, http.StatusOK, categories)
}

func (s *Server) getCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	c, ok, err := s.Store.GetCategoryBySlug(r.Context(), slug)
	if err != nil {
		s.logError("get category failed", err, zap.String("slug", slug))
		kit.WriteError(w, r, http.StatusInternalServerError, "Failed to fetch category")
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Category not found")
		return
	}
	kit.WriteJSON(w, http.StatusOK, c)
}

func (s *Server) listCategoryProducts(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	products, err := s.Store.ListProductsByCategory(r.Context(), slug)
	if err != nil {
		s.logError("list category products failed", err, zap.String("slug", slug))
		kit.WriteError(w, r, http.StatusInternalServerError, "Failed to fetch category products")
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	q := productQueryFromValues(r.URL.Query())

	products, err := s.Store.ListProducts(r.Context(), q)
	if err != nil {
		s.logError("list products failed", err)
		kit.WriteError(w, r, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	p, ok, err := s.Store.GetProductBySlug(r.Context(), slug)
	if err != nil {
		s.logError("get product failed", err, zap.String("slug", slug))
		kit.WriteError(w, r, http.StatusInternalServerError, "Failed to fetch product")
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Product not found")
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) listBlogPosts(w http.ResponseWriter, r *http.Request) {
	q := blogQueryFromValues(r.URL.Query())

	posts, err := s.Store.ListBlogPosts(r.Context(), q)
	if err != nil {
		s.logError("list blog posts failed", err)
		kit.WriteError(w, r, http.StatusInternalServerError, "Failed to fetch blog posts")
		return
	}
	kit.WriteJSON(w, http.StatusOK, posts)
}

func (s *Server) getBlogPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	b, ok, err := s.Store.GetBlogPostBySlug(r.Context(), slug)
	if err != nil {
		s.logError("get blog post failed", err, zap.String("slug", slug))
		kit.WriteError(w, r, http.StatusInternalServerError, "Failed to fetch blog post")
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Blog post not found")
		return
	}
	kit.WriteJSON(w, http.StatusOK, b)
}

// search answers an empty result, not an error, for a missing query.
func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	q := searchQueryFromValues(r.URL.Query())
	if q.Search == "" {
		kit.WriteJSON(w, http.StatusOK, []store.Product{})
		return
	}

	products, err := s.Store.ListProducts(r.Context(), q)
	if err != nil {
		s.logError("search products failed", err)
		kit.WriteError(w, r, http.StatusInternalServerError, "Failed to search products")
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) logError(msg string, err error, fields ...zap.Field) {
	if s.Log == nil {
		return
	}
	s.Log.Error(msg, append([]zap.Field{zap.Error(err)}, fields...)...)
}
