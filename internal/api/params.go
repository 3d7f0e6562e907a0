package api

import (
	"net/url"

	"github.com/spf13/cast"

	"DigiStore/internal/store"
)

// Query parameters arrive as loose strings. Coercion is deliberately
// forgiving: an unparsable categoryId or limit becomes zero and
// imposes no constraint instead of failing the request.

func productQueryFromValues(v url.Values) store.ProductQuery {
	var q store.ProductQuery

	if id := cast.ToInt(v.Get("categoryId")); id > 0 {
		q.CategoryID = &id
	}
	q.Featured = featuredFlag(v)
	q.Limit = cast.ToInt(v.Get("limit"))
	q.Search = v.Get("search")

	return q
}

// featuredFlag constrains on presence, not value: a bare "featured="
// means false, only "featured=true" means true.
func featuredFlag(v url.Values) *bool {
	if _, ok := v["featured"]; !ok {
		return nil
	}
	f := v.Get("featured") == "true"
	return &f
}

func blogQueryFromValues(v url.Values) store.BlogQuery {
	var q store.BlogQuery

	q.Featured = featuredFlag(v)
	q.Limit = cast.ToInt(v.Get("limit"))
	q.Category = v.Get("category")

	return q
}

func searchQueryFromValues(v url.Values) store.ProductQuery {
	q := store.ProductQuery{
		Search: v.Get("q"),
		Limit:  cast.ToInt(v.Get("limit")),
	}
	if q.Limit <= 0 {
		q.Limit = searchDefaultLimit
	}
	return q
}
