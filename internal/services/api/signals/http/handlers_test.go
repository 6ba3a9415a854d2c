package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	pnet "davenport/internal/platform/net"
	phttp "davenport/internal/platform/net/http"
	"davenport/internal/services/api/signals/domain"
)

// fakeSignals records wishlist calls; reads are unused here
type fakeSignals struct {
	wishlisted []string
	removed    []string
}

func (f *fakeSignals) RecentHighReviews(context.Context, string) ([]string, error) { return nil, nil }
func (f *fakeSignals) RecentWishlist(context.Context, string) ([]string, error)    { return nil, nil }
func (f *fakeSignals) RecentInteractions(context.Context, string) ([]string, error) {
	return nil, nil
}
func (f *fakeSignals) Trending(context.Context, time.Time, int) ([]domain.TrendingProduct, error) {
	return nil, nil
}
func (f *fakeSignals) RecordInteraction(context.Context, domain.RecordInteractionInput) error {
	return nil
}
func (f *fakeSignals) AddReview(context.Context, domain.AddReviewInput) error { return nil }

func (f *fakeSignals) AddWishlist(_ context.Context, userID, productID string) error {
	f.wishlisted = append(f.wishlisted, userID+"/"+productID)
	return nil
}

func (f *fakeSignals) RemoveWishlist(_ context.Context, userID, productID string) error {
	f.removed = append(f.removed, userID+"/"+productID)
	return nil
}

func wishlistPut(t *testing.T, f *fakeSignals, target string, ctxUser string) *httptest.ResponseRecorder {
	t.Helper()
	mux := chi.NewMux()
	Register(phttp.AdaptChi(mux), f)

	req := httptest.NewRequest(http.MethodPut, target, strings.NewReader(`{}`))
	if ctxUser != "" {
		req = req.WithContext(pnet.WithUser(req.Context(), ctxUser))
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestWishlist_AuthenticatedUserWinsOverQueryParam(t *testing.T) {
	t.Parallel()

	f := &fakeSignals{}
	rec := wishlistPut(t, f, "/wishlist/p-1?user_id=u-query", "u-ctx")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
	}
	if len(f.wishlisted) != 1 || f.wishlisted[0] != "u-ctx/p-1" {
		t.Fatalf("wishlisted = %v want [u-ctx/p-1]", f.wishlisted)
	}
}

func TestWishlist_QueryParamFallbackWithoutAuth(t *testing.T) {
	t.Parallel()

	f := &fakeSignals{}
	rec := wishlistPut(t, f, "/wishlist/p-1?user_id=u-query", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
	}
	if len(f.wishlisted) != 1 || f.wishlisted[0] != "u-query/p-1" {
		t.Fatalf("wishlisted = %v want [u-query/p-1]", f.wishlisted)
	}
}

func TestWishlist_MissingUserRejected(t *testing.T) {
	t.Parallel()

	f := &fakeSignals{}
	rec := wishlistPut(t, f, "/wishlist/p-1", "")

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
	}
	if len(f.wishlisted) != 0 {
		t.Fatalf("wishlisted = %v want none", f.wishlisted)
	}
}
