package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	catalogdom "davenport/internal/services/api/catalog/domain"
)

// Strategy is one stage of the selector cascade. Attempt may consult the
// accumulated cascade state but must not mutate it; Select owns admission.
type Strategy interface {
	Name() string
	Attempt(ctx context.Context, c *cascade) ([]catalogdom.Product, error)
}

// collaborative recommends from categories the user has shown affinity for,
// excluding the products that produced the affinity
type collaborative struct{ svc *Svc }

func (g collaborative) Name() string { return "collaborative" }

func (g collaborative) Attempt(ctx context.Context, c *cascade) ([]catalogdom.Product, error) {
	uid := c.in.UserID
	if uid == "" {
		return nil, nil
	}

	var reviewed, wished, touched []string
	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		var err error
		reviewed, err = g.svc.signals.RecentHighReviews(gctx, uid)
		return err
	})
	grp.Go(func() error {
		var err error
		wished, err = g.svc.signals.RecentWishlist(gctx, uid)
		return err
	})
	grp.Go(func() error {
		var err error
		touched, err = g.svc.signals.RecentInteractions(gctx, uid)
		return err
	})
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	liked := dedupe(reviewed, wished, touched)
	if len(liked) == 0 {
		return nil, nil
	}

	likedProducts, err := g.svc.catalog.ListByIDs(ctx, liked)
	if err != nil {
		return nil, err
	}
	categories := categoriesOf(likedProducts)
	if len(categories) == 0 {
		return nil, nil
	}

	// never resurface the affinity products or anything already picked
	exclude := append([]string(nil), liked...)
	for id := range c.seen {
		exclude = append(exclude, id)
	}
	return g.svc.catalog.ListByCategories(ctx, categories, exclude, c.remaining())
}

// contentBased recommends same-category products priced near the reference
type contentBased struct{ svc *Svc }

func (g contentBased) Name() string { return "content-based" }

func (g contentBased) Attempt(ctx context.Context, c *cascade) ([]catalogdom.Product, error) {
	pid := c.in.ProductID
	if pid == "" {
		return nil, nil
	}
	ref, err := g.svc.catalog.Get(ctx, pid)
	if err != nil {
		return nil, err
	}
	return g.svc.catalog.ListSimilar(ctx, ref.CategoryID, ref.Price*priceBandLow, ref.Price*priceBandHigh, pid, c.remaining())
}

// trending recommends the most interacted-with products of the trailing week
type trending struct{ svc *Svc }

func (g trending) Name() string { return "trending" }

func (g trending) Attempt(ctx context.Context, c *cascade) ([]catalogdom.Product, error) {
	since := g.svc.now().Add(-trendingWindow)
	ranked, err := g.svc.signals.Trending(ctx, since, c.remaining())
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(ranked))
	for _, t := range ranked {
		ids = append(ids, t.ProductID)
	}
	// ListByIDs preserves the rank order
	return g.svc.catalog.ListByIDs(ctx, ids)
}

// featured is the catch-all floor of the cascade
type featured struct{ svc *Svc }

func (g featured) Name() string { return "featured" }

func (g featured) Attempt(ctx context.Context, c *cascade) ([]catalogdom.Product, error) {
	return g.svc.catalog.ListFeatured(ctx, c.remaining())
}

// dedupe unions id lists preserving first occurrence
func dedupe(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, l := range lists {
		for _, id := range l {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

// categoriesOf collects distinct category ids preserving first occurrence
func categoriesOf(products []catalogdom.Product) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range products {
		if p.CategoryID == "" {
			continue
		}
		if _, dup := seen[p.CategoryID]; dup {
			continue
		}
		seen[p.CategoryID] = struct{}{}
		out = append(out, p.CategoryID)
	}
	return out
}
