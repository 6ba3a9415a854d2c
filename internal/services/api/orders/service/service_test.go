package service

import (
	"context"
	"errors"
	"testing"

	"davenport/internal/modkit/repokit"
	perr "davenport/internal/platform/errors"
	kit "davenport/internal/platform/testkit"
	"davenport/internal/services/api/orders/domain"
	"davenport/internal/services/api/orders/repo"
)

type fakeRepo struct {
	inserted    []repo.RowOrder
	insertedFor map[string][]repo.RowItem
	itemsErr    error

	userRows []repo.RowOrder
	allRows  []repo.RowOrder
	lineRows []repo.RowItem
	getRow   repo.RowOrder
	getErr   error

	updated []string
}

func (f *fakeRepo) InsertOrder(_ context.Context, row repo.RowOrder) (repo.RowOrder, error) {
	f.inserted = append(f.inserted, row)
	row.CreatedAt = "2026-02-01T00:00:00Z"
	return row, nil
}

func (f *fakeRepo) InsertItems(_ context.Context, orderID string, items []repo.RowItem) error {
	if f.itemsErr != nil {
		return f.itemsErr
	}
	if f.insertedFor == nil {
		f.insertedFor = map[string][]repo.RowItem{}
	}
	f.insertedFor[orderID] = items
	return nil
}

func (f *fakeRepo) Get(context.Context, string) (repo.RowOrder, error) {
	return f.getRow, f.getErr
}

func (f *fakeRepo) ListByUser(context.Context, string) ([]repo.RowOrder, error) {
	return f.userRows, nil
}

func (f *fakeRepo) ListAll(context.Context) ([]repo.RowOrder, error) {
	return f.allRows, nil
}

func (f *fakeRepo) ListItemsByOrders(context.Context, []string) ([]repo.RowItem, error) {
	return f.lineRows, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id, status string) (repo.RowOrder, error) {
	f.updated = append(f.updated, id+"/"+status)
	return repo.RowOrder{ID: id, Status: status}, nil
}

type fakeBinder struct{ r repo.Repo }

func (b fakeBinder) Bind(repokit.Queryer) repo.Repo { return b.r }

// fakeTx counts transactions and runs fn inline
type fakeTx struct{ txs int }

func (f *fakeTx) Tx(ctx context.Context, fn func(q repokit.Queryer) error) error {
	f.txs++
	return fn(nil)
}
func (f *fakeTx) Exec(context.Context, string, ...any) (repokit.CommandTag, error) {
	return nil, nil
}
func (f *fakeTx) Query(context.Context, string, ...any) (repokit.Rows, error) { return nil, nil }
func (f *fakeTx) QueryRow(context.Context, string, ...any) repokit.Row        { return nil }

func validInput() domain.CreateOrderInput {
	return domain.CreateOrderInput{
		UserID:          "u-1",
		ShippingAddress: "Storgatan 1",
		BillingAddress:  "Storgatan 1",
		Items: []domain.OrderItem{
			{ProductID: "p-1", Quantity: 2, Price: 100},
			{ProductID: "p-2", Quantity: 1, Price: 50},
		},
	}
}

func TestNew_PanicsOnMissingDeps(t *testing.T) {
	t.Parallel()
	kit.MustPanic(t, func() { New(nil, fakeBinder{r: &fakeRepo{}}) })
	kit.MustPanic(t, func() { New(&fakeTx{}, nil) })
}

func TestCreate_PlacesPendingOrderWithDerivedTotal(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{}
	tx := &fakeTx{}
	s := New(tx, fakeBinder{r: f})

	got, err := s.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if tx.txs != 1 {
		t.Fatalf("ran %d transactions want 1", tx.txs)
	}

	if len(f.inserted) != 1 {
		t.Fatalf("inserted %d orders", len(f.inserted))
	}
	row := f.inserted[0]
	if row.ID == "" {
		t.Fatal("order id not minted")
	}
	if row.Status != domain.StatusPending {
		t.Fatalf("status = %q want pending", row.Status)
	}
	if row.TotalAmount != 250 {
		t.Fatalf("total = %v want 250", row.TotalAmount)
	}

	lines := f.insertedFor[row.ID]
	if len(lines) != 2 || lines[0].ProductID != "p-1" || lines[1].Quantity != 1 {
		t.Fatalf("lines = %#v", lines)
	}

	if got.UserID != "u-1" || got.Status != domain.StatusPending || len(got.Items) != 2 {
		t.Fatalf("got %#v", got)
	}
	if got.CreatedAt == "" {
		t.Fatal("created_at not surfaced from the row")
	}
}

func TestCreate_MissingUserRejected(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{}
	tx := &fakeTx{}
	s := New(tx, fakeBinder{r: f})

	in := validInput()
	in.UserID = ""
	_, err := s.Create(context.Background(), in)
	if !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("err = %v want unauthorized", err)
	}
	if tx.txs != 0 {
		t.Fatalf("transaction opened for rejected input")
	}
}

func TestCreate_ItemInsertFailureAbortsTheOrder(t *testing.T) {
	t.Parallel()

	boom := errors.New("order_items insert failed")
	f := &fakeRepo{itemsErr: boom}
	s := New(&fakeTx{}, fakeBinder{r: f})

	_, err := s.Create(context.Background(), validInput())
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v want %v", err, boom)
	}
}

func TestList_AttachesLinesToTheirOrders(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{
		userRows: []repo.RowOrder{
			{ID: "o-2", UserID: "u-1", CreatedAt: "2026-02-02T00:00:00Z"},
			{ID: "o-1", UserID: "u-1", CreatedAt: "2026-02-01T00:00:00Z"},
		},
		lineRows: []repo.RowItem{
			{OrderID: "o-1", ProductID: "p-1", Quantity: 1, Price: 10},
			{OrderID: "o-2", ProductID: "p-2", Quantity: 2, Price: 20},
			{OrderID: "o-2", ProductID: "p-3", Quantity: 1, Price: 5},
		},
	}
	s := New(&fakeTx{}, fakeBinder{r: f})

	got, err := s.List(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].ID != "o-2" || got[1].ID != "o-1" {
		t.Fatalf("order of orders lost: %#v", got)
	}
	if len(got[0].Items) != 2 || len(got[1].Items) != 1 {
		t.Fatalf("lines misattached: %#v", got)
	}
	if got[1].Items[0].ProductID != "p-1" {
		t.Fatalf("o-1 items = %#v", got[1].Items)
	}
}

func TestList_MissingUserRejected(t *testing.T) {
	t.Parallel()

	s := New(&fakeTx{}, fakeBinder{r: &fakeRepo{}})
	_, err := s.List(context.Background(), "")
	if !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("err = %v want unauthorized", err)
	}
}

func TestGet_UnknownOrderBubblesNotFound(t *testing.T) {
	t.Parallel()

	s := New(&fakeTx{}, fakeBinder{r: &fakeRepo{getErr: perr.ErrNotFound}})
	_, err := s.Get(context.Background(), "o-nope")
	if !errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("err = %v want ErrNotFound", err)
	}
}

func TestUpdateStatus_UnknownStatusRejected(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{}
	s := New(&fakeTx{}, fakeBinder{r: f})

	_, err := s.UpdateStatus(context.Background(), "o-1", "teleported")
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("err = %v want invalid argument", err)
	}
	if len(f.updated) != 0 {
		t.Fatalf("status written despite rejection: %v", f.updated)
	}
}

func TestCancel_MovesOrderToCancelled(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{}
	s := New(&fakeTx{}, fakeBinder{r: f})

	got, err := s.Cancel(context.Background(), "o-1")
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if len(f.updated) != 1 || f.updated[0] != "o-1/cancelled" {
		t.Fatalf("updated = %v", f.updated)
	}
	if got.Status != domain.StatusCancelled {
		t.Fatalf("status = %q", got.Status)
	}
}
