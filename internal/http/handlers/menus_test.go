package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/rasahub/rasahub/internal/cache"
	"github.com/rasahub/rasahub/internal/domain/menu"
	"github.com/rasahub/rasahub/internal/http/handlers"
	"github.com/rasahub/rasahub/internal/storage"
)

type fakeMenuStore struct {
	listFn   func(ctx context.Context) ([]menu.Menu, error)
	getFn    func(ctx context.Context, id string) (menu.Menu, error)
	insertFn func(ctx context.Context, m menu.Menu) (string, error)
	updateFn func(ctx context.Context, id string, m menu.Menu) error
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeMenuStore) List(ctx context.Context) ([]menu.Menu, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func (f *fakeMenuStore) GetByID(ctx context.Context, id string) (menu.Menu, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return menu.Menu{}, nil
}

func (f *fakeMenuStore) Insert(ctx context.Context, m menu.Menu) (string, error) {
	if f.insertFn != nil {
		return f.insertFn(ctx, m)
	}
	return "m-1", nil
}

func (f *fakeMenuStore) Update(ctx context.Context, id string, m menu.Menu) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, m)
	}
	return nil
}

func (f *fakeMenuStore) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func newMenusHandler(t *testing.T, store *fakeMenuStore, listing *cache.MenuListing) *handlers.MenusHandler {
	t.Helper()

	saver, err := storage.NewSaver(t.TempDir())
	if err != nil {
		t.Fatalf("saver setup failed: %v", err)
	}

	return handlers.NewMenusHandler(store, saver, listing)
}

var validMenuForm = url.Values{
	"namaMenu":      {"Nasi Goreng"},
	"hargaMenu":     {"25000"},
	"deskripsiMenu": {"Nasi goreng spesial"},
	"kategoriMenu":  {"Makanan"},
}

func TestAddMenuHandler(t *testing.T) {
	tests := []struct {
		name         string
		form         url.Values
		storeSetup   func(*fakeMenuStore)
		wantLocation string
		wantInserted bool
	}{
		{
			name:         "success",
			form:         validMenuForm,
			wantLocation: "/kelolaMenu",
			wantInserted: true,
		},
		{
			name:         "missing_fields",
			form:         url.Values{"namaMenu": {"Nasi Goreng"}},
			wantLocation: "/kelolaMenu",
		},
		{
			name: "store_error",
			form: validMenuForm,
			storeSetup: func(f *fakeMenuStore) {
				f.insertFn = func(ctx context.Context, m menu.Menu) (string, error) {
					return "", errors.New("store down")
				}
			},
			wantLocation: "/kelolaMenu",
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			store := &fakeMenuStore{}

			inserted := false
			store.insertFn = func(ctx context.Context, m menu.Menu) (string, error) {
				inserted = true

				if m.Name != "Nasi Goreng" || m.Category != "Makanan" {
					t.Errorf("unexpected menu payload: %+v", m)
				}
				return "m-1", nil
			}

			if tt.storeSetup != nil {
				tt.storeSetup(store)
			}

			listing := cache.NewMenuListing(time.Minute)
			listing.Set([]menu.Menu{{ID: "stale"}})

			h := newMenusHandler(t, store, listing)
			r := setupRouter(http.MethodPost, "/tambahMenu", h.Add)

			w := postForm(r, "/tambahMenu", tt.form)

			if w.Code != http.StatusSeeOther {
				t.Fatalf("got status %d, want 303, body=%s", w.Code, w.Body.String())
			}
			if loc := w.Header().Get("Location"); loc != tt.wantLocation {
				t.Fatalf("got location %q, want %q", loc, tt.wantLocation)
			}
			if inserted != tt.wantInserted {
				t.Fatalf("inserted = %v, want %v", inserted, tt.wantInserted)
			}

			if tt.wantInserted {
				if _, ok := listing.Get(); ok {
					t.Fatal("expected listing snapshot invalidated after insert")
				}
			}
		})
	}
}

func TestUpdateMenuHandler(t *testing.T) {
	tests := []struct {
		name       string
		storeSetup func(*fakeMenuStore)
	}{
		{
			name: "success",
		},
		{
			name: "not_found",
			storeSetup: func(f *fakeMenuStore) {
				f.updateFn = func(ctx context.Context, id string, m menu.Menu) error {
					return menu.ErrNotFound
				}
			},
		},
		{
			name: "store_error",
			storeSetup: func(f *fakeMenuStore) {
				f.updateFn = func(ctx context.Context, id string, m menu.Menu) error {
					return errors.New("store down")
				}
			},
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			store := &fakeMenuStore{}

			var gotID string
			store.updateFn = func(ctx context.Context, id string, m menu.Menu) error {
				gotID = id
				return nil
			}

			if tt.storeSetup != nil {
				tt.storeSetup(store)
			}

			h := newMenusHandler(t, store, cache.NewMenuListing(time.Minute))
			r := setupRouter(http.MethodPost, "/editMenu/:id", h.Update)

			w := postForm(r, "/editMenu/abc123", validMenuForm)

			if w.Code != http.StatusSeeOther {
				t.Fatalf("got status %d, want 303", w.Code)
			}
			if loc := w.Header().Get("Location"); loc != "/kelolaMenu" {
				t.Fatalf("got location %q, want /kelolaMenu", loc)
			}
			if tt.name == "success" && gotID != "abc123" {
				t.Fatalf("update called with id %q, want abc123", gotID)
			}
		})
	}
}

func TestDeleteMenuHandler(t *testing.T) {
	tests := []struct {
		name       string
		storeSetup func(*fakeMenuStore)
	}{
		{name: "success"},
		{
			name: "store_error",
			storeSetup: func(f *fakeMenuStore) {
				f.deleteFn = func(ctx context.Context, id string) error {
					return errors.New("malformed id")
				}
			},
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			store := &fakeMenuStore{}

			if tt.storeSetup != nil {
				tt.storeSetup(store)
			}

			h := newMenusHandler(t, store, cache.NewMenuListing(time.Minute))
			r := setupRouter(http.MethodPost, "/hapusMenu/:id", h.Delete)

			w := postForm(r, "/hapusMenu/abc123", url.Values{})

			// deletion failures are recovered into a flash, never an error page
			if w.Code != http.StatusSeeOther {
				t.Fatalf("got status %d, want 303", w.Code)
			}
			if loc := w.Header().Get("Location"); loc != "/kelolaMenu" {
				t.Fatalf("got location %q, want /kelolaMenu", loc)
			}
		})
	}
}
