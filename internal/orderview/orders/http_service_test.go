package orders

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPServiceOrderSuccess(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/orders/abc", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"order_uid": "abc",
			"track_number": "TRACK-9",
			"payment": {"transaction": "abc", "currency": "USD", "amount": 150},
			"items": []
		}`))
	}))
	defer srv.Close()

	svc, err := NewHTTPService(srv.URL, nil)
	require.NoError(t, err)

	order, err := svc.Order(context.Background(), "abc")
	require.NoError(t, err)
	require.Equal(t, "abc", order.OrderUID)
	require.Equal(t, "TRACK-9", order.TrackNumber)
	require.NotNil(t, order.Payment)
	require.NotNil(t, order.Payment.Amount)
	require.Equal(t, float64(150), *order.Payment.Amount)
	require.Empty(t, order.Items)
}

func TestHTTPServiceOrderEscapesID(t *testing.T) {
	t.Parallel()

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"order_uid": "a/b"}`))
	}))
	defer srv.Close()

	svc, err := NewHTTPService(srv.URL, nil)
	require.NoError(t, err)

	_, err = svc.Order(context.Background(), "a/b")
	require.NoError(t, err)
	require.Equal(t, "/api/orders/a%2Fb", gotPath)
}

func TestHTTPServiceOrderNotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	svc, err := NewHTTPService(srv.URL, nil)
	require.NoError(t, err)

	_, err = svc.Order(context.Background(), "missing")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "missing", notFound.ID)
	require.Equal(t, http.StatusNotFound, notFound.Status)
}

func TestHTTPServiceOrderEmptyID(t *testing.T) {
	t.Parallel()

	svc, err := NewHTTPService("http://localhost:0", nil)
	require.NoError(t, err)

	_, err = svc.Order(context.Background(), "")
	var invalid *ValidationError
	require.ErrorAs(t, err, &invalid)
}

func TestHTTPServiceList(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/orders", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": "a", "created_at": "2024-01-01T00:00:00Z"}]`))
	}))
	defer srv.Close()

	svc, err := NewHTTPService(srv.URL, nil)
	require.NoError(t, err)

	entries, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "a", entries[0].ID)
}

func TestHTTPServiceListUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc, err := NewHTTPService(srv.URL, nil)
	require.NoError(t, err)

	_, err = svc.List(context.Background())
	require.ErrorIs(t, err, ErrListUnavailable)
}

func TestNewHTTPServiceRequiresBaseURL(t *testing.T) {
	t.Parallel()

	_, err := NewHTTPService("  ", nil)
	require.Error(t, err)
}
