package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/repair-dashboard/internal/config"
	"github.com/spec-kit/repair-dashboard/internal/observability"
	apperrors "github.com/spec-kit/repair-dashboard/pkg/util"
)

func newOrderClientForTest(t *testing.T, handler http.Handler) (*OrderClient, *observability.Metrics) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	metrics := observability.NewMetrics()
	cfg := config.UpstreamConfig{OrderServiceURL: server.URL, ClientTimeoutSeconds: 5}
	return NewOrderClient(cfg, metrics), metrics
}

func TestGetOrderBareObject(t *testing.T) {
	client, _ := newOrderClientForTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/getRepairOrderById", r.URL.Path)
		assert.Equal(t, "o1", r.URL.Query().Get("id"))
		_, _ = w.Write([]byte(`{"_id":"m1","orderId":"o1","taskStatus":"Pending","costBreakDown":[{"issueName":"Screen","issueCost":10}]}`))
	}))

	order, err := client.GetOrder(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", order.OrderID)
	assert.Equal(t, "Pending", order.TaskStatus)
	require.Len(t, order.CostBreakDown, 1)
	assert.Equal(t, 10.0, order.CostBreakDown[0].IssueCost)
}

func TestGetOrderOneElementArray(t *testing.T) {
	// the same endpoint sometimes wraps the record in a one-element array;
	// callers must never see the difference
	client, _ := newOrderClientForTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(` [{"_id":"m1","taskStatus":"Complete"}]`))
	}))

	order, err := client.GetOrder(context.Background(), "o1")
	require.NoError(t, err)
	// no orderId in the payload: the canonical id falls back to _id
	assert.Equal(t, "m1", order.OrderID)
	assert.Equal(t, "Complete", order.TaskStatus)
}

func TestGetOrderPrefersOrderIDOverMongoID(t *testing.T) {
	client, _ := newOrderClientForTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"_id":"m1","orderId":"o1"}`))
	}))

	order, err := client.GetOrder(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", order.OrderID)
}

func TestGetOrderEmptyArrayIsNotFound(t *testing.T) {
	client, _ := newOrderClientForTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))

	_, err := client.GetOrder(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestListOrdersNonSuccessStatus(t *testing.T) {
	client, metrics := newOrderClientForTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.ListOrders(context.Background())
	require.Error(t, err)
	assert.Equal(t, "UPSTREAM_ERROR", apperrors.ToDomainError(err).Code)
	assert.Equal(t, int64(1), metrics.UpstreamSnapshot()["order-service|viewAllTasks|error"])
}

func TestListOrdersDecodesCollection(t *testing.T) {
	client, metrics := newOrderClientForTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/viewAllTasks", r.URL.Path)
		_, _ = w.Write([]byte(`[{"orderId":"o1","taskStatus":"Pending","reqUserId":"u1"},{"orderId":"o2","taskStatus":"Complete","reqUserId":"u2"}]`))
	}))

	orders, err := client.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "u1", orders[0].ReqUserID)
	assert.Equal(t, int64(1), metrics.UpstreamSnapshot()["order-service|viewAllTasks|ok"])
}

func TestListHistory(t *testing.T) {
	client, _ := newOrderClientForTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/viewOrderHistory", r.URL.Path)
		assert.Equal(t, "o1", r.URL.Query().Get("id"))
		_, _ = w.Write([]byte(`[{"datetime":"2024-01-01 10:00","comment":"received","taskStatus":"Pending","staffName":"Sam"}]`))
	}))

	history, err := client.ListHistory(context.Background(), "o1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Sam", history[0].StaffName)
}

func TestUpdateStatusPostsBody(t *testing.T) {
	var got map[string]string
	client, _ := newOrderClientForTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users/updateTasks", r.URL.Path)
		assert.Equal(t, "o1", r.URL.Query().Get("id"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))

	err := client.UpdateStatus(context.Background(), "o1", "Repair Completed", "all good")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"taskStatus": "Repair Completed", "comment": "all good"}, got)
}

func TestUpdateStatusFailure(t *testing.T) {
	client, _ := newOrderClientForTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	err := client.UpdateStatus(context.Background(), "o1", "Pending", "")
	require.Error(t, err)
	assert.Equal(t, "UPSTREAM_ERROR", apperrors.ToDomainError(err).Code)
}
