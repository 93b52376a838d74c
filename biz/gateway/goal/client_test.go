package goal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"goalkeeper/api/biz/config"
	"goalkeeper/api/biz/model/domain"

	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(config.GoalAPIConf{BaseURL: srv.URL, TimeoutSeconds: 2})
	assert.NoError(t, err)
	return c
}

const goalJSON = `{
	"id": 7,
	"goal_name": "Car",
	"goal_currency": "USD",
	"goal_value": 5000,
	"monthly_savings": 200,
	"converted_value": 5000,
	"created_at": "2024-05-01 10:00:00"
}`

func TestClient_CreateGoal(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/goals", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "Car", r.FormValue("goal_name"))
		assert.Equal(t, "USD", r.FormValue("goal_currency"))
		assert.Equal(t, "5000", r.FormValue("goal_value"))
		assert.Equal(t, "200", r.FormValue("monthly_savings"))
		w.Write([]byte(goalJSON))
	}))

	g := c.CreateGoal(context.Background(), domain.GoalSpec{
		Name:           "Car",
		Currency:       domain.CurrencyUSD,
		GoalValue:      5000,
		MonthlySavings: 200,
	})
	if assert.NotNil(t, g) {
		assert.Equal(t, int64(7), g.ID)
		assert.Equal(t, "Car", g.Name)
		assert.Equal(t, 200.0, g.MonthlySavings)
		assert.Equal(t, "2024-05-01 10:00:00", g.CreatedAt)
	}
}

func TestClient_CreateGoal_MissingID(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"goal_name": "Car", "goal_currency": "USD"}`))
	}))

	// a 2xx create body without an id is not a usable record
	g := c.CreateGoal(context.Background(), domain.GoalSpec{Name: "Car", Currency: domain.CurrencyUSD})
	assert.Nil(t, g)
}

func TestClient_CreateGoal_ServerError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	g := c.CreateGoal(context.Background(), domain.GoalSpec{Name: "Car", Currency: domain.CurrencyUSD})
	assert.Nil(t, g)
}

func TestClient_FetchGoal(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/goals/goal_id", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("goal_id"))
		w.Write([]byte(goalJSON))
	}))

	g := c.FetchGoal(context.Background(), 7)
	if assert.NotNil(t, g) {
		assert.Equal(t, int64(7), g.ID)
	}
}

func TestClient_FetchGoal_NotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	// 404 and outage are the same absent signal
	assert.Nil(t, c.FetchGoal(context.Background(), 7))
}

func TestClient_FetchGoal_UnparsableBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))

	assert.Nil(t, c.FetchGoal(context.Background(), 7))
}

func TestClient_UpdateGoal(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "7", r.URL.Query().Get("goal_id"))
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "Bike", r.FormValue("goal_name"))
		w.Write([]byte(`{"id": 7, "goal_name": "Bike", "goal_currency": "EUR", "goal_value": 900, "monthly_savings": 50, "converted_value": 980, "created_at": "2024-05-01 10:00:00"}`))
	}))

	g := c.UpdateGoal(context.Background(), 7, domain.GoalSpec{
		Name:           "Bike",
		Currency:       domain.CurrencyEUR,
		GoalValue:      900,
		MonthlySavings: 50,
	})
	if assert.NotNil(t, g) {
		assert.Equal(t, "Bike", g.Name)
		assert.Equal(t, 980.0, g.ConvertedValue)
	}
}

func TestClient_DeleteGoal(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "7", r.URL.Query().Get("goal_id"))
		w.Write([]byte(`{"message": "Goal deleted"}`))
	}))

	assert.True(t, c.DeleteGoal(context.Background(), 7))
}

func TestClient_DeleteGoal_Failed(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))

	assert.False(t, c.DeleteGoal(context.Background(), 7))
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewClient(config.GoalAPIConf{BaseURL: url, TimeoutSeconds: 1})
	assert.NoError(t, err)

	assert.Nil(t, c.FetchGoal(context.Background(), 1))
	assert.False(t, c.DeleteGoal(context.Background(), 1))
}
