package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/utils/catalog"
	"github.com/SscSPs/currency_exchange_app/internal/utils/conversion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL + "/api/v1/"})
}

func validSession() *Session {
	return &Session{AdminName: "root", Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}
}

func TestSessionValid(t *testing.T) {
	now := time.Now()
	var nilSession *Session
	assert.False(t, nilSession.Valid(now))
	assert.False(t, (&Session{Token: "", ExpiresAt: now.Add(time.Hour)}).Valid(now))
	assert.False(t, (&Session{Token: "t", ExpiresAt: now.Add(-time.Second)}).Valid(now))
	assert.True(t, (&Session{Token: "t", ExpiresAt: now.Add(time.Minute)}).Valid(now))
}

func TestLogin(t *testing.T) {
	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/admin/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var req dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "root", req.Name)
		assert.Equal(t, "pw", req.Password)

		_ = json.NewEncoder(w).Encode(dto.LoginResponse{Message: "Login successful", Token: "tok", ExpiresAt: expires})
	})

	s, err := c.Login(context.Background(), "root", "pw")
	require.NoError(t, err)
	assert.Equal(t, "root", s.AdminName)
	assert.Equal(t, "tok", s.Token)
	assert.True(t, expires.Equal(s.ExpiresAt))
}

func TestLogin_Rejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "Invalid credentials"})
	})

	s, err := c.Login(context.Background(), "root", "bad")
	assert.Nil(t, s)
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestAdminCallsSendTokenPerRequest(t *testing.T) {
	var seen []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	})

	a := &Session{Token: "a", ExpiresAt: time.Now().Add(time.Hour)}
	b := &Session{Token: "b", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, c.EnableCountry(context.Background(), a, "1"))
	require.NoError(t, c.DisableCountry(context.Background(), b, "1"))
	_, err := c.ListComments(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Bearer a", "Bearer b", ""}, seen)
}

func TestAdminCallsRequireSession(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	expired := &Session{Token: "t", ExpiresAt: time.Now().Add(-time.Minute)}
	assert.ErrorIs(t, c.DeleteCountry(context.Background(), expired, "1"), ErrNoSession)
	assert.ErrorIs(t, c.UpdateCountries(context.Background(), nil, nil), ErrNoSession)
	_, err := c.ListAllComments(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoSession)
	assert.False(t, called)
}

func TestListCountries_RawEntries(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/countries", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id":"1","name":"Argentina","currencyCode":"ARS","usdPrice":1000,"enabled":true},
			{"id":"2","name":"Uruguay","currencyCode":"UYU","usdPrice":null,"enabled":true},
			{"id":"3","name":"Brasil","currencyCode":"BRL","usdPrice":5,"enabled":false}
		]`))
	})

	raw, err := c.ListCountries(context.Background())
	require.NoError(t, err)
	require.Len(t, raw, 3)
	assert.Nil(t, raw[1].USDPrice)

	snap := catalog.FilterActive(raw)
	assert.Equal(t, []string{"ARS"}, snap.Codes())
}

func TestCreateCountry(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		var req dto.CreateCountryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		price := req.USDPrice
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(dto.CreateCountryResponse{
			Message: "Country created",
			Country: dto.CountryResponse{ID: "9", Name: req.Name, CurrencyCode: req.CurrencyCode, USDPrice: &price, Enabled: true},
		})
	})

	got, err := c.CreateCountry(context.Background(), validSession(), dto.CreateCountryRequest{Name: "Chile", CurrencyCode: "CLP", USDPrice: 900})
	require.NoError(t, err)
	assert.Equal(t, "9", got.ID)
	assert.Equal(t, 900.0, *got.USDPrice)
}

func TestDeleteComments(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		var req dto.DeleteCommentsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"c1", "c2"}, req.IDs)
		_, _ = w.Write([]byte(`{"message":"Comments deleted","deleted":1}`))
	})

	n, err := c.DeleteComments(context.Background(), validSession(), []string{"c1", "c2"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestConvert(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "12.5", q.Get("amount"))
		assert.Equal(t, "ARS", q.Get("from"))
		assert.Equal(t, "BRL", q.Get("to"))
		assert.Equal(t, "RIGHT_TO_LEFT", q.Get("direction"))
		_, _ = w.Write([]byte(`{"amount":12.5,"from":"ARS","to":"BRL","direction":"RIGHT_TO_LEFT","result":"3125.00","valid":true}`))
	})

	got, err := c.Convert(context.Background(), 12.5, "ARS", "BRL", conversion.RightToLeft)
	require.NoError(t, err)
	assert.Equal(t, "3125.00", got.Result)
	assert.True(t, got.Valid)
}

func TestNonJSONErrorBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	_, err := c.ListComments(context.Background())
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusBadGateway))
}
