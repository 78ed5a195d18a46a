package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/contada-dev/contada/internal/config"
	"github.com/contada-dev/contada/internal/engine"
	"github.com/contada-dev/contada/internal/model"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := config.Default()
	cfg.Market.Seed = 7
	eng := engine.New(cfg, zap.NewNop())
	return NewRouter(eng, NewMetrics(), zap.NewNop())
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getHand(t *testing.T, r http.Handler) []model.Card {
	t.Helper()
	w := doJSON(t, r, http.MethodGet, "/v1/hand", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var hand []model.Card
	require.NoError(t, json.NewDecoder(w.Body).Decode(&hand))
	return hand
}

func handCard(t *testing.T, r http.Handler, name string) model.Card {
	t.Helper()
	for _, c := range getHand(t, r) {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("card %q not in hand", name)
	return model.Card{}
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetState(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/v1/state", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var s model.GameState
	require.NoError(t, json.NewDecoder(w.Body).Decode(&s))
	assert.True(t, s.CompanyCash.IntPart() == 1000)
	assert.Equal(t, 1, s.CurrentDay)
}

func TestSealRoundtrip(t *testing.T) {
	r := newTestRouter(t)

	caja := handCard(t, r, "Caja")
	venta := handCard(t, r, "Venta Servicios")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/v1/cards/%s/value", caja.ID), map[string]any{"value": 500})
	require.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/v1/cards/%s/value", venta.ID), map[string]any{"value": 500})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodPost, "/v1/seal", map[string]any{
		"debe":  []string{caja.ID},
		"haber": []string{venta.ID},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res engine.Result
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
	assert.Equal(t, engine.StatusSealed, res.Status)

	w = doJSON(t, r, http.MethodGet, "/v1/journal", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var journal []model.JournalEntry
	require.NoError(t, json.NewDecoder(w.Body).Decode(&journal))
	assert.Len(t, journal, 1)
}

func TestSealRejectedIsStill200(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/seal", map[string]any{"debe": []string{}, "haber": []string{}})
	require.Equal(t, http.StatusOK, w.Code)

	var res engine.Result
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
	assert.Equal(t, engine.StatusRejected, res.Status)
}

func TestSealUnknownCardIs404(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/v1/seal", map[string]any{"debe": []string{"nope"}, "haber": []string{}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReassignBadZone(t *testing.T) {
	r := newTestRouter(t)
	caja := handCard(t, r, "Caja")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/v1/cards/%s/zone", caja.ID), map[string]string{"zone": "SIDEWAYS"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/v1/cards/%s/zone", caja.ID), map[string]string{"zone": "DEBE"})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDealHand(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/v1/hand/deal", map[string]int{"slots": 4})
	require.Equal(t, http.StatusOK, w.Code)

	var hand []model.Card
	require.NoError(t, json.NewDecoder(w.Body).Decode(&hand))
	assert.Len(t, hand, 4)
}

func TestConfirmWithoutPendingIs409(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/v1/seal/confirm", map[string]bool{"accept": true})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestMarketAccept(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/v1/market/offers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var offers []model.MarketEvent
	require.NoError(t, json.NewDecoder(w.Body).Decode(&offers))
	require.Len(t, offers, 3)

	w = doJSON(t, r, http.MethodPost, "/v1/market/accept", map[string]string{"id": offers[0].ID})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/v1/market/accept", map[string]string{"id": offers[1].ID})
	assert.Equal(t, http.StatusConflict, w.Code, "second accept while active")
}

func TestEndDay(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/v1/day/end", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var sum struct {
		Day   int `json:"day"`
		Month int `json:"month"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&sum))
	assert.Equal(t, 2, sum.Day)
	assert.Equal(t, 1, sum.Month)
}

func TestJournalCSV(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/v1/journal.csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "entry_id,timestamp")
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
