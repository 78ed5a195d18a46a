package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/contada-dev/contada/internal/engine"
	"github.com/contada-dev/contada/internal/model"
)

// NewRouter creates the HTTP router the game UI talks to. The router holds
// no game state; everything is delegated to the engine.
func NewRouter(eng *engine.Engine, metrics *Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(zapLoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/state", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, eng.State())
		})

		r.Get("/journal", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, eng.Journal())
		})

		r.Get("/journal.csv", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/csv")
			if err := eng.ExportJournalCSV(w); err != nil {
				logger.Error("journal export failed", zap.Error(err))
			}
		})

		r.Get("/hand", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, eng.Hand())
		})

		r.Post("/hand/deal", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Slots int `json:"slots"`
			}
			if !decodeJSON(w, r, &req) {
				return
			}
			writeJSON(w, http.StatusOK, eng.DealHand(req.Slots))
		})

		r.Get("/market/offers", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, eng.Offers())
		})

		r.Post("/market/accept", acceptMissionHandler(eng))
		r.Post("/cards/{id}/zone", reassignHandler(eng))
		r.Post("/cards/{id}/value", editValueHandler(eng))
		r.Post("/seal", sealHandler(eng, metrics))
		r.Post("/seal/confirm", confirmHandler(eng, metrics))

		r.Post("/day/end", func(w http.ResponseWriter, _ *http.Request) {
			summary := eng.EndDay()
			metrics.IncrDay(summary.MonthClosed)
			if summary.MissionBreached {
				metrics.IncrMission("breached")
			}
			writeJSON(w, http.StatusOK, summary)
		})
	})

	return r
}

func acceptMissionHandler(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID string `json:"id"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := eng.AcceptMission(req.ID); err != nil {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"active": req.ID})
	}
}

func reassignHandler(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Zone string `json:"zone"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}
		zone, err := model.ParseZone(req.Zone)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := eng.ReassignCard(chi.URLParam(r, "id"), zone); err != nil {
			writeEngineError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func editValueHandler(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Value decimal.Decimal `json:"value"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := eng.EditCardValue(chi.URLParam(r, "id"), req.Value); err != nil {
			writeEngineError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func sealHandler(eng *engine.Engine, metrics *Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Debe  []string `json:"debe"`
			Haber []string `json:"haber"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}
		res, err := eng.Propose(req.Debe, req.Haber)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		recordSeal(metrics, res)
		writeJSON(w, http.StatusOK, res)
	}
}

func confirmHandler(eng *engine.Engine, metrics *Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Accept bool `json:"accept"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}
		res, err := eng.Confirm(req.Accept)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		recordSeal(metrics, res)
		writeJSON(w, http.StatusOK, res)
	}
}

func recordSeal(metrics *Metrics, res *engine.Result) {
	metrics.IncrSeal(string(res.Status))
	if res.MissionCompleted {
		metrics.IncrMission("completed")
	}
}

// writeEngineError maps engine contract errors to HTTP statuses. Reject
// reasons never reach here; they come back as 200s with a result body.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrUnknownCard):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, engine.ErrConfirmationOutstanding),
		errors.Is(err, engine.ErrNoPendingConfirmation):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, engine.ErrCardReadonly),
		errors.Is(err, engine.ErrNegativeValue):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
