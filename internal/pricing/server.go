package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"DynamicPricing/pkg/kit"
)

type Server struct {
	Store  Store
	Market Source
	Log    *zap.Logger

	updates *prometheus.CounterVec
}

type marketUpdateReq struct {
	ProductID string `json:"product_id"`
}

type marketUpdateResp struct {
	UpdateID   string    `json:"update_id"`
	ProductID  string    `json:"product_id"`
	OldPrice   float64   `json:"old_price"`
	NewPrice   float64   `json:"new_price"`
	MarketData Snapshot  `json:"market_data"`
	Timestamp  time.Time `json:"timestamp"`
}

type healthResp struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

const maxWebhookBody = 1 << 20

var (
	errContentType    = errors.New("Content-Type must be application/json")
	errMalformedJSON  = errors.New("invalid JSON format")
	errMissingProduct = errors.New("missing required field: product_id")
)

func (s *Server) marketUpdate(w http.ResponseWriter, r *http.Request) {
	req, err := decodeMarketUpdate(w, r)
	if err != nil {
		s.writeWebhookError(w, r, err)
		return
	}

	productID := strings.TrimSpace(req.ProductID)
	if productID == "" {
		s.writeWebhookError(w, r, errMissingProduct)
		return
	}

	snap := s.Market.Snapshot()

	upd, found, err := s.Store.AdjustPrice(r.Context(), productID, func(current float64) float64 {
		return Adjust(current, snap)
	})
	if err != nil {
		if s.Log != nil {
			s.Log.Error("adjust price failed", zap.Error(err), zap.String("product_id", productID))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	if !found {
		kit.WriteError(w, r, http.StatusNotFound, "product not found", map[string]any{"product_id": productID})
		return
	}

	resp := marketUpdateResp{
		UpdateID:   uuid.NewString(),
		ProductID:  productID,
		OldPrice:   upd.Old,
		NewPrice:   upd.New,
		MarketData: snap,
		Timestamp:  upd.At,
	}

	if s.updates != nil {
		s.updates.WithLabelValues(productID).Inc()
	}
	if s.Log != nil {
		s.Log.Info("price updated",
			zap.String("update_id", resp.UpdateID),
			zap.String("product_id", productID),
			zap.Float64("old_price", upd.Old),
			zap.Float64("new_price", upd.New),
			zap.String("trend", snap.Trend),
		)
	}

	kit.WriteJSON(w, http.StatusOK, resp)
}

// decodeMarketUpdate runs the first two steps of the webhook validation
// chain: content type, then strict JSON decoding (unknown fields and
// trailing data rejected).
func decodeMarketUpdate(w http.ResponseWriter, r *http.Request) (marketUpdateReq, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return marketUpdateReq{}, errContentType
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxWebhookBody)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req marketUpdateReq
	if err := dec.Decode(&req); err != nil {
		return marketUpdateReq{}, errMalformedJSON
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return marketUpdateReq{}, errMalformedJSON
	}

	return req, nil
}

func (s *Server) writeWebhookError(w http.ResponseWriter, r *http.Request, err error) {
	switch err {
	case errContentType, errMalformedJSON, errMissingProduct:
		kit.WriteError(w, r, http.StatusBadRequest, err.Error(), nil)
	default:
		if s.Log != nil {
			s.Log.Error("webhook failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "internal server error", nil)
	}
}

func (s *Server) getPricing(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	rec, ok, err := s.Store.Get(r.Context(), productID)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("get pricing failed", zap.Error(err), zap.String("product_id", productID))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "product not found", map[string]any{"product_id": productID})
		return
	}
	kit.WriteJSON(w, http.StatusOK, rec)
}

func (s *Server) listPricing(w http.ResponseWriter, r *http.Request) {
	all, err := s.Store.All(r.Context())
	if err != nil {
		if s.Log != nil {
			s.Log.Error("list pricing failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, all)
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, healthResp{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}

func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
	defer cancel()

	if err := s.Store.Ping(ctx); err != nil {
		if s.Log != nil {
			s.Log.Warn("readyz failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}
