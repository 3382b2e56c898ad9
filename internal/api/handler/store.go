package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/wakuli/retail-analytics-api/internal/domain"
	"github.com/wakuli/retail-analytics-api/internal/usecases/storing"
	"github.com/wakuli/retail-analytics-api/pkg/apiErrors"
	"github.com/wakuli/retail-analytics-api/pkg/log"
)

// ListStores returns the store registry with any recorded investments.
func ListStores(service storing.StoreService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		stores, err := service.ListStores()
		if err != nil {
			logger.WithError(err).Error("stores: failed to list stores")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "could not list stores", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stores); err != nil {
			logger.WithError(err).Error("stores: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "could not send response", nil)
		}
	})
}

// UpsertInvestment records or replaces the buildout investment for a store.
func UpsertInvestment(service storing.StoreService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		code := httprouter.ParamsFromContext(r.Context()).ByName("code")
		if code == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "store code not provided", nil)
			return
		}

		var entry *domain.InvestmentEntry
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			logger.WithError(err).Warn("stores: failed to decode investment body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		saved, err := service.UpsertInvestment(code, entry)
		if err != nil {
			logger.WithFields(log.Fields{
				"store_code": code,
				"error":      err.Error(),
			}).Warn("stores: failed to upsert investment")

			switch {
			case errors.Is(err, storing.ErrUnknownStore):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRecord, err.Error(), nil)
			case errors.Is(err, storing.ErrOverheadStore), errors.Is(err, storing.ErrInvalidAmounts):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "could not save investment", nil)
			}
			return
		}

		logger.WithFields(log.Fields{
			"store_code": code,
			"total":      saved.Total,
		}).Info("stores: investment saved")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(saved); err != nil {
			logger.WithError(err).Error("stores: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "could not send response", nil)
		}
	})
}
