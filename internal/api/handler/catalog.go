package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/yupiter/analytics-api/internal/domain"
	"github.com/yupiter/analytics-api/internal/usecases/cataloging"
	"github.com/yupiter/analytics-api/pkg/apiErrors"
)

var catalogJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// ListCatalog returns the whole collection in insertion order.
func ListCatalog[T domain.Entity](manager cataloging.Manager[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := catalogJSON.NewEncoder(w).Encode(manager.List()); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Could not send response", nil)
		}
	}
}

// CreateCatalog decodes a record, runs the collection's validation and
// defaults, and returns the stored record with its assigned id.
func CreateCatalog[T any, PT interface {
	domain.Entity
	*T
}](manager cataloging.Manager[PT]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item := PT(new(T))

		if err := catalogJSON.NewDecoder(r.Body).Decode(item); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}

		created, err := manager.Create(item)
		if err != nil {
			handleCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		catalogJSON.NewEncoder(w).Encode(created)
	}
}

// UpdateCatalog replaces the record with the given id, keeping its identity.
func UpdateCatalog[T any, PT interface {
	domain.Entity
	*T
}](manager cataloging.Manager[PT]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Record id is required", nil)
			return
		}

		item := PT(new(T))

		if err := catalogJSON.NewDecoder(r.Body).Decode(item); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}

		updated, err := manager.Update(id, item)
		if err != nil {
			handleCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		catalogJSON.NewEncoder(w).Encode(updated)
	}
}

func DeleteCatalog[T domain.Entity](manager cataloging.Manager[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Record id is required", nil)
			return
		}

		if err := manager.Delete(id); err != nil {
			handleCatalogError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cataloging.ErrNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Record not found", nil)

	case cataloging.IsValidationError(err):
		apiErrors.WriteError(w, apiErrors.ErrValidationFailed, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Could not persist record", nil)
	}
}
