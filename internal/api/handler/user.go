package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/yupiter/analytics-api/internal/usecases/authenticating"
	"github.com/yupiter/analytics-api/pkg/apiErrors"
)

// ListUsers returns every registered user without password hashes
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users := service.ListUsers()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(users); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Could not send response", nil)
		}
	}
}
