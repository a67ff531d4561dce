package handlers

import (
	"net/http"

	"github.com/karthikyeluripati/aurora-chatbot/internal/models"
	"github.com/karthikyeluripati/aurora-chatbot/pkg/httputil"
)

const (
	serviceName    = "Aurora QA System"
	serviceVersion = "2.0.0"
)

// HandleServiceInfo returns static service identity metadata.
func HandleServiceInfo(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, models.ServiceInfoResponse{
		Status:  "ok",
		Service: serviceName,
		Version: serviceVersion,
	})
}
