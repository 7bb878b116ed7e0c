package http

import (
	"net/http"

	"github.com/m-mizutani/zipscope/pkg/domain/model"
)

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, model.NewHealthStatus())
}
