package httpapi

import (
	"finance-tracker/internal/infra/httpserver"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"net/http"
)

func RequestOwner(r *http.Request) shareddomain.OwnerID {
	return shareddomain.OwnerID(httpserver.OwnerFromRequest(r))
}
