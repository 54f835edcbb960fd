package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/venue-scheduler/internal/domain/client"
	"github.com/BruksfildServices01/venue-scheduler/internal/httperr"
	"github.com/BruksfildServices01/venue-scheduler/internal/httpresp"
	ucClient "github.com/BruksfildServices01/venue-scheduler/internal/usecase/client"
)

type ClientHandler struct {
	list    *ucClient.ListClients
	resolve *ucClient.ResolveClient
}

func NewClientHandler(
	list *ucClient.ListClients,
	resolve *ucClient.ResolveClient,
) *ClientHandler {
	return &ClientHandler{list: list, resolve: resolve}
}

type ResolveClientRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Notes  string `json:"notes"`
	Status string `json:"status"`
}

// ======================================================
// LIST CLIENTS (agrupados por identidade)
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))

	clients, err := h.list.Execute(c.Request.Context(), query)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// RESOLVE (find-or-create)
// ======================================================
func (h *ClientHandler) Resolve(c *gin.Context) {
	var req ResolveClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.resolve.Execute(c.Request.Context(), ucClient.ResolveClientInput{
		Name:   req.Name,
		Phone:  req.Phone,
		Email:  req.Email,
		Notes:  req.Notes,
		Status: domain.Status(req.Status),
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_resolve_client", "Erro ao salvar cliente.")
		return
	}

	httpresp.OK(c, client)
}
