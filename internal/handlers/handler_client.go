package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// clientHandler handles HTTP requests related to clients.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

func newClientHandler(cs portssvc.ClientSvcFacade) *clientHandler {
	return &clientHandler{clientService: cs}
}

// registerClientRoutes registers routes related to clients.
func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade) {
	h := newClientHandler(clientService)

	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
		clients.GET("/:id", h.getClient)
		clients.PUT("/:id", h.updateClient)
		clients.DELETE("/:id", h.deleteClient)
	}
}

// createClient godoc
// @Summary Create a client
// @Description Registers a billed customer. SIRET, VAT number and IBAN are checked when present.
// @Tags clients
// @Accept  json
// @Produce  json
// @Param   client body dto.CreateClientRequest true "Client details"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create client"
// @Router /clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateClient", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), req, middleware.GetActorFromContext(c))
	if err != nil {
		respondError(c, logger, err, "Failed to create client")
		return
	}

	logger.Info("Client created successfully", slog.String("client_id", client.ClientID))
	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

// listClients godoc
// @Summary List clients
// @Tags clients
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {array} dto.ClientResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list clients"
// @Router /clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListClientsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListClients", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list clients")
		return
	}
	c.JSON(http.StatusOK, dto.ToListClientResponse(clients))
}

// getClient godoc
// @Summary Get a client by ID
// @Tags clients
// @Produce  json
// @Param   id path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to retrieve client"
// @Router /clients/{id} [get]
func (h *clientHandler) getClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("client_id", c.Param("id")))

	client, err := h.clientService.GetClientByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve client")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// updateClient godoc
// @Summary Update a client
// @Description Only the fields present in the body are changed.
// @Tags clients
// @Accept  json
// @Produce  json
// @Param   id path string true "Client ID"
// @Param   client body dto.UpdateClientRequest true "Fields to update"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to update client"
// @Router /clients/{id} [put]
func (h *clientHandler) updateClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("client_id", c.Param("id")))
	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateClient", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), c.Param("id"), req, middleware.GetActorFromContext(c))
	if err != nil {
		respondError(c, logger, err, "Failed to update client")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// deleteClient godoc
// @Summary Delete a client
// @Description Clients that have been invoiced cannot be deleted.
// @Tags clients
// @Param   id path string true "Client ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Client has invoices"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to delete client"
// @Router /clients/{id} [delete]
func (h *clientHandler) deleteClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("client_id", c.Param("id")))

	if err := h.clientService.DeleteClient(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete client")
		return
	}
	c.Status(http.StatusNoContent)
}
