package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diewo77/commerce-api/internal/models"
	"github.com/diewo77/commerce-api/internal/repository"
	"github.com/diewo77/commerce-api/validation"
)

type ClientHandler struct {
	repo   *repository.ClientRepository
	orders *repository.OrderRepository
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{
		repo:   repository.NewClientRepository(db),
		orders: repository.NewOrderRepository(db),
	}
}

type clientInput struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Tel       string `json:"tel"`
	Address   string `json:"address"`
}

func (in clientInput) validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("firstname", in.Firstname, v)
	validation.Required("lastname", in.Lastname, v)
	validation.Required("email", in.Email, v)
	validation.Required("tel", in.Tel, v)
	validation.Required("address", in.Address, v)
	return v
}

func (in clientInput) model() models.Client {
	return models.Client{Firstname: in.Firstname, Lastname: in.Lastname, Email: in.Email, Tel: in.Tel, Address: in.Address}
}

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.repo.List(c.Request.Context())
	if err != nil {
		dbError(c, "list clients", err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	client, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		dbError(c, "get client", err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var in clientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidJSON(c)
		return
	}
	if v := in.validate(); !v.Empty() {
		validationFailed(c, v)
		return
	}
	client := in.model()
	if err := h.repo.Create(c.Request.Context(), &client); err != nil {
		dbError(c, "create client", err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in clientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidJSON(c)
		return
	}
	if v := in.validate(); !v.Empty() {
		validationFailed(c, v)
		return
	}
	client := in.model()
	if err := h.repo.Update(c.Request.Context(), id, &client); err != nil {
		dbError(c, "update client", err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		dbError(c, "delete client", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// Orders lists the orders placed by the client: GET /clients/:id/orders.
func (h *ClientHandler) Orders(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	orders, err := h.orders.ForClient(c.Request.Context(), id)
	if err != nil {
		dbError(c, "orders for client", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
