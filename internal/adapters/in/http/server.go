// Package http exposes the application's use cases over a REST API.
// Handlers translate between wire DTOs and commands/queries; domain errors
// are mapped onto HTTP status codes in one place.
package http

import (
	"errors"
	"net/http"
	"time"

	"tastyfood/internal/core/application/usecases/commands"
	"tastyfood/internal/core/application/usecases/queries"
	"tastyfood/internal/core/domain/model/driver"
	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler   commands.CreateOrderCommandHandler
	createDriverHandler  commands.CreateDriverCommandHandler
	updateDriverHandler  commands.UpdateDriverCommandHandler
	assignDriverHandler  commands.AssignDriverCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler
	markDeliveredHandler commands.MarkDeliveredCommandHandler

	getActiveOrdersHandler      queries.GetActiveOrdersQueryHandler
	getOrderHistoryHandler      queries.GetOrderHistoryQueryHandler
	getAllDriversHandler        queries.GetAllDriversQueryHandler
	getAssignableDriversHandler queries.GetAssignableDriversQueryHandler
	getMenuHandler              queries.GetMenuQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	updateDriverHandler commands.UpdateDriverCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getAllDriversHandler queries.GetAllDriversQueryHandler,
	getAssignableDriversHandler queries.GetAssignableDriversQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		createDriverHandler:         createDriverHandler,
		updateDriverHandler:         updateDriverHandler,
		assignDriverHandler:         assignDriverHandler,
		completeOrderHandler:        completeOrderHandler,
		markDeliveredHandler:        markDeliveredHandler,
		getActiveOrdersHandler:      getActiveOrdersHandler,
		getOrderHistoryHandler:      getOrderHistoryHandler,
		getAllDriversHandler:        getAllDriversHandler,
		getAssignableDriversHandler: getAssignableDriversHandler,
		getMenuHandler:              getMenuHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/menu", s.GetMenu)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/history", s.GetOrderHistory)
	api.POST("/orders/:orderNumber/assign-driver", s.AssignDriver)
	api.POST("/orders/:orderNumber/complete", s.CompleteOrder)
	api.POST("/orders/:orderNumber/delivered", s.MarkDelivered)
	api.GET("/orders/:orderNumber/assignable-drivers", s.GetAssignableDrivers)

	api.POST("/drivers", s.CreateDriver)
	api.GET("/drivers", s.GetDrivers)
	api.PATCH("/drivers/:id", s.UpdateDriver)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetMenu handles GET /api/v1/menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	menu, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]menuItemResponse, len(menu))
	for i, item := range menu {
		response[i] = menuItemResponse{
			ItemID:      item.ItemID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price.StringFixed(),
			Category:    item.Category,
			ImageURL:    item.ImageURL,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]commands.ItemSelection, len(req.Items))
	for i, item := range req.Items {
		items[i] = commands.ItemSelection{ItemID: item.ItemID, Quantity: item.Quantity}
	}

	cmd, err := commands.NewCreateOrderCommand(
		items,
		req.RewardApplied,
		req.TipRate,
		req.CustomTip,
		req.Address.Street,
		req.Address.Apt,
		req.Address.City,
		req.Address.State,
		req.Address.Zip,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderConfirmationResponse{
		OrderNumber:   created.OrderNumber().String(),
		Status:        created.Status().String(),
		Subtotal:      created.Pricing().Subtotal().StringFixed(),
		ServiceCharge: created.Pricing().ServiceCharge().StringFixed(),
		Tip:           created.Pricing().Tip().StringFixed(),
		GrandTotal:    created.Pricing().GrandTotal().StringFixed(),
		DeliveryETA:   created.DeliveryETA(),
		PlacedAt:      created.PlacedAt(),
	})
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]orderResponse, len(orders))
	for i, o := range orders {
		response[i] = orderResponse{
			OrderNumber:   o.OrderNumber.String(),
			Status:        o.Status,
			Items:         toItemResponses(o.Items),
			Subtotal:      o.Subtotal.StringFixed(),
			ServiceCharge: o.ServiceCharge.StringFixed(),
			Tip:           o.Tip.StringFixed(),
			GrandTotal:    o.GrandTotal.StringFixed(),
			Address:       toAddressResponse(o.Address),
			DeliveryETA:   o.DeliveryETA,
			DriverID:      uuidToString(o.DriverID),
			DriverName:    o.DriverName,
			PlacedAt:      o.PlacedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderHistory handles GET /api/v1/orders/history.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	orders, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), queries.NewGetOrderHistoryQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp := orderResponse{
			OrderNumber:   o.OrderNumber.String(),
			Status:        o.Status,
			Items:         toItemResponses(o.Items),
			Subtotal:      o.Subtotal.StringFixed(),
			ServiceCharge: o.ServiceCharge.StringFixed(),
			Tip:           o.Tip.StringFixed(),
			GrandTotal:    o.GrandTotal.StringFixed(),
			Address:       toAddressResponse(o.Address),
			DriverID:      uuidToString(o.DriverID),
			DriverName:    o.DriverName,
			PlacedAt:      o.PlacedAt,
			DeliveryDate:  o.DeliveryDate,
		}
		if o.DeliveryTime != nil {
			resp.DeliveryTime = o.DeliveryTime.String()
		}
		response[i] = resp
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignDriver handles POST /api/v1/orders/:orderNumber/assign-driver.
// A null or absent driver_id unassigns the current driver.
func (s *Server) AssignDriver(ctx echo.Context) error {
	number, err := kernel.OrderNumberFromString(ctx.Param("orderNumber"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req assignDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var driverID *kernel.UUID
	if req.DriverID != nil {
		id, idErr := kernel.UUIDFromString(*req.DriverID)
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		driverID = &id
	}

	cmd, err := commands.NewAssignDriverCommand(number, driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:orderNumber/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	number, err := kernel.OrderNumberFromString(ctx.Param("orderNumber"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req completeOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCompleteOrderCommand(number, req.DeliveryTime)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/orders/:orderNumber/delivered.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	number, err := kernel.OrderNumberFromString(ctx.Param("orderNumber"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMarkDeliveredCommand(number)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAssignableDrivers handles GET /api/v1/orders/:orderNumber/assignable-drivers.
func (s *Server) GetAssignableDrivers(ctx echo.Context) error {
	number, err := kernel.OrderNumberFromString(ctx.Param("orderNumber"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetAssignableDriversQuery(number)
	if err != nil {
		return writeError(ctx, err)
	}

	drivers, err := s.getAssignableDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]assignableDriverResponse, len(drivers))
	for i, d := range drivers {
		response[i] = assignableDriverResponse{
			ID:        d.ID.String(),
			FirstName: d.FirstName,
			LastName:  d.LastName,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req createDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateDriverCommand(req.FirstName, req.LastName, req.Username)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, driverResponse{
		ID:        created.ID().String(),
		FirstName: created.FirstName(),
		LastName:  created.LastName(),
		Username:  created.Username(),
		Status:    created.Status().String(),
	})
}

// UpdateDriver handles PATCH /api/v1/drivers/:id. The body carries the
// driver's full target state, so a status-only edit repeats the current name.
func (s *Server) UpdateDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req updateDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := driver.EmploymentStatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateDriverCommand(driverID, req.FirstName, req.LastName, status)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, driverResponse{
		ID:        updated.ID().String(),
		FirstName: updated.FirstName(),
		LastName:  updated.LastName(),
		Username:  updated.Username(),
		Status:    updated.Status().String(),
	})
}

// GetDrivers handles GET /api/v1/drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	drivers, err := s.getAllDriversHandler.Handle(ctx.Request().Context(), queries.NewGetAllDriversQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]driverResponse, len(drivers))
	for i, d := range drivers {
		response[i] = driverResponse{
			ID:        d.ID.String(),
			FirstName: d.FirstName,
			LastName:  d.LastName,
			Username:  d.Username,
			Status:    d.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// writeError maps domain errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrDriverUnavailable),
		errors.Is(err, commands.ErrDriverAlreadyExists):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrUpstreamUnavailable):
		code = http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrInvalidTimeFormat),
		errors.Is(err, commands.ErrNoItemsSelected):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, errorResponse{Code: code, Message: err.Error()})
}

func uuidToString(id *kernel.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func toItemResponses(items []queries.OrderItemView) []orderItemResponse {
	response := make([]orderItemResponse, len(items))
	for i, item := range items {
		response[i] = orderItemResponse{
			ItemID:    item.ItemID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice.StringFixed(),
			Quantity:  item.Quantity,
			Total:     item.Total.StringFixed(),
		}
	}
	return response
}

func toAddressResponse(address kernel.Address) addressPayload {
	return addressPayload{
		Street: address.Street(),
		Apt:    address.Apt(),
		City:   address.City(),
		State:  address.State(),
		Zip:    address.Zip(),
	}
}

// Wire DTOs.

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type addressPayload struct {
	Street string `json:"street"`
	Apt    string `json:"apt,omitempty"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

type orderItemRequest struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

type createOrderRequest struct {
	Items         []orderItemRequest `json:"items"`
	RewardApplied bool               `json:"reward_applied"`
	TipRate       float64            `json:"tip_rate"`
	CustomTip     string             `json:"custom_tip"`
	Address       addressPayload     `json:"address"`
}

type assignDriverRequest struct {
	DriverID *string `json:"driver_id"`
}

type completeOrderRequest struct {
	DeliveryTime string `json:"delivery_time"`
}

type createDriverRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

type updateDriverRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Status    string `json:"status"`
}

type menuItemResponse struct {
	ItemID      int    `json:"item_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url,omitempty"`
}

type orderItemResponse struct {
	ItemID    int    `json:"item_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Total     string `json:"total"`
}

type orderConfirmationResponse struct {
	OrderNumber   string    `json:"order_number"`
	Status        string    `json:"status"`
	Subtotal      string    `json:"subtotal"`
	ServiceCharge string    `json:"service_charge"`
	Tip           string    `json:"tip"`
	GrandTotal    string    `json:"grand_total"`
	DeliveryETA   int       `json:"delivery_eta_minutes"`
	PlacedAt      time.Time `json:"placed_at"`
}

type orderResponse struct {
	OrderNumber   string              `json:"order_number"`
	Status        string              `json:"status"`
	Items         []orderItemResponse `json:"items"`
	Subtotal      string              `json:"subtotal"`
	ServiceCharge string              `json:"service_charge"`
	Tip           string              `json:"tip"`
	GrandTotal    string              `json:"grand_total"`
	Address       addressPayload      `json:"address"`
	DeliveryETA   int                 `json:"delivery_eta_minutes,omitempty"`
	DriverID      string              `json:"driver_id,omitempty"`
	DriverName    string              `json:"driver_name,omitempty"`
	PlacedAt      time.Time           `json:"placed_at"`
	DeliveryDate  *time.Time          `json:"delivery_date,omitempty"`
	DeliveryTime  string              `json:"delivery_time,omitempty"`
}

type assignableDriverResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type driverResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Status    string `json:"status"`
}
