// Package http adapts the application use cases to an HTTP surface.
// Handlers are thin: they parse the request, build a command or query,
// dispatch it and translate domain errors to status codes. No business
// logic lives here.
package http

import (
	"errors"
	"net/http"

	"trustpoints/internal/core/application/usecases/commands"
	"trustpoints/internal/core/application/usecases/queries"
	"trustpoints/internal/core/domain/model/account"
	"trustpoints/internal/core/domain/model/kernel"
	"trustpoints/internal/core/domain/model/order"
	"trustpoints/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires the use case handlers behind the REST routes.
type Server struct {
	// Command handlers
	registerAccountHandler  commands.RegisterAccountCommandHandler
	createOrderHandler      commands.CreateOrderCommandHandler
	claimOrderHandler       commands.ClaimOrderCommandHandler
	startDeliveryHandler    commands.StartDeliveryCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	earnPointsHandler       commands.EarnPointsCommandHandler
	redeemPointsHandler     commands.RedeemPointsCommandHandler
	transferPointsHandler   commands.TransferPointsCommandHandler

	// Query handlers
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler
	getNearbyOrdersHandler    queries.GetNearbyOrdersQueryHandler
	getBalanceHandler         queries.GetBalanceQueryHandler
	getAccountOrdersHandler   queries.GetAccountOrdersQueryHandler
}

// NewServer creates an HTTP server over the given command and query handlers.
func NewServer(
	registerAccountHandler commands.RegisterAccountCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	startDeliveryHandler commands.StartDeliveryCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	earnPointsHandler commands.EarnPointsCommandHandler,
	redeemPointsHandler commands.RedeemPointsCommandHandler,
	transferPointsHandler commands.TransferPointsCommandHandler,
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler,
	getNearbyOrdersHandler queries.GetNearbyOrdersQueryHandler,
	getBalanceHandler queries.GetBalanceQueryHandler,
	getAccountOrdersHandler queries.GetAccountOrdersQueryHandler,
) *Server {
	return &Server{
		registerAccountHandler:    registerAccountHandler,
		createOrderHandler:        createOrderHandler,
		claimOrderHandler:         claimOrderHandler,
		startDeliveryHandler:      startDeliveryHandler,
		completeDeliveryHandler:   completeDeliveryHandler,
		cancelOrderHandler:        cancelOrderHandler,
		earnPointsHandler:         earnPointsHandler,
		redeemPointsHandler:       redeemPointsHandler,
		transferPointsHandler:     transferPointsHandler,
		getAvailableOrdersHandler: getAvailableOrdersHandler,
		getNearbyOrdersHandler:    getNearbyOrdersHandler,
		getBalanceHandler:         getBalanceHandler,
		getAccountOrdersHandler:   getAccountOrdersHandler,
	}
}

// RegisterRoutes attaches all routes under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/accounts", s.RegisterAccount)
	v1.GET("/accounts/:id/balance", s.GetBalance)
	v1.GET("/accounts/:id/orders", s.GetAccountOrders)
	v1.POST("/accounts/:id/earn", s.EarnPoints)
	v1.POST("/accounts/:id/redeem", s.RedeemPoints)
	v1.POST("/accounts/:id/transfer", s.TransferPoints)

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/available", s.GetAvailableOrders)
	v1.GET("/orders/nearby", s.GetNearbyOrders)
	v1.POST("/orders/:id/claim", s.ClaimOrder)
	v1.POST("/orders/:id/start", s.StartDelivery)
	v1.POST("/orders/:id/complete", s.CompleteDelivery)
	v1.POST("/orders/:id/cancel", s.CancelOrder)
}

// RegisterAccount handles POST /api/v1/accounts.
func (s *Server) RegisterAccount(ctx echo.Context) error {
	var req RegisterAccountRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterAccountCommand(req.FullName, req.Email)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.registerAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, commands.ErrEmailAlreadyRegistered) {
			return conflict(ctx, err.Error())
		}
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterAccountResponse{
		AccountID: cmd.AccountID().String(),
	})
}

// GetBalance handles GET /api/v1/accounts/:id/balance.
func (s *Server) GetBalance(ctx echo.Context) error {
	accountID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid account id")
	}

	query, err := queries.NewGetBalanceQuery(accountID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	balance, err := s.getBalanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Account not found")
		}
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, BalanceResponse{
		AccountID: balance.AccountID.String(),
		FullName:  balance.FullName,
		Points:    balance.Points,
	})
}

// GetAccountOrders handles GET /api/v1/accounts/:id/orders.
func (s *Server) GetAccountOrders(ctx echo.Context) error {
	accountID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid account id")
	}

	role := queries.ParticipantRole(ctx.QueryParam("role"))
	if role == "" {
		role = queries.RoleSender
	}

	statusFilter := order.Unknown
	if raw := ctx.QueryParam("status"); raw != "" {
		statusFilter, err = order.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid status filter")
		}
	}

	limit, offset, err := parsePagination(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetAccountOrdersQuery(accountID, role, statusFilter, limit, offset)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getAccountOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaryResponses(orders))
}

// EarnPoints handles POST /api/v1/accounts/:id/earn.
func (s *Server) EarnPoints(ctx echo.Context) error {
	accountID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid account id")
	}

	var req AmountRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewEarnPointsCommand(accountID, req.Amount)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.earnPointsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, err)
	}

	return respondLedgerResult(ctx, result)
}

// RedeemPoints handles POST /api/v1/accounts/:id/redeem.
func (s *Server) RedeemPoints(ctx echo.Context) error {
	accountID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid account id")
	}

	var req AmountRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRedeemPointsCommand(accountID, req.Amount)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.redeemPointsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, err)
	}

	return respondLedgerResult(ctx, result)
}

// TransferPoints handles POST /api/v1/accounts/:id/transfer.
func (s *Server) TransferPoints(ctx echo.Context) error {
	fromID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid account id")
	}

	var req TransferRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	toID, err := kernel.UUIDFromString(req.ToAccountID)
	if err != nil {
		return badRequest(ctx, "Invalid recipient account id")
	}

	cmd, err := commands.NewTransferPointsCommand(fromID, toID, req.Amount)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.transferPointsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, err)
	}

	return respondLedgerResult(ctx, result)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := req.toCommand()
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, account.ErrInsufficientPoints):
			return conflict(ctx, "Insufficient points to cover the delivery cost")
		case errors.Is(err, errs.ErrObjectNotFound):
			return notFound(ctx, "Sender account not found")
		default:
			return internalError(ctx, err)
		}
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID: cmd.OrderID().String(),
	})
}

// GetAvailableOrders handles GET /api/v1/orders/available.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	limit, offset, err := parsePagination(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetAvailableOrdersQuery(limit, offset)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getAvailableOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaryResponses(orders))
}

// GetNearbyOrders handles GET /api/v1/orders/nearby.
func (s *Server) GetNearbyOrders(ctx echo.Context) error {
	longitude, err := parseFloatParam(ctx, "longitude")
	if err != nil {
		return badRequest(ctx, "Invalid longitude")
	}
	latitude, err := parseFloatParam(ctx, "latitude")
	if err != nil {
		return badRequest(ctx, "Invalid latitude")
	}

	origin, err := kernel.NewGeoPoint(longitude, latitude)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	radiusKm := 0.0
	if raw := ctx.QueryParam("radius_km"); raw != "" {
		radiusKm, err = parseFloatParam(ctx, "radius_km")
		if err != nil {
			return badRequest(ctx, "Invalid radius_km")
		}
	}

	limit, offset, err := parsePagination(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetNearbyOrdersQuery(origin, radiusKm, limit, offset)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getNearbyOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, err)
	}

	response := make([]NearbyOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = NearbyOrderResponse{
			OrderSummaryResponse: toOrderSummaryResponse(o.OrderSummary),
			DistanceFromOriginKm: o.DistanceFromOriginKm,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ClaimOrder handles POST /api/v1/orders/:id/claim.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	orderID, actorID, err := parseLifecycleRequest(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, actorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondLifecycleError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartDelivery handles POST /api/v1/orders/:id/start.
func (s *Server) StartDelivery(ctx echo.Context) error {
	orderID, actorID, err := parseLifecycleRequest(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewStartDeliveryCommand(orderID, actorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.startDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondLifecycleError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	orderID, actorID, err := parseLifecycleRequest(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, actorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondLifecycleError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CompleteDeliveryResponse{
		RewardCredited: result.RewardCredited(),
		HunterBalance:  result.HunterBalance(),
	})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, actorID, err := parseLifecycleRequest(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondLifecycleError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// respondLifecycleError maps order lifecycle failures to status codes.
func respondLifecycleError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrOrderNotFound):
		return notFound(ctx, "Order not found")
	case errors.Is(err, order.ErrCannotClaimOwnOrder),
		errors.Is(err, order.ErrNotOrderHunter),
		errors.Is(err, order.ErrNotOrderSender):
		return forbidden(ctx, err.Error())
	case errors.Is(err, order.ErrOrderNotAvailable):
		return conflict(ctx, "Order is no longer available in the expected status")
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err.Error())
	default:
		return internalError(ctx, err)
	}
}

// respondLedgerResult renders a ledger outcome: applied operations are 200,
// failures map to the closest HTTP status.
func respondLedgerResult(ctx echo.Context, result account.LedgerResult) error {
	response := LedgerResultResponse{
		Applied: result.Applied(),
		Amount:  result.Amount(),
		Balance: result.Balance(),
		Failure: string(result.Failure()),
	}

	switch result.Failure() {
	case account.FailureNone:
		return ctx.JSON(http.StatusOK, response)
	case account.FailureAccountNotFound:
		return ctx.JSON(http.StatusNotFound, response)
	case account.FailureInsufficientFunds:
		return ctx.JSON(http.StatusConflict, response)
	default:
		return ctx.JSON(http.StatusInternalServerError, response)
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func conflict(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusConflict, ErrorResponse{
		Code:    http.StatusConflict,
		Message: message,
	})
}

func forbidden(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusForbidden, ErrorResponse{
		Code:    http.StatusForbidden,
		Message: message,
	})
}

func internalError(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	})
}
