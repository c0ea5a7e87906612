package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"google.golang.org/grpc/status"

	"github.com/accounthub/account-system/internal/api/apierr"
	"github.com/accounthub/account-system/internal/api/metrics"
	"github.com/accounthub/account-system/internal/api/response"
	"github.com/accounthub/account-system/internal/auth"
	userv1 "github.com/accounthub/account-system/proto/user/v1"
)

// UserClientFactory mints per-request client handles to the user-service
// backend. Handle creation is cheap; the underlying channel is shared.
type UserClientFactory interface {
	Client() userv1.UserServiceClient
}

// UserHandler fronts the user-service RPCs with the public HTTP surface.
type UserHandler struct {
	clients UserClientFactory
	log     zerolog.Logger
}

func NewUserHandler(clients UserClientFactory, log zerolog.Logger) *UserHandler {
	return &UserHandler{clients: clients, log: log}
}

// Register creates a new account.
//
// The existence probe runs first so a taken username surfaces as a business
// rejection without attempting the insert; the backend's unique index still
// backstops the race between probe and insert.
func (h *UserHandler) Register(c echo.Context) error {
	req, err := BindValidated[registerRequest](c, SourceBody)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	client := h.clients.Client()

	exists, err := client.UserExists(ctx, &userv1.UserExistsRequest{Username: req.Username})
	if err != nil {
		return h.rpcError(err)
	}
	if exists.GetExists() {
		return apierr.Business("account already exists")
	}

	res, err := client.UserRegister(ctx, &userv1.UserRegisterRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return h.rpcError(err)
	}

	return c.JSON(http.StatusOK, response.Success(registerResult{Result: res.GetResult()}))
}

// Login verifies credentials against the backend and returns a bearer token.
func (h *UserHandler) Login(c echo.Context) error {
	req, err := BindValidated[loginRequest](c, SourceBody)
	if err != nil {
		return err
	}

	res, err := h.clients.Client().UserLogin(c.Request().Context(), &userv1.UserLoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return h.rpcError(err)
	}

	return c.JSON(http.StatusOK, response.Success(loginResult{AccessToken: res.GetAccessToken()}))
}

// Profile returns the authenticated principal. The route sits behind the
// auth gate, so a missing principal means the middleware was bypassed.
func (h *UserHandler) Profile(c echo.Context) error {
	principal, ok := auth.PrincipalFrom(c.Request().Context())
	if !ok {
		return apierr.Unauthenticated("no authenticated principal")
	}
	return c.JSON(http.StatusOK, response.Success(principal))
}

// rpcError records and translates a backend failure exactly once, at the
// boundary where the RPC result re-enters the HTTP layer.
func (h *UserHandler) rpcError(err error) error {
	st, _ := status.FromError(err)
	metrics.RPCClientErrorsTotal.WithLabelValues(st.Code().String()).Inc()
	h.log.Error().Err(err).Str("code", st.Code().String()).Msg("user service call failed")
	return apierr.FromRPC(err)
}
