package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	authmodel "github.com/gdk/monitoring/internal/auth/model"
	"github.com/gdk/monitoring/internal/monitoring/model"
)

// Authenticator validates submitted credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*authmodel.User, error)
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(subject, role string) (string, error)
}

type Api struct {
	auth   Authenticator
	tokens TokenIssuer
}

func NewApi(auth Authenticator, tokens TokenIssuer, router *gin.Engine) *Api {
	api := &Api{auth: auth, tokens: tokens}
	api.setupRouters(router)
	return api
}

func (api *Api) setupRouters(router *gin.Engine) {
	router.POST("/auth/login", api.Login)
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// Login exchanges form-encoded credentials for a bearer token
// (POST /auth/login).
func (api *Api) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil || form.Username == "" || form.Password == "" {
		c.JSON(http.StatusUnauthorized, model.NewError(model.ErrorCodeUnauthorized, authmodel.ErrInvalidCredentials.Error()))
		return
	}

	user, err := api.auth.Authenticate(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if err == authmodel.ErrInvalidCredentials {
			// Uniform message: do not reveal whether the username exists.
			c.JSON(http.StatusUnauthorized, model.NewError(model.ErrorCodeUnauthorized, authmodel.ErrInvalidCredentials.Error()))
			return
		}
		log.Error().Err(err).Msg("login: credential lookup failed")
		c.JSON(http.StatusInternalServerError, model.NewError(model.ErrorCodeInternal, "internal server error"))
		return
	}

	token, err := api.tokens.Issue(user.Username, user.Role)
	if err != nil {
		log.Error().Err(err).Str("username", user.Username).Msg("login: token signing failed")
		c.JSON(http.StatusInternalServerError, model.NewError(model.ErrorCodeInternal, "internal server error"))
		return
	}

	c.JSON(http.StatusOK, authmodel.TokenResponse{AccessToken: token, TokenType: "bearer"})
}
