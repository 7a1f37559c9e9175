package heroku

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// NewHandler returns a heroku.Handler
func NewHandler(herokuService Service) Handler {
	return Handler{
		herokuService: herokuService,
	}
}

type Handler struct {
	herokuService Service
}

// HandleOAuthRedirect completes the platform authorization started from the /albumlist heroku link
func (h *Handler) HandleOAuthRedirect(c *gin.Context) {

	code := c.Query("code")
	state := c.Query("state")

	teamID, err := h.herokuService.CompleteAuthorization(c.Request.Context(), code, state)
	if err != nil {
		log.Warn().Err(err).Str("team", teamID).Msg("Completing platform authorization failed")
		c.String(http.StatusOK, "Failed")
		return
	}

	c.String(http.StatusOK, "OK")
}
