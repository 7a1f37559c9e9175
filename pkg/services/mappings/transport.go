package mappings

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/albumlist/albumlist-relay/pkg/api"
	"github.com/albumlist/albumlist-relay/pkg/clients/database"
	"github.com/albumlist/albumlist-relay/pkg/services/slack"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const apiPrefix = "/api"

// NewHandler returns a mappings.Handler
func NewHandler(databaseClient database.Client, slackService slack.Service) Handler {
	return Handler{
		databaseClient: databaseClient,
		slackService:   slackService,
	}
}

type Handler struct {
	databaseClient database.Client
	slackService   slack.Service
}

// GetMappings returns every team with its target as [team, target] pairs
func (h *Handler) GetMappings(c *gin.Context) {

	mappings, err := h.databaseClient.GetTeamMappings(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Retrieving mappings failed")
		c.JSON(http.StatusInternalServerError, gin.H{"text": "failed"})
		return
	}

	pairs := make([][]string, 0, len(mappings))
	for _, m := range mappings {
		pairs = append(pairs, []string{m.TeamID, api.FormatTarget(m.Target)})
	}

	c.JSON(http.StatusOK, pairs)
}

// GetMapping returns the target of a single team, or null for unknown teams
func (h *Handler) GetMapping(c *gin.Context) {

	teamID := c.Param("teamID")

	mapping, err := h.databaseClient.GetTeamMapping(c.Request.Context(), teamID)
	if errors.Is(err, database.ErrTeamNotFound) || (err == nil && !mapping.HasTarget()) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		log.Error().Err(err).Str("team", teamID).Msg("Retrieving mapping failed")
		c.JSON(http.StatusInternalServerError, gin.H{"text": "failed"})
		return
	}

	c.JSON(http.StatusOK, api.FormatTarget(mapping.Target))
}

// Ping lets an albumlist wake itself up by its bot token; the outcome is only logged
func (h *Handler) Ping(c *gin.Context) {

	err := h.slackService.Ping(c.Request.Context(), c.Query("token"))
	if err != nil {
		log.Warn().Err(err).Msg("Pinging albumlist failed")
	}

	c.String(http.StatusOK, "")
}

// GetEndpoints lists the methods and paths of the json api
func (h *Handler) GetEndpoints(router *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		methodsByPath := map[string][]string{}
		for _, route := range router.Routes() {
			if !strings.HasPrefix(route.Path, apiPrefix) {
				continue
			}
			methodsByPath[route.Path] = append(methodsByPath[route.Path], route.Method)
		}

		paths := make([]string, 0, len(methodsByPath))
		for path := range methodsByPath {
			paths = append(paths, path)
		}
		sort.Strings(paths)

		endpoints := make([][]interface{}, 0, len(paths))
		for _, path := range paths {
			methods := methodsByPath[path]
			sort.Strings(methods)
			endpoints = append(endpoints, []interface{}{methods, path})
		}

		c.JSON(http.StatusOK, gin.H{"api": endpoints})
	}
}
