package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/albumlist/albumlist-relay/pkg/api"
	"github.com/albumlist/albumlist-relay/pkg/clients/database/queries"
	foundation "github.com/estafette/estafette-foundation"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const uniqueViolation = "23505"

var (
	// ErrTeamNotFound is returned if a query for a team mapping returns no results
	ErrTeamNotFound = errors.New("the team mapping can't be found")

	// ErrTeamAlreadyRegistered is returned when inserting a mapping for a team that already has one
	ErrTeamAlreadyRegistered = errors.New("a mapping already exists for the team")
)

// Client is the interface for communicating with the mapping store
//
//go:generate mockgen -package=database -destination ./mock.go -source=client.go
type Client interface {
	Connect(ctx context.Context) (err error)
	ConnectWithDriverAndSource(ctx context.Context, driverName, dataSourceName string) (err error)
	AwaitDatabaseReadiness(ctx context.Context) (err error)
	MigrateSchema(ctx context.Context) (err error)

	InsertTeamMapping(ctx context.Context, teamID, botToken string) (err error)
	GetTeamMapping(ctx context.Context, teamID string) (mapping *TeamMapping, err error)
	GetTeamMappingByBotToken(ctx context.Context, botToken string) (mapping *TeamMapping, err error)
	GetTeamMappings(ctx context.Context) (mappings []*TeamMapping, err error)
	UpdateTarget(ctx context.Context, teamID string, target api.Target) (err error)
	UpdateBotToken(ctx context.Context, teamID, botToken string) (err error)
	UpdatePlatformTokens(ctx context.Context, teamID, accessToken, refreshToken string) (err error)
	DeleteTeamMapping(ctx context.Context, teamID string) (err error)
}

// NewClient returns a new database.Client
func NewClient(config *api.APIConfig) Client {
	return &client{
		databaseDriver: "postgres",
		config:         config,
	}
}

type client struct {
	databaseDriver     string
	config             *api.APIConfig
	databaseConnection *sql.DB
}

// Connect sets up a connection with PostgreSQL
func (c *client) Connect(ctx context.Context) (err error) {

	log.Debug().Msgf("Connecting to database %v on host %v...", c.config.Database.DatabaseName, c.config.Database.Host)

	return c.ConnectWithDriverAndSource(ctx, c.databaseDriver, c.config.Database.DataSourceName())
}

// ConnectWithDriverAndSource set up a connection with any database
func (c *client) ConnectWithDriverAndSource(_ context.Context, driverName, dataSourceName string) (err error) {

	log.Debug().Msgf("Opening database connection with driver %v...", driverName)
	c.databaseConnection, err = sql.Open(driverName, dataSourceName)
	if err != nil {
		return
	}

	if c.config.Database.MaxOpenConns > 0 {
		log.Debug().Msgf("Setting max open connections to database to %v...", c.config.Database.MaxOpenConns)
		c.databaseConnection.SetMaxOpenConns(c.config.Database.MaxOpenConns)
	}

	if c.config.Database.MaxIdleConns > 0 {
		log.Debug().Msgf("Setting max idle connections to database to %v...", c.config.Database.MaxIdleConns)
		c.databaseConnection.SetMaxIdleConns(c.config.Database.MaxIdleConns)
	}

	if c.config.Database.ConnMaxLifetimeMinutes > 0 {
		log.Debug().Msgf("Setting max lifetime for connections to database to %v minutes...", c.config.Database.ConnMaxLifetimeMinutes)
		c.databaseConnection.SetConnMaxLifetime(time.Duration(c.config.Database.ConnMaxLifetimeMinutes) * time.Minute)
	}

	return
}

func (c *client) AwaitDatabaseReadiness(ctx context.Context) (err error) {
	return foundation.Retry(func() error {
		log.Debug().Msg("Checking if database is ready...")
		return c.databaseConnection.PingContext(ctx)
	}, foundation.Attempts(12), foundation.DelayMillisecond(5000), foundation.Fixed())
}

// MigrateSchema creates the mapping table and applies additive column changes
func (c *client) MigrateSchema(ctx context.Context) (err error) {
	log.Debug().Msg("Migrating team_mappings schema...")

	_, err = c.databaseConnection.ExecContext(ctx, queries.MappingDDL)

	return
}

func (c *client) InsertTeamMapping(ctx context.Context, teamID, botToken string) (err error) {
	if teamID == "" {
		return fmt.Errorf("InsertTeamMapping argument teamID is empty")
	}

	_, err = insertTeamMappingQuery(teamID, botToken).RunWith(c.databaseConnection).ExecContext(ctx)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrTeamAlreadyRegistered
		}
		return err
	}

	return nil
}

func (c *client) GetTeamMapping(ctx context.Context, teamID string) (mapping *TeamMapping, err error) {
	if teamID == "" {
		return nil, fmt.Errorf("GetTeamMapping argument teamID is empty")
	}

	row := selectTeamMappingQuery(sq.Eq{"a.team_id": teamID}).RunWith(c.databaseConnection).QueryRowContext(ctx)

	return c.scanTeamMapping(row)
}

func (c *client) GetTeamMappingByBotToken(ctx context.Context, botToken string) (mapping *TeamMapping, err error) {
	if botToken == "" {
		return nil, fmt.Errorf("GetTeamMappingByBotToken argument botToken is empty")
	}

	row := selectTeamMappingQuery(sq.Eq{"a.bot_token": botToken}).RunWith(c.databaseConnection).QueryRowContext(ctx)

	return c.scanTeamMapping(row)
}

func (c *client) GetTeamMappings(ctx context.Context) (mappings []*TeamMapping, err error) {
	rows, err := selectTeamMappingsQuery().RunWith(c.databaseConnection).QueryContext(ctx)
	if err != nil {
		return nil, err
	}

	return c.scanTeamMappings(rows)
}

func (c *client) UpdateTarget(ctx context.Context, teamID string, target api.Target) (err error) {
	if teamID == "" {
		return fmt.Errorf("UpdateTarget argument teamID is empty")
	}

	return c.execUpdate(ctx, updateTeamMappingQuery(teamID, map[string]interface{}{
		"target_url": api.FormatTarget(target),
	}))
}

func (c *client) UpdateBotToken(ctx context.Context, teamID, botToken string) (err error) {
	if teamID == "" {
		return fmt.Errorf("UpdateBotToken argument teamID is empty")
	}

	return c.execUpdate(ctx, updateTeamMappingQuery(teamID, map[string]interface{}{
		"bot_token": botToken,
	}))
}

func (c *client) UpdatePlatformTokens(ctx context.Context, teamID, accessToken, refreshToken string) (err error) {
	if teamID == "" {
		return fmt.Errorf("UpdatePlatformTokens argument teamID is empty")
	}

	return c.execUpdate(ctx, updateTeamMappingQuery(teamID, map[string]interface{}{
		"platform_token":         accessToken,
		"platform_refresh_token": refreshToken,
	}))
}

func (c *client) DeleteTeamMapping(ctx context.Context, teamID string) (err error) {
	if teamID == "" {
		return fmt.Errorf("DeleteTeamMapping argument teamID is empty")
	}

	_, err = deleteTeamMappingQuery(teamID).RunWith(c.databaseConnection).ExecContext(ctx)

	return
}

func (c *client) execUpdate(ctx context.Context, query sq.UpdateBuilder) (err error) {
	result, err := query.RunWith(c.databaseConnection).ExecContext(ctx)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTeamNotFound
	}

	return nil
}

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func selectTeamMappingsQuery() sq.SelectBuilder {
	return psql().
		Select("a.team_id, a.target_url, a.bot_token, a.platform_token, a.platform_refresh_token, a.inserted_at, a.updated_at").
		From("team_mappings a").
		OrderBy("a.inserted_at")
}

func selectTeamMappingQuery(where sq.Eq) sq.SelectBuilder {
	return psql().
		Select("a.team_id, a.target_url, a.bot_token, a.platform_token, a.platform_refresh_token, a.inserted_at, a.updated_at").
		From("team_mappings a").
		Where(where).
		Limit(uint64(1))
}

func insertTeamMappingQuery(teamID, botToken string) sq.InsertBuilder {
	return psql().
		Insert("team_mappings").
		Columns("team_id", "bot_token").
		Values(teamID, botToken)
}

// updateTeamMappingQuery sets the given columns; squirrel sorts map keys so the statement is deterministic
func updateTeamMappingQuery(teamID string, values map[string]interface{}) sq.UpdateBuilder {
	return psql().
		Update("team_mappings").
		SetMap(values).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"team_id": teamID})
}

func deleteTeamMappingQuery(teamID string) sq.DeleteBuilder {
	return psql().
		Delete("team_mappings").
		Where(sq.Eq{"team_id": teamID})
}

func (c *client) scanTeamMapping(row sq.RowScanner) (mapping *TeamMapping, err error) {

	mapping = &TeamMapping{}
	var targetURL string

	if err = row.Scan(
		&mapping.TeamID,
		&targetURL,
		&mapping.BotToken,
		&mapping.PlatformToken,
		&mapping.PlatformRefreshToken,
		&mapping.InsertedAt,
		&mapping.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}

		return nil, err
	}

	mapping.Target = api.ParseTarget(targetURL)

	return mapping, nil
}

func (c *client) scanTeamMappings(rows *sql.Rows) (mappings []*TeamMapping, err error) {
	mappings = make([]*TeamMapping, 0)

	defer closeRows(rows)
	for rows.Next() {
		mapping, err := c.scanTeamMapping(rows)
		if err != nil {
			return nil, err
		}
		mappings = append(mappings, mapping)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return mappings, nil
}

func closeRows(rows *sql.Rows) {
	err := rows.Close()
	if err != nil {
		log.Error().Err(err).Msg("failed to close rows")
	}
}
