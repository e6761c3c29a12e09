package database

import (
	"context"
	"fmt"

	"car-recommender/internal/common/config"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Neo4jClient wraps the Neo4j driver for the catalog graph store.
type Neo4jClient struct {
	Driver   neo4j.DriverWithContext
	database string
}

// NewNeo4j creates a driver and verifies connectivity once at startup. The
// caller owns the client for the process lifetime; the recommendation core
// never constructs connections lazily.
func NewNeo4j(ctx context.Context, cfg config.Neo4jConfig) (*Neo4jClient, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.User, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("neo4j driver init failed: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("neo4j connectivity check failed: %w", err)
	}

	return &Neo4jClient{Driver: driver, database: cfg.Database}, nil
}

// ReadSession opens a read-only session against the configured database.
func (c *Neo4jClient) ReadSession(ctx context.Context) neo4j.SessionWithContext {
	return c.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: c.database,
	})
}

// Ping tests the Neo4j connection.
func (c *Neo4jClient) Ping(ctx context.Context) error {
	if err := c.Driver.VerifyConnectivity(ctx); err != nil {
		return fmt.Errorf("neo4j ping failed: %w", err)
	}
	return nil
}

// Close closes the underlying driver.
func (c *Neo4jClient) Close(ctx context.Context) error {
	if c.Driver != nil {
		return c.Driver.Close(ctx)
	}
	return nil
}
