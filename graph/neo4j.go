package graph

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/config"
)

var (
	// ErrConnection indicates the graph store is unreachable.
	ErrConnection = errors.New("graph store unreachable")
	// ErrQuery indicates a malformed query or a query that failed server-side.
	ErrQuery = errors.New("graph query failed")
)

// Config holds the Neo4j connection settings
type Config struct {
	URI      string
	Username string
	Password string
	Database string // empty means the server default database
}

// Store wraps the Neo4j driver with read-only query execution.
// The driver holds a process-wide connection pool; construct one Store
// at startup and inject it where needed.
type Store struct {
	driver   neo4j.DriverWithContext
	database string
}

// Connect creates the driver and verifies connectivity before returning,
// so the server never accepts traffic against a dead graph store.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	driver, err := neo4j.NewDriverWithContext(
		cfg.URI,
		neo4j.BasicAuth(cfg.Username, cfg.Password, ""),
		func(c *config.Config) {
			c.MaxTransactionRetryTime = 30 * time.Second
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	log.Println("Successfully connected to Neo4j graph store.")

	return &Store{
		driver:   driver,
		database: cfg.Database,
	}, nil
}

// ExecuteRead runs a parameterized read-only query and returns all
// matching records decoded into Record maps. An empty result is not an
// error. The session is scoped to this call and closed on every path.
func (s *Store) ExecuteRead(ctx context.Context, cypher string, params map[string]any) ([]Record, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: s.database,
	})
	defer session.Close(ctx)

	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		return nil, classify(err)
	}

	raw, err := result.Collect(ctx)
	if err != nil {
		return nil, classify(err)
	}

	records := make([]Record, 0, len(raw))
	for _, r := range raw {
		records = append(records, Record(r.AsMap()))
	}

	return records, nil
}

// HealthCheck verifies the graph store is still reachable.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.driver.VerifyConnectivity(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Close releases the driver's connection pool.
func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

func classify(err error) error {
	if neo4j.IsConnectivityError(err) {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return fmt.Errorf("%w: %v", ErrQuery, err)
}
