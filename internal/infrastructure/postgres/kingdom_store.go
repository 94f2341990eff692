package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pkg/errors"

	"github.com/khedhrije/kingdom-dashboard/internal/domain"
	"github.com/khedhrije/kingdom-dashboard/pkg/metrics"
	"github.com/khedhrije/kingdom-dashboard/pkg/monitoring"
)

const (
	findKingdomQuery = `SELECT reino, monedas FROM usuarios WHERE id = $1`
	pingQuery        = `SELECT current_setting('server_version'), EXISTS(SELECT 1 FROM usuarios WHERE id = $1)`
)

// Conn is the part of *pgx.Conn the store needs.
type Conn interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close(ctx context.Context) error
}

// Connector opens one dedicated connection per call.
type Connector interface {
	Connect(ctx context.Context) (Conn, error)
}

// ConnectorFunc adapts a function to Connector.
type ConnectorFunc func(ctx context.Context) (Conn, error)

func (f ConnectorFunc) Connect(ctx context.Context) (Conn, error) { return f(ctx) }

// NewPgxConnector dials connString with pgx.Connect on every call; no pool.
func NewPgxConnector(connString string) Connector {
	return ConnectorFunc(func(ctx context.Context) (Conn, error) {
		conn, err := pgx.Connect(ctx, connString)
		if err != nil {
			return nil, err
		}
		return conn, nil
	})
}

type KingdomStore struct {
	connector Connector
	metrics   *metrics.Metrics
	log       *slog.Logger
}

// NewKingdomStore returns a store reading usuarios through connector.
// m may be nil.
func NewKingdomStore(connector Connector, m *metrics.Metrics, log *slog.Logger) *KingdomStore {
	if log == nil {
		log = slog.Default()
	}
	return &KingdomStore{connector: connector, metrics: m, log: log}
}

// withConn opens a dedicated connection, runs fn and closes it on every path.
func (s *KingdomStore) withConn(ctx context.Context, fn func(conn Conn) error) error {
	conn, err := s.connector.Connect(ctx)
	if err != nil {
		return errors.Wrap(err, "store: connect")
	}
	s.metrics.ConnectionOpened()
	defer func() {
		// the request may already be cancelled; Close must still run
		if cerr := conn.Close(context.WithoutCancel(ctx)); cerr != nil {
			s.log.WarnContext(ctx, "closing database connection", slog.Any("error", cerr))
		}
		s.metrics.ConnectionClosed()
	}()
	return fn(conn)
}

// FindKingdom reads the dashboard user's row. NULL columns come back as nil
// fields.
func (s *KingdomStore) FindKingdom(ctx context.Context) (domain.KingdomRecord, error) {
	var (
		reino   pgtype.Text
		monedas pgtype.Int8
	)
	err := s.withConn(ctx, func(conn Conn) error {
		err := conn.QueryRow(ctx, findKingdomQuery, domain.DashboardUserID).Scan(&reino, &monedas)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrUserNotFound
		}
		return errors.Wrap(err, "store: find kingdom")
	})
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		s.metrics.RecordLookup(metrics.OutcomeNotFound)
		return domain.KingdomRecord{}, err
	case err != nil:
		s.metrics.RecordLookup(metrics.OutcomeError)
		return domain.KingdomRecord{}, err
	}

	var rec domain.KingdomRecord
	if reino.Valid {
		rec.Reino = &reino.String
	}
	if monedas.Valid {
		rec.Monedas = &monedas.Int64
	}
	s.metrics.RecordLookup(metrics.OutcomeFound)
	return rec, nil
}

// Ping connects like FindKingdom and checks that usuarios can be queried.
func (s *KingdomStore) Ping(ctx context.Context) (monitoring.DatabaseStatus, error) {
	var st monitoring.DatabaseStatus
	err := s.withConn(ctx, func(conn Conn) error {
		err := conn.QueryRow(ctx, pingQuery, domain.DashboardUserID).Scan(&st.ServerVersion, &st.RecordPresent)
		return errors.Wrap(err, "store: ping")
	})
	if err != nil {
		return monitoring.DatabaseStatus{}, err
	}
	return st, nil
}
