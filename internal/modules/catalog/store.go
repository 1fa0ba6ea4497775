// README: Optional Postgres-backed catalog loader using pgxpool.
package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LoadFromDB reads airports and aircraft classes once at startup. The pool
// is only needed for the duration of the load; callers may close it after.
func LoadFromDB(ctx context.Context, pool *pgxpool.Pool) (*Catalog, error) {
	rows, err := pool.Query(ctx, `SELECT code, city, lat, lng FROM airports`)
	if err != nil {
		return nil, fmt.Errorf("query airports: %w", err)
	}
	defer rows.Close()

	var airports []Airport
	for rows.Next() {
		var a Airport
		if err := rows.Scan(&a.Code, &a.City, &a.Lat, &a.Lng); err != nil {
			return nil, fmt.Errorf("scan airport: %w", err)
		}
		airports = append(airports, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read airports: %w", err)
	}

	acRows, err := pool.Query(ctx, `
		SELECT name, capacity, tier, cruise_speed_kt, rate_per_nm, range_nm, amenities
		FROM aircraft_classes
		ORDER BY tier`)
	if err != nil {
		return nil, fmt.Errorf("query aircraft: %w", err)
	}
	defer acRows.Close()

	var aircraft []AircraftClass
	for acRows.Next() {
		var a AircraftClass
		if err := acRows.Scan(&a.Name, &a.Capacity, &a.Tier, &a.CruiseSpeedKt, &a.RatePerNM, &a.RangeNM, &a.Amenities); err != nil {
			return nil, fmt.Errorf("scan aircraft: %w", err)
		}
		aircraft = append(aircraft, a)
	}
	if err := acRows.Err(); err != nil {
		return nil, fmt.Errorf("read aircraft: %w", err)
	}

	if len(airports) == 0 || len(aircraft) == 0 {
		return nil, fmt.Errorf("catalog tables are empty")
	}
	return New(airports, aircraft), nil
}

// Open connects a pool for catalog loading.
func Open(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	return pgxpool.New(ctx, dsn)
}
