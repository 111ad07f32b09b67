package counter

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tapglue/hitcounter/platform/pg"
)

const (
	pgIncrCounter = `
		INSERT INTO %s.counters AS c(key, value)
		VALUES($1, 1)
		ON CONFLICT (key) DO
		UPDATE SET
			value = c.value + 1,
			updated_at = (now() AT TIME ZONE 'utc')
		RETURNING
			value`

	pgCreateSchema = `CREATE SCHEMA IF NOT EXISTS %s`
	pgCreateTable  = `
		CREATE TABLE IF NOT EXISTS %s.counters(
			key TEXT NOT NULL,
			value BIGINT NOT NULL CHECK (value >= 0),
			created_at TIMESTAMP WITHOUT TIME ZONE DEFAULT (now() AT TIME ZONE 'utc'),
			updated_at TIMESTAMP WITHOUT TIME ZONE DEFAULT (now() AT TIME ZONE 'utc'),

			PRIMARY KEY (key)
		)`
	pgDropTable = `DROP TABLE IF EXISTS %s.counters CASCADE`
)

type pgService struct {
	db *sqlx.DB
}

// PostgresService returns a Postgres backed Service implementation. Each
// namespace maps to a schema holding a counters table.
func PostgresService(db *sqlx.DB) Service {
	return &pgService{db: db}
}

func (s *pgService) Incr(ns, key string) (uint64, error) {
	var (
		query = fmt.Sprintf(pgIncrCounter, pg.Namespace(ns))

		value uint64
	)

	err := s.db.Get(&value, query, key)
	if err != nil && pg.IsRelationNotFound(pg.WrapError(err)) {
		if err := s.Setup(ns); err != nil {
			return 0, err
		}

		err = s.db.Get(&value, query, key)
	}

	return value, err
}

func (s *pgService) Setup(ns string) error {
	ns = pg.Namespace(ns)

	for _, q := range []string{
		fmt.Sprintf(pgCreateSchema, ns),
		fmt.Sprintf(pgCreateTable, ns),
	} {
		_, err := s.db.Exec(q)
		if err != nil {
			return fmt.Errorf("setup '%s': %s", q, err)
		}
	}

	return nil
}

func (s *pgService) Teardown(ns string) error {
	for _, q := range []string{
		fmt.Sprintf(pgDropTable, pg.Namespace(ns)),
	} {
		_, err := s.db.Exec(q)
		if err != nil {
			return fmt.Errorf("teardown '%s': %s", q, err)
		}
	}

	return nil
}
