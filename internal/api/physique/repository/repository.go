package physiqueRepository

import (
	"PhysiqueGolang/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		User:        &userRepository{q: sqlExecutor, log: r.log},
		Scan:        &scanRepository{q: sqlExecutor, log: r.log},
		Baseline:    &baselineRepository{q: sqlExecutor, log: r.log},
		Progression: &progressionRepository{q: sqlExecutor, log: r.log},
		Commit:      commitFunc,
		Rollback:    rollbackFunc,
	}, nil
}

type Client struct {
	User interface {
		CreateUser(c context.Context, user entity.User) error
		GetUserByID(c context.Context, id string) (entity.User, error)
	}

	Scan interface {
		CreateScan(c context.Context, scan entity.Scan) error
		GetScanByID(c context.Context, id string) (entity.Scan, error)
		GetBaselineScan(c context.Context, userID string) (entity.Scan, error)
		GetScansByUserID(c context.Context, userID string, limit int) ([]entity.Scan, error)
	}

	Baseline interface {
		SaveBaselineMetrics(c context.Context, metrics entity.BaselineMetrics) error
		GetBaselineMetrics(c context.Context, userID string) (entity.BaselineMetrics, error)
	}

	Progression interface {
		SaveProgression(c context.Context, progression entity.Progression) error
		GetProgressionByUserID(c context.Context, userID string) ([]entity.Progression, error)
	}

	Commit   func() error
	Rollback func() error
}

type userRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type scanRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type baselineRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type progressionRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
