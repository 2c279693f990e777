package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/reservio/reservation-service/internal/errs"
	"github.com/reservio/reservation-service/internal/model"
)

type Repository interface {
	CreateOwner(ctx context.Context, req model.CreateOwnerRequest) (model.Owner, error)
	GetOwner(ctx context.Context, id int) (model.Owner, error)
	ListOwners(ctx context.Context, q model.OwnerQuery) ([]model.Owner, error)
	UpdateOwner(ctx context.Context, id int, req model.UpdateOwnerRequest) (model.Owner, error)
	DeleteOwner(ctx context.Context, id int) error
	DeleteOwners(ctx context.Context) (int, error)

	CreateRestaurant(ctx context.Context, req model.CreateRestaurantRequest) (model.Restaurant, error)
	GetRestaurant(ctx context.Context, id int) (model.Restaurant, error)
	ListRestaurants(ctx context.Context, q model.RestaurantQuery) ([]model.Restaurant, error)
	UpdateRestaurant(ctx context.Context, id int, req model.UpdateRestaurantRequest) (model.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id int) error
	DeleteRestaurants(ctx context.Context) (int, error)

	CreateAddress(ctx context.Context, req model.CreateAddressRequest) (model.Address, error)
	GetAddress(ctx context.Context, id int) (model.Address, error)
	ListAddresses(ctx context.Context, q model.AddressQuery) ([]model.Address, error)
	UpdateAddress(ctx context.Context, id int, req model.UpdateAddressRequest) (model.Address, error)
	DeleteAddress(ctx context.Context, id int) error
	DeleteAddresses(ctx context.Context) (int, error)

	CreateBusinessHour(ctx context.Context, req model.CreateBusinessHourRequest) (model.BusinessHour, error)
	GetBusinessHour(ctx context.Context, id int) (model.BusinessHour, error)
	ListBusinessHours(ctx context.Context, q model.BusinessHourQuery) ([]model.BusinessHour, error)
	UpdateBusinessHour(ctx context.Context, id int, req model.UpdateBusinessHourRequest) (model.BusinessHour, error)
	DeleteBusinessHour(ctx context.Context, id int) error
	DeleteBusinessHours(ctx context.Context) (int, error)

	CreateTable(ctx context.Context, req model.CreateTableRequest) (model.Table, error)
	GetTable(ctx context.Context, id int) (model.Table, error)
	ListTables(ctx context.Context, q model.TableQuery) ([]model.Table, error)
	UpdateTable(ctx context.Context, id int, req model.UpdateTableRequest) (model.Table, error)
	DeleteTable(ctx context.Context, id int) error
	DeleteTables(ctx context.Context) (int, error)

	CreateReservation(ctx context.Context, tableID int, req model.CreateReservationRequest) (model.Reservation, error)
	GetReservation(ctx context.Context, id int) (model.Reservation, error)
	ListReservations(ctx context.Context, q model.ReservationQuery) ([]model.Reservation, error)
	UpdateReservation(ctx context.Context, id int, req model.UpdateReservationRequest) (model.Reservation, error)
	DeleteReservation(ctx context.Context, id int) (model.Reservation, error)
	DeleteReservations(ctx context.Context) (int, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	ownerTableName        = `owner`
	restaurantTableName   = `restaurant`
	addressTableName      = `address`
	businessHourTableName = `business_hour`
	tableTableName        = `restaurant_table`
	reservationTableName  = `reservation`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// wrapErr maps driver-level failures onto the sentinel errors the
// handlers switch on.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ForeignKeyViolation, pgerrcode.UniqueViolation, pgerrcode.CheckViolation:
			return errors.Wrap(errs.ErrConflict, pgErr.Detail)
		}
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code == sqlite3.ErrConstraint {
			return errors.Wrap(errs.ErrConflict, sqliteErr.Error())
		}
	}
	return err
}

func (r *repository) deleteByID(ctx context.Context, table string, id int) error {
	q, args, err := qb.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return wrapErr(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) deleteAll(ctx context.Context, table string) (int, error) {
	q, args, err := qb.Delete(table).ToSql()
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, wrapErr(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}
