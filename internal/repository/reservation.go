package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/reservio/reservation-service/internal/errs"
	"github.com/reservio/reservation-service/internal/model"
)

// CreateReservation inserts the reservation after verifying, inside the same
// transaction, that no existing reservation on the table overlaps the
// requested window.
func (r *repository) CreateReservation(ctx context.Context, tableID int, req model.CreateReservationRequest) (model.Reservation, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Reservation{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	q, args, err := qb.Select("count(*)").
		From(reservationTableName).
		Where(sq.Eq{"table_id": tableID}).
		Where(sq.Lt{"reserved_from": req.ReservedUntil.Time}).
		Where(sq.Gt{"reserved_until": req.ReservedFrom.Time}).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var overlapping int
	if err := tx.GetContext(ctx, &overlapping, q, args...); err != nil {
		return model.Reservation{}, wrapErr(err)
	}
	if overlapping > 0 {
		return model.Reservation{}, errs.ErrOverlap
	}

	q, args, err = qb.Insert(reservationTableName).
		Columns("customer_name", "customer_email", "reserved_from", "reserved_until",
			"guest_amount", "customer_phone", "additional_information", "table_id").
		Values(req.CustomerName, req.CustomerEmail, req.ReservedFrom.Time, req.ReservedUntil.Time,
			req.GuestAmount, req.CustomerPhone, req.AdditionalInformation, tableID).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var rsv model.Reservation
	if err := tx.GetContext(ctx, &rsv, q, args...); err != nil {
		r.log.Error("CreateReservation", zap.String("q", q), zap.Any("args", args))
		return model.Reservation{}, wrapErr(err)
	}

	if err := tx.Commit(); err != nil {
		return model.Reservation{}, err
	}
	return rsv, nil
}

var reservationColumns = []string{
	"id", "customer_name", "customer_email", "reserved_from", "reserved_until",
	"guest_amount", "customer_phone", "additional_information", "table_id",
}

func (r *repository) GetReservation(ctx context.Context, id int) (model.Reservation, error) {
	q, args, err := qb.Select(reservationColumns...).
		From(reservationTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var rsv model.Reservation
	if err := r.db.GetContext(ctx, &rsv, q, args...); err != nil {
		return model.Reservation{}, wrapErr(err)
	}
	return rsv, nil
}

func (r *repository) ListReservations(ctx context.Context, query model.ReservationQuery) ([]model.Reservation, error) {
	b := qb.Select(reservationColumns...).
		From(reservationTableName).
		OrderBy("reserved_from")
	if query.TableID != 0 {
		b = b.Where(sq.Eq{"table_id": query.TableID})
	}
	if query.CustomerName != "" {
		b = b.Where(sq.Eq{"customer_name": query.CustomerName})
	}
	if query.CustomerEmail != "" {
		b = b.Where(sq.Eq{"customer_email": query.CustomerEmail})
	}
	if query.StartingFrom != nil {
		b = b.Where(sq.GtOrEq{"reserved_from": query.StartingFrom.Time})
	}
	if query.EndingBefore != nil {
		b = b.Where(sq.LtOrEq{"reserved_until": query.EndingBefore.Time})
	}
	if query.MinGuestAmount != 0 {
		b = b.Where(sq.GtOrEq{"guest_amount": query.MinGuestAmount})
	}
	if query.MaxGuestAmount != 0 {
		b = b.Where(sq.LtOrEq{"guest_amount": query.MaxGuestAmount})
	}
	q, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	reservations := make([]model.Reservation, 0)
	if err := r.db.SelectContext(ctx, &reservations, q, args...); err != nil {
		return nil, wrapErr(err)
	}
	return reservations, nil
}

func (r *repository) UpdateReservation(ctx context.Context, id int, req model.UpdateReservationRequest) (model.Reservation, error) {
	set := map[string]any{}
	if req.CustomerName != nil {
		set["customer_name"] = *req.CustomerName
	}
	if req.CustomerEmail != nil {
		set["customer_email"] = *req.CustomerEmail
	}
	if req.ReservedFrom != nil {
		set["reserved_from"] = req.ReservedFrom.Time
	}
	if req.ReservedUntil != nil {
		set["reserved_until"] = req.ReservedUntil.Time
	}
	if req.GuestAmount != nil {
		set["guest_amount"] = *req.GuestAmount
	}
	if req.CustomerPhone != nil {
		set["customer_phone"] = *req.CustomerPhone
	}
	if req.AdditionalInformation != nil {
		set["additional_information"] = *req.AdditionalInformation
	}
	if len(set) == 0 {
		return r.GetReservation(ctx, id)
	}
	q, args, err := qb.Update(reservationTableName).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var rsv model.Reservation
	if err := r.db.GetContext(ctx, &rsv, q, args...); err != nil {
		return model.Reservation{}, wrapErr(err)
	}
	return rsv, nil
}

// DeleteReservation returns the deleted row so the service can publish a
// cancellation event for it.
func (r *repository) DeleteReservation(ctx context.Context, id int) (model.Reservation, error) {
	q, args, err := qb.Delete(reservationTableName).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var rsv model.Reservation
	if err := r.db.GetContext(ctx, &rsv, q, args...); err != nil {
		return model.Reservation{}, wrapErr(err)
	}
	return rsv, nil
}

func (r *repository) DeleteReservations(ctx context.Context) (int, error) {
	return r.deleteAll(ctx, reservationTableName)
}
