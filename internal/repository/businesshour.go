package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/reservio/reservation-service/internal/model"
)

func (r *repository) CreateBusinessHour(ctx context.Context, req model.CreateBusinessHourRequest) (model.BusinessHour, error) {
	q, args, err := qb.Insert(businessHourTableName).
		Columns("weekday", "open_time", "open_for_reservation_until", "close_time", "restaurant_id").
		Values(req.Weekday, req.OpenTime, req.OpenForReservationUntil, req.CloseTime, req.RestaurantID).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.BusinessHour{}, err
	}
	var bh model.BusinessHour
	if err := r.db.GetContext(ctx, &bh, q, args...); err != nil {
		r.log.Error("CreateBusinessHour", zap.String("q", q), zap.Any("args", args))
		return model.BusinessHour{}, wrapErr(err)
	}
	return bh, nil
}

func (r *repository) GetBusinessHour(ctx context.Context, id int) (model.BusinessHour, error) {
	q, args, err := qb.Select("id", "weekday", "open_time", "open_for_reservation_until", "close_time", "restaurant_id").
		From(businessHourTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.BusinessHour{}, err
	}
	var bh model.BusinessHour
	if err := r.db.GetContext(ctx, &bh, q, args...); err != nil {
		return model.BusinessHour{}, wrapErr(err)
	}
	return bh, nil
}

func (r *repository) ListBusinessHours(ctx context.Context, query model.BusinessHourQuery) ([]model.BusinessHour, error) {
	b := qb.Select("id", "weekday", "open_time", "open_for_reservation_until", "close_time", "restaurant_id").
		From(businessHourTableName).
		OrderBy("restaurant_id", "weekday")
	if query.RestaurantID != 0 {
		b = b.Where(sq.Eq{"restaurant_id": query.RestaurantID})
	}
	if query.Weekday != nil {
		b = b.Where(sq.Eq{"weekday": *query.Weekday})
	}
	q, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	hours := make([]model.BusinessHour, 0)
	if err := r.db.SelectContext(ctx, &hours, q, args...); err != nil {
		return nil, wrapErr(err)
	}
	return hours, nil
}

func (r *repository) UpdateBusinessHour(ctx context.Context, id int, req model.UpdateBusinessHourRequest) (model.BusinessHour, error) {
	set := map[string]any{}
	if req.Weekday != nil {
		set["weekday"] = *req.Weekday
	}
	if req.OpenTime != nil {
		set["open_time"] = *req.OpenTime
	}
	if req.OpenForReservationUntil != nil {
		set["open_for_reservation_until"] = *req.OpenForReservationUntil
	}
	if req.CloseTime != nil {
		set["close_time"] = *req.CloseTime
	}
	if len(set) == 0 {
		return r.GetBusinessHour(ctx, id)
	}
	q, args, err := qb.Update(businessHourTableName).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.BusinessHour{}, err
	}
	var bh model.BusinessHour
	if err := r.db.GetContext(ctx, &bh, q, args...); err != nil {
		return model.BusinessHour{}, wrapErr(err)
	}
	return bh, nil
}

func (r *repository) DeleteBusinessHour(ctx context.Context, id int) error {
	return r.deleteByID(ctx, businessHourTableName, id)
}

func (r *repository) DeleteBusinessHours(ctx context.Context) (int, error) {
	return r.deleteAll(ctx, businessHourTableName)
}
