package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/reservio/reservation-service/internal/model"
)

func (r *repository) CreateTable(ctx context.Context, req model.CreateTableRequest) (model.Table, error) {
	q, args, err := qb.Insert(tableTableName).
		Columns("name", "seats", "min_guests_required_for_reservation", "restaurant_id").
		Values(req.Name, req.Seats, req.MinGuests, req.RestaurantID).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Table{}, err
	}
	var table model.Table
	if err := r.db.GetContext(ctx, &table, q, args...); err != nil {
		r.log.Error("CreateTable", zap.String("q", q), zap.Any("args", args))
		return model.Table{}, wrapErr(err)
	}
	return table, nil
}

func (r *repository) GetTable(ctx context.Context, id int) (model.Table, error) {
	q, args, err := qb.Select("id", "name", "seats", "min_guests_required_for_reservation", "restaurant_id").
		From(tableTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Table{}, err
	}
	var table model.Table
	if err := r.db.GetContext(ctx, &table, q, args...); err != nil {
		return model.Table{}, wrapErr(err)
	}
	return table, nil
}

func (r *repository) ListTables(ctx context.Context, query model.TableQuery) ([]model.Table, error) {
	b := qb.Select("id", "name", "seats", "min_guests_required_for_reservation", "restaurant_id").
		From(tableTableName).
		OrderBy("id")
	if query.Name != "" {
		b = b.Where(sq.Eq{"name": query.Name})
	}
	if query.RestaurantID != 0 {
		b = b.Where(sq.Eq{"restaurant_id": query.RestaurantID})
	}
	if query.MinSeats != 0 {
		b = b.Where(sq.GtOrEq{"seats": query.MinSeats})
	}
	if query.MaxSeats != 0 {
		b = b.Where(sq.LtOrEq{"seats": query.MaxSeats})
	}
	q, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	tables := make([]model.Table, 0)
	if err := r.db.SelectContext(ctx, &tables, q, args...); err != nil {
		return nil, wrapErr(err)
	}
	return tables, nil
}

func (r *repository) UpdateTable(ctx context.Context, id int, req model.UpdateTableRequest) (model.Table, error) {
	set := map[string]any{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Seats != nil {
		set["seats"] = *req.Seats
	}
	if req.MinGuests != nil {
		set["min_guests_required_for_reservation"] = *req.MinGuests
	}
	if len(set) == 0 {
		return r.GetTable(ctx, id)
	}
	q, args, err := qb.Update(tableTableName).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Table{}, err
	}
	var table model.Table
	if err := r.db.GetContext(ctx, &table, q, args...); err != nil {
		return model.Table{}, wrapErr(err)
	}
	return table, nil
}

func (r *repository) DeleteTable(ctx context.Context, id int) error {
	return r.deleteByID(ctx, tableTableName, id)
}

func (r *repository) DeleteTables(ctx context.Context) (int, error) {
	return r.deleteAll(ctx, tableTableName)
}
