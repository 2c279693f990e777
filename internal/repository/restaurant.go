package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/reservio/reservation-service/internal/model"
)

// CreateRestaurant inserts the restaurant and, when an address payload is
// attached, its address inside the same transaction.
func (r *repository) CreateRestaurant(ctx context.Context, req model.CreateRestaurantRequest) (model.Restaurant, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Restaurant{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	q, args, err := qb.Insert(restaurantTableName).
		Columns("name", "owner_id").
		Values(req.Name, req.OwnerID).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Restaurant{}, err
	}
	var rest model.Restaurant
	if err := tx.GetContext(ctx, &rest, q, args...); err != nil {
		r.log.Error("CreateRestaurant", zap.String("q", q), zap.Any("args", args))
		return model.Restaurant{}, wrapErr(err)
	}

	if req.Address != nil {
		q, args, err = qb.Insert(addressTableName).
			Columns("street_name", "house_number", "postal_code", "city", "country_code", "restaurant_id").
			Values(req.Address.StreetName, req.Address.HouseNumber, req.Address.PostalCode,
				req.Address.City, req.Address.CountryCode, rest.ID).
			ToSql()
		if err != nil {
			return model.Restaurant{}, err
		}
		if _, err := tx.ExecContext(ctx, q, args...); err != nil {
			return model.Restaurant{}, wrapErr(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return model.Restaurant{}, err
	}
	return rest, nil
}

func (r *repository) GetRestaurant(ctx context.Context, id int) (model.Restaurant, error) {
	q, args, err := qb.Select("id", "name", "owner_id").
		From(restaurantTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Restaurant{}, err
	}
	var rest model.Restaurant
	if err := r.db.GetContext(ctx, &rest, q, args...); err != nil {
		return model.Restaurant{}, wrapErr(err)
	}
	return rest, nil
}

func (r *repository) ListRestaurants(ctx context.Context, query model.RestaurantQuery) ([]model.Restaurant, error) {
	b := qb.Select("id", "name", "owner_id").
		From(restaurantTableName).
		OrderBy("id")
	if query.Name != "" {
		b = b.Where(sq.Eq{"name": query.Name})
	}
	if query.OwnerID != 0 {
		b = b.Where(sq.Eq{"owner_id": query.OwnerID})
	}
	q, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	restaurants := make([]model.Restaurant, 0)
	if err := r.db.SelectContext(ctx, &restaurants, q, args...); err != nil {
		return nil, wrapErr(err)
	}
	return restaurants, nil
}

func (r *repository) UpdateRestaurant(ctx context.Context, id int, req model.UpdateRestaurantRequest) (model.Restaurant, error) {
	set := map[string]any{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.OwnerID != nil {
		set["owner_id"] = *req.OwnerID
	}
	if len(set) == 0 {
		return r.GetRestaurant(ctx, id)
	}
	q, args, err := qb.Update(restaurantTableName).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Restaurant{}, err
	}
	var rest model.Restaurant
	if err := r.db.GetContext(ctx, &rest, q, args...); err != nil {
		return model.Restaurant{}, wrapErr(err)
	}
	return rest, nil
}

func (r *repository) DeleteRestaurant(ctx context.Context, id int) error {
	return r.deleteByID(ctx, restaurantTableName, id)
}

func (r *repository) DeleteRestaurants(ctx context.Context) (int, error) {
	return r.deleteAll(ctx, restaurantTableName)
}
