package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/reservio/reservation-service/internal/model"
)

func (r *repository) CreateAddress(ctx context.Context, req model.CreateAddressRequest) (model.Address, error) {
	q, args, err := qb.Insert(addressTableName).
		Columns("street_name", "house_number", "postal_code", "city", "country_code", "restaurant_id").
		Values(req.StreetName, req.HouseNumber, req.PostalCode, req.City, req.CountryCode, req.RestaurantID).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Address{}, err
	}
	var addr model.Address
	if err := r.db.GetContext(ctx, &addr, q, args...); err != nil {
		r.log.Error("CreateAddress", zap.String("q", q), zap.Any("args", args))
		return model.Address{}, wrapErr(err)
	}
	return addr, nil
}

func (r *repository) GetAddress(ctx context.Context, id int) (model.Address, error) {
	q, args, err := qb.Select("id", "street_name", "house_number", "postal_code", "city", "country_code", "restaurant_id").
		From(addressTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Address{}, err
	}
	var addr model.Address
	if err := r.db.GetContext(ctx, &addr, q, args...); err != nil {
		return model.Address{}, wrapErr(err)
	}
	return addr, nil
}

func (r *repository) ListAddresses(ctx context.Context, query model.AddressQuery) ([]model.Address, error) {
	b := qb.Select("id", "street_name", "house_number", "postal_code", "city", "country_code", "restaurant_id").
		From(addressTableName).
		OrderBy("id")
	if query.City != "" {
		b = b.Where(sq.Eq{"city": query.City})
	}
	if query.PostalCode != "" {
		b = b.Where(sq.Eq{"postal_code": query.PostalCode})
	}
	q, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	addresses := make([]model.Address, 0)
	if err := r.db.SelectContext(ctx, &addresses, q, args...); err != nil {
		return nil, wrapErr(err)
	}
	return addresses, nil
}

func (r *repository) UpdateAddress(ctx context.Context, id int, req model.UpdateAddressRequest) (model.Address, error) {
	set := map[string]any{}
	if req.StreetName != nil {
		set["street_name"] = *req.StreetName
	}
	if req.HouseNumber != nil {
		set["house_number"] = *req.HouseNumber
	}
	if req.PostalCode != nil {
		set["postal_code"] = *req.PostalCode
	}
	if req.City != nil {
		set["city"] = *req.City
	}
	if req.CountryCode != nil {
		set["country_code"] = *req.CountryCode
	}
	if len(set) == 0 {
		return r.GetAddress(ctx, id)
	}
	q, args, err := qb.Update(addressTableName).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Address{}, err
	}
	var addr model.Address
	if err := r.db.GetContext(ctx, &addr, q, args...); err != nil {
		return model.Address{}, wrapErr(err)
	}
	return addr, nil
}

func (r *repository) DeleteAddress(ctx context.Context, id int) error {
	return r.deleteByID(ctx, addressTableName, id)
}

func (r *repository) DeleteAddresses(ctx context.Context) (int, error) {
	return r.deleteAll(ctx, addressTableName)
}
