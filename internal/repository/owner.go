package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/reservio/reservation-service/internal/model"
)

func (r *repository) CreateOwner(ctx context.Context, req model.CreateOwnerRequest) (model.Owner, error) {
	q, args, err := qb.Insert(ownerTableName).
		Columns("first_name", "last_name", "email", "phone").
		Values(req.FirstName, req.LastName, req.Email, req.Phone).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Owner{}, err
	}
	var owner model.Owner
	if err := r.db.GetContext(ctx, &owner, q, args...); err != nil {
		r.log.Error("CreateOwner", zap.String("q", q), zap.Any("args", args))
		return model.Owner{}, wrapErr(err)
	}
	return owner, nil
}

func (r *repository) GetOwner(ctx context.Context, id int) (model.Owner, error) {
	q, args, err := qb.Select("id", "first_name", "last_name", "email", "phone").
		From(ownerTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Owner{}, err
	}
	var owner model.Owner
	if err := r.db.GetContext(ctx, &owner, q, args...); err != nil {
		return model.Owner{}, wrapErr(err)
	}
	return owner, nil
}

func (r *repository) ListOwners(ctx context.Context, query model.OwnerQuery) ([]model.Owner, error) {
	b := qb.Select("id", "first_name", "last_name", "email", "phone").
		From(ownerTableName).
		OrderBy("id")
	if query.Email != "" {
		b = b.Where(sq.Eq{"email": query.Email})
	}
	q, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	owners := make([]model.Owner, 0)
	if err := r.db.SelectContext(ctx, &owners, q, args...); err != nil {
		return nil, wrapErr(err)
	}
	return owners, nil
}

func (r *repository) UpdateOwner(ctx context.Context, id int, req model.UpdateOwnerRequest) (model.Owner, error) {
	set := map[string]any{}
	if req.FirstName != nil {
		set["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		set["last_name"] = *req.LastName
	}
	if req.Email != nil {
		set["email"] = *req.Email
	}
	if req.Phone != nil {
		set["phone"] = *req.Phone
	}
	if len(set) == 0 {
		return r.GetOwner(ctx, id)
	}
	q, args, err := qb.Update(ownerTableName).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Owner{}, err
	}
	var owner model.Owner
	if err := r.db.GetContext(ctx, &owner, q, args...); err != nil {
		return model.Owner{}, wrapErr(err)
	}
	return owner, nil
}

func (r *repository) DeleteOwner(ctx context.Context, id int) error {
	return r.deleteByID(ctx, ownerTableName, id)
}

func (r *repository) DeleteOwners(ctx context.Context) (int, error) {
	return r.deleteAll(ctx, ownerTableName)
}
