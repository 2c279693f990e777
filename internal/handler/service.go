package handler

import (
	"context"

	"github.com/reservio/reservation-service/internal/model"
	"github.com/reservio/reservation-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type ReservationService interface {
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

	CreateReservation(ctx context.Context, restaurantID, tableID int, req model.CreateReservationRequest) (model.Reservation, error)
	ValidateReservation(ctx context.Context, tableID int, req model.CreateReservationRequest) (model.Table, error)
	GetReservation(ctx context.Context, id int) (model.Reservation, error)
	ListReservations(ctx context.Context, q model.ReservationQuery) ([]model.Reservation, error)
	UpdateReservation(ctx context.Context, id int, req model.UpdateReservationRequest) (model.Reservation, error)
	DeleteReservation(ctx context.Context, id int) error
	DeleteReservations(ctx context.Context) (int, error)
}

var _ ReservationService = (*service.Service)(nil)
