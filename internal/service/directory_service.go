package service

import (
	"context"

	"property-assistant-be/internal/dto"
	"property-assistant-be/internal/repository/specification"
	"property-assistant-be/internal/repository/unitofwork"
)

// IDirectoryService exposes read-only listings of persisted records for
// operators and the admin dashboard.
type IDirectoryService interface {
	GetAllUsers(ctx context.Context) ([]dto.GetAllUsersResponse, error)
	GetAllRentalSearches(ctx context.Context) ([]dto.GetAllRentalSearchesResponse, error)
	GetAllRentalMatches(ctx context.Context) ([]dto.GetAllRentalMatchesResponse, error)
	GetAllRepairRequests(ctx context.Context) ([]dto.GetAllRepairRequestsResponse, error)
}

type directoryService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewDirectoryService(uowFactory unitofwork.RepositoryFactory) IDirectoryService {
	return &directoryService{
		uowFactory: uowFactory,
	}
}

func (s *directoryService) GetAllUsers(ctx context.Context) ([]dto.GetAllUsersResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	users, err := uow.UserRepository().FindAll(ctx, specification.NewestFirst{})
	if err != nil {
		return nil, err
	}

	res := make([]dto.GetAllUsersResponse, 0, len(users))
	for _, u := range users {
		res = append(res, dto.GetAllUsersResponse{
			Id:        u.Id,
			Name:      u.Name,
			Phone:     u.Phone,
			Email:     u.Email,
			CreatedAt: u.CreatedAt,
		})
	}
	return res, nil
}

func (s *directoryService) GetAllRentalSearches(ctx context.Context) ([]dto.GetAllRentalSearchesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	searches, err := uow.RentalSearchRepository().FindAll(ctx, specification.NewestFirst{})
	if err != nil {
		return nil, err
	}

	res := make([]dto.GetAllRentalSearchesResponse, 0, len(searches))
	for _, search := range searches {
		res = append(res, dto.GetAllRentalSearchesResponse{
			Id:           search.Id,
			UserId:       search.UserId,
			Location:     search.Location,
			PropertyType: search.PropertyType,
			Bedrooms:     search.Bedrooms,
			Budget:       search.Budget,
			Furnished:    search.Furnished,
			Garden:       search.Garden,
			Parking:      search.Parking,
			Status:       string(search.Status),
			CreatedAt:    search.CreatedAt,
		})
	}
	return res, nil
}

func (s *directoryService) GetAllRentalMatches(ctx context.Context) ([]dto.GetAllRentalMatchesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	matches, err := uow.RentalMatchRepository().FindAll(ctx, specification.NewestFirst{})
	if err != nil {
		return nil, err
	}

	res := make([]dto.GetAllRentalMatchesResponse, 0, len(matches))
	for _, m := range matches {
		res = append(res, dto.GetAllRentalMatchesResponse{
			Id:            m.Id,
			SearchId:      m.SearchId,
			PropertyId:    m.PropertyId,
			Title:         m.Title,
			Location:      m.Location,
			PricePerMonth: m.PricePerMonth,
			Bedrooms:      m.Bedrooms,
			Furnished:     m.Furnished,
			HasGarden:     m.HasGarden,
			Parking:       m.Parking,
			Url:           m.Url,
			Score:         m.Score,
			CreatedAt:     m.CreatedAt,
		})
	}
	return res, nil
}

func (s *directoryService) GetAllRepairRequests(ctx context.Context) ([]dto.GetAllRepairRequestsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requests, err := uow.RepairRepository().FindAll(ctx, specification.NewestFirst{})
	if err != nil {
		return nil, err
	}

	res := make([]dto.GetAllRepairRequestsResponse, 0, len(requests))
	for _, r := range requests {
		res = append(res, dto.GetAllRepairRequestsResponse{
			Id:               r.Id,
			UserId:           r.UserId,
			Category:         r.Category,
			Address:          r.Address,
			Description:      r.Description,
			ProviderSelected: r.ProviderSelected,
			Status:           string(r.Status),
			CreatedAt:        r.CreatedAt,
		})
	}
	return res, nil
}
