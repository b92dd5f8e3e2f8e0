package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/velotours/invoice-service/internal/domain"
	"github.com/velotours/invoice-service/internal/repository"
	"github.com/velotours/invoice-service/pkg/logger"
)

// HotelService интерфейс сервиса для работы с каталогом отелей
type HotelService interface {
	GetAll(ctx context.Context) ([]domain.Hotel, error)
	GetByID(ctx context.Context, id string) (domain.Hotel, error)
	Create(ctx context.Context, req domain.HotelRequest) (domain.Hotel, error)
	Update(ctx context.Context, id string, req domain.HotelRequest) (domain.Hotel, error)
	Delete(ctx context.Context, id string) error
}

type hotelService struct {
	repo repository.HotelRepository
	log  *logger.Logger
}

// NewHotelService создает новый сервис для работы с отелями
func NewHotelService(repo repository.HotelRepository, log *logger.Logger) HotelService {
	return &hotelService{
		repo: repo,
		log:  log,
	}
}

func (s *hotelService) GetAll(ctx context.Context) ([]domain.Hotel, error) {
	s.log.Debugw("Getting all hotels")
	return s.repo.GetAll(ctx)
}

func (s *hotelService) GetByID(ctx context.Context, id string) (domain.Hotel, error) {
	s.log.Debugw("Getting hotel by ID", "id", id)

	uuidID, err := uuid.Parse(id)
	if err != nil {
		s.log.Warnw("Invalid UUID format", "id", id)
		return domain.Hotel{}, domain.ErrInvalidData
	}

	return s.repo.GetByID(ctx, uuidID)
}

func (s *hotelService) Create(ctx context.Context, req domain.HotelRequest) (domain.Hotel, error) {
	s.log.Debugw("Creating hotel", "name", req.Name)

	hotel := domain.Hotel{
		ID:             uuid.New(),
		Name:           req.Name,
		Location:       req.Location,
		Stars:          req.Stars,
		SingleRoomRate: req.SingleRoomRate,
		DoubleRoomRate: req.DoubleRoomRate,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
	}

	if err := hotel.Validate(); err != nil {
		return domain.Hotel{}, err
	}

	return s.repo.Create(ctx, hotel)
}

func (s *hotelService) Update(ctx context.Context, id string, req domain.HotelRequest) (domain.Hotel, error) {
	s.log.Debugw("Updating hotel", "id", id)

	uuidID, err := uuid.Parse(id)
	if err != nil {
		s.log.Warnw("Invalid UUID format", "id", id)
		return domain.Hotel{}, domain.ErrInvalidData
	}

	existing, err := s.repo.GetByID(ctx, uuidID)
	if err != nil {
		return domain.Hotel{}, err
	}

	existing.Name = req.Name
	existing.Location = req.Location
	existing.Stars = req.Stars
	existing.SingleRoomRate = req.SingleRoomRate
	existing.DoubleRoomRate = req.DoubleRoomRate
	existing.ContactEmail = req.ContactEmail
	existing.ContactPhone = req.ContactPhone

	if err := existing.Validate(); err != nil {
		return domain.Hotel{}, err
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return domain.Hotel{}, err
	}

	return existing, nil
}

func (s *hotelService) Delete(ctx context.Context, id string) error {
	s.log.Debugw("Deleting hotel", "id", id)

	uuidID, err := uuid.Parse(id)
	if err != nil {
		s.log.Warnw("Invalid UUID format", "id", id)
		return domain.ErrInvalidData
	}

	return s.repo.Delete(ctx, uuidID)
}
