package service

import (
	"context"
	"errors"
	"os"
	"time"

	"subhub-be/internal/dto"
	"subhub-be/internal/entity"
	"subhub-be/internal/pkg/apperrors"
	"subhub-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory) IAuthService {
	return &authService{
		uowFactory: uowFactory,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.BusinessRepository().FindByEmail(ctx, req.OwnerEmail)
	if err != nil {
		return nil, apperrors.NewPersistence("business lookup", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflict("owner_email", "already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	business := &entity.Business{
		Id:           uuid.New(),
		Name:         req.BusinessName,
		OwnerEmail:   req.OwnerEmail,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := uow.BusinessRepository().Create(ctx, business); err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{
		Id:         business.Id,
		OwnerEmail: business.OwnerEmail,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	business, err := uow.BusinessRepository().FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(business.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	token, err := s.issueToken(business.Id)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  token,
		BusinessName: business.Name,
	}, nil
}

func (s *authService) issueToken(businessId uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"business_id": businessId.String(),
		"iat":         time.Now().Unix(),
		"exp":         time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
