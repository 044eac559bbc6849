package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"math"
	"time"

	"rentals/config"
	"rentals/infras/jwt"
	"rentals/infras/memory"
	"rentals/infras/otel"
	actorModel "rentals/internal/domains/actor/model"
	actorDto "rentals/internal/domains/actor/model/dto"
	actorRepo "rentals/internal/domains/actor/repository"
	"rentals/internal/domains/auth/model/dto"
	"rentals/shared"
	"rentals/shared/cache"
	"rentals/shared/constant"
	"rentals/shared/failure"
	gModel "rentals/shared/model"
	"rentals/shared/password"
	"rentals/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const errInvalidCredentials = "invalid email or password"

type Auth interface {
	RegisterSeeker(ctx context.Context, req dto.RegisterSeekerRequest) (actorDto.ActorResponse, error)
	RegisterOwner(ctx context.Context, req dto.RegisterOwnerRequest) (actorDto.ActorResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.LoginResponse, error)
	// Logout revokes an access token until it would have expired anyway.
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	// Bootstrap creates the configured administrator unless one exists.
	Bootstrap(ctx context.Context) error
}

type serviceImpl struct {
	db         *memory.DB
	actors     actorRepo.Actor
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(db *memory.DB, actors actorRepo.Actor, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		db:         db,
		actors:     actors,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) RegisterSeeker(ctx context.Context, req dto.RegisterSeekerRequest) (res actorDto.ActorResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RegisterSeeker")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.register(ctx, req.ToModel(hashedPassword))
}

func (s *serviceImpl) RegisterOwner(ctx context.Context, req dto.RegisterOwnerRequest) (res actorDto.ActorResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RegisterOwner")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.register(ctx, req.ToModel(hashedPassword))
}

func (s *serviceImpl) register(ctx context.Context, actor actorModel.Actor) (res actorDto.ActorResponse, err error) {
	err = s.db.Update(ctx, func(ctx context.Context) error {
		return s.actors.Insert(ctx, actor)
	})
	if err != nil {
		log.Warn().Err(err).Str("email", actor.Email).Msg("failed to register actor")

		return res, err
	}

	log.Info().Str("actor_id", actor.ID).Str("role", string(actor.Role)).Msg("actor registered")

	res.FromModel(actor)

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	var actor actorModel.Actor

	err = s.db.View(ctx, func(ctx context.Context) error {
		var err error
		actor, err = s.actors.GetByEmail(ctx, req.Email)

		return err
	})
	if err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.Unauthorized(errInvalidCredentials)
	}

	if err := password.Verify(req.Password, actor.PasswordHash); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(errInvalidCredentials)
	}

	if err = actor.RequireActive(actor.Role); err != nil {
		return res, err
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, actor.ID, actor.Email, string(actor.Role))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair, actor)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	claims, err := s.jwtService.ValidateToken(ctx, req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to validate refresh token")

		return res, failure.Unauthorized("invalid refresh token")
	}

	var actor actorModel.Actor

	err = s.db.View(ctx, func(ctx context.Context) error {
		var err error
		actor, err = s.actors.RequireActive(ctx, claims.ActorID, actorModel.Role(claims.Role))

		return err
	})
	if err != nil {
		return res, err
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, actor.ID, actor.Email, string(actor.Role))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair, actor)

	return res, nil
}

func (s *serviceImpl) Logout(ctx context.Context, tokenID string, expiresAt time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if tokenID == constant.Empty {
		return failure.Unauthorized("unauthorized")
	}

	ttl := int(math.Ceil(time.Until(expiresAt).Seconds()))
	if ttl <= 0 {
		return nil
	}

	if err = s.cache.Save(ctx, shared.BuildCacheKey(constant.CacheKeyRevokedToken, tokenID), tokenID, ttl); err != nil {
		log.Error().Err(err).Str("token_id", tokenID).Msg("failed to revoke token")

		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

func (s *serviceImpl) Bootstrap(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Bootstrap")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	admin := s.cfg.App.Admin
	if admin.Email == constant.Empty || admin.Password == constant.Empty {
		log.Warn().Msg("no administrator configured, skipping bootstrap")

		return nil
	}

	hashedPassword, err := password.Hash(admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash administrator password: %w", err)
	}

	id := uuid.NewString()
	created := false

	err = s.db.Update(ctx, func(ctx context.Context) error {
		if s.actors.CountByRole(ctx, actorModel.RoleAdministrator) > 0 || s.actors.ExistsByEmail(ctx, admin.Email) {
			return nil
		}

		created = true

		return s.actors.Insert(ctx, actorModel.Actor{
			ID:           id,
			Name:         admin.Name,
			Email:        admin.Email,
			Phone:        admin.Phone,
			PasswordHash: hashedPassword,
			Role:         actorModel.RoleAdministrator,
			Active:       true,
			Metadata:     gModel.NewMetadata(id),
		})
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to bootstrap administrator")

		return err
	}

	if created {
		log.Info().Str("actor_id", id).Str("email", admin.Email).Msg("administrator bootstrapped")
	}

	return nil
}
