package user

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/krishsharda/Buyer-Leads/cmd/config"
	"github.com/krishsharda/Buyer-Leads/constant"
	"github.com/krishsharda/Buyer-Leads/model"
	redisrepo "github.com/krishsharda/Buyer-Leads/repository/redis"
	userrepo "github.com/krishsharda/Buyer-Leads/repository/user"
	"github.com/krishsharda/Buyer-Leads/utils/errors"
	"github.com/krishsharda/Buyer-Leads/utils/logger"
	"go.uber.org/zap"
)

type UserApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, tokenString string) error
	ValidateToken(ctx context.Context, tokenString string) (*model.Actor, error)
}

// SessionClaims is the JWT payload of a signed-in user.
type SessionClaims struct {
	Admin bool `json:"adm,omitempty"`
	jwt.RegisteredClaims
}

type UserAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.RedisRepository
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.RedisRepository) UserApp {
	return &UserAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
	}
}

// Login signs in by email. An unknown email gets an account named after the
// local part of the address.
func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user == nil {
		user, err = s.register(ctx, email)
		if err != nil {
			return nil, err
		}
	}

	isAdmin := user.IsAdmin || s.config.IsAdminEmail(email)

	token, jti, err := s.generateJWT(user.ID, isAdmin)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: isAdmin,
		Token:   token,
	}, nil
}

func (s *UserAppImpl) register(ctx context.Context, email string) (*model.UserEntity, error) {
	name := email
	if i := strings.Index(email, "@"); i > 0 {
		name = email[:i]
	}

	user, err := s.userRepo.Create(ctx, &model.UserEntity{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		IsAdmin:   s.config.IsAdminEmail(email),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	})
	if err == nil {
		return user, nil
	}
	if !stderrors.Is(err, userrepo.ErrDuplicate) {
		logger.Error("[Login] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// signed up concurrently, read the winner
	user, err = s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil || user == nil {
		logger.Error("[Login] err userRepo.Get after duplicate", zap.Any("error", err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return user, nil
}

// Logout drops the session behind the token. An invalid token has nothing
// to drop.
func (s *UserAppImpl) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil
	}
	if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.Actor, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("invalid user id in token")
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("token missing jti")
	}

	// Check Redis session key
	sessionUserID, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired session")
	}
	if sessionUserID != claims.Subject {
		return nil, fmt.Errorf("token does not match user session")
	}

	return &model.Actor{ID: claims.Subject, IsAdmin: claims.Admin}, nil
}

func (s *UserAppImpl) parse(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}

// generateJWT creates a JWT token for the user
func (s *UserAppImpl) generateJWT(userID string, isAdmin bool) (string, string, error) {
	claims := SessionClaims{
		Admin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}
