//go:generate mockery --name AuthService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"linguaquest/internal/config"
	"linguaquest/internal/middleware"
	"linguaquest/internal/model"
	"linguaquest/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type authService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	progRepo repository.ProgressRepository
	mailer   Mailer
	cfg      *config.Config
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, progRepo repository.ProgressRepository, mailer Mailer, cfg *config.Config) AuthService {
	return &authService{
		db:       db,
		userRepo: userRepo,
		progRepo: progRepo,
		mailer:   mailer,
		cfg:      cfg,
	}
}

// Register は新しいユーザーを登録します。
// 進捗行は同じトランザクションで必ず一緒に作る（遅延作成はしない）。
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var newUser *model.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Emailでの重複チェック
		_, err := s.userRepo.FindByEmail(ctx, tx, req.Email)
		if err == nil {
			logger.Warn("Email already exists", "email", req.Email)
			return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check email existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", model.ErrInternalServer)
		}

		// Nameでの重複チェック
		_, err = s.userRepo.FindByName(ctx, tx, req.Name)
		if err == nil {
			logger.Warn("User name already exists", "name", req.Name)
			return model.NewAppError("DUPLICATE_NAME", "そのユーザ名は既に使用されています。", "name", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check name existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", model.ErrInternalServer)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "パスワードの処理中にエラーが発生しました。", "", model.ErrInternalServer)
		}

		user := &model.User{
			UserID:       uuid.New(),
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: string(hashedPassword),
		}
		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			logger.Error("Failed to create user", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの作成に失敗しました。", "", model.ErrInternalServer)
		}

		progress := &model.UserProgress{
			UserID: user.UserID,
		}
		if err := s.progRepo.Create(ctx, tx, progress); err != nil {
			logger.Error("Failed to create user progress", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの作成に失敗しました。", "", model.ErrInternalServer)
		}

		newUser = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	// ウェルカムメールの失敗で登録自体は失敗させない
	subject := fmt.Sprintf("%s へようこそ", config.AppName)
	body := fmt.Sprintf("%s さん、登録ありがとうございます。今日から毎日少しずつ続けましょう。", newUser.Name)
	if err := s.mailer.Send(ctx, newUser.Email, subject, body); err != nil {
		logger.Warn("Failed to send welcome email", "error", err, "email", newUser.Email)
	}

	logger.Info("User registered", "user_id", newUser.UserID)
	return newUser, nil
}

// Login は認証に成功したらアクセストークンと進捗サマリを返します
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx)

	user, err := s.userRepo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// メールアドレスの存在は漏らさない
			return nil, model.NewAppError("INVALID_CREDENTIALS", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrForbidden)
		}
		logger.Error("Failed to find user by email", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", model.ErrInternalServer)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Password mismatch", "user_id", user.UserID)
		return nil, model.NewAppError("INVALID_CREDENTIALS", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrForbidden)
	}

	progress, err := s.progRepo.Find(ctx, s.db, user.UserID)
	if err != nil {
		logger.Error("Failed to find user progress on login", "error", err, "user_id", user.UserID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", model.ErrInternalServer)
	}

	token, err := s.signToken(user.UserID)
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの発行に失敗しました。", "", model.ErrInternalServer)
	}

	logger.Info("User logged in", "user_id", user.UserID)
	return &model.LoginResponse{
		AccessToken:   token,
		UserID:        user.UserID,
		Name:          user.Name,
		Experience:    progress.Experience,
		CurrentStreak: progress.CurrentStreak,
	}, nil
}

func (s *authService) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", model.ErrInternalServer)
	}
	return user, nil
}

func (s *authService) signToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := model.JWTCustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    config.AppName,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.JWT.ExpiryHours) * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.SecretKey))
}
