package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/tilemart/tilemart/internal/models"
	"github.com/tilemart/tilemart/internal/repo"
	"github.com/tilemart/tilemart/internal/xe"
	"github.com/tilemart/tilemart/pkg/nostd"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthService 인증/관리자 계정 서비스
type AuthService struct {
	logger        *zap.Logger
	adminRepo     *repo.AdminRepo
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService 인증 서비스 생성
func NewAuthService(logger *zap.Logger, db *gorm.DB, jwtSecret string) *AuthService {
	if jwtSecret == "" {
		jwtSecret = uuid.NewString()
	}
	return &AuthService{
		logger:        logger,
		adminRepo:     repo.NewAdminRepo(db),
		jwtSecret:     jwtSecret,
		jwtExpiration: 24 * time.Hour, // 세션 유효기간 24시간
	}
}

// SessionClaims 세션 토큰 페이로드
type SessionClaims struct {
	AdminID string           `json:"admin_id"`
	Email   string           `json:"email"`
	Name    string           `json:"name"`
	Role    models.AdminRole `json:"role"`
	jwt.RegisteredClaims
}

// IsSuperAdmin 최고관리자 여부
func (c *SessionClaims) IsSuperAdmin() bool {
	return c != nil && c.Role == models.RoleSuperAdmin
}

// LoginRequest 로그인 요청
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse 로그인 응답
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Admin     AdminInfo `json:"admin"`
}

// AdminInfo 세션 관리자 정보
type AdminInfo struct {
	ID    string           `json:"admin_id"`
	Email string           `json:"email"`
	Name  string           `json:"name"`
	Role  models.AdminRole `json:"role"`
}

// Login 관리자 로그인. 존재하지 않는 이메일과 잘못된 비밀번호는 구분하지 않고 같은 오류를 돌려준다.
func (s *AuthService) Login(ctx context.Context, req LoginRequest, ip string) (*LoginResponse, error) {
	admin, err := s.adminRepo.FindActiveByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("login failed: unknown email",
				zap.String("email", req.Email),
				zap.String("ip", ip))
			return nil, xe.ErrIncorrectPassword
		}
		return nil, err
	}

	if err := nostd.BcryptMatch([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("login failed: invalid password",
			zap.String("email", req.Email),
			zap.String("ip", ip))
		return nil, xe.ErrIncorrectPassword
	}

	if err := s.adminRepo.UpdateLastLogin(ctx, admin.ID); err != nil {
		s.logger.Error("failed to update last login", zap.Error(err))
	}

	expiresAt := time.Now().Add(s.jwtExpiration)
	token, err := s.IssueToken(admin)
	if err != nil {
		return nil, err
	}

	s.logger.Info("admin logged in",
		zap.String("email", admin.Email),
		zap.String("ip", ip))

	return &LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin: AdminInfo{
			ID:    admin.ID,
			Email: admin.Email,
			Name:  admin.Name,
			Role:  admin.Role,
		},
	}, nil
}

// IssueToken 세션 토큰 발급
func (s *AuthService) IssueToken(admin *models.Admin) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		AdminID: admin.ID,
		Email:   admin.Email,
		Name:    admin.Name,
		Role:    admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "tilemart",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// VerifyToken 세션 토큰 검증. 서명 오류/형식 오류/만료를 구분하지 않고 단일 오류로 돌려준다.
func (s *AuthService) VerifyToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, xe.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, xe.ErrInvalidToken
}

// GetCurrentAdmin 세션 관리자 정보 조회
func (s *AuthService) GetCurrentAdmin(ctx context.Context, adminID string) (*AdminInfo, error) {
	admin, err := s.adminRepo.FindById(ctx, adminID)
	if err != nil {
		return nil, err
	}

	return &AdminInfo{
		ID:    admin.ID,
		Email: admin.Email,
		Name:  admin.Name,
		Role:  admin.Role,
	}, nil
}

// ListAdmins 관리자 목록 (최고관리자 전용)
func (s *AuthService) ListAdmins(ctx context.Context, claims *SessionClaims) ([]models.Admin, error) {
	if !claims.IsSuperAdmin() {
		return nil, xe.ErrPermissionDenied
	}
	return s.adminRepo.FindAllOrderById(ctx)
}

// CreateAdminRequest 관리자 생성 요청
type CreateAdminRequest struct {
	Email    string           `json:"email" validate:"required"`
	Password string           `json:"password" validate:"required,min=8"`
	Name     string           `json:"name" validate:"required"`
	Role     models.AdminRole `json:"role" validate:"required"`
}

// CreateAdmin 관리자 생성 (최고관리자 전용). 이메일 중복을 먼저 확인한다.
func (s *AuthService) CreateAdmin(ctx context.Context, claims *SessionClaims, req CreateAdminRequest) (string, error) {
	if !claims.IsSuperAdmin() {
		return "", xe.ErrPermissionDenied
	}
	if !nostd.IsEmail(req.Email) || !req.Role.IsValid() {
		return "", xe.ErrInvalidParams
	}

	exists, err := s.adminRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", xe.ErrEmailAlreadyUsed
	}

	passwordHash, err := nostd.BcryptEncode([]byte(req.Password))
	if err != nil {
		return "", err
	}

	admin := &models.Admin{
		ID:           ulid.Make().String(),
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Name:         req.Name,
		Role:         req.Role,
		IsActive:     true,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return "", err
	}

	s.logger.Info("admin created",
		zap.String("email", req.Email),
		zap.String("by", claims.AdminID))
	return admin.ID, nil
}

// UpdateAdmin 관리자 프로필 수정 (최고관리자 전용)
func (s *AuthService) UpdateAdmin(ctx context.Context, claims *SessionClaims, id string, name string, role models.AdminRole, email string) error {
	if !claims.IsSuperAdmin() {
		return xe.ErrPermissionDenied
	}
	if !role.IsValid() || !nostd.IsEmail(email) {
		return xe.ErrInvalidParams
	}
	return s.adminRepo.UpdateProfile(ctx, id, name, role, email)
}

// ResetPassword 비밀번호 재설정 (최고관리자 전용). 해시만 교체한다.
func (s *AuthService) ResetPassword(ctx context.Context, claims *SessionClaims, id string, newPassword string) error {
	if !claims.IsSuperAdmin() {
		return xe.ErrPermissionDenied
	}

	passwordHash, err := nostd.BcryptEncode([]byte(newPassword))
	if err != nil {
		return err
	}
	if err := s.adminRepo.UpdatePassword(ctx, id, string(passwordHash)); err != nil {
		return err
	}

	s.logger.Info("admin password reset",
		zap.String("admin_id", id),
		zap.String("by", claims.AdminID))
	return nil
}

// ToggleActive 관리자 활성/비활성 전환 (최고관리자 전용)
func (s *AuthService) ToggleActive(ctx context.Context, claims *SessionClaims, id string, active bool) error {
	if !claims.IsSuperAdmin() {
		return xe.ErrPermissionDenied
	}
	return s.adminRepo.SetActive(ctx, id, active)
}

// NeedsBootstrap 관리자 계정이 하나도 없는지 확인
func (s *AuthService) NeedsBootstrap(ctx context.Context) (bool, error) {
	count, err := s.adminRepo.CountAdmins(ctx)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// BootstrapAdmin 초기 최고관리자 생성. 기동 시 계정이 없을 때 한 번만 호출된다.
func (s *AuthService) BootstrapAdmin(ctx context.Context, email, password, name string) error {
	passwordHash, err := nostd.BcryptEncode([]byte(password))
	if err != nil {
		return err
	}

	admin := &models.Admin{
		ID:           ulid.Make().String(),
		Email:        email,
		PasswordHash: string(passwordHash),
		Name:         name,
		Role:         models.RoleSuperAdmin,
		IsActive:     true,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("bootstrap super admin created", zap.String("email", email))
	return nil
}
