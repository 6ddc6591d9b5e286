package repo

import (
	"context"
	"time"

	"github.com/go-orz/orz"
	"github.com/tilemart/tilemart/internal/models"
	"gorm.io/gorm"
)

func NewAdminRepo(db *gorm.DB) *AdminRepo {
	return &AdminRepo{
		Repository: orz.NewRepository[models.Admin, string](db),
	}
}

// AdminRepo 관리자 계정 저장소
type AdminRepo struct {
	orz.Repository[models.Admin, string]
}

// FindActiveByEmail 활성 상태의 관리자를 이메일로 조회
func (r *AdminRepo) FindActiveByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.GetDB(ctx).
		Where("email = ? AND is_active = ?", email, true).
		First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// ExistsByEmail 이메일 중복 여부 확인
func (r *AdminRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.GetDB(ctx).Model(&models.Admin{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

// UpdateLastLogin 최근 로그인 시각 갱신
func (r *AdminRepo) UpdateLastLogin(ctx context.Context, id string) error {
	now := time.Now()
	return r.GetDB(ctx).Model(&models.Admin{}).
		Where("id = ?", id).
		Update("last_login_at", now).Error
}

// UpdatePassword 비밀번호 해시 교체
func (r *AdminRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	return r.GetDB(ctx).Model(&models.Admin{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

// UpdateProfile 이름/역할/이메일 수정
func (r *AdminRepo) UpdateProfile(ctx context.Context, id string, name string, role models.AdminRole, email string) error {
	return r.GetDB(ctx).Model(&models.Admin{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":  name,
			"role":  role,
			"email": email,
		}).Error
}

// SetActive 활성 여부 변경. 관리자 계정은 삭제하지 않고 비활성화만 한다.
func (r *AdminRepo) SetActive(ctx context.Context, id string, active bool) error {
	return r.GetDB(ctx).Model(&models.Admin{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

// FindAllOrderById 전체 관리자 목록
func (r *AdminRepo) FindAllOrderById(ctx context.Context) ([]models.Admin, error) {
	var admins []models.Admin
	err := r.GetDB(ctx).Order("id").Find(&admins).Error
	return admins, err
}

// FindActiveOrderByName 담당자 선택용 활성 관리자 목록
func (r *AdminRepo) FindActiveOrderByName(ctx context.Context) ([]models.Admin, error) {
	var admins []models.Admin
	err := r.GetDB(ctx).
		Where("is_active = ?", true).
		Order("name").
		Find(&admins).Error
	return admins, err
}

// CountAdmins 관리자 수
func (r *AdminRepo) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	err := r.GetDB(ctx).Model(&models.Admin{}).Count(&count).Error
	return count, err
}
