package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
	"github.com/tilemart/tilemart/internal/models"
	"gorm.io/gorm"
)

// newTestDB 테스트마다 독립된 인메모리 DB를 만든다.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		models.Admin{},
		models.Consultation{}, models.ConsultationLog{},
		models.Customer{},
		models.Service{}, models.ServiceFeature{},
		models.Portfolio{}, models.PortfolioImage{}, models.PortfolioTag{},
		models.Tag{}, models.SiteSetting{},
	))
	return db
}

func testClaims(adminID string, role models.AdminRole) *SessionClaims {
	return &SessionClaims{
		AdminID: adminID,
		Email:   "tester@tilemart.co.kr",
		Name:    "테스터",
		Role:    role,
	}
}

func seedAdmin(t *testing.T, db *gorm.DB, name string, role models.AdminRole) *models.Admin {
	t.Helper()

	admin := &models.Admin{
		ID:           ulid.Make().String(),
		Email:        fmt.Sprintf("%s@tilemart.co.kr", ulid.Make().String()),
		PasswordHash: "unused",
		Name:         name,
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, db.Create(admin).Error)
	return admin
}
