package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tilemart/tilemart/internal/models"
	"github.com/tilemart/tilemart/internal/xe"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newCatalogService(t *testing.T) (*CatalogService, *gorm.DB) {
	db := newTestDB(t)
	return NewCatalogService(zap.NewNop(), db), db
}

func TestServiceFeaturesSkipBlankAndKeepOrder(t *testing.T) {
	s, db := newCatalogService(t)
	ctx := context.Background()
	admin := seedAdmin(t, db, "박영희", models.RoleAdmin)
	claims := testClaims(admin.ID, admin.Role)

	id, err := s.CreateService(ctx, claims, ServiceRequest{
		Slug:     "bathroom",
		Title:    "욕실 리모델링",
		IsActive: true,
		Features: []string{"방수 시공", "   ", "타일 마감", ""},
	})
	require.NoError(t, err)

	detail, err := s.GetService(ctx, id)
	require.NoError(t, err)
	require.Len(t, detail.Features, 2)
	assert.Equal(t, "방수 시공", detail.Features[0].Content)
	assert.Equal(t, 0, detail.Features[0].SortOrder)
	assert.Equal(t, "타일 마감", detail.Features[1].Content)
	assert.Equal(t, 1, detail.Features[1].SortOrder)
}

func TestServiceUpdateReplacesFeatures(t *testing.T) {
	s, db := newCatalogService(t)
	ctx := context.Background()
	admin := seedAdmin(t, db, "박영희", models.RoleAdmin)
	claims := testClaims(admin.ID, admin.Role)

	id, err := s.CreateService(ctx, claims, ServiceRequest{
		Slug:     "bathroom",
		Title:    "욕실 리모델링",
		IsActive: true,
		Features: []string{"방수 시공"},
	})
	require.NoError(t, err)

	require.NoError(t, s.UpdateService(ctx, claims, id, ServiceRequest{
		Slug:     "bathroom",
		Title:    "욕실 리모델링",
		IsActive: true,
		Features: []string{"줄눈 시공", "방수 시공"},
	}))

	detail, err := s.GetService(ctx, id)
	require.NoError(t, err)
	require.Len(t, detail.Features, 2)
	assert.Equal(t, "줄눈 시공", detail.Features[0].Content)
	assert.Equal(t, "방수 시공", detail.Features[1].Content)
}

func TestServiceSlugLookupHidesInactive(t *testing.T) {
	s, db := newCatalogService(t)
	ctx := context.Background()
	admin := seedAdmin(t, db, "박영희", models.RoleAdmin)
	claims := testClaims(admin.ID, admin.Role)

	id, err := s.CreateService(ctx, claims, ServiceRequest{
		Slug:     "bathroom",
		Title:    "욕실 리모델링",
		IsActive: true,
	})
	require.NoError(t, err)

	detail, err := s.GetServiceBySlug(ctx, "bathroom")
	require.NoError(t, err)
	assert.Equal(t, id, detail.Service.ID)

	require.NoError(t, s.ToggleServiceActive(ctx, claims, id, false))

	_, err = s.GetServiceBySlug(ctx, "bathroom")
	assert.ErrorIs(t, err, xe.ErrServiceNotFound)
}

func TestTagDuplicateSlug(t *testing.T) {
	s, db := newCatalogService(t)
	ctx := context.Background()
	admin := seedAdmin(t, db, "박영희", models.RoleAdmin)
	claims := testClaims(admin.ID, admin.Role)

	_, err := s.CreateTag(ctx, claims, "욕실", "bathroom")
	require.NoError(t, err)

	_, err = s.CreateTag(ctx, claims, "욕실2", "bathroom")
	assert.ErrorIs(t, err, xe.ErrTagCreate)
}

func TestTagDeleteRemovesPortfolioLinks(t *testing.T) {
	s, db := newCatalogService(t)
	ctx := context.Background()
	admin := seedAdmin(t, db, "박영희", models.RoleAdmin)
	claims := testClaims(admin.ID, admin.Role)

	tagID, err := s.CreateTag(ctx, claims, "욕실", "bathroom")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.PortfolioTag{PortfolioID: "p1", TagID: tagID}).Error)

	require.NoError(t, s.DeleteTag(ctx, claims, tagID))

	var links int64
	require.NoError(t, db.Model(&models.PortfolioTag{}).Where("tag_id = ?", tagID).Count(&links).Error)
	assert.EqualValues(t, 0, links)

	tags, err := s.ListTags(ctx)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestSettingsBulkUpdate(t *testing.T) {
	s, db := newCatalogService(t)
	ctx := context.Background()
	admin := seedAdmin(t, db, "박영희", models.RoleAdmin)
	claims := testClaims(admin.ID, admin.Role)

	require.NoError(t, db.Create(&models.SiteSetting{SettingKey: "phone", SettingValue: "02-000-0000"}).Error)
	require.NoError(t, db.Create(&models.SiteSetting{SettingKey: "address", SettingValue: "서울"}).Error)

	assert.ErrorIs(t, s.UpdateSettings(ctx, nil, nil), xe.ErrInvalidToken)

	require.NoError(t, s.UpdateSettings(ctx, claims, []SettingUpdate{
		{Key: "phone", Value: "02-123-4567"},
	}))

	settings, err := s.ListSettings(ctx)
	require.NoError(t, err)
	require.Len(t, settings, 2)
	// 키 오름차순
	assert.Equal(t, "address", settings[0].SettingKey)
	assert.Equal(t, "phone", settings[1].SettingKey)
	assert.Equal(t, "02-123-4567", settings[1].SettingValue)
}
