package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tilemart/tilemart/internal/models"
	"github.com/tilemart/tilemart/internal/xe"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newPortfolioService(t *testing.T) (*PortfolioService, *gorm.DB) {
	db := newTestDB(t)
	return NewPortfolioService(zap.NewNop(), db), db
}

func seedTag(t *testing.T, db *gorm.DB, name, slug string) *models.Tag {
	t.Helper()

	tag := &models.Tag{ID: ulid.Make().String(), Name: name, Slug: slug}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

func portfolioRequest(title string, images ...string) PortfolioRequest {
	req := PortfolioRequest{
		Title: title,
		Slug:  "slug-" + title,
	}
	for _, url := range images {
		req.Images = append(req.Images, PortfolioImageInput{URL: url})
	}
	return req
}

func TestPortfolioCreateWithImagesAndTags(t *testing.T) {
	s, db := newPortfolioService(t)
	ctx := context.Background()
	admin := seedAdmin(t, db, "박영희", models.RoleAdmin)
	claims := testClaims(admin.ID, admin.Role)
	tag := seedTag(t, db, "욕실", "bathroom")

	req := portfolioRequest("사당동 욕실 리모델링", "/uploads/a.jpg", "/uploads/b.jpg")
	req.TagIDs = []string{tag.ID}

	id, err := s.Create(ctx, claims, req)
	require.NoError(t, err)

	detail, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, detail.Portfolio.IsActive)
	require.Len(t, detail.Images, 2)
	assert.Equal(t, "/uploads/a.jpg", detail.Images[0].ImageURL)
	assert.Equal(t, 0, detail.Images[0].SortOrder)
	assert.Equal(t, "/uploads/b.jpg", detail.Images[1].ImageURL)
	assert.Equal(t, 1, detail.Images[1].SortOrder)
	require.Len(t, detail.Tags, 1)
	assert.Equal(t, "욕실", detail.Tags[0].Name)
}

func TestPortfolioUpdateReplacesImagesInOrder(t *testing.T) {
	s, db := newPortfolioService(t)
	ctx := context.Background()
	admin := seedAdmin(t, db, "박영희", models.RoleAdmin)
	claims := testClaims(admin.ID, admin.Role)

	id, err := s.Create(ctx, claims, portfolioRequest("사당동 욕실", "/uploads/a.jpg", "/uploads/b.jpg"))
	require.NoError(t, err)

	require.NoError(t, s.Update(ctx, claims, id,
		portfolioRequest("사당동 욕실", "/uploads/c.jpg", "/uploads/a.jpg", "/uploads/d.jpg")))

	detail, err := s.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, detail.Images, 3)
	for i, url := range []string{"/uploads/c.jpg", "/uploads/a.jpg", "/uploads/d.jpg"} {
		assert.Equal(t, url, detail.Images[i].ImageURL)
		assert.Equal(t, i, detail.Images[i].SortOrder)
	}
}

func TestPortfolioUpdateFailureKeepsOriginalChildren(t *testing.T) {
	s, db := newPortfolioService(t)
	ctx := context.Background()
	admin := seedAdmin(t, db, "박영희", models.RoleAdmin)
	claims := testClaims(admin.ID, admin.Role)
	tag := seedTag(t, db, "욕실", "bathroom")

	create := portfolioRequest("사당동 욕실", "/uploads/a.jpg", "/uploads/b.jpg")
	create.TagIDs = []string{tag.ID}
	id, err := s.Create(ctx, claims, create)
	require.NoError(t, err)

	// 같은 태그를 두 번 연결하면 복합키 충돌로 트랜잭션이 실패한다
	update := portfolioRequest("수정 제목", "/uploads/x.jpg")
	update.TagIDs = []string{tag.ID, tag.ID}
	err = s.Update(ctx, claims, id, update)
	require.Error(t, err)

	detail, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "사당동 욕실", detail.Portfolio.Title)
	require.Len(t, detail.Images, 2)
	assert.Equal(t, "/uploads/a.jpg", detail.Images[0].ImageURL)
	assert.Equal(t, "/uploads/b.jpg", detail.Images[1].ImageURL)
	assert.Len(t, detail.Tags, 1)
}

func TestPortfolioUpdateNotFound(t *testing.T) {
	s, db := newPortfolioService(t)
	ctx := context.Background()
	admin := seedAdmin(t, db, "박영희", models.RoleAdmin)

	err := s.Update(ctx, testClaims(admin.ID, admin.Role), "no-such-id", portfolioRequest("없음"))
	assert.ErrorIs(t, err, xe.ErrPortfolioNotFound)
}

func TestPortfolioGetPublicHidesInactive(t *testing.T) {
	s, db := newPortfolioService(t)
	ctx := context.Background()
	admin := seedAdmin(t, db, "박영희", models.RoleAdmin)
	claims := testClaims(admin.ID, admin.Role)

	id, err := s.Create(ctx, claims, portfolioRequest("사당동 욕실"))
	require.NoError(t, err)

	_, err = s.GetPublic(ctx, id)
	require.NoError(t, err)

	require.NoError(t, s.ToggleActive(ctx, claims, id, false))

	_, err = s.GetPublic(ctx, id)
	assert.ErrorIs(t, err, xe.ErrPortfolioNotFound)

	// 관리자 조회는 비활성도 보인다
	_, err = s.Get(ctx, id)
	assert.NoError(t, err)
}

func TestPortfolioAdjacentNavigation(t *testing.T) {
	s, db := newPortfolioService(t)
	ctx := context.Background()
	admin := seedAdmin(t, db, "박영희", models.RoleAdmin)
	claims := testClaims(admin.ID, admin.Role)

	ids := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		id, err := s.Create(ctx, claims, portfolioRequest(fmt.Sprintf("시공 %d", i)))
		require.NoError(t, err)
		ids = append(ids, id)
	}

	adjacent, err := s.FindAdjacent(ctx, ids[1])
	require.NoError(t, err)
	require.NotNil(t, adjacent.Prev)
	require.NotNil(t, adjacent.Next)
	assert.Equal(t, ids[0], adjacent.Prev.ID)
	assert.Equal(t, ids[2], adjacent.Next.ID)

	// 양끝에서는 빈 쪽이 nil이다
	adjacent, err = s.FindAdjacent(ctx, ids[0])
	require.NoError(t, err)
	assert.Nil(t, adjacent.Prev)
	require.NotNil(t, adjacent.Next)

	// 비활성 시공사례는 이동 대상에서 빠진다
	require.NoError(t, s.ToggleActive(ctx, claims, ids[2], false))
	adjacent, err = s.FindAdjacent(ctx, ids[1])
	require.NoError(t, err)
	assert.Nil(t, adjacent.Next)
}

func TestPortfolioFeaturedLimit(t *testing.T) {
	s, db := newPortfolioService(t)
	ctx := context.Background()
	admin := seedAdmin(t, db, "박영희", models.RoleAdmin)
	claims := testClaims(admin.ID, admin.Role)

	for i := 0; i < featuredLimit+2; i++ {
		req := portfolioRequest(fmt.Sprintf("시공 %d", i))
		req.IsFeatured = true
		_, err := s.Create(ctx, claims, req)
		require.NoError(t, err)
	}

	featured, err := s.FindFeatured(ctx)
	require.NoError(t, err)
	assert.Len(t, featured, featuredLimit)
}

func TestPortfolioDeleteRemovesChildren(t *testing.T) {
	s, db := newPortfolioService(t)
	ctx := context.Background()
	admin := seedAdmin(t, db, "박영희", models.RoleAdmin)
	claims := testClaims(admin.ID, admin.Role)
	tag := seedTag(t, db, "욕실", "bathroom")

	req := portfolioRequest("사당동 욕실", "/uploads/a.jpg")
	req.TagIDs = []string{tag.ID}
	id, err := s.Create(ctx, claims, req)
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, claims, id))

	_, err = s.Get(ctx, id)
	assert.ErrorIs(t, err, xe.ErrPortfolioNotFound)

	var images, links int64
	require.NoError(t, db.Model(&models.PortfolioImage{}).Where("portfolio_id = ?", id).Count(&images).Error)
	require.NoError(t, db.Model(&models.PortfolioTag{}).Where("portfolio_id = ?", id).Count(&links).Error)
	assert.EqualValues(t, 0, images)
	assert.EqualValues(t, 0, links)

	// 태그 자체는 남는다
	var tags int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&tags).Error)
	assert.EqualValues(t, 1, tags)
}
