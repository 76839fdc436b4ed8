package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/internal/view"
	"github.com/MKhiriev/go-note-keeper/models"
)

type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

func newTestItemService(t *testing.T) (*itemService, *mock.MockItemRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)

	svc := NewItemService(repo, logger.Nop()).(*itemService)
	svc.ids = fixedIDs("0190a6c4-0000-7000-8000-000000000001")
	return svc, repo
}

func at(day int) *time.Time {
	t := time.Date(2026, 1, day, 12, 0, 0, 0, time.UTC)
	return &t
}

// ── CreateItem ───────────────────────────────────────────────────────────────

func TestItemService_CreateItem_AssignsIDAndColor(t *testing.T) {
	svc, repo := newTestItemService(t)

	repo.EXPECT().CreateItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, item models.Item) (models.Item, error) {
			assert.Equal(t, "0190a6c4-0000-7000-8000-000000000001", item.ID)
			assert.Equal(t, int64(5), item.UserID)
			assert.True(t, view.IsPaletteColor(item.Color))
			assert.False(t, item.Completed)
			item.CreatedAt = at(1)
			return item, nil
		})

	got, err := svc.CreateItem(context.Background(), 5, models.NewItem{Text: "buy milk"})
	require.NoError(t, err)
	assert.NotNil(t, got.CreatedAt)
}

func TestItemService_CreateItem_KeepsChosenColor(t *testing.T) {
	svc, repo := newTestItemService(t)

	repo.EXPECT().CreateItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, item models.Item) (models.Item, error) {
			assert.Equal(t, "#aecbfa", item.Color)
			assert.True(t, item.IsPinned)
			return item, nil
		})

	_, err := svc.CreateItem(context.Background(), 5, models.NewItem{Text: "x", Color: "#aecbfa", IsPinned: true})
	require.NoError(t, err)
}

func TestItemService_CreateItem_LowercasesColor(t *testing.T) {
	svc, repo := newTestItemService(t)

	repo.EXPECT().CreateItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, item models.Item) (models.Item, error) {
			assert.Equal(t, "#f28b82", item.Color)
			return item, nil
		})

	_, err := svc.CreateItem(context.Background(), 5, models.NewItem{Text: "x", Color: "#F28B82"})
	require.NoError(t, err)
}

// ── ListItems / Report ───────────────────────────────────────────────────────

func TestItemService_ListItems_NeverNil(t *testing.T) {
	svc, repo := newTestItemService(t)
	repo.EXPECT().ListItems(gomock.Any(), int64(5)).Return(nil, nil)

	items, err := svc.ListItems(context.Background(), 5)
	require.NoError(t, err)
	assert.NotNil(t, items)
}

func TestItemService_Report_UsesDerivedView(t *testing.T) {
	svc, repo := newTestItemService(t)

	repo.EXPECT().ListItems(gomock.Any(), int64(5)).Return([]models.Item{
		{ID: "a", Text: "old task", Completed: true, CreatedAt: at(1)},
		{ID: "b", Text: "new task", CreatedAt: at(3)},
		{ID: "c", Title: "pinned title", IsPinned: true, CreatedAt: at(2)},
	}, nil).Times(2)

	report, err := svc.Report(context.Background(), 5, models.DefaultViewConfig())
	require.NoError(t, err)
	assert.Equal(t, "[TODO] pinned title\n[TODO] new task\n[DONE] old task", report)

	cfg := models.DefaultViewConfig()
	cfg.FilterMode = models.FilterCompleted
	report, err = svc.Report(context.Background(), 5, cfg)
	require.NoError(t, err)
	assert.Equal(t, "[DONE] old task", report)
}

// ── Update / Delete ──────────────────────────────────────────────────────────

func TestItemService_UpdateItem_NotFound(t *testing.T) {
	svc, repo := newTestItemService(t)
	update := models.ItemUpdate{ID: "x", UserID: 5, Completed: models.Ptr(true)}

	repo.EXPECT().UpdateItem(gomock.Any(), update).Return(models.Item{}, store.ErrItemNotFound)

	_, err := svc.UpdateItem(context.Background(), update)
	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestItemService_UpdateItem_LowercasesColor(t *testing.T) {
	svc, repo := newTestItemService(t)

	repo.EXPECT().UpdateItem(gomock.Any(), models.ItemUpdate{ID: "x", UserID: 5, Color: models.Ptr("#aecbfa")}).
		Return(models.Item{ID: "x", Color: "#aecbfa"}, nil)

	got, err := svc.UpdateItem(context.Background(), models.ItemUpdate{ID: "x", UserID: 5, Color: models.Ptr("#AECBFA")})
	require.NoError(t, err)
	assert.Equal(t, "#aecbfa", got.Color)
}

func TestItemService_DeleteItem(t *testing.T) {
	svc, repo := newTestItemService(t)
	repo.EXPECT().DeleteItem(gomock.Any(), int64(5), "x").Return(nil)

	assert.NoError(t, svc.DeleteItem(context.Background(), 5, "x"))
}

// ── validation wrapper ───────────────────────────────────────────────────────

const validItemID = "0190a6c4-0000-7000-8000-00000000000a"

func TestItemValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockItemService(ctrl)
	svc := NewItemValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.CreateItem(ctx, 5, models.NewItem{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyItem)

	_, err = svc.CreateItem(ctx, 0, models.NewItem{Text: "x"})
	assert.ErrorIs(t, err, ErrValidationNoUserID)

	_, err = svc.UpdateItem(ctx, models.ItemUpdate{ID: validItemID, UserID: 5, Color: models.Ptr("#123456")})
	assert.ErrorIs(t, err, validators.ErrInvalidColor)

	_, err = svc.UpdateItem(ctx, models.ItemUpdate{ID: validItemID, UserID: 5})
	assert.ErrorIs(t, err, validators.ErrNoFieldsToUpdate)

	assert.ErrorIs(t, svc.DeleteItem(ctx, 5, ""), ErrInvalidDataProvided)
	assert.ErrorIs(t, svc.DeleteItem(ctx, 5, "not-a-uuid"), validators.ErrInvalidItemID)

	_, err = svc.UpdateItem(ctx, models.ItemUpdate{ID: "not-a-uuid", UserID: 5, Completed: models.Ptr(true)})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidItemID)

	inner.EXPECT().DeleteItem(ctx, int64(5), validItemID).Return(nil)
	require.NoError(t, svc.DeleteItem(ctx, 5, validItemID))

	inner.EXPECT().CreateItem(ctx, int64(5), models.NewItem{Text: "x"}).Return(models.Item{ID: "new"}, nil)
	got, err := svc.CreateItem(ctx, 5, models.NewItem{Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, "new", got.ID)

	update := models.ItemUpdate{ID: validItemID, UserID: 5, Deadline: models.Ptr("")}
	inner.EXPECT().UpdateItem(ctx, update).Return(models.Item{ID: validItemID}, nil)
	_, err = svc.UpdateItem(ctx, update)
	require.NoError(t, err)
}

// ── app info ─────────────────────────────────────────────────────────────────

func TestAppInfoService_GetAppVersion(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("v1.0.0", "", "abc123"), logger.Nop())

	got := svc.GetAppVersion(context.Background())
	assert.Equal(t, models.VersionResponse{Version: "v1.0.0", Date: "N/A", Commit: "abc123"}, got)
}
