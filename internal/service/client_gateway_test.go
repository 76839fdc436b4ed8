package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

type countingRefresher struct {
	n atomic.Int32
}

func (c *countingRefresher) Refresh() { c.n.Add(1) }

func newTestGateway(t *testing.T) (MutationGateway, *mock.MockServerAdapter, *countingRefresher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)
	a.EXPECT().Token().Return("tkn").AnyTimes()
	r := &countingRefresher{}
	return NewMutationGateway(a, r, logger.Nop()), a, r
}

func TestMutationGateway_Create(t *testing.T) {
	g, a, r := newTestGateway(t)
	item := models.NewItem{Title: "Ideas", Text: "write more"}

	a.EXPECT().CreateItem(gomock.Any(), item).Return("id-1", nil)

	id, err := g.Create(context.Background(), item)
	require.NoError(t, err)
	assert.Equal(t, "id-1", id)
	assert.Equal(t, int32(1), r.n.Load())
}

func TestMutationGateway_Create_Rejected(t *testing.T) {
	g, a, r := newTestGateway(t)

	a.EXPECT().CreateItem(gomock.Any(), gomock.Any()).
		Return("", fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidColor))

	_, err := g.Create(context.Background(), models.NewItem{Text: "x", Color: "#000"})
	assert.ErrorIs(t, err, validators.ErrInvalidColor)
	assert.Zero(t, r.n.Load(), "failed mutations must not refresh")
}

func TestMutationGateway_Update_SetsID(t *testing.T) {
	g, a, r := newTestGateway(t)

	a.EXPECT().UpdateItem(gomock.Any(), models.ItemUpdate{ID: "x", Title: models.Ptr("new")}).Return(nil)

	require.NoError(t, g.Update(context.Background(), "x", models.ItemUpdate{ID: "ignored", Title: models.Ptr("new")}))
	assert.Equal(t, int32(1), r.n.Load())

	assert.ErrorIs(t, g.Update(context.Background(), "", models.ItemUpdate{}), ErrNoItemID)
}

func TestMutationGateway_ToggleAndPin(t *testing.T) {
	g, a, r := newTestGateway(t)
	item := models.Item{ID: "x", Completed: true, IsPinned: false}

	gomock.InOrder(
		a.EXPECT().UpdateItem(gomock.Any(), models.ItemUpdate{ID: "x", Completed: models.Ptr(false)}).Return(nil),
		a.EXPECT().UpdateItem(gomock.Any(), models.ItemUpdate{ID: "x", IsPinned: models.Ptr(true)}).Return(nil),
	)

	require.NoError(t, g.Toggle(context.Background(), item))
	require.NoError(t, g.Pin(context.Background(), item))
	assert.Equal(t, int32(2), r.n.Load())
}

func TestMutationGateway_Delete_NotFound(t *testing.T) {
	g, a, _ := newTestGateway(t)

	a.EXPECT().DeleteItem(gomock.Any(), "gone").Return(fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgItemNotFound))

	err := g.Delete(context.Background(), "gone")
	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestMutationGateway_NotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)
	a.EXPECT().Token().Return("").AnyTimes()
	g := NewMutationGateway(a, &countingRefresher{}, logger.Nop())

	_, err := g.Create(context.Background(), models.NewItem{Text: "x"})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.ErrorIs(t, g.Delete(context.Background(), "x"), ErrNotAuthenticated)
}
