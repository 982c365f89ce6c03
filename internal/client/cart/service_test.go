package cart

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophshop/internal/client/state"
	"github.com/iudanet/gophshop/internal/client/storage"
	syncsvc "github.com/iudanet/gophshop/internal/client/sync"
	"github.com/iudanet/gophshop/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// memCartStorage строит CartStorageMock поверх слайса с порядком вставки
func memCartStorage() *storage.CartStorageMock {
	var items []*models.CartItem

	mock := &storage.CartStorageMock{}
	mock.SaveItemFunc = func(ctx context.Context, item *models.CartItem) error {
		for i, existing := range items {
			if existing.ID == item.ID {
				items[i] = item
				return nil
			}
		}
		items = append(items, item)
		return nil
	}
	mock.GetItemFunc = func(ctx context.Context, id string) (*models.CartItem, error) {
		for _, item := range items {
			if item.ID == id {
				return item, nil
			}
		}
		return nil, storage.ErrItemNotFound
	}
	mock.FindByKeyFunc = func(ctx context.Context, key models.ItemKey) (*models.CartItem, error) {
		for _, item := range items {
			if item.Key() == key {
				return item, nil
			}
		}
		return nil, storage.ErrItemNotFound
	}
	mock.ListItemsFunc = func(ctx context.Context) ([]*models.CartItem, error) {
		out := make([]*models.CartItem, len(items))
		copy(out, items)
		return out, nil
	}
	mock.DeleteItemFunc = func(ctx context.Context, id string) error {
		for i, item := range items {
			if item.ID == id {
				items = append(items[:i], items[i+1:]...)
				return nil
			}
		}
		return storage.ErrItemNotFound
	}
	mock.ClearFunc = func(ctx context.Context) error {
		items = nil
		return nil
	}
	return mock
}

func recordingOplog() *storage.OperationLogMock {
	return &storage.OperationLogMock{
		EnqueueFunc: func(ctx context.Context, op *models.PendingOperation) error {
			return nil
		},
	}
}

func idleSyncer() *syncsvc.ServiceMock {
	return &syncsvc.ServiceMock{
		DrainFunc: func(ctx context.Context) (*syncsvc.Result, error) {
			return &syncsvc.Result{}, nil
		},
	}
}

func testProduct(id string, maxQuantity int) models.ProductSnapshot {
	return models.ProductSnapshot{
		ProductID:     id,
		Type:          models.ItemTypeProduct,
		Name:          "Test Product",
		Category:      "snacks",
		Price:         150,
		DiscountPrice: 120,
		MaxQuantity:   maxQuantity,
	}
}

func TestAddItem_NewItem(t *testing.T) {
	cartStorage := memCartStorage()
	oplog := recordingOplog()

	svc := NewService(cartStorage, oplog, idleSyncer(), nil, testLogger())

	err := svc.AddItem(context.Background(), testProduct("p-1", 0), 2)
	require.NoError(t, err)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p-1", items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.NotEmpty(t, items[0].ID)

	// Операция встала в очередь после локального сохранения
	calls := oplog.EnqueueCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.OpCartAdd, calls[0].Op.Kind)
	require.NotNil(t, calls[0].Op.Cart)
	assert.Equal(t, "p-1", calls[0].Op.Cart.ProductID)
	assert.Equal(t, 2, calls[0].Op.Cart.Quantity)
}

func TestAddItem_MergesDuplicate(t *testing.T) {
	cartStorage := memCartStorage()
	oplog := recordingOplog()

	svc := NewService(cartStorage, oplog, idleSyncer(), nil, testLogger())

	require.NoError(t, svc.AddItem(context.Background(), testProduct("p-1", 0), 2))
	require.NoError(t, svc.AddItem(context.Background(), testProduct("p-1", 0), 3))

	// Дубликат слился: одна позиция с суммарным количеством
	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)

	// Но операций две: сервер ведет ту же арифметику сам
	assert.Len(t, oplog.EnqueueCalls(), 2)
}

func TestAddItem_MergesDuplicate_WrappedNotFound(t *testing.T) {
	// Слой хранения вправе оборачивать sentinel-ошибки; слияние
	// дубликатов должно узнавать их и через обертку
	cartStorage := memCartStorage()
	findByKey := cartStorage.FindByKeyFunc
	cartStorage.FindByKeyFunc = func(ctx context.Context, key models.ItemKey) (*models.CartItem, error) {
		item, err := findByKey(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to find cart item: %w", err)
		}
		return item, nil
	}

	svc := NewService(cartStorage, recordingOplog(), idleSyncer(), nil, testLogger())

	require.NoError(t, svc.AddItem(context.Background(), testProduct("p-1", 0), 2))
	require.NoError(t, svc.AddItem(context.Background(), testProduct("p-1", 0), 3))

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddItem_ClampsToLimit(t *testing.T) {
	cartStorage := memCartStorage()

	svc := NewService(cartStorage, recordingOplog(), idleSyncer(), nil, testLogger())

	require.NoError(t, svc.AddItem(context.Background(), testProduct("p-1", 5), 4))
	require.NoError(t, svc.AddItem(context.Background(), testProduct("p-1", 5), 4))

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddItem_DefaultLimit(t *testing.T) {
	svc := NewService(memCartStorage(), recordingOplog(), idleSyncer(), nil, testLogger())

	// Каталог не сообщил лимит — действует дефолтный потолок
	require.NoError(t, svc.AddItem(context.Background(), testProduct("p-1", 0), 500))

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.DefaultMaxQuantity, items[0].Quantity)
}

func TestAddItem_InvalidQuantity(t *testing.T) {
	oplog := recordingOplog()
	svc := NewService(memCartStorage(), oplog, idleSyncer(), nil, testLogger())

	err := svc.AddItem(context.Background(), testProduct("p-1", 0), 0)
	assert.Error(t, err)
	assert.Empty(t, oplog.EnqueueCalls())
}

func TestUpdateQuantity(t *testing.T) {
	cartStorage := memCartStorage()
	oplog := recordingOplog()

	svc := NewService(cartStorage, oplog, idleSyncer(), nil, testLogger())
	require.NoError(t, svc.AddItem(context.Background(), testProduct("p-1", 0), 2))

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	err = svc.UpdateQuantity(context.Background(), items[0].ID, 7)
	require.NoError(t, err)

	items, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, items[0].Quantity)

	calls := oplog.EnqueueCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, models.OpCartUpdate, calls[1].Op.Kind)
	assert.Equal(t, 7, calls[1].Op.Cart.Quantity)
}

func TestUpdateQuantity_ZeroMeansRemoval(t *testing.T) {
	cartStorage := memCartStorage()
	oplog := recordingOplog()

	svc := NewService(cartStorage, oplog, idleSyncer(), nil, testLogger())
	require.NoError(t, svc.AddItem(context.Background(), testProduct("p-1", 0), 2))

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	err = svc.UpdateQuantity(context.Background(), items[0].ID, 0)
	require.NoError(t, err)

	// Позиция исчезла локально
	items, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)

	// В очередь ушел remove, а не update с нулем
	calls := oplog.EnqueueCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, models.OpCartRemove, calls[1].Op.Kind)
}

func TestUpdateQuantity_UnknownItem(t *testing.T) {
	svc := NewService(memCartStorage(), recordingOplog(), idleSyncer(), nil, testLogger())

	err := svc.UpdateQuantity(context.Background(), "missing-id", 3)
	assert.ErrorIs(t, err, storage.ErrItemNotFound)
}

func TestRemoveItem(t *testing.T) {
	cartStorage := memCartStorage()
	oplog := recordingOplog()

	svc := NewService(cartStorage, oplog, idleSyncer(), nil, testLogger())
	require.NoError(t, svc.AddItem(context.Background(), testProduct("p-1", 0), 2))

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, svc.RemoveItem(context.Background(), items[0].ID))

	items, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)

	calls := oplog.EnqueueCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, models.OpCartRemove, calls[1].Op.Kind)
	assert.Equal(t, "p-1", calls[1].Op.Cart.ProductID)
}

func TestClear_LocalOnly(t *testing.T) {
	cartStorage := memCartStorage()
	oplog := recordingOplog()

	svc := NewService(cartStorage, oplog, idleSyncer(), nil, testLogger())
	require.NoError(t, svc.AddItem(context.Background(), testProduct("p-1", 0), 1))
	require.NoError(t, svc.AddItem(context.Background(), testProduct("p-2", 0), 1))

	before := len(oplog.EnqueueCalls())
	require.NoError(t, svc.Clear(context.Background()))

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)

	// По умолчанию чистка не трогает серверную корзину
	assert.Len(t, oplog.EnqueueCalls(), before)
}

func TestClear_WithRemoteClear(t *testing.T) {
	cartStorage := memCartStorage()
	oplog := recordingOplog()

	svc := NewService(cartStorage, oplog, idleSyncer(), nil, testLogger(), WithRemoteClear(true))
	require.NoError(t, svc.AddItem(context.Background(), testProduct("p-1", 0), 1))
	require.NoError(t, svc.AddItem(context.Background(), testProduct("p-2", 0), 1))

	before := len(oplog.EnqueueCalls())
	require.NoError(t, svc.Clear(context.Background()))

	// По одному remove на каждую позицию
	calls := oplog.EnqueueCalls()[before:]
	require.Len(t, calls, 2)
	for _, call := range calls {
		assert.Equal(t, models.OpCartRemove, call.Op.Kind)
	}
}

func TestSummary(t *testing.T) {
	svc := NewService(memCartStorage(), recordingOplog(), idleSyncer(), nil, testLogger())

	// 150/120 со скидкой, две штуки; 50 без скидки, одна штука
	require.NoError(t, svc.AddItem(context.Background(), testProduct("p-1", 0), 2))
	plain := models.ProductSnapshot{
		ProductID: "p-2",
		Type:      models.ItemTypeCombo,
		Name:      "Combo",
		Price:     50,
	}
	require.NoError(t, svc.AddItem(context.Background(), plain, 1))

	snap, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, snap.Count)
	assert.InDelta(t, 350, snap.Total, 0.001)
	assert.InDelta(t, 290, snap.DiscountTotal, 0.001)
}

func TestAddItem_PublishesSnapshot(t *testing.T) {
	hub := state.NewHub()
	updates, unsubscribe := hub.SubscribeCart()
	defer unsubscribe()

	svc := NewService(memCartStorage(), recordingOplog(), idleSyncer(), hub, testLogger())
	require.NoError(t, svc.AddItem(context.Background(), testProduct("p-1", 0), 2))

	snap := <-updates
	assert.Equal(t, 2, snap.Count)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "p-1", snap.Items[0].ProductID)
}

func TestAddItem_KicksBackgroundSync(t *testing.T) {
	drained := make(chan struct{}, 1)
	syncer := &syncsvc.ServiceMock{
		DrainFunc: func(ctx context.Context) (*syncsvc.Result, error) {
			drained <- struct{}{}
			return &syncsvc.Result{}, nil
		},
	}

	svc := NewService(memCartStorage(), recordingOplog(), syncer, nil, testLogger())
	require.NoError(t, svc.AddItem(context.Background(), testProduct("p-1", 0), 1))

	// Сверка запускается в фоне, дожидаемся ее
	<-drained
}
