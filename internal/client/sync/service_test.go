package sync

import (
	"context"
	"errors"
	"log/slog"
	"os"
	stdsync "sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/gophshop/internal/client/api"
	"github.com/iudanet/gophshop/internal/client/auth"
	"github.com/iudanet/gophshop/internal/client/netcheck"
	"github.com/iudanet/gophshop/internal/client/storage"
	"github.com/iudanet/gophshop/internal/models"
	"github.com/iudanet/gophshop/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// onlineChecker возвращает Checker, считающий сеть и бэкенд доступными
func onlineChecker() *netcheck.CheckerMock {
	return &netcheck.CheckerMock{
		IsOnlineFunc: func(ctx context.Context) bool {
			return true
		},
		IsBackendReachableFunc: func(ctx context.Context) bool {
			return true
		},
	}
}

func staticTokens(token string) *auth.TokenProviderMock {
	return &auth.TokenProviderMock{
		BearerTokenFunc: func(ctx context.Context) (string, error) {
			return token, nil
		},
	}
}

// memOplog строит OperationLogMock поверх слайса, сохраняя порядок постановки
func memOplog(ops ...*models.PendingOperation) *storage.OperationLogMock {
	queue := append([]*models.PendingOperation{}, ops...)

	mock := &storage.OperationLogMock{}
	mock.EnqueueFunc = func(ctx context.Context, op *models.PendingOperation) error {
		queue = append(queue, op)
		return nil
	}
	mock.ListFunc = func(ctx context.Context) ([]*models.PendingOperation, error) {
		out := make([]*models.PendingOperation, len(queue))
		copy(out, queue)
		return out, nil
	}
	mock.RemoveFunc = func(ctx context.Context, id string) error {
		for i, op := range queue {
			if op.ID == id {
				queue = append(queue[:i], queue[i+1:]...)
				return nil
			}
		}
		return storage.ErrOperationNotFound
	}
	mock.UpdateRetryFunc = func(ctx context.Context, id string, retryCount int) error {
		for _, op := range queue {
			if op.ID == id {
				op.RetryCount = retryCount
				return nil
			}
		}
		return storage.ErrOperationNotFound
	}
	mock.CountFunc = func(ctx context.Context) (int, error) {
		return len(queue), nil
	}
	return mock
}

func cartAddOp(t *testing.T, productID string, quantity int) *models.PendingOperation {
	t.Helper()
	op, err := models.NewCartOperation(models.OpCartAdd, models.CartPayload{
		ProductID: productID,
		Type:      models.ItemTypeProduct,
		Quantity:  quantity,
		Snapshot: models.ProductSnapshot{
			ProductID: productID,
			Type:      models.ItemTypeProduct,
			Name:      "Test Product",
			Price:     100,
		},
	})
	require.NoError(t, err)
	return op
}

func wishlistAddOp(t *testing.T, productID string) *models.PendingOperation {
	t.Helper()
	op, err := models.NewWishlistOperation(models.OpWishlistAdd, models.WishlistPayload{
		ProductID: productID,
		Type:      models.ItemTypeProduct,
		Snapshot: models.ProductSnapshot{
			ProductID: productID,
			Type:      models.ItemTypeProduct,
		},
	})
	require.NoError(t, err)
	return op
}

func TestNewService(t *testing.T) {
	svc := NewService(
		&clientapi.ClientAPIMock{},
		memOplog(),
		onlineChecker(),
		staticTokens("token"),
		testLogger(),
	)
	assert.NotNil(t, svc)
}

func TestDrain_Offline_Deferred(t *testing.T) {
	checker := &netcheck.CheckerMock{
		IsOnlineFunc: func(ctx context.Context) bool {
			return false
		},
	}
	oplog := memOplog(cartAddOp(t, "p-1", 1))
	mockAPI := &clientapi.ClientAPIMock{}

	svc := NewService(mockAPI, oplog, checker, staticTokens("token"), testLogger())

	result, err := svc.Drain(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Deferred)
	assert.Zero(t, result.Attempted)

	// Очередь даже не читается: оффлайн-проход ничего не стоит
	assert.Empty(t, oplog.ListCalls())
	assert.Empty(t, mockAPI.CartAddCalls())

	// Операция пережила проход нетронутой
	count, err := svc.PendingCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDrain_BackendUnreachable_Deferred(t *testing.T) {
	checker := &netcheck.CheckerMock{
		IsOnlineFunc: func(ctx context.Context) bool {
			return true
		},
		IsBackendReachableFunc: func(ctx context.Context) bool {
			return false
		},
	}
	oplog := memOplog(cartAddOp(t, "p-1", 1))

	svc := NewService(&clientapi.ClientAPIMock{}, oplog, checker, staticTokens("token"), testLogger())

	result, err := svc.Drain(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Deferred)
	assert.Empty(t, oplog.ListCalls())
}

func TestDrain_EmptyQueue_NoDispatch(t *testing.T) {
	oplog := memOplog()
	mockAPI := &clientapi.ClientAPIMock{}
	tokens := staticTokens("token")

	svc := NewService(mockAPI, oplog, onlineChecker(), tokens, testLogger())

	// Drain идемпотентен: повторные вызовы на пустой очереди — no-op
	for range 3 {
		result, err := svc.Drain(context.Background())
		require.NoError(t, err)
		assert.False(t, result.Deferred)
		assert.Zero(t, result.Attempted)
	}

	assert.Empty(t, mockAPI.CartAddCalls())
	assert.Empty(t, tokens.BearerTokenCalls())
}

func TestDrain_Success_FIFOOrder(t *testing.T) {
	oplog := memOplog(
		cartAddOp(t, "p-1", 1),
		cartAddOp(t, "p-2", 2),
		wishlistAddOp(t, "p-3"),
	)

	var sent []string
	mockAPI := &clientapi.ClientAPIMock{
		CartAddFunc: func(ctx context.Context, accessToken string, req api.CartItemRequest) error {
			sent = append(sent, req.ProductID)
			return nil
		},
		WishlistAddFunc: func(ctx context.Context, accessToken string, req api.WishlistItemRequest) error {
			sent = append(sent, req.ProductID)
			return nil
		},
	}

	svc := NewService(mockAPI, oplog, onlineChecker(), staticTokens("secret-token"), testLogger())

	result, err := svc.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, result.Attempted)
	assert.Equal(t, 3, result.Synced)
	assert.Zero(t, result.Retried)
	assert.Zero(t, result.Dropped)

	// Отправка строго в порядке постановки
	assert.Equal(t, []string{"p-1", "p-2", "p-3"}, sent)

	// Каждый запрос ушел с токеном вызывающего
	for _, call := range mockAPI.CartAddCalls() {
		assert.Equal(t, "secret-token", call.AccessToken)
	}

	count, err := svc.PendingCount(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDrain_FailureIncrementsRetry(t *testing.T) {
	op := cartAddOp(t, "p-1", 1)
	oplog := memOplog(op)

	mockAPI := &clientapi.ClientAPIMock{
		CartAddFunc: func(ctx context.Context, accessToken string, req api.CartItemRequest) error {
			return errors.New("server error")
		},
	}

	svc := NewService(mockAPI, oplog, onlineChecker(), staticTokens("token"), testLogger())

	result, err := svc.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Attempted)
	assert.Equal(t, 1, result.Retried)
	assert.Zero(t, result.Synced)
	assert.Zero(t, result.Dropped)

	// Счетчик увеличен, операция осталась в очереди
	require.Len(t, oplog.UpdateRetryCalls(), 1)
	assert.Equal(t, 1, oplog.UpdateRetryCalls()[0].RetryCount)
	assert.Empty(t, oplog.RemoveCalls())
}

func TestDrain_RetryCap_DropsOperation(t *testing.T) {
	// Две предыдущие попытки уже провалены — эта будет третьей
	op := cartAddOp(t, "p-1", 1)
	op.RetryCount = MaxRetries - 1
	oplog := memOplog(op)

	mockAPI := &clientapi.ClientAPIMock{
		CartAddFunc: func(ctx context.Context, accessToken string, req api.CartItemRequest) error {
			return errors.New("server error")
		},
	}

	var dropped []*models.PendingOperation
	svc := NewService(mockAPI, oplog, onlineChecker(), staticTokens("token"), testLogger(),
		WithDropHandler(func(op *models.PendingOperation) {
			dropped = append(dropped, op)
		}),
	)

	result, err := svc.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Dropped)
	assert.Zero(t, result.Retried)

	// Хук получил брошенную операцию
	require.Len(t, dropped, 1)
	assert.Equal(t, op.ID, dropped[0].ID)
	assert.Equal(t, MaxRetries, dropped[0].RetryCount)

	// Очередь пуста: операция не зависла навсегда
	count, err := svc.PendingCount(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDrain_RetryCap_EndToEnd(t *testing.T) {
	// Та же операция проваливается проход за проходом: ровно MaxRetries
	// попыток отправки, затем очередь пуста
	oplog := memOplog(cartAddOp(t, "p-1", 1))

	attempts := 0
	mockAPI := &clientapi.ClientAPIMock{
		CartAddFunc: func(ctx context.Context, accessToken string, req api.CartItemRequest) error {
			attempts++
			return errors.New("server error")
		},
	}

	svc := NewService(mockAPI, oplog, onlineChecker(), staticTokens("token"), testLogger())

	for range MaxRetries + 2 {
		_, err := svc.Drain(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, MaxRetries, attempts)

	count, err := svc.PendingCount(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDrain_FailureDoesNotBlockQueue(t *testing.T) {
	// Первая операция падает, вторая должна уйти в том же проходе
	oplog := memOplog(
		cartAddOp(t, "p-bad", 1),
		cartAddOp(t, "p-good", 1),
	)

	mockAPI := &clientapi.ClientAPIMock{
		CartAddFunc: func(ctx context.Context, accessToken string, req api.CartItemRequest) error {
			if req.ProductID == "p-bad" {
				return errors.New("server error")
			}
			return nil
		},
	}

	svc := NewService(mockAPI, oplog, onlineChecker(), staticTokens("token"), testLogger())

	result, err := svc.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Attempted)
	assert.Equal(t, 1, result.Synced)
	assert.Equal(t, 1, result.Retried)
}

func TestDrain_MissingToken_Retryable(t *testing.T) {
	oplog := memOplog(cartAddOp(t, "p-1", 1))

	tokens := &auth.TokenProviderMock{
		BearerTokenFunc: func(ctx context.Context) (string, error) {
			return "", auth.ErrNotAuthenticated
		},
	}
	mockAPI := &clientapi.ClientAPIMock{}

	svc := NewService(mockAPI, oplog, onlineChecker(), tokens, testLogger())

	result, err := svc.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Retried)

	// Неаутентифицированный запрос не отправляется вовсе
	assert.Empty(t, mockAPI.CartAddCalls())

	// Операция дождется логина в очереди
	count, err := svc.PendingCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDrain_ListError(t *testing.T) {
	oplog := &storage.OperationLogMock{
		ListFunc: func(ctx context.Context) ([]*models.PendingOperation, error) {
			return nil, errors.New("db corrupted")
		},
	}

	svc := NewService(&clientapi.ClientAPIMock{}, oplog, onlineChecker(), staticTokens("token"), testLogger())

	result, err := svc.Drain(context.Background())
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestDrain_UnknownKind_CountsAsFailure(t *testing.T) {
	op := cartAddOp(t, "p-1", 1)
	op.Kind = "CART_EXPLODE"
	oplog := memOplog(op)

	svc := NewService(&clientapi.ClientAPIMock{}, oplog, onlineChecker(), staticTokens("token"), testLogger())

	result, err := svc.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Retried)
}

func TestDrain_ConcurrentDrains_DispatchOnce(t *testing.T) {
	// Два одновременных прохода: пока первый висит на отправке, второй
	// обязан ждать, а не отправить ту же операцию повторно
	oplog := memOplog(cartAddOp(t, "p-1", 1))

	dispatching := make(chan struct{}, 2)
	release := make(chan struct{})
	mockAPI := &clientapi.ClientAPIMock{
		CartAddFunc: func(ctx context.Context, accessToken string, req api.CartItemRequest) error {
			dispatching <- struct{}{}
			<-release
			return nil
		},
	}

	svc := NewService(mockAPI, oplog, onlineChecker(), staticTokens("token"), testLogger())

	var wg stdsync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Drain(context.Background())
			assert.NoError(t, err)
		}()
	}

	// Один из проходов дошел до API и завис; отпускаем его
	<-dispatching
	close(release)
	wg.Wait()

	// Операция ушла на сервер ровно один раз: второй проход увидел
	// уже пустую очередь
	assert.Len(t, mockAPI.CartAddCalls(), 1)

	count, err := svc.PendingCount(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPendingCount(t *testing.T) {
	oplog := memOplog(cartAddOp(t, "p-1", 1), cartAddOp(t, "p-2", 1))

	svc := NewService(&clientapi.ClientAPIMock{}, oplog, onlineChecker(), staticTokens("token"), testLogger())

	count, err := svc.PendingCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
