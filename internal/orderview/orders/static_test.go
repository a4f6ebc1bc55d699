package orders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaticServiceOrder(t *testing.T) {
	t.Parallel()

	svc := NewStaticService()
	ctx := context.Background()

	order, err := svc.Order(ctx, "b563feb7b2b84b6test")
	require.NoError(t, err)
	require.Equal(t, "b563feb7b2b84b6test", order.OrderUID)
	require.NotNil(t, order.Payment)
	require.Len(t, order.Items, 1)

	_, err = svc.Order(ctx, "nope")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestStaticServiceListNewestFirst(t *testing.T) {
	t.Parallel()

	svc := NewStaticService()
	entries, err := svc.List(context.Background())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(entries), 2)

	for i := 1; i < len(entries); i++ {
		require.GreaterOrEqual(t, entries[i-1].CreatedAt, entries[i].CreatedAt)
	}
}

func TestStaticServicePut(t *testing.T) {
	t.Parallel()

	svc := NewStaticService()
	svc.Put(Order{OrderUID: "added", DateCreated: "2030-01-01T00:00:00Z"})

	order, err := svc.Order(context.Background(), "added")
	require.NoError(t, err)
	require.Equal(t, "added", order.OrderUID)
}
