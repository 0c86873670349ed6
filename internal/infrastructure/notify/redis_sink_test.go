package notify

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appledger "github.com/govindweb777/erp-sales-backend/internal/application/ledger"
)

func newTestSink(t *testing.T) (*RedisSink, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisSink(client), mr
}

func TestRedisSink_PublishBothChannels(t *testing.T) {
	sink, mr := newTestSink(t)

	companySub := mr.NewSubscriber()
	defer companySub.Close()
	companySub.Subscribe(CompanyChannel("co-1"))

	branchSub := mr.NewSubscriber()
	defer branchSub.Close()
	branchSub.Subscribe(BranchChannel("br-1"))

	event := appledger.Event{
		Type:       "sales:created",
		CompanyID:  "co-1",
		BranchID:   "br-1",
		DocumentID: "doc-1",
		DocumentNo: "INV00001",
		ActorID:    "user-1",
		At:         time.Now().UTC(),
	}
	require.NoError(t, sink.Publish(context.Background(), event))

	msg := <-companySub.Messages()
	assert.Equal(t, CompanyChannel("co-1"), msg.Channel)

	var got appledger.Event
	require.NoError(t, json.Unmarshal([]byte(msg.Message), &got))
	assert.Equal(t, "sales:created", got.Type)
	assert.Equal(t, "INV00001", got.DocumentNo)

	branchMsg := <-branchSub.Messages()
	assert.Equal(t, BranchChannel("br-1"), branchMsg.Channel)
	assert.Equal(t, msg.Message, branchMsg.Message)
}

func TestRedisSink_NoBranchChannelWithoutBranch(t *testing.T) {
	sink, mr := newTestSink(t)

	sub := mr.NewSubscriber()
	defer sub.Close()
	sub.Subscribe(CompanyChannel("co-1"))
	sub.Subscribe(BranchChannel(""))

	event := appledger.Event{
		Type:      "journal-vouchers:created",
		CompanyID: "co-1",
		At:        time.Now().UTC(),
	}
	require.NoError(t, sink.Publish(context.Background(), event))

	msg := <-sub.Messages()
	assert.Equal(t, CompanyChannel("co-1"), msg.Channel)

	select {
	case extra := <-sub.Messages():
		t.Fatalf("publicación inesperada en %s", extra.Channel)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNoopSink_Publish(t *testing.T) {
	var sink NoopSink
	assert.NoError(t, sink.Publish(context.Background(), appledger.Event{Type: "sales:created"}))
}
