package rabbitmq_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/pkg/rabbitmq"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_BuildsPersistentJSONMessage(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	msg, err := rabbitmq.Encode("pet.status_changed", map[string]string{"petId": "p-1", "status": "adopted"}, at)
	require.NoError(t, err)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, "pet.status_changed", msg.Type)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, at, msg.Timestamp)
	assert.NotEmpty(t, msg.MessageId)

	var evt struct {
		ID   string            `json:"id"`
		Type string            `json:"type"`
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(msg.Body, &evt))
	assert.Equal(t, msg.MessageId, evt.ID)
	assert.Equal(t, "pet.status_changed", evt.Type)
	assert.Equal(t, "adopted", evt.Data["status"])
}

func TestEncode_RejectsUnmarshalablePayload(t *testing.T) {
	_, err := rabbitmq.Encode("broken", make(chan int), time.Now())
	assert.Error(t, err)
}

func TestPublish_WithoutChannel(t *testing.T) {
	c := &rabbitmq.Client{}
	err := c.Publish("donation.created", nil)
	assert.Error(t, err)
}
