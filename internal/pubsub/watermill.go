package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// outputBuffer is the per-subscriber queue length of the in-memory channel.
const outputBuffer = 64

// metaKeyTopic carries Message.Topic through watermill's metadata.
const metaKeyTopic = "topic"

// WatermillBridge implements Publisher and Subscriber over watermill's
// in-memory GoChannel.
type WatermillBridge struct {
	channel *gochannel.GoChannel
}

// NewWatermillBridge creates an in-memory bus.
func NewWatermillBridge() *WatermillBridge {
	return &WatermillBridge{
		channel: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: outputBuffer},
			watermill.NewStdLogger(false, false),
		),
	}
}

func toWatermill(msg Message) *message.Message {
	out := message.NewMessage(watermill.NewUUID(), msg.Payload)
	for k, v := range msg.Metadata {
		out.Metadata.Set(k, v)
	}
	out.Metadata.Set(metaKeyTopic, msg.Topic)
	return out
}

func fromWatermill(in *message.Message) Message {
	metadata := make(map[string]string, len(in.Metadata))
	for k, v := range in.Metadata {
		if k != metaKeyTopic {
			metadata[k] = v
		}
	}
	return Message{
		Topic:    in.Metadata.Get(metaKeyTopic),
		Payload:  in.Payload,
		Metadata: metadata,
	}
}

// Publish implements Publisher. The request ID in ctx, if any, is copied
// into the message metadata.
func (wb *WatermillBridge) Publish(ctx context.Context, msg Message) error {
	out := toWatermill(msg)
	if id := RequestID(ctx); id != "" && out.Metadata.Get(MetaRequestID) == "" {
		out.Metadata.Set(MetaRequestID, id)
	}
	out.SetContext(ctx)
	return wb.channel.Publish(msg.Topic, out)
}

// Subscribe implements Subscriber.
func (wb *WatermillBridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := wb.channel.Subscribe(ctx, topic)
	if err != nil {
		return err
	}
	go consume(ctx, topic, messages, handler)
	return nil
}

// consume runs handler for every delivery. Messages are always acked: the
// channel redelivers nacked messages at once, so a failing handler would spin.
func consume(ctx context.Context, topic string, messages <-chan *message.Message, handler Handler) {
	for in := range messages {
		if err := handler(ctx, fromWatermill(in)); err != nil {
			slog.Error("Failed to handle message", "topic", topic, "msg_id", in.UUID, "error", err)
		}
		in.Ack()
	}
	slog.Debug("Subscription ended", "topic", topic)
}

// Close stops every subscription and rejects further publishes.
func (wb *WatermillBridge) Close() error {
	return wb.channel.Close()
}
