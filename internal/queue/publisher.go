package queue

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "sync"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "go.uber.org/zap"
)

const (
    dialTimeout = 2 * time.Second
    // after a failed dial, publishes fail immediately for this long
    redialBackoff = 10 * time.Second
)

// ErrBrokerUnavailable is returned while the publisher waits out
// redialBackoff after a failed connection attempt.
var ErrBrokerUnavailable = errors.New("queue: broker unavailable")

// Publisher sends booking events to RabbitMQ over one long-lived channel.
// The connection is opened lazily and reopened on the next publish after a
// failure.  Publish errors are returned for the caller to log; they never
// affect a booking that has already been stored.
type Publisher struct {
    url   string
    queue string
    log   *zap.Logger

    mu        sync.Mutex
    conn      *amqp.Connection
    ch        *amqp.Channel
    downUntil time.Time
    now       func() time.Time
}

func NewPublisher(url, queue string, log *zap.Logger) *Publisher {
    return &Publisher{url: url, queue: queue, log: log, now: time.Now}
}

// channel returns an open channel, dialing when needed.  Callers hold p.mu.
func (p *Publisher) channel() (*amqp.Channel, error) {
    if p.ch != nil && !p.ch.IsClosed() {
        return p.ch, nil
    }
    p.reset()
    if p.now().Before(p.downUntil) {
        return nil, ErrBrokerUnavailable
    }

    conn, err := amqp.DialConfig(p.url, amqp.Config{Dial: amqp.DefaultDial(dialTimeout)})
    if err != nil {
        p.downUntil = p.now().Add(redialBackoff)
        return nil, fmt.Errorf("dial broker: %w", err)
    }
    ch, err := conn.Channel()
    if err != nil {
        _ = conn.Close()
        return nil, fmt.Errorf("channel open: %w", err)
    }
    // Durable so messages survive broker restarts.
    if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
        _ = ch.Close()
        _ = conn.Close()
        return nil, fmt.Errorf("queue declare: %w", err)
    }
    p.conn, p.ch = conn, ch
    return ch, nil
}

func (p *Publisher) reset() {
    if p.ch != nil {
        _ = p.ch.Close()
        p.ch = nil
    }
    if p.conn != nil {
        _ = p.conn.Close()
        p.conn = nil
    }
}

// PublishBookingCreated publishes ev to the configured queue as a
// persistent JSON message.
func (p *Publisher) PublishBookingCreated(ctx context.Context, ev BookingCreatedEvent) error {
    body, err := json.Marshal(ev)
    if err != nil {
        return fmt.Errorf("marshal event: %w", err)
    }

    p.mu.Lock()
    defer p.mu.Unlock()

    ch, err := p.channel()
    if err != nil {
        return err
    }
    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent,
        Timestamp:    time.Now().UTC(),
        Body:         body,
    }
    // default exchange, routing key = queue name
    if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
        p.reset()
        return fmt.Errorf("publish: %w", err)
    }
    p.log.Debug("booking event published", zap.Uint64("booking_id", ev.BookingID), zap.String("queue", p.queue))
    return nil
}

// Close releases the broker connection.
func (p *Publisher) Close() {
    p.mu.Lock()
    defer p.mu.Unlock()
    p.reset()
}
