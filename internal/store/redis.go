package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"marketpay/internal/models"
)

const (
	accountUIDPrefix  = "account:uid:"
	accountAcctPrefix = "account:acct:"
	paymentPrefix     = "payment:"
)

// RedisDirectory is an AccountDirectory backed by Redis. A secondary
// key maps the provider's account id back to the uid.
type RedisDirectory struct {
	client *redis.Client
}

func NewRedisDirectory(client *redis.Client) *RedisDirectory {
	return &RedisDirectory{client: client}
}

func (d *RedisDirectory) Put(ctx context.Context, rec *models.AccountRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if err := d.client.Set(ctx, accountUIDPrefix+rec.UID, data, 0).Err(); err != nil {
		return err
	}
	return d.client.Set(ctx, accountAcctPrefix+rec.StripeAccountID, rec.UID, 0).Err()
}

func (d *RedisDirectory) Get(ctx context.Context, uid string) (*models.AccountRecord, error) {
	val, err := d.client.Get(ctx, accountUIDPrefix+uid).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var rec models.AccountRecord
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (d *RedisDirectory) FindByAccountID(ctx context.Context, accountID string) (*models.AccountRecord, error) {
	uid, err := d.client.Get(ctx, accountAcctPrefix+accountID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d.Get(ctx, uid)
}

// RedisPaymentLog is a PaymentLog backed by Redis.
type RedisPaymentLog struct {
	client *redis.Client
}

func NewRedisPaymentLog(client *redis.Client) *RedisPaymentLog {
	return &RedisPaymentLog{client: client}
}

func (l *RedisPaymentLog) Record(ctx context.Context, rec *models.PaymentRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return l.client.Set(ctx, paymentPrefix+rec.PaymentIntentID, data, 0).Err()
}

func (l *RedisPaymentLog) Get(ctx context.Context, paymentIntentID string) (*models.PaymentRecord, error) {
	val, err := l.client.Get(ctx, paymentPrefix+paymentIntentID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var rec models.PaymentRecord
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (l *RedisPaymentLog) List(ctx context.Context) ([]*models.PaymentRecord, error) {
	var out []*models.PaymentRecord
	iter := l.client.Scan(ctx, 0, paymentPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		val, err := l.client.Get(ctx, iter.Val()).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, err
		}
		var rec models.PaymentRecord
		if err := json.Unmarshal([]byte(val), &rec); err != nil {
			return nil, err
		}
		out = append(out, &rec)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
