// Package sequence implementa o contador anual de recibos sobre Redis.
package sequence

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/venue-scheduler/internal/domain/receipt"
)

// YearCounter conta recibos já gravados para semear o contador.
type YearCounter interface {
	CountForYear(ctx context.Context, year int) (int64, error)
}

// sobe o contador para ARGV[1] se ele for maior
var raiseScript = redis.NewScript(`
local cur = tonumber(redis.call("GET", KEYS[1]) or "0")
local want = tonumber(ARGV[1])
if want > cur then
	redis.call("SET", KEYS[1], tostring(want))
	return want
end
return cur
`)

type RedisSequencer struct {
	rdb     *redis.Client
	counter YearCounter
	prefix  string
}

func NewRedisSequencer(rdb *redis.Client, counter YearCounter) *RedisSequencer {
	return &RedisSequencer{
		rdb:     rdb,
		counter: counter,
		prefix:  "venue:receipts:seq:",
	}
}

func (s *RedisSequencer) key(year int) string {
	return fmt.Sprintf("%s%d", s.prefix, year)
}

// seed cria a chave do ano com a contagem atual, sem sobrescrever.
func (s *RedisSequencer) seed(ctx context.Context, year int) error {
	exists, err := s.rdb.Exists(ctx, s.key(year)).Result()
	if err != nil {
		return err
	}
	if exists > 0 {
		return nil
	}

	count, err := s.counter.CountForYear(ctx, year)
	if err != nil {
		return err
	}
	return s.rdb.SetNX(ctx, s.key(year), count, 0).Err()
}

// Peek só lê; sem chave, usa a contagem de recibos do ano.
func (s *RedisSequencer) Peek(ctx context.Context, year int) (int, error) {
	cur, err := s.rdb.Get(ctx, s.key(year)).Int()
	if errors.Is(err, redis.Nil) {
		count, err := s.counter.CountForYear(ctx, year)
		if err != nil {
			return 0, err
		}
		return int(count) + 1, nil
	}
	if err != nil {
		return 0, err
	}
	return cur + 1, nil
}

func (s *RedisSequencer) Allocate(ctx context.Context, year int) (int, error) {
	if err := s.seed(ctx, year); err != nil {
		return 0, err
	}
	n, err := s.rdb.Incr(ctx, s.key(year)).Result()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (s *RedisSequencer) Observe(ctx context.Context, year, seq int) error {
	if err := s.seed(ctx, year); err != nil {
		return err
	}
	return raiseScript.Run(ctx, s.rdb, []string{s.key(year)}, seq).Err()
}

// Compile-time check
var _ receipt.Sequencer = (*RedisSequencer)(nil)
