package lock

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"sync"
	"time"

	"parkme/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// Deletes the key only while it still carries our token, so an expired
// lease re-acquired by someone else is never released by us.
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`

// RedisLocker is a distributed Locker built on SET NX PX with a random
// owner token. Blocking acquisition polls until the wait budget is spent.
type RedisLocker struct {
	client   redis.Cmdable
	opts     Options
	newToken func() (string, error)
	logger   *slog.Logger
}

type RedisOption func(*RedisLocker)

func WithTokenFunc(fn func() (string, error)) RedisOption {
	return func(l *RedisLocker) { l.newToken = fn }
}

func WithLogger(logger *slog.Logger) RedisOption {
	return func(l *RedisLocker) { l.logger = logger }
}

func NewRedisLocker(client redis.Cmdable, opts Options, options ...RedisOption) *RedisLocker {
	l := &RedisLocker{
		client:   client,
		opts:     opts.withDefaults(),
		newToken: randomToken,
		logger:   slog.Default(),
	}
	for _, o := range options {
		o(l)
	}
	return l
}

func (l *RedisLocker) Acquire(ctx context.Context, key string, policy WaitPolicy) (Handle, error) {
	redisKey := l.opts.KeyPrefix + key
	token, err := l.newToken()
	if err != nil {
		return nil, errs.Wrap(err, "generate lock token")
	}

	deadline := time.Now().Add(l.opts.WaitTimeout)
	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.opts.LeaseTTL).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, ClassifyContextErr(key, ctx.Err())
			}
			return nil, errs.Wrapf(err, "acquire redis lock %s", redisKey)
		}
		if ok {
			return &redisHandle{locker: l, key: redisKey, token: token}, nil
		}
		if policy == NoWait {
			return nil, lockedError(key)
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, timeoutError(key, l.opts.WaitTimeout)
		}
		pause := min(l.opts.RetryInterval, remaining)

		timer := time.NewTimer(pause)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ClassifyContextErr(key, ctx.Err())
		case <-timer.C:
		}
	}
}

type redisHandle struct {
	once   sync.Once
	locker *RedisLocker
	key    string
	token  string
}

func (h *redisHandle) Release() {
	h.once.Do(func() {
		// the caller's ctx may already be cancelled; release must still run
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := h.locker.client.Eval(ctx, releaseScript, []string{h.key}, h.token).Err(); err != nil {
			h.locker.logger.Warn("failed to release redis lock", "key", h.key, "error", err.Error())
		}
	})
}

func randomToken() (string, error) {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf[:]), nil
}
