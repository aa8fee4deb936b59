package cache

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/valkey-io/valkey-go"
)

type valkeyCache struct {
	client valkey.Client
}

// NewValkeyCache connects to Valkey and verifies the connection before
// returning. The URL form is valkey://[:password@]host:port.
func NewValkeyCache(valkeyURL string) (Cache, error) {
	u, err := url.Parse(valkeyURL)
	if err != nil {
		return nil, fmt.Errorf("invalid valkey URL: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("valkey URL missing host")
	}

	option := valkey.ClientOption{InitAddress: []string{u.Host}}
	if u.User != nil {
		if password, ok := u.User.Password(); ok {
			option.Password = password
		}
	}

	client, err := valkey.NewClient(option)
	if err != nil {
		return nil, fmt.Errorf("failed to create valkey client: %w", err)
	}

	c := &valkeyCache{client: client}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Health(ctx); err != nil {
		client.Close()
		return nil, err
	}

	return c, nil
}

func (c *valkeyCache) Get(ctx context.Context, key string) ([]byte, error) {
	result := c.client.Do(ctx, c.client.B().Get().Key(key).Build())
	if err := result.Error(); err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, &Error{Operation: "get", Key: key, Err: err}
	}

	data, err := result.AsBytes()
	if err != nil {
		return nil, &Error{Operation: "get", Key: key, Err: err}
	}
	return data, nil
}

func (c *valkeyCache) Set(ctx context.Context, key string, value []byte, expiration time.Duration) error {
	var cmd valkey.Completed
	if expiration > 0 {
		cmd = c.client.B().Set().Key(key).Value(string(value)).Ex(expiration).Build()
	} else {
		cmd = c.client.B().Set().Key(key).Value(string(value)).Build()
	}

	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		return &Error{Operation: "set", Key: key, Err: err}
	}
	return nil
}

func (c *valkeyCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Do(ctx, c.client.B().Del().Key(key).Build()).Error(); err != nil {
		return &Error{Operation: "delete", Key: key, Err: err}
	}
	return nil
}

func (c *valkeyCache) Health(ctx context.Context) error {
	if err := c.client.Do(ctx, c.client.B().Ping().Build()).Error(); err != nil {
		return fmt.Errorf("valkey ping failed: %w", err)
	}
	return nil
}

func (c *valkeyCache) Close() error {
	c.client.Close()
	return nil
}
