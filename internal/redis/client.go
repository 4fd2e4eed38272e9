// Package redis provides a wrapper around the go-redis client library
// for improved testing and abstraction.
package redis

import (
	"crypto/tls"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Topology modes accepted by Open
const (
	ModeSingle   = "single"
	ModeCluster  = "cluster"
	ModeSentinel = "sentinel"
)

// Options configures Redis client behavior
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
	ReadOnly        bool // For cluster mode routing
}

// Open builds a client for the given topology. Endpoints is a comma separated
// list; in sentinel mode masterName names the monitored master.
func Open(mode, endpoints, masterName string, opts *Options) (Client, error) {
	addrs := splitEndpoints(endpoints)

	switch mode {
	case "", ModeSingle:
		if len(addrs) == 0 {
			return nil, errors.New("redis: endpoint is required")
		}
		return NewClient(addrs[0], opts)
	case ModeCluster:
		return NewClusterClient(addrs, opts)
	case ModeSentinel:
		return NewFailoverClient(masterName, addrs, opts)
	default:
		return nil, errors.New("redis: unknown mode " + mode)
	}
}

func splitEndpoints(endpoints string) []string {
	var addrs []string
	for _, addr := range strings.Split(endpoints, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			addrs = append(addrs, addr)
		}
	}
	return addrs
}

// NewClient creates a Redis client for a single instance
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:            endpoint,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
	}

	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402 // For self-signed certs
		}
	}

	return redis.NewClient(redisOpts), nil
}

// NewClusterClient creates a Redis client for cluster mode
func NewClusterClient(endpoints []string, opts *Options) (Client, error) {
	if len(endpoints) == 0 {
		return nil, errors.New("redis: at least one endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	clusterOpts := &redis.ClusterOptions{
		Addrs:        endpoints,
		MinIdleConns: opts.MinIdleConns,
		PoolSize:     opts.PoolSize,
		MaxRetries:   opts.MaxRetries,
		ReadOnly:     opts.ReadOnly,
	}

	if opts.UseTLS {
		clusterOpts.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402
		}
	}

	return redis.NewClusterClient(clusterOpts), nil
}

// NewFailoverClient creates a Redis client with Sentinel support
func NewFailoverClient(masterName string, sentinelAddrs []string, opts *Options) (Client, error) {
	if masterName == "" {
		return nil, errors.New("redis: master name is required")
	}
	if len(sentinelAddrs) == 0 {
		return nil, errors.New("redis: at least one sentinel address is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	failoverOpts := &redis.FailoverOptions{
		MasterName:    masterName,
		SentinelAddrs: sentinelAddrs,
		MinIdleConns:  opts.MinIdleConns,
		PoolSize:      opts.PoolSize,
		MaxRetries:    opts.MaxRetries,
	}

	if opts.UseTLS {
		failoverOpts.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402
		}
	}

	return redis.NewFailoverClient(failoverOpts), nil
}
