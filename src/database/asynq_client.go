package database

import (
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// AsynqConnOpt reuses the go-redis options so both clients point at the same server.
func AsynqConnOpt(opts *redis.Options) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Network:   opts.Network,
		Addr:      opts.Addr,
		Username:  opts.Username,
		Password:  opts.Password,
		DB:        opts.DB,
		TLSConfig: opts.TLSConfig,
	}
}

func NewAsynqClient(opts *redis.Options) *asynq.Client {
	return asynq.NewClient(AsynqConnOpt(opts))
}
