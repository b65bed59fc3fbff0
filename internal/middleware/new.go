package middleware

import (
	"inventory-management/config"
	"inventory-management/pkg/log"
)

type Middleware struct {
	l         log.Logger
	rateLimit config.RateLimitConfig
}

func New(l log.Logger, rateLimit config.RateLimitConfig) Middleware {
	return Middleware{
		l:         l,
		rateLimit: rateLimit,
	}
}
