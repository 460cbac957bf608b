package middleware

import (
	pkgJWT "pdb-srv/pkg/jwt"
	"pdb-srv/pkg/log"
)

type Middleware struct {
	l           log.Logger
	jwtManager  pkgJWT.IManager
	authEnabled bool
}

// New builds the middleware set. jwtManager may be nil when auth is
// disabled.
func New(l log.Logger, jwtManager pkgJWT.IManager, authEnabled bool) Middleware {
	return Middleware{
		l:           l,
		jwtManager:  jwtManager,
		authEnabled: authEnabled,
	}
}
