package jwt

// IManager defines the interface for JWT verification. This service only
// verifies tokens issued elsewhere with the same secret; it never issues
// them. Implementations are safe for concurrent use.
type IManager interface {
	VerifyToken(tokenString string) (*Claims, error)
}

// New creates a new JWT manager. Returns the interface.
func New(cfg Config) (IManager, error) {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return nil, ErrSecretKeyTooShort
	}
	return &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
	}, nil
}
