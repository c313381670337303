package postgres

import "wareland-api/internal/core/port"

var (
	_ port.PropertyStorePort     = (*PropertyStore)(nil)
	_ port.UserRepositoryPort    = (*UserRepository)(nil)
	_ port.RevokedTokenStorePort = (*RevokedTokenStore)(nil)
)
