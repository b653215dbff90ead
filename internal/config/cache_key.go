package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// SesionUsuarioKey returns the cache key for a user's active session.
func (r *CacheKeyStruct) SesionUsuarioKey(idUsuario int64) string {
	return fmt.Sprintf("sesion:%d", idUsuario)
}

var CacheKey = NewCacheKeyStruct()
