package zohoclient

import (
	"time"
)

// AccessToken é o token em cache e o instante a partir do qual deve ser renovado.
type AccessToken struct {
	Value     string
	ExpiresAt time.Time
}

// ValidAt indica se o token ainda pode ser usado no instante informado.
func (t *AccessToken) ValidAt(now time.Time) bool {
	return t != nil && t.Value != "" && now.Before(t.ExpiresAt)
}

// CalculateTokenExpiration calcula quando o token deve ser renovado, descontando a margem
// de segurança do prazo informado pela API.
func CalculateTokenExpiration(now time.Time, expiresIn, skew time.Duration) time.Time {
	safeExpiresIn := expiresIn - skew

	if safeExpiresIn <= 0 {
		safeExpiresIn = expiresIn / 2 // prazo muito curto, usamos metade do tempo
	}

	return now.Add(safeExpiresIn)
}
