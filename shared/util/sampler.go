package util

import (
	"time"

	"golang.org/x/time/rate"
)

// NewPointerSampler cria o limitador das amostras de movimento do ponteiro:
// no máximo uma amostra aceita por intervalo, sem rajadas. Intervalo <= 0 aceita todas.
// Use AllowN(now, 1) para decidir cada amostra com um relógio explícito.
func NewPointerSampler(interval time.Duration) *rate.Limiter {
	return rate.NewLimiter(rate.Every(interval), 1)
}
