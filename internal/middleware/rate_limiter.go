package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/miguelamaral254/api-cognivox-test/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// janela is a fixed counting window for one client IP.
type janela struct {
	mu    sync.Mutex
	hits  int
	reset time.Time
}

// limitador counts requests per IP in fixed windows. State lives in process;
// each instance of the API enforces its own quota.
type limitador struct {
	mu       sync.Mutex
	janelas  map[string]*janela
	limite   int
	duracao  time.Duration
	mensagem string
}

func novoLimitador(limite int, duracao time.Duration, mensagem string) *limitador {
	l := &limitador{
		janelas:  make(map[string]*janela),
		limite:   limite,
		duracao:  duracao,
		mensagem: mensagem,
	}
	go l.limpa()
	return l
}

// excedeu registers one hit for ip and reports whether the quota is blown.
func (l *limitador) excedeu(ip string) (bool, time.Time) {
	l.mu.Lock()
	j, ok := l.janelas[ip]
	if !ok {
		j = &janela{}
		l.janelas[ip] = j
	}
	l.mu.Unlock()

	j.mu.Lock()
	defer j.mu.Unlock()

	now := time.Now()
	if now.After(j.reset) {
		j.hits = 0
		j.reset = now.Add(l.duracao)
	}
	j.hits++
	return j.hits > l.limite, j.reset
}

// limpa drops expired windows so one-off IPs do not accumulate forever.
func (l *limitador) limpa() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		removidas := 0

		l.mu.Lock()
		for ip, j := range l.janelas {
			j.mu.Lock()
			if now.After(j.reset) {
				delete(l.janelas, ip)
				removidas++
			}
			j.mu.Unlock()
		}
		l.mu.Unlock()

		if removidas > 0 {
			log.Debug().Int("janelas_removidas", removidas).Msg("rate limiter purged")
		}
	}
}

func (l *limitador) handler(comRetry bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		estourou, reset := l.excedeu(c.ClientIP())
		if estourou {
			if comRetry {
				c.Header("Retry-After", reset.Format(time.RFC1123))
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.mensagem))
			return
		}
		c.Next()
	}
}

// LoginRateLimiter caps login attempts at 20 per minute per IP, keeping
// bcrypt cost from being used as a CPU amplifier.
func LoginRateLimiter() gin.HandlerFunc {
	l := novoLimitador(20, time.Minute, "Muitas tentativas de login. Tente novamente em 1 minuto.")
	return l.handler(false)
}

// RateLimiter is the general per-IP quota applied to the whole API.
func RateLimiter(limite int, duracao time.Duration) gin.HandlerFunc {
	l := novoLimitador(limite, duracao, "Muitas solicitações. Tente novamente em instantes.")
	return l.handler(true)
}
