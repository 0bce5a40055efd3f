package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports database and queue connectivity for probes. Degraded
// dependencies flip the status to 503 without exposing any detail.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		banco := "ok"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			banco = "indisponivel"
		}

		fila := "ok"
		if rdb.Ping(ctx).Err() != nil {
			fila = "indisponivel"
		}

		code := http.StatusOK
		status := "ok"
		if banco != "ok" || fila != "ok" {
			code = http.StatusServiceUnavailable
			status = "degradado"
		}

		c.JSON(code, gin.H{
			"status": status,
			"banco":  banco,
			"fila":   fila,
		})
	}
}
