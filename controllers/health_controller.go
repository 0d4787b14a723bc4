package controllers

import (
	"context"
	"net/http"
	"os"
	"time"

	"joybait/db"

	"github.com/gin-gonic/gin"
)

// Root is the liveness endpoint
func Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Joybait backend running"})
}

// TestDatabase reports storage connectivity for debugging. No other
// endpoint depends on it.
func TestDatabase(ctx *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      "❌ Not Set",
		"database_name":     "❌ Not Set",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if os.Getenv("DATABASE_URL") != "" {
		response["database_url"] = "✅ Set"
	}
	if os.Getenv("DATABASE_NAME") != "" {
		response["database_name"] = "✅ Set"
	}

	if db.Available() {
		response["database"] = "✅ Available"

		dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		names, err := db.ListCollectionNames(dbCtx)
		if err != nil {
			response["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), 80)
		} else {
			response["collections"] = names
			response["database"] = "✅ Connected & Working"
			response["connection_status"] = "Connected"
		}
	}

	ctx.JSON(http.StatusOK, response)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
