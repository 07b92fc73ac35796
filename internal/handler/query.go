package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/bank-bukti-api/internal/models"
	appErrors "github.com/noah-isme/bank-bukti-api/pkg/errors"
)

// dateQuery parses an optional YYYY-MM-DD query parameter in the server's location.
// The zero time is returned when the parameter is absent.
func dateQuery(c *gin.Context, key string) (time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return time.Time{}, nil
	}
	parsed, err := time.ParseInLocation(models.DateLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid %s, expected YYYY-MM-DD", key))
	}
	return parsed, nil
}

// intQuery parses an optional integer query parameter; nil means absent.
func intQuery(c *gin.Context, key string) (*int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid %s, expected an integer", key))
	}
	return &value, nil
}
