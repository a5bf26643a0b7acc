package util

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultOffset    = 0
	DefaultBatchSize = 10
)

// Pagination reads the offset/batchSize query parameters. Absent parameters
// take the defaults; present-but-non-integer values respond 400 and return
// ok=false. Any integer is accepted, including negative offsets and zero or
// huge batch sizes, which only affect slicing bounds.
func Pagination(c *gin.Context) (offset, batchSize int, ok bool) {
	offset, ok = intQuery(c, "offset", DefaultOffset)
	if !ok {
		return 0, 0, false
	}
	batchSize, ok = intQuery(c, "batchSize", DefaultBatchSize)
	if !ok {
		return 0, 0, false
	}
	return offset, batchSize, true
}

func intQuery(c *gin.Context, name string, defaultValue int) (int, bool) {
	raw, present := c.GetQuery(name)
	if !present {
		return defaultValue, true
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return 0, false
	}
	return val, true
}

// UintParam parses a numeric path parameter such as a user or post id.
func UintParam(c *gin.Context, name string) (uint, error) {
	val, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(val), nil
}
