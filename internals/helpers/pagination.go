package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

type Paging struct {
	Page   int
	Limit  int
	Offset int
}

// ResolvePaging reads ?page= and ?limit= and normalizes them.
// Invalid or missing values fall back to page 1 and defaultLimit;
// limit is capped at maxLimit when maxLimit > 0.
func ResolvePaging(c *fiber.Ctx, defaultLimit, maxLimit int) Paging {
	return NormalizePaging(
		strings.TrimSpace(c.Query("page")),
		strings.TrimSpace(c.Query("limit")),
		defaultLimit,
		maxLimit,
	)
}

func NormalizePaging(pageStr, limitStr string, defaultLimit, maxLimit int) Paging {
	page, _ := strconv.Atoi(pageStr)
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return Paging{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

func BuildPagination(total int64, page, limit int) Pagination {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if page <= 0 {
		page = 1
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit)) // ceil
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
