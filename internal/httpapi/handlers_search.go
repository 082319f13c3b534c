package httpapi

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ncecere/sieve"
	"github.com/ncecere/sieve/internal/model"
)

func searchHandler(c *fiber.Ctx) error {
	var req SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Success: false,
			Code:    "BAD_REQUEST_INVALID_JSON",
			Error:   "malformed JSON body",
		})
	}

	if strings.TrimSpace(req.Query) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Success: false,
			Code:    "BAD_REQUEST",
			Error:   "missing required field 'query'",
		})
	}

	sv := c.Locals("sieve").(*sieve.Sieve)

	opts := model.DefaultSearchOptions()
	opts.PageNum = req.Page
	opts.SafeSearch = parseSafeSearch(req.SafeSearch)

	if req.DateFrom != "" {
		if t, err := time.Parse(time.RFC3339, req.DateFrom); err == nil {
			opts.DateRange.From = t
		}
	}
	if req.DateTo != "" {
		if t, err := time.Parse(time.RFC3339, req.DateTo); err == nil {
			opts.DateRange.To = t
		}
	}

	ctx := context.Context(c.Context())
	if req.TimeoutMs > 0 {
		deadlineCtx, cancel := context.WithTimeout(ctx, time.Duration(req.TimeoutMs)*time.Millisecond)
		defer cancel()
		ctx = deadlineCtx
	}

	resp, err := sv.Search(ctx, req.Query, opts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Success: false,
			Code:    "SEARCH_FAILED",
			Error:   err.Error(),
		})
	}

	return c.JSON(SearchResponse{
		Success:  true,
		Results:  resp.Results,
		Statuses: resp.Statuses,
	})
}
