package httpapi

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/akarpov91/traffic-analytics/internal/common"
	"github.com/akarpov91/traffic-analytics/internal/dashboard"
	"github.com/akarpov91/traffic-analytics/internal/pageviews"
	"github.com/akarpov91/traffic-analytics/internal/traffic"
)

var validate = validator.New()

// Deps bundles the collaborators the HTTP handlers need.
type Deps struct {
	Pageviews *pageviews.Client
	Sessions  *dashboard.Store

	// Defaults for fresh sessions and omitted query dates.
	DefaultArticle    string
	DefaultWindowDays int
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, deps Deps) {
	v1 := app.Group("/api/v1")

	v1.Get("/traffic/grid", func(c *fiber.Ctx) error {
		points := traffic.Generate()

		return c.JSON(fiber.Map{
			"points":  points,
			"summary": traffic.Summarize(points),
		})
	})

	v1.Get("/pageviews", func(c *fiber.Ctx) error {
		req, err := parsePageviewsQuery(c, deps.DefaultWindowDays)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		records, err := deps.Pageviews.Fetch(c.UserContext(), req.Article, req.toRange())
		if err != nil {
			return pageviewsError(err)
		}

		if len(records) == 0 {
			return c.JSON(noDataPayload("article", req.Article))
		}

		return c.JSON(fiber.Map{
			"article": req.Article,
			"items":   records,
			"summary": pageviews.Summarize(records),
		})
	})

	v1.Post("/sessions", func(c *fiber.Ctx) error {
		state := dashboard.DefaultState(deps.DefaultArticle, deps.DefaultWindowDays)
		id := deps.Sessions.Create(state)

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":    id,
			"state": state,
		})
	})

	v1.Get("/sessions/:id", func(c *fiber.Ctx) error {
		state, err := deps.Sessions.Get(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "session not found")
		}
		return c.JSON(fiber.Map{
			"id":    c.Params("id"),
			"state": state,
		})
	})

	v1.Put("/sessions/:id", func(c *fiber.Ctx) error {
		var req sessionUpdateRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		state, err := req.toState()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := state.Validate(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := deps.Sessions.Update(c.Params("id"), state); err != nil {
			return fiber.NewError(fiber.StatusNotFound, "session not found")
		}
		return c.JSON(fiber.Map{
			"id":    c.Params("id"),
			"state": state,
		})
	})

	// One render cycle: dispatch on the session's mode and run exactly one
	// pipeline synchronously.
	v1.Get("/sessions/:id/view", func(c *fiber.Ctx) error {
		state, err := deps.Sessions.Get(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "session not found")
		}

		switch state.Mode {
		case dashboard.ModeSyntheticTraffic:
			points := traffic.Generate()
			return c.JSON(fiber.Map{
				"mode":    state.Mode,
				"points":  points,
				"summary": traffic.Summarize(points),
			})

		case dashboard.ModeWikipediaTraffic:
			if err := state.Validate(); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}

			records, err := deps.Pageviews.Fetch(c.UserContext(), state.Article, state.Range())
			if err != nil {
				return pageviewsError(err)
			}
			if len(records) == 0 {
				return c.JSON(noDataPayload("mode", state.Mode, "article", state.Article))
			}
			return c.JSON(fiber.Map{
				"mode":    state.Mode,
				"article": state.Article,
				"items":   records,
				"summary": pageviews.Summarize(records),
			})

		default:
			return fiber.NewError(fiber.StatusBadRequest, "unknown view mode")
		}
	})
}

// pageviewsError maps the fetch error taxonomy onto HTTP statuses. Every
// branch surfaces a user-visible message; nothing propagates as a process
// failure.
func pageviewsError(err error) error {
	switch {
	case errors.Is(err, pageviews.ErrInvalidInput):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, pageviews.ErrArticleNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, pageviews.ErrProcessing):
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	default:
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}
}

// noDataPayload builds the benign-empty response: a valid request that
// produced no records, distinct from any error case.
func noDataPayload(kv ...interface{}) fiber.Map {
	m := fiber.Map{
		"items":   []pageviews.Record{},
		"no_data": true,
	}
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			m[k] = kv[i+1]
		}
	}
	return m
}

// pageviewsQuery holds query parameters for the pageviews endpoint.
type pageviewsQuery struct {
	Article string `validate:"required"`
	Start   time.Time
	End     time.Time
}

func (q pageviewsQuery) toRange() pageviews.DateRange {
	return pageviews.DateRange{Start: q.Start, End: q.End}
}

// parsePageviewsQuery binds and validates the pageviews query. Omitted dates
// default to the trailing window ending today; validation failures
// short-circuit before any network call.
func parsePageviewsQuery(c *fiber.Ctx, windowDays int) (pageviewsQuery, error) {
	var q pageviewsQuery

	q.Article = c.Query("article")
	if err := validate.Struct(q); err != nil {
		return q, err
	}

	defStart, defEnd := common.TrailingWindow(common.Today(), windowDays)
	q.Start = defStart
	q.End = defEnd

	if s := c.Query("start"); s != "" {
		start, err := common.ParseDay(s)
		if err != nil {
			return q, errors.New("invalid start date; use YYYY-MM-DD")
		}
		q.Start = start
	}
	if s := c.Query("end"); s != "" {
		end, err := common.ParseDay(s)
		if err != nil {
			return q, errors.New("invalid end date; use YYYY-MM-DD")
		}
		q.End = end
	}

	return q, nil
}

// sessionUpdateRequest is the JSON body for session updates. Dates are
// YYYY-MM-DD strings.
type sessionUpdateRequest struct {
	Mode    string `json:"mode" validate:"required,oneof=synthetic-traffic wikipedia-traffic"`
	Article string `json:"article" validate:"required_if=Mode wikipedia-traffic"`
	Start   string `json:"start" validate:"required_if=Mode wikipedia-traffic"`
	End     string `json:"end" validate:"required_if=Mode wikipedia-traffic"`
}

func (r sessionUpdateRequest) toState() (dashboard.State, error) {
	state := dashboard.State{
		Mode:    dashboard.ViewMode(r.Mode),
		Article: r.Article,
	}

	if r.Start != "" {
		start, err := common.ParseDay(r.Start)
		if err != nil {
			return state, errors.New("invalid start date; use YYYY-MM-DD")
		}
		state.Start = start
	}
	if r.End != "" {
		end, err := common.ParseDay(r.End)
		if err != nil {
			return state, errors.New("invalid end date; use YYYY-MM-DD")
		}
		state.End = end
	}

	return state, nil
}
