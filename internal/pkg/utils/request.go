package utils

import (
	"net/http"
	"registrar-service/internal/pkg/constvars"
	"registrar-service/internal/pkg/dto/requests"
	"strconv"
)

// BuildListSchedulesRequest maps list query parameters; skip/limit fall back
// to sane values and limit is clamped to the service maximum.
func BuildListSchedulesRequest(r *http.Request) *requests.ListSchedules {
	query := r.URL.Query()

	skip, err := strconv.Atoi(query.Get("skip"))
	if err != nil || skip < 0 {
		skip = 0
	}

	limit, err := strconv.Atoi(query.Get("limit"))
	if err != nil || limit <= 0 || limit > constvars.ListDefaultLimit {
		limit = constvars.ListDefaultLimit
	}

	return &requests.ListSchedules{
		InstructorID: query.Get("instructor_id"),
		Room:         query.Get("room"),
		Day:          query.Get("day"),
		Skip:         skip,
		Limit:        limit,
	}
}

func BuildSkipLimit(r *http.Request) (skip, limit int) {
	query := r.URL.Query()

	skip, err := strconv.Atoi(query.Get("skip"))
	if err != nil || skip < 0 {
		skip = 0
	}

	limit, err = strconv.Atoi(query.Get("limit"))
	if err != nil || limit <= 0 || limit > constvars.ListDefaultLimit {
		limit = constvars.ListDefaultLimit
	}
	return skip, limit
}
