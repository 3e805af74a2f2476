package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
)

// parseDate accepts RFC 3339 timestamps and bare dates ("2026-01-01").
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func categoryList() string {
	parts := make([]string, len(domain.EventCategories))
	for i, c := range domain.EventCategories {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}

func statusList() string {
	parts := make([]string, len(domain.EventStatuses))
	for i, s := range domain.EventStatuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

// CreateEventRequest is the request body for POST /api/events. Status is
// optional and defaults to draft.
type CreateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Organizer   string `json:"organizer"`
	Status      string `json:"status,omitempty"`
}

// Validate implements helpers.Validator.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if len(c.Title) < 3 {
		errs = append(errs, "title must be at least 3 characters long")
	}
	if c.Description == "" {
		errs = append(errs, "description is required")
	}
	if _, err := parseDate(c.Date); err != nil {
		errs = append(errs, "date must be a valid ISO date string")
	}
	if c.Location == "" {
		errs = append(errs, "location is required")
	}
	if !domain.EventCategory(c.Category).Valid() {
		errs = append(errs, fmt.Sprintf("category must be one of: %s", categoryList()))
	}
	if c.Organizer == "" {
		errs = append(errs, "organizer is required")
	}
	if c.Status != "" && !domain.EventStatus(c.Status).Valid() {
		errs = append(errs, fmt.Sprintf("status must be one of: %s", statusList()))
	}
	return errs
}

// UpdateEventRequest is the request body for PATCH /api/events/{id}. All
// fields are optional; omitted fields are unchanged, provided fields
// (including empty strings) replace the stored value.
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	Category    *string `json:"category"`
	Organizer   *string `json:"organizer"`
	Status      *string `json:"status"`
}

// Validate implements helpers.Validator. Enum and date fields must still be
// well formed when provided; a title, when provided, keeps its length rule.
func (u UpdateEventRequest) Validate() []string {
	var errs []string
	if u.Title != nil && len(*u.Title) < 3 {
		errs = append(errs, "title must be at least 3 characters long")
	}
	if u.Date != nil {
		if _, err := parseDate(*u.Date); err != nil {
			errs = append(errs, "date must be a valid ISO date string")
		}
	}
	if u.Category != nil && !domain.EventCategory(*u.Category).Valid() {
		errs = append(errs, fmt.Sprintf("category must be one of: %s", categoryList()))
	}
	if u.Status != nil && !domain.EventStatus(*u.Status).Valid() {
		errs = append(errs, fmt.Sprintf("status must be one of: %s", statusList()))
	}
	return errs
}

func (u UpdateEventRequest) toPatch() domain.EventPatch {
	patch := domain.EventPatch{
		Title:       u.Title,
		Description: u.Description,
		Location:    u.Location,
		Organizer:   u.Organizer,
	}
	if u.Date != nil {
		// Validate() already checked the format.
		if t, err := parseDate(*u.Date); err == nil {
			patch.Date = &t
		}
	}
	if u.Category != nil {
		c := domain.EventCategory(*u.Category)
		patch.Category = &c
	}
	if u.Status != nil {
		s := domain.EventStatus(*u.Status)
		patch.Status = &s
	}
	return patch
}

// EventSuccessResponse is the success envelope carrying a single event.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventListSuccessResponse is the success envelope carrying a list of events.
type EventListSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventController serves the /api/events routes.
type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *EventController) internalError(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
}

// Create godoc
// @Summary Create a new event
// @Description Creates an event. The id, timestamps, and a default status of draft are server-assigned.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	date, _ := parseDate(req.Date)
	event := &domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Location:    req.Location,
		Category:    domain.EventCategory(req.Category),
		Organizer:   req.Organizer,
		Status:      domain.EventStatus(req.Status),
	}
	created, err := c.Service.Create(r.Context(), event)
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// parseFilter builds an EventFilter from query parameters, returning
// field-level messages for invalid enum or date values.
func parseFilter(values url.Values) (domain.EventFilter, []string) {
	var filter domain.EventFilter
	var errs []string

	if v := values.Get("category"); v != "" {
		category := domain.EventCategory(v)
		if !category.Valid() {
			errs = append(errs, fmt.Sprintf("category must be one of: %s", categoryList()))
		}
		filter.Category = category
	}
	if v := values.Get("status"); v != "" {
		status := domain.EventStatus(v)
		if !status.Valid() {
			errs = append(errs, fmt.Sprintf("status must be one of: %s", statusList()))
		}
		filter.Status = status
	}
	if v := values.Get("startDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			errs = append(errs, "startDate must be a valid ISO date string")
		} else {
			filter.StartDate = &t
		}
	}
	if v := values.Get("endDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			errs = append(errs, "endDate must be a valid ISO date string")
		} else {
			filter.EndDate = &t
		}
	}
	filter.Search = values.Get("search")

	return filter, errs
}

// List godoc
// @Summary List events
// @Description Returns events matching the optional filters, ordered by date ascending. All filters combine with AND; search matches title, description, or organizer case-insensitively.
// @Tags events
// @Produce json
// @Param category query string false "Category filter" Enums(workshop, meetup, talk, social)
// @Param status query string false "Status filter" Enums(draft, confirmed, cancelled)
// @Param startDate query string false "Earliest event date (inclusive)"
// @Param endDate query string false "Latest event date (inclusive)"
// @Param search query string false "Substring to match in title, description, or organizer"
// @Success 200 {object} controllers.EventListSuccessResponse "data contains the matching events"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	filter, errs := parseFilter(r.URL.Query())
	if len(errs) > 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, strings.Join(errs, "; "))
		return
	}
	events, err := c.Service.List(r.Context(), filter)
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// Get godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id} [get]
func (c *EventController) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	event, err := c.Service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, fmt.Sprintf("event with ID %q not found", id))
			return
		}
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// Update godoc
// @Summary Update an event
// @Description Applies a partial update. Omitted fields are unchanged; provided fields replace the stored values. Never creates a new event.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param body body UpdateEventRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id} [patch]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	updated, err := c.Service.Update(r.Context(), id, req.toPatch())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, fmt.Sprintf("event with ID %q not found", id))
			return
		}
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete an event
// @Description Hard-deletes the event and returns the removed record.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the removed event"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	removed, err := c.Service.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, fmt.Sprintf("event with ID %q not found", id))
			return
		}
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, removed)
}
