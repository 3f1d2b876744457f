/*
handlers.go - HTTP handlers for the compliance API

PURPOSE:
  Implements the request handlers. Each handler decodes and validates its
  DTO, delegates to the pure engine / plan builder / reference registries,
  and encodes the response. Handlers hold no calculation logic of their
  own: everything interesting happens in the domain packages.

ERROR HANDLING:
  - 400: malformed JSON or failed DTO validation
  - 404: unknown snapshot / unsupported route parameter
  - 500: storage failures only

SEE ALSO:
  - dto.go: The wire types
  - server.go: Route registration
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/foundry/compliance-engine/calendar"
	"github.com/foundry/compliance-engine/engine"
	"github.com/foundry/compliance-engine/plan"
	"github.com/foundry/compliance-engine/statetax"
	"github.com/foundry/compliance-engine/store/sqlite"
)

// Handler bundles the dependencies the API needs.
type Handler struct {
	store    *sqlite.Store
	calc     *engine.Calculator
	validate *validator.Validate
	now      func() time.Time
}

// NewHandler creates the handler set.
func NewHandler(store *sqlite.Store, calc *engine.Calculator) *Handler {
	return &Handler{
		store:    store,
		calc:     calc,
		validate: validator.New(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, ErrorResponse{Error: msg})
}

// decodeAndValidate decodes a JSON body into dst and runs validator tags.
func (h *Handler) decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if err := h.validate.Struct(dst); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// resolveAsOf parses an optional RFC 3339 reference instant.
func (h *Handler) resolveAsOf(raw string) (time.Time, error) {
	if raw == "" {
		return h.now(), nil
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("as_of must be RFC 3339: %w", err)
	}
	return at, nil
}

// =============================================================================
// CALCULATION
// =============================================================================

// HandleCalculate runs the full engine over a snapshot.
// POST /api/calculate
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	asOf, err := h.resolveAsOf(req.AsOf)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := h.calc.Calculate(req.Snapshot.ToSnapshot(), asOf)
	respondJSON(w, http.StatusOK, toResultsDTO(res))
}

// HandlePlan builds the prioritized action plan.
// POST /api/plan?redacted=true
func (h *Handler) HandlePlan(w http.ResponseWriter, r *http.Request) {
	p, ok := h.buildPlan(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// HandlePlanCalendar exports the plan's dated events as an iCalendar file.
// Events without a concrete date are skipped.
// POST /api/plan/calendar
func (h *Handler) HandlePlanCalendar(w http.ResponseWriter, r *http.Request) {
	p, ok := h.buildPlan(w, r)
	if !ok {
		return
	}

	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//foundry//compliance-engine//EN\r\n")
	for _, e := range p.Events {
		if !e.Concrete() {
			continue
		}
		b.WriteString("BEGIN:VEVENT\r\n")
		fmt.Fprintf(&b, "UID:%s@compliance-engine\r\n", e.Key)
		fmt.Fprintf(&b, "DTSTART;VALUE=DATE:%s\r\n", strings.ReplaceAll(e.Date, "-", ""))
		fmt.Fprintf(&b, "SUMMARY:%s\r\n", e.Title)
		b.WriteString("END:VEVENT\r\n")
	}
	b.WriteString("END:VCALENDAR\r\n")

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="compliance-deadlines.ics"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(b.String()))
}

func (h *Handler) buildPlan(w http.ResponseWriter, r *http.Request) (plan.Plan, bool) {
	var req PlanRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return plan.Plan{}, false
	}
	asOf, err := h.resolveAsOf(req.AsOf)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return plan.Plan{}, false
	}

	snapshot := req.Snapshot.ToSnapshot()
	res := h.calc.Calculate(snapshot, asOf)

	taxYear := req.TaxYear
	if taxYear == 0 {
		taxYear = h.calc.TaxYear(snapshot, asOf)
	}
	opts := plan.Options{
		TaxYear: taxYear,
		Redact:  r.URL.Query().Get("redacted") == "true",
	}
	return plan.Build(snapshot, res, opts), true
}

// HandlePrefill merges sparse overrides over a base snapshot and validates
// the result, so clients can build what-if inputs without re-sending every
// field.
// POST /api/prefill
func (h *Handler) HandlePrefill(w http.ResponseWriter, r *http.Request) {
	var req PrefillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	merged := req.Base
	if len(req.Overrides) > 0 {
		// Unmarshalling over the populated struct touches only the fields
		// present in the override document.
		if err := json.Unmarshal(req.Overrides, &merged); err != nil {
			respondError(w, http.StatusBadRequest, "invalid overrides: "+err.Error())
			return
		}
	}
	if err := h.validate.Struct(merged); err != nil {
		respondError(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, merged)
}

// =============================================================================
// REFERENCE DATA
// =============================================================================

// HandleHolidays lists the observed federal holidays for a year.
// GET /api/holidays/{year}
func (h *Handler) HandleHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1900 || year > 2200 {
		respondError(w, http.StatusBadRequest, "year must be a four-digit number")
		return
	}

	set := calendar.FederalHolidays(year)
	out := make([]HolidayDTO, 0, len(set))
	for _, hol := range set {
		out = append(out, HolidayDTO{Date: hol.Date.String(), Name: hol.Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	respondJSON(w, http.StatusOK, out)
}

// HandleStateDueDates returns the quarterly estimated-tax due dates for a
// state and tax year. No-income-tax states return an empty list with the
// no_income_tax flag set.
// GET /api/states/{code}/due-dates?year=2026
func (h *Handler) HandleStateDueDates(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(chi.URLParam(r, "code"))
	if len(code) != 2 {
		respondError(w, http.StatusBadRequest, "state code must be two letters")
		return
	}

	year := h.now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "year must be a number")
			return
		}
		year = parsed
	}

	resp := StateDueDatesResponse{
		StateCode: code,
		TaxYear:   year,
		DueDates:  []DueDateDTO{},
	}
	if statetax.IsNoIncomeTaxState(code) {
		resp.NoIncomeTax = true
		respondJSON(w, http.StatusOK, resp)
		return
	}
	for _, d := range statetax.QuarterlyDueDates(code, year) {
		resp.DueDates = append(resp.DueDates, DueDateDTO{
			StateCode: d.StateCode,
			Quarter:   d.Quarter,
			Date:      d.Date.String(),
			Source:    string(d.Source),
		})
	}
	respondJSON(w, http.StatusOK, resp)
}

// =============================================================================
// SNAPSHOTS
// =============================================================================

// HandleSaveSnapshot stores a named snapshot.
// POST /api/snapshots
func (h *Handler) HandleSaveSnapshot(w http.ResponseWriter, r *http.Request) {
	var req SaveSnapshotRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	payload, err := json.Marshal(req.Snapshot)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "marshal snapshot: "+err.Error())
		return
	}
	rec, err := h.store.SaveSnapshot(r.Context(), req.Name, payload)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, SnapshotRecordDTO{
		ID:        rec.ID,
		Name:      rec.Name,
		Snapshot:  req.Snapshot,
		CreatedAt: rec.CreatedAt.Format(time.RFC3339),
	})
}

// HandleListSnapshots lists stored snapshots, newest first.
// GET /api/snapshots
func (h *Handler) HandleListSnapshots(w http.ResponseWriter, r *http.Request) {
	recs, err := h.store.ListSnapshots(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	out := make([]SnapshotRecordDTO, 0, len(recs))
	for _, rec := range recs {
		dto, err := toSnapshotRecordDTO(rec)
		if err != nil {
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		out = append(out, dto)
	}
	respondJSON(w, http.StatusOK, out)
}

// HandleGetSnapshot fetches one stored snapshot.
// GET /api/snapshots/{id}
func (h *Handler) HandleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	rec, err := h.store.GetSnapshot(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, sqlite.ErrSnapshotNotFound) {
		respondError(w, http.StatusNotFound, "snapshot not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	dto, err := toSnapshotRecordDTO(rec)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, dto)
}

// HandleDeleteSnapshot removes a snapshot and its checklist state.
// DELETE /api/snapshots/{id}
func (h *Handler) HandleDeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	err := h.store.DeleteSnapshot(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, sqlite.ErrSnapshotNotFound) {
		respondError(w, http.StatusNotFound, "snapshot not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toSnapshotRecordDTO(rec sqlite.SnapshotRecord) (SnapshotRecordDTO, error) {
	var snap SnapshotRequest
	if err := json.Unmarshal(rec.Payload, &snap); err != nil {
		return SnapshotRecordDTO{}, fmt.Errorf("decode stored snapshot %s: %w", rec.ID, err)
	}
	return SnapshotRecordDTO{
		ID:        rec.ID,
		Name:      rec.Name,
		Snapshot:  snap,
		CreatedAt: rec.CreatedAt.Format(time.RFC3339),
	}, nil
}

// =============================================================================
// CHECKLIST STATE
// =============================================================================

// HandleSetChecklistItem flips the done flag for one stable item key.
// PUT /api/snapshots/{id}/checklist/{key}
func (h *Handler) HandleSetChecklistItem(w http.ResponseWriter, r *http.Request) {
	var req ChecklistStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	id, key := chi.URLParam(r, "id"), chi.URLParam(r, "key")
	err := h.store.SetChecklistItem(r.Context(), id, key, req.Done)
	if errors.Is(err, sqlite.ErrSnapshotNotFound) {
		respondError(w, http.StatusNotFound, "snapshot not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{key: req.Done})
}

// HandleChecklistState returns all recorded done flags for a snapshot.
// GET /api/snapshots/{id}/checklist
func (h *Handler) HandleChecklistState(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.store.GetSnapshot(r.Context(), id); errors.Is(err, sqlite.ErrSnapshotNotFound) {
		respondError(w, http.StatusNotFound, "snapshot not found")
		return
	} else if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	state, err := h.store.ChecklistState(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// =============================================================================
// HEALTH
// =============================================================================

// HandleHealth reports liveness.
// GET /api/health
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
