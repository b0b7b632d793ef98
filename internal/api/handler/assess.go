package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/keywarden/keywarden/internal/api/dto"
	apierrors "github.com/keywarden/keywarden/internal/api/errors"
	"github.com/keywarden/keywarden/internal/audit"
	"github.com/keywarden/keywarden/internal/certutil"
	"github.com/keywarden/keywarden/internal/report"
	"github.com/keywarden/keywarden/internal/store"
	"github.com/keywarden/keywarden/pkg/primitive"
	"github.com/keywarden/keywarden/pkg/standard"
)

// AssessHandler handles assessment endpoints.
type AssessHandler struct {
	defaults dto.AssessOptions
	store    store.Store
	audit    audit.Writer
}

// NewAssessHandler creates a new AssessHandler. The store may be nil
// when persistence is disabled; the audit writer must not be nil (use
// audit.NopWriter to disable auditing).
func NewAssessHandler(defaults dto.AssessOptions, st store.Store, aw audit.Writer) *AssessHandler {
	return &AssessHandler{
		defaults: defaults,
		store:    st,
		audit:    aw,
	}
}

// Hash handles POST /api/v1/assess/hash.
func (h *AssessHandler) Hash(w http.ResponseWriter, r *http.Request) {
	var req dto.AssessNamedRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	std, ctx, apiErr := h.resolve(req.AssessOptions)
	if apiErr != nil {
		respondError(w, http.StatusNotFound, apiErr)
		return
	}

	p := primitive.HashByName(req.Name)
	aspect := "hash"
	var rec primitive.Hash
	var ok bool
	if req.HashBased {
		aspect = "hash-based"
		rec, ok = std.ValidateHashBased(ctx, p)
	} else {
		rec, ok = std.ValidateHash(ctx, p)
	}

	rep := report.New(std.Name(), ctx.Security(), ctx.Year())
	rep.Add(report.Finding{
		Aspect:      aspect,
		Family:      "hash",
		Primitive:   primitive.HashName(p),
		Compliant:   ok,
		Recommended: primitive.HashName(rec),
	})
	h.finishPrimitive(w, r, "hash", primitive.HashName(p), rep)
}

// Symmetric handles POST /api/v1/assess/symmetric.
func (h *AssessHandler) Symmetric(w http.ResponseWriter, r *http.Request) {
	var req dto.AssessNamedRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	std, ctx, apiErr := h.resolve(req.AssessOptions)
	if apiErr != nil {
		respondError(w, http.StatusNotFound, apiErr)
		return
	}

	p := primitive.SymmetricByName(req.Name)
	rec, ok := std.ValidateSymmetric(ctx, p)

	rep := report.New(std.Name(), ctx.Security(), ctx.Year())
	rep.Add(report.Finding{
		Aspect:      "symmetric",
		Family:      "symmetric",
		Primitive:   primitive.SymmetricName(p),
		Compliant:   ok,
		Recommended: primitive.SymmetricName(rec),
	})
	h.finishPrimitive(w, r, "symmetric", primitive.SymmetricName(p), rep)
}

// Ecc handles POST /api/v1/assess/ecc.
func (h *AssessHandler) Ecc(w http.ResponseWriter, r *http.Request) {
	var req dto.AssessNamedRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	std, ctx, apiErr := h.resolve(req.AssessOptions)
	if apiErr != nil {
		respondError(w, http.StatusNotFound, apiErr)
		return
	}

	p := primitive.EccByName(req.Name)
	rec, ok := std.ValidateEcc(ctx, p)

	rep := report.New(std.Name(), ctx.Security(), ctx.Year())
	rep.Add(report.Finding{
		Aspect:      "ecc",
		Family:      "ecc",
		Primitive:   primitive.EccName(p),
		Compliant:   ok,
		Recommended: primitive.EccName(rec),
	})
	h.finishPrimitive(w, r, "ecc", primitive.EccName(p), rep)
}

// Ffc handles POST /api/v1/assess/ffc.
func (h *AssessHandler) Ffc(w http.ResponseWriter, r *http.Request) {
	var req dto.AssessFfcRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	std, ctx, apiErr := h.resolve(req.AssessOptions)
	if apiErr != nil {
		respondError(w, http.StatusNotFound, apiErr)
		return
	}

	p := primitive.Ffc{L: req.L, N: req.N}
	rec, ok := std.ValidateFfc(ctx, p)

	rep := report.New(std.Name(), ctx.Security(), ctx.Year())
	rep.Add(report.Finding{
		Aspect:      "ffc",
		Family:      "ffc",
		Primitive:   ffcName(p),
		Compliant:   ok,
		Recommended: ffcName(rec),
	})
	h.finishPrimitive(w, r, "ffc", ffcName(p), rep)
}

// Ifc handles POST /api/v1/assess/ifc.
func (h *AssessHandler) Ifc(w http.ResponseWriter, r *http.Request) {
	var req dto.AssessIfcRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	std, ctx, apiErr := h.resolve(req.AssessOptions)
	if apiErr != nil {
		respondError(w, http.StatusNotFound, apiErr)
		return
	}

	p := primitive.Ifc{K: req.Modulus}
	rec, ok := std.ValidateIfc(ctx, p)

	rep := report.New(std.Name(), ctx.Security(), ctx.Year())
	rep.Add(report.Finding{
		Aspect:      "ifc",
		Family:      "ifc",
		Primitive:   ifcName(p),
		Compliant:   ok,
		Recommended: ifcName(rec),
	})
	h.finishPrimitive(w, r, "ifc", ifcName(p), rep)
}

// Certificate handles POST /api/v1/assess/certificate.
func (h *AssessHandler) Certificate(w http.ResponseWriter, r *http.Request) {
	var req dto.AssessCertificateRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	std, ctx, apiErr := h.resolve(req.AssessOptions)
	if apiErr != nil {
		respondError(w, http.StatusNotFound, apiErr)
		return
	}

	data, err := req.Certificate.Decode()
	if err != nil {
		respondError(w, http.StatusBadRequest, apierrors.NewBadRequest(err.Error()))
		return
	}
	cert, err := certutil.Parse(data)
	if err != nil {
		status, apiErr := apierrors.MapError(err)
		respondError(w, status, apiErr)
		return
	}

	rep, err := certutil.Assess(cert, std, ctx)
	if err != nil {
		status, apiErr := apierrors.MapError(err)
		respondError(w, status, apiErr)
		return
	}

	id := h.persist(r, store.NewRecord("certificate", "", "", rep))
	if err := audit.RecordCertificate(h.audit, "", rep); err != nil {
		respondError(w, http.StatusInternalServerError, apierrors.NewBadRequest("audit write failed"))
		return
	}
	respondJSON(w, http.StatusOK, dto.AssessResponse{ID: id, Report: rep})
}

// finishPrimitive persists, audits and responds for a raw primitive
// assessment.
func (h *AssessHandler) finishPrimitive(w http.ResponseWriter, r *http.Request, family, name string, rep *report.Report) {
	id := h.persist(r, store.NewRecord("primitive", family, name, rep))
	if err := audit.RecordPrimitive(h.audit, family, name, rep); err != nil {
		respondError(w, http.StatusInternalServerError, apierrors.NewBadRequest("audit write failed"))
		return
	}
	respondJSON(w, http.StatusOK, dto.AssessResponse{ID: id, Report: rep})
}

// persist saves the assessment record when a store is configured and
// returns the record ID. A failed save degrades to an unpersisted
// response rather than failing the assessment.
func (h *AssessHandler) persist(r *http.Request, rec *store.AssessmentRecord) string {
	if h.store == nil {
		return ""
	}
	if err := h.store.SaveAssessment(r.Context(), rec); err != nil {
		return ""
	}
	return rec.ID
}

// resolve builds the standard and context for a request, falling back
// to the server defaults for any unset option.
func (h *AssessHandler) resolve(opts dto.AssessOptions) (standard.Standard, standard.Context, *dto.APIError) {
	name := opts.Standard
	if name == "" {
		name = h.defaults.Standard
	}
	std, ok := standard.ByName(name)
	if !ok {
		return nil, standard.Context{}, apierrors.NewUnknownStandard(name)
	}

	security := opts.Security
	if security == 0 {
		security = h.defaults.Security
	}
	year := opts.Year
	if year == 0 {
		year = h.defaults.Year
	}

	// A zero year keeps the catalog's review year rather than pinning
	// the context to year zero.
	var copts []standard.Option
	if security != 0 {
		copts = append(copts, standard.WithSecurity(security))
	}
	if year != 0 {
		copts = append(copts, standard.WithYear(year))
	}
	return std, standard.NewContext(copts...), nil
}

// decodeRequest decodes a JSON request body, responding with a 400 on
// failure.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, apierrors.NewBadRequest("invalid request body: "+err.Error()))
		return false
	}
	return true
}

func ffcName(g primitive.Ffc) string {
	return fmt.Sprintf("ffc-%d-%d", g.L, g.N)
}

func ifcName(k primitive.Ifc) string {
	return fmt.Sprintf("ifc-%d", k.K)
}
