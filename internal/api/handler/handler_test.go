package handler_test

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/json"
	"encoding/pem"
	"math/big"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/keywarden/keywarden/internal/api/dto"
	"github.com/keywarden/keywarden/internal/api/router"
	"github.com/keywarden/keywarden/internal/audit"
	"github.com/keywarden/keywarden/internal/store"
)

func newTestRouter(t *testing.T, st store.Store) http.Handler {
	t.Helper()
	return router.New(&router.Config{
		Version:  "test",
		Defaults: dto.AssessOptions{Standard: "nist"},
		Store:    st,
		Audit:    audit.NopWriter{},
	})
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeAssess(t *testing.T, w *httptest.ResponseRecorder) dto.AssessResponse {
	t.Helper()
	var resp dto.AssessResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Report == nil {
		t.Fatal("response has no report")
	}
	return resp
}

func TestU_Health(t *testing.T) {
	h := newTestRouter(t, nil)

	w := doJSON(t, h, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp dto.HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "ok" || resp.Version != "test" {
		t.Errorf("health = %+v", resp)
	}
}

func TestU_Ready(t *testing.T) {
	h := newTestRouter(t, nil)

	w := doJSON(t, h, http.MethodGet, "/ready", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp dto.ReadyResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Ready {
		t.Errorf("ready = false, want true")
	}
}

func TestU_Standards_List(t *testing.T) {
	h := newTestRouter(t, nil)

	w := doJSON(t, h, http.MethodGet, "/api/v1/standards", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp dto.StandardsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	found := map[string]bool{}
	for _, name := range resp.Standards {
		found[name] = true
	}
	for _, want := range []string{"bsi", "cnsa", "ecrypt", "lenstra", "nist"} {
		if !found[want] {
			t.Errorf("standards missing %q", want)
		}
	}
	if found["testing"] {
		t.Error("testing baseline must not be listed")
	}
}

func TestU_AssessHash_Compliant(t *testing.T) {
	h := newTestRouter(t, nil)

	w := doJSON(t, h, http.MethodPost, "/api/v1/assess/hash",
		dto.AssessNamedRequest{Name: "sha256"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	resp := decodeAssess(t, w)
	if !resp.Report.Compliant {
		t.Errorf("sha256 should be compliant under the default standard")
	}
	if len(resp.Report.Findings) != 1 {
		t.Fatalf("findings = %d, want 1", len(resp.Report.Findings))
	}
	f := resp.Report.Findings[0]
	if f.Aspect != "hash" || f.Primitive != "sha256" {
		t.Errorf("finding = %+v", f)
	}
}

func TestU_AssessHash_HashBasedRelaxesCollision(t *testing.T) {
	h := newTestRouter(t, nil)

	w := doJSON(t, h, http.MethodPost, "/api/v1/assess/hash",
		dto.AssessNamedRequest{Name: "sha1"})
	if resp := decodeAssess(t, w); resp.Report.Compliant {
		t.Error("sha1 collision resistance should fail")
	}

	w = doJSON(t, h, http.MethodPost, "/api/v1/assess/hash",
		dto.AssessNamedRequest{Name: "sha1", HashBased: true})
	resp := decodeAssess(t, w)
	if !resp.Report.Compliant {
		t.Error("sha1 pre-image resistance should pass")
	}
	if resp.Report.Findings[0].Aspect != "hash-based" {
		t.Errorf("aspect = %q, want hash-based", resp.Report.Findings[0].Aspect)
	}
}

func TestU_AssessSymmetric_NonCompliant(t *testing.T) {
	h := newTestRouter(t, nil)

	w := doJSON(t, h, http.MethodPost, "/api/v1/assess/symmetric",
		dto.AssessNamedRequest{Name: "des"})
	resp := decodeAssess(t, w)
	if resp.Report.Compliant {
		t.Error("des should not be compliant")
	}
	if got := resp.Report.Findings[0].Recommended; got != "aes-128" {
		t.Errorf("recommended = %q, want aes-128", got)
	}
}

func TestU_AssessEcc_StandardOverride(t *testing.T) {
	h := newTestRouter(t, nil)

	w := doJSON(t, h, http.MethodPost, "/api/v1/assess/ecc",
		dto.AssessNamedRequest{
			AssessOptions: dto.AssessOptions{Standard: "cnsa"},
			Name:          "secp384r1",
		})
	resp := decodeAssess(t, w)
	if resp.Report.Standard != "cnsa" {
		t.Errorf("standard = %q, want cnsa", resp.Report.Standard)
	}
	if !resp.Report.Compliant {
		t.Error("secp384r1 should be compliant under cnsa")
	}
}

func TestU_AssessEcc_UnknownStandard(t *testing.T) {
	h := newTestRouter(t, nil)

	w := doJSON(t, h, http.MethodPost, "/api/v1/assess/ecc",
		dto.AssessNamedRequest{
			AssessOptions: dto.AssessOptions{Standard: "fips"},
			Name:          "secp384r1",
		})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	var apiErr dto.APIError
	if err := json.NewDecoder(w.Body).Decode(&apiErr); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if apiErr.Code != "UNKNOWN_STANDARD" {
		t.Errorf("code = %q, want UNKNOWN_STANDARD", apiErr.Code)
	}
}

func TestU_AssessIfc_WeakModulus(t *testing.T) {
	h := newTestRouter(t, nil)

	w := doJSON(t, h, http.MethodPost, "/api/v1/assess/ifc",
		dto.AssessIfcRequest{Modulus: 1024})
	resp := decodeAssess(t, w)
	if resp.Report.Compliant {
		t.Error("a 1024-bit modulus should not be compliant")
	}
	f := resp.Report.Findings[0]
	if f.Primitive != "ifc-1024" || f.Recommended != "ifc-2048" {
		t.Errorf("finding = %+v", f)
	}
}

func TestU_AssessFfc_WeakGroup(t *testing.T) {
	h := newTestRouter(t, nil)

	w := doJSON(t, h, http.MethodPost, "/api/v1/assess/ffc",
		dto.AssessFfcRequest{L: 1024, N: 160})
	resp := decodeAssess(t, w)
	if resp.Report.Compliant {
		t.Error("a 1024/160 group should not be compliant")
	}
}

func TestU_Assess_InvalidBody(t *testing.T) {
	h := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assess/hash",
		bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestU_AssessCertificate(t *testing.T) {
	h := newTestRouter(t, nil)

	w := doJSON(t, h, http.MethodPost, "/api/v1/assess/certificate",
		dto.AssessCertificateRequest{
			Certificate: dto.BinaryData{Data: string(testCertPEM(t))},
		})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	resp := decodeAssess(t, w)
	if !resp.Report.Compliant {
		t.Errorf("a P-256/SHA-256 certificate should be compliant: %+v", resp.Report.Findings)
	}
	if len(resp.Report.Findings) != 2 {
		t.Fatalf("findings = %d, want 2", len(resp.Report.Findings))
	}
	if resp.Report.Subject == "" {
		t.Error("report should carry the certificate subject")
	}
}

func TestU_AssessCertificate_NotACertificate(t *testing.T) {
	h := newTestRouter(t, nil)

	w := doJSON(t, h, http.MethodPost, "/api/v1/assess/certificate",
		dto.AssessCertificateRequest{
			Certificate: dto.BinaryData{Data: "not a certificate"},
		})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var apiErr dto.APIError
	if err := json.NewDecoder(w.Body).Decode(&apiErr); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if apiErr.Code != "NOT_A_CERTIFICATE" {
		t.Errorf("code = %q, want NOT_A_CERTIFICATE", apiErr.Code)
	}
}

func TestU_Assessments_PersistAndList(t *testing.T) {
	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "assessments.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()
	h := newTestRouter(t, st)

	w := doJSON(t, h, http.MethodPost, "/api/v1/assess/hash",
		dto.AssessNamedRequest{Name: "md5"})
	resp := decodeAssess(t, w)
	if resp.ID == "" {
		t.Fatal("persisted assessment should return a record ID")
	}

	w = doJSON(t, h, http.MethodGet, "/api/v1/assessments", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var list dto.AssessmentsResponse
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Count != 1 {
		t.Fatalf("count = %d, want 1", list.Count)
	}
	rec := list.Assessments[0]
	if rec.Kind != "primitive" || rec.Family != "hash" || rec.Primitive != "md5" {
		t.Errorf("record = %+v", rec)
	}
	if rec.Compliant {
		t.Error("md5 should not be compliant")
	}

	w = doJSON(t, h, http.MethodGet, "/api/v1/assessments/"+resp.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", w.Code)
	}
}

func TestU_Assessments_MissingRecord(t *testing.T) {
	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "assessments.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()
	h := newTestRouter(t, st)

	w := doJSON(t, h, http.MethodGet, "/api/v1/assessments/no-such-id", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestU_Assessments_NoStore(t *testing.T) {
	h := newTestRouter(t, nil)

	w := doJSON(t, h, http.MethodGet, "/api/v1/assessments", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var list dto.AssessmentsResponse
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Count != 0 {
		t.Errorf("count = %d, want 0", list.Count)
	}
}

// testCertPEM builds a self-signed ECDSA P-256 certificate.
func testCertPEM(t *testing.T) []byte {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "handler-test"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("create certificate: %v", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
}
