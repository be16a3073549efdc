package handler_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestContactHandler_Create(t *testing.T) {
	env := newTestEnv(t)

	t.Run("rows without an email are skipped", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/contacts", domain.CreateContactsRequest{
			Rows: []domain.ContactRow{
				{Company: "Acme AS", ContactEmail: "kari@acme.no", ContactName: "Kari"},
				{Company: "Fjord Tech", ContactEmail: "ola@fjord.io"},
				{Company: "Loose Format Ltd", ContactEmail: "not-an-email"},
				{Company: "No Email Ltd", ContactEmail: "   "},
			},
		})

		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		result := decodeBody[domain.ImportResult](t, rr)
		assert.Equal(t, 3, result.Accepted)
		assert.Equal(t, 1, result.Skipped)
		require.Len(t, result.Contacts, 3)
		assert.Equal(t, "not-an-email", result.Contacts[2].ContactEmail)
	})

	t.Run("empty rows fail validation", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/contacts", domain.CreateContactsRequest{})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		apiErr := decodeBody[domain.APIError](t, rr)
		assert.Equal(t, domain.ErrorTypeValidation, apiErr.Type)
		assert.Contains(t, apiErr.Errors, "rows")
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/contacts", bytes.NewBufferString("{not json"))
		rr := httptest.NewRecorder()
		env.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestContactHandler_Import(t *testing.T) {
	env := newTestEnv(t)

	upload := func(t *testing.T, filename, content string) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/contacts/import", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rr := httptest.NewRecorder()
		env.router.ServeHTTP(rr, req)
		return rr
	}

	t.Run("csv file", func(t *testing.T) {
		rr := upload(t, "leads.csv", "Company,Email,Name\nAcme AS,kari@acme.no,Kari\n,nocompany@acme.no,Nobody\nBeta AS,,Per\n")

		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		result := decodeBody[domain.ImportResult](t, rr)
		assert.Equal(t, 2, result.Accepted)
		assert.Equal(t, 1, result.Skipped)
	})

	t.Run("header without email column", func(t *testing.T) {
		rr := upload(t, "leads.csv", "Company,Phone\nAcme AS,12345678\n")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing file field", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("note", "no file"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/contacts/import", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rr := httptest.NewRecorder()
		env.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestContactHandler_List(t *testing.T) {
	env := newTestEnv(t)
	env.createContact(t, "Acme AS", "kari@acme.no")
	env.createContact(t, "Fjord Tech", "ola@fjord.io")

	t.Run("search", func(t *testing.T) {
		rr := env.do(t, http.MethodGet, "/contacts?search=fjord", nil)

		require.Equal(t, http.StatusOK, rr.Code)
		contacts := decodeBody[[]domain.ContactDTO](t, rr)
		require.Len(t, contacts, 1)
		assert.Equal(t, "Fjord Tech", contacts[0].Company)
	})

	t.Run("invalid filters", func(t *testing.T) {
		for _, q := range []string{"status=archived", "groupId=nope", "sortBy=random"} {
			rr := env.do(t, http.MethodGet, "/contacts?"+q, nil)
			assert.Equal(t, http.StatusBadRequest, rr.Code, q)
		}
	})

	t.Run("other users see nothing", func(t *testing.T) {
		owner := env.user
		env.user = newUser()
		defer func() { env.user = owner }()

		rr := env.do(t, http.MethodGet, "/contacts", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, decodeBody[[]domain.ContactDTO](t, rr))
	})

	t.Run("unauthenticated", func(t *testing.T) {
		owner := env.user
		env.user = nil
		defer func() { env.user = owner }()

		rr := env.do(t, http.MethodGet, "/contacts", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestContactHandler_UpdateDelete(t *testing.T) {
	env := newTestEnv(t)
	contact := env.createContact(t, "Acme AS", "kari@acme.no")

	t.Run("update", func(t *testing.T) {
		industry := "Software"
		rr := env.do(t, http.MethodPatch, "/contacts/"+contact.ID.String(), domain.UpdateContactRequest{Industry: &industry})

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		assert.Equal(t, "Software", decodeBody[domain.ContactDTO](t, rr).Industry)
	})

	t.Run("invalid id", func(t *testing.T) {
		rr := env.do(t, http.MethodPatch, "/contacts/not-a-uuid", domain.UpdateContactRequest{})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		rr := env.do(t, http.MethodDelete, "/contacts/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rr := env.do(t, http.MethodDelete, "/contacts/"+contact.ID.String(), nil)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("bulk delete", func(t *testing.T) {
		a := env.createContact(t, "A AS", "a@a.no")
		b := env.createContact(t, "B AS", "b@b.no")

		rr := env.do(t, http.MethodPost, "/contacts/delete", domain.ContactIDsRequest{ContactIDs: []uuid.UUID{a.ID, b.ID, uuid.New()}})

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 2, decodeBody[map[string]int](t, rr)["deleted"])
	})
}

func TestContactHandler_Export(t *testing.T) {
	env := newTestEnv(t)
	env.createContact(t, "Acme AS", "kari@acme.no")

	rr := env.do(t, http.MethodGet, "/contacts/export", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, rr.Header().Get("Content-Disposition"), ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rr.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Contains(t, rows[1], "kari@acme.no")
}

func TestContactHandler_Enrich(t *testing.T) {
	env := newTestEnv(t)

	t.Run("model failures are reported per contact", func(t *testing.T) {
		c := env.createContact(t, "Acme AS", "kari@acme.no")

		rr := env.do(t, http.MethodPost, "/contacts/enrich", domain.ContactIDsRequest{ContactIDs: []uuid.UUID{c.ID}})

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		result := decodeBody[domain.BatchResult](t, rr)
		assert.Equal(t, 1, result.Attempted)
		assert.Equal(t, 0, result.Succeeded)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, c.ID, result.Failed[0].ID)
	})

	t.Run("over quota", func(t *testing.T) {
		ids := make([]uuid.UUID, 0, 6)
		for i := 0; i < 6; i++ {
			ids = append(ids, env.createContact(t, "Co "+uuid.NewString()[:4], uuid.NewString()[:6]+"@co.no").ID)
		}

		rr := env.do(t, http.MethodPost, "/contacts/enrich", domain.ContactIDsRequest{ContactIDs: ids})

		assert.Equal(t, http.StatusPaymentRequired, rr.Code)
		apiErr := decodeBody[domain.APIError](t, rr)
		assert.Equal(t, domain.ErrorTypeQuotaExceeded, apiErr.Type)
		require.NotNil(t, apiErr.Remaining)
		assert.Equal(t, 5, *apiErr.Remaining)
	})
}
