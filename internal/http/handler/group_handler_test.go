package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupHandler(t *testing.T) {
	env := newTestEnv(t)
	a := env.createContact(t, "Acme AS", "kari@acme.no")
	b := env.createContact(t, "Fjord Tech", "ola@fjord.io")

	rr := env.do(t, http.MethodPost, "/groups", domain.CreateGroupRequest{Name: "Oslo SaaS"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	group := decodeBody[domain.ContactGroupDTO](t, rr)
	groupPath := "/groups/" + group.ID.String()

	t.Run("blank name", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/groups", domain.CreateGroupRequest{Name: "  "})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("add contacts twice", func(t *testing.T) {
		body := domain.ContactIDsRequest{ContactIDs: []uuid.UUID{a.ID, b.ID}}

		rr := env.do(t, http.MethodPost, groupPath+"/contacts", body)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		assert.Equal(t, 2, decodeBody[map[string]int](t, rr)["added"])

		rr = env.do(t, http.MethodPost, groupPath+"/contacts", body)
		require.Equal(t, http.StatusOK, rr.Code)

		rr = env.do(t, http.MethodGet, "/groups/memberships?groupId="+group.ID.String(), nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decodeBody[[]domain.MembershipDTO](t, rr), 2)
	})

	t.Run("filter contacts by group", func(t *testing.T) {
		rr := env.do(t, http.MethodGet, "/contacts?groupId="+group.ID.String(), nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decodeBody[[]domain.ContactDTO](t, rr), 2)
	})

	t.Run("remove contact", func(t *testing.T) {
		rr := env.do(t, http.MethodDelete, groupPath+"/contacts/"+a.ID.String(), nil)
		assert.Equal(t, http.StatusNoContent, rr.Code)

		rr = env.do(t, http.MethodGet, "/groups/memberships?groupId="+group.ID.String(), nil)
		memberships := decodeBody[[]domain.MembershipDTO](t, rr)
		require.Len(t, memberships, 1)
		assert.Equal(t, b.ID, memberships[0].ContactID)
	})

	t.Run("unknown group", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/groups/"+uuid.NewString()+"/contacts", domain.ContactIDsRequest{ContactIDs: []uuid.UUID{a.ID}})
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("delete keeps contacts", func(t *testing.T) {
		rr := env.do(t, http.MethodDelete, groupPath, nil)
		assert.Equal(t, http.StatusNoContent, rr.Code)

		rr = env.do(t, http.MethodGet, "/groups", nil)
		assert.Empty(t, decodeBody[[]domain.ContactGroupDTO](t, rr))

		rr = env.do(t, http.MethodGet, "/contacts", nil)
		assert.Len(t, decodeBody[[]domain.ContactDTO](t, rr), 2)
	})
}
