package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergepost/mergepost-api/libs/go/logger"
	"github.com/mergepost/mergepost-api/libs/go/services"
	"github.com/mergepost/mergepost-api/libs/go/types/api/params"
	"github.com/mergepost/mergepost-api/libs/go/types/business"
)

func init() {
	// Initialize logger for tests
	logger.InitLogger("test")
}

func TestRecipientService_Add(t *testing.T) {
	tests := []struct {
		name        string
		params      params.UpsertRecipientParams
		wantErr     bool
		errorString string
		wantEmail   string
		wantFields  []business.RecipientField
	}{
		{
			name: "successfully adds recipient with fields",
			params: params.UpsertRecipientParams{
				Email: "alice@example.com",
				Fields: []business.RecipientField{
					{Name: "name", Value: "Alice"},
					{Name: "dept", Value: "Engineering"},
				},
			},
			wantEmail: "alice@example.com",
			wantFields: []business.RecipientField{
				{Name: "name", Value: "Alice"},
				{Name: "dept", Value: "Engineering"},
			},
		},
		{
			name: "trims email and field values",
			params: params.UpsertRecipientParams{
				Email: "  bob@example.com  ",
				Fields: []business.RecipientField{
					{Name: " name ", Value: " Bob "},
				},
			},
			wantEmail: "bob@example.com",
			wantFields: []business.RecipientField{
				{Name: "name", Value: "Bob"},
			},
		},
		{
			name: "drops fields with blank names",
			params: params.UpsertRecipientParams{
				Email: "carol@example.com",
				Fields: []business.RecipientField{
					{Name: "  ", Value: "orphan"},
					{Name: "team", Value: "Platform"},
				},
			},
			wantEmail: "carol@example.com",
			wantFields: []business.RecipientField{
				{Name: "team", Value: "Platform"},
			},
		},
		{
			name: "rejects blank email",
			params: params.UpsertRecipientParams{
				Email: "   ",
			},
			wantErr:     true,
			errorString: "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := services.NewRecipientService()

			recipient, err := store.Add(tt.params)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorString)

				var validationErr *business.ValidationError
				assert.ErrorAs(t, err, &validationErr)

				// Failed validation must leave the store unchanged
				assert.Equal(t, 0, store.Len())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantEmail, recipient.Email)
			assert.Equal(t, tt.wantFields, recipient.Fields)
			assert.Equal(t, 1, store.Len())
		})
	}
}

func TestRecipientService_Update(t *testing.T) {
	seed := []params.UpsertRecipientParams{
		{Email: "a@example.com", Fields: []business.RecipientField{{Name: "name", Value: "A"}}},
		{Email: "b@example.com", Fields: []business.RecipientField{{Name: "name", Value: "B"}}},
	}

	tests := []struct {
		name        string
		index       int
		params      params.UpsertRecipientParams
		wantErr     bool
		wantIndex   bool
		errorString string
	}{
		{
			name:  "successfully replaces record wholesale",
			index: 1,
			params: params.UpsertRecipientParams{
				Email: "b2@example.com",
				Fields: []business.RecipientField{
					{Name: "dept", Value: "Sales"},
				},
			},
		},
		{
			name:        "rejects out of range index",
			index:       5,
			params:      params.UpsertRecipientParams{Email: "x@example.com"},
			wantErr:     true,
			wantIndex:   true,
			errorString: "index 5",
		},
		{
			name:        "rejects negative index",
			index:       -1,
			params:      params.UpsertRecipientParams{Email: "x@example.com"},
			wantErr:     true,
			wantIndex:   true,
			errorString: "index -1",
		},
		{
			name:        "validation failure reported before bounds",
			index:       5,
			params:      params.UpsertRecipientParams{Email: ""},
			wantErr:     true,
			errorString: "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := services.NewRecipientService()
			for _, p := range seed {
				_, err := store.Add(p)
				require.NoError(t, err)
			}

			recipient, err := store.Update(tt.index, tt.params)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorString)
				if tt.wantIndex {
					var indexErr *business.IndexError
					assert.ErrorAs(t, err, &indexErr)
				}
				// Store unchanged on failure
				assert.Equal(t, "a@example.com", store.List()[0].Email)
				assert.Equal(t, "b@example.com", store.List()[1].Email)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "b2@example.com", recipient.Email)

			// Replacement, not a merge: the old record's fields are gone
			got := store.List()[tt.index]
			assert.Equal(t, []business.RecipientField{{Name: "dept", Value: "Sales"}}, got.Fields)
		})
	}
}

func TestRecipientService_Remove(t *testing.T) {
	store := services.NewRecipientService()
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := store.Add(params.UpsertRecipientParams{Email: email})
		require.NoError(t, err)
	}

	t.Run("rejects out of range index without mutation", func(t *testing.T) {
		err := store.Remove(5)

		require.Error(t, err)
		var indexErr *business.IndexError
		require.ErrorAs(t, err, &indexErr)
		assert.Equal(t, 5, indexErr.Index)
		assert.Equal(t, 3, indexErr.Size)
		assert.Equal(t, 3, store.Len())
	})

	t.Run("removes record and shifts later indices down", func(t *testing.T) {
		err := store.Remove(1)

		require.NoError(t, err)
		list := store.List()
		require.Len(t, list, 2)
		assert.Equal(t, "a@example.com", list[0].Email)
		assert.Equal(t, "c@example.com", list[1].Email)
	})
}

func TestRecipientService_List(t *testing.T) {
	store := services.NewRecipientService()
	_, err := store.Add(params.UpsertRecipientParams{
		Email:  "a@example.com",
		Fields: []business.RecipientField{{Name: "name", Value: "A"}},
	})
	require.NoError(t, err)

	t.Run("returns insertion order snapshot", func(t *testing.T) {
		_, err := store.Add(params.UpsertRecipientParams{Email: "b@example.com"})
		require.NoError(t, err)

		list := store.List()
		require.Len(t, list, 2)
		assert.Equal(t, "a@example.com", list[0].Email)
		assert.Equal(t, "b@example.com", list[1].Email)
	})

	t.Run("snapshot is isolated from later mutation", func(t *testing.T) {
		snapshot := store.List()
		snapshot[0].Fields[0].Value = "mutated"

		fresh := store.List()
		assert.Equal(t, "A", fresh[0].Fields[0].Value)
	})
}
