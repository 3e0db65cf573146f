package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"pdrims-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHouseholdThenList(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	id, err := l.households.CreateHousehold(ctx, HouseholdInput{
		HeadName:      "Juan Dela Cruz",
		Purok:         "Purok 3",
		DamageStatus:  "Moderate",
		HeadAge:       intPtr(50),
		ContactNumber: "0917000001",
		FamilyMembers: FamilyMembers{},
		InitialNeeds:  "Water",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	households, err := l.households.ListHouseholds(ctx)
	require.NoError(t, err)
	require.Len(t, households, 1)

	h := households[0]
	assert.Equal(t, id, h.ID)
	assert.Equal(t, "Juan Dela Cruz", h.HeadName)
	assert.Equal(t, "Purok 3", h.Purok)
	assert.Equal(t, "Moderate", h.DamageStatus)
	require.NotNil(t, h.HeadAge)
	assert.Equal(t, 50, *h.HeadAge)
	assert.Equal(t, "0917000001", h.ContactNumber)
	assert.Equal(t, "Water", h.InitialNeeds)
	assert.Empty(t, h.Members)
	assert.Nil(t, h.DecodeErr)

	body, err := json.Marshal(h)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"familyMembers":[]`)
	assert.NotContains(t, string(body), "familyMembersError")

	logs := l.logs(t)
	require.Len(t, logs, 1)
	assert.Equal(t, DefaultOfficialActor, logs[0].Actor)
	assert.Equal(t, "Added Household", logs[0].Action)
	assert.Equal(t, fmt.Sprintf("ID: %s - Juan Dela Cruz", id), logs[0].Target)
}

func TestCreateHouseholdKeepsFamilyMembers(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	const members = `[{"name":"Maria","age":45},{"name":"Jose","age":12}]`
	var input FamilyMembers
	require.NoError(t, json.Unmarshal([]byte(members), &input))

	id, err := l.households.CreateHousehold(ctx, HouseholdInput{
		HeadName:      "Pedro Reyes",
		Purok:         "Purok 5",
		FamilyMembers: input,
		OfficialName:  "Kagawad Santos",
	})
	require.NoError(t, err)

	got, err := l.households.GetHousehold(ctx, id)
	require.NoError(t, err)
	encoded, err := EncodeFamilyMembers(got.Members)
	require.NoError(t, err)
	assert.Equal(t, members, string(encoded))

	logs := l.logs(t)
	require.Len(t, logs, 1)
	assert.Equal(t, "Kagawad Santos", logs[0].Actor)
}

func TestCreateHouseholdValidation(t *testing.T) {
	tests := []struct {
		name       string
		input      HouseholdInput
		wantFields []string
	}{
		{
			name:       "missing head name and purok",
			input:      HouseholdInput{},
			wantFields: []string{"head_name", "purok"},
		},
		{
			name:       "blank head name",
			input:      HouseholdInput{HeadName: "   ", Purok: "Purok 1"},
			wantFields: []string{"head_name"},
		},
		{
			name:       "negative age",
			input:      HouseholdInput{HeadName: "Ana", Purok: "Purok 1", HeadAge: intPtr(-3)},
			wantFields: []string{"head_age"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLedger(t)

			_, err := l.households.CreateHousehold(context.Background(), tt.input)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			for _, field := range tt.wantFields {
				assert.Contains(t, verr.Fields, field)
			}
			assert.Len(t, verr.Fields, len(tt.wantFields))

			assert.Zero(t, l.count(t, &models.Household{}))
			assert.Zero(t, l.count(t, &models.SystemLog{}))
		})
	}
}

func TestUpdateHousehold(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	id := l.createHousehold(t, "Juan Dela Cruz")

	var members FamilyMembers
	require.NoError(t, json.Unmarshal([]byte(`[{"name":"Maria"}]`), &members))

	err := l.households.UpdateHousehold(ctx, id, HouseholdInput{
		HeadName:      "Juan Dela Cruz Jr.",
		Purok:         "Purok 4",
		DamageStatus:  "Totally Damaged",
		HeadAge:       intPtr(31),
		FamilyMembers: members,
		OfficialName:  "Kagawad Santos",
	})
	require.NoError(t, err)

	got, err := l.households.GetHousehold(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Juan Dela Cruz Jr.", got.HeadName)
	assert.Equal(t, "Purok 4", got.Purok)
	assert.Equal(t, "Totally Damaged", got.DamageStatus)
	require.NotNil(t, got.HeadAge)
	assert.Equal(t, 31, *got.HeadAge)
	require.Len(t, got.Members, 1)

	logs := l.logs(t)
	require.Len(t, logs, 2)
	assert.Equal(t, "Updated Household", logs[0].Action)
	assert.Equal(t, "Kagawad Santos", logs[0].Actor)
	assert.Equal(t, fmt.Sprintf("ID: %s - Juan Dela Cruz Jr.", id), logs[0].Target)
}

func TestUpdateHouseholdNotFound(t *testing.T) {
	l := newTestLedger(t)

	err := l.households.UpdateHousehold(context.Background(), "MISSING", HouseholdInput{
		HeadName: "Nobody",
		Purok:    "Purok 1",
	})
	assert.ErrorIs(t, err, ErrNotFound)

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "MISSING", nf.ID)

	assert.Zero(t, l.count(t, &models.Household{}))
	assert.Zero(t, l.count(t, &models.SystemLog{}))
}

func TestGetHouseholdNotFound(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.households.GetHousehold(context.Background(), "MISSING")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListHouseholdsIsolatesCorruptFamilyData(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	good := l.createHousehold(t, "Good Record")
	bad := l.createHousehold(t, "Bad Record")
	require.NoError(t, l.db.Model(&models.Household{}).
		Where("id = ?", bad).
		UpdateColumn("family_members", "{not json").Error)

	households, err := l.households.ListHouseholds(ctx)
	require.NoError(t, err)
	require.Len(t, households, 2)

	byID := map[string]HouseholdView{}
	for _, h := range households {
		byID[h.ID] = h
	}

	assert.Nil(t, byID[good].DecodeErr)
	assert.Empty(t, byID[good].MembersError)

	corrupt := byID[bad]
	require.NotNil(t, corrupt.DecodeErr)
	assert.Equal(t, bad, corrupt.DecodeErr.HouseholdID)
	assert.NotEmpty(t, corrupt.MembersError)
	assert.NotNil(t, corrupt.Members)
	assert.Empty(t, corrupt.Members)
	assert.Equal(t, "Bad Record", corrupt.HeadName)
}

func TestListHouseholdsInIntakeOrder(t *testing.T) {
	l := newTestLedger(t)

	first := l.createHousehold(t, "First")
	second := l.createHousehold(t, "Second")
	third := l.createHousehold(t, "Third")

	households, err := l.households.ListHouseholds(context.Background())
	require.NoError(t, err)
	require.Len(t, households, 3)

	ids := []string{households[0].ID, households[1].ID, households[2].ID}
	assert.ElementsMatch(t, []string{first, second, third}, ids)
	assert.Equal(t, first, ids[0])
}

func TestConcurrentHouseholdCreatesGetDistinctIDs(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	const n = 40
	ids := make([]string, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i], errs[i] = l.households.CreateHousehold(ctx, HouseholdInput{
				HeadName: fmt.Sprintf("Head %d", i),
				Purok:    "Purok 2",
			})
		}(i)
	}
	wg.Wait()

	unique := map[string]struct{}{}
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		unique[ids[i]] = struct{}{}
	}
	assert.Len(t, unique, n)
	assert.Equal(t, int64(n), l.count(t, &models.Household{}))
	assert.Equal(t, int64(n), l.count(t, &models.SystemLog{}))
}
