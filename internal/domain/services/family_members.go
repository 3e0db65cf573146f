package services

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrFamilyMembersNotArray rejects a family_members value that is not a list.
var ErrFamilyMembersNotArray = errors.New("family_members must be a JSON array")

// FamilyMembers is the ordered list of family member records of a household.
// Each element is kept as raw JSON; its shape is up to the client.
type FamilyMembers []json.RawMessage

// UnmarshalJSON accepts an array or null. Anything else is rejected so a
// household never stores a non-list blob.
func (m *FamilyMembers) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*m = FamilyMembers{}
		return nil
	}
	if trimmed[0] != '[' {
		return ErrFamilyMembersNotArray
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}
	*m = FamilyMembers(raw)
	return nil
}

// MarshalJSON always renders a list, never null.
func (m FamilyMembers) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]json.RawMessage(m))
}

// EncodeFamilyMembers serializes members into the compact JSON text stored
// in the households table.
func EncodeFamilyMembers(members FamilyMembers) ([]byte, error) {
	return members.MarshalJSON()
}

// DecodeFamilyMembers parses a stored blob. An empty blob decodes to an
// empty list.
func DecodeFamilyMembers(blob []byte) (FamilyMembers, error) {
	members := FamilyMembers{}
	if len(bytes.TrimSpace(blob)) == 0 {
		return members, nil
	}
	if err := json.Unmarshal(blob, &members); err != nil {
		return nil, err
	}
	return members, nil
}
