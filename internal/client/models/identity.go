// Package models defines the client-side records of the storefront: the
// signed-in identity, catalog products, cart line items and orders.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidIdentity is returned when a persisted or remote user record is
// not a JSON object.
var ErrInvalidIdentity = errors.New("invalid identity record")

// Identity is the user record returned by the backend on login. The backend
// owns its shape: the commonly used attributes are lifted into fields and
// everything else is kept in Extra so that a save/load round trip is lossless.
type Identity struct {
	ID       int64
	Email    string
	Username string
	Name     string
	Extra    map[string]json.RawMessage
}

// ParseIdentity decodes a serialized user record. Anything other than a JSON
// object (including "null") is rejected.
func ParseIdentity(data []byte) (*Identity, error) {
	var id Identity
	if err := json.Unmarshal(data, &id); err != nil {
		return nil, err
	}
	return &id, nil
}

func (i *Identity) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("%w: expected object", ErrInvalidIdentity)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidIdentity, err)
	}

	var out Identity
	// Attributes with an unexpected type stay in Extra untouched.
	if v, ok := raw["id"]; ok && json.Unmarshal(v, &out.ID) == nil {
		delete(raw, "id")
	}
	for key, dst := range map[string]*string{"email": &out.Email, "username": &out.Username, "name": &out.Name} {
		if v, ok := raw[key]; ok && json.Unmarshal(v, dst) == nil {
			delete(raw, key)
		}
	}
	if len(raw) > 0 {
		out.Extra = raw
	}

	*i = out
	return nil
}

func (i Identity) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(i.Extra)+4)
	for k, v := range i.Extra {
		out[k] = v
	}
	if i.ID != 0 {
		out["id"] = i.ID
	}
	if i.Email != "" {
		out["email"] = i.Email
	}
	if i.Username != "" {
		out["username"] = i.Username
	}
	if i.Name != "" {
		out["name"] = i.Name
	}
	return json.Marshal(out)
}

// DisplayName picks the friendliest available label: name, username, email.
func (i *Identity) DisplayName() string {
	switch {
	case i == nil:
		return ""
	case i.Name != "":
		return i.Name
	case i.Username != "":
		return i.Username
	default:
		return i.Email
	}
}
