package model

import "encoding/json"

// Identity is the user identity carried by the credential cookie. Fields
// other than email and name are kept in Extra and signed along with them.
type Identity struct {
	Email string                 `json:"email" binding:"required,email"`
	Name  string                 `json:"name,omitempty" binding:"max=120"`
	Extra map[string]interface{} `json:"-"`
}

type identityFields Identity

// UnmarshalJSON decodes email and name and collects every other key into Extra.
func (i *Identity) UnmarshalJSON(data []byte) error {
	var known identityFields
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	var all map[string]interface{}
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	delete(all, "email")
	delete(all, "name")
	if len(all) > 0 {
		known.Extra = all
	}

	*i = Identity(known)
	return nil
}
