package leadform

import (
	"encoding/json"
	"testing"

	"nextkey_landing_go/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewForm(t *testing.T) {
	f := NewForm(ParentFields)
	_, err := uuid.Parse(f.ID)
	assert.NoError(t, err)
	assert.Empty(t, f.Errors)
	assert.NotEqual(t, f.ID, NewForm(ParentFields).ID)
}

func TestFormEditClearsFlagEagerly(t *testing.T) {
	f := NewForm(ParentFields)
	f.Validate()
	require.True(t, f.Errors.Invalid(FieldEmail))
	require.True(t, f.Errors.Invalid(FieldName))

	// The new value is still not a valid email, the flag goes anyway
	_, err := f.Edit(FieldEmail, "still-bad")
	require.NoError(t, err)
	assert.False(t, f.Errors.Invalid(FieldEmail))
	_, present := f.Errors[FieldEmail]
	assert.False(t, present)

	// Other flags are untouched
	assert.True(t, f.Errors.Invalid(FieldName))

	// Clearing the field entirely also clears the flag
	_, err = f.Edit(FieldName, "")
	require.NoError(t, err)
	assert.False(t, f.Errors.Invalid(FieldName))

	// Next submit recomputes validity
	f.Validate()
	assert.True(t, f.Errors.Invalid(FieldEmail))
	assert.True(t, f.Errors.Invalid(FieldName))
}

func TestFormEditMasksPhone(t *testing.T) {
	f := NewForm(ParentFields)
	v, err := f.Edit(FieldPhone, "555123")
	require.NoError(t, err)
	assert.Equal(t, "(555) 123", v)
	assert.Equal(t, "(555) 123", f.Value(FieldPhone))

	v, err = f.Edit(FieldName, " Jane ")
	require.NoError(t, err)
	assert.Equal(t, " Jane ", v, "non-phone fields are kept as typed")
}

func TestFormEditUnknownField(t *testing.T) {
	f := NewForm(ChildFields)
	_, err := f.Edit(FieldPhone, "555")
	assert.Error(t, err)
}

func TestFormBind(t *testing.T) {
	posted := map[string]string{
		FieldName:          "Jane Doe",
		FieldEmail:         "jane@example.com",
		FieldPhone:         "555-123-4567",
		FieldStateLocation: "CA",
		"unexpected":       "ignored",
	}
	id := uuid.New().String()

	f := NewForm(ParentFields)
	f.Bind(id, func(k string) string { return posted[k] })

	assert.Equal(t, id, f.ID)
	assert.Equal(t, "(555) 123-4567", f.Value(FieldPhone))
	assert.NotContains(t, f.Values, "unexpected")
	assert.False(t, f.Validate().Any())

	t.Run("InvalidIDKeepsFreshOne", func(t *testing.T) {
		g := NewForm(ParentFields)
		orig := g.ID
		g.Bind("not-a-uuid", func(string) string { return "" })
		assert.Equal(t, orig, g.ID)
	})
}

func TestFormClear(t *testing.T) {
	f := NewForm(ChildFields)
	f.Bind("", func(k string) string { return "x" })
	f.Errors[FieldEmail] = true

	f.Clear()
	for _, field := range ChildFields.Fields {
		assert.Empty(t, f.Value(field.Name))
	}
	assert.Empty(t, f.Errors)
}

func TestFormSubmission(t *testing.T) {
	t.Run("Parent", func(t *testing.T) {
		f := NewForm(ParentFields)
		f.Bind("", func(k string) string {
			return map[string]string{
				FieldName:          " Jane Doe ",
				FieldEmail:         "jane@example.com",
				FieldPhone:         "(555) 123-4567",
				FieldStateLocation: "CA",
				FieldDescription:   " Worried about chat & purchases\n",
			}[k]
		})

		lead := f.Submission("landing.example.com")
		assert.Equal(t, "Jane Doe", lead.Name)
		assert.Equal(t, "(555) 123-4567", lead.Phone)
		assert.Equal(t, "CA", lead.StateLocation)
		assert.Equal(t, "Worried about chat & purchases", lead.Description)
		assert.Equal(t, models.LeadSourceParents, lead.LeadSource)
		assert.Equal(t, "landing.example.com", lead.OriginDomain)

		body, err := json.Marshal(lead)
		require.NoError(t, err)
		var wire map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &wire))
		assert.Equal(t, "parents", wire["lead_source"])
		assert.Equal(t, "CA", wire["state_location"])
		assert.Equal(t, "(555) 123-4567", wire["phone"])
		assert.Equal(t, "landing.example.com", wire["original_domain"])
	})

	t.Run("DescriptionKeepsAngleBrackets", func(t *testing.T) {
		for _, text := range []string{
			"Call me <after 5pm> please",
			"username is <xXgamerXx>",
			"He typed <script>alert(1)</script> in chat",
			"Said \"send me robux\" & 'meet up'",
		} {
			f := NewForm(ChildFields)
			f.Bind("", func(k string) string {
				return map[string]string{FieldName: "Jane", FieldEmail: "jane@example.com", FieldDescription: text}[k]
			})

			lead := f.Submission("localhost")
			assert.Equal(t, text, lead.Description)

			body, err := json.Marshal(lead)
			require.NoError(t, err)
			var wire map[string]interface{}
			require.NoError(t, json.Unmarshal(body, &wire))
			assert.Equal(t, text, wire["description"])
		}
	})

	t.Run("ChildOmitsParentFields", func(t *testing.T) {
		f := NewForm(ChildFields)
		f.Bind("", func(k string) string {
			return map[string]string{FieldName: "Jane", FieldEmail: "jane@example.com"}[k]
		})

		body, err := json.Marshal(f.Submission("localhost"))
		require.NoError(t, err)
		var wire map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &wire))
		assert.Equal(t, "kids", wire["lead_source"])
		assert.NotContains(t, wire, "phone")
		assert.NotContains(t, wire, "state_location")
		assert.Contains(t, wire, "description")
	})
}
