package leadform

import (
	"fmt"
	"strings"

	"nextkey_landing_go/models"

	"github.com/google/uuid"
)

// Form is the state of one rendered intake form instance
type Form struct {
	Fields FieldSet
	// ID identifies the rendered instance across submit attempts
	ID     string
	Values map[string]string
	Errors Errors
}

// NewForm returns an empty form for the field set with a fresh instance id
func NewForm(fs FieldSet) *Form {
	return &Form{
		Fields: fs,
		ID:     uuid.New().String(),
		Values: make(map[string]string, len(fs.Fields)),
		Errors: Errors{},
	}
}

// Bind loads posted values into the form. Unknown keys are ignored and
// normalizers run again, so masked input stays unchanged.
func (f *Form) Bind(id string, get func(string) string) {
	if _, err := uuid.Parse(id); err == nil {
		f.ID = id
	}
	for _, field := range f.Fields.Fields {
		f.Values[field.Name] = normalize(field, get(field.Name))
	}
}

// Edit applies a keystroke to one field. A flagged field goes back to
// untouched before the new value is looked at; validity is only recomputed
// by Validate on the next submit.
func (f *Form) Edit(name, value string) (string, error) {
	field, ok := f.Fields.Field(name)
	if !ok {
		return "", fmt.Errorf("unknown field %q for %s form", name, f.Fields.Key)
	}

	delete(f.Errors, name)

	value = normalize(field, value)
	f.Values[name] = value
	return value, nil
}

// Validate recomputes and stores the invalid-field map
func (f *Form) Validate() Errors {
	f.Errors = Validate(f.Fields, f.Values)
	return f.Errors
}

// Clear empties every field and drops all flags
func (f *Form) Clear() {
	for name := range f.Values {
		f.Values[name] = ""
	}
	f.Errors = Errors{}
}

// Value returns the current value of a field
func (f *Form) Value(name string) string {
	return f.Values[name]
}

// Submission builds the wire payload. Fields the form does not collect
// stay empty and are omitted from the JSON body. The description is sent
// as typed apart from surrounding whitespace.
func (f *Form) Submission(originDomain string) models.LeadSubmission {
	lead := models.LeadSubmission{
		Name:         strings.TrimSpace(f.Values[FieldName]),
		Email:        strings.TrimSpace(f.Values[FieldEmail]),
		Description:  strings.TrimSpace(f.Values[FieldDescription]),
		LeadSource:   f.Fields.Source,
		OriginDomain: originDomain,
	}
	if f.Fields.Has(FieldPhone) {
		lead.Phone = f.Values[FieldPhone]
	}
	if f.Fields.Has(FieldStateLocation) {
		lead.StateLocation = strings.TrimSpace(f.Values[FieldStateLocation])
	}
	return lead
}

func normalize(field Field, value string) string {
	if field.Normalize == nil {
		return value
	}
	return field.Normalize(value)
}
