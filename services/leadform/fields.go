package leadform

import "nextkey_landing_go/models"

// Form field names as they appear in the HTML forms
const (
	FieldName          = "name"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldStateLocation = "stateLocation"
	FieldDescription   = "description"
)

// Field declares one input of an intake form
type Field struct {
	Name        string
	Label       string
	InputType   string // "text", "email", "tel" or "textarea"
	Placeholder string
	Rows        int // Textarea only

	// Rules is a validator tag list; empty means the field is optional
	Rules string

	// Normalize rewrites the raw value on every edit (nil keeps it as typed)
	Normalize func(string) string
}

// Required reports whether the field carries validation rules
func (f Field) Required() bool {
	return f.Rules != ""
}

// FieldSet is the declarative description of one intake form
type FieldSet struct {
	Key         string // URL segment: "parent" or "child"
	Source      models.LeadSource
	Title       string
	Intro       string
	SubmitLabel string
	Fields      []Field
}

// Field returns the field with the given name
func (fs FieldSet) Field(name string) (Field, bool) {
	for _, f := range fs.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Has reports whether the form collects the given field
func (fs FieldSet) Has(name string) bool {
	_, ok := fs.Field(name)
	return ok
}

var (
	nameField = Field{
		Name:        FieldName,
		Label:       "Parent/Guardian Full Name",
		InputType:   "text",
		Placeholder: "John Doe",
		Rules:       "notblank",
	}
	emailField = Field{
		Name:        FieldEmail,
		Label:       "Email",
		InputType:   "email",
		Placeholder: "your.name@domain.com",
		Rules:       "notblank,leademail",
	}
	descriptionField = Field{
		Name:        FieldDescription,
		Label:       "Short description of your concern",
		InputType:   "textarea",
		Placeholder: "Brief about your concern",
		Rows:        2,
	}
)

// ParentFields is the parent-facing intake form
var ParentFields = FieldSet{
	Key:         "parent",
	Source:      models.LeadSourceParents,
	Title:       "Request Free Guidance",
	SubmitLabel: "Get Free Guidance",
	Fields: []Field{
		nameField,
		emailField,
		{
			Name:        FieldPhone,
			Label:       "Phone",
			InputType:   "tel",
			Placeholder: "(123) 456-7890",
			Rules:       "notblank,maskedphone",
			Normalize:   FormatPhone,
		},
		{
			Name:        FieldStateLocation,
			Label:       "State/Location",
			InputType:   "text",
			Placeholder: "State or Location",
			Rules:       "notblank",
		},
		descriptionField,
	},
}

// ChildFields is the child-facing intake form, filled in by a parent
var ChildFields = FieldSet{
	Key:         "child",
	Source:      models.LeadSourceKids,
	Title:       "Get Help Together",
	Intro:       "If you think something's wrong, ask your parent or guardian to fill out this form. We'll help make your gaming experience safe again.",
	SubmitLabel: "Send to GameGuard Legal",
	Fields: []Field{
		nameField,
		emailField,
		descriptionField,
	},
}

// FieldSetFor returns the form registered under the URL segment key
func FieldSetFor(key string) (FieldSet, bool) {
	switch key {
	case ParentFields.Key:
		return ParentFields, true
	case ChildFields.Key:
		return ChildFields, true
	}
	return FieldSet{}, false
}
