package agent

import (
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/lucianoayres/chatty-ai-community-store/internal/apperr"
	"github.com/lucianoayres/chatty-ai-community-store/internal/vocab"
)

var colorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validator checks records against the structural schema and the tag
// vocabulary. The vocabulary is an explicit constructor parameter, never
// resolved from the filesystem here.
type Validator struct {
	tags *vocab.Set
}

// NewValidator returns a Validator using the given tag vocabulary.
func NewValidator(tags *vocab.Set) *Validator {
	return &Validator{tags: tags}
}

// Validate checks required-field presence, field types, color format, and
// tag-set membership. It is a pure check with no side effects.
func (v *Validator) Validate(rec *Record) error {
	err := validation.ValidateStruct(rec,
		validation.Field(&rec.Name, validation.Required),
		validation.Field(&rec.Emoji, validation.Required),
		validation.Field(&rec.Description, validation.Required),
		validation.Field(&rec.SystemMessage, validation.Required),
		validation.Field(&rec.LabelColor, validation.Required,
			validation.Match(colorRe).Error("must be a #RRGGBB color")),
		validation.Field(&rec.TextColor, validation.Required,
			validation.Match(colorRe).Error("must be a #RRGGBB color")),
		validation.Field(&rec.IsDefault, validation.NotNil.Error("is required")),
		validation.Field(&rec.Tags, validation.Each(validation.Required)),
	)
	if err != nil {
		return fmt.Errorf("%w: %s", apperr.ErrSchema, err)
	}

	if unknown := v.tags.Unknown(rec.Tags); len(unknown) > 0 {
		return fmt.Errorf("%w: unknown tags: %s", apperr.ErrSchema, strings.Join(unknown, ", "))
	}

	return nil
}

// SuggestTags returns candidate tags for a record that has a name but no
// tags, by matching the name against the vocabulary's example lists.
// Advisory output only — never a validation failure.
func (v *Validator) SuggestTags(rec *Record) []string {
	if len(rec.Tags) > 0 || rec.Name == "" {
		return nil
	}
	return v.tags.ByExample(rec.Name)
}
