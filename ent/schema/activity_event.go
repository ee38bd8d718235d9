package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityEvent is one user interaction: a login, a lesson step, a search.
type ActivityEvent struct {
	ent.Schema
}

func (ActivityEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ActivityEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Immutable(),
		field.String("username").
			Default("").
			Comment("Empty before login"),
		field.String("kind").
			NotEmpty().
			Immutable(),
		field.String("detail").
			Default(""),
	}
}

func (ActivityEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
	}
}
