package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TimelineItem holds the schema definition for the TimelineItem entity.
// order_index is the canonical sequence; start_time order may diverge after edits.
type TimelineItem struct {
	ent.Schema
}

// Annotations of the TimelineItem.
func (TimelineItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "timeline_items"},
	}
}

// Fields of the TimelineItem.
func (TimelineItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("event_id").
			Immutable(),
		field.String("title").
			NotEmpty(),
		field.Text("description").
			Optional().
			Nillable(),
		field.Enum("category").
			Values("setup", "performance", "catering", "breakdown", "general").
			Default("general"),

		// Schedule
		field.Time("start_time"),
		field.Time("end_time").
			Optional().
			Nillable().
			Comment("Nil means the default duration applies"),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "skipped").
			Default("pending"),
		field.Int("order_index").
			Default(0).
			Comment("Canonical position within the event"),

		// Timestamps
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the TimelineItem.
func (TimelineItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("event", Event.Type).
			Ref("timeline_items").
			Field("event_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TimelineItem.
func (TimelineItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id", "order_index"),
	}
}
