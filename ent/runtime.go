// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/codeready-toolchain/runsheet/ent/event"
	"github.com/codeready-toolchain/runsheet/ent/schema"
	"github.com/codeready-toolchain/runsheet/ent/timelineitem"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescName is the schema descriptor for name field.
	eventDescName := eventFields[1].Descriptor()
	// event.NameValidator is a validator for the "name" field. It is called by the builders before save.
	event.NameValidator = eventDescName.Validators[0].(func(string) error)
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[6].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	// eventDescUpdatedAt is the schema descriptor for updated_at field.
	eventDescUpdatedAt := eventFields[7].Descriptor()
	// event.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	event.DefaultUpdatedAt = eventDescUpdatedAt.Default.(func() time.Time)
	// event.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	event.UpdateDefaultUpdatedAt = eventDescUpdatedAt.UpdateDefault.(func() time.Time)
	timelineitemFields := schema.TimelineItem{}.Fields()
	_ = timelineitemFields
	// timelineitemDescTitle is the schema descriptor for title field.
	timelineitemDescTitle := timelineitemFields[2].Descriptor()
	// timelineitem.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	timelineitem.TitleValidator = timelineitemDescTitle.Validators[0].(func(string) error)
	// timelineitemDescOrderIndex is the schema descriptor for order_index field.
	timelineitemDescOrderIndex := timelineitemFields[8].Descriptor()
	// timelineitem.DefaultOrderIndex holds the default value on creation for the order_index field.
	timelineitem.DefaultOrderIndex = timelineitemDescOrderIndex.Default.(int)
	// timelineitemDescCreatedAt is the schema descriptor for created_at field.
	timelineitemDescCreatedAt := timelineitemFields[9].Descriptor()
	// timelineitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	timelineitem.DefaultCreatedAt = timelineitemDescCreatedAt.Default.(func() time.Time)
	// timelineitemDescUpdatedAt is the schema descriptor for updated_at field.
	timelineitemDescUpdatedAt := timelineitemFields[10].Descriptor()
	// timelineitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	timelineitem.DefaultUpdatedAt = timelineitemDescUpdatedAt.Default.(func() time.Time)
	// timelineitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	timelineitem.UpdateDefaultUpdatedAt = timelineitemDescUpdatedAt.UpdateDefault.(func() time.Time)
}
