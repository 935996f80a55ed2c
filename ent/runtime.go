// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/swarmlet/swarmlet/ent/devicetoken"
	"github.com/swarmlet/swarmlet/ent/queueitem"
	"github.com/swarmlet/swarmlet/ent/run"
	"github.com/swarmlet/swarmlet/ent/runevent"
	"github.com/swarmlet/swarmlet/ent/runner"
	"github.com/swarmlet/swarmlet/ent/schema"
	"github.com/swarmlet/swarmlet/ent/thread"
	"github.com/swarmlet/swarmlet/ent/threadmessage"
	"github.com/swarmlet/swarmlet/ent/workerjob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	devicetokenFields := schema.DeviceToken{}.Fields()
	_ = devicetokenFields
	// devicetokenDescCreatedAt is the schema descriptor for created_at field.
	devicetokenDescCreatedAt := devicetokenFields[4].Descriptor()
	// devicetoken.DefaultCreatedAt holds the default value on creation for the created_at field.
	devicetoken.DefaultCreatedAt = devicetokenDescCreatedAt.Default.(func() time.Time)
	queueitemFields := schema.QueueItem{}.Fields()
	_ = queueitemFields
	// queueitemDescStatus is the schema descriptor for status field.
	queueitemDescStatus := queueitemFields[4].Descriptor()
	// queueitem.DefaultStatus holds the default value on creation for the status field.
	queueitem.DefaultStatus = queueitemDescStatus.Default.(string)
	// queueitemDescAttempts is the schema descriptor for attempts field.
	queueitemDescAttempts := queueitemFields[5].Descriptor()
	// queueitem.DefaultAttempts holds the default value on creation for the attempts field.
	queueitem.DefaultAttempts = queueitemDescAttempts.Default.(int)
	// queueitemDescMaxAttempts is the schema descriptor for max_attempts field.
	queueitemDescMaxAttempts := queueitemFields[6].Descriptor()
	// queueitem.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	queueitem.DefaultMaxAttempts = queueitemDescMaxAttempts.Default.(int)
	// queueitemDescCreatedAt is the schema descriptor for created_at field.
	queueitemDescCreatedAt := queueitemFields[11].Descriptor()
	// queueitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	queueitem.DefaultCreatedAt = queueitemDescCreatedAt.Default.(func() time.Time)
	runFields := schema.Run{}.Fields()
	_ = runFields
	// runDescCreatedAt is the schema descriptor for created_at field.
	runDescCreatedAt := runFields[6].Descriptor()
	// run.DefaultCreatedAt holds the default value on creation for the created_at field.
	run.DefaultCreatedAt = runDescCreatedAt.Default.(func() time.Time)
	// runDescTotalTokens is the schema descriptor for total_tokens field.
	runDescTotalTokens := runFields[10].Descriptor()
	// run.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	run.DefaultTotalTokens = runDescTotalTokens.Default.(int)
	// runDescTotalCost is the schema descriptor for total_cost field.
	runDescTotalCost := runFields[11].Descriptor()
	// run.DefaultTotalCost holds the default value on creation for the total_cost field.
	run.DefaultTotalCost = runDescTotalCost.Default.(float64)
	// runDescSteps is the schema descriptor for steps field.
	runDescSteps := runFields[12].Descriptor()
	// run.DefaultSteps holds the default value on creation for the steps field.
	run.DefaultSteps = runDescSteps.Default.(int)
	runeventFields := schema.RunEvent{}.Fields()
	_ = runeventFields
	// runeventDescCreatedAt is the schema descriptor for created_at field.
	runeventDescCreatedAt := runeventFields[5].Descriptor()
	// runevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	runevent.DefaultCreatedAt = runeventDescCreatedAt.Default.(func() time.Time)
	runnerFields := schema.Runner{}.Fields()
	_ = runnerFields
	// runnerDescCapabilities is the schema descriptor for capabilities field.
	runnerDescCapabilities := runnerFields[4].Descriptor()
	// runner.DefaultCapabilities holds the default value on creation for the capabilities field.
	runner.DefaultCapabilities = runnerDescCapabilities.Default.([]string)
	// runnerDescCreatedAt is the schema descriptor for created_at field.
	runnerDescCreatedAt := runnerFields[8].Descriptor()
	// runner.DefaultCreatedAt holds the default value on creation for the created_at field.
	runner.DefaultCreatedAt = runnerDescCreatedAt.Default.(func() time.Time)
	threadFields := schema.Thread{}.Fields()
	_ = threadFields
	// threadDescCreatedAt is the schema descriptor for created_at field.
	threadDescCreatedAt := threadFields[3].Descriptor()
	// thread.DefaultCreatedAt holds the default value on creation for the created_at field.
	thread.DefaultCreatedAt = threadDescCreatedAt.Default.(func() time.Time)
	// threadDescUpdatedAt is the schema descriptor for updated_at field.
	threadDescUpdatedAt := threadFields[4].Descriptor()
	// thread.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	thread.DefaultUpdatedAt = threadDescUpdatedAt.Default.(func() time.Time)
	// thread.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	thread.UpdateDefaultUpdatedAt = threadDescUpdatedAt.UpdateDefault.(func() time.Time)
	threadmessageFields := schema.ThreadMessage{}.Fields()
	_ = threadmessageFields
	// threadmessageDescProcessed is the schema descriptor for processed field.
	threadmessageDescProcessed := threadmessageFields[7].Descriptor()
	// threadmessage.DefaultProcessed holds the default value on creation for the processed field.
	threadmessage.DefaultProcessed = threadmessageDescProcessed.Default.(bool)
	// threadmessageDescCreatedAt is the schema descriptor for created_at field.
	threadmessageDescCreatedAt := threadmessageFields[8].Descriptor()
	// threadmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	threadmessage.DefaultCreatedAt = threadmessageDescCreatedAt.Default.(func() time.Time)
	workerjobFields := schema.WorkerJob{}.Fields()
	_ = workerjobFields
	// workerjobDescTimeoutSecs is the schema descriptor for timeout_secs field.
	workerjobDescTimeoutSecs := workerjobFields[16].Descriptor()
	// workerjob.DefaultTimeoutSecs holds the default value on creation for the timeout_secs field.
	workerjob.DefaultTimeoutSecs = workerjobDescTimeoutSecs.Default.(int)
	// workerjobDescCreatedAt is the schema descriptor for created_at field.
	workerjobDescCreatedAt := workerjobFields[17].Descriptor()
	// workerjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	workerjob.DefaultCreatedAt = workerjobDescCreatedAt.Default.(func() time.Time)
}
