// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DeviceToken is the predicate function for devicetoken builders.
type DeviceToken func(*sql.Selector)

// QueueItem is the predicate function for queueitem builders.
type QueueItem func(*sql.Selector)

// Run is the predicate function for run builders.
type Run func(*sql.Selector)

// RunEvent is the predicate function for runevent builders.
type RunEvent func(*sql.Selector)

// Runner is the predicate function for runner builders.
type Runner func(*sql.Selector)

// Thread is the predicate function for thread builders.
type Thread func(*sql.Selector)

// ThreadMessage is the predicate function for threadmessage builders.
type ThreadMessage func(*sql.Selector)

// WorkerJob is the predicate function for workerjob builders.
type WorkerJob func(*sql.Selector)
