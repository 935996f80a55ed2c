// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DeviceTokensColumns holds the columns for the "device_tokens" table.
	DeviceTokensColumns = []*schema.Column{
		{Name: "token_id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "device_id", Type: field.TypeString},
		{Name: "token_hash", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
	}
	// DeviceTokensTable holds the schema information for the "device_tokens" table.
	DeviceTokensTable = &schema.Table{
		Name:       "device_tokens",
		Columns:    DeviceTokensColumns,
		PrimaryKey: []*schema.Column{DeviceTokensColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "devicetoken_owner_id",
				Unique:  false,
				Columns: []*schema.Column{DeviceTokensColumns[1]},
			},
		},
	}
	// QueueItemsColumns holds the columns for the "queue_items" table.
	QueueItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "job_id", Type: field.TypeString},
		{Name: "scheduled_for", Type: field.TypeTime},
		{Name: "dedupe_key", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeString, Default: "queued"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "lease_until", Type: field.TypeTime, Nullable: true},
		{Name: "worker_owner", Type: field.TypeString, Nullable: true},
		{Name: "heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// QueueItemsTable holds the schema information for the "queue_items" table.
	QueueItemsTable = &schema.Table{
		Name:       "queue_items",
		Columns:    QueueItemsColumns,
		PrimaryKey: []*schema.Column{QueueItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "queueitem_status_scheduled_for",
				Unique:  false,
				Columns: []*schema.Column{QueueItemsColumns[4], QueueItemsColumns[2]},
			},
			{
				Name:    "queueitem_job_id",
				Unique:  false,
				Columns: []*schema.Column{QueueItemsColumns[1]},
			},
		},
	}
	// RunsColumns holds the columns for the "runs" table.
	RunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "thread_id", Type: field.TypeString},
		{Name: "trace_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "waiting", "success", "failed", "cancelled"}, Default: "pending"},
		{Name: "task", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "steps", Type: field.TypeInt, Default: 0},
	}
	// RunsTable holds the schema information for the "runs" table.
	RunsTable = &schema.Table{
		Name:       "runs",
		Columns:    RunsColumns,
		PrimaryKey: []*schema.Column{RunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "run_owner_id",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[1]},
			},
			{
				Name:    "run_thread_id",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[2]},
			},
			{
				Name:    "run_status",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[4]},
			},
			{
				Name:    "run_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[1], RunsColumns[6]},
			},
		},
	}
	// RunEventsColumns holds the columns for the "run_events" table.
	RunEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "run_id", Type: field.TypeString},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RunEventsTable holds the schema information for the "run_events" table.
	RunEventsTable = &schema.Table{
		Name:       "run_events",
		Columns:    RunEventsColumns,
		PrimaryKey: []*schema.Column{RunEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "runevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[1]},
			},
			{
				Name:    "runevent_run_id_event_type",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[1], RunEventsColumns[3]},
			},
		},
	}
	// RunnersColumns holds the columns for the "runners" table.
	RunnersColumns = []*schema.Column{
		{Name: "runner_id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "auth_secret_hash", Type: field.TypeString},
		{Name: "capabilities", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"online", "offline", "revoked"}, Default: "offline"},
		{Name: "last_seen_at", Type: field.TypeTime, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
	}
	// RunnersTable holds the schema information for the "runners" table.
	RunnersTable = &schema.Table{
		Name:       "runners",
		Columns:    RunnersColumns,
		PrimaryKey: []*schema.Column{RunnersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "runner_owner_id",
				Unique:  false,
				Columns: []*schema.Column{RunnersColumns[1]},
			},
			{
				Name:    "runner_owner_id_name",
				Unique:  true,
				Columns: []*schema.Column{RunnersColumns[1], RunnersColumns[2]},
			},
			{
				Name:    "runner_status",
				Unique:  false,
				Columns: []*schema.Column{RunnersColumns[5]},
			},
		},
	}
	// ThreadsColumns holds the columns for the "threads" table.
	ThreadsColumns = []*schema.Column{
		{Name: "thread_id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ThreadsTable holds the schema information for the "threads" table.
	ThreadsTable = &schema.Table{
		Name:       "threads",
		Columns:    ThreadsColumns,
		PrimaryKey: []*schema.Column{ThreadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "thread_owner_id",
				Unique:  false,
				Columns: []*schema.Column{ThreadsColumns[1]},
			},
		},
	}
	// ThreadMessagesColumns holds the columns for the "thread_messages" table.
	ThreadMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "thread_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "tool_call_id", Type: field.TypeString, Nullable: true},
		{Name: "tool_name", Type: field.TypeString, Nullable: true},
		{Name: "tool_calls", Type: field.TypeJSON, Nullable: true},
		{Name: "processed", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "thread_messages", Type: field.TypeString, Nullable: true},
	}
	// ThreadMessagesTable holds the schema information for the "thread_messages" table.
	ThreadMessagesTable = &schema.Table{
		Name:       "thread_messages",
		Columns:    ThreadMessagesColumns,
		PrimaryKey: []*schema.Column{ThreadMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "thread_messages_threads_messages",
				Columns:    []*schema.Column{ThreadMessagesColumns[9]},
				RefColumns: []*schema.Column{ThreadsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "threadmessage_thread_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ThreadMessagesColumns[1], ThreadMessagesColumns[8]},
			},
			{
				Name:    "threadmessage_tool_call_id",
				Unique:  false,
				Columns: []*schema.Column{ThreadMessagesColumns[4]},
			},
		},
	}
	// WorkerJobsColumns holds the columns for the "worker_jobs" table.
	WorkerJobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "supervisor_run_id", Type: field.TypeString},
		{Name: "tool_call_id", Type: field.TypeString},
		{Name: "task", Type: field.TypeString, Size: 2147483647},
		{Name: "command", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "success", "failed", "timeout", "cancelled"}, Default: "queued"},
		{Name: "runner_id", Type: field.TypeString, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "summary", Type: field.TypeString, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "exit_code", Type: field.TypeInt, Nullable: true},
		{Name: "timeout_secs", Type: field.TypeInt, Default: 120},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WorkerJobsTable holds the schema information for the "worker_jobs" table.
	WorkerJobsTable = &schema.Table{
		Name:       "worker_jobs",
		Columns:    WorkerJobsColumns,
		PrimaryKey: []*schema.Column{WorkerJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workerjob_supervisor_run_id",
				Unique:  false,
				Columns: []*schema.Column{WorkerJobsColumns[2]},
			},
			{
				Name:    "workerjob_owner_id_status",
				Unique:  false,
				Columns: []*schema.Column{WorkerJobsColumns[1], WorkerJobsColumns[6]},
			},
			{
				Name:    "workerjob_supervisor_run_id_status",
				Unique:  false,
				Columns: []*schema.Column{WorkerJobsColumns[2], WorkerJobsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DeviceTokensTable,
		QueueItemsTable,
		RunsTable,
		RunEventsTable,
		RunnersTable,
		ThreadsTable,
		ThreadMessagesTable,
		WorkerJobsTable,
	}
)

func init() {
	ThreadMessagesTable.ForeignKeys[0].RefTable = ThreadsTable
}
