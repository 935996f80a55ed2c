// Code generated by ent, DO NOT EDIT.

package queueitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/swarmlet/swarmlet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEQ(FieldJobID, v))
}

// ScheduledFor applies equality check predicate on the "scheduled_for" field. It's identical to ScheduledForEQ.
func ScheduledFor(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEQ(FieldScheduledFor, v))
}

// DedupeKey applies equality check predicate on the "dedupe_key" field. It's identical to DedupeKeyEQ.
func DedupeKey(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEQ(FieldDedupeKey, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEQ(FieldStatus, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEQ(FieldAttempts, v))
}

// MaxAttempts applies equality check predicate on the "max_attempts" field. It's identical to MaxAttemptsEQ.
func MaxAttempts(v int) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEQ(FieldMaxAttempts, v))
}

// LeaseUntil applies equality check predicate on the "lease_until" field. It's identical to LeaseUntilEQ.
func LeaseUntil(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEQ(FieldLeaseUntil, v))
}

// WorkerOwner applies equality check predicate on the "worker_owner" field. It's identical to WorkerOwnerEQ.
func WorkerOwner(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEQ(FieldWorkerOwner, v))
}

// HeartbeatAt applies equality check predicate on the "heartbeat_at" field. It's identical to HeartbeatAtEQ.
func HeartbeatAt(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEQ(FieldHeartbeatAt, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEQ(FieldLastError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEQ(FieldCreatedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEQ(FieldFinishedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldContainsFold(FieldJobID, v))
}

// ScheduledForEQ applies the EQ predicate on the "scheduled_for" field.
func ScheduledForEQ(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEQ(FieldScheduledFor, v))
}

// ScheduledForNEQ applies the NEQ predicate on the "scheduled_for" field.
func ScheduledForNEQ(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNEQ(FieldScheduledFor, v))
}

// ScheduledForIn applies the In predicate on the "scheduled_for" field.
func ScheduledForIn(vs ...time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldIn(FieldScheduledFor, vs...))
}

// ScheduledForNotIn applies the NotIn predicate on the "scheduled_for" field.
func ScheduledForNotIn(vs ...time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNotIn(FieldScheduledFor, vs...))
}

// ScheduledForGT applies the GT predicate on the "scheduled_for" field.
func ScheduledForGT(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldGT(FieldScheduledFor, v))
}

// ScheduledForGTE applies the GTE predicate on the "scheduled_for" field.
func ScheduledForGTE(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldGTE(FieldScheduledFor, v))
}

// ScheduledForLT applies the LT predicate on the "scheduled_for" field.
func ScheduledForLT(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldLT(FieldScheduledFor, v))
}

// ScheduledForLTE applies the LTE predicate on the "scheduled_for" field.
func ScheduledForLTE(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldLTE(FieldScheduledFor, v))
}

// DedupeKeyEQ applies the EQ predicate on the "dedupe_key" field.
func DedupeKeyEQ(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEQ(FieldDedupeKey, v))
}

// DedupeKeyNEQ applies the NEQ predicate on the "dedupe_key" field.
func DedupeKeyNEQ(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNEQ(FieldDedupeKey, v))
}

// DedupeKeyIn applies the In predicate on the "dedupe_key" field.
func DedupeKeyIn(vs ...string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldIn(FieldDedupeKey, vs...))
}

// DedupeKeyNotIn applies the NotIn predicate on the "dedupe_key" field.
func DedupeKeyNotIn(vs ...string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNotIn(FieldDedupeKey, vs...))
}

// DedupeKeyGT applies the GT predicate on the "dedupe_key" field.
func DedupeKeyGT(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldGT(FieldDedupeKey, v))
}

// DedupeKeyGTE applies the GTE predicate on the "dedupe_key" field.
func DedupeKeyGTE(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldGTE(FieldDedupeKey, v))
}

// DedupeKeyLT applies the LT predicate on the "dedupe_key" field.
func DedupeKeyLT(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldLT(FieldDedupeKey, v))
}

// DedupeKeyLTE applies the LTE predicate on the "dedupe_key" field.
func DedupeKeyLTE(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldLTE(FieldDedupeKey, v))
}

// DedupeKeyContains applies the Contains predicate on the "dedupe_key" field.
func DedupeKeyContains(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldContains(FieldDedupeKey, v))
}

// DedupeKeyHasPrefix applies the HasPrefix predicate on the "dedupe_key" field.
func DedupeKeyHasPrefix(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldHasPrefix(FieldDedupeKey, v))
}

// DedupeKeyHasSuffix applies the HasSuffix predicate on the "dedupe_key" field.
func DedupeKeyHasSuffix(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldHasSuffix(FieldDedupeKey, v))
}

// DedupeKeyEqualFold applies the EqualFold predicate on the "dedupe_key" field.
func DedupeKeyEqualFold(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEqualFold(FieldDedupeKey, v))
}

// DedupeKeyContainsFold applies the ContainsFold predicate on the "dedupe_key" field.
func DedupeKeyContainsFold(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldContainsFold(FieldDedupeKey, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldContainsFold(FieldStatus, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldLTE(FieldAttempts, v))
}

// MaxAttemptsEQ applies the EQ predicate on the "max_attempts" field.
func MaxAttemptsEQ(v int) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEQ(FieldMaxAttempts, v))
}

// MaxAttemptsNEQ applies the NEQ predicate on the "max_attempts" field.
func MaxAttemptsNEQ(v int) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNEQ(FieldMaxAttempts, v))
}

// MaxAttemptsIn applies the In predicate on the "max_attempts" field.
func MaxAttemptsIn(vs ...int) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsNotIn applies the NotIn predicate on the "max_attempts" field.
func MaxAttemptsNotIn(vs ...int) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNotIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsGT applies the GT predicate on the "max_attempts" field.
func MaxAttemptsGT(v int) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldGT(FieldMaxAttempts, v))
}

// MaxAttemptsGTE applies the GTE predicate on the "max_attempts" field.
func MaxAttemptsGTE(v int) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldGTE(FieldMaxAttempts, v))
}

// MaxAttemptsLT applies the LT predicate on the "max_attempts" field.
func MaxAttemptsLT(v int) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldLT(FieldMaxAttempts, v))
}

// MaxAttemptsLTE applies the LTE predicate on the "max_attempts" field.
func MaxAttemptsLTE(v int) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldLTE(FieldMaxAttempts, v))
}

// LeaseUntilEQ applies the EQ predicate on the "lease_until" field.
func LeaseUntilEQ(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEQ(FieldLeaseUntil, v))
}

// LeaseUntilNEQ applies the NEQ predicate on the "lease_until" field.
func LeaseUntilNEQ(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNEQ(FieldLeaseUntil, v))
}

// LeaseUntilIn applies the In predicate on the "lease_until" field.
func LeaseUntilIn(vs ...time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldIn(FieldLeaseUntil, vs...))
}

// LeaseUntilNotIn applies the NotIn predicate on the "lease_until" field.
func LeaseUntilNotIn(vs ...time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNotIn(FieldLeaseUntil, vs...))
}

// LeaseUntilGT applies the GT predicate on the "lease_until" field.
func LeaseUntilGT(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldGT(FieldLeaseUntil, v))
}

// LeaseUntilGTE applies the GTE predicate on the "lease_until" field.
func LeaseUntilGTE(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldGTE(FieldLeaseUntil, v))
}

// LeaseUntilLT applies the LT predicate on the "lease_until" field.
func LeaseUntilLT(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldLT(FieldLeaseUntil, v))
}

// LeaseUntilLTE applies the LTE predicate on the "lease_until" field.
func LeaseUntilLTE(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldLTE(FieldLeaseUntil, v))
}

// LeaseUntilIsNil applies the IsNil predicate on the "lease_until" field.
func LeaseUntilIsNil() predicate.QueueItem {
	return predicate.QueueItem(sql.FieldIsNull(FieldLeaseUntil))
}

// LeaseUntilNotNil applies the NotNil predicate on the "lease_until" field.
func LeaseUntilNotNil() predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNotNull(FieldLeaseUntil))
}

// WorkerOwnerEQ applies the EQ predicate on the "worker_owner" field.
func WorkerOwnerEQ(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEQ(FieldWorkerOwner, v))
}

// WorkerOwnerNEQ applies the NEQ predicate on the "worker_owner" field.
func WorkerOwnerNEQ(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNEQ(FieldWorkerOwner, v))
}

// WorkerOwnerIn applies the In predicate on the "worker_owner" field.
func WorkerOwnerIn(vs ...string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldIn(FieldWorkerOwner, vs...))
}

// WorkerOwnerNotIn applies the NotIn predicate on the "worker_owner" field.
func WorkerOwnerNotIn(vs ...string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNotIn(FieldWorkerOwner, vs...))
}

// WorkerOwnerGT applies the GT predicate on the "worker_owner" field.
func WorkerOwnerGT(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldGT(FieldWorkerOwner, v))
}

// WorkerOwnerGTE applies the GTE predicate on the "worker_owner" field.
func WorkerOwnerGTE(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldGTE(FieldWorkerOwner, v))
}

// WorkerOwnerLT applies the LT predicate on the "worker_owner" field.
func WorkerOwnerLT(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldLT(FieldWorkerOwner, v))
}

// WorkerOwnerLTE applies the LTE predicate on the "worker_owner" field.
func WorkerOwnerLTE(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldLTE(FieldWorkerOwner, v))
}

// WorkerOwnerContains applies the Contains predicate on the "worker_owner" field.
func WorkerOwnerContains(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldContains(FieldWorkerOwner, v))
}

// WorkerOwnerHasPrefix applies the HasPrefix predicate on the "worker_owner" field.
func WorkerOwnerHasPrefix(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldHasPrefix(FieldWorkerOwner, v))
}

// WorkerOwnerHasSuffix applies the HasSuffix predicate on the "worker_owner" field.
func WorkerOwnerHasSuffix(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldHasSuffix(FieldWorkerOwner, v))
}

// WorkerOwnerIsNil applies the IsNil predicate on the "worker_owner" field.
func WorkerOwnerIsNil() predicate.QueueItem {
	return predicate.QueueItem(sql.FieldIsNull(FieldWorkerOwner))
}

// WorkerOwnerNotNil applies the NotNil predicate on the "worker_owner" field.
func WorkerOwnerNotNil() predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNotNull(FieldWorkerOwner))
}

// WorkerOwnerEqualFold applies the EqualFold predicate on the "worker_owner" field.
func WorkerOwnerEqualFold(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEqualFold(FieldWorkerOwner, v))
}

// WorkerOwnerContainsFold applies the ContainsFold predicate on the "worker_owner" field.
func WorkerOwnerContainsFold(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldContainsFold(FieldWorkerOwner, v))
}

// HeartbeatAtEQ applies the EQ predicate on the "heartbeat_at" field.
func HeartbeatAtEQ(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtNEQ applies the NEQ predicate on the "heartbeat_at" field.
func HeartbeatAtNEQ(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtIn applies the In predicate on the "heartbeat_at" field.
func HeartbeatAtIn(vs ...time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtNotIn applies the NotIn predicate on the "heartbeat_at" field.
func HeartbeatAtNotIn(vs ...time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNotIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtGT applies the GT predicate on the "heartbeat_at" field.
func HeartbeatAtGT(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldGT(FieldHeartbeatAt, v))
}

// HeartbeatAtGTE applies the GTE predicate on the "heartbeat_at" field.
func HeartbeatAtGTE(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldGTE(FieldHeartbeatAt, v))
}

// HeartbeatAtLT applies the LT predicate on the "heartbeat_at" field.
func HeartbeatAtLT(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldLT(FieldHeartbeatAt, v))
}

// HeartbeatAtLTE applies the LTE predicate on the "heartbeat_at" field.
func HeartbeatAtLTE(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldLTE(FieldHeartbeatAt, v))
}

// HeartbeatAtIsNil applies the IsNil predicate on the "heartbeat_at" field.
func HeartbeatAtIsNil() predicate.QueueItem {
	return predicate.QueueItem(sql.FieldIsNull(FieldHeartbeatAt))
}

// HeartbeatAtNotNil applies the NotNil predicate on the "heartbeat_at" field.
func HeartbeatAtNotNil() predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNotNull(FieldHeartbeatAt))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.QueueItem {
	return predicate.QueueItem(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldContainsFold(FieldLastError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldLTE(FieldCreatedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.QueueItem {
	return predicate.QueueItem(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.QueueItem {
	return predicate.QueueItem(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.QueueItem {
	return predicate.QueueItem(sql.FieldNotNull(FieldFinishedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QueueItem) predicate.QueueItem {
	return predicate.QueueItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QueueItem) predicate.QueueItem {
	return predicate.QueueItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QueueItem) predicate.QueueItem {
	return predicate.QueueItem(sql.NotPredicates(p))
}
