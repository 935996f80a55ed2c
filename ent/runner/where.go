// Code generated by ent, DO NOT EDIT.

package runner

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/swarmlet/swarmlet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Runner {
	return predicate.Runner(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Runner {
	return predicate.Runner(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Runner {
	return predicate.Runner(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Runner {
	return predicate.Runner(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Runner {
	return predicate.Runner(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Runner {
	return predicate.Runner(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Runner {
	return predicate.Runner(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Runner {
	return predicate.Runner(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Runner {
	return predicate.Runner(sql.FieldContainsFold(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldOwnerID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldName, v))
}

// AuthSecretHash applies equality check predicate on the "auth_secret_hash" field. It's identical to AuthSecretHashEQ.
func AuthSecretHash(v string) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldAuthSecretHash, v))
}

// LastSeenAt applies equality check predicate on the "last_seen_at" field. It's identical to LastSeenAtEQ.
func LastSeenAt(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldLastSeenAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldCreatedAt, v))
}

// RevokedAt applies equality check predicate on the "revoked_at" field. It's identical to RevokedAtEQ.
func RevokedAt(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldRevokedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.Runner {
	return predicate.Runner(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.Runner {
	return predicate.Runner(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.Runner {
	return predicate.Runner(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.Runner {
	return predicate.Runner(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.Runner {
	return predicate.Runner(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.Runner {
	return predicate.Runner(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.Runner {
	return predicate.Runner(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.Runner {
	return predicate.Runner(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.Runner {
	return predicate.Runner(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.Runner {
	return predicate.Runner(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.Runner {
	return predicate.Runner(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.Runner {
	return predicate.Runner(sql.FieldContainsFold(FieldOwnerID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Runner {
	return predicate.Runner(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Runner {
	return predicate.Runner(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Runner {
	return predicate.Runner(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Runner {
	return predicate.Runner(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Runner {
	return predicate.Runner(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Runner {
	return predicate.Runner(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Runner {
	return predicate.Runner(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Runner {
	return predicate.Runner(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Runner {
	return predicate.Runner(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Runner {
	return predicate.Runner(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Runner {
	return predicate.Runner(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Runner {
	return predicate.Runner(sql.FieldContainsFold(FieldName, v))
}

// AuthSecretHashEQ applies the EQ predicate on the "auth_secret_hash" field.
func AuthSecretHashEQ(v string) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldAuthSecretHash, v))
}

// AuthSecretHashNEQ applies the NEQ predicate on the "auth_secret_hash" field.
func AuthSecretHashNEQ(v string) predicate.Runner {
	return predicate.Runner(sql.FieldNEQ(FieldAuthSecretHash, v))
}

// AuthSecretHashIn applies the In predicate on the "auth_secret_hash" field.
func AuthSecretHashIn(vs ...string) predicate.Runner {
	return predicate.Runner(sql.FieldIn(FieldAuthSecretHash, vs...))
}

// AuthSecretHashNotIn applies the NotIn predicate on the "auth_secret_hash" field.
func AuthSecretHashNotIn(vs ...string) predicate.Runner {
	return predicate.Runner(sql.FieldNotIn(FieldAuthSecretHash, vs...))
}

// AuthSecretHashGT applies the GT predicate on the "auth_secret_hash" field.
func AuthSecretHashGT(v string) predicate.Runner {
	return predicate.Runner(sql.FieldGT(FieldAuthSecretHash, v))
}

// AuthSecretHashGTE applies the GTE predicate on the "auth_secret_hash" field.
func AuthSecretHashGTE(v string) predicate.Runner {
	return predicate.Runner(sql.FieldGTE(FieldAuthSecretHash, v))
}

// AuthSecretHashLT applies the LT predicate on the "auth_secret_hash" field.
func AuthSecretHashLT(v string) predicate.Runner {
	return predicate.Runner(sql.FieldLT(FieldAuthSecretHash, v))
}

// AuthSecretHashLTE applies the LTE predicate on the "auth_secret_hash" field.
func AuthSecretHashLTE(v string) predicate.Runner {
	return predicate.Runner(sql.FieldLTE(FieldAuthSecretHash, v))
}

// AuthSecretHashContains applies the Contains predicate on the "auth_secret_hash" field.
func AuthSecretHashContains(v string) predicate.Runner {
	return predicate.Runner(sql.FieldContains(FieldAuthSecretHash, v))
}

// AuthSecretHashHasPrefix applies the HasPrefix predicate on the "auth_secret_hash" field.
func AuthSecretHashHasPrefix(v string) predicate.Runner {
	return predicate.Runner(sql.FieldHasPrefix(FieldAuthSecretHash, v))
}

// AuthSecretHashHasSuffix applies the HasSuffix predicate on the "auth_secret_hash" field.
func AuthSecretHashHasSuffix(v string) predicate.Runner {
	return predicate.Runner(sql.FieldHasSuffix(FieldAuthSecretHash, v))
}

// AuthSecretHashEqualFold applies the EqualFold predicate on the "auth_secret_hash" field.
func AuthSecretHashEqualFold(v string) predicate.Runner {
	return predicate.Runner(sql.FieldEqualFold(FieldAuthSecretHash, v))
}

// AuthSecretHashContainsFold applies the ContainsFold predicate on the "auth_secret_hash" field.
func AuthSecretHashContainsFold(v string) predicate.Runner {
	return predicate.Runner(sql.FieldContainsFold(FieldAuthSecretHash, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Runner {
	return predicate.Runner(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Runner {
	return predicate.Runner(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Runner {
	return predicate.Runner(sql.FieldNotIn(FieldStatus, vs...))
}

// LastSeenAtEQ applies the EQ predicate on the "last_seen_at" field.
func LastSeenAtEQ(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldLastSeenAt, v))
}

// LastSeenAtNEQ applies the NEQ predicate on the "last_seen_at" field.
func LastSeenAtNEQ(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldNEQ(FieldLastSeenAt, v))
}

// LastSeenAtIn applies the In predicate on the "last_seen_at" field.
func LastSeenAtIn(vs ...time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldIn(FieldLastSeenAt, vs...))
}

// LastSeenAtNotIn applies the NotIn predicate on the "last_seen_at" field.
func LastSeenAtNotIn(vs ...time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldNotIn(FieldLastSeenAt, vs...))
}

// LastSeenAtGT applies the GT predicate on the "last_seen_at" field.
func LastSeenAtGT(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldGT(FieldLastSeenAt, v))
}

// LastSeenAtGTE applies the GTE predicate on the "last_seen_at" field.
func LastSeenAtGTE(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldGTE(FieldLastSeenAt, v))
}

// LastSeenAtLT applies the LT predicate on the "last_seen_at" field.
func LastSeenAtLT(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldLT(FieldLastSeenAt, v))
}

// LastSeenAtLTE applies the LTE predicate on the "last_seen_at" field.
func LastSeenAtLTE(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldLTE(FieldLastSeenAt, v))
}

// LastSeenAtIsNil applies the IsNil predicate on the "last_seen_at" field.
func LastSeenAtIsNil() predicate.Runner {
	return predicate.Runner(sql.FieldIsNull(FieldLastSeenAt))
}

// LastSeenAtNotNil applies the NotNil predicate on the "last_seen_at" field.
func LastSeenAtNotNil() predicate.Runner {
	return predicate.Runner(sql.FieldNotNull(FieldLastSeenAt))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Runner {
	return predicate.Runner(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Runner {
	return predicate.Runner(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldLTE(FieldCreatedAt, v))
}

// RevokedAtEQ applies the EQ predicate on the "revoked_at" field.
func RevokedAtEQ(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldRevokedAt, v))
}

// RevokedAtNEQ applies the NEQ predicate on the "revoked_at" field.
func RevokedAtNEQ(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldNEQ(FieldRevokedAt, v))
}

// RevokedAtIn applies the In predicate on the "revoked_at" field.
func RevokedAtIn(vs ...time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldIn(FieldRevokedAt, vs...))
}

// RevokedAtNotIn applies the NotIn predicate on the "revoked_at" field.
func RevokedAtNotIn(vs ...time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldNotIn(FieldRevokedAt, vs...))
}

// RevokedAtGT applies the GT predicate on the "revoked_at" field.
func RevokedAtGT(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldGT(FieldRevokedAt, v))
}

// RevokedAtGTE applies the GTE predicate on the "revoked_at" field.
func RevokedAtGTE(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldGTE(FieldRevokedAt, v))
}

// RevokedAtLT applies the LT predicate on the "revoked_at" field.
func RevokedAtLT(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldLT(FieldRevokedAt, v))
}

// RevokedAtLTE applies the LTE predicate on the "revoked_at" field.
func RevokedAtLTE(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldLTE(FieldRevokedAt, v))
}

// RevokedAtIsNil applies the IsNil predicate on the "revoked_at" field.
func RevokedAtIsNil() predicate.Runner {
	return predicate.Runner(sql.FieldIsNull(FieldRevokedAt))
}

// RevokedAtNotNil applies the NotNil predicate on the "revoked_at" field.
func RevokedAtNotNil() predicate.Runner {
	return predicate.Runner(sql.FieldNotNull(FieldRevokedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Runner) predicate.Runner {
	return predicate.Runner(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Runner) predicate.Runner {
	return predicate.Runner(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Runner) predicate.Runner {
	return predicate.Runner(sql.NotPredicates(p))
}
