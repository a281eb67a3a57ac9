// Code generated by ent, DO NOT EDIT.

package badge

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nishantk77/skillpath-ascend-together/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Badge {
	return predicate.Badge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Badge {
	return predicate.Badge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Badge {
	return predicate.Badge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Badge {
	return predicate.Badge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Badge {
	return predicate.Badge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Badge {
	return predicate.Badge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Badge {
	return predicate.Badge(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Badge {
	return predicate.Badge(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Badge {
	return predicate.Badge(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldDescription, v))
}

// BadgeType applies equality check predicate on the "badge_type" field. It's identical to BadgeTypeEQ.
func BadgeType(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldBadgeType, v))
}

// Tier applies equality check predicate on the "tier" field. It's identical to TierEQ.
func Tier(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldTier, v))
}

// DateEarned applies equality check predicate on the "date_earned" field. It's identical to DateEarnedEQ.
func DateEarned(v time.Time) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldDateEarned, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Badge {
	return predicate.Badge(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Badge {
	return predicate.Badge(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Badge {
	return predicate.Badge(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Badge {
	return predicate.Badge(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Badge {
	return predicate.Badge(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Badge {
	return predicate.Badge(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Badge {
	return predicate.Badge(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Badge {
	return predicate.Badge(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Badge {
	return predicate.Badge(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Badge {
	return predicate.Badge(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Badge {
	return predicate.Badge(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Badge {
	return predicate.Badge(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Badge {
	return predicate.Badge(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Badge {
	return predicate.Badge(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Badge {
	return predicate.Badge(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Badge {
	return predicate.Badge(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Badge {
	return predicate.Badge(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Badge {
	return predicate.Badge(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Badge {
	return predicate.Badge(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Badge {
	return predicate.Badge(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Badge {
	return predicate.Badge(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Badge {
	return predicate.Badge(sql.FieldContainsFold(FieldDescription, v))
}

// BadgeTypeEQ applies the EQ predicate on the "badge_type" field.
func BadgeTypeEQ(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldBadgeType, v))
}

// BadgeTypeNEQ applies the NEQ predicate on the "badge_type" field.
func BadgeTypeNEQ(v string) predicate.Badge {
	return predicate.Badge(sql.FieldNEQ(FieldBadgeType, v))
}

// BadgeTypeIn applies the In predicate on the "badge_type" field.
func BadgeTypeIn(vs ...string) predicate.Badge {
	return predicate.Badge(sql.FieldIn(FieldBadgeType, vs...))
}

// BadgeTypeNotIn applies the NotIn predicate on the "badge_type" field.
func BadgeTypeNotIn(vs ...string) predicate.Badge {
	return predicate.Badge(sql.FieldNotIn(FieldBadgeType, vs...))
}

// BadgeTypeGT applies the GT predicate on the "badge_type" field.
func BadgeTypeGT(v string) predicate.Badge {
	return predicate.Badge(sql.FieldGT(FieldBadgeType, v))
}

// BadgeTypeGTE applies the GTE predicate on the "badge_type" field.
func BadgeTypeGTE(v string) predicate.Badge {
	return predicate.Badge(sql.FieldGTE(FieldBadgeType, v))
}

// BadgeTypeLT applies the LT predicate on the "badge_type" field.
func BadgeTypeLT(v string) predicate.Badge {
	return predicate.Badge(sql.FieldLT(FieldBadgeType, v))
}

// BadgeTypeLTE applies the LTE predicate on the "badge_type" field.
func BadgeTypeLTE(v string) predicate.Badge {
	return predicate.Badge(sql.FieldLTE(FieldBadgeType, v))
}

// BadgeTypeContains applies the Contains predicate on the "badge_type" field.
func BadgeTypeContains(v string) predicate.Badge {
	return predicate.Badge(sql.FieldContains(FieldBadgeType, v))
}

// BadgeTypeHasPrefix applies the HasPrefix predicate on the "badge_type" field.
func BadgeTypeHasPrefix(v string) predicate.Badge {
	return predicate.Badge(sql.FieldHasPrefix(FieldBadgeType, v))
}

// BadgeTypeHasSuffix applies the HasSuffix predicate on the "badge_type" field.
func BadgeTypeHasSuffix(v string) predicate.Badge {
	return predicate.Badge(sql.FieldHasSuffix(FieldBadgeType, v))
}

// BadgeTypeEqualFold applies the EqualFold predicate on the "badge_type" field.
func BadgeTypeEqualFold(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEqualFold(FieldBadgeType, v))
}

// BadgeTypeContainsFold applies the ContainsFold predicate on the "badge_type" field.
func BadgeTypeContainsFold(v string) predicate.Badge {
	return predicate.Badge(sql.FieldContainsFold(FieldBadgeType, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v string) predicate.Badge {
	return predicate.Badge(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...string) predicate.Badge {
	return predicate.Badge(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...string) predicate.Badge {
	return predicate.Badge(sql.FieldNotIn(FieldTier, vs...))
}

// TierGT applies the GT predicate on the "tier" field.
func TierGT(v string) predicate.Badge {
	return predicate.Badge(sql.FieldGT(FieldTier, v))
}

// TierGTE applies the GTE predicate on the "tier" field.
func TierGTE(v string) predicate.Badge {
	return predicate.Badge(sql.FieldGTE(FieldTier, v))
}

// TierLT applies the LT predicate on the "tier" field.
func TierLT(v string) predicate.Badge {
	return predicate.Badge(sql.FieldLT(FieldTier, v))
}

// TierLTE applies the LTE predicate on the "tier" field.
func TierLTE(v string) predicate.Badge {
	return predicate.Badge(sql.FieldLTE(FieldTier, v))
}

// TierContains applies the Contains predicate on the "tier" field.
func TierContains(v string) predicate.Badge {
	return predicate.Badge(sql.FieldContains(FieldTier, v))
}

// TierHasPrefix applies the HasPrefix predicate on the "tier" field.
func TierHasPrefix(v string) predicate.Badge {
	return predicate.Badge(sql.FieldHasPrefix(FieldTier, v))
}

// TierHasSuffix applies the HasSuffix predicate on the "tier" field.
func TierHasSuffix(v string) predicate.Badge {
	return predicate.Badge(sql.FieldHasSuffix(FieldTier, v))
}

// TierIsNil applies the IsNil predicate on the "tier" field.
func TierIsNil() predicate.Badge {
	return predicate.Badge(sql.FieldIsNull(FieldTier))
}

// TierNotNil applies the NotNil predicate on the "tier" field.
func TierNotNil() predicate.Badge {
	return predicate.Badge(sql.FieldNotNull(FieldTier))
}

// TierEqualFold applies the EqualFold predicate on the "tier" field.
func TierEqualFold(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEqualFold(FieldTier, v))
}

// TierContainsFold applies the ContainsFold predicate on the "tier" field.
func TierContainsFold(v string) predicate.Badge {
	return predicate.Badge(sql.FieldContainsFold(FieldTier, v))
}

// DateEarnedEQ applies the EQ predicate on the "date_earned" field.
func DateEarnedEQ(v time.Time) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldDateEarned, v))
}

// DateEarnedNEQ applies the NEQ predicate on the "date_earned" field.
func DateEarnedNEQ(v time.Time) predicate.Badge {
	return predicate.Badge(sql.FieldNEQ(FieldDateEarned, v))
}

// DateEarnedIn applies the In predicate on the "date_earned" field.
func DateEarnedIn(vs ...time.Time) predicate.Badge {
	return predicate.Badge(sql.FieldIn(FieldDateEarned, vs...))
}

// DateEarnedNotIn applies the NotIn predicate on the "date_earned" field.
func DateEarnedNotIn(vs ...time.Time) predicate.Badge {
	return predicate.Badge(sql.FieldNotIn(FieldDateEarned, vs...))
}

// DateEarnedGT applies the GT predicate on the "date_earned" field.
func DateEarnedGT(v time.Time) predicate.Badge {
	return predicate.Badge(sql.FieldGT(FieldDateEarned, v))
}

// DateEarnedGTE applies the GTE predicate on the "date_earned" field.
func DateEarnedGTE(v time.Time) predicate.Badge {
	return predicate.Badge(sql.FieldGTE(FieldDateEarned, v))
}

// DateEarnedLT applies the LT predicate on the "date_earned" field.
func DateEarnedLT(v time.Time) predicate.Badge {
	return predicate.Badge(sql.FieldLT(FieldDateEarned, v))
}

// DateEarnedLTE applies the LTE predicate on the "date_earned" field.
func DateEarnedLTE(v time.Time) predicate.Badge {
	return predicate.Badge(sql.FieldLTE(FieldDateEarned, v))
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.Badge {
	return predicate.Badge(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.Badge {
	return predicate.Badge(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Badge) predicate.Badge {
	return predicate.Badge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Badge) predicate.Badge {
	return predicate.Badge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Badge) predicate.Badge {
	return predicate.Badge(sql.NotPredicates(p))
}
