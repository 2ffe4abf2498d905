// Code generated by ent, DO NOT EDIT.

package project

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/autodidact/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldID, id))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldTopic, v))
}

// ReportPath applies equality check predicate on the "report_path" field. It's identical to ReportPathEQ.
func ReportPath(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldReportPath, v))
}

// GraphJSON applies equality check predicate on the "graph_json" field. It's identical to GraphJSONEQ.
func GraphJSON(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldGraphJSON, v))
}

// FootnotesJSON applies equality check predicate on the "footnotes_json" field. It's identical to FootnotesJSONEQ.
func FootnotesJSON(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldFootnotesJSON, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldTopic, v))
}

// ReportPathEQ applies the EQ predicate on the "report_path" field.
func ReportPathEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldReportPath, v))
}

// ReportPathNEQ applies the NEQ predicate on the "report_path" field.
func ReportPathNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldReportPath, v))
}

// ReportPathIn applies the In predicate on the "report_path" field.
func ReportPathIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldReportPath, vs...))
}

// ReportPathNotIn applies the NotIn predicate on the "report_path" field.
func ReportPathNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldReportPath, vs...))
}

// ReportPathGT applies the GT predicate on the "report_path" field.
func ReportPathGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldReportPath, v))
}

// ReportPathGTE applies the GTE predicate on the "report_path" field.
func ReportPathGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldReportPath, v))
}

// ReportPathLT applies the LT predicate on the "report_path" field.
func ReportPathLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldReportPath, v))
}

// ReportPathLTE applies the LTE predicate on the "report_path" field.
func ReportPathLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldReportPath, v))
}

// ReportPathContains applies the Contains predicate on the "report_path" field.
func ReportPathContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldReportPath, v))
}

// ReportPathHasPrefix applies the HasPrefix predicate on the "report_path" field.
func ReportPathHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldReportPath, v))
}

// ReportPathHasSuffix applies the HasSuffix predicate on the "report_path" field.
func ReportPathHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldReportPath, v))
}

// ReportPathEqualFold applies the EqualFold predicate on the "report_path" field.
func ReportPathEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldReportPath, v))
}

// ReportPathContainsFold applies the ContainsFold predicate on the "report_path" field.
func ReportPathContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldReportPath, v))
}

// GraphJSONEQ applies the EQ predicate on the "graph_json" field.
func GraphJSONEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldGraphJSON, v))
}

// GraphJSONNEQ applies the NEQ predicate on the "graph_json" field.
func GraphJSONNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldGraphJSON, v))
}

// GraphJSONIn applies the In predicate on the "graph_json" field.
func GraphJSONIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldGraphJSON, vs...))
}

// GraphJSONNotIn applies the NotIn predicate on the "graph_json" field.
func GraphJSONNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldGraphJSON, vs...))
}

// GraphJSONGT applies the GT predicate on the "graph_json" field.
func GraphJSONGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldGraphJSON, v))
}

// GraphJSONGTE applies the GTE predicate on the "graph_json" field.
func GraphJSONGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldGraphJSON, v))
}

// GraphJSONLT applies the LT predicate on the "graph_json" field.
func GraphJSONLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldGraphJSON, v))
}

// GraphJSONLTE applies the LTE predicate on the "graph_json" field.
func GraphJSONLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldGraphJSON, v))
}

// GraphJSONContains applies the Contains predicate on the "graph_json" field.
func GraphJSONContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldGraphJSON, v))
}

// GraphJSONHasPrefix applies the HasPrefix predicate on the "graph_json" field.
func GraphJSONHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldGraphJSON, v))
}

// GraphJSONHasSuffix applies the HasSuffix predicate on the "graph_json" field.
func GraphJSONHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldGraphJSON, v))
}

// GraphJSONEqualFold applies the EqualFold predicate on the "graph_json" field.
func GraphJSONEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldGraphJSON, v))
}

// GraphJSONContainsFold applies the ContainsFold predicate on the "graph_json" field.
func GraphJSONContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldGraphJSON, v))
}

// FootnotesJSONEQ applies the EQ predicate on the "footnotes_json" field.
func FootnotesJSONEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldFootnotesJSON, v))
}

// FootnotesJSONNEQ applies the NEQ predicate on the "footnotes_json" field.
func FootnotesJSONNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldFootnotesJSON, v))
}

// FootnotesJSONIn applies the In predicate on the "footnotes_json" field.
func FootnotesJSONIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldFootnotesJSON, vs...))
}

// FootnotesJSONNotIn applies the NotIn predicate on the "footnotes_json" field.
func FootnotesJSONNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldFootnotesJSON, vs...))
}

// FootnotesJSONGT applies the GT predicate on the "footnotes_json" field.
func FootnotesJSONGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldFootnotesJSON, v))
}

// FootnotesJSONGTE applies the GTE predicate on the "footnotes_json" field.
func FootnotesJSONGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldFootnotesJSON, v))
}

// FootnotesJSONLT applies the LT predicate on the "footnotes_json" field.
func FootnotesJSONLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldFootnotesJSON, v))
}

// FootnotesJSONLTE applies the LTE predicate on the "footnotes_json" field.
func FootnotesJSONLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldFootnotesJSON, v))
}

// FootnotesJSONContains applies the Contains predicate on the "footnotes_json" field.
func FootnotesJSONContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldFootnotesJSON, v))
}

// FootnotesJSONHasPrefix applies the HasPrefix predicate on the "footnotes_json" field.
func FootnotesJSONHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldFootnotesJSON, v))
}

// FootnotesJSONHasSuffix applies the HasSuffix predicate on the "footnotes_json" field.
func FootnotesJSONHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldFootnotesJSON, v))
}

// FootnotesJSONEqualFold applies the EqualFold predicate on the "footnotes_json" field.
func FootnotesJSONEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldFootnotesJSON, v))
}

// FootnotesJSONContainsFold applies the ContainsFold predicate on the "footnotes_json" field.
func FootnotesJSONContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldFootnotesJSON, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Project) predicate.Project {
	return predicate.Project(sql.NotPredicates(p))
}
