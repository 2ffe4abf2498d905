// Code generated by ent, DO NOT EDIT.

package project

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the project type in the database.
	Label = "project"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldReportPath holds the string denoting the report_path field in the database.
	FieldReportPath = "report_path"
	// FieldGraphJSON holds the string denoting the graph_json field in the database.
	FieldGraphJSON = "graph_json"
	// FieldFootnotesJSON holds the string denoting the footnotes_json field in the database.
	FieldFootnotesJSON = "footnotes_json"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the project in the database.
	Table = "projects"
)

// Columns holds all SQL columns for project fields.
var Columns = []string{
	FieldID,
	FieldTopic,
	FieldReportPath,
	FieldGraphJSON,
	FieldFootnotesJSON,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// DefaultReportPath holds the default value on creation for the "report_path" field.
	DefaultReportPath string
	// DefaultGraphJSON holds the default value on creation for the "graph_json" field.
	DefaultGraphJSON string
	// DefaultFootnotesJSON holds the default value on creation for the "footnotes_json" field.
	DefaultFootnotesJSON string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// OrderOption defines the ordering options for the Project queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByReportPath orders the results by the report_path field.
func ByReportPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportPath, opts...).ToFunc()
}

// ByGraphJSON orders the results by the graph_json field.
func ByGraphJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGraphJSON, opts...).ToFunc()
}

// ByFootnotesJSON orders the results by the footnotes_json field.
func ByFootnotesJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFootnotesJSON, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
