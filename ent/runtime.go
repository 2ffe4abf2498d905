// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/autodidact/ent/edge"
	"github.com/abhisek/autodidact/ent/llmrequestevent"
	"github.com/abhisek/autodidact/ent/node"
	"github.com/abhisek/autodidact/ent/project"
	"github.com/abhisek/autodidact/ent/schema"
	"github.com/abhisek/autodidact/ent/transcript"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	edgeFields := schema.Edge{}.Fields()
	_ = edgeFields
	// edgeDescProjectID is the schema descriptor for project_id field.
	edgeDescProjectID := edgeFields[0].Descriptor()
	// edge.ProjectIDValidator is a validator for the "project_id" field. It is called by the builders before save.
	edge.ProjectIDValidator = edgeDescProjectID.Validators[0].(func(string) error)
	// edgeDescSource is the schema descriptor for source field.
	edgeDescSource := edgeFields[1].Descriptor()
	// edge.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	edge.SourceValidator = edgeDescSource.Validators[0].(func(string) error)
	// edgeDescTarget is the schema descriptor for target field.
	edgeDescTarget := edgeFields[2].Descriptor()
	// edge.TargetValidator is a validator for the "target" field. It is called by the builders before save.
	edge.TargetValidator = edgeDescTarget.Validators[0].(func(string) error)
	// edgeDescConfidence is the schema descriptor for confidence field.
	edgeDescConfidence := edgeFields[3].Descriptor()
	// edge.DefaultConfidence holds the default value on creation for the confidence field.
	edge.DefaultConfidence = edgeDescConfidence.Default.(float64)
	// edgeDescRationale is the schema descriptor for rationale field.
	edgeDescRationale := edgeFields[4].Descriptor()
	// edge.DefaultRationale holds the default value on creation for the rationale field.
	edge.DefaultRationale = edgeDescRationale.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	nodeFields := schema.Node{}.Fields()
	_ = nodeFields
	// nodeDescProjectID is the schema descriptor for project_id field.
	nodeDescProjectID := nodeFields[1].Descriptor()
	// node.ProjectIDValidator is a validator for the "project_id" field. It is called by the builders before save.
	node.ProjectIDValidator = nodeDescProjectID.Validators[0].(func(string) error)
	// nodeDescOriginalID is the schema descriptor for original_id field.
	nodeDescOriginalID := nodeFields[2].Descriptor()
	// node.OriginalIDValidator is a validator for the "original_id" field. It is called by the builders before save.
	node.OriginalIDValidator = nodeDescOriginalID.Validators[0].(func(string) error)
	// nodeDescLabel is the schema descriptor for label field.
	nodeDescLabel := nodeFields[3].Descriptor()
	// node.LabelValidator is a validator for the "label" field. It is called by the builders before save.
	node.LabelValidator = nodeDescLabel.Validators[0].(func(string) error)
	// nodeDescSummary is the schema descriptor for summary field.
	nodeDescSummary := nodeFields[4].Descriptor()
	// node.DefaultSummary holds the default value on creation for the summary field.
	node.DefaultSummary = nodeDescSummary.Default.(string)
	// nodeDescPosition is the schema descriptor for position field.
	nodeDescPosition := nodeFields[6].Descriptor()
	// node.DefaultPosition holds the default value on creation for the position field.
	node.DefaultPosition = nodeDescPosition.Default.(int)
	// nodeDescMastery is the schema descriptor for mastery field.
	nodeDescMastery := nodeFields[7].Descriptor()
	// node.DefaultMastery holds the default value on creation for the mastery field.
	node.DefaultMastery = nodeDescMastery.Default.(float64)
	// nodeDescID is the schema descriptor for id field.
	nodeDescID := nodeFields[0].Descriptor()
	// node.DefaultID holds the default value on creation for the id field.
	node.DefaultID = nodeDescID.Default.(func() string)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescTopic is the schema descriptor for topic field.
	projectDescTopic := projectFields[1].Descriptor()
	// project.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	project.TopicValidator = projectDescTopic.Validators[0].(func(string) error)
	// projectDescReportPath is the schema descriptor for report_path field.
	projectDescReportPath := projectFields[2].Descriptor()
	// project.DefaultReportPath holds the default value on creation for the report_path field.
	project.DefaultReportPath = projectDescReportPath.Default.(string)
	// projectDescGraphJSON is the schema descriptor for graph_json field.
	projectDescGraphJSON := projectFields[3].Descriptor()
	// project.DefaultGraphJSON holds the default value on creation for the graph_json field.
	project.DefaultGraphJSON = projectDescGraphJSON.Default.(string)
	// projectDescFootnotesJSON is the schema descriptor for footnotes_json field.
	projectDescFootnotesJSON := projectFields[4].Descriptor()
	// project.DefaultFootnotesJSON holds the default value on creation for the footnotes_json field.
	project.DefaultFootnotesJSON = projectDescFootnotesJSON.Default.(string)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[5].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescID is the schema descriptor for id field.
	projectDescID := projectFields[0].Descriptor()
	// project.DefaultID holds the default value on creation for the id field.
	project.DefaultID = projectDescID.Default.(func() string)
	transcriptFields := schema.Transcript{}.Fields()
	_ = transcriptFields
	// transcriptDescSessionID is the schema descriptor for session_id field.
	transcriptDescSessionID := transcriptFields[0].Descriptor()
	// transcript.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	transcript.SessionIDValidator = transcriptDescSessionID.Validators[0].(func(string) error)
	// transcriptDescRole is the schema descriptor for role field.
	transcriptDescRole := transcriptFields[2].Descriptor()
	// transcript.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	transcript.RoleValidator = transcriptDescRole.Validators[0].(func(string) error)
	// transcriptDescCreatedAt is the schema descriptor for created_at field.
	transcriptDescCreatedAt := transcriptFields[4].Descriptor()
	// transcript.DefaultCreatedAt holds the default value on creation for the created_at field.
	transcript.DefaultCreatedAt = transcriptDescCreatedAt.Default.(func() time.Time)
}
