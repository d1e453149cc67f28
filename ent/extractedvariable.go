// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/easypath-ai/easypath/ent/extractedvariable"
	"github.com/easypath-ai/easypath/ent/platformconversation"
)

// ExtractedVariable is the model entity for the ExtractedVariable schema.
type ExtractedVariable struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ConversationID holds the value of the "conversation_id" field.
	ConversationID int `json:"conversation_id,omitempty"`
	// Flow node that extracted the value
	NodeID string `json:"node_id,omitempty"`
	// FlowID holds the value of the "flow_id" field.
	FlowID *int `json:"flow_id,omitempty"`
	// VariableName holds the value of the "variable_name" field.
	VariableName string `json:"variable_name,omitempty"`
	// VariableValue holds the value of the "variable_value" field.
	VariableValue string `json:"variable_value,omitempty"`
	// VariableType holds the value of the "variable_type" field.
	VariableType string `json:"variable_type,omitempty"`
	// ExtractedAt holds the value of the "extracted_at" field.
	ExtractedAt time.Time `json:"extracted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractedVariableQuery when eager-loading is set.
	Edges        ExtractedVariableEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractedVariableEdges holds the relations/edges for other nodes in the graph.
type ExtractedVariableEdges struct {
	// Conversation holds the value of the conversation edge.
	Conversation *PlatformConversation `json:"conversation,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ConversationOrErr returns the Conversation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractedVariableEdges) ConversationOrErr() (*PlatformConversation, error) {
	if e.Conversation != nil {
		return e.Conversation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: platformconversation.Label}
	}
	return nil, &NotLoadedError{edge: "conversation"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractedVariable) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractedvariable.FieldID, extractedvariable.FieldConversationID, extractedvariable.FieldFlowID:
			values[i] = new(sql.NullInt64)
		case extractedvariable.FieldNodeID, extractedvariable.FieldVariableName, extractedvariable.FieldVariableValue, extractedvariable.FieldVariableType:
			values[i] = new(sql.NullString)
		case extractedvariable.FieldExtractedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractedVariable fields.
func (_m *ExtractedVariable) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractedvariable.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case extractedvariable.FieldConversationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_id", values[i])
			} else if value.Valid {
				_m.ConversationID = int(value.Int64)
			}
		case extractedvariable.FieldNodeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field node_id", values[i])
			} else if value.Valid {
				_m.NodeID = value.String
			}
		case extractedvariable.FieldFlowID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field flow_id", values[i])
			} else if value.Valid {
				_m.FlowID = new(int)
				*_m.FlowID = int(value.Int64)
			}
		case extractedvariable.FieldVariableName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field variable_name", values[i])
			} else if value.Valid {
				_m.VariableName = value.String
			}
		case extractedvariable.FieldVariableValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field variable_value", values[i])
			} else if value.Valid {
				_m.VariableValue = value.String
			}
		case extractedvariable.FieldVariableType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field variable_type", values[i])
			} else if value.Valid {
				_m.VariableType = value.String
			}
		case extractedvariable.FieldExtractedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_at", values[i])
			} else if value.Valid {
				_m.ExtractedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractedVariable.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractedVariable) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryConversation queries the "conversation" edge of the ExtractedVariable entity.
func (_m *ExtractedVariable) QueryConversation() *PlatformConversationQuery {
	return NewExtractedVariableClient(_m.config).QueryConversation(_m)
}

// Update returns a builder for updating this ExtractedVariable.
// Note that you need to call ExtractedVariable.Unwrap() before calling this method if this ExtractedVariable
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractedVariable) Update() *ExtractedVariableUpdateOne {
	return NewExtractedVariableClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractedVariable entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractedVariable) Unwrap() *ExtractedVariable {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractedVariable is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractedVariable) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractedVariable(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("conversation_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConversationID))
	builder.WriteString(", ")
	builder.WriteString("node_id=")
	builder.WriteString(_m.NodeID)
	builder.WriteString(", ")
	if v := _m.FlowID; v != nil {
		builder.WriteString("flow_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("variable_name=")
	builder.WriteString(_m.VariableName)
	builder.WriteString(", ")
	builder.WriteString("variable_value=")
	builder.WriteString(_m.VariableValue)
	builder.WriteString(", ")
	builder.WriteString("variable_type=")
	builder.WriteString(_m.VariableType)
	builder.WriteString(", ")
	builder.WriteString("extracted_at=")
	builder.WriteString(_m.ExtractedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractedVariables is a parsable slice of ExtractedVariable.
type ExtractedVariables []*ExtractedVariable
