package pb

import (
	"errors"
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	domain "github.com/oshokin/notes-release/internal/domain/layout"
)

// Field names of a layout snapshot.
const (
	FieldSidebarOpen = "sidebar_open"
	FieldUpdatedAt   = "updated_at"
	FieldLastActor   = "last_actor"
	FieldHostname    = "hostname"
	FieldUsername    = "username"
	FieldTooltip     = "tooltip"
	FieldTestID      = "test_id"
)

// ErrMalformedMessage is returned when a struct does not describe a layout snapshot.
var ErrMalformedMessage = errors.New("malformed layout message")

// ActorToStruct encodes an actor; nil stays nil.
func ActorToStruct(actor *domain.Actor) *structpb.Struct {
	if actor == nil {
		return nil
	}

	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			FieldHostname: structpb.NewStringValue(actor.Hostname),
			FieldUsername: structpb.NewStringValue(actor.Username),
		},
	}
}

// ActorFromStruct decodes an actor; a nil or empty struct yields nil.
func ActorFromStruct(s *structpb.Struct) *domain.Actor {
	if len(s.GetFields()) == 0 {
		return nil
	}

	fields := s.GetFields()

	return &domain.Actor{
		Hostname: fields[FieldHostname].GetStringValue(),
		Username: fields[FieldUsername].GetStringValue(),
	}
}

// StateToStruct encodes a layout snapshot.
func StateToStruct(state *domain.State) *structpb.Struct {
	if state == nil {
		return &structpb.Struct{Fields: map[string]*structpb.Value{}}
	}

	fields := map[string]*structpb.Value{
		FieldSidebarOpen: structpb.NewBoolValue(state.SidebarOpen),
	}

	if !state.UpdatedAt.IsZero() {
		fields[FieldUpdatedAt] = structpb.NewStringValue(state.UpdatedAt.UTC().Format(time.RFC3339Nano))
	}

	if actor := ActorToStruct(state.LastActor); actor != nil {
		fields[FieldLastActor] = structpb.NewStructValue(actor)
	}

	return &structpb.Struct{Fields: fields}
}

// StateFromStruct decodes a layout snapshot.
func StateFromStruct(s *structpb.Struct) (*domain.State, error) {
	fields := s.GetFields()

	open, ok := fields[FieldSidebarOpen].GetKind().(*structpb.Value_BoolValue)
	if !ok {
		return nil, fmt.Errorf("%w: %s is missing", ErrMalformedMessage, FieldSidebarOpen)
	}

	state := &domain.State{
		SidebarOpen: open.BoolValue,
		LastActor:   ActorFromStruct(fields[FieldLastActor].GetStructValue()),
	}

	if raw := fields[FieldUpdatedAt].GetStringValue(); raw != "" {
		updatedAt, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMalformedMessage, FieldUpdatedAt, err)
		}

		state.UpdatedAt = updatedAt
	}

	return state, nil
}
