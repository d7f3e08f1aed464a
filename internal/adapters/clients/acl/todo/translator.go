package todo

import (
	"strconv"

	"github.com/jsamuelsen11/go-batch-service/internal/domain"
	"github.com/jsamuelsen11/go-batch-service/internal/domain/batch"
)

// Payload keys understood for todos.
const (
	keyDescription     = "description"
	keyStatus          = "status"
	keyCategory        = "category"
	keyProgressPercent = "progress_percent"
	keyFlagged         = "flagged"
	keyNote            = "note"
)

const (
	msgString  = "must be a string"
	msgInteger = "must be an integer"
	msgBool    = "must be a boolean"
	msgNumeric = "must be a numeric id"
)

// ToCreateTodoRequest converts a leaf request to a downstream
// CreateTodoRequestDTO. ParentContainerID maps to group_id and ParentLeafID
// to parent_id. Unknown payload keys are ignored; known keys of the wrong
// type and non-numeric parent ids are reported together as a
// *domain.ValidationError.
func ToCreateTodoRequest(req batch.LeafRequest) (CreateTodoRequestDTO, error) {
	dto := CreateTodoRequestDTO{Title: req.Name}
	fields := make(map[string]string)

	p := req.Payload
	stringField(p, keyDescription, &dto.Description, fields)
	stringField(p, keyStatus, &dto.Status, fields)
	stringField(p, keyCategory, &dto.Category, fields)
	stringField(p, keyNote, &dto.Note, fields)

	if _, present := p[keyProgressPercent]; present {
		if v, ok := p.Int(keyProgressPercent); ok {
			dto.ProgressPercent = v
		} else {
			fields["payload."+keyProgressPercent] = msgInteger
		}
	}
	if _, present := p[keyFlagged]; present {
		if v, ok := p.Bool(keyFlagged); ok {
			dto.Flagged = v
		} else {
			fields["payload."+keyFlagged] = msgBool
		}
	}

	dto.GroupID = parseID(req.ParentContainerID, "parent_container_id", fields)
	dto.ParentID = parseID(req.ParentLeafID, "parent_leaf_id", fields)

	if len(fields) > 0 {
		return CreateTodoRequestDTO{}, &domain.ValidationError{Fields: fields}
	}
	return dto, nil
}

// RealID renders the downstream todo id as the opaque real id used by the
// batch core.
func RealID(dto TodoDTO) string {
	return strconv.FormatInt(dto.ID, 10)
}

func stringField(p batch.Payload, key string, dst *string, fields map[string]string) {
	if _, present := p[key]; !present {
		return
	}
	v, ok := p.String(key)
	if !ok {
		fields["payload."+key] = msgString
		return
	}
	*dst = v
}

func parseID(id, field string, fields map[string]string) *int64 {
	if id == "" {
		return nil
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		fields[field] = msgNumeric
		return nil
	}
	return &n
}
