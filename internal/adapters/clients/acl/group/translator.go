package group

import (
	"strconv"

	"github.com/jsamuelsen11/go-batch-service/internal/domain"
	"github.com/jsamuelsen11/go-batch-service/internal/domain/batch"
)

// Payload keys understood for groups.
const keyDescription = "description"

// ToCreateGroupRequest converts a container request to a downstream
// CreateGroupRequestDTO. Unknown payload keys are ignored; a known key with
// the wrong type is a validation error.
func ToCreateGroupRequest(req batch.ContainerRequest) (CreateGroupRequestDTO, error) {
	dto := CreateGroupRequestDTO{Name: req.Name}

	if _, present := req.Payload[keyDescription]; present {
		desc, ok := req.Payload.String(keyDescription)
		if !ok {
			return CreateGroupRequestDTO{}, domain.NewFieldError("payload."+keyDescription, "must be a string")
		}
		dto.Description = desc
	}

	return dto, nil
}

// RealID renders the downstream group id as the opaque real id used by the
// batch core.
func RealID(dto GroupDTO) string {
	return strconv.FormatInt(dto.ID, 10)
}
