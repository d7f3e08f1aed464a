package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/go-batch-service/internal/adapters/clients/acl/group"
	"github.com/jsamuelsen11/go-batch-service/internal/adapters/clients/acl/todo"
	"github.com/jsamuelsen11/go-batch-service/internal/domain"
	"github.com/jsamuelsen11/go-batch-service/internal/domain/batch"
	"github.com/jsamuelsen11/go-batch-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-batch-service/internal/ports"
)

const (
	groupsPath = "/api/v1/groups"
	todosPath  = "/api/v1/todos"

	msgNumericID = "must be a numeric id"
)

// Compile-time interface check.
var _ ports.EntityClient = (*EntityClient)(nil)

// EntityClient is the outbound adapter that creates and deletes batch
// entities in the downstream TODO API. It implements [ports.EntityClient]:
// containers become groups and leaves become todos.
//
// Payloads are translated by the ACL translators in sub-packages [group]
// and [todo]. Downstream ids are int64; they cross the port as decimal
// strings. HTTP errors are mapped to domain errors (ErrNotFound,
// ErrValidation, etc.) by [TranslateHTTPError].
//
// The underlying [httpclient.Client] provides circuit breaking, rate
// limiting, retry with exponential backoff, and OpenTelemetry tracing for
// every outbound call.
type EntityClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewEntityClient creates an EntityClient that sends requests through the
// given [httpclient.Client]. The client's BaseURL should point to the
// downstream TODO API root (e.g. "https://todo-api.example.com").
func NewEntityClient(client *httpclient.Client, logger *slog.Logger) *EntityClient {
	return &EntityClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// CreateContainer sends POST /api/v1/groups and returns the new group id.
func (c *EntityClient) CreateContainer(ctx context.Context, req batch.ContainerRequest) (string, error) {
	body, err := group.ToCreateGroupRequest(req)
	if err != nil {
		return "", err
	}

	var dto group.GroupDTO
	if err := c.req.Do(ctx, http.MethodPost, groupsPath, http.StatusCreated, body, &dto); err != nil {
		return "", err
	}
	return group.RealID(dto), nil
}

// CreateLeaf sends POST /api/v1/todos with group_id or parent_id taken from
// the request's parent slot and returns the new todo id. Returns
// [domain.ErrValidation] without calling downstream if a parent id is not
// numeric or a payload field has the wrong type.
func (c *EntityClient) CreateLeaf(ctx context.Context, req batch.LeafRequest) (string, error) {
	body, err := todo.ToCreateTodoRequest(req)
	if err != nil {
		return "", err
	}

	var dto todo.TodoDTO
	if err := c.req.Do(ctx, http.MethodPost, todosPath, http.StatusCreated, body, &dto); err != nil {
		return "", err
	}
	return todo.RealID(dto), nil
}

// DeleteEntity sends DELETE /api/v1/groups/{id} or DELETE /api/v1/todos/{id}
// depending on typ. Returns [domain.ErrNotFound] if the downstream API
// returns 404. The delete is sent once; rollback reports a failed delete as
// an orphan instead of retrying it.
func (c *EntityClient) DeleteEntity(ctx context.Context, typ batch.EntityType, realID string) error {
	id, err := strconv.ParseInt(realID, 10, 64)
	if err != nil {
		return domain.NewFieldError("real_id", msgNumericID)
	}

	var path string
	switch typ {
	case batch.TypeContainer:
		path = fmt.Sprintf("%s/%d", groupsPath, id)
	case batch.TypeLeaf:
		path = fmt.Sprintf("%s/%d", todosPath, id)
	default:
		return fmt.Errorf("deleting %q: %w: %q", realID, batch.ErrUnknownEntityType, typ)
	}

	return c.req.Do(httpclient.WithSingleAttempt(ctx), http.MethodDelete, path, http.StatusNoContent, nil, nil)
}
