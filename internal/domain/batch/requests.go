package batch

// ContainerRequest is what the outbound adapter needs to create a container.
type ContainerRequest struct {
	Name    string
	Payload Payload
}

// LeafRequest is what the outbound adapter needs to create a leaf. At most
// one of ParentContainerID and ParentLeafID is set, chosen by the type of
// the parent the leaf referenced.
type LeafRequest struct {
	Name              string
	Payload           Payload
	ParentContainerID string
	ParentLeafID      string
}
