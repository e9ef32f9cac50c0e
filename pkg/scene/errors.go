package scene

import "errors"

var (
	// ErrSingularTransform is returned when a transform has no inverse.
	ErrSingularTransform = errors.New("scene: transform is not invertible")

	// ErrInvalidAxis is returned by Rotate for an axis other than x, y or z.
	ErrInvalidAxis = errors.New("scene: rotation axis must be x, y or z")

	// ErrNilNode is returned when a nil node is attached or used as a root.
	ErrNilNode = errors.New("scene: nil node")

	// ErrCycle is returned when attaching a node would make the graph cyclic.
	ErrCycle = errors.New("scene: node would become its own descendant")

	// ErrAlreadyAttached is returned when a node already has a parent.
	ErrAlreadyAttached = errors.New("scene: node already has a parent")

	// ErrMissingMaterial is returned for a geometry node without a material.
	ErrMissingMaterial = errors.New("scene: geometry node has no material")

	// ErrMissingPrimitive is returned for a geometry node without a primitive.
	ErrMissingPrimitive = errors.New("scene: geometry node has no primitive")

	// ErrInvalidImageSize is returned for non-positive image dimensions.
	ErrInvalidImageSize = errors.New("scene: image dimensions must be positive")

	// ErrUnknownScene is returned when no built-in scene has the requested name.
	ErrUnknownScene = errors.New("scene: unknown built-in scene")
)
