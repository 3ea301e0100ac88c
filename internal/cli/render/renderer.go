package render

// Renderer renders one result type to the command output.
type Renderer[T any] interface {
	Render(result T) error
}
