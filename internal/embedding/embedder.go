package embedding

import "context"

// Embedder converts texts into fixed-length numeric vectors using a
// pretrained text-embedding model. Implementations must be safe for
// concurrent use after construction.
type Embedder interface {
	// Embed returns one vector per input text, in input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// ModelID returns the model identifier this embedder is configured to use.
	ModelID() string
}
