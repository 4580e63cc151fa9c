package output

import (
	"encoding/json"
	"io"

	"github.com/glovecchi0/pods-graph/internal/model"
)

func WriteJSON(w io.Writer, g *model.Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(g)
}
