package pages

import (
	"encoding/json"
	"fmt"
	"path"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"nanopage/pkg/models"
)

// Metadata document names probed in a page directory, first found wins.
// config.yaml is canonical.
var configNames = []string{"config.yaml", "config.toml", "config.json"}

// ParseConfig decodes a page metadata document into a PageConfig. The codec
// is chosen by the document name's extension. A malformed document or a
// missing title fails with ErrSchema.
func ParseConfig(doc []byte, name string) (models.PageConfig, error) {
	var cfg models.PageConfig
	var err error
	switch path.Ext(name) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(doc, &cfg)
	case ".toml":
		err = toml.Unmarshal(doc, &cfg)
	case ".json":
		err = json.Unmarshal(doc, &cfg)
	default:
		err = fmt.Errorf("unsupported config format %q", name)
	}
	if err != nil {
		return models.PageConfig{}, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	if cfg.Title == "" {
		return models.PageConfig{}, fmt.Errorf("%w: missing required field title", ErrSchema)
	}
	return cfg, nil
}
