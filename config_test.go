package identicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	cfg := DefaultConfig()
	assert.NoError(cfg.Validate())
	assert.Equal(250, cfg.Width)
	assert.Equal(250, cfg.Height)
	assert.Equal(50, cfg.CellSize)
	assert.Equal(3, cfg.ChunkSize)
	assert.Equal(5, cfg.Columns())
	assert.Equal(Color{250, 250, 250}, cfg.Background)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tables := map[string]func(*Config){
		"width":     func(c *Config) { c.Width = 0 },
		"height":    func(c *Config) { c.Height = -1 },
		"cellSize":  func(c *Config) { c.CellSize = 0 },
		"chunkSize": func(c *Config) { c.ChunkSize = -3 },
	}

	for name, mutate := range tables {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())

			_, err := New(cfg, nil)
			assert.Error(t, err)
		})
	}
}
