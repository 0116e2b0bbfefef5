package cache

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// Options, New için driver bağımlılıklarıdır.
type Options struct {
	Logger *log.Logger
	Redis  *redis.Client
	Prefix string
}

func encode(value interface{}) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("json encode failed: %w", err)
	}
	return data, nil
}

func decode(data []byte, dest interface{}) error {
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("json decode failed: %w", err)
	}
	return nil
}
