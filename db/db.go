// Package db stores shared visualizer configs. DynamoDB when a table
// is configured, otherwise an in-process map.
package db

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"

	"github.com/louiecai/fretforge/constants"
	"github.com/louiecai/fretforge/model"
)

type Store interface {
	Put(id string, cfg model.VisualizerConfig) error
	Get(id string) (model.VisualizerConfig, bool, error)
}

// Open picks the backend: DynamoDB when CONFIG_TABLE is set, otherwise
// memory-only (configs vanish on restart, which is fine for local use).
func Open() (Store, error) {
	table := constants.GetConfigTable()
	if table == "" {
		return NewMemStore(), nil
	}
	return newDynamoStore(table)
}

// MemStore is the no-dependency fallback, also what tests use.
type MemStore struct {
	mu      sync.RWMutex
	configs map[string]model.VisualizerConfig
}

func NewMemStore() *MemStore {
	return &MemStore{configs: make(map[string]model.VisualizerConfig)}
}

func (s *MemStore) Put(id string, cfg model.VisualizerConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configs[id] = cfg
	return nil
}

func (s *MemStore) Get(id string) (model.VisualizerConfig, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg, ok := s.configs[id]
	return cfg, ok, nil
}

type dynamoStore struct {
	client *dynamodb.DynamoDB
	table  string
}

func newDynamoStore(table string) (*dynamoStore, error) {
	endpoint := constants.GetDynamoEndpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(constants.GetDynamoRegion()),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create DynamoDB session: %w", err)
	}
	return &dynamoStore{client: dynamodb.New(sess), table: table}, nil
}

// Configs are stored as a single JSON document attribute under the id
// key; the store never inspects the payload.
func (s *dynamoStore) Put(id string, cfg model.VisualizerConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	item := map[string]*dynamodb.AttributeValue{
		"PK":     {S: aws.String(id)},
		"Config": {S: aws.String(string(data))},
	}
	_, err = s.client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	return err
}

func (s *dynamoStore) Get(id string) (model.VisualizerConfig, bool, error) {
	var cfg model.VisualizerConfig
	out, err := s.client.GetItem(&dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(id)},
		},
	})
	if err != nil {
		return cfg, false, err
	}
	attr, ok := out.Item["Config"]
	if !ok || attr.S == nil {
		return cfg, false, nil
	}
	if err := json.Unmarshal([]byte(*attr.S), &cfg); err != nil {
		return cfg, false, err
	}
	return cfg, true, nil
}
