// Copyright 2025 Halcyon Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package config holds the run configuration for textindex.
//
// A Config is constructed once at process start, optionally overlaid from a
// YAML file and command-line flags, and passed by reference into the
// components that need it. No component reads ambient global state.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the static option set consumed at startup. Values are checked
// for presence only; an unreachable endpoint or a bad profile surfaces as a
// downstream authentication or connection failure.
type Config struct {
	// Region is the AWS region hosting Bedrock and OpenSearch.
	Region string `yaml:"region"`

	// Profile is the shared AWS credentials profile.
	Profile string `yaml:"profile"`

	// GenerativeModel is the Bedrock chat model identifier. Carried on the
	// configuration surface for parity with the embedding model; the
	// indexing pipeline itself does not invoke it.
	GenerativeModel string `yaml:"generative_model_id"`

	// EmbeddingModel is the Bedrock embedding model identifier.
	EmbeddingModel string `yaml:"embedding_model_id"`

	// Endpoint is the OpenSearch service endpoint URL.
	Endpoint string `yaml:"opensearch_endpoint"`

	// IndexName is the target vector index.
	IndexName string `yaml:"index_name"`

	// DataPath is the local root directory scanned for source documents.
	DataPath string `yaml:"data_path"`
}

// Default returns a Config with the stock option set.
func Default() *Config {
	return &Config{
		Region:          "us-east-1",
		Profile:         "default",
		GenerativeModel: "anthropic.claude-3-haiku-20240307-v1:0",
		EmbeddingModel:  "amazon.titan-embed-text-v2:0",
		IndexName:       "documents",
		DataPath:        "data/",
	}
}

// Load reads a YAML file over the defaults. Unset keys keep their default
// values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the values the pipeline depends on are present.
func (c *Config) Validate() error {
	if c.Region == "" {
		return errors.New("config: region is required")
	}
	if c.Profile == "" {
		return errors.New("config: profile is required")
	}
	if c.EmbeddingModel == "" {
		return errors.New("config: embedding_model_id is required")
	}
	if c.Endpoint == "" {
		return errors.New("config: opensearch_endpoint is required")
	}
	if c.IndexName == "" {
		return errors.New("config: index_name is required")
	}
	if c.DataPath == "" {
		return errors.New("config: data_path is required")
	}
	return nil
}
